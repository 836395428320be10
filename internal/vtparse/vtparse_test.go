package vtparse

import (
	"testing"

	"github.com/patrick-goecommerce/paneterm/internal/vt"
)

func feed(s string) []vt.Event {
	p := New()
	var out []vt.Event
	p.Feed([]byte(s), func(ev vt.Event) { out = append(out, ev) })
	return out
}

func TestFeed_PlainTextEmitsPrintPerByte(t *testing.T) {
	events := feed("hi")
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Kind != vt.Print || events[0].Rune != 'h' {
		t.Errorf("events[0] = %+v, want Print('h')", events[0])
	}
	if events[1].Kind != vt.Print || events[1].Rune != 'i' {
		t.Errorf("events[1] = %+v, want Print('i')", events[1])
	}
}

func TestFeed_NewlineEmitsExecute(t *testing.T) {
	events := feed("\n")
	if len(events) != 1 || events[0].Kind != vt.Execute || events[0].Byte != '\n' {
		t.Fatalf("events = %+v, want single Execute('\\n')", events)
	}
}

func TestFeed_CSIWithParamsSplitsOnSemicolon(t *testing.T) {
	events := feed("\x1b[5;10H")
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.Kind != vt.CsiDispatch || ev.Final != 'H' {
		t.Fatalf("ev = %+v, want CsiDispatch final 'H'", ev)
	}
	if len(ev.Params) != 2 || ev.Params[0] != 5 || ev.Params[1] != 10 {
		t.Errorf("Params = %v, want [5 10]", ev.Params)
	}
}

func TestFeed_CSIWithPrivateMarkerKeptAsIntermediate(t *testing.T) {
	events := feed("\x1b[?25h")
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.Kind != vt.CsiDispatch || ev.Final != 'h' {
		t.Fatalf("ev = %+v, want CsiDispatch final 'h'", ev)
	}
	if string(ev.Intermediates) != "?" {
		t.Errorf("Intermediates = %q, want \"?\"", ev.Intermediates)
	}
	if len(ev.Params) != 1 || ev.Params[0] != 25 {
		t.Errorf("Params = %v, want [25]", ev.Params)
	}
}

func TestFeed_CSIWithNoParamsLeavesParamsNil(t *testing.T) {
	events := feed("\x1b[m")
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Params != nil {
		t.Errorf("Params = %v, want nil for a bare reset SGR", events[0].Params)
	}
}

func TestFeed_OSCTerminatedByBell(t *testing.T) {
	events := feed("\x1b]0;title\x07")
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]
	if ev.Kind != vt.OscDispatch || !ev.BellTerminated {
		t.Fatalf("ev = %+v, want bell-terminated OscDispatch", ev)
	}
	if len(ev.OscParams) != 2 || string(ev.OscParams[0]) != "0" || string(ev.OscParams[1]) != "title" {
		t.Errorf("OscParams = %v, want [0 title]", ev.OscParams)
	}
}

func TestFeed_OSCTerminatedByEscape(t *testing.T) {
	events := feed("\x1b]0;title\x1b")
	if len(events) != 1 || events[0].BellTerminated {
		t.Fatalf("events = %+v, want a single ST-terminated OscDispatch", events)
	}
}

func TestFeed_EscDispatchForNonBracketFinal(t *testing.T) {
	events := feed("\x1bc")
	if len(events) != 1 || events[0].Kind != vt.EscDispatch || events[0].Byte != 'c' {
		t.Fatalf("events = %+v, want single EscDispatch('c')", events)
	}
}

func TestFeed_SplitAcrossCallsStillParsesOneEvent(t *testing.T) {
	p := New()
	var out []vt.Event
	emit := func(ev vt.Event) { out = append(out, ev) }
	p.Feed([]byte("\x1b["), emit)
	p.Feed([]byte("3"), emit)
	p.Feed([]byte(";4H"), emit)
	if len(out) != 1 {
		t.Fatalf("got %d events, want 1 (parser should carry state across Feed calls)", len(out))
	}
	if out[0].Params[0] != 3 || out[0].Params[1] != 4 {
		t.Errorf("Params = %v, want [3 4]", out[0].Params)
	}
}
