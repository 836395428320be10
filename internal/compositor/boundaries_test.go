package compositor

import (
	"strings"
	"testing"
)

func plainTheme() Theme {
	return Theme{Name: "test"}
}

func TestBoundaries_SingleFullViewportPaneDrawsNothing(t *testing.T) {
	b := NewBoundaries(80, 24, plainTheme())
	b.AddRect(0, 0, 80, 24, false)
	if out := b.VTEOutput(); out != "" {
		t.Errorf("expected no visible border for a pane spanning the whole viewport, got %q", out)
	}
}

func TestBoundaries_VerticalDividerBetweenTwoPanes(t *testing.T) {
	b := NewBoundaries(80, 24, plainTheme())
	b.AddRect(0, 0, 40, 24, false)
	b.AddRect(41, 0, 39, 24, false)
	out := b.VTEOutput()

	if got, want := strings.Count(out, "│"), 24; got != want {
		t.Errorf("divider glyph count = %d, want %d (one per row)", got, want)
	}
	if strings.ContainsAny(out, "┌┐└┘┬┴├┤┼") {
		t.Errorf("unexpected corner/junction glyph in a simple two-pane split: %q", out)
	}
	if !strings.Contains(out, "\x1b[1;41H") {
		t.Errorf("expected a CSI goto to row 1 col 41 (the border column), got %q", out)
	}
}

func TestBoundaries_FourWayJunctionInAGrid(t *testing.T) {
	b := NewBoundaries(80, 24, plainTheme())
	b.AddRect(0, 0, 40, 12, false)
	b.AddRect(41, 0, 39, 12, false)
	b.AddRect(0, 13, 40, 11, false)
	b.AddRect(41, 13, 39, 11, false)
	out := b.VTEOutput()

	if !strings.Contains(out, "\x1b[13;41H┼") {
		t.Errorf("expected a 4-way junction at row 13 col 41, got %q", out)
	}
}

func TestBoundaries_FocusedPaneMarksItsCells(t *testing.T) {
	b := NewBoundaries(80, 24, plainTheme())
	b.AddRect(0, 0, 40, 24, true)
	b.AddRect(41, 0, 39, 24, false)

	if !b.focusCells[coord{0, 40}] {
		t.Error("expected the divider column to be marked as belonging to the focused pane")
	}
}

func TestBoundaries_OutOfViewportCellsAreClipped(t *testing.T) {
	b := NewBoundaries(10, 5, plainTheme())
	b.AddRect(0, 0, 10, 5, false)
	out := b.VTEOutput()
	if out != "" {
		t.Errorf("a pane exactly filling the viewport should draw no border, got %q", out)
	}
}
