// Package vtparse turns a raw PTY output byte stream into vt.Event values.
// It is the external VT byte parser the emulator core treats as a pluggable
// collaborator: the same state-machine shape as a hand-rolled ANSI parser,
// but emitting events instead of mutating a screen buffer directly, so the
// parser and the emulator behind it can vary independently.
package vtparse

import (
	"strconv"
	"strings"

	"github.com/patrick-goecommerce/paneterm/internal/vt"
)

type state int

const (
	stateNormal state = iota
	stateESC
	stateCSI
	stateOSC
)

// Parser is a streaming byte-to-event decoder. It is not safe for concurrent
// use; each pane's PTY reader goroutine owns its own Parser.
type Parser struct {
	state  state
	csiBuf []byte
	oscBuf []byte
}

// New returns a Parser ready to consume bytes from a fresh PTY.
func New() *Parser {
	return &Parser{}
}

// Feed decodes p, invoking emit once per recognised event. Every C0 control
// byte other than ESC is emitted at once as an Execute event; an incomplete
// trailing escape sequence is carried in internal state until the next call.
func (pr *Parser) Feed(p []byte, emit func(vt.Event)) {
	for _, b := range p {
		pr.feedByte(b, emit)
	}
}

func (pr *Parser) feedByte(b byte, emit func(vt.Event)) {
	switch pr.state {
	case stateNormal:
		pr.normal(b, emit)
	case stateESC:
		pr.esc(b, emit)
	case stateCSI:
		pr.csi(b, emit)
	case stateOSC:
		pr.osc(b, emit)
	}
}

func (pr *Parser) normal(b byte, emit func(vt.Event)) {
	switch {
	case b == 0x1b:
		pr.state = stateESC
	case b == '\r', b == '\b', b == '\n', b == 0x07:
		emit(vt.NewExecute(b))
	case b >= 0x20:
		emit(vt.NewPrint(rune(b)))
	default:
		emit(vt.NewExecute(b))
	}
}

func (pr *Parser) esc(b byte, emit func(vt.Event)) {
	switch b {
	case '[':
		pr.state = stateCSI
		pr.csiBuf = pr.csiBuf[:0]
	case ']':
		pr.state = stateOSC
		pr.oscBuf = pr.oscBuf[:0]
	default:
		emit(vt.NewEscDispatch(nil, false, b))
		pr.state = stateNormal
	}
}

func (pr *Parser) csi(b byte, emit func(vt.Event)) {
	if (b >= 0x30 && b <= 0x3F) || (b >= 0x20 && b <= 0x2F) {
		pr.csiBuf = append(pr.csiBuf, b)
		return
	}
	params, intermediates := splitCSI(pr.csiBuf)
	emit(vt.NewCsiDispatch(params, intermediates, false, b))
	pr.state = stateNormal
}

func (pr *Parser) osc(b byte, emit func(vt.Event)) {
	if b == 0x07 || b == 0x1b {
		emit(vt.NewOscDispatch(splitOSC(pr.oscBuf), b == 0x07))
		pr.state = stateNormal
		return
	}
	pr.oscBuf = append(pr.oscBuf, b)
}

// splitCSI separates the numeric parameter list from any leading private
// marker / intermediate bytes collected in the CSI buffer.
func splitCSI(buf []byte) (params []int64, intermediates []byte) {
	raw := string(buf)
	var lead []byte
	for len(raw) > 0 && strings.ContainsRune("?>=!", rune(raw[0])) {
		lead = append(lead, raw[0])
		raw = raw[1:]
	}
	if raw == "" {
		return nil, lead
	}
	for _, part := range strings.Split(raw, ";") {
		v, _ := strconv.ParseInt(part, 10, 64)
		params = append(params, v)
	}
	return params, lead
}

func splitOSC(buf []byte) [][]byte {
	var out [][]byte
	for _, part := range strings.Split(string(buf), ";") {
		out = append(out, []byte(part))
	}
	return out
}
