// Package pane implements the per-pane terminal emulator: it consumes VT
// events from an external parser and mutates a scroll.Scroll, tracking a
// pending style register between printed glyphs. Pane never decides its own
// geometry — the layout engine is the sole authority for where a pane sits
// and how large it is; Pane only exposes mutators for the layout engine to
// call.
package pane

import (
	"fmt"
	"log"
	"strings"

	"github.com/patrick-goecommerce/paneterm/internal/scroll"
	"github.com/patrick-goecommerce/paneterm/internal/styles"
	"github.com/patrick-goecommerce/paneterm/internal/vt"
)

// ErrUnhandledCsi is returned when a CSI final byte isn't in the accepted
// set. The layout engine logs and drops it rather than aborting.
type ErrUnhandledCsi struct {
	Final  byte
	Params []int64
}

func (e ErrUnhandledCsi) Error() string {
	return fmt.Sprintf("unhandled csi: %q -> %v", e.Final, e.Params)
}

// Pane owns one terminal's scroll buffer, geometry, and pending style
// register.
type Pane struct {
	ID int

	X, Y       int
	Cols, Rows int

	scroll        *scroll.Scroll
	pendingStyles styles.Styles
	shouldRender  bool

	logger *log.Logger
}

// New creates a Pane at the given rectangle, with a fresh scroll buffer
// sized to its interior.
func New(id, x, y, cols, rows int, logger *log.Logger) *Pane {
	if logger == nil {
		logger = log.Default()
	}
	return &Pane{
		ID:           id,
		X:            x,
		Y:            y,
		Cols:         cols,
		Rows:         rows,
		scroll:       scroll.New(cols, rows),
		shouldRender: true,
		logger:       logger,
	}
}

// HandleEvent routes one VT event into the scroll buffer / style register.
func (p *Pane) HandleEvent(ev vt.Event) error {
	switch ev.Kind {
	case vt.Print:
		p.scroll.AddCharacter(scroll.Char{Glyph: ev.Rune, Styles: p.pendingStyles})
		p.shouldRender = true
	case vt.Execute:
		p.execute(ev.Byte)
	case vt.CsiDispatch:
		if err := p.csiDispatch(ev.Params, ev.Final); err != nil {
			return err
		}
	case vt.Hook, vt.Put, vt.Unhook, vt.OscDispatch, vt.EscDispatch:
		// accepted and ignored
	}
	return nil
}

func (p *Pane) execute(b byte) {
	switch b {
	case 0x0D: // carriage return
		p.scroll.MoveCursorToBeginningOfCanonicalLine()
	case 0x08: // backspace
		p.scroll.MoveCursorBackwards(1)
	case 0x0A: // newline
		p.scroll.AddCanonicalLine()
		// Newline clears the pending style register. Most terminals carry
		// style across a line break; this one does not, by design of the
		// source it's modelled on.
		p.pendingStyles.Clear()
		p.shouldRender = true
	}
}

func (p *Pane) csiDispatch(params []int64, final byte) error {
	switch final {
	case 'm':
		p.handleSGR(params)
	case 'C':
		p.scroll.MoveCursorForward(int(vt.Param(params, 0, 0)))
	case 'D':
		p.scroll.MoveCursorBack(int(vt.ParamMin1(params, 0)))
	case 'A':
		p.scroll.MoveCursorUp(int(vt.ParamMin1(params, 0)))
	case 'H':
		if len(params) == 1 {
			p.scroll.MoveCursorTo(int(params[0]), 0)
		} else {
			row := vt.Param(params, 0, 1) - 1
			col := vt.Param(params, 1, 1) - 1
			p.scroll.MoveCursorTo(int(row), int(col))
		}
	case 'K':
		switch vt.Param(params, 0, 0) {
		case 0:
			p.scroll.ClearCanonicalLineRightOfCursor()
		}
	case 'J':
		switch vt.Param(params, 0, 0) {
		case 0:
			p.scroll.ClearAllAfterCursor()
		case 2:
			p.scroll.ClearAll()
		}
	case 'r':
		if len(params) > 1 {
			p.scroll.SetScrollRegion(int(params[0]), int(params[1]))
		} else {
			p.scroll.ClearScrollRegion()
		}
	case 'M':
		p.scroll.DeleteLinesInScrollRegion(int(vt.ParamMin1(params, 0)))
	case 'L':
		p.scroll.AddEmptyLinesInScrollRegion(int(vt.ParamMin1(params, 0)))
	case 'l', 'h', 't', 'n', 'c', 'q', 'd', 'X', 'G':
		// accepted and ignored
	default:
		p.logger.Printf("pane %d: unhandled csi %q %v", p.ID, final, params)
		return ErrUnhandledCsi{Final: final, Params: params}
	}
	return nil
}

func namedColorFor(p int64) (styles.NamedColor, bool) {
	if p < 30 || p > 37 {
		return 0, false
	}
	return styles.NamedColor(p - 30), true
}

// handleSGR applies one CSI `m` sequence to the pending style register.
func (p *Pane) handleSGR(params []int64) {
	if len(params) == 0 || params[0] == 0 {
		p.pendingStyles = styles.Styles{}
		return
	}

	indexed := func() *styles.AnsiCode {
		var p1, p2 *int64
		if len(params) > 1 {
			v := params[1]
			p1 = &v
		}
		if len(params) > 2 {
			v := params[2]
			p2 = &v
		}
		c := styles.Indexed(p1, p2)
		return &c
	}

	switch p0 := params[0]; {
	case p0 == 21:
		p.pendingStyles.Bold = nil
	case p0 == 22:
		p.pendingStyles.Bold = nil
		p.pendingStyles.Dim = nil
	case p0 == 23:
		p.pendingStyles.Italic = nil
	case p0 == 24:
		p.pendingStyles.Underline = nil
	case p0 == 25:
		p.pendingStyles.BlinkSlow = nil
		p.pendingStyles.BlinkFast = nil
	case p0 == 27:
		p.pendingStyles.Reverse = nil
	case p0 == 28:
		p.pendingStyles.Hidden = nil
	case p0 == 29:
		p.pendingStyles.Strike = nil
	case p0 == 39:
		p.pendingStyles.Foreground = nil
	case p0 == 49:
		p.pendingStyles.Background = nil
	case p0 == 1:
		p.pendingStyles.Bold = indexed()
	case p0 == 2:
		p.pendingStyles.Dim = indexed()
	case p0 == 3:
		p.pendingStyles.Italic = indexed()
	case p0 == 4:
		p.pendingStyles.Underline = indexed()
	case p0 == 5:
		p.pendingStyles.BlinkSlow = indexed()
	case p0 == 6:
		p.pendingStyles.BlinkFast = indexed()
	case p0 == 7:
		p.pendingStyles.Reverse = indexed()
	case p0 == 8:
		p.pendingStyles.Hidden = indexed()
	case p0 == 9:
		p.pendingStyles.Strike = indexed()
	case p0 >= 30 && p0 <= 37:
		c, _ := namedColorFor(p0)
		nc := styles.Named(c)
		p.pendingStyles.Foreground = &nc
	case p0 >= 40 && p0 <= 47:
		c, _ := namedColorFor(p0 - 10)
		nc := styles.Named(c)
		p.pendingStyles.Background = &nc
	case p0 == 38:
		p.pendingStyles.Foreground = indexed()
	case p0 == 48:
		p.pendingStyles.Background = indexed()
	default:
		p.logger.Printf("pane %d: unhandled sgr code %v", p.ID, params)
	}
}

// --- geometric mutators, called only by the layout engine -------------------

func (p *Pane) reflow() {
	p.scroll.ChangeSize(p.Cols, p.Rows)
	p.shouldRender = true
}

func (p *Pane) ReduceWidthRight(n int) {
	p.X += n
	p.Cols -= n
	p.reflow()
}

func (p *Pane) ReduceWidthLeft(n int) {
	p.Cols -= n
	p.reflow()
}

func (p *Pane) IncreaseWidthLeft(n int) {
	p.X -= n
	p.Cols += n
	p.reflow()
}

func (p *Pane) IncreaseWidthRight(n int) {
	p.Cols += n
	p.reflow()
}

func (p *Pane) ReduceHeightDown(n int) {
	p.Y += n
	p.Rows -= n
	p.reflow()
}

func (p *Pane) IncreaseHeightDown(n int) {
	p.Rows += n
	p.reflow()
}

func (p *Pane) IncreaseHeightUp(n int) {
	p.Y -= n
	p.Rows += n
	p.reflow()
}

func (p *Pane) ReduceHeightUp(n int) {
	p.Rows -= n
	p.reflow()
}

func (p *Pane) ChangeSize(cols, rows int) {
	p.Cols = cols
	p.Rows = rows
	p.reflow()
}

// --- render ------------------------------------------------------------------

// BufferAsVteOutput renders the pane's dirty rows as a raw CSI stream: one
// goto-and-reset per row, then glyphs with the minimal SGR diff between
// consecutive characters. The style comparator resets at every row boundary
// (the terminal's own style state does not carry across a goto). Returns
// ("", false) if the pane has nothing new to render.
func (p *Pane) BufferAsVteOutput() (string, bool) {
	if !p.shouldRender {
		return "", false
	}

	var b strings.Builder
	lines := p.scroll.AsCharacterLines()
	for row, line := range lines {
		fmt.Fprintf(&b, "\x1b[%d;%dH\x1b[m", p.Y+row+1, p.X+1)
		var cmp styles.Styles
		for col, ch := range line {
			if col >= p.Cols {
				break
			}
			if diff, changed := cmp.UpdateAndReturnDiff(ch.Styles); changed {
				b.WriteString(diff)
			}
			glyph := ch.Glyph
			if glyph == 0 {
				glyph = ' '
			}
			b.WriteRune(glyph)
		}
	}
	p.shouldRender = false
	return b.String(), true
}

// CursorCoordinates returns the pane-relative (x, y) of the cursor.
func (p *Pane) CursorCoordinates() (x, y int) {
	return p.scroll.CursorCoordinatesOnScreen()
}

// AbsoluteCursorCoordinates returns the cursor position in viewport
// coordinates, for the compositor to place the hardware cursor.
func (p *Pane) AbsoluteCursorCoordinates() (x, y int) {
	cx, cy := p.CursorCoordinates()
	return p.X + cx, p.Y + cy
}

func (p *Pane) ScrollUp(n int)   { p.scroll.MoveViewportUp(n); p.shouldRender = true }
func (p *Pane) ScrollDown(n int) { p.scroll.MoveViewportDown(n); p.shouldRender = true }
func (p *Pane) ClearScroll()     { p.scroll.ResetViewport(); p.shouldRender = true }

// MarkDirty forces a full re-render on the next BufferAsVteOutput call. The
// geometric mutators above already set the same flag themselves.
func (p *Pane) MarkDirty() { p.shouldRender = true }

// WeightedArea is the adaptive-split selection metric: rows weighted by an
// approximation of the terminal cell aspect ratio, times cols.
func (p *Pane) WeightedArea() int {
	const cursorHeightWidthRatio = 4
	return p.Rows * cursorHeightWidthRatio * p.Cols
}

// WeightedHeight and WeightedWidth determine split axis: when weighted
// height exceeds width, the pane splits horizontally (new row), else
// vertically (new column).
func (p *Pane) WeightedHeight() int {
	const cursorHeightWidthRatio = 4
	return p.Rows * cursorHeightWidthRatio
}

func (p *Pane) WeightedWidth() int { return p.Cols }
