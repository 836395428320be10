// Package layout implements the Screen layout engine: it owns every pane in
// the viewport, decides where a new pane goes, resizes panes while
// preserving the border-alignment invariants, and reassigns a closed pane's
// area to a neighbour. It is the sole authority over pane geometry; Pane
// itself never validates a mutation's feasibility.
package layout

import (
	"fmt"
	"log"
	"sort"

	"github.com/patrick-goecommerce/paneterm/internal/osapi"
	"github.com/patrick-goecommerce/paneterm/internal/pane"
	"github.com/patrick-goecommerce/paneterm/internal/vt"
)

// ErrUnknownPane is returned when an instruction names a pane-id the Screen
// does not hold. Callers log and drop rather than aborting the dispatch loop.
type ErrUnknownPane struct{ PaneID int }

func (e ErrUnknownPane) Error() string { return fmt.Sprintf("unknown pane %d", e.PaneID) }

// ErrResizeInfeasible is returned when a resize would drive a pane below one
// interior cell. The instruction is dropped; layout is left untouched.
type ErrResizeInfeasible struct{ Reason string }

func (e ErrResizeInfeasible) Error() string { return "resize infeasible: " + e.Reason }

const resizeStepCols = 10
const resizeStepRows = 2

// Screen owns every pane in the viewport and enforces G1-G6 after each
// public operation. It is driven single-threaded: one goroutine pulls
// instructions off a channel (see cmd/paneterm) and calls these methods one
// at a time, so no internal locking is needed.
type Screen struct {
	ViewportCols int
	ViewportRows int

	panes    map[int]*pane.Pane
	focused  int
	hasFocus bool
	maxPanes int

	osAPI     osapi.OsApi
	closePane func(paneID int)
	logger    *log.Logger
}

// New returns an empty Screen over a viewportCols×viewportRows area.
// maxPanes <= 0 means unlimited. closePane is called (as the source's
// PtyInstruction::ClosePane) whenever the engine itself decides to evict a
// pane, e.g. to respect maxPanes.
func New(viewportCols, viewportRows, maxPanes int, osAPI osapi.OsApi, closePane func(int), logger *log.Logger) *Screen {
	if logger == nil {
		logger = log.Default()
	}
	return &Screen{
		ViewportCols: viewportCols,
		ViewportRows: viewportRows,
		panes:        make(map[int]*pane.Pane),
		maxPanes:     maxPanes,
		osAPI:        osAPI,
		closePane:    closePane,
		logger:       logger,
	}
}

// sortedIDs returns every pane-id in ascending order: the deterministic
// iteration order G6/focus-advance/eviction rely on, since Go maps have none
// of their own.
func (s *Screen) sortedIDs() []int {
	ids := make([]int, 0, len(s.panes))
	for id := range s.panes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Panes exposes the current pane set to the compositor, in deterministic
// order.
func (s *Screen) Panes() []*pane.Pane {
	ids := s.sortedIDs()
	out := make([]*pane.Pane, len(ids))
	for i, id := range ids {
		out[i] = s.panes[id]
	}
	return out
}

// Focused returns the focused pane, if any.
func (s *Screen) Focused() (*pane.Pane, bool) {
	if !s.hasFocus {
		return nil, false
	}
	p, ok := s.panes[s.focused]
	return p, ok
}

func (s *Screen) resizePaneOnOS(p *pane.Pane) {
	if s.osAPI == nil {
		return
	}
	if err := s.osAPI.SetTerminalSizeUsingFd(p.ID, p.Cols, p.Rows); err != nil {
		s.logger.Printf("layout: resize pane %d on os: %v", p.ID, err)
	}
}

// Pty routes one VT event to its owning pane.
func (s *Screen) Pty(paneID int, ev vt.Event) error {
	p, ok := s.panes[paneID]
	if !ok {
		s.logger.Printf("layout: pty event for unknown pane %d", paneID)
		return ErrUnknownPane{PaneID: paneID}
	}
	if err := p.HandleEvent(ev); err != nil {
		s.logger.Printf("layout: pane %d: %v", paneID, err)
		return err
	}
	return nil
}

// MoveFocus advances focus to the next pane in ascending pane-id order,
// wrapping to the first. Purely positional; no spatial meaning.
func (s *Screen) MoveFocus() {
	ids := s.sortedIDs()
	if len(ids) == 0 {
		s.hasFocus = false
		return
	}
	if !s.hasFocus {
		s.setFocus(ids[0])
		return
	}
	for i, id := range ids {
		if id == s.focused {
			s.setFocus(ids[(i+1)%len(ids)])
			return
		}
	}
	s.setFocus(ids[0])
}

func (s *Screen) setFocus(id int) {
	s.focused = id
	s.hasFocus = true
}

// ScrollUp/ScrollDown/ClearScroll act on the focused pane's viewport.
func (s *Screen) ScrollUp(n int) {
	if p, ok := s.Focused(); ok {
		p.ScrollUp(n)
	}
}

func (s *Screen) ScrollDown(n int) {
	if p, ok := s.Focused(); ok {
		p.ScrollDown(n)
	}
}

func (s *Screen) ClearScroll() {
	if p, ok := s.Focused(); ok {
		p.ClearScroll()
	}
}

// overlapsRows reports whether a and b share at least one row.
func overlapsRows(a, b *pane.Pane) bool {
	return a.Y < b.Y+b.Rows && b.Y < a.Y+a.Rows
}

// overlapsCols reports whether a and b share at least one column.
func overlapsCols(a, b *pane.Pane) bool {
	return a.X < b.X+b.Cols && b.X < a.X+a.Cols
}
