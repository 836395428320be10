package layout

import "github.com/patrick-goecommerce/paneterm/internal/pane"

// ClosePane removes id's pane, reassigning its area to an aligned neighbour
// strip, and marks the layout dirty for a render.
func (s *Screen) ClosePane(id int) error {
	if _, ok := s.panes[id]; !ok {
		return ErrUnknownPane{PaneID: id}
	}
	s.closePaneWithoutRerender(id)
	return nil
}

// CloseFocusedPane closes whichever pane currently has focus, if any, and
// notifies the outbound close callback the way the source's
// close_focused_pane dispatches PtyInstruction::ClosePane before mutating
// layout.
func (s *Screen) CloseFocusedPane() error {
	p, ok := s.Focused()
	if !ok {
		return nil
	}
	if s.closePane != nil {
		s.closePane(p.ID)
	}
	return s.ClosePane(p.ID)
}

// closePaneWithoutRerender absorbs id's area into the first available
// aligned neighbour strip, trying left, then right, then above, then below.
// A pane with no exactly-aligned strip on any side (the last pane on
// screen, or an irregular layout no strip spans exactly) is left in place.
func (s *Screen) closePaneWithoutRerender(id int) {
	target, ok := s.panes[id]
	if !ok {
		return
	}
	width := target.Cols
	height := target.Rows

	if strip, ok := s.terminalsToLeftBetweenAligningBorders(target); ok {
		for _, t := range strip {
			t.IncreaseWidthRight(width + 1)
			s.resizePaneOnOS(t)
		}
		s.reassignFocus(id, strip)
	} else if strip, ok := s.terminalsToRightBetweenAligningBorders(target); ok {
		for _, t := range strip {
			t.IncreaseWidthLeft(width + 1)
			s.resizePaneOnOS(t)
		}
		s.reassignFocus(id, strip)
	} else if strip, ok := s.terminalsAboveBetweenAligningBorders(target); ok {
		for _, t := range strip {
			t.IncreaseHeightDown(height + 1)
			s.resizePaneOnOS(t)
		}
		s.reassignFocus(id, strip)
	} else if strip, ok := s.terminalsBelowBetweenAligningBorders(target); ok {
		for _, t := range strip {
			t.IncreaseHeightUp(height + 1)
			s.resizePaneOnOS(t)
		}
		s.reassignFocus(id, strip)
	} else {
		return
	}

	delete(s.panes, id)
}

func (s *Screen) reassignFocus(closedID int, strip []*pane.Pane) {
	if s.hasFocus && s.focused == closedID && len(strip) > 0 {
		s.setFocus(strip[len(strip)-1].ID)
	}
}

// terminalsToLeftBetweenAligningBorders returns the panes directly left of
// target, filtered to target's exact vertical span, but only if that span's
// own top and bottom edges are present among the left neighbours' horizontal
// borders — i.e. the strip's outer rectangle matches target's height exactly,
// with no partial overlap left unclaimed.
func (s *Screen) terminalsToLeftBetweenAligningBorders(target *pane.Pane) ([]*pane.Pane, bool) {
	upper := target.Y
	lower := target.Y + target.Rows + 1
	left := s.directlyLeftOf(target)
	if len(left) == 0 {
		return nil, false
	}
	borders := horizontalBorders(left)
	if _, okU := borders[upper]; !okU {
		return nil, false
	}
	if _, okL := borders[lower]; !okL {
		return nil, false
	}
	return filterBetweenHorizontal(left, upper, lower), true
}

func (s *Screen) terminalsToRightBetweenAligningBorders(target *pane.Pane) ([]*pane.Pane, bool) {
	upper := target.Y
	lower := target.Y + target.Rows + 1
	right := s.directlyRightOf(target)
	if len(right) == 0 {
		return nil, false
	}
	borders := horizontalBorders(right)
	if _, okU := borders[upper]; !okU {
		return nil, false
	}
	if _, okL := borders[lower]; !okL {
		return nil, false
	}
	return filterBetweenHorizontal(right, upper, lower), true
}

func (s *Screen) terminalsAboveBetweenAligningBorders(target *pane.Pane) ([]*pane.Pane, bool) {
	left := target.X
	right := target.X + target.Cols + 1
	above := s.directlyAbove(target)
	if len(above) == 0 {
		return nil, false
	}
	borders := verticalBorders(above)
	if _, okL := borders[left]; !okL {
		return nil, false
	}
	if _, okR := borders[right]; !okR {
		return nil, false
	}
	return filterBetweenVertical(above, left, right), true
}

func (s *Screen) terminalsBelowBetweenAligningBorders(target *pane.Pane) ([]*pane.Pane, bool) {
	left := target.X
	right := target.X + target.Cols + 1
	below := s.directlyBelow(target)
	if len(below) == 0 {
		return nil, false
	}
	borders := verticalBorders(below)
	if _, okL := borders[left]; !okL {
		return nil, false
	}
	if _, okR := borders[right]; !okR {
		return nil, false
	}
	return filterBetweenVertical(below, left, right), true
}
