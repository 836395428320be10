package layout

import "github.com/patrick-goecommerce/paneterm/internal/pane"

// NewPane performs an adaptive split: it enforces max_panes, then either
// fills the empty viewport or splits whichever existing pane has the
// largest weighted area, choosing the split axis from that pane's shape.
func (s *Screen) NewPane(id int) error {
	s.closeDownToMaxTerminals()

	if len(s.panes) == 0 {
		p := pane.New(id, 0, 0, s.ViewportCols, s.ViewportRows, s.logger)
		s.panes[id] = p
		s.resizePaneOnOS(p)
		s.setFocus(id)
		return nil
	}

	target := s.largestWeightedPane()
	horizontal := target.WeightedHeight() > target.WeightedWidth()
	return s.split(target, id, horizontal)
}

// HorizontalSplit splits the focused pane along a new row boundary. If the
// screen is empty it behaves like NewPane.
func (s *Screen) HorizontalSplit(id int) error {
	return s.directedSplit(id, true)
}

// VerticalSplit splits the focused pane along a new column boundary. If the
// screen is empty it behaves like NewPane.
func (s *Screen) VerticalSplit(id int) error {
	return s.directedSplit(id, false)
}

func (s *Screen) directedSplit(id int, horizontal bool) error {
	s.closeDownToMaxTerminals()
	if len(s.panes) == 0 {
		p := pane.New(id, 0, 0, s.ViewportCols, s.ViewportRows, s.logger)
		s.panes[id] = p
		s.resizePaneOnOS(p)
		s.setFocus(id)
		return nil
	}
	target, ok := s.Focused()
	if !ok {
		target = s.largestWeightedPane()
	}
	return s.split(target, id, horizontal)
}

func (s *Screen) largestWeightedPane() *pane.Pane {
	var best *pane.Pane
	for _, id := range s.sortedIDs() {
		p := s.panes[id]
		if best == nil || p.WeightedArea() > best.WeightedArea() {
			best = p
		}
	}
	return best
}

// split halves target along the given axis, placing the new pane in the
// second half, with a 1-cell border gap between the two.
func (s *Screen) split(target *pane.Pane, newID int, horizontal bool) error {
	if horizontal {
		if target.Rows < 3 {
			return ErrResizeInfeasible{Reason: "pane too small to split horizontally"}
		}
		topRows, bottomRows := halves(target.Rows)
		newY := target.Y + topRows + 1

		np := pane.New(newID, target.X, newY, target.Cols, bottomRows, s.logger)
		target.ChangeSize(target.Cols, topRows)

		s.panes[newID] = np
		s.resizePaneOnOS(target)
		s.resizePaneOnOS(np)
		s.setFocus(newID)
		return nil
	}

	if target.Cols < 3 {
		return ErrResizeInfeasible{Reason: "pane too small to split vertically"}
	}
	leftCols, rightCols := halves(target.Cols)
	newX := target.X + leftCols + 1

	np := pane.New(newID, newX, target.Y, rightCols, target.Rows, s.logger)
	target.ChangeSize(leftCols, target.Rows)

	s.panes[newID] = np
	s.resizePaneOnOS(target)
	s.resizePaneOnOS(np)
	s.setFocus(newID)
	return nil
}

// halves computes a split of total cells (minus one border cell) into a
// first and second half, with the first half absorbing the extra cell when
// total is even.
func halves(total int) (first, second int) {
	second = (total - 1) / 2
	if total%2 == 0 {
		first = second + 1
	} else {
		first = second
	}
	return
}

// closeDownToMaxTerminals evicts the lowest-keyed pane, repeatedly, until
// the pane count is below max_panes. Eviction notifies the outbound
// ClosePane callback but never triggers a render.
func (s *Screen) closeDownToMaxTerminals() {
	if s.maxPanes <= 0 {
		return
	}
	for len(s.panes) >= s.maxPanes {
		ids := s.sortedIDs()
		if len(ids) == 0 {
			return
		}
		lowest := ids[0]
		s.closePaneWithoutRerender(lowest)
		if s.closePane != nil {
			s.closePane(lowest)
		}
	}
}
