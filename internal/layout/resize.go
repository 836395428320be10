package layout

import "github.com/patrick-goecommerce/paneterm/internal/pane"

// ResizeRight grows the focused pane rightward if room exists to its right,
// otherwise shrinks it from the left (its left edge moves right and the left
// neighbours grow) if room exists to its left. A pane
// with nothing on either side is left untouched.
func (s *Screen) ResizeRight() error {
	p, ok := s.Focused()
	if !ok {
		return nil
	}
	switch {
	case s.panesExistRight(p):
		return s.increasePaneAndSurroundingsRight(p, resizeStepCols)
	case s.panesExistLeft(p):
		return s.reducePaneAndSurroundingsRight(p, resizeStepCols)
	}
	return nil
}

// ResizeLeft shrinks the focused pane from the right if room exists to its
// right, otherwise grows it leftward if room exists to its left.
func (s *Screen) ResizeLeft() error {
	p, ok := s.Focused()
	if !ok {
		return nil
	}
	switch {
	case s.panesExistRight(p):
		return s.reducePaneAndSurroundingsLeft(p, resizeStepCols)
	case s.panesExistLeft(p):
		return s.increasePaneAndSurroundingsLeft(p, resizeStepCols)
	}
	return nil
}

// ResizeDown shrinks the focused pane from the top if room exists above it,
// otherwise grows it downward if room exists below.
func (s *Screen) ResizeDown() error {
	p, ok := s.Focused()
	if !ok {
		return nil
	}
	switch {
	case s.panesExistAbove(p):
		return s.reducePaneAndSurroundingsDown(p, resizeStepRows)
	case s.panesExistBelow(p):
		return s.increasePaneAndSurroundingsDown(p, resizeStepRows)
	}
	return nil
}

// ResizeUp grows the focused pane upward if room exists above it, otherwise
// shrinks it from the bottom if room exists below.
func (s *Screen) ResizeUp() error {
	p, ok := s.Focused()
	if !ok {
		return nil
	}
	switch {
	case s.panesExistAbove(p):
		return s.increasePaneAndSurroundingsUp(p, resizeStepRows)
	case s.panesExistBelow(p):
		return s.reducePaneAndSurroundingsUp(p, resizeStepRows)
	}
	return nil
}

// --- the "surroundings" algorithm -------------------------------------------
//
// Each of the eight functions below moves one edge of target by n cells and
// propagates that move to its neighbours so the tiling stays gapless:
//   - the neighbours directly across the moving edge grow or shrink by n to
//     absorb the space target gave up or reclaimed;
//   - the contiguous strip of panes flanking target along its OTHER aligned
//     edge (found by walking until a natural cut line, where some neighbour
//     across the moving edge starts) moves by n too, so the strip's own
//     border with its neighbours-across stays a straight line.
//
// Grounded directly on screen.rs's eight identically-named private methods;
// the four public Resize{Left,Right,Up,Down} entry points above choose which
// one applies from panes_exist_* the same way resize_{left,right,up,down} do
// there.

func (s *Screen) reducePaneAndSurroundingsUp(target *pane.Pane, n int) error {
	below := s.directlyBelow(target)
	if len(below) == 0 {
		return ErrResizeInfeasible{Reason: "no panes below to absorb the reduction"}
	}
	if target.Rows-n < 1 {
		return ErrResizeInfeasible{Reason: "pane too short to reduce further"}
	}
	bordersBelow := xBorders(below)
	leftStrip, leftBorder := s.bottomAlignedStripLeftOf(target, bordersBelow)
	rightStrip, rightBorder := s.bottomAlignedStripRightOf(target, bordersBelow)
	below = filterBetweenVertical(below, leftBorder, rightBorder)

	target.ReduceHeightUp(n)
	for _, t := range below {
		t.IncreaseHeightUp(n)
		s.resizePaneOnOS(t)
	}
	for _, t := range append(leftStrip, rightStrip...) {
		t.ReduceHeightUp(n)
		s.resizePaneOnOS(t)
	}
	s.resizePaneOnOS(target)
	return nil
}

func (s *Screen) reducePaneAndSurroundingsDown(target *pane.Pane, n int) error {
	above := s.directlyAbove(target)
	if len(above) == 0 {
		return ErrResizeInfeasible{Reason: "no panes above to absorb the reduction"}
	}
	if target.Rows-n < 1 {
		return ErrResizeInfeasible{Reason: "pane too short to reduce further"}
	}
	bordersAbove := xBorders(above)
	leftStrip, leftBorder := s.topAlignedStripLeftOf(target, bordersAbove)
	rightStrip, rightBorder := s.topAlignedStripRightOf(target, bordersAbove)
	above = filterBetweenVertical(above, leftBorder, rightBorder)

	target.ReduceHeightDown(n)
	for _, t := range above {
		t.IncreaseHeightDown(n)
		s.resizePaneOnOS(t)
	}
	for _, t := range append(leftStrip, rightStrip...) {
		t.ReduceHeightDown(n)
		s.resizePaneOnOS(t)
	}
	s.resizePaneOnOS(target)
	return nil
}

func (s *Screen) reducePaneAndSurroundingsRight(target *pane.Pane, n int) error {
	left := s.directlyLeftOf(target)
	if len(left) == 0 {
		return ErrResizeInfeasible{Reason: "no panes to the left to absorb the reduction"}
	}
	if target.Cols-n < 1 {
		return ErrResizeInfeasible{Reason: "pane too narrow to reduce further"}
	}
	bordersLeft := yBorders(left)
	aboveStrip, topBorder := s.leftAlignedStripAbove(target, bordersLeft)
	belowStrip, bottomBorder := s.leftAlignedStripBelow(target, bordersLeft)
	left = filterBetweenHorizontal(left, topBorder, bottomBorder)

	target.ReduceWidthRight(n)
	for _, t := range left {
		t.IncreaseWidthRight(n)
		s.resizePaneOnOS(t)
	}
	for _, t := range append(aboveStrip, belowStrip...) {
		t.ReduceWidthRight(n)
		s.resizePaneOnOS(t)
	}
	s.resizePaneOnOS(target)
	return nil
}

func (s *Screen) reducePaneAndSurroundingsLeft(target *pane.Pane, n int) error {
	right := s.directlyRightOf(target)
	if len(right) == 0 {
		return ErrResizeInfeasible{Reason: "no panes to the right to absorb the reduction"}
	}
	if target.Cols-n < 1 {
		return ErrResizeInfeasible{Reason: "pane too narrow to reduce further"}
	}
	bordersRight := yBorders(right)
	aboveStrip, topBorder := s.rightAlignedStripAbove(target, bordersRight)
	belowStrip, bottomBorder := s.rightAlignedStripBelow(target, bordersRight)
	right = filterBetweenHorizontal(right, topBorder, bottomBorder)

	target.ReduceWidthLeft(n)
	for _, t := range right {
		t.IncreaseWidthLeft(n)
		s.resizePaneOnOS(t)
	}
	for _, t := range append(aboveStrip, belowStrip...) {
		t.ReduceWidthLeft(n)
		s.resizePaneOnOS(t)
	}
	s.resizePaneOnOS(target)
	return nil
}

func (s *Screen) increasePaneAndSurroundingsUp(target *pane.Pane, n int) error {
	above := s.directlyAbove(target)
	if len(above) == 0 {
		return ErrResizeInfeasible{Reason: "no panes above to shrink"}
	}
	bordersAbove := xBorders(above)
	leftStrip, leftBorder := s.topAlignedStripLeftOf(target, bordersAbove)
	rightStrip, rightBorder := s.topAlignedStripRightOf(target, bordersAbove)
	aboveFiltered := filterBetweenVertical(above, leftBorder, rightBorder)
	for _, t := range aboveFiltered {
		if t.Rows-n < 1 {
			return ErrResizeInfeasible{Reason: "neighbour above too short to shrink further"}
		}
	}

	target.IncreaseHeightUp(n)
	for _, t := range aboveFiltered {
		t.ReduceHeightUp(n)
		s.resizePaneOnOS(t)
	}
	for _, t := range append(leftStrip, rightStrip...) {
		t.IncreaseHeightUp(n)
		s.resizePaneOnOS(t)
	}
	s.resizePaneOnOS(target)
	return nil
}

func (s *Screen) increasePaneAndSurroundingsDown(target *pane.Pane, n int) error {
	below := s.directlyBelow(target)
	if len(below) == 0 {
		return ErrResizeInfeasible{Reason: "no panes below to shrink"}
	}
	bordersBelow := xBorders(below)
	leftStrip, leftBorder := s.bottomAlignedStripLeftOf(target, bordersBelow)
	rightStrip, rightBorder := s.bottomAlignedStripRightOf(target, bordersBelow)
	belowFiltered := filterBetweenVertical(below, leftBorder, rightBorder)
	for _, t := range belowFiltered {
		if t.Rows-n < 1 {
			return ErrResizeInfeasible{Reason: "neighbour below too short to shrink further"}
		}
	}

	target.IncreaseHeightDown(n)
	for _, t := range belowFiltered {
		t.ReduceHeightDown(n)
		s.resizePaneOnOS(t)
	}
	for _, t := range append(leftStrip, rightStrip...) {
		t.IncreaseHeightDown(n)
		s.resizePaneOnOS(t)
	}
	s.resizePaneOnOS(target)
	return nil
}

func (s *Screen) increasePaneAndSurroundingsRight(target *pane.Pane, n int) error {
	right := s.directlyRightOf(target)
	if len(right) == 0 {
		return ErrResizeInfeasible{Reason: "no panes to the right to shrink"}
	}
	bordersRight := yBorders(right)
	aboveStrip, topBorder := s.rightAlignedStripAbove(target, bordersRight)
	belowStrip, bottomBorder := s.rightAlignedStripBelow(target, bordersRight)
	rightFiltered := filterBetweenHorizontal(right, topBorder, bottomBorder)
	for _, t := range rightFiltered {
		if t.Cols-n < 1 {
			return ErrResizeInfeasible{Reason: "neighbour to the right too narrow to shrink further"}
		}
	}

	target.IncreaseWidthRight(n)
	for _, t := range rightFiltered {
		t.ReduceWidthRight(n)
		s.resizePaneOnOS(t)
	}
	for _, t := range append(aboveStrip, belowStrip...) {
		t.IncreaseWidthRight(n)
		s.resizePaneOnOS(t)
	}
	s.resizePaneOnOS(target)
	return nil
}

func (s *Screen) increasePaneAndSurroundingsLeft(target *pane.Pane, n int) error {
	left := s.directlyLeftOf(target)
	if len(left) == 0 {
		return ErrResizeInfeasible{Reason: "no panes to the left to shrink"}
	}
	bordersLeft := yBorders(left)
	aboveStrip, topBorder := s.leftAlignedStripAbove(target, bordersLeft)
	belowStrip, bottomBorder := s.leftAlignedStripBelow(target, bordersLeft)
	leftFiltered := filterBetweenHorizontal(left, topBorder, bottomBorder)
	for _, t := range leftFiltered {
		if t.Cols-n < 1 {
			return ErrResizeInfeasible{Reason: "neighbour to the left too narrow to shrink further"}
		}
	}

	target.IncreaseWidthLeft(n)
	for _, t := range leftFiltered {
		t.ReduceWidthLeft(n)
		s.resizePaneOnOS(t)
	}
	for _, t := range append(aboveStrip, belowStrip...) {
		t.IncreaseWidthLeft(n)
		s.resizePaneOnOS(t)
	}
	s.resizePaneOnOS(target)
	return nil
}

func xBorders(panes []*pane.Pane) map[int]struct{} {
	set := make(map[int]struct{}, len(panes))
	for _, p := range panes {
		set[p.X] = struct{}{}
	}
	return set
}

func yBorders(panes []*pane.Pane) map[int]struct{} {
	set := make(map[int]struct{}, len(panes))
	for _, p := range panes {
		set[p.Y] = struct{}{}
	}
	return set
}

func filterBetweenVertical(panes []*pane.Pane, left, right int) []*pane.Pane {
	var out []*pane.Pane
	for _, p := range panes {
		if paneIsBetweenVerticalBorders(p, left, right) {
			out = append(out, p)
		}
	}
	return out
}

func filterBetweenHorizontal(panes []*pane.Pane, top, bottom int) []*pane.Pane {
	var out []*pane.Pane
	for _, p := range panes {
		if paneIsBetweenHorizontalBorders(p, top, bottom) {
			out = append(out, p)
		}
	}
	return out
}
