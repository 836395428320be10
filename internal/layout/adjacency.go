package layout

import "github.com/patrick-goecommerce/paneterm/internal/pane"

// directlyLeftOf returns panes whose right edge (plus the one-cell border)
// meets target's left edge and whose rows overlap target's.
func (s *Screen) directlyLeftOf(target *pane.Pane) []*pane.Pane {
	var out []*pane.Pane
	for _, id := range s.sortedIDs() {
		p := s.panes[id]
		if p == target {
			continue
		}
		if p.X+p.Cols+1 == target.X && overlapsRows(p, target) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Screen) directlyRightOf(target *pane.Pane) []*pane.Pane {
	var out []*pane.Pane
	for _, id := range s.sortedIDs() {
		p := s.panes[id]
		if p == target {
			continue
		}
		if target.X+target.Cols+1 == p.X && overlapsRows(p, target) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Screen) directlyAbove(target *pane.Pane) []*pane.Pane {
	var out []*pane.Pane
	for _, id := range s.sortedIDs() {
		p := s.panes[id]
		if p == target {
			continue
		}
		if p.Y+p.Rows+1 == target.Y && overlapsCols(p, target) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Screen) directlyBelow(target *pane.Pane) []*pane.Pane {
	var out []*pane.Pane
	for _, id := range s.sortedIDs() {
		p := s.panes[id]
		if p == target {
			continue
		}
		if target.Y+target.Rows+1 == p.Y && overlapsCols(p, target) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Screen) panesExistLeft(target *pane.Pane) bool  { return len(s.directlyLeftOf(target)) > 0 }
func (s *Screen) panesExistRight(target *pane.Pane) bool { return len(s.directlyRightOf(target)) > 0 }
func (s *Screen) panesExistAbove(target *pane.Pane) bool { return len(s.directlyAbove(target)) > 0 }
func (s *Screen) panesExistBelow(target *pane.Pane) bool { return len(s.directlyBelow(target)) > 0 }

// panesLeftAlignedWith returns other panes sharing target's exact x.
func (s *Screen) panesLeftAlignedWith(target *pane.Pane) []*pane.Pane {
	var out []*pane.Pane
	for _, id := range s.sortedIDs() {
		p := s.panes[id]
		if p != target && p.X == target.X {
			out = append(out, p)
		}
	}
	return out
}

func (s *Screen) panesRightAlignedWith(target *pane.Pane) []*pane.Pane {
	var out []*pane.Pane
	edge := target.X + target.Cols
	for _, id := range s.sortedIDs() {
		p := s.panes[id]
		if p != target && p.X+p.Cols == edge {
			out = append(out, p)
		}
	}
	return out
}

func (s *Screen) panesTopAlignedWith(target *pane.Pane) []*pane.Pane {
	var out []*pane.Pane
	for _, id := range s.sortedIDs() {
		p := s.panes[id]
		if p != target && p.Y == target.Y {
			out = append(out, p)
		}
	}
	return out
}

func (s *Screen) panesBottomAlignedWith(target *pane.Pane) []*pane.Pane {
	var out []*pane.Pane
	edge := target.Y + target.Rows
	for _, id := range s.sortedIDs() {
		p := s.panes[id]
		if p != target && p.Y+p.Rows == edge {
			out = append(out, p)
		}
	}
	return out
}

// horizontalBorders returns the set of row-coordinates formed by each
// pane's top and bottom+1 edge, used to verify a strip's outer rectangle
// exactly matches a target's shape before absorbing it.
func horizontalBorders(panes []*pane.Pane) map[int]struct{} {
	set := make(map[int]struct{})
	for _, p := range panes {
		set[p.Y] = struct{}{}
		set[p.Y+p.Rows+1] = struct{}{}
	}
	return set
}

func verticalBorders(panes []*pane.Pane) map[int]struct{} {
	set := make(map[int]struct{})
	for _, p := range panes {
		set[p.X] = struct{}{}
		set[p.X+p.Cols+1] = struct{}{}
	}
	return set
}

// bottomAlignedStripLeftOf walks the chain of panes bottom-aligned with
// target, contiguous leftward from target's left edge: each next pane's
// right-edge successor must equal the current pane's x. Returns the strip in
// near-to-far order (nearest to target first) plus the x-coordinate where
// the walk stopped (the natural cut line, or 0 if it reached the viewport
// edge).
func (s *Screen) bottomAlignedStripLeftOf(target *pane.Pane, stopX map[int]struct{}) ([]*pane.Pane, int) {
	aligned := s.panesBottomAlignedWith(target)
	byRightEdge := make(map[int]*pane.Pane, len(aligned))
	for _, p := range aligned {
		byRightEdge[p.X+p.Cols+1] = p
	}

	var strip []*pane.Pane
	cutX := 0
	cur := target
	for {
		next, ok := byRightEdge[cur.X]
		if !ok {
			cutX = 0
			break
		}
		strip = append(strip, next)
		if _, stop := stopX[next.X+next.Cols+1]; stop {
			cutX = next.X
			break
		}
		cur = next
	}
	return strip, cutX
}

func (s *Screen) bottomAlignedStripRightOf(target *pane.Pane, stopX map[int]struct{}) ([]*pane.Pane, int) {
	aligned := s.panesBottomAlignedWith(target)
	byLeftEdge := make(map[int]*pane.Pane, len(aligned))
	for _, p := range aligned {
		byLeftEdge[p.X] = p
	}

	var strip []*pane.Pane
	cutX := s.ViewportCols
	cur := target
	for {
		next, ok := byLeftEdge[cur.X+cur.Cols+1]
		if !ok {
			cutX = s.ViewportCols
			break
		}
		strip = append(strip, next)
		if _, stop := stopX[next.X]; stop {
			cutX = next.X + next.Cols
			break
		}
		cur = next
	}
	return strip, cutX
}

// topAlignedStripLeftOf/RightOf walk panes sharing target's top edge
// (horizontally beside it), used by the resize-down surroundings algorithm
// the same way bottomAlignedStrip{Left,Right}Of serve resize-up.
func (s *Screen) topAlignedStripLeftOf(target *pane.Pane, stopX map[int]struct{}) ([]*pane.Pane, int) {
	aligned := s.panesTopAlignedWith(target)
	byRightEdge := make(map[int]*pane.Pane, len(aligned))
	for _, p := range aligned {
		byRightEdge[p.X+p.Cols+1] = p
	}

	var strip []*pane.Pane
	cutX := 0
	cur := target
	for {
		next, ok := byRightEdge[cur.X]
		if !ok {
			cutX = 0
			break
		}
		strip = append(strip, next)
		if _, stop := stopX[next.X+next.Cols+1]; stop {
			cutX = next.X
			break
		}
		cur = next
	}
	return strip, cutX
}

func (s *Screen) topAlignedStripRightOf(target *pane.Pane, stopX map[int]struct{}) ([]*pane.Pane, int) {
	aligned := s.panesTopAlignedWith(target)
	byLeftEdge := make(map[int]*pane.Pane, len(aligned))
	for _, p := range aligned {
		byLeftEdge[p.X] = p
	}

	var strip []*pane.Pane
	cutX := s.ViewportCols
	cur := target
	for {
		next, ok := byLeftEdge[cur.X+cur.Cols+1]
		if !ok {
			cutX = s.ViewportCols
			break
		}
		strip = append(strip, next)
		if _, stop := stopX[next.X]; stop {
			cutX = next.X + next.Cols
			break
		}
		cur = next
	}
	return strip, cutX
}

// leftAlignedStripAbove/Below walk panes sharing target's left edge
// (vertically stacked on it), used by the resize-right surroundings
// algorithm.
func (s *Screen) leftAlignedStripAbove(target *pane.Pane, stopY map[int]struct{}) ([]*pane.Pane, int) {
	aligned := s.panesLeftAlignedWith(target)
	byBottomEdge := make(map[int]*pane.Pane, len(aligned))
	for _, p := range aligned {
		byBottomEdge[p.Y+p.Rows+1] = p
	}

	var strip []*pane.Pane
	cutY := 0
	cur := target
	for {
		next, ok := byBottomEdge[cur.Y]
		if !ok {
			cutY = 0
			break
		}
		strip = append(strip, next)
		if _, stop := stopY[next.Y+next.Rows+1]; stop {
			cutY = next.Y
			break
		}
		cur = next
	}
	return strip, cutY
}

func (s *Screen) leftAlignedStripBelow(target *pane.Pane, stopY map[int]struct{}) ([]*pane.Pane, int) {
	aligned := s.panesLeftAlignedWith(target)
	byTopEdge := make(map[int]*pane.Pane, len(aligned))
	for _, p := range aligned {
		byTopEdge[p.Y] = p
	}

	var strip []*pane.Pane
	cutY := s.ViewportRows
	cur := target
	for {
		next, ok := byTopEdge[cur.Y+cur.Rows+1]
		if !ok {
			cutY = s.ViewportRows
			break
		}
		strip = append(strip, next)
		if _, stop := stopY[next.Y]; stop {
			cutY = next.Y + next.Rows
			break
		}
		cur = next
	}
	return strip, cutY
}

// rightAlignedStripAbove/Below walk panes sharing target's right edge,
// used by the resize-left surroundings algorithm.
func (s *Screen) rightAlignedStripAbove(target *pane.Pane, stopY map[int]struct{}) ([]*pane.Pane, int) {
	aligned := s.panesRightAlignedWith(target)
	byBottomEdge := make(map[int]*pane.Pane, len(aligned))
	for _, p := range aligned {
		byBottomEdge[p.Y+p.Rows+1] = p
	}

	var strip []*pane.Pane
	cutY := 0
	cur := target
	for {
		next, ok := byBottomEdge[cur.Y]
		if !ok {
			cutY = 0
			break
		}
		strip = append(strip, next)
		if _, stop := stopY[next.Y+next.Rows+1]; stop {
			cutY = next.Y
			break
		}
		cur = next
	}
	return strip, cutY
}

func (s *Screen) rightAlignedStripBelow(target *pane.Pane, stopY map[int]struct{}) ([]*pane.Pane, int) {
	aligned := s.panesRightAlignedWith(target)
	byTopEdge := make(map[int]*pane.Pane, len(aligned))
	for _, p := range aligned {
		byTopEdge[p.Y] = p
	}

	var strip []*pane.Pane
	cutY := s.ViewportRows
	cur := target
	for {
		next, ok := byTopEdge[cur.Y+cur.Rows+1]
		if !ok {
			cutY = s.ViewportRows
			break
		}
		strip = append(strip, next)
		if _, stop := stopY[next.Y]; stop {
			cutY = next.Y + next.Rows
			break
		}
		cur = next
	}
	return strip, cutY
}

// paneIsBetweenVerticalBorders reports whether p's interior lies within
// [left, right] on the x axis.
func paneIsBetweenVerticalBorders(p *pane.Pane, left, right int) bool {
	return p.X >= left && p.X+p.Cols <= right
}

func paneIsBetweenHorizontalBorders(p *pane.Pane, top, bottom int) bool {
	return p.Y >= top && p.Y+p.Rows <= bottom
}
