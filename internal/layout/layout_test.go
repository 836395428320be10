package layout

import (
	"testing"

	"github.com/patrick-goecommerce/paneterm/internal/osapi"
)

func newTestScreen(cols, rows, maxPanes int) *Screen {
	return New(cols, rows, maxPanes, osapi.NewFake(), nil, nil)
}

// assertTiling checks that every pane currently on the screen has a positive
// size, that no two panes overlap (G1), and that the panes' combined area
// does not exceed the viewport. It does not check border gaps or full
// viewport coverage.
func assertTiling(t *testing.T, s *Screen) {
	t.Helper()
	panes := s.Panes()
	for _, p := range panes {
		if p.Cols < 1 || p.Rows < 1 {
			t.Errorf("pane %d has non-positive dimension %dx%d", p.ID, p.Cols, p.Rows)
		}
	}
	for i, a := range panes {
		for _, b := range panes[i+1:] {
			if overlapsRows(a, b) && overlapsCols(a, b) {
				t.Errorf("panes %d and %d overlap", a.ID, b.ID)
			}
		}
	}
	covered := 0
	for _, p := range panes {
		covered += p.Cols * p.Rows
	}
	// Gaps are exactly the 1-cell borders between adjacent panes, not part of
	// either pane's own area, so total coverage is strictly <= viewport area
	// and is checked against overlap/adjacency instead of exact equality here.
	if covered > s.ViewportCols*s.ViewportRows {
		t.Errorf("covered area %d exceeds viewport area %d", covered, s.ViewportCols*s.ViewportRows)
	}
}

func TestNewPane_FirstPaneFillsViewport(t *testing.T) {
	s := newTestScreen(80, 24, 0)
	if err := s.NewPane(1); err != nil {
		t.Fatalf("NewPane: %v", err)
	}
	p, ok := s.Focused()
	if !ok || p.ID != 1 {
		t.Fatalf("expected pane 1 focused, got %v ok=%v", p, ok)
	}
	if p.X != 0 || p.Y != 0 || p.Cols != 80 || p.Rows != 24 {
		t.Errorf("pane rect = %+v, want full viewport", p)
	}
	assertTiling(t, s)
}

func TestNewPane_SplitsLongestAxis(t *testing.T) {
	s := newTestScreen(80, 24, 0)
	s.NewPane(1)
	if err := s.NewPane(2); err != nil {
		t.Fatalf("NewPane: %v", err)
	}
	assertTiling(t, s)
	if len(s.panes) != 2 {
		t.Fatalf("expected 2 panes, got %d", len(s.panes))
	}
	// 80x24 weighted by rows*4: width(80) vs weighted height(24*4=96) -> split
	// horizontally (stacked top/bottom).
	p1, p2 := s.panes[1], s.panes[2]
	if p1.X != p2.X || p1.Cols != p2.Cols {
		t.Errorf("expected horizontal split (same x/cols), got p1=%+v p2=%+v", p1, p2)
	}
	if p1.Y+p1.Rows+1 != p2.Y {
		t.Errorf("expected a 1-cell border between p1 and p2, got p1=%+v p2=%+v", p1, p2)
	}
}

func TestHorizontalSplit_AndVerticalSplit(t *testing.T) {
	s := newTestScreen(80, 24, 0)
	s.NewPane(1)

	if err := s.VerticalSplit(2); err != nil {
		t.Fatalf("VerticalSplit: %v", err)
	}
	assertTiling(t, s)
	p1, p2 := s.panes[1], s.panes[2]
	if p1.Y != p2.Y || p1.Rows != p2.Rows {
		t.Errorf("expected vertical split (side by side), got p1=%+v p2=%+v", p1, p2)
	}

	if err := s.HorizontalSplit(3); err != nil {
		t.Fatalf("HorizontalSplit: %v", err)
	}
	assertTiling(t, s)
}

func TestNewPane_TooSmallToSplit(t *testing.T) {
	s := newTestScreen(2, 2, 0)
	s.NewPane(1)
	if err := s.NewPane(2); err == nil {
		t.Fatal("expected split-infeasible error on a 2x2 viewport")
	}
}

func TestMoveFocus_WrapsInIDOrder(t *testing.T) {
	s := newTestScreen(80, 24, 0)
	s.NewPane(1)
	s.VerticalSplit(2)
	s.VerticalSplit(3)

	s.setFocus(1)
	s.MoveFocus()
	if p, _ := s.Focused(); p.ID != 2 {
		t.Errorf("after MoveFocus from 1, want 2, got %d", p.ID)
	}
	s.MoveFocus()
	if p, _ := s.Focused(); p.ID != 3 {
		t.Errorf("after MoveFocus from 2, want 3, got %d", p.ID)
	}
	s.MoveFocus()
	if p, _ := s.Focused(); p.ID != 1 {
		t.Errorf("MoveFocus should wrap to 1, got %d", p.ID)
	}
}

func TestClosePane_UnknownID(t *testing.T) {
	s := newTestScreen(80, 24, 0)
	s.NewPane(1)
	if err := s.ClosePane(99); err == nil {
		t.Fatal("expected ErrUnknownPane for unknown id")
	}
}

// TestClosePane_AbsorbedByLeftStrip covers the spec's two-pane side-by-side
// scenario: closing the right pane should hand its whole column back to the
// left one and refocus it.
func TestClosePane_AbsorbedByLeftStrip(t *testing.T) {
	s := newTestScreen(80, 24, 0)
	s.NewPane(1)
	s.VerticalSplit(2)

	if err := s.ClosePane(2); err != nil {
		t.Fatalf("ClosePane: %v", err)
	}
	if _, ok := s.panes[2]; ok {
		t.Fatal("pane 2 should be gone")
	}
	p1 := s.panes[1]
	if p1.Cols != 80 || p1.Rows != 24 {
		t.Errorf("pane 1 should have absorbed the full viewport again, got %+v", p1)
	}
	assertTiling(t, s)
}

// TestClosePane_RefocusesAbsorbingStrip covers the case where the closed
// pane held focus: after absorption the strip that grew should hold focus.
func TestClosePane_RefocusesAbsorbingStrip(t *testing.T) {
	s := newTestScreen(80, 24, 0)
	s.NewPane(1)
	s.VerticalSplit(2) // focus now on 2

	if err := s.CloseFocusedPane(); err != nil {
		t.Fatalf("CloseFocusedPane: %v", err)
	}
	p, ok := s.Focused()
	if !ok || p.ID != 1 {
		t.Fatalf("expected focus reassigned to pane 1, got %v ok=%v", p, ok)
	}
}

// TestClosePane_LastPaneIsNoOp matches the documented redesign: closing the
// only remaining pane (no aligned strip on any side) leaves it in place.
func TestClosePane_LastPaneIsNoOp(t *testing.T) {
	s := newTestScreen(80, 24, 0)
	s.NewPane(1)

	if err := s.ClosePane(1); err != nil {
		t.Fatalf("ClosePane: %v", err)
	}
	if _, ok := s.panes[1]; !ok {
		t.Error("closing the last pane should leave it in place, but it was removed")
	}
}

func TestNewPane_EvictsLowestIDAtMaxPanes(t *testing.T) {
	s := newTestScreen(80, 24, 2)
	s.NewPane(1)
	s.VerticalSplit(2)
	if len(s.panes) != 2 {
		t.Fatalf("expected 2 panes before eviction trigger, got %d", len(s.panes))
	}

	if err := s.NewPane(3); err != nil {
		t.Fatalf("NewPane: %v", err)
	}
	if _, ok := s.panes[1]; ok {
		t.Error("pane 1 (lowest id) should have been evicted")
	}
	if len(s.panes) != 2 {
		t.Errorf("expected 2 panes after eviction+split, got %d", len(s.panes))
	}
	assertTiling(t, s)
}

// TestResizeRight_ShrinksAgainstLeftNeighbour covers focusing the right pane
// of a side-by-side pair and pressing resize-right: with nothing further
// right to grow into, it shrinks the focused pane and grows the left
// neighbour by the same amount.
func TestResizeRight_ShrinksAgainstLeftNeighbour(t *testing.T) {
	s := newTestScreen(80, 24, 0)
	s.NewPane(1)
	s.VerticalSplit(2)
	s.setFocus(2)

	left, right := s.panes[1], s.panes[2]
	leftCols, rightCols := left.Cols, right.Cols

	if err := s.ResizeRight(); err != nil {
		t.Fatalf("ResizeRight: %v", err)
	}
	if right.Cols != rightCols-resizeStepCols {
		t.Errorf("right.Cols = %d, want %d", right.Cols, rightCols-resizeStepCols)
	}
	if left.Cols != leftCols+resizeStepCols {
		t.Errorf("left.Cols = %d, want %d", left.Cols, leftCols+resizeStepCols)
	}
	assertTiling(t, s)
}

// TestResizeRight_NoOpWhenAlone covers a lone pane with empty viewport space
// to its right: with no neighbour on either side to negotiate space with,
// ResizeRight must leave it untouched.
func TestResizeRight_NoOpWhenAlone(t *testing.T) {
	s := newTestScreen(80, 24, 0)
	s.NewPane(1)
	p := s.panes[1]
	p.ChangeSize(40, 24)
	s.setFocus(1)

	if err := s.ResizeRight(); err != nil {
		t.Fatalf("ResizeRight: %v", err)
	}
	if p.Cols != 40 {
		t.Errorf("Cols = %d, want unchanged 40", p.Cols)
	}
}

// TestResizeLeft_ShrinksAgainstRightNeighbour covers the two-pane
// side-by-side scenario (spec §8): shrinking the left pane should grow the
// right one by the same amount, keeping their shared border gapless.
func TestResizeLeft_ShrinksAgainstRightNeighbour(t *testing.T) {
	s := newTestScreen(80, 24, 0)
	s.NewPane(1)
	s.VerticalSplit(2)
	s.setFocus(1)

	left, right := s.panes[1], s.panes[2]
	leftCols, rightCols := left.Cols, right.Cols

	if err := s.ResizeLeft(); err != nil {
		t.Fatalf("ResizeLeft: %v", err)
	}
	if left.Cols != leftCols-resizeStepCols {
		t.Errorf("left.Cols = %d, want %d", left.Cols, leftCols-resizeStepCols)
	}
	if right.Cols != rightCols+resizeStepCols {
		t.Errorf("right.Cols = %d, want %d", right.Cols, rightCols+resizeStepCols)
	}
	if right.X != left.X+left.Cols+1 {
		t.Errorf("border gap broken: left=%+v right=%+v", left, right)
	}
	assertTiling(t, s)
}

// TestResizeDown_PropagatesAcrossAStrip covers a three-pane layout (one on
// top, two stacked below split vertically): the top pane has nothing above
// it, so ResizeDown grows it downward, and both bottom panes must shrink
// together to keep their shared border straight.
func TestResizeDown_PropagatesAcrossAStrip(t *testing.T) {
	s := newTestScreen(80, 24, 0)
	s.NewPane(1)
	s.HorizontalSplit(2) // 1 on top, 2 on bottom
	s.setFocus(2)
	s.VerticalSplit(3) // split the bottom pane into 2 | 3

	top := s.panes[1]
	bottomLeft, bottomRight := s.panes[2], s.panes[3]
	topRows := top.Rows
	blRows, brRows := bottomLeft.Rows, bottomRight.Rows

	s.setFocus(1)
	if err := s.ResizeDown(); err != nil {
		t.Fatalf("ResizeDown: %v", err)
	}
	if top.Rows != topRows+resizeStepRows {
		t.Errorf("top.Rows = %d, want %d", top.Rows, topRows+resizeStepRows)
	}
	if bottomLeft.Rows != blRows-resizeStepRows || bottomRight.Rows != brRows-resizeStepRows {
		t.Errorf("bottom strip did not shrink together: left=%d right=%d, want both %d",
			bottomLeft.Rows, bottomRight.Rows, blRows-resizeStepRows)
	}
	if bottomLeft.Y != top.Y+top.Rows+1 || bottomRight.Y != top.Y+top.Rows+1 {
		t.Errorf("bottom strip border did not move with the top pane's growth: bl=%+v br=%+v top=%+v",
			bottomLeft, bottomRight, top)
	}
	assertTiling(t, s)
}

// TestResizeUp_InfeasibleWhenNeighbourTooShort covers the feasibility guard:
// shrinking a neighbour below one row must abort the whole resize, leaving
// every pane untouched.
func TestResizeUp_InfeasibleWhenNeighbourTooShort(t *testing.T) {
	// A 4-row viewport splits into a 2-row top pane and a 1-row bottom pane
	// (halves reserves a border row), so the top pane is already exactly
	// resizeStepRows tall.
	s := newTestScreen(80, 4, 0)
	s.NewPane(1)
	s.HorizontalSplit(2)

	top := s.panes[1]
	before := *top

	s.setFocus(2)
	if err := s.ResizeUp(); err == nil {
		t.Fatal("expected ErrResizeInfeasible shrinking a neighbour to 0 rows")
	}
	if *top != before {
		t.Errorf("top pane mutated despite infeasible resize: before=%+v after=%+v", before, *top)
	}
}

func TestResize_NoOpWithoutFocus(t *testing.T) {
	s := newTestScreen(80, 24, 0)
	if err := s.ResizeLeft(); err != nil {
		t.Errorf("ResizeLeft with no focus should be a no-op, got %v", err)
	}
}
