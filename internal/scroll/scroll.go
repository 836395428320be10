// Package scroll implements the per-pane character grid with scrollback,
// cursor, and optional scroll region that backs a terminal emulator.
package scroll

import "github.com/patrick-goecommerce/paneterm/internal/styles"

// Char is a single styled grid cell.
type Char struct {
	Glyph  rune
	Styles styles.Styles
}

func blank() Char { return Char{Glyph: ' '} }

// line is one canonical line: a logical line of the scrollback that may span
// several visual rows once wrapped to the viewport width. wrapped is set only
// on the rows visualRows produces, marking every visual row after the first
// as a continuation of the line above; stored canonical lines leave it false.
type line struct {
	cells   []Char
	wrapped bool
}

// Scroll is a cols×rows viewport over an append-only canonical-line buffer.
type Scroll struct {
	cols, rows int

	lines []line // canonical lines, oldest first; always at least one
	// cursorLine/cursorCol address a cell within lines; cursorLine is an
	// absolute index, viewportTop is the first visual row currently shown.
	cursorLine int
	cursorCol  int

	viewportTop int // index into the flattened visual-row view

	scrollTop    int // 1-indexed inclusive scroll region bounds; 0 = unset
	scrollBottom int
}

// New allocates a Scroll of the given dimensions with a single empty line.
func New(cols, rows int) *Scroll {
	s := &Scroll{cols: cols, rows: rows}
	s.lines = []line{s.newLine()}
	return s
}

func (s *Scroll) newLine() line {
	return line{cells: make([]Char, 0, s.cols)}
}

// --- visual row bookkeeping -------------------------------------------------

// visualRows flattens canonical lines into rows of exactly s.cols cells,
// wrapping any canonical line whose content exceeds the width. It is
// recomputed on demand rather than cached, since reflows (change_size) and
// edits both invalidate any cache and the core never targets more than a
// handful of kcells.
func (s *Scroll) visualRows() []line {
	var rows []line
	for _, ln := range s.lines {
		if len(ln.cells) == 0 {
			rows = append(rows, line{cells: nil})
			continue
		}
		for i := 0; i < len(ln.cells); i += s.cols {
			end := i + s.cols
			if end > len(ln.cells) {
				end = len(ln.cells)
			}
			rows = append(rows, line{cells: ln.cells[i:end], wrapped: i > 0})
		}
	}
	if len(rows) == 0 {
		rows = []line{{}}
	}
	return rows
}

// cursorVisualPosition maps (cursorLine, cursorCol) to a (row, col) within
// the flattened visual rows.
func (s *Scroll) cursorVisualPosition() (row, col int) {
	rows := s.visualRows()
	count := 0
	for i, ln := range s.lines {
		segs := 1
		if len(ln.cells) > 0 {
			segs = (len(ln.cells)-1)/s.cols + 1
		}
		if i == s.cursorLine {
			segRow := s.cursorCol / s.cols
			if segRow >= segs {
				segRow = segs - 1
			}
			return count + segRow, s.cursorCol % s.cols
		}
		count += segs
	}
	if count >= len(rows) {
		count = len(rows) - 1
	}
	return count, 0
}

// --- cursor-relative mutation ----------------------------------------------

// AddCharacter writes at the cursor, advancing it. Writing past cols opens a
// continuation of the same canonical line, so resizing can reflow it.
func (s *Scroll) AddCharacter(ch Char) {
	ln := &s.lines[s.cursorLine]
	for s.cursorCol >= len(ln.cells) {
		ln.cells = append(ln.cells, blank())
	}
	ln.cells[s.cursorCol] = ch
	s.cursorCol++
}

// AddCanonicalLine terminates the current line and advances to a fresh one.
// If the cursor's visual row is the last row of the scroll region (the whole
// viewport when no region is set), it calls scrollRegionUp instead, which
// appends a fresh line at the end of the buffer; the region's rows are not
// scrolled.
func (s *Scroll) AddCanonicalLine() {
	top, bottom := s.regionBounds()
	row, _ := s.cursorVisualPosition()
	if row == bottom-1 {
		s.scrollRegionUp(top, bottom)
		return
	}
	s.cursorLine++
	s.cursorCol = 0
	if s.cursorLine >= len(s.lines) {
		s.lines = append(s.lines, s.newLine())
	}
}

// MoveCursorToBeginningOfCanonicalLine moves the cursor to column 0 without
// changing which canonical line it addresses (CSI CR / 0x0D).
func (s *Scroll) MoveCursorToBeginningOfCanonicalLine() {
	s.cursorCol = 0
}

// MoveCursorBackwards moves the cursor left by n, clamped to column 0.
func (s *Scroll) MoveCursorBackwards(n int) {
	s.cursorCol -= n
	if s.cursorCol < 0 {
		s.cursorCol = 0
	}
}

func (s *Scroll) MoveCursorForward(n int) {
	s.cursorCol += n
	if s.cursorCol >= s.cols {
		s.cursorCol = s.cols - 1
	}
}

func (s *Scroll) MoveCursorBack(n int) { s.MoveCursorBackwards(n) }

// MoveCursorUp moves the cursor up n visual rows, remapping back onto a
// canonical line and column.
func (s *Scroll) MoveCursorUp(n int) {
	row, col := s.cursorVisualPosition()
	row -= n
	if row < 0 {
		row = 0
	}
	s.setCursorFromVisual(row, col)
}

// MoveCursorTo moves to an absolute visual (row, col), both 0-indexed.
func (s *Scroll) MoveCursorTo(row, col int) {
	s.setCursorFromVisual(row, col)
}

func (s *Scroll) setCursorFromVisual(row, col int) {
	count := 0
	for i, ln := range s.lines {
		segs := 1
		if len(ln.cells) > 0 {
			segs = (len(ln.cells)-1)/s.cols + 1
		}
		if row < count+segs {
			s.cursorLine = i
			s.cursorCol = (row-count)*s.cols + col
			return
		}
		count += segs
	}
	// Past the end: extend onto the last line.
	s.cursorLine = len(s.lines) - 1
	s.cursorCol = col
}

// CursorCoordinatesOnScreen returns the cursor's current (x, y) within the
// viewport, for positioning the hardware cursor.
func (s *Scroll) CursorCoordinatesOnScreen() (x, y int) {
	row, col := s.cursorVisualPosition()
	row -= s.viewportTop
	if row < 0 {
		row = 0
	}
	if row >= s.rows {
		row = s.rows - 1
	}
	return col, row
}

// --- clearing ---------------------------------------------------------------

func (s *Scroll) ClearCanonicalLineRightOfCursor() {
	ln := &s.lines[s.cursorLine]
	for i := s.cursorCol; i < len(ln.cells); i++ {
		ln.cells[i] = blank()
	}
}

// ClearAllAfterCursor blanks every cell from the cursor to the end of the
// visible viewport (not the whole scrollback).
func (s *Scroll) ClearAllAfterCursor() {
	s.ClearCanonicalLineRightOfCursor()
	for i := s.cursorLine + 1; i < len(s.lines); i++ {
		s.lines[i].cells = nil
	}
}

// ClearAll discards every line of the buffer, scrollback included, leaving a
// single empty line, and resets the cursor and the viewport.
func (s *Scroll) ClearAll() {
	s.lines = []line{s.newLine()}
	s.cursorLine = 0
	s.cursorCol = 0
	s.viewportTop = 0
}

// --- scrollback / viewport ---------------------------------------------------

func (s *Scroll) MoveViewportUp(n int) {
	s.viewportTop -= n
	if s.viewportTop < 0 {
		s.viewportTop = 0
	}
}

func (s *Scroll) MoveViewportDown(n int) {
	maxTop := len(s.visualRows()) - s.rows
	if maxTop < 0 {
		maxTop = 0
	}
	s.viewportTop += n
	if s.viewportTop > maxTop {
		s.viewportTop = maxTop
	}
}

func (s *Scroll) ResetViewport() {
	s.viewportTop = 0
}

// --- scroll region -----------------------------------------------------------

// SetScrollRegion sets the 1-indexed inclusive scroll region.
func (s *Scroll) SetScrollRegion(top, bottom int) {
	s.scrollTop = top
	s.scrollBottom = bottom
}

func (s *Scroll) ClearScrollRegion() {
	s.scrollTop = 0
	s.scrollBottom = 0
}

// regionBounds returns the active region as 0-indexed [top, bottom) over
// visual rows, defaulting to the whole viewport.
func (s *Scroll) regionBounds() (top, bottom int) {
	top = 0
	if s.scrollTop > 0 {
		top = s.scrollTop - 1
	}
	bottom = s.rows
	if s.scrollBottom > 0 {
		bottom = s.scrollBottom
	}
	return
}

// scrollRegionUp is what AddCanonicalLine calls at the region's bottom edge:
// it appends a fresh blank canonical line at the end of the buffer and moves
// the cursor onto it. top and bottom are not used; the rows inside the
// region are not shifted and no row of the region is removed.
func (s *Scroll) scrollRegionUp(top, bottom int) {
	_ = top
	_ = bottom
	s.lines = append(s.lines, s.newLine())
	s.cursorLine = len(s.lines) - 1
	s.cursorCol = 0
}

// DeleteLinesInScrollRegion deletes n lines at the cursor row within the
// active region, pulling the rows below up and leaving the cursor in place.
// No-op if the cursor is outside the region.
func (s *Scroll) DeleteLinesInScrollRegion(n int) {
	top, bottom := s.regionBounds()
	row, _ := s.cursorVisualPosition()
	if row < top || row >= bottom {
		return
	}
	idx := s.cursorLine
	end := idx + n
	if end > len(s.lines) {
		end = len(s.lines)
	}
	s.lines = append(s.lines[:idx], s.lines[end:]...)
	for i := 0; i < n; i++ {
		s.lines = append(s.lines, s.newLine())
	}
}

// AddEmptyLinesInScrollRegion inserts n blank lines at the cursor row within
// the active region, pushing content down.
func (s *Scroll) AddEmptyLinesInScrollRegion(n int) {
	top, bottom := s.regionBounds()
	row, _ := s.cursorVisualPosition()
	if row < top || row >= bottom {
		return
	}
	idx := s.cursorLine
	fresh := make([]line, n)
	for i := range fresh {
		fresh[i] = s.newLine()
	}
	s.lines = append(s.lines[:idx], append(fresh, s.lines[idx:]...)...)
}

// --- resize ------------------------------------------------------------------

// ChangeSize resizes the viewport to cols×rows, reflowing wrapped canonical
// lines so history survives a width change. Height changes need no reflow;
// the visual-row view recomputes lazily against the new row count.
func (s *Scroll) ChangeSize(cols, rows int) {
	if cols == s.cols {
		s.rows = rows
		return
	}
	// Re-join each canonical line's cells (they are already contiguous;
	// only the viewport width used to wrap them changes) and update cols.
	s.cols = cols
	s.rows = rows
	if s.cursorCol >= cols {
		s.cursorCol = cols - 1
	}
	if s.cursorCol < 0 {
		s.cursorCol = 0
	}
}

// --- reading for render -------------------------------------------------------

// AsCharacterLines returns the currently visible rows, each padded to cols
// with default-styled spaces.
func (s *Scroll) AsCharacterLines() [][]Char {
	rows := s.visualRows()
	out := make([][]Char, 0, s.rows)
	for r := s.viewportTop; r < s.viewportTop+s.rows; r++ {
		var src []Char
		if r >= 0 && r < len(rows) {
			src = rows[r].cells
		}
		padded := make([]Char, s.cols)
		for c := range padded {
			padded[c] = blank()
		}
		copy(padded, src)
		out = append(out, padded)
	}
	return out
}

// Cols and Rows report the current viewport dimensions.
func (s *Scroll) Cols() int { return s.cols }
func (s *Scroll) Rows() int { return s.rows }
