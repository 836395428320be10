package compositor

import (
	"fmt"
	"sort"
	"strings"
)

// side bits mark which directions a border cell connects to; a cell
// collects bits from every pane rectangle that touches it, so two panes
// sharing an edge naturally produce a T-junction or cross where their
// borders meet.
type side uint8

const (
	sideNorth side = 1 << iota
	sideEast
	sideSouth
	sideWest
)

var boxChar = map[side]rune{
	sideNorth:                                        '│',
	sideEast:                                         '─',
	sideSouth:                                        '│',
	sideWest:                                         '─',
	sideNorth | sideSouth:                             '│',
	sideEast | sideWest:                               '─',
	sideNorth | sideEast:                              '└',
	sideNorth | sideWest:                              '┘',
	sideSouth | sideEast:                              '┌',
	sideSouth | sideWest:                              '┐',
	sideNorth | sideEast | sideSouth:                  '├',
	sideNorth | sideEast | sideWest:                   '┴',
	sideSouth | sideEast | sideWest:                   '┬',
	sideNorth | sideSouth | sideWest:                  '┤',
	sideNorth | sideEast | sideSouth | sideWest:       '┼',
}

type coord struct{ row, col int }

// Boundaries accumulates border cells across every pane rectangle in a
// frame and renders them as a single CSI string, the wire-level contract
// spec.md leaves to "the boundaries-drawing utility".
type Boundaries struct {
	cols, rows int
	cells      map[coord]side
	focusedID  int
	focusCells map[coord]bool
	theme      Theme
}

// NewBoundaries returns an empty border accumulator for a viewport of the
// given size.
func NewBoundaries(cols, rows int, theme Theme) *Boundaries {
	return &Boundaries{
		cols:       cols,
		rows:       rows,
		cells:      make(map[coord]side),
		focusCells: make(map[coord]bool),
		theme:      theme,
	}
}

// AddRect records the border strip surrounding one pane's rectangle (x, y,
// cols, rows). focused marks whether this pane currently holds focus, so
// its border is drawn in the theme's highlight colour.
func (b *Boundaries) AddRect(x, y, cols, rows int, focused bool) {
	top, bottom := y-1, y+rows
	left, right := x-1, x+cols

	for col := left + 1; col < right; col++ {
		b.mark(coord{top, col}, sideEast|sideWest, focused)
		b.mark(coord{bottom, col}, sideEast|sideWest, focused)
	}
	for row := top + 1; row < bottom; row++ {
		b.mark(coord{row, left}, sideNorth|sideSouth, focused)
		b.mark(coord{row, right}, sideNorth|sideSouth, focused)
	}
	b.mark(coord{top, left}, sideEast|sideSouth, focused)
	b.mark(coord{top, right}, sideWest|sideSouth, focused)
	b.mark(coord{bottom, left}, sideEast|sideNorth, focused)
	b.mark(coord{bottom, right}, sideWest|sideNorth, focused)
}

func (b *Boundaries) mark(c coord, s side, focused bool) {
	if c.row < -1 || c.col < -1 || c.row > b.rows || c.col > b.cols {
		return
	}
	b.cells[c] |= s
	if focused {
		b.focusCells[c] = true
	}
}

// VTEOutput renders every recorded border cell as a CSI goto + coloured
// glyph, in row-major order so the sequence is deterministic.
func (b *Boundaries) VTEOutput() string {
	coords := make([]coord, 0, len(b.cells))
	for c := range b.cells {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].row != coords[j].row {
			return coords[i].row < coords[j].row
		}
		return coords[i].col < coords[j].col
	})

	var out strings.Builder
	for _, c := range coords {
		if c.row < 0 || c.col < 0 || c.row >= b.rows || c.col >= b.cols {
			continue
		}
		r, ok := boxChar[b.cells[c]]
		if !ok {
			continue
		}
		style := b.theme.Border
		if b.focusCells[c] {
			style = b.theme.Highlight
		}
		fmt.Fprintf(&out, "\x1b[%d;%dH%s", c.row+1, c.col+1, style.Render(string(r)))
	}
	return out.String()
}
