// Package compositor is the stateless render pass: it walks every pane in
// deterministic order, writes each one's diffed output, draws inter-pane
// borders from the panes' rectangles, and positions the hardware cursor at
// the focused pane. It holds no state of its own between frames.
package compositor

import (
	"fmt"
	"io"

	"github.com/patrick-goecommerce/paneterm/internal/layout"
)

// Render draws one frame to w: every dirty pane's diff, then the border
// frame, then the cursor goto. It holds its handle on w only for the
// duration of this call, matching "the compositor holds a scoped writable
// handle to stdout for the duration of a frame" (§9).
func Render(w io.Writer, s *layout.Screen, theme Theme) error {
	focused, hasFocus := s.Focused()
	bounds := NewBoundaries(s.ViewportCols, s.ViewportRows, theme)

	for _, p := range s.Panes() {
		isFocused := hasFocus && p.ID == focused.ID
		if out, dirty := p.BufferAsVteOutput(); dirty {
			if _, err := io.WriteString(w, out); err != nil {
				return fmt.Errorf("compositor: write pane %d: %w", p.ID, err)
			}
		}
		bounds.AddRect(p.X, p.Y, p.Cols, p.Rows, isFocused)
	}

	if _, err := io.WriteString(w, bounds.VTEOutput()); err != nil {
		return fmt.Errorf("compositor: write borders: %w", err)
	}

	if hasFocus {
		cx, cy := focused.AbsoluteCursorCoordinates()
		if _, err := fmt.Fprintf(w, "\x1b[%d;%dH\x1b[m", cy+1, cx+1); err != nil {
			return fmt.Errorf("compositor: write cursor: %w", err)
		}
	}
	return nil
}
