package layout

import "github.com/patrick-goecommerce/paneterm/internal/vt"

// InstructionKind tags a ScreenInstruction the way the source's
// ScreenInstruction enum variants do; the dispatcher (cmd/paneterm) decodes
// keyboard/PTY input into these and feeds them to Screen one at a time over
// a single channel, matching the single-threaded cooperative model of §5.
type InstructionKind int

const (
	InstrPty InstructionKind = iota
	InstrRender
	InstrNewPane
	InstrHorizontalSplit
	InstrVerticalSplit
	InstrWriteCharacter
	InstrResizeLeft
	InstrResizeRight
	InstrResizeUp
	InstrResizeDown
	InstrMoveFocus
	InstrScrollUp
	InstrScrollDown
	InstrClearScroll
	InstrCloseFocusedPane
	InstrClosePane
	InstrQuit
)

// ScreenInstruction is one unit of work the dispatch loop feeds to Screen.
// Only the fields relevant to Kind are populated.
type ScreenInstruction struct {
	Kind    InstructionKind
	PaneID  int
	Event   vt.Event
	Byte    byte
	NewID   int // pane-id to assign on NewPane/HorizontalSplit/VerticalSplit
}

// Apply executes one instruction against the Screen. It returns (rendered,
// quit, err): rendered reports whether this instruction's kind implies a
// compositor pass is due (the dispatcher still decides how to batch that),
// quit reports InstrQuit, and err is any operational error the dispatcher
// should log (per §7, never abort the loop over it).
func (s *Screen) Apply(instr ScreenInstruction) (rendered bool, quit bool, err error) {
	switch instr.Kind {
	case InstrPty:
		return true, false, s.Pty(instr.PaneID, instr.Event)
	case InstrRender:
		return true, false, nil
	case InstrNewPane:
		return true, false, s.NewPane(instr.NewID)
	case InstrHorizontalSplit:
		return true, false, s.HorizontalSplit(instr.NewID)
	case InstrVerticalSplit:
		return true, false, s.VerticalSplit(instr.NewID)
	case InstrWriteCharacter:
		return false, false, s.WriteCharacter(instr.Byte)
	case InstrResizeLeft:
		return true, false, s.ResizeLeft()
	case InstrResizeRight:
		return true, false, s.ResizeRight()
	case InstrResizeUp:
		return true, false, s.ResizeUp()
	case InstrResizeDown:
		return true, false, s.ResizeDown()
	case InstrMoveFocus:
		s.MoveFocus()
		return true, false, nil
	case InstrScrollUp:
		s.ScrollUp(1)
		return true, false, nil
	case InstrScrollDown:
		s.ScrollDown(1)
		return true, false, nil
	case InstrClearScroll:
		s.ClearScroll()
		return true, false, nil
	case InstrCloseFocusedPane:
		return true, false, s.CloseFocusedPane()
	case InstrClosePane:
		return true, false, s.ClosePane(instr.PaneID)
	case InstrQuit:
		return false, true, nil
	default:
		return false, false, nil
	}
}

// WriteCharacter forwards a single keystroke byte to the focused pane's
// child process, the way the source routes keyboard input straight to the
// active terminal's stdin rather than through the VT parser.
func (s *Screen) WriteCharacter(b byte) error {
	p, ok := s.Focused()
	if !ok {
		return nil
	}
	if s.osAPI == nil {
		return nil
	}
	return s.osAPI.WriteToTTYStdin(p.ID, []byte{b})
}
