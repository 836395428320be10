// Command paneterm runs the pane layout engine as an interactive terminal
// multiplexer, driven by a charmbracelet/bubbletea program: Update decodes
// keyboard and PTY events into layout.ScreenInstruction values and feeds
// them to the engine one at a time, and View asks the compositor for a
// frame. This is the single-threaded cooperative dispatch loop described in
// the engine's own concurrency notes, given an actual driver.
package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/patrick-goecommerce/paneterm/internal/compositor"
	"github.com/patrick-goecommerce/paneterm/internal/config"
	"github.com/patrick-goecommerce/paneterm/internal/layout"
	"github.com/patrick-goecommerce/paneterm/internal/ptybus"
	"github.com/patrick-goecommerce/paneterm/internal/vt"
)

func main() {
	logFile, err := os.OpenFile("paneterm.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logFile = os.Stderr
	}
	logger := log.New(logFile, "", log.LstdFlags)

	cfg := config.Load()
	m := newModel(cfg, logger)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "paneterm:", err)
		os.Exit(1)
	}
}

// ptyEventMsg carries one decoded VT event up from a pane's reader goroutine.
type ptyEventMsg struct {
	paneID int
	event  vt.Event
}

// ptyExitMsg reports a pane's child process exiting.
type ptyExitMsg struct {
	paneID   int
	exitCode int
}

// closeRequestMsg is how the layout engine's own eviction (NewPane hitting
// max_panes) asks the dispatcher to tear down a PTY, mirroring the source's
// outbound PtyInstruction::ClosePane channel.
type closeRequestMsg struct{ paneID int }

type model struct {
	cfg    config.Config
	logger *log.Logger

	screen *layout.Screen
	bus    *ptybus.Bus
	theme  compositor.Theme

	events       chan ptyEventMsg
	exits        chan ptyExitMsg
	closeRequest chan closeRequestMsg

	nextPaneID int
	quitting   bool
}

func newModel(cfg config.Config, logger *log.Logger) *model {
	m := &model{
		cfg:          cfg,
		logger:       logger,
		theme:        compositor.ThemeByName(cfg.Theme),
		events:       make(chan ptyEventMsg, 256),
		exits:        make(chan ptyExitMsg, 16),
		closeRequest: make(chan closeRequestMsg, 16),
		nextPaneID:   1,
	}

	onEvent := func(paneID int, ev vt.Event) { m.events <- ptyEventMsg{paneID, ev} }
	onExit := func(paneID int, code int) { m.exits <- ptyExitMsg{paneID, code} }
	m.bus = ptybus.New(onEvent, onExit, logger)

	onClose := func(paneID int) { m.closeRequest <- closeRequestMsg{paneID} }
	m.screen = layout.New(cfg.ViewportCols, cfg.ViewportRows, cfg.MaxPanes, m.bus, onClose, logger)

	return m
}

func (m *model) shellArgv() []string {
	if m.cfg.DefaultShell != "" {
		return []string{m.cfg.DefaultShell}
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return []string{sh}
	}
	return []string{"/bin/sh"}
}

// apply routes instr through the layout engine's own tagged-union
// dispatch (internal/layout.Apply), logging any operational error rather
// than aborting the loop over it, per §7.
func (m *model) apply(instr layout.ScreenInstruction) (rendered, quit bool, err error) {
	rendered, quit, err = m.screen.Apply(instr)
	if err != nil {
		m.logger.Printf("paneterm: apply: %v", err)
	}
	return rendered, quit, err
}

func (m *model) spawnPane() tea.Cmd {
	id := m.nextPaneID
	m.nextPaneID++
	if _, _, err := m.apply(layout.ScreenInstruction{Kind: layout.InstrNewPane, NewID: id}); err != nil {
		return nil
	}
	p, ok := m.screen.Focused()
	if !ok {
		return nil
	}
	dir := m.cfg.DefaultDir
	if dir == "" {
		dir, _ = os.Getwd()
	}
	if err := m.bus.Spawn(id, m.shellArgv(), dir, nil, p.Cols, p.Rows); err != nil {
		m.logger.Printf("paneterm: spawn pane %d: %v", id, err)
	}
	return nil
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spawnPane(), waitForEvent(m.events), waitForExit(m.exits), waitForClose(m.closeRequest))
}

func waitForEvent(c chan ptyEventMsg) tea.Cmd {
	return func() tea.Msg { return <-c }
}

func waitForExit(c chan ptyExitMsg) tea.Cmd {
	return func() tea.Msg { return <-c }
}

func waitForClose(c chan closeRequestMsg) tea.Cmd {
	return func() tea.Msg { return <-c }
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ptyEventMsg:
		m.apply(layout.ScreenInstruction{Kind: layout.InstrPty, PaneID: msg.paneID, Event: msg.event})
		return m, waitForEvent(m.events)

	case ptyExitMsg:
		m.apply(layout.ScreenInstruction{Kind: layout.InstrClosePane, PaneID: msg.paneID})
		_ = m.bus.Close(msg.paneID)
		return m, waitForExit(m.exits)

	case closeRequestMsg:
		_ = m.bus.Close(msg.paneID)
		return m, waitForClose(m.closeRequest)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The engine's viewport is fixed at startup (config.ViewportCols/Rows);
		// a follow-up resize would need Screen to reflow every pane, which
		// this port does not attempt.
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isKey(msg, tea.KeyCtrlN):
		return m, m.spawnPane()
	case isKey(msg, tea.KeyCtrlX):
		m.apply(layout.ScreenInstruction{Kind: layout.InstrCloseFocusedPane})
		return m, nil
	case isKey(msg, tea.KeyCtrlQ):
		if _, quit, _ := m.apply(layout.ScreenInstruction{Kind: layout.InstrQuit}); quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case isKey(msg, tea.KeyTab):
		m.apply(layout.ScreenInstruction{Kind: layout.InstrMoveFocus})
		return m, nil
	case isKey(msg, tea.KeyCtrlLeft):
		m.apply(layout.ScreenInstruction{Kind: layout.InstrResizeLeft})
		return m, nil
	case isKey(msg, tea.KeyCtrlRight):
		m.apply(layout.ScreenInstruction{Kind: layout.InstrResizeRight})
		return m, nil
	case isKey(msg, tea.KeyCtrlUp):
		m.apply(layout.ScreenInstruction{Kind: layout.InstrResizeUp})
		return m, nil
	case isKey(msg, tea.KeyCtrlDown):
		m.apply(layout.ScreenInstruction{Kind: layout.InstrResizeDown})
		return m, nil
	case isKey(msg, tea.KeyPgUp):
		m.apply(layout.ScreenInstruction{Kind: layout.InstrScrollUp})
		return m, nil
	case isKey(msg, tea.KeyPgDown):
		m.apply(layout.ScreenInstruction{Kind: layout.InstrScrollDown})
		return m, nil
	case isRune(msg, 'h') && msg.Alt:
		return m, m.horizontalSplit()
	case isRune(msg, 'v') && msg.Alt:
		return m, m.verticalSplit()
	}

	if data := keyToBytes(msg); data != nil {
		m.writeToFocused(data)
	}
	return m, nil
}

func (m *model) horizontalSplit() tea.Cmd {
	id := m.nextPaneID
	m.nextPaneID++
	if _, _, err := m.apply(layout.ScreenInstruction{Kind: layout.InstrHorizontalSplit, NewID: id}); err != nil {
		m.nextPaneID--
		return nil
	}
	return m.spawnInFocused(id)
}

func (m *model) verticalSplit() tea.Cmd {
	id := m.nextPaneID
	m.nextPaneID++
	if _, _, err := m.apply(layout.ScreenInstruction{Kind: layout.InstrVerticalSplit, NewID: id}); err != nil {
		m.nextPaneID--
		return nil
	}
	return m.spawnInFocused(id)
}

func (m *model) spawnInFocused(id int) tea.Cmd {
	p, ok := m.screen.Focused()
	if !ok || p.ID != id {
		return nil
	}
	dir := m.cfg.DefaultDir
	if dir == "" {
		dir, _ = os.Getwd()
	}
	if err := m.bus.Spawn(id, m.shellArgv(), dir, nil, p.Cols, p.Rows); err != nil {
		m.logger.Printf("paneterm: spawn pane %d: %v", id, err)
	}
	return nil
}

// writeToFocused forwards each byte of data through InstrWriteCharacter,
// which matches the layout engine's per-byte operation signature (§6) even
// though multi-byte escape sequences (arrow keys, function keys) arrive as
// a single Bubbletea key event.
func (m *model) writeToFocused(data []byte) {
	for _, b := range data {
		m.apply(layout.ScreenInstruction{Kind: layout.InstrWriteCharacter, Byte: b})
	}
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}
	var out stringWriter
	if err := compositor.Render(&out, m.screen, m.theme); err != nil {
		m.logger.Printf("paneterm: render: %v", err)
	}
	return out.String()
}

// stringWriter is a minimal io.Writer that collects the bytes written to it
// so View can return them as one string.
type stringWriter struct{ buf []byte }

func (s *stringWriter) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	return len(p), nil
}

func (s *stringWriter) String() string { return string(s.buf) }

func isKey(msg tea.KeyMsg, k tea.KeyType) bool { return msg.Type == k }

func isRune(msg tea.KeyMsg, r rune) bool {
	return msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] == r
}
