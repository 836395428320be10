// Package ptybus spawns per-pane PTY-backed child processes and turns their
// output into vt.Event values delivered to a callback, using
// github.com/aymanbagabas/go-pty for a PTY abstraction that works the same
// way on Unix PTYs and Windows ConPTY. It also implements osapi.OsApi, since
// resizing and writing to a pane both reduce to an operation on its PTY.
package ptybus

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	gopty "github.com/aymanbagabas/go-pty"

	"github.com/patrick-goecommerce/paneterm/internal/osapi"
	"github.com/patrick-goecommerce/paneterm/internal/vt"
	"github.com/patrick-goecommerce/paneterm/internal/vtparse"
)

// EventFunc receives one decoded VT event for paneID, in producer order.
type EventFunc func(paneID int, ev vt.Event)

// ExitFunc is called once a pane's child process has exited.
type ExitFunc func(paneID int, exitCode int)

type child struct {
	pty    gopty.Pty
	cmd    *gopty.Cmd
	parser *vtparse.Parser
}

// Bus owns every pane's PTY and is the concrete osapi.OsApi used outside
// tests.
type Bus struct {
	mu       sync.Mutex
	children map[int]*child
	onEvent  EventFunc
	onExit   ExitFunc
	logger   *log.Logger
}

// New returns a Bus that reports decoded events to onEvent and exits to
// onExit. Both are invoked from per-pane reader goroutines, never from the
// caller's own goroutine, so callers must hand off onto their own dispatch
// channel rather than mutating shared state directly.
func New(onEvent EventFunc, onExit ExitFunc, logger *log.Logger) *Bus {
	if logger == nil {
		logger = log.Default()
	}
	return &Bus{
		children: make(map[int]*child),
		onEvent:  onEvent,
		onExit:   onExit,
		logger:   logger,
	}
}

// Spawn starts argv inside a new PTY of the given size and begins streaming
// its output through the parser into onEvent.
func (b *Bus) Spawn(paneID int, argv []string, dir string, env []string, cols, rows int) error {
	if len(argv) == 0 {
		return fmt.Errorf("ptybus: empty argv for pane %d", paneID)
	}

	p, err := gopty.New()
	if err != nil {
		return fmt.Errorf("ptybus: open pty: %w", err)
	}
	if err := p.Resize(cols, rows); err != nil {
		p.Close()
		return fmt.Errorf("ptybus: resize pty: %w", err)
	}

	cmd := p.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	fullEnv := append(os.Environ(), "TERM=xterm-256color", "COLORTERM=truecolor")
	cmd.Env = append(fullEnv, env...)

	if err := cmd.Start(); err != nil {
		p.Close()
		return fmt.Errorf("ptybus: start command: %w", err)
	}

	c := &child{pty: p, cmd: cmd, parser: vtparse.New()}

	b.mu.Lock()
	b.children[paneID] = c
	b.mu.Unlock()

	go b.readLoop(paneID, c)
	go b.waitLoop(paneID, c)
	return nil
}

func (b *Bus) readLoop(paneID int, c *child) {
	buf := make([]byte, 4096)
	for {
		n, err := c.pty.Read(buf)
		if n > 0 {
			c.parser.Feed(buf[:n], func(ev vt.Event) {
				b.onEvent(paneID, ev)
			})
		}
		if err != nil {
			return
		}
	}
}

func (b *Bus) waitLoop(paneID int, c *child) {
	err := c.cmd.Wait()
	code := 0
	if err != nil {
		code = 1
	}
	b.mu.Lock()
	delete(b.children, paneID)
	b.mu.Unlock()
	if b.onExit != nil {
		b.onExit(paneID, code)
	}
}

// Close terminates paneID's PTY and child process, if present.
func (b *Bus) Close(paneID int) error {
	b.mu.Lock()
	c, ok := b.children[paneID]
	delete(b.children, paneID)
	b.mu.Unlock()
	if !ok {
		return nil
	}
	if c.cmd.Process != nil {
		_ = c.cmd.Process.Kill()
	}
	return c.pty.Close()
}

// --- osapi.OsApi -------------------------------------------------------------

var _ osapi.OsApi = (*Bus)(nil)

func (b *Bus) SetTerminalSizeUsingFd(paneID int, cols, rows int) error {
	b.mu.Lock()
	c, ok := b.children[paneID]
	b.mu.Unlock()
	if !ok {
		return fmt.Errorf("ptybus: unknown pane %d", paneID)
	}
	return c.pty.Resize(cols, rows)
}

func (b *Bus) WriteToTTYStdin(paneID int, data []byte) error {
	b.mu.Lock()
	c, ok := b.children[paneID]
	b.mu.Unlock()
	if !ok {
		return fmt.Errorf("ptybus: unknown pane %d", paneID)
	}
	_, err := c.pty.Write(data)
	return err
}

// Tcdrain is a no-op: go-pty's cross-platform PTY does not expose a drain
// primitive distinct from the write already being synchronous.
func (b *Bus) Tcdrain(paneID int) error {
	return nil
}

func (b *Bus) GetStdoutWriter() io.Writer { return os.Stdout }
