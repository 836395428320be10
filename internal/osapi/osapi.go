// Package osapi abstracts the OS-facing side of a pane: resizing its PTY,
// writing input to the child process, and obtaining a handle to the user's
// real terminal. The layout engine talks only to this interface, never
// touching a PTY directly, so it can be driven by a Fake in tests.
package osapi

import "io"

// OsApi is the abstracted OS-facing API the layout engine uses to push
// geometry changes and user input down to a pane's child process.
type OsApi interface {
	// SetTerminalSizeUsingFd applies a TIOCSWINSZ-equivalent resize to the
	// PTY backing paneID.
	SetTerminalSizeUsingFd(paneID int, cols, rows int) error
	// WriteToTTYStdin writes user input bytes to the child process.
	WriteToTTYStdin(paneID int, data []byte) error
	// Tcdrain flushes any buffered output to paneID's PTY.
	Tcdrain(paneID int) error
	// GetStdoutWriter returns a scoped handle to the user's real terminal,
	// held for the duration of a single compositor frame.
	GetStdoutWriter() io.Writer
}
