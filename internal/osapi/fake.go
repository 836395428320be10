package osapi

import (
	"bytes"
	"io"
)

// Resize records one SetTerminalSizeUsingFd call.
type Resize struct {
	PaneID     int
	Cols, Rows int
}

// Fake is an in-memory OsApi for unit tests: it records resizes and writes
// instead of touching a real PTY.
type Fake struct {
	Resizes []Resize
	Written map[int][]byte
	Drains  []int
	Out     bytes.Buffer
}

// NewFake returns a ready-to-use Fake.
func NewFake() *Fake {
	return &Fake{Written: make(map[int][]byte)}
}

func (f *Fake) SetTerminalSizeUsingFd(paneID int, cols, rows int) error {
	f.Resizes = append(f.Resizes, Resize{PaneID: paneID, Cols: cols, Rows: rows})
	return nil
}

func (f *Fake) WriteToTTYStdin(paneID int, data []byte) error {
	f.Written[paneID] = append(f.Written[paneID], data...)
	return nil
}

func (f *Fake) Tcdrain(paneID int) error {
	f.Drains = append(f.Drains, paneID)
	return nil
}

func (f *Fake) GetStdoutWriter() io.Writer { return &f.Out }
