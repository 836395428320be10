package ptybus

import (
	"testing"

	"github.com/patrick-goecommerce/paneterm/internal/osapi"
)

func TestNew_NilLoggerFallsBackToDefault(t *testing.T) {
	b := New(nil, nil, nil)
	if b.logger == nil {
		t.Fatal("expected a non-nil logger when none is provided")
	}
}

func TestSpawn_EmptyArgvReturnsError(t *testing.T) {
	b := New(nil, nil, nil)
	if err := b.Spawn(1, nil, "", nil, 80, 24); err == nil {
		t.Fatal("expected an error spawning with empty argv")
	}
}

func TestImplementsOsApi(t *testing.T) {
	var _ osapi.OsApi = (*Bus)(nil)
}

func TestSetTerminalSizeUsingFd_UnknownPaneReturnsError(t *testing.T) {
	b := New(nil, nil, nil)
	if err := b.SetTerminalSizeUsingFd(99, 80, 24); err == nil {
		t.Fatal("expected an error resizing a pane with no spawned child")
	}
}

func TestWriteToTTYStdin_UnknownPaneReturnsError(t *testing.T) {
	b := New(nil, nil, nil)
	if err := b.WriteToTTYStdin(99, []byte("x")); err == nil {
		t.Fatal("expected an error writing to a pane with no spawned child")
	}
}

func TestTcdrain_AlwaysSucceeds(t *testing.T) {
	b := New(nil, nil, nil)
	if err := b.Tcdrain(99); err != nil {
		t.Errorf("Tcdrain = %v, want nil (no-op on this backend)", err)
	}
}

func TestClose_UnknownPaneReturnsNil(t *testing.T) {
	b := New(nil, nil, nil)
	if err := b.Close(99); err != nil {
		t.Errorf("Close(unknown) = %v, want nil", err)
	}
}

func TestGetStdoutWriter_ReturnsNonNilWriter(t *testing.T) {
	b := New(nil, nil, nil)
	if b.GetStdoutWriter() == nil {
		t.Fatal("expected a non-nil stdout writer")
	}
}
