package osapi

import "testing"

func TestFake_WriteToTTYStdinAccumulatesPerPane(t *testing.T) {
	f := NewFake()
	f.WriteToTTYStdin(1, []byte("ab"))
	f.WriteToTTYStdin(1, []byte("c"))
	f.WriteToTTYStdin(2, []byte("z"))

	if got := string(f.Written[1]); got != "abc" {
		t.Errorf("Written[1] = %q, want %q", got, "abc")
	}
	if got := string(f.Written[2]); got != "z" {
		t.Errorf("Written[2] = %q, want %q", got, "z")
	}
}

func TestFake_SetTerminalSizeRecordsEachResize(t *testing.T) {
	f := NewFake()
	f.SetTerminalSizeUsingFd(1, 80, 24)
	f.SetTerminalSizeUsingFd(1, 40, 24)

	if len(f.Resizes) != 2 {
		t.Fatalf("len(Resizes) = %d, want 2", len(f.Resizes))
	}
	if f.Resizes[1] != (Resize{PaneID: 1, Cols: 40, Rows: 24}) {
		t.Errorf("Resizes[1] = %+v, want {1 40 24}", f.Resizes[1])
	}
}

func TestFake_TcdrainRecordsPaneID(t *testing.T) {
	f := NewFake()
	f.Tcdrain(3)
	if len(f.Drains) != 1 || f.Drains[0] != 3 {
		t.Errorf("Drains = %v, want [3]", f.Drains)
	}
}

func TestFake_GetStdoutWriterWritesToOutBuffer(t *testing.T) {
	f := NewFake()
	w := f.GetStdoutWriter()
	w.Write([]byte("frame"))
	if f.Out.String() != "frame" {
		t.Errorf("Out = %q, want %q", f.Out.String(), "frame")
	}
}
