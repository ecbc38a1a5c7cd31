package wavwriter

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEndCaptureWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")

	aw := New(path)
	for i := 0; i < 100; i++ {
		aw.AddSample(int16(i), int16(-i))
	}

	if err := aw.EndCapture(); err != nil {
		t.Fatalf("EndCapture: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("wav file is empty")
	}
}
