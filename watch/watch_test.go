package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCloseEndsEventStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tune.yaml")
	if err := os.WriteFile(path, []byte("a: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New([]string{".yaml"}, path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// The watch goroutine owns the output channels; after Close they
	// must drain and then close rather than leaving receivers hanging.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-w.Events:
			if !ok {
				if err := w.Close(); err != nil {
					t.Fatalf("second Close: %v", err)
				}
				return
			}
		case <-deadline:
			t.Fatal("events channel did not close after Close")
		}
	}
}
