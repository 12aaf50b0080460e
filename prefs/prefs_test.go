package prefs

import (
	"path/filepath"
	"testing"
)

func TestGetFloatDefaultWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := s.GetFloat("HighScore", 0); got != 0 {
		t.Fatalf("GetFloat on empty store = %v, want 0", got)
	}
	if got := s.GetFloat("HighScore", 42.5); got != 42.5 {
		t.Fatalf("GetFloat default = %v, want 42.5", got)
	}
}

func TestSetFloatPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.yaml")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.SetFloat("HighScore", 137.25); err != nil {
		t.Fatalf("SetFloat: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got := reopened.GetFloat("HighScore", 0); got != 137.25 {
		t.Fatalf("persisted value = %v, want 137.25", got)
	}
}

func TestSetFloatOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.yaml")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	for _, v := range []float64{10, 25, 17} {
		if err := s.SetFloat("HighScore", v); err != nil {
			t.Fatalf("SetFloat(%v): %v", v, err)
		}
	}
	if got := s.GetFloat("HighScore", 0); got != 17 {
		t.Fatalf("last write = %v, want 17", got)
	}
}
