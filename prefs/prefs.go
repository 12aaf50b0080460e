// Package prefs is a small persistent key/value store for player data,
// backed by a YAML file in the OS config directory.
package prefs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store holds float slots keyed by name. Writes go straight to disk;
// there is a single writer (the game loop), so last-write-wins is fine.
type Store struct {
	path   string
	values map[string]float64
}

// Open loads the store at path, starting empty when the file does not
// exist yet.
func Open(path string) (*Store, error) {
	s := &Store{
		path:   path,
		values: make(map[string]float64),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, &s.values); err != nil {
		return nil, err
	}
	return s, nil
}

// GetFloat returns the stored value for key, or def when absent.
func (s *Store) GetFloat(key string, def float64) float64 {
	if v, ok := s.values[key]; ok {
		return v
	}
	return def
}

// SetFloat stores value under key and writes the file.
func (s *Store) SetFloat(key string, value float64) error {
	s.values[key] = value
	return s.flush()
}

func (s *Store) flush() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s.values)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
