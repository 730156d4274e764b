// Package progress remembers which level the player reached.
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Store persists progress as a small JSON document.
type Store struct {
	path string
}

type record struct {
	Level   int       `json:"level"` // 0-based index of the next level to play
	Pack    string    `json:"pack,omitempty"`
	Updated time.Time `json:"updated"`
}

// NewStore returns a store backed by the file at path. The file and its
// directory are created on the first Save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

// Load returns the saved level index for pack. A missing file, or one
// written for another pack, yields 0.
func (s *Store) Load(pack string) (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read progress: %w", err)
	}
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return 0, fmt.Errorf("parse progress %s: %w", s.path, err)
	}
	if r.Pack != pack || r.Level < 0 {
		return 0, nil
	}
	return r.Level, nil
}

// Save records level as the next level to play for pack.
func (s *Store) Save(pack string, level int) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create progress dir: %w", err)
	}
	data, err := json.MarshalIndent(record{Level: level, Pack: pack, Updated: time.Now().UTC()}, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".progress-*")
	if err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("save progress: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save progress: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
