// Package storage provides the single-key persistence slot backing the
// client-local stores. One slot holds one JSON value in one file; a
// missing or corrupt file loads as the zero value and is never surfaced
// as an error to the caller.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Slot is a durable single-value JSON store
type Slot struct {
	path string
}

// NewSlot creates a slot backed by the file at path, creating parent
// directories as needed.
func NewSlot(path string) (*Slot, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}

	return &Slot{path: path}, nil
}

// Load reads the stored value into v. It returns false when no usable
// value exists (absent or malformed file); v is left untouched in that
// case so callers start from their zero value.
func (s *Slot) Load(v interface{}) bool {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false
	}

	return true
}

// Save serializes v and replaces the stored value. The write goes to a
// temp file first so a crash mid-write cannot corrupt the slot.
func (s *Slot) Save(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}

	return nil
}

// Clear removes the stored value. Clearing an empty slot is a no-op.
func (s *Slot) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear %s: %w", s.path, err)
	}
	return nil
}
