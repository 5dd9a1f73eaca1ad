package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ErrSlotEmpty reports that a durable slot has no stored value yet.
var ErrSlotEmpty = fmt.Errorf("slot is empty")

// Slot is a single durable key-value location. It owns the serialized
// representation exclusively; nothing else reads the underlying storage.
type Slot interface {
	// Name identifies the slot in logs.
	Name() string
	// Read deserializes the stored value into dest. Returns ErrSlotEmpty
	// when nothing has been stored yet.
	Read(dest any) error
	// Write serializes and persists the value.
	Write(value any) error
}

// FileSlot stores one JSON document per key in a data directory.
type FileSlot struct {
	key  string
	path string
}

// NewFileSlot creates a file-backed slot for key under dir. The directory
// is created on first use.
func NewFileSlot(dir, key string) *FileSlot {
	return &FileSlot{
		key:  key,
		path: filepath.Join(dir, key+".json"),
	}
}

func (s *FileSlot) Name() string {
	return s.key
}

func (s *FileSlot) Read(dest any) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrSlotEmpty
		}
		return fmt.Errorf("failed to read slot %s: %w", s.key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode slot %s: %w", s.key, err)
	}
	return nil
}

func (s *FileSlot) Write(value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode slot %s: %w", s.key, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data dir for slot %s: %w", s.key, err)
	}

	// Write-then-rename keeps the slot readable if the process dies mid-write.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", s.key, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to commit slot %s: %w", s.key, err)
	}
	return nil
}
