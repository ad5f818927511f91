package kvslot

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// FileSlot stores each key as a file in a directory. Writes go through a
// temp file and rename so a crashed write never leaves a torn value.
type FileSlot struct {
	dir string
}

// NewFileSlot ensures the directory exists and returns a slot over it.
func NewFileSlot(dir string) (*FileSlot, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("kvslot: directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kvslot: create directory: %w", err)
	}
	return &FileSlot{dir: dir}, nil
}

func (s *FileSlot) Get(_ context.Context, key string) (string, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("kvslot: read %q: %w", key, err)
	}
	return string(data), nil
}

func (s *FileSlot) Set(_ context.Context, key, value string) error {
	target := s.path(key)
	tmp, err := os.CreateTemp(s.dir, ".slot-*")
	if err != nil {
		return fmt.Errorf("kvslot: temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("kvslot: write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("kvslot: close %q: %w", key, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("kvslot: rename %q: %w", key, err)
	}
	return nil
}

func (s *FileSlot) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("kvslot: delete %q: %w", key, err)
	}
	return nil
}

// path escapes the key so separators and dots cannot leave the directory.
func (s *FileSlot) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}
