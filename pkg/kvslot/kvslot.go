// Package kvslot provides the durable key-value slots used to persist
// small JSON documents across process restarts. A slot holds one opaque
// string value per key, mirroring browser local storage semantics.
package kvslot

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned when the requested key has no stored value.
var ErrNotFound = errors.New("kvslot: key not found")

// Slot is the minimal durable storage surface the stores depend on.
type Slot interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// MemorySlot keeps values in process memory. It exists for tests and for
// running without any durable backend.
type MemorySlot struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemorySlot returns an empty in-memory slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: make(map[string]string)}
}

func (s *MemorySlot) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *MemorySlot) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemorySlot) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
