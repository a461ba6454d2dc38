package storage

import (
	"context"
	"sync"
)

// MemorySlot is a process-local Slot. FailGet and FailPut make the next
// calls return ErrUnavailable.
type MemorySlot struct {
	mu      sync.Mutex
	values  map[string]string
	FailGet bool
	FailPut bool
	puts    int
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: make(map[string]string)}
}

func (s *MemorySlot) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if key == "" {
		return "", false, ErrEmptyKey
	}
	if s.FailGet {
		return "", false, ErrUnavailable
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemorySlot) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if key == "" {
		return ErrEmptyKey
	}
	if s.FailPut {
		return ErrUnavailable
	}
	s.values[key] = value
	s.puts++
	return nil
}

// Puts counts successful writes.
func (s *MemorySlot) Puts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.puts
}
