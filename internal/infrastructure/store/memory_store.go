// internal/infrastructure/store/memory_store.go
package store

import (
	"context"
	"errors"
	"sync"
)

var errWriteFailed = errors.New("simulated write failure")

// MemoryStore is an in-process store used in tests and for ephemeral
// single-node deployments.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte

	// FailWrites makes every write return a PersistenceError. Tests use
	// it to exercise the atomicity guarantees of the engine.
	FailWrites bool
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string][]byte),
	}
}

// Load retrieves a value by key
func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Save stores a value
func (s *MemoryStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites {
		return &PersistenceError{Op: "save", Key: key, Err: errWriteFailed}
	}
	s.values[key] = append([]byte(nil), value...)
	return nil
}

// SaveAll stores all entries; all-or-nothing under the single lock.
func (s *MemoryStore) SaveAll(_ context.Context, values map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites {
		return &PersistenceError{Op: "save-all", Key: keysOf(values), Err: errWriteFailed}
	}
	for key, value := range values {
		s.values[key] = append([]byte(nil), value...)
	}
	return nil
}

// Delete removes a key; deleting an absent key is not an error.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites {
		return &PersistenceError{Op: "delete", Key: key, Err: errWriteFailed}
	}
	delete(s.values, key)
	return nil
}
