// Package kvstore provides the key-value persistence collaborator backing the
// ledger, budget and user repositories. Values are opaque JSON blobs keyed the
// same way the original browser-local storage was.
package kvstore

import (
	"context"
	"sync"

	portsrepo "github.com/mknzz/budget_tracker_app/internal/core/ports/repositories"
)

// MemoryStore is an in-memory KVStore. Safe for concurrent use; handy for
// tests and for running without a data file.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Ensure MemoryStore implements the KVStore interface
var _ portsrepo.KVStore = (*MemoryStore)(nil)

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}
