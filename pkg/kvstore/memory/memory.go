// Package memory provides a simple in-memory adapter used for development and
// tests. It keeps code paths easy to follow while allowing a real backend to
// be plugged in unchanged.
package memory

import (
	"context"
	"sync"

	"github.com/umar/yourkhata/pkg/kvstore"
)

// Store is an in-memory implementation of kvstore.Adapter, guarded by an
// RWMutex for concurrent use.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Make sure we conform to the interface
var _ kvstore.Adapter = (*Store)(nil)

// Get returns the stored value for key, if any.
func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
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

// Set stores a copy of value under key.
func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}

// Remove deletes key.
func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// RemoveMany deletes every given key.
func (s *Store) RemoveMany(_ context.Context, keys []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		delete(s.data, key)
	}
	return nil
}

// Reset clears all stored data. Test helper.
func (s *Store) Reset() {
	s.mu.Lock()
	s.data = make(map[string][]byte)
	s.mu.Unlock()
}
