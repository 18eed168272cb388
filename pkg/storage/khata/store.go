// Package khata implements the storage interfaces on top of a key/value
// adapter. Each entity collection is serialized whole as JSON under a fixed
// key; every mutation is a read-modify-write of the full collection.
package khata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/umar/yourkhata/pkg/kvstore"
	"github.com/umar/yourkhata/pkg/storage"
)

// Storage keys, one per entity collection.
const (
	keyProfiles      = "profiles"
	keyActiveProfile = "active_profile"
	keyCustomers     = "customers"
	keyTransactions  = "transactions"
	keyBatwa         = "batwa_transactions"
	keyUserProfile   = "user_profile"
)

// allKeys is the full persisted-state layout, used by ClearAll.
var allKeys = []string{
	keyProfiles,
	keyActiveProfile,
	keyCustomers,
	keyTransactions,
	keyBatwa,
	keyUserProfile,
}

// Store implements storage.Storage over a kvstore.Adapter.
//
// Mutations are serialized by a store-level mutex: every write replaces a
// whole collection, so two interleaved read-modify-write sequences on the
// same key would lose one of the updates.
type Store struct {
	adapter kvstore.Adapter
	logger  *slog.Logger

	mu sync.Mutex
}

// New creates a new Store.
func New(adapter kvstore.Adapter, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{adapter: adapter, logger: logger}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// loadCollection reads and decodes a whole collection. An absent key yields
// an empty collection, not an error.
func loadCollection[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	raw, ok, err := s.adapter.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok {
		return nil, nil
	}

	var collection []T
	if err := json.Unmarshal(raw, &collection); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return collection, nil
}

// saveCollection encodes and writes a whole collection, replacing the
// previous value.
func saveCollection[T any](ctx context.Context, s *Store, key string, collection []T) error {
	raw, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.adapter.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// ClearAll removes every collection, including the active-profile pointer and
// the user profile.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.adapter.RemoveMany(ctx, allKeys); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	s.logger.Info("cleared all stored data")
	return nil
}
