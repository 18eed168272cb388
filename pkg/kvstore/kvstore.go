package kvstore

import "context"

// Adapter is the durable key/value contract the stores are built on. Each
// entity collection is serialized whole and written under a fixed key; there
// are no partial updates.
type Adapter interface {
	// Get returns the raw value for key. The boolean reports whether the key
	// was present; an absent key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set writes the raw value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes the value under key. Removing an absent key is a no-op.
	Remove(ctx context.Context, key string) error

	// RemoveMany deletes every given key in one logical operation.
	RemoveMany(ctx context.Context, keys []string) error
}
