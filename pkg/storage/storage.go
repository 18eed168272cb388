package storage

import "context"

// Maintenance defines privileged whole-store operations. It should only be
// exposed to components that genuinely reset state (debug tooling, tests).
type Maintenance interface {
	// ClearAll removes every collection, including the active-profile pointer
	// and the user profile.
	ClearAll(ctx context.Context) error
}

// Storage defines the root interface for the entire data layer.
// It composes all available storage operations. Components should depend on
// the more granular interfaces (ApiStore, ProfileStore, etc.) instead of this
// one.
type Storage interface {
	ApiStore
	Maintenance
}
