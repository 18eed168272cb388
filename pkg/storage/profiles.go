package storage

import (
	"context"

	"github.com/umar/yourkhata/pkg/models"
)

// ProfileUpdate carries the mutable profile fields; nil means unchanged.
type ProfileUpdate struct {
	Name        *string
	Description *string
}

// ProfileStore defines the interface for managing ledger profiles and the
// process-wide active-profile pointer.
type ProfileStore interface {
	// ListProfiles retrieves all profiles.
	ListProfiles(ctx context.Context) ([]models.Profile, error)

	// AddProfile creates a new profile, assigning its id and creation time.
	AddProfile(ctx context.Context, name, description string) (*models.Profile, error)

	// UpdateProfile applies the given updates. Returns ErrNotFound for an
	// unknown id.
	UpdateProfile(ctx context.Context, id string, updates ProfileUpdate) (*models.Profile, error)

	// DeleteProfile removes a profile and cascades deletion of all customers,
	// transactions and batwa entries scoped to it. If the deleted profile was
	// active, the active pointer is cleared.
	DeleteProfile(ctx context.Context, id string) error

	// ActiveProfile returns the currently active profile, or nil when none
	// is set.
	ActiveProfile(ctx context.Context) (*models.Profile, error)

	// SetActiveProfile marks the profile with the given id as active,
	// storing a copy of its record. An empty id clears the pointer.
	SetActiveProfile(ctx context.Context, id string) error

	// InitializeDefaultProfile restores the "every non-empty profile set has
	// an active profile" invariant on startup: with no profiles it creates
	// and activates "Default Profile"; with profiles but no active pointer it
	// activates the first. Returns the resulting active profile.
	InitializeDefaultProfile(ctx context.Context) (*models.Profile, error)
}
