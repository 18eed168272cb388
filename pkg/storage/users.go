package storage

import (
	"context"

	"github.com/umar/yourkhata/pkg/models"
)

// UserStore defines the interface for the singleton device-owner record.
type UserStore interface {
	// UserProfile returns the stored record, or nil when none has been saved.
	UserProfile(ctx context.Context) (*models.UserProfile, error)

	// SaveUserProfile stores the record, pinning its id to the fixed
	// singleton value.
	SaveUserProfile(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error)
}
