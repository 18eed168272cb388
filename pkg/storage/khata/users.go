package khata

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/umar/yourkhata/pkg/models"
)

// UserProfile returns the singleton device-owner record, or nil when none has
// been saved yet.
func (s *Store) UserProfile(ctx context.Context) (*models.UserProfile, error) {
	raw, ok, err := s.adapter.Get(ctx, keyUserProfile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", keyUserProfile, err)
	}
	if !ok {
		return nil, nil
	}

	var profile models.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", keyUserProfile, err)
	}
	return &profile, nil
}

// SaveUserProfile stores the device-owner record, pinning its id to the fixed
// singleton value.
func (s *Store) SaveUserProfile(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *profile
	stored.Id = models.UserProfileID

	raw, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", keyUserProfile, err)
	}
	if err := s.adapter.Set(ctx, keyUserProfile, raw); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", keyUserProfile, err)
	}
	return &stored, nil
}
