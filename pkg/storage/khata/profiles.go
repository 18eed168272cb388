package khata

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/umar/yourkhata/pkg/ident"
	"github.com/umar/yourkhata/pkg/models"
	"github.com/umar/yourkhata/pkg/storage"
)

// DefaultProfileName is the name of the profile auto-created on first run.
const DefaultProfileName = "Default Profile"

// ListProfiles retrieves all profiles.
func (s *Store) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	return loadCollection[models.Profile](ctx, s, keyProfiles)
}

// AddProfile creates a new profile, assigning its id and creation time.
func (s *Store) AddProfile(ctx context.Context, name, description string) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := loadCollection[models.Profile](ctx, s, keyProfiles)
	if err != nil {
		return nil, err
	}

	profile := models.Profile{
		Id:          ident.NewID(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now(),
	}

	if err := saveCollection(ctx, s, keyProfiles, append(profiles, profile)); err != nil {
		return nil, err
	}

	s.logger.Info("profile added", "profile_id", profile.Id, "name", profile.Name)
	return &profile, nil
}

// UpdateProfile applies the given updates to a profile.
func (s *Store) UpdateProfile(ctx context.Context, id string, updates storage.ProfileUpdate) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := loadCollection[models.Profile](ctx, s, keyProfiles)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range profiles {
		if profiles[i].Id == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, storage.ErrNotFound
	}

	if updates.Name != nil {
		profiles[idx].Name = *updates.Name
	}
	if updates.Description != nil {
		profiles[idx].Description = *updates.Description
	}

	if err := saveCollection(ctx, s, keyProfiles, profiles); err != nil {
		return nil, err
	}

	// Keep the active-pointer copy in sync if it points at this profile.
	active, err := s.activeProfile(ctx)
	if err != nil {
		return nil, err
	}
	if active != nil && active.Id == id {
		if err := s.writeActiveProfile(ctx, &profiles[idx]); err != nil {
			return nil, err
		}
	}

	updated := profiles[idx]
	return &updated, nil
}

// DeleteProfile removes a profile and cascades deletion of every customer,
// transaction and batwa entry scoped to it. If the deleted profile was
// active, the active pointer is cleared.
func (s *Store) DeleteProfile(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := loadCollection[models.Profile](ctx, s, keyProfiles)
	if err != nil {
		return err
	}

	remaining := profiles[:0:0]
	for _, p := range profiles {
		if p.Id != id {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == len(profiles) {
		return storage.ErrNotFound
	}

	if err := saveCollection(ctx, s, keyProfiles, remaining); err != nil {
		return err
	}

	customers, err := loadCollection[models.Customer](ctx, s, keyCustomers)
	if err != nil {
		return err
	}
	keptCustomers := customers[:0:0]
	for _, c := range customers {
		if c.ProfileId != id {
			keptCustomers = append(keptCustomers, c)
		}
	}
	if err := saveCollection(ctx, s, keyCustomers, keptCustomers); err != nil {
		return err
	}

	transactions, err := loadCollection[models.Transaction](ctx, s, keyTransactions)
	if err != nil {
		return err
	}
	keptTransactions := transactions[:0:0]
	for _, tx := range transactions {
		if tx.ProfileId != id {
			keptTransactions = append(keptTransactions, tx)
		}
	}
	if err := saveCollection(ctx, s, keyTransactions, keptTransactions); err != nil {
		return err
	}

	batwa, err := loadCollection[models.BatwaTransaction](ctx, s, keyBatwa)
	if err != nil {
		return err
	}
	keptBatwa := batwa[:0:0]
	for _, entry := range batwa {
		if entry.ProfileId != id {
			keptBatwa = append(keptBatwa, entry)
		}
	}
	if err := saveCollection(ctx, s, keyBatwa, keptBatwa); err != nil {
		return err
	}

	active, err := s.activeProfile(ctx)
	if err != nil {
		return err
	}
	if active != nil && active.Id == id {
		if err := s.writeActiveProfile(ctx, nil); err != nil {
			return err
		}
	}

	s.logger.Info("profile deleted", "profile_id", id,
		"customers_removed", len(customers)-len(keptCustomers),
		"transactions_removed", len(transactions)-len(keptTransactions),
		"batwa_removed", len(batwa)-len(keptBatwa))
	return nil
}

// ActiveProfile returns the currently active profile, or nil when none is set.
func (s *Store) ActiveProfile(ctx context.Context) (*models.Profile, error) {
	return s.activeProfile(ctx)
}

// SetActiveProfile marks the profile with the given id as active, storing a
// copy of its record. An empty id clears the pointer.
func (s *Store) SetActiveProfile(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		return s.writeActiveProfile(ctx, nil)
	}

	profiles, err := loadCollection[models.Profile](ctx, s, keyProfiles)
	if err != nil {
		return err
	}
	for i := range profiles {
		if profiles[i].Id == id {
			return s.writeActiveProfile(ctx, &profiles[i])
		}
	}
	return storage.ErrNotFound
}

// InitializeDefaultProfile restores the startup invariant: a non-empty
// profile set always has an active profile.
func (s *Store) InitializeDefaultProfile(ctx context.Context) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles, err := loadCollection[models.Profile](ctx, s, keyProfiles)
	if err != nil {
		return nil, err
	}

	if len(profiles) == 0 {
		profile := models.Profile{
			Id:          ident.NewID(),
			Name:        DefaultProfileName,
			Description: "Default khata profile",
			CreatedAt:   time.Now(),
		}
		if err := saveCollection(ctx, s, keyProfiles, []models.Profile{profile}); err != nil {
			return nil, err
		}
		if err := s.writeActiveProfile(ctx, &profile); err != nil {
			return nil, err
		}
		s.logger.Info("default profile created", "profile_id", profile.Id)
		return &profile, nil
	}

	active, err := s.activeProfile(ctx)
	if err != nil {
		return nil, err
	}
	if active == nil {
		if err := s.writeActiveProfile(ctx, &profiles[0]); err != nil {
			return nil, err
		}
		first := profiles[0]
		return &first, nil
	}

	return active, nil
}

// activeProfile reads the active-pointer slot without taking the mutex, so it
// can be shared by operations that already hold it.
func (s *Store) activeProfile(ctx context.Context) (*models.Profile, error) {
	raw, ok, err := s.adapter.Get(ctx, keyActiveProfile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", keyActiveProfile, err)
	}
	if !ok {
		return nil, nil
	}

	var profile models.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", keyActiveProfile, err)
	}
	return &profile, nil
}

// writeActiveProfile stores a copy of the profile in the active slot, or
// removes the slot when profile is nil.
func (s *Store) writeActiveProfile(ctx context.Context, profile *models.Profile) error {
	if profile == nil {
		if err := s.adapter.Remove(ctx, keyActiveProfile); err != nil {
			return fmt.Errorf("failed to clear %s: %w", keyActiveProfile, err)
		}
		return nil
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", keyActiveProfile, err)
	}
	if err := s.adapter.Set(ctx, keyActiveProfile, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", keyActiveProfile, err)
	}
	return nil
}
