package khata

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/umar/yourkhata/pkg/ident"
	"github.com/umar/yourkhata/pkg/models"
	"github.com/umar/yourkhata/pkg/storage"
)

// AddBatwaTransaction creates an income/expense entry bound to the active
// profile. No running balance is computed; totals are derived on read.
func (s *Store) AddBatwaTransaction(ctx context.Context, amount decimal.Decimal, entryType models.BatwaType, category, notes string, timestamp time.Time) (*models.BatwaTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, err := s.activeProfile(ctx)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, storage.ErrNoActiveProfile
	}

	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	entries, err := loadCollection[models.BatwaTransaction](ctx, s, keyBatwa)
	if err != nil {
		return nil, err
	}

	entry := models.BatwaTransaction{
		Id:        ident.NewID(),
		Amount:    amount,
		Type:      entryType,
		Category:  category,
		Timestamp: timestamp,
		Notes:     notes,
		ProfileId: active.Id,
	}

	if err := saveCollection(ctx, s, keyBatwa, append(entries, entry)); err != nil {
		return nil, err
	}

	s.logger.Info("batwa entry added", "entry_id", entry.Id, "type", entryType, "profile_id", active.Id)
	return &entry, nil
}

// DeleteBatwaTransaction removes an entry by id.
func (s *Store) DeleteBatwaTransaction(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := loadCollection[models.BatwaTransaction](ctx, s, keyBatwa)
	if err != nil {
		return err
	}

	remaining := entries[:0:0]
	for _, entry := range entries {
		if entry.Id != id {
			remaining = append(remaining, entry)
		}
	}
	if len(remaining) == len(entries) {
		return storage.ErrNotFound
	}

	return saveCollection(ctx, s, keyBatwa, remaining)
}

// ListBatwaTransactions retrieves the entries of the given profile; an empty
// profileID means the active profile.
func (s *Store) ListBatwaTransactions(ctx context.Context, profileID string) ([]models.BatwaTransaction, error) {
	if profileID == "" {
		active, err := s.activeProfile(ctx)
		if err != nil {
			return nil, err
		}
		if active == nil {
			return nil, nil
		}
		profileID = active.Id
	}

	entries, err := loadCollection[models.BatwaTransaction](ctx, s, keyBatwa)
	if err != nil {
		return nil, err
	}

	scoped := make([]models.BatwaTransaction, 0, len(entries))
	for _, entry := range entries {
		if entry.ProfileId == profileID {
			scoped = append(scoped, entry)
		}
	}
	return scoped, nil
}
