package storage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/umar/yourkhata/pkg/models"
)

// BatwaStore defines the interface for the personal income/expense log.
// Totals are always derived by the caller, never stored.
type BatwaStore interface {
	// AddBatwaTransaction creates an entry bound to the active profile. A
	// zero timestamp defaults to the current time. Returns ErrNoActiveProfile
	// when no profile is active.
	AddBatwaTransaction(ctx context.Context, amount decimal.Decimal, entryType models.BatwaType, category, notes string, timestamp time.Time) (*models.BatwaTransaction, error)

	// DeleteBatwaTransaction removes an entry. Returns ErrNotFound for an
	// unknown id.
	DeleteBatwaTransaction(ctx context.Context, id string) error

	// ListBatwaTransactions retrieves the entries of the given profile. An
	// empty profileID means the active profile; with no active profile the
	// result is empty.
	ListBatwaTransactions(ctx context.Context, profileID string) ([]models.BatwaTransaction, error)
}
