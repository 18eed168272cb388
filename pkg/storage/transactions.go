package storage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/umar/yourkhata/pkg/models"
)

// TransactionReader defines the interface for reading ledger transactions.
type TransactionReader interface {
	// ListTransactions retrieves all transactions for a customer, in
	// insertion order.
	ListTransactions(ctx context.Context, customerID string) ([]models.Transaction, error)

	// ListProfileTransactions retrieves all transactions of the given
	// profile. An empty profileID means the active profile; with no active
	// profile the result is empty.
	ListProfileTransactions(ctx context.Context, profileID string) ([]models.Transaction, error)
}

// TransactionManager defines the ledger engine's mutating operations. These
// keep the owning customer's balance snapshot synchronized with the
// transaction history.
type TransactionManager interface {
	// AddTransaction appends a ledger entry for a customer. The running
	// balance extends the balance of the customer's latest-dated transaction
	// by the signed delta of this entry, and the customer record is updated
	// to the new snapshot. A zero date defaults to the current time. Returns
	// ErrNoActiveProfile when no profile is active and ErrNotFound for an
	// unknown customer.
	AddTransaction(ctx context.Context, customerID string, amount decimal.Decimal, isReceived bool, date time.Time, notes string) (*models.Transaction, error)

	// DeleteTransaction removes a ledger entry and recomputes every remaining
	// balance for that customer by replaying its history from zero, then
	// updates the customer snapshot. Returns ErrNotFound for an unknown id.
	DeleteTransaction(ctx context.Context, id string) error
}

// TransactionStore combines the reader and manager interfaces.
type TransactionStore interface {
	TransactionReader
	TransactionManager
}
