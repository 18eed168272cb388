package khata

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/umar/yourkhata/pkg/ident"
	"github.com/umar/yourkhata/pkg/ledger"
	"github.com/umar/yourkhata/pkg/metrics"
	"github.com/umar/yourkhata/pkg/models"
	"github.com/umar/yourkhata/pkg/storage"
)

// AddTransaction appends a ledger entry for a customer and synchronizes the
// customer's balance snapshot.
//
// The running balance extends the balance of the customer's latest-dated
// transaction (zero for a fresh ledger) by the signed delta of this entry.
// The transaction and customer collections are written sequentially; there is
// no rollback if the second write fails.
func (s *Store) AddTransaction(ctx context.Context, customerID string, amount decimal.Decimal, isReceived bool, date time.Time, notes string) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active, err := s.activeProfile(ctx)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, storage.ErrNoActiveProfile
	}

	customers, err := loadCollection[models.Customer](ctx, s, keyCustomers)
	if err != nil {
		return nil, err
	}
	known := false
	for i := range customers {
		if customers[i].Id == customerID {
			known = true
			break
		}
	}
	if !known {
		return nil, storage.ErrNotFound
	}

	if date.IsZero() {
		date = time.Now()
	}

	transactions, err := loadCollection[models.Transaction](ctx, s, keyTransactions)
	if err != nil {
		return nil, err
	}

	customerTxs := make([]models.Transaction, 0)
	for _, tx := range transactions {
		if tx.CustomerId == customerID {
			customerTxs = append(customerTxs, tx)
		}
	}

	currentBalance := ledger.LatestBalance(customerTxs)
	newBalance := ledger.NextBalance(currentBalance, amount, isReceived)

	transaction := models.Transaction{
		Id:         ident.NewID(),
		CustomerId: customerID,
		Amount:     amount,
		IsReceived: isReceived,
		Date:       date,
		Notes:      notes,
		Balance:    newBalance,
		ProfileId:  active.Id,
	}

	if err := saveCollection(ctx, s, keyTransactions, append(transactions, transaction)); err != nil {
		return nil, err
	}

	if err := s.syncCustomerSnapshot(ctx, customerID, newBalance); err != nil {
		return nil, err
	}

	metrics.TransactionsAdded.Inc()
	s.logger.Info("transaction added",
		"transaction_id", transaction.Id,
		"customer_id", customerID,
		"amount", amount.String(),
		"is_received", isReceived,
		"balance", newBalance.String())
	return &transaction, nil
}

// DeleteTransaction removes a ledger entry and replays the remaining history
// of that customer from zero, rewriting every stored balance. Removing an
// arbitrary entry invalidates every later balance, so this is a full linear
// recompute rather than an incremental patch.
func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	transactions, err := loadCollection[models.Transaction](ctx, s, keyTransactions)
	if err != nil {
		return err
	}

	var deleted *models.Transaction
	remaining := transactions[:0:0]
	for i := range transactions {
		if transactions[i].Id == id {
			deleted = &transactions[i]
			continue
		}
		remaining = append(remaining, transactions[i])
	}
	if deleted == nil {
		return storage.ErrNotFound
	}

	// Recompute the customer's remaining history and splice the rewritten
	// balances back into the full collection.
	customerTxs := make([]models.Transaction, 0)
	for _, tx := range remaining {
		if tx.CustomerId == deleted.CustomerId {
			customerTxs = append(customerTxs, tx)
		}
	}
	recomputed := ledger.Recompute(customerTxs)
	metrics.BalanceRecomputes.Inc()

	byID := make(map[string]decimal.Decimal, len(recomputed))
	for _, tx := range recomputed {
		byID[tx.Id] = tx.Balance
	}
	for i := range remaining {
		if balance, ok := byID[remaining[i].Id]; ok {
			remaining[i].Balance = balance
		}
	}

	if err := saveCollection(ctx, s, keyTransactions, remaining); err != nil {
		return err
	}

	finalBalance := decimal.Zero
	if len(recomputed) > 0 {
		finalBalance = recomputed[len(recomputed)-1].Balance
	}
	if err := s.syncCustomerSnapshot(ctx, deleted.CustomerId, finalBalance); err != nil {
		return err
	}

	metrics.TransactionsDeleted.Inc()
	s.logger.Info("transaction deleted",
		"transaction_id", id,
		"customer_id", deleted.CustomerId,
		"balance", finalBalance.String())
	return nil
}

// ListTransactions retrieves all transactions for a customer, in insertion
// order.
func (s *Store) ListTransactions(ctx context.Context, customerID string) ([]models.Transaction, error) {
	transactions, err := loadCollection[models.Transaction](ctx, s, keyTransactions)
	if err != nil {
		return nil, err
	}

	scoped := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.CustomerId == customerID {
			scoped = append(scoped, tx)
		}
	}
	return scoped, nil
}

// ListProfileTransactions retrieves all transactions of the given profile; an
// empty profileID means the active profile.
func (s *Store) ListProfileTransactions(ctx context.Context, profileID string) ([]models.Transaction, error) {
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

	transactions, err := loadCollection[models.Transaction](ctx, s, keyTransactions)
	if err != nil {
		return nil, err
	}

	scoped := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.ProfileId == profileID {
			scoped = append(scoped, tx)
		}
	}
	return scoped, nil
}

// syncCustomerSnapshot projects a signed balance onto the owning customer's
// Amount/ToReceive fields. A missing customer is not an error: transactions
// reference customers weakly, and the snapshot is simply skipped.
func (s *Store) syncCustomerSnapshot(ctx context.Context, customerID string, balance decimal.Decimal) error {
	customers, err := loadCollection[models.Customer](ctx, s, keyCustomers)
	if err != nil {
		return err
	}

	for i := range customers {
		if customers[i].Id == customerID {
			customers[i].Amount, customers[i].ToReceive = ledger.Snapshot(balance)
			return saveCollection(ctx, s, keyCustomers, customers)
		}
	}
	return nil
}
