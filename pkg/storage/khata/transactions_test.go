package khata

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umar/yourkhata/pkg/ledger"
	"github.com/umar/yourkhata/pkg/models"
	"github.com/umar/yourkhata/pkg/storage"
)

func TestAddTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("extends the latest balance and syncs the customer", func(t *testing.T) {
		store, _ := newActiveStore(t)
		ali, err := store.AddCustomer(ctx, "Ali", "+92300", d(500), true)
		require.NoError(t, err)

		// Opening entry: we gave 500, balance 500.
		t1 := mustTime(t, "2024-03-01T10:00:00Z")
		opening, err := store.AddTransaction(ctx, ali.Id, d(500), false, t1, "opening")
		require.NoError(t, err)
		assert.True(t, d(500).Equal(opening.Balance))

		// Ali pays back 200: balance 300.
		t2 := mustTime(t, "2024-03-02T10:00:00Z")
		payment, err := store.AddTransaction(ctx, ali.Id, d(200), true, t2, "")
		require.NoError(t, err)
		assert.True(t, d(300).Equal(payment.Balance))

		customer, err := store.GetCustomer(ctx, ali.Id)
		require.NoError(t, err)
		assert.True(t, d(300).Equal(customer.Amount))
		assert.True(t, customer.ToReceive)

		// We give another 400: balance 700.
		t3 := mustTime(t, "2024-03-03T10:00:00Z")
		loan, err := store.AddTransaction(ctx, ali.Id, d(400), false, t3, "")
		require.NoError(t, err)
		assert.True(t, d(700).Equal(loan.Balance))

		customer, err = store.GetCustomer(ctx, ali.Id)
		require.NoError(t, err)
		assert.True(t, d(700).Equal(customer.Amount))
		assert.True(t, customer.ToReceive)
	})

	t.Run("zero balance means nothing to receive", func(t *testing.T) {
		store, _ := newActiveStore(t)
		ali, err := store.AddCustomer(ctx, "Ali", "+92300", d(0), false)
		require.NoError(t, err)

		_, err = store.AddTransaction(ctx, ali.Id, d(500), false, mustTime(t, "2024-03-01T10:00:00Z"), "")
		require.NoError(t, err)
		_, err = store.AddTransaction(ctx, ali.Id, d(500), true, mustTime(t, "2024-03-02T10:00:00Z"), "")
		require.NoError(t, err)

		customer, err := store.GetCustomer(ctx, ali.Id)
		require.NoError(t, err)
		assert.True(t, customer.Amount.IsZero())
		assert.False(t, customer.ToReceive)
	})

	t.Run("overpayment flips the direction", func(t *testing.T) {
		store, _ := newActiveStore(t)
		ali, err := store.AddCustomer(ctx, "Ali", "+92300", d(0), false)
		require.NoError(t, err)

		_, err = store.AddTransaction(ctx, ali.Id, d(300), false, mustTime(t, "2024-03-01T10:00:00Z"), "")
		require.NoError(t, err)
		_, err = store.AddTransaction(ctx, ali.Id, d(500), true, mustTime(t, "2024-03-02T10:00:00Z"), "")
		require.NoError(t, err)

		customer, err := store.GetCustomer(ctx, ali.Id)
		require.NoError(t, err)
		assert.True(t, d(200).Equal(customer.Amount))
		assert.False(t, customer.ToReceive)
	})

	t.Run("fails without an active profile and creates nothing", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.AddTransaction(ctx, "cust-1", d(100), true, mustTime(t, "2024-03-01T10:00:00Z"), "")
		assert.ErrorIs(t, err, storage.ErrNoActiveProfile)

		txs, err := store.ListTransactions(ctx, "cust-1")
		require.NoError(t, err)
		assert.Empty(t, txs)
	})

	t.Run("binds the entry to the active profile", func(t *testing.T) {
		store, profile := newActiveStore(t)
		ali, err := store.AddCustomer(ctx, "Ali", "+92300", d(0), false)
		require.NoError(t, err)

		tx, err := store.AddTransaction(ctx, ali.Id, d(100), false, mustTime(t, "2024-03-01T10:00:00Z"), "")
		require.NoError(t, err)
		assert.Equal(t, profile.Id, tx.ProfileId)
	})

	t.Run("fails for an unknown customer", func(t *testing.T) {
		store, _ := newActiveStore(t)

		_, err := store.AddTransaction(ctx, "missing", d(100), true, mustTime(t, "2024-03-01T10:00:00Z"), "")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("defaults a zero date to now", func(t *testing.T) {
		store, _ := newActiveStore(t)
		ali, err := store.AddCustomer(ctx, "Ali", "+92300", d(0), false)
		require.NoError(t, err)

		before := time.Now()
		tx, err := store.AddTransaction(ctx, ali.Id, d(100), false, time.Time{}, "")
		require.NoError(t, err)
		assert.False(t, tx.Date.Before(before))
		assert.False(t, tx.Date.After(time.Now()))
	})
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("recomputes remaining balances from zero", func(t *testing.T) {
		store, _ := newActiveStore(t)
		ali, err := store.AddCustomer(ctx, "Ali", "+92300", d(500), true)
		require.NoError(t, err)

		// History: gave 500 (bal 500), received 200 (bal 300), gave 400 (bal 700).
		opening, err := store.AddTransaction(ctx, ali.Id, d(500), false, mustTime(t, "2024-03-01T10:00:00Z"), "")
		require.NoError(t, err)
		payment, err := store.AddTransaction(ctx, ali.Id, d(200), true, mustTime(t, "2024-03-02T10:00:00Z"), "")
		require.NoError(t, err)
		_, err = store.AddTransaction(ctx, ali.Id, d(400), false, mustTime(t, "2024-03-03T10:00:00Z"), "")
		require.NoError(t, err)

		// Drop the middle payment: 500, then +400 => 900.
		require.NoError(t, store.DeleteTransaction(ctx, payment.Id))

		txs, err := store.ListTransactions(ctx, ali.Id)
		require.NoError(t, err)
		require.Len(t, txs, 2)
		assert.True(t, d(500).Equal(txs[0].Balance))
		assert.True(t, d(900).Equal(txs[1].Balance))

		customer, err := store.GetCustomer(ctx, ali.Id)
		require.NoError(t, err)
		assert.True(t, d(900).Equal(customer.Amount))
		assert.True(t, customer.ToReceive)

		// Drop the opening entry as well: only +400 remains.
		require.NoError(t, store.DeleteTransaction(ctx, opening.Id))

		txs, err = store.ListTransactions(ctx, ali.Id)
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.True(t, d(400).Equal(txs[0].Balance))

		customer, err = store.GetCustomer(ctx, ali.Id)
		require.NoError(t, err)
		assert.True(t, d(400).Equal(customer.Amount))
		assert.True(t, customer.ToReceive)
	})

	t.Run("deleting the last transaction zeroes the customer", func(t *testing.T) {
		store, _ := newActiveStore(t)
		ali, err := store.AddCustomer(ctx, "Ali", "+92300", d(0), false)
		require.NoError(t, err)

		tx, err := store.AddTransaction(ctx, ali.Id, d(500), false, mustTime(t, "2024-03-01T10:00:00Z"), "")
		require.NoError(t, err)
		require.NoError(t, store.DeleteTransaction(ctx, tx.Id))

		customer, err := store.GetCustomer(ctx, ali.Id)
		require.NoError(t, err)
		assert.True(t, customer.Amount.IsZero())
		assert.False(t, customer.ToReceive)
	})

	t.Run("does not touch other customers' balances", func(t *testing.T) {
		store, _ := newActiveStore(t)
		ali, err := store.AddCustomer(ctx, "Ali", "+92300", d(0), false)
		require.NoError(t, err)
		bilal, err := store.AddCustomer(ctx, "Bilal", "+92301", d(0), false)
		require.NoError(t, err)

		aliTx, err := store.AddTransaction(ctx, ali.Id, d(100), false, mustTime(t, "2024-03-01T10:00:00Z"), "")
		require.NoError(t, err)
		_, err = store.AddTransaction(ctx, bilal.Id, d(250), false, mustTime(t, "2024-03-01T11:00:00Z"), "")
		require.NoError(t, err)

		require.NoError(t, store.DeleteTransaction(ctx, aliTx.Id))

		customer, err := store.GetCustomer(ctx, bilal.Id)
		require.NoError(t, err)
		assert.True(t, d(250).Equal(customer.Amount))
		assert.True(t, customer.ToReceive)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		store, _ := newActiveStore(t)
		err := store.DeleteTransaction(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

// The replay invariant: after any sequence of adds and deletes, sorting a
// customer's transactions by date and replaying the signed-delta rule from
// zero reproduces every stored balance, and the customer snapshot matches the
// latest-dated balance.
func TestBalanceInvariantAfterMixedOperations(t *testing.T) {
	ctx := context.Background()
	store, _ := newActiveStore(t)
	ali, err := store.AddCustomer(ctx, "Ali", "+92300", d(0), false)
	require.NoError(t, err)

	steps := []struct {
		amount     int64
		isReceived bool
		date       string
	}{
		{500, false, "2024-03-01T10:00:00Z"},
		{200, true, "2024-03-02T10:00:00Z"},
		{400, false, "2024-03-03T10:00:00Z"},
		{150, true, "2024-03-04T10:00:00Z"},
		{900, false, "2024-03-05T10:00:00Z"},
	}

	ids := make([]string, 0, len(steps))
	for _, step := range steps {
		tx, err := store.AddTransaction(ctx, ali.Id, d(step.amount), step.isReceived, mustTime(t, step.date), "")
		require.NoError(t, err)
		ids = append(ids, tx.Id)
	}

	// Delete the second and fourth entries.
	require.NoError(t, store.DeleteTransaction(ctx, ids[1]))
	require.NoError(t, store.DeleteTransaction(ctx, ids[3]))

	txs, err := store.ListTransactions(ctx, ali.Id)
	require.NoError(t, err)
	require.Len(t, txs, 3)

	replayed := ledger.Recompute(txs)
	stored := make(map[string]models.Transaction, len(txs))
	for _, tx := range txs {
		stored[tx.Id] = tx
	}
	for _, tx := range replayed {
		assert.True(t, tx.Balance.Equal(stored[tx.Id].Balance), "transaction %s", tx.Id)
	}

	customer, err := store.GetCustomer(ctx, ali.Id)
	require.NoError(t, err)
	latest := ledger.LatestBalance(txs)
	expectedAmount, expectedToReceive := ledger.Snapshot(latest)
	assert.True(t, expectedAmount.Equal(customer.Amount))
	assert.Equal(t, expectedToReceive, customer.ToReceive)
}

func TestListProfileTransactions(t *testing.T) {
	ctx := context.Background()
	store, profile := newActiveStore(t)

	ali, err := store.AddCustomer(ctx, "Ali", "+92300", d(0), false)
	require.NoError(t, err)
	_, err = store.AddTransaction(ctx, ali.Id, d(100), false, mustTime(t, "2024-03-01T10:00:00Z"), "")
	require.NoError(t, err)

	t.Run("defaults to the active profile", func(t *testing.T) {
		txs, err := store.ListProfileTransactions(ctx, "")
		require.NoError(t, err)
		assert.Len(t, txs, 1)
		assert.Equal(t, profile.Id, txs[0].ProfileId)
	})

	t.Run("empty without an active profile", func(t *testing.T) {
		require.NoError(t, store.SetActiveProfile(ctx, ""))
		txs, err := store.ListProfileTransactions(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, txs)
	})
}
