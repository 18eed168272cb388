package khata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umar/yourkhata/pkg/models"
	"github.com/umar/yourkhata/pkg/storage"
)

func TestAddBatwaTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("binds the entry to the active profile", func(t *testing.T) {
		store, profile := newActiveStore(t)

		entry, err := store.AddBatwaTransaction(ctx, d(1000), models.BatwaIncome, "salary", "march", mustTime(t, "2024-03-01T10:00:00Z"))
		require.NoError(t, err)
		assert.Equal(t, profile.Id, entry.ProfileId)
		assert.Equal(t, models.BatwaIncome, entry.Type)
		assert.NotEmpty(t, entry.Id)
	})

	t.Run("fails without an active profile", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.AddBatwaTransaction(ctx, d(1000), models.BatwaIncome, "salary", "", mustTime(t, "2024-03-01T10:00:00Z"))
		assert.ErrorIs(t, err, storage.ErrNoActiveProfile)
	})
}

func TestDeleteBatwaTransaction(t *testing.T) {
	ctx := context.Background()
	store, _ := newActiveStore(t)

	entry, err := store.AddBatwaTransaction(ctx, d(300), models.BatwaExpense, "fuel", "", mustTime(t, "2024-03-01T10:00:00Z"))
	require.NoError(t, err)

	t.Run("removes the entry", func(t *testing.T) {
		require.NoError(t, store.DeleteBatwaTransaction(ctx, entry.Id))

		entries, err := store.ListBatwaTransactions(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		err := store.DeleteBatwaTransaction(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestListBatwaTransactions(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	shop, err := store.AddProfile(ctx, "Shop", "")
	require.NoError(t, err)
	home, err := store.AddProfile(ctx, "Home", "")
	require.NoError(t, err)

	require.NoError(t, store.SetActiveProfile(ctx, shop.Id))
	_, err = store.AddBatwaTransaction(ctx, d(1000), models.BatwaIncome, "salary", "", mustTime(t, "2024-03-01T10:00:00Z"))
	require.NoError(t, err)

	require.NoError(t, store.SetActiveProfile(ctx, home.Id))
	_, err = store.AddBatwaTransaction(ctx, d(200), models.BatwaExpense, "groceries", "", mustTime(t, "2024-03-02T10:00:00Z"))
	require.NoError(t, err)

	t.Run("scopes to the requested profile", func(t *testing.T) {
		entries, err := store.ListBatwaTransactions(ctx, shop.Id)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "salary", entries[0].Category)
	})

	t.Run("defaults to the active profile", func(t *testing.T) {
		entries, err := store.ListBatwaTransactions(ctx, "")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "groceries", entries[0].Category)
	})

	t.Run("empty without an active profile", func(t *testing.T) {
		require.NoError(t, store.SetActiveProfile(ctx, ""))
		entries, err := store.ListBatwaTransactions(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
