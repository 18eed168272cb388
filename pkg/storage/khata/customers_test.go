package khata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umar/yourkhata/pkg/storage"
)

func TestAddCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("derives initials and binds the active profile", func(t *testing.T) {
		store, profile := newActiveStore(t)

		customer, err := store.AddCustomer(ctx, "john smith", "+92300", d(500), true)
		require.NoError(t, err)
		assert.Equal(t, "JS", customer.Initials)
		assert.Equal(t, profile.Id, customer.ProfileId)
		assert.True(t, d(500).Equal(customer.Amount))
		assert.True(t, customer.ToReceive)
		assert.NotEmpty(t, customer.Id)
		assert.False(t, customer.CreatedAt.IsZero())
	})

	t.Run("fails without an active profile", func(t *testing.T) {
		store := newTestStore(t)

		_, err := store.AddCustomer(ctx, "Ali", "+92300", d(0), false)
		assert.ErrorIs(t, err, storage.ErrNoActiveProfile)
	})
}

func TestUpdateCustomer(t *testing.T) {
	ctx := context.Background()
	store, _ := newActiveStore(t)

	customer, err := store.AddCustomer(ctx, "john smith", "+92300", d(0), false)
	require.NoError(t, err)

	t.Run("re-derives initials on name change", func(t *testing.T) {
		name := "madonna"
		updated, err := store.UpdateCustomer(ctx, customer.Id, storage.CustomerUpdate{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "madonna", updated.Name)
		assert.Equal(t, "M", updated.Initials)
	})

	t.Run("keeps initials when only the phone changes", func(t *testing.T) {
		phone := "+92399"
		updated, err := store.UpdateCustomer(ctx, customer.Id, storage.CustomerUpdate{PhoneNumber: &phone})
		require.NoError(t, err)
		assert.Equal(t, "+92399", updated.PhoneNumber)
		assert.Equal(t, "M", updated.Initials)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		name := "x"
		_, err := store.UpdateCustomer(ctx, "missing", storage.CustomerUpdate{Name: &name})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestDeleteCustomerCascades(t *testing.T) {
	ctx := context.Background()
	store, _ := newActiveStore(t)

	ali, err := store.AddCustomer(ctx, "Ali", "+92300", d(0), false)
	require.NoError(t, err)
	bilal, err := store.AddCustomer(ctx, "Bilal", "+92301", d(0), false)
	require.NoError(t, err)

	_, err = store.AddTransaction(ctx, ali.Id, d(500), false, mustTime(t, "2024-03-01T10:00:00Z"), "")
	require.NoError(t, err)
	_, err = store.AddTransaction(ctx, ali.Id, d(200), true, mustTime(t, "2024-03-02T10:00:00Z"), "")
	require.NoError(t, err)
	_, err = store.AddTransaction(ctx, bilal.Id, d(100), false, mustTime(t, "2024-03-01T10:00:00Z"), "")
	require.NoError(t, err)

	require.NoError(t, store.DeleteCustomer(ctx, ali.Id))

	_, err = store.GetCustomer(ctx, ali.Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	aliTxs, err := store.ListTransactions(ctx, ali.Id)
	require.NoError(t, err)
	assert.Empty(t, aliTxs)

	bilalTxs, err := store.ListTransactions(ctx, bilal.Id)
	require.NoError(t, err)
	assert.Len(t, bilalTxs, 1)
}

func TestDeleteCustomerNotFound(t *testing.T) {
	store, _ := newActiveStore(t)
	err := store.DeleteCustomer(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListCustomers(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	shop, err := store.AddProfile(ctx, "Shop", "")
	require.NoError(t, err)
	home, err := store.AddProfile(ctx, "Home", "")
	require.NoError(t, err)

	require.NoError(t, store.SetActiveProfile(ctx, shop.Id))
	_, err = store.AddCustomer(ctx, "Ali", "+92300", d(0), false)
	require.NoError(t, err)

	require.NoError(t, store.SetActiveProfile(ctx, home.Id))
	_, err = store.AddCustomer(ctx, "Bilal", "+92301", d(0), false)
	require.NoError(t, err)

	t.Run("scopes to the requested profile", func(t *testing.T) {
		customers, err := store.ListCustomers(ctx, shop.Id)
		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, "Ali", customers[0].Name)
	})

	t.Run("defaults to the active profile", func(t *testing.T) {
		customers, err := store.ListCustomers(ctx, "")
		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, "Bilal", customers[0].Name)
	})

	t.Run("empty without an active profile", func(t *testing.T) {
		require.NoError(t, store.SetActiveProfile(ctx, ""))
		customers, err := store.ListCustomers(ctx, "")
		require.NoError(t, err)
		assert.Empty(t, customers)
	})
}
