package storage

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/umar/yourkhata/pkg/models"
)

// CustomerUpdate carries the directly editable customer fields; nil means
// unchanged. Balance fields are owned by the transaction engine and cannot be
// edited here.
type CustomerUpdate struct {
	Name        *string
	PhoneNumber *string
}

// CustomerStore defines the interface for managing customers within the
// active profile.
type CustomerStore interface {
	// AddCustomer creates a customer bound to the active profile, deriving
	// display initials from the name. Returns ErrNoActiveProfile when no
	// profile is active.
	AddCustomer(ctx context.Context, name, phoneNumber string, amount decimal.Decimal, toReceive bool) (*models.Customer, error)

	// GetCustomer retrieves a customer by id. Returns ErrNotFound if absent.
	GetCustomer(ctx context.Context, id string) (*models.Customer, error)

	// UpdateCustomer applies the given updates, re-deriving initials when the
	// name changes. Returns ErrNotFound for an unknown id.
	UpdateCustomer(ctx context.Context, id string, updates CustomerUpdate) (*models.Customer, error)

	// DeleteCustomer removes a customer and cascades deletion of all of its
	// transactions. Returns ErrNotFound for an unknown id.
	DeleteCustomer(ctx context.Context, id string) error

	// ListCustomers retrieves the customers of the given profile. An empty
	// profileID means the active profile; with no active profile the result
	// is empty.
	ListCustomers(ctx context.Context, profileID string) ([]models.Customer, error)
}
