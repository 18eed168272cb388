package khata

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/umar/yourkhata/pkg/ident"
	"github.com/umar/yourkhata/pkg/models"
	"github.com/umar/yourkhata/pkg/storage"
)

// AddCustomer creates a customer bound to the active profile.
func (s *Store) AddCustomer(ctx context.Context, name, phoneNumber string, amount decimal.Decimal, toReceive bool) (*models.Customer, error) {
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

	customer := models.Customer{
		Id:          ident.NewID(),
		Name:        name,
		Initials:    ident.Initials(name),
		PhoneNumber: phoneNumber,
		Amount:      amount,
		ToReceive:   toReceive,
		CreatedAt:   time.Now(),
		ProfileId:   active.Id,
	}

	if err := saveCollection(ctx, s, keyCustomers, append(customers, customer)); err != nil {
		return nil, err
	}

	s.logger.Info("customer added", "customer_id", customer.Id, "profile_id", active.Id)
	return &customer, nil
}

// GetCustomer retrieves a customer by id.
func (s *Store) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	customers, err := loadCollection[models.Customer](ctx, s, keyCustomers)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].Id == id {
			customer := customers[i]
			return &customer, nil
		}
	}
	return nil, storage.ErrNotFound
}

// UpdateCustomer applies the given updates, re-deriving initials when the
// name changes.
func (s *Store) UpdateCustomer(ctx context.Context, id string, updates storage.CustomerUpdate) (*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers, err := loadCollection[models.Customer](ctx, s, keyCustomers)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range customers {
		if customers[i].Id == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, storage.ErrNotFound
	}

	if updates.Name != nil {
		customers[idx].Name = *updates.Name
		customers[idx].Initials = ident.Initials(*updates.Name)
	}
	if updates.PhoneNumber != nil {
		customers[idx].PhoneNumber = *updates.PhoneNumber
	}

	if err := saveCollection(ctx, s, keyCustomers, customers); err != nil {
		return nil, err
	}

	updated := customers[idx]
	return &updated, nil
}

// DeleteCustomer removes a customer and cascades deletion of all of its
// transactions.
func (s *Store) DeleteCustomer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers, err := loadCollection[models.Customer](ctx, s, keyCustomers)
	if err != nil {
		return err
	}

	remaining := customers[:0:0]
	for _, c := range customers {
		if c.Id != id {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == len(customers) {
		return storage.ErrNotFound
	}

	if err := saveCollection(ctx, s, keyCustomers, remaining); err != nil {
		return err
	}

	transactions, err := loadCollection[models.Transaction](ctx, s, keyTransactions)
	if err != nil {
		return err
	}
	kept := transactions[:0:0]
	for _, tx := range transactions {
		if tx.CustomerId != id {
			kept = append(kept, tx)
		}
	}
	if err := saveCollection(ctx, s, keyTransactions, kept); err != nil {
		return err
	}

	s.logger.Info("customer deleted", "customer_id", id,
		"transactions_removed", len(transactions)-len(kept))
	return nil
}

// ListCustomers retrieves the customers of the given profile; an empty
// profileID means the active profile.
func (s *Store) ListCustomers(ctx context.Context, profileID string) ([]models.Customer, error) {
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

	customers, err := loadCollection[models.Customer](ctx, s, keyCustomers)
	if err != nil {
		return nil, err
	}

	scoped := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		if c.ProfileId == profileID {
			scoped = append(scoped, c)
		}
	}
	return scoped, nil
}
