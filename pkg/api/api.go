// Package api defines the request and response models of the HTTP surface.
// These are kept separate from the domain models so the wire format can
// evolve without touching storage.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// NewProfile is the request body for creating a profile.
type NewProfile struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UpdateProfile is the request body for editing a profile. Nil fields are
// left unchanged.
type UpdateProfile struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Profile is the API representation of a ledger profile.
type Profile struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ActivateProfile is the request body for switching the active profile. An
// empty id clears the active pointer.
type ActivateProfile struct {
	Id string `json:"id"`
}

// NewCustomer is the request body for creating a customer.
type NewCustomer struct {
	Name        string          `json:"name"`
	PhoneNumber string          `json:"phone_number"`
	Amount      decimal.Decimal `json:"amount"`
	ToReceive   bool            `json:"to_receive"`
}

// UpdateCustomer is the request body for editing a customer. Nil fields are
// left unchanged.
type UpdateCustomer struct {
	Name        *string `json:"name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// Customer is the API representation of a customer, including the current
// balance snapshot.
type Customer struct {
	Id          string          `json:"id"`
	Name        string          `json:"name"`
	Initials    string          `json:"initials"`
	PhoneNumber string          `json:"phone_number"`
	Amount      decimal.Decimal `json:"amount"`
	ToReceive   bool            `json:"to_receive"`
	CreatedAt   time.Time       `json:"created_at"`
	ProfileId   string          `json:"profile_id"`
}

// NewTransaction is the request body for appending a ledger entry. A zero
// Date defaults to the current time.
type NewTransaction struct {
	CustomerId string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	IsReceived bool            `json:"is_received"`
	Date       time.Time       `json:"date,omitempty"`
	Notes      string          `json:"notes,omitempty"`
}

// Transaction is the API representation of a ledger entry.
type Transaction struct {
	Id         string          `json:"id"`
	CustomerId string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	IsReceived bool            `json:"is_received"`
	Date       time.Time       `json:"date"`
	Notes      string          `json:"notes,omitempty"`
	Balance    decimal.Decimal `json:"balance"`
	ProfileId  string          `json:"profile_id"`
}

// NewBatwaTransaction is the request body for adding an income/expense entry.
// A zero Timestamp defaults to the current time.
type NewBatwaTransaction struct {
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	Category  string          `json:"category"`
	Notes     string          `json:"notes,omitempty"`
	Timestamp time.Time       `json:"timestamp,omitempty"`
}

// BatwaTransaction is the API representation of an income/expense entry.
type BatwaTransaction struct {
	Id        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	Category  string          `json:"category"`
	Timestamp time.Time       `json:"timestamp"`
	Notes     string          `json:"notes,omitempty"`
	ProfileId string          `json:"profile_id"`
}

// UserProfile is the API representation of the device-owner record.
type UserProfile struct {
	Id             string `json:"id"`
	Name           string `json:"name"`
	PhoneNumber    string `json:"phone_number,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}
