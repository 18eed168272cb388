package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile is an isolated ledger workspace. Every customer, transaction and
// batwa entry belongs to exactly one profile.
type Profile struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Customer represents one party the user keeps a khata with.
// Amount and ToReceive together encode the signed balance snapshot:
// signed = ToReceive ? +Amount : -Amount. A zero balance is stored with
// ToReceive = false.
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

// Transaction is a single ledger entry against a customer. Balance is the
// running balance immediately after this transaction, ordered by Date.
// IsReceived means the customer paid the user, which decreases what is owed.
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

// BatwaType classifies a batwa entry as income or expense.
type BatwaType string

const (
	BatwaIncome  BatwaType = "income"
	BatwaExpense BatwaType = "expense"
)

// BatwaTransaction is an entry in the personal income/expense log. It is
// independent of customers; totals are derived at read time, never stored.
type BatwaTransaction struct {
	Id        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Type      BatwaType       `json:"type"`
	Category  string          `json:"category"`
	Timestamp time.Time       `json:"timestamp"`
	Notes     string          `json:"notes,omitempty"`
	ProfileId string          `json:"profile_id"`
}

// UserProfileID is the fixed id of the singleton device-owner record.
const UserProfileID = "user_profile"

// UserProfile is the device owner's display record. It is a singleton and is
// not scoped to a ledger profile.
type UserProfile struct {
	Id             string `json:"id"`
	Name           string `json:"name"`
	PhoneNumber    string `json:"phone_number,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}
