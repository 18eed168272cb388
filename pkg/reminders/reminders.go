// Package reminders enqueues payment-reminder messages for asynchronous
// delivery (SMS/WhatsApp dispatch happens downstream and is out of scope
// here).
package reminders

import (
	"context"

	"github.com/shopspring/decimal"
)

// Reminder is the payload describing a customer's position after a ledger
// entry, from which the downstream dispatcher composes the actual message.
type Reminder struct {
	CustomerId   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	PhoneNumber  string          `json:"phone_number"`
	Amount       decimal.Decimal `json:"amount"`
	ToReceive    bool            `json:"to_receive"`
}

// Notifier defines the interface for a component that enqueues a reminder for
// asynchronous delivery.
type Notifier interface {
	// SendReminder enqueues a reminder message.
	SendReminder(ctx context.Context, reminder Reminder) error
}
