// Package ledger holds the pure balance arithmetic for the khata engine.
// Everything here is side-effect free so the rules can be tested in isolation
// from the storage layer.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/umar/yourkhata/pkg/models"
)

// NextBalance applies the signed-delta rule to a running balance.
// A received payment (customer paid us) decreases what we are owed; a given
// payment (we paid the customer) increases it.
func NextBalance(current, amount decimal.Decimal, isReceived bool) decimal.Decimal {
	if isReceived {
		return current.Sub(amount)
	}
	return current.Add(amount)
}

// LatestBalance returns the balance of the transaction with the maximum date,
// or zero if there are none. When several transactions share the maximum
// date, the one appearing later in the slice wins; slices loaded from storage
// preserve insertion order, so this matches the source app's behavior.
func LatestBalance(txs []models.Transaction) decimal.Decimal {
	balance := decimal.Zero
	var latest time.Time
	found := false
	for _, tx := range txs {
		if !found || !tx.Date.Before(latest) {
			balance = tx.Balance
			latest = tx.Date
			found = true
		}
	}
	return balance
}

// Recompute replays the signed-delta rule over a customer's transactions from
// a zero starting balance and rewrites every Balance field. The input is
// sorted by date ascending (stable, so insertion order breaks ties) and is
// not modified; a new slice is returned.
func Recompute(txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(txs))
	copy(out, txs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	balance := decimal.Zero
	for i := range out {
		balance = NextBalance(balance, out[i].Amount, out[i].IsReceived)
		out[i].Balance = balance
	}
	return out
}

// Snapshot projects a signed balance onto the customer summary fields:
// amount is the absolute value, toReceive is true only for a strictly
// positive balance (zero means nothing to receive).
func Snapshot(balance decimal.Decimal) (amount decimal.Decimal, toReceive bool) {
	return balance.Abs(), balance.IsPositive()
}
