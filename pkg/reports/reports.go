// Package reports derives aggregate figures from stored collections. Nothing
// here is persisted; totals are recomputed on every read so they cannot drift
// from the underlying entries.
package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/umar/yourkhata/pkg/models"
)

// BatwaSummary is the derived income/expense overview of a profile's batwa.
type BatwaSummary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Net          decimal.Decimal `json:"net"`
}

// SummarizeBatwa sums entries grouped by type.
func SummarizeBatwa(entries []models.BatwaTransaction) BatwaSummary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, entry := range entries {
		switch entry.Type {
		case models.BatwaIncome:
			income = income.Add(entry.Amount)
		case models.BatwaExpense:
			expense = expense.Add(entry.Amount)
		}
	}
	return BatwaSummary{
		TotalIncome:  income,
		TotalExpense: expense,
		Net:          income.Sub(expense),
	}
}

// CustomerReport aggregates a customer's ledger activity over a date range.
type CustomerReport struct {
	TotalTransactions int             `json:"total_transactions"`
	TotalReceived     decimal.Decimal `json:"total_received"`
	TotalGiven        decimal.Decimal `json:"total_given"`
	Net               decimal.Decimal `json:"net"`
}

// SummarizeTransactions totals received and given amounts for the
// transactions falling inside [from, to]. Zero time bounds are open.
func SummarizeTransactions(txs []models.Transaction, from, to time.Time) CustomerReport {
	report := CustomerReport{
		TotalReceived: decimal.Zero,
		TotalGiven:    decimal.Zero,
		Net:           decimal.Zero,
	}

	for _, tx := range txs {
		if !from.IsZero() && tx.Date.Before(from) {
			continue
		}
		if !to.IsZero() && tx.Date.After(to) {
			continue
		}
		report.TotalTransactions++
		if tx.IsReceived {
			report.TotalReceived = report.TotalReceived.Add(tx.Amount)
		} else {
			report.TotalGiven = report.TotalGiven.Add(tx.Amount)
		}
	}

	report.Net = report.TotalGiven.Sub(report.TotalReceived)
	return report
}
