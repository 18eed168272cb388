// Package metrics exposes Prometheus instrumentation for the ledger engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransactionsAdded counts ledger entries appended via AddTransaction.
	TransactionsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "yourkhata_transactions_added_total",
		Help: "Number of ledger transactions appended.",
	})

	// TransactionsDeleted counts ledger entries removed via DeleteTransaction.
	TransactionsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "yourkhata_transactions_deleted_total",
		Help: "Number of ledger transactions deleted.",
	})

	// BalanceRecomputes counts full per-customer balance replays.
	BalanceRecomputes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "yourkhata_balance_recomputes_total",
		Help: "Number of full per-customer balance recomputations.",
	})
)
