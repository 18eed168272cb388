package transactions

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/umar/yourkhata/pkg/api"
	"github.com/umar/yourkhata/pkg/mapping"
	"github.com/umar/yourkhata/pkg/models"
	"github.com/umar/yourkhata/pkg/reminders"
	"github.com/umar/yourkhata/pkg/storage"
)

// TransactionsHandler holds the dependencies for ledger-entry handlers. The
// Notifier enqueues a payment reminder after a successful create; enqueue
// failures are logged, never surfaced to the client.
type TransactionsHandler struct {
	Store    storage.ApiStore
	Notifier reminders.Notifier
	Logger   *slog.Logger
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(store storage.ApiStore, notifier reminders.Notifier, logger *slog.Logger) *TransactionsHandler {
	return &TransactionsHandler{Store: store, Notifier: notifier, Logger: logger}
}

// CreateTransaction handles the logic for appending a ledger entry.
func (h *TransactionsHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var newTx api.NewTransaction
	if err := json.NewDecoder(r.Body).Decode(&newTx); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if newTx.CustomerId == "" {
		http.Error(w, "Customer id is required", http.StatusBadRequest)
		return
	}
	if !newTx.Amount.IsPositive() {
		http.Error(w, "Amount must be positive", http.StatusBadRequest)
		return
	}

	tx, err := h.Store.AddTransaction(r.Context(), newTx.CustomerId, newTx.Amount, newTx.IsReceived, newTx.Date, newTx.Notes)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Customer not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, storage.ErrNoActiveProfile) {
			http.Error(w, "No active profile. Please create a profile first.", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to create transaction: %v", err), http.StatusInternalServerError)
		return
	}

	h.enqueueReminder(r, tx.CustomerId)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiTransaction(tx)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// enqueueReminder sends the customer's updated position to the reminder queue.
// Best effort: the entry is already committed, so failures only log.
func (h *TransactionsHandler) enqueueReminder(r *http.Request, customerId string) {
	customer, err := h.Store.GetCustomer(r.Context(), customerId)
	if err != nil {
		h.Logger.Warn("skipping reminder, customer lookup failed", "customer_id", customerId, "error", err)
		return
	}
	if customer.PhoneNumber == "" || !customer.ToReceive {
		return
	}

	reminder := reminders.Reminder{
		CustomerId:   customer.Id,
		CustomerName: customer.Name,
		PhoneNumber:  customer.PhoneNumber,
		Amount:       customer.Amount,
		ToReceive:    customer.ToReceive,
	}
	if err := h.Notifier.SendReminder(r.Context(), reminder); err != nil {
		h.Logger.Warn("failed to enqueue payment reminder", "customer_id", customerId, "error", err)
	}
}

// DeleteTransaction handles the logic for removing a ledger entry and
// recomputing the customer's balances.
func (h *TransactionsHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request, transactionId string) {
	if err := h.Store.DeleteTransaction(r.Context(), transactionId); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Transaction not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to delete transaction: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListCustomerTransactions handles the logic for retrieving a customer's
// ledger history.
func (h *TransactionsHandler) ListCustomerTransactions(w http.ResponseWriter, r *http.Request, customerId string) {
	txs, err := h.Store.ListTransactions(r.Context(), customerId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve transactions: %v", err), http.StatusInternalServerError)
		return
	}

	writeTransactions(w, txs)
}

// ListProfileTransactions handles the logic for retrieving all transactions of
// a profile. The profile_id query parameter defaults to the active profile.
func (h *TransactionsHandler) ListProfileTransactions(w http.ResponseWriter, r *http.Request) {
	profileID := r.URL.Query().Get("profile_id")

	txs, err := h.Store.ListProfileTransactions(r.Context(), profileID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve transactions: %v", err), http.StatusInternalServerError)
		return
	}

	writeTransactions(w, txs)
}

func writeTransactions(w http.ResponseWriter, txs []models.Transaction) {
	apiTxs := make([]*api.Transaction, len(txs))
	for i := range txs {
		apiTxs[i] = mapping.ToApiTransaction(&txs[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiTxs); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
