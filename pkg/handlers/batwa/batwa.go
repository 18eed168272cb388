package batwa

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/umar/yourkhata/pkg/api"
	"github.com/umar/yourkhata/pkg/mapping"
	"github.com/umar/yourkhata/pkg/models"
	"github.com/umar/yourkhata/pkg/reports"
	"github.com/umar/yourkhata/pkg/storage"
)

// BatwaHandler holds the dependencies for income/expense handlers.
type BatwaHandler struct {
	Store storage.BatwaStore
}

// NewBatwaHandler creates a new BatwaHandler.
func NewBatwaHandler(store storage.BatwaStore) *BatwaHandler {
	return &BatwaHandler{Store: store}
}

// ListBatwaTransactions handles the logic for retrieving the income/expense
// entries of a profile. The profile_id query parameter defaults to the active
// profile.
func (h *BatwaHandler) ListBatwaTransactions(w http.ResponseWriter, r *http.Request) {
	profileID := r.URL.Query().Get("profile_id")

	entries, err := h.Store.ListBatwaTransactions(r.Context(), profileID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve batwa transactions: %v", err), http.StatusInternalServerError)
		return
	}

	apiEntries := make([]*api.BatwaTransaction, len(entries))
	for i := range entries {
		apiEntries[i] = mapping.ToApiBatwaTransaction(&entries[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiEntries); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// CreateBatwaTransaction handles the logic for adding an income/expense entry.
func (h *BatwaHandler) CreateBatwaTransaction(w http.ResponseWriter, r *http.Request) {
	var newEntry api.NewBatwaTransaction
	if err := json.NewDecoder(r.Body).Decode(&newEntry); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if !newEntry.Amount.IsPositive() {
		http.Error(w, "Amount must be positive", http.StatusBadRequest)
		return
	}
	entryType := models.BatwaType(newEntry.Type)
	if entryType != models.BatwaIncome && entryType != models.BatwaExpense {
		http.Error(w, "Type must be income or expense", http.StatusBadRequest)
		return
	}

	entry, err := h.Store.AddBatwaTransaction(r.Context(), newEntry.Amount, entryType, newEntry.Category, newEntry.Notes, newEntry.Timestamp)
	if err != nil {
		if errors.Is(err, storage.ErrNoActiveProfile) {
			http.Error(w, "No active profile. Please create a profile first.", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to create batwa transaction: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiBatwaTransaction(entry)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// DeleteBatwaTransaction handles the logic for removing an income/expense
// entry.
func (h *BatwaHandler) DeleteBatwaTransaction(w http.ResponseWriter, r *http.Request, entryId string) {
	if err := h.Store.DeleteBatwaTransaction(r.Context(), entryId); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Batwa transaction not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to delete batwa transaction: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetBatwaSummary handles the logic for the derived income/expense overview.
// The profile_id query parameter defaults to the active profile.
func (h *BatwaHandler) GetBatwaSummary(w http.ResponseWriter, r *http.Request) {
	profileID := r.URL.Query().Get("profile_id")

	entries, err := h.Store.ListBatwaTransactions(r.Context(), profileID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve batwa transactions: %v", err), http.StatusInternalServerError)
		return
	}

	summary := reports.SummarizeBatwa(entries)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
