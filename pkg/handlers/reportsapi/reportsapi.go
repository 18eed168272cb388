package reportsapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/umar/yourkhata/pkg/reports"
	"github.com/umar/yourkhata/pkg/storage"
)

// ReportsHandler holds the dependencies for derived-report handlers.
type ReportsHandler struct {
	Store storage.TransactionReader
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(store storage.TransactionReader) *ReportsHandler {
	return &ReportsHandler{Store: store}
}

// GetCustomerReport handles the logic for summarizing a customer's ledger
// activity. Optional from/to query parameters (RFC 3339) bound the range.
func (h *ReportsHandler) GetCustomerReport(w http.ResponseWriter, r *http.Request, customerId string) {
	from, err := parseTimeParam(r.URL.Query().Get("from"))
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid from parameter: %v", err), http.StatusBadRequest)
		return
	}
	to, err := parseTimeParam(r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid to parameter: %v", err), http.StatusBadRequest)
		return
	}

	txs, err := h.Store.ListTransactions(r.Context(), customerId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve transactions: %v", err), http.StatusInternalServerError)
		return
	}

	report := reports.SummarizeTransactions(txs, from, to)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(report); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

func parseTimeParam(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, value)
}
