package customers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/umar/yourkhata/pkg/api"
	"github.com/umar/yourkhata/pkg/mapping"
	"github.com/umar/yourkhata/pkg/storage"
)

// CustomersHandler holds the dependencies for customer-related handlers.
type CustomersHandler struct {
	Store storage.CustomerStore
}

// NewCustomersHandler creates a new CustomersHandler.
func NewCustomersHandler(store storage.CustomerStore) *CustomersHandler {
	return &CustomersHandler{Store: store}
}

// ListCustomers handles the logic for retrieving the customers of a profile.
// The profile_id query parameter defaults to the active profile.
func (h *CustomersHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	profileID := r.URL.Query().Get("profile_id")

	customers, err := h.Store.ListCustomers(r.Context(), profileID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve customers: %v", err), http.StatusInternalServerError)
		return
	}

	apiCustomers := make([]*api.Customer, len(customers))
	for i := range customers {
		apiCustomers[i] = mapping.ToApiCustomer(&customers[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiCustomers); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// CreateCustomer handles the logic for creating a new customer.
func (h *CustomersHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var newCustomer api.NewCustomer
	if err := json.NewDecoder(r.Body).Decode(&newCustomer); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if newCustomer.Name == "" {
		http.Error(w, "Customer name is required", http.StatusBadRequest)
		return
	}
	if newCustomer.Amount.IsNegative() {
		http.Error(w, "Amount must not be negative", http.StatusBadRequest)
		return
	}

	customer, err := h.Store.AddCustomer(r.Context(), newCustomer.Name, newCustomer.PhoneNumber, newCustomer.Amount, newCustomer.ToReceive)
	if err != nil {
		if errors.Is(err, storage.ErrNoActiveProfile) {
			http.Error(w, "No active profile. Please create a profile first.", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to create customer: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiCustomer(customer)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetCustomerById handles the logic for retrieving a customer by its ID.
func (h *CustomersHandler) GetCustomerById(w http.ResponseWriter, r *http.Request, customerId string) {
	customer, err := h.Store.GetCustomer(r.Context(), customerId)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Customer not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to retrieve customer: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiCustomer(customer)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// UpdateCustomer handles the logic for editing a customer's name or phone.
func (h *CustomersHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request, customerId string) {
	var updates api.UpdateCustomer
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	customer, err := h.Store.UpdateCustomer(r.Context(), customerId, storage.CustomerUpdate{
		Name:        updates.Name,
		PhoneNumber: updates.PhoneNumber,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Customer not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to update customer: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiCustomer(customer)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// DeleteCustomer handles the logic for deleting a customer and its
// transactions.
func (h *CustomersHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request, customerId string) {
	if err := h.Store.DeleteCustomer(r.Context(), customerId); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Customer not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to delete customer: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
