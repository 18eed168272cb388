package users

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/umar/yourkhata/pkg/api"
	"github.com/umar/yourkhata/pkg/mapping"
	"github.com/umar/yourkhata/pkg/storage"
)

// UsersHandler holds the dependencies for device-owner record handlers.
type UsersHandler struct {
	Store storage.UserStore
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(store storage.UserStore) *UsersHandler {
	return &UsersHandler{Store: store}
}

// GetUserProfile handles the logic for retrieving the owner record.
func (h *UsersHandler) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Store.UserProfile(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve user profile: %v", err), http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, "User profile not set", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiUserProfile(profile)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// SaveUserProfile handles the logic for storing the owner record.
func (h *UsersHandler) SaveUserProfile(w http.ResponseWriter, r *http.Request) {
	var body api.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if body.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	saved, err := h.Store.SaveUserProfile(r.Context(), mapping.ToDomainUserProfile(&body))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to save user profile: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiUserProfile(saved)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
