package profiles

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/umar/yourkhata/pkg/api"
	"github.com/umar/yourkhata/pkg/mapping"
	"github.com/umar/yourkhata/pkg/storage"
)

// ProfilesHandler holds the dependencies for profile-related handlers.
type ProfilesHandler struct {
	Store storage.ProfileStore
}

// NewProfilesHandler creates a new ProfilesHandler.
func NewProfilesHandler(store storage.ProfileStore) *ProfilesHandler {
	return &ProfilesHandler{Store: store}
}

// ListProfiles handles the logic for retrieving all profiles.
func (h *ProfilesHandler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Store.ListProfiles(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve profiles: %v", err), http.StatusInternalServerError)
		return
	}

	apiProfiles := make([]*api.Profile, len(profiles))
	for i := range profiles {
		apiProfiles[i] = mapping.ToApiProfile(&profiles[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(apiProfiles); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// CreateProfile handles the logic for creating a new profile.
func (h *ProfilesHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var newProfile api.NewProfile
	if err := json.NewDecoder(r.Body).Decode(&newProfile); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if newProfile.Name == "" {
		http.Error(w, "Profile name is required", http.StatusBadRequest)
		return
	}

	profile, err := h.Store.AddProfile(r.Context(), newProfile.Name, newProfile.Description)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create profile: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mapping.ToApiProfile(profile)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// UpdateProfile handles the logic for editing a profile.
func (h *ProfilesHandler) UpdateProfile(w http.ResponseWriter, r *http.Request, profileId string) {
	var updates api.UpdateProfile
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	profile, err := h.Store.UpdateProfile(r.Context(), profileId, storage.ProfileUpdate{
		Name:        updates.Name,
		Description: updates.Description,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to update profile: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiProfile(profile)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// DeleteProfile handles the logic for deleting a profile and all of its data.
func (h *ProfilesHandler) DeleteProfile(w http.ResponseWriter, r *http.Request, profileId string) {
	if err := h.Store.DeleteProfile(r.Context(), profileId); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to delete profile: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetActiveProfile handles the logic for retrieving the active profile.
func (h *ProfilesHandler) GetActiveProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Store.ActiveProfile(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve active profile: %v", err), http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, "No active profile", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mapping.ToApiProfile(profile)); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ActivateProfile handles the logic for switching the active profile.
func (h *ProfilesHandler) ActivateProfile(w http.ResponseWriter, r *http.Request) {
	var body api.ActivateProfile
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.Store.SetActiveProfile(r.Context(), body.Id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to set active profile: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
