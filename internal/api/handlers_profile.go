/**
 * @description
 * HTTP handlers for the style profile: establish at onboarding, partial
 * updates, and the single-field convenience endpoints the onboarding
 * screens call.
 */
package api

import (
	"encoding/json"
	"net/http"

	"github.com/styleadvisor/session-service/internal/domain"
)

// handleGetProfile returns the profile, or 404 when onboarding has not
// created one yet.
func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile := sess.Profile.Get()
	if profile == nil {
		respondWithError(w, http.StatusNotFound, "Profile not found")
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}

// handleSetProfile replaces the whole profile record.
func (h *Handler) handleSetProfile(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var profile domain.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	profile.UserID = sess.UserID

	sess.Profile.Set(profile)
	respondWithJSON(w, http.StatusOK, sess.Profile.Get())
}

// handleUpdateProfile shallow-merges a patch into the existing profile.
func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var patch domain.ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if sess.Profile.Get() == nil {
		respondWithError(w, http.StatusNotFound, "Profile not found")
		return
	}
	sess.Profile.Update(patch)
	respondWithJSON(w, http.StatusOK, sess.Profile.Get())
}

// handleSetStylePreferences updates only the style tags.
func (h *Handler) handleSetStylePreferences(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		StylePreferences []domain.StylePreference `json:"style_preferences"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sess.Profile.SetStylePreferences(req.StylePreferences)
	respondWithJSON(w, http.StatusOK, sess.Profile.Get())
}

// handleSetBudgetRange updates only the budget.
func (h *Handler) handleSetBudgetRange(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		BudgetRange domain.BudgetRange `json:"budget_range"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sess.Profile.SetBudgetRange(req.BudgetRange)
	respondWithJSON(w, http.StatusOK, sess.Profile.Get())
}

// handleSetPreferredRetailers updates only the retailer list.
func (h *Handler) handleSetPreferredRetailers(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		PreferredRetailers []string `json:"preferred_retailers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sess.Profile.SetPreferredRetailers(req.PreferredRetailers)
	respondWithJSON(w, http.StatusOK, sess.Profile.Get())
}
