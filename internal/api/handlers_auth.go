/**
 * @description
 * HTTP handlers for registration, login, logout, session inspection, the
 * onboarding/terms flags, and account deletion.
 */
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/styleadvisor/session-service/internal/app"
	"github.com/styleadvisor/session-service/internal/store"
)

type registerRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleRegister creates a credential and returns the freshly
// authenticated session.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	sess, err := h.auth.Register(r.Context(), req.Email, req.DisplayName, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			respondWithError(w, http.StatusConflict, "Email already registered")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	respondWithJSON(w, http.StatusCreated, sess)
}

// handleLogin verifies credentials and returns the session.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sess, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, app.ErrInvalidCredentials) {
			respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	respondWithJSON(w, http.StatusOK, sess)
}

// handleGetSession returns the caller's current session state.
func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	respondWithJSON(w, http.StatusOK, sess.Identity.Session())
}

// handleLogout clears the session.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	h.auth.Logout(r.Context(), userID)
	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// handleSetOnboarded marks onboarding complete. The flag is one-way.
func (h *Handler) handleSetOnboarded(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Onboarded bool `json:"onboarded"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Onboarded {
		h.auth.MarkOnboarded(r.Context(), sess)
	} else {
		sess.Identity.SetOnboarded(false)
	}
	respondWithJSON(w, http.StatusOK, sess.Identity.Session())
}

// handleAcceptTerms records terms acceptance.
func (h *Handler) handleAcceptTerms(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Accepted bool `json:"accepted"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sess.Identity.SetAcceptedTerms(req.Accepted)
	respondWithJSON(w, http.StatusOK, sess.Identity.Session())
}

// handleDeleteAccount removes the credential and all persisted state.
// The client gates this behind an explicit confirmation step.
func (h *Handler) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.auth.DeleteAccount(r.Context(), userID); err != nil {
		respondWithError(w, http.StatusInternalServerError, "Account deletion failed")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
