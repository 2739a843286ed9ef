/**
 * @description
 * HTTP handlers for the entitlement surface: current status, the feature
 * gate check the client consults before opening premium screens, and the
 * purchase/restore/cancel billing flows.
 */
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/styleadvisor/session-service/internal/app"
)

// handleGetSubscription returns the entitlement status.
func (h *Handler) handleGetSubscription(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	respondWithJSON(w, http.StatusOK, sess.Entitlement.Status())
}

// handleGate evaluates the feature gate for a single feature key. The
// client calls this before opening a gated screen and reacts to the
// returned action: allow, paywall, or limit-modal.
func (h *Handler) handleGate(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	feature := chi.URLParam(r, "feature")
	respondWithJSON(w, http.StatusOK, sess.Entitlement.Gate(feature))
}

// handleUpgrade runs a purchase through the billing client and applies
// the premium entitlement on success.
func (h *Handler) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Plan string `json:"plan"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	status, err := h.billing.Upgrade(r.Context(), sess, req.Plan)
	if err != nil {
		if errors.Is(err, app.ErrPurchaseFailed) {
			respondWithError(w, http.StatusPaymentRequired, "Purchase failed")
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Upgrade failed")
		return
	}
	respondWithJSON(w, http.StatusOK, status)
}

// handleRestore re-applies previously purchased entitlements.
func (h *Handler) handleRestore(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	status, restored, err := h.billing.Restore(r.Context(), sess)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Restore failed")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":   status,
		"restored": restored,
	})
}

// handleCancel drops the entitlement back to the free tier.
func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	status := h.billing.Cancel(r.Context(), sess)
	respondWithJSON(w, http.StatusOK, status)
}
