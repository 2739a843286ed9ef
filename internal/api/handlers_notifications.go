/**
 * @description
 * HTTP handlers for the notification surface: the active toast queue and
 * the single-slot modal.
 */
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleGetNotifications returns active toasts and the current modal.
func (h *Handler) handleGetNotifications(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"toasts": sess.Notifications.Toasts(),
		"modal":  sess.Notifications.ActiveModal(),
	})
}

// handleShowToast enqueues a toast. Duration zero means the default
// auto-dismiss window.
func (h *Handler) handleShowToast(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Type       string `json:"type"`
		Message    string `json:"message"`
		DurationMs int    `json:"duration_ms"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id := sess.Notifications.ShowToast(req.Type, req.Message, req.DurationMs)
	respondWithJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// handleHideToast dismisses a toast early. Unknown ids are ignored.
func (h *Handler) handleHideToast(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	sess.Notifications.HideToast(chi.URLParam(r, "id"))
	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// handleClearToasts dismisses every toast at once.
func (h *Handler) handleClearToasts(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	sess.Notifications.ClearToasts()
	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// handleShowModal replaces the active modal.
func (h *Handler) handleShowModal(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Type    string                 `json:"type"`
		Title   string                 `json:"title"`
		Message string                 `json:"message"`
		Data    map[string]interface{} `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id := sess.Notifications.ShowModal(req.Type, req.Title, req.Message, req.Data)
	respondWithJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// handleHideModal dismisses the active modal.
func (h *Handler) handleHideModal(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	sess.Notifications.HideModal()
	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
