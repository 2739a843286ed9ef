/**
 * @description
 * HTTP handlers for the analysis session: draft management, run
 * submission, processing status, and the bounded history.
 */
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/styleadvisor/session-service/internal/app"
	"github.com/styleadvisor/session-service/internal/domain"
)

// handleGetAnalysis returns the draft, the latest result, and the
// processing state in one payload so the analysis screen can render from
// a single fetch.
func (h *Handler) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	processing, step := sess.Analysis.Processing()
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"current_request": sess.Analysis.CurrentRequest(),
		"current_result":  sess.Analysis.CurrentResult(),
		"is_processing":   processing,
		"processing_step": step,
	})
}

// handleUpdateDraft merges a patch into the draft, creating it on first
// touch with the text type as default.
func (h *Handler) handleUpdateDraft(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var patch domain.AnalysisRequestPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sess.Analysis.UpdateCurrentRequest(patch)
	respondWithJSON(w, http.StatusOK, sess.Analysis.CurrentRequest())
}

// handleClearAnalysis drops the draft and result. An in-flight run is
// cancelled.
func (h *Handler) handleClearAnalysis(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	sess.Analysis.ClearCurrent()
	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// handleSubmitAnalysis gates and starts an analysis run. The run outlives
// the request; clients poll the analysis state for progress.
func (h *Handler) handleSubmitAnalysis(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.processor.Start(h.procCtx, sess); err != nil {
		var gateErr *app.GateError
		switch {
		case errors.As(err, &gateErr):
			respondWithJSON(w, http.StatusForbidden, gateErr.Decision)
		case errors.Is(err, app.ErrNoDraft):
			respondWithError(w, http.StatusBadRequest, "No analysis draft to submit")
		case errors.Is(err, app.ErrAlreadyProcessing):
			respondWithError(w, http.StatusConflict, "An analysis is already running")
		default:
			respondWithError(w, http.StatusInternalServerError, "Failed to start analysis")
		}
		return
	}

	respondWithJSON(w, http.StatusAccepted, map[string]bool{"started": true})
}

// handleGetHistory returns the bounded history, newest first.
func (h *Handler) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	respondWithJSON(w, http.StatusOK, sess.Analysis.History())
}
