/**
 * @description
 * This file defines the HTTP handler container and shared response
 * helpers. Handlers parse requests, call into the session workflows, and
 * write JSON responses; validation beyond request shape lives with the
 * callers of the state model, not the stores.
 */
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/styleadvisor/session-service/internal/app"
	"github.com/styleadvisor/session-service/internal/domain"
)

// Catalog is the read-only mock catalog surface the handlers expose.
type Catalog interface {
	Products() []domain.Product
	Outfits() []domain.Outfit
	Trends() []domain.Trend
}

// Handler holds the application services the handlers interact with.
type Handler struct {
	hub       *app.Hub
	auth      *app.AuthService
	billing   *app.BillingService
	processor *app.Processor
	catalog   Catalog

	// procCtx is the process-lifetime context analysis runs detach to,
	// so a finished HTTP request does not cancel an in-flight pipeline.
	procCtx context.Context
}

// NewHandler creates a new Handler.
func NewHandler(hub *app.Hub, auth *app.AuthService, billing *app.BillingService, processor *app.Processor, catalog Catalog, procCtx context.Context) *Handler {
	if procCtx == nil {
		procCtx = context.Background()
	}
	return &Handler{
		hub:       hub,
		auth:      auth,
		billing:   billing,
		processor: processor,
		catalog:   catalog,
		procCtx:   procCtx,
	}
}

// session resolves the caller's session bundle from the request context.
func (h *Handler) session(r *http.Request) (*app.Session, bool) {
	userID, ok := UserFromContext(r.Context())
	if !ok {
		return nil, false
	}
	return h.hub.Session(r.Context(), userID), true
}

// respondWithJSON is a helper function to write JSON responses.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithError writes a JSON error body.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
