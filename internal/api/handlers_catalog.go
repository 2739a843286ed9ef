/**
 * @description
 * HTTP handlers for the public catalog: curated products, outfits, and
 * trends served from the mock catalog client.
 */
package api

import "net/http"

func (h *Handler) handleGetProducts(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.catalog.Products())
}

func (h *Handler) handleGetOutfits(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.catalog.Outfits())
}

func (h *Handler) handleGetTrends(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.catalog.Trends())
}
