/**
 * @description
 * HTTP handlers for the two user collections: favorites (outfits and
 * products) and the wardrobe.
 */
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/styleadvisor/session-service/internal/domain"
)

// handleGetFavorites returns both favorite lists.
func (h *Handler) handleGetFavorites(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"outfits":  sess.Favorites.Outfits(),
		"products": sess.Favorites.Products(),
	})
}

// handleAddFavoriteOutfit adds an outfit. Re-adding an existing id is a
// no-op.
func (h *Handler) handleAddFavoriteOutfit(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var outfit domain.Outfit
	if err := json.NewDecoder(r.Body).Decode(&outfit); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if outfit.ID == "" {
		respondWithError(w, http.StatusBadRequest, "Outfit id is required")
		return
	}

	sess.Favorites.AddOutfit(outfit)
	respondWithJSON(w, http.StatusOK, sess.Favorites.Outfits())
}

// handleRemoveFavoriteOutfit removes an outfit by id.
func (h *Handler) handleRemoveFavoriteOutfit(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	sess.Favorites.RemoveOutfit(chi.URLParam(r, "id"))
	respondWithJSON(w, http.StatusOK, sess.Favorites.Outfits())
}

// handleAddFavoriteProduct adds a product. Re-adding an existing id is a
// no-op.
func (h *Handler) handleAddFavoriteProduct(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if product.ID == "" {
		respondWithError(w, http.StatusBadRequest, "Product id is required")
		return
	}

	sess.Favorites.AddProduct(product)
	respondWithJSON(w, http.StatusOK, sess.Favorites.Products())
}

// handleRemoveFavoriteProduct removes a product by id.
func (h *Handler) handleRemoveFavoriteProduct(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	sess.Favorites.RemoveProduct(chi.URLParam(r, "id"))
	respondWithJSON(w, http.StatusOK, sess.Favorites.Products())
}

// handleGetWardrobe returns wardrobe items, optionally filtered by the
// category query parameter. "all" and absence mean no filter.
func (h *Handler) handleGetWardrobe(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		category = domain.WardrobeCategoryAll
	}
	respondWithJSON(w, http.StatusOK, sess.Wardrobe.ItemsByCategory(category))
}

// handleAddWardrobeItem adds an item. Re-adding an existing id is a
// no-op.
func (h *Handler) handleAddWardrobeItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var item domain.WardrobeItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if item.ID == "" {
		respondWithError(w, http.StatusBadRequest, "Item id is required")
		return
	}

	sess.Wardrobe.AddItem(item)
	respondWithJSON(w, http.StatusCreated, sess.Wardrobe.ItemsByCategory(domain.WardrobeCategoryAll))
}

// handleUpdateWardrobeItem patches the editable fields of an item.
func (h *Handler) handleUpdateWardrobeItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if _, found := sess.Wardrobe.Item(id); !found {
		respondWithError(w, http.StatusNotFound, "Wardrobe item not found")
		return
	}

	var patch domain.WardrobeItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sess.Wardrobe.UpdateItem(id, patch)
	item, _ := sess.Wardrobe.Item(id)
	respondWithJSON(w, http.StatusOK, item)
}

// handleRemoveWardrobeItem removes an item by id.
func (h *Handler) handleRemoveWardrobeItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	sess.Wardrobe.RemoveItem(chi.URLParam(r, "id"))
	respondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// handleMarkWorn bumps the wear counter and stamps the wear time.
func (h *Handler) handleMarkWorn(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if _, found := sess.Wardrobe.Item(id); !found {
		respondWithError(w, http.StatusNotFound, "Wardrobe item not found")
		return
	}

	sess.Wardrobe.MarkAsWorn(id)
	item, _ := sess.Wardrobe.Item(id)
	respondWithJSON(w, http.StatusOK, item)
}

// handleToggleWardrobeFavorite flips the favorite flag on an item.
func (h *Handler) handleToggleWardrobeFavorite(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if _, found := sess.Wardrobe.Item(id); !found {
		respondWithError(w, http.StatusNotFound, "Wardrobe item not found")
		return
	}

	sess.Wardrobe.ToggleFavorite(id)
	item, _ := sess.Wardrobe.Item(id)
	respondWithJSON(w, http.StatusOK, item)
}
