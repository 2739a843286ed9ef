/**
 * @description
 * This file implements the favorites state container: ordered lists of
 * saved outfits and products keyed by id. Presence in the list is the
 * favorite marker, so items are stored with IsFavorite forced true.
 * Adds deduplicate by id; removes of absent ids are no-ops.
 */
package app

import (
	"encoding/json"

	"github.com/styleadvisor/session-service/internal/domain"
)

type favoritesSnapshot struct {
	Outfits  []domain.Outfit  `json:"outfits"`
	Products []domain.Product `json:"products"`
}

// FavoritesStore holds the favorites collections for a single user.
type FavoritesStore struct {
	base     baseStore
	outfits  []domain.Outfit
	products []domain.Product
}

// NewFavoritesStore creates a favorites container.
func NewFavoritesStore(onChange ChangeFunc) *FavoritesStore {
	return &FavoritesStore{base: newBaseStore(SnapshotStoreFavorites, onChange)}
}

// AddOutfit appends the outfit unless its id is already present.
func (s *FavoritesStore) AddOutfit(outfit domain.Outfit) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	for _, o := range s.outfits {
		if o.ID == outfit.ID {
			return
		}
	}
	outfit.IsFavorite = true
	s.outfits = append(s.outfits, outfit)
	s.base.notify(s.snapshotLocked())
}

// RemoveOutfit removes by id; absent ids are no-ops.
func (s *FavoritesStore) RemoveOutfit(id string) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	kept := s.outfits[:0]
	for _, o := range s.outfits {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.outfits = kept
	s.base.notify(s.snapshotLocked())
}

// AddProduct appends the product unless its id is already present.
func (s *FavoritesStore) AddProduct(product domain.Product) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	for _, p := range s.products {
		if p.ID == product.ID {
			return
		}
	}
	product.IsFavorite = true
	s.products = append(s.products, product)
	s.base.notify(s.snapshotLocked())
}

// RemoveProduct removes by id; absent ids are no-ops.
func (s *FavoritesStore) RemoveProduct(id string) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	s.base.notify(s.snapshotLocked())
}

// IsOutfitFavorite is a pure membership test.
func (s *FavoritesStore) IsOutfitFavorite(id string) bool {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	for _, o := range s.outfits {
		if o.ID == id {
			return true
		}
	}
	return false
}

// IsProductFavorite is a pure membership test.
func (s *FavoritesStore) IsProductFavorite(id string) bool {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	for _, p := range s.products {
		if p.ID == id {
			return true
		}
	}
	return false
}

// SetOutfits replaces the outfit list wholesale.
func (s *FavoritesStore) SetOutfits(outfits []domain.Outfit) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.outfits = append([]domain.Outfit(nil), outfits...)
	s.base.notify(s.snapshotLocked())
}

// SetProducts replaces the product list wholesale.
func (s *FavoritesStore) SetProducts(products []domain.Product) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.products = append([]domain.Product(nil), products...)
	s.base.notify(s.snapshotLocked())
}

// Outfits returns a copy of the saved outfits in insertion order.
func (s *FavoritesStore) Outfits() []domain.Outfit {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	out := make([]domain.Outfit, len(s.outfits))
	copy(out, s.outfits)
	return out
}

// Products returns a copy of the saved products in insertion order.
func (s *FavoritesStore) Products() []domain.Product {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Reset clears both collections.
func (s *FavoritesStore) Reset() {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.outfits = nil
	s.products = nil
	s.base.notify(s.snapshotLocked())
}

func (s *FavoritesStore) snapshotLocked() []byte {
	payload, err := json.Marshal(favoritesSnapshot{Outfits: s.outfits, Products: s.products})
	if err != nil {
		return nil
	}
	return payload
}

func (s *FavoritesStore) restore(payload []byte) error {
	var snap favoritesSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return err
	}

	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.outfits = snap.Outfits
	s.products = snap.Products
	return nil
}
