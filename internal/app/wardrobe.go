/**
 * @description
 * This file implements the wardrobe state container: an ordered list of
 * user-created garments with mark-as-worn tracking, a per-item favorite
 * flag, and category queries. Mutations on unknown ids silently no-op.
 */
package app

import (
	"encoding/json"
	"time"

	"github.com/styleadvisor/session-service/internal/domain"
)

type wardrobeSnapshot struct {
	Items []domain.WardrobeItem `json:"items"`
}

// WardrobeStore holds the wardrobe for a single user.
type WardrobeStore struct {
	base  baseStore
	items []domain.WardrobeItem
	now   func() time.Time
}

// NewWardrobeStore creates a wardrobe container.
func NewWardrobeStore(onChange ChangeFunc) *WardrobeStore {
	return &WardrobeStore{
		base: newBaseStore(SnapshotStoreWardrobe, onChange),
		now:  time.Now,
	}
}

// AddItem appends the item unless its id is already present.
func (s *WardrobeStore) AddItem(item domain.WardrobeItem) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	for _, existing := range s.items {
		if existing.ID == item.ID {
			return
		}
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = s.now()
	}
	s.items = append(s.items, item)
	s.base.notify(s.snapshotLocked())
}

// UpdateItem shallow-merges the patch into the item with the given id.
func (s *WardrobeStore) UpdateItem(id string, patch domain.WardrobeItemPatch) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		item := &s.items[i]
		if patch.Name != nil {
			item.Name = *patch.Name
		}
		if patch.Category != nil {
			item.Category = *patch.Category
		}
		if patch.Color != nil {
			item.Color = *patch.Color
		}
		if patch.Brand != nil {
			item.Brand = *patch.Brand
		}
		if patch.ImageURL != nil {
			item.ImageURL = *patch.ImageURL
		}
		if patch.PurchaseDate != nil {
			item.PurchaseDate = patch.PurchaseDate
		}
		if patch.Price != nil {
			item.Price = patch.Price
		}
		if patch.Notes != nil {
			item.Notes = *patch.Notes
		}
		s.base.notify(s.snapshotLocked())
		return
	}
}

// RemoveItem removes by id; absent ids are no-ops.
func (s *WardrobeStore) RemoveItem(id string) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.base.notify(s.snapshotLocked())
}

// MarkAsWorn increments TimesWorn and stamps LastWorn with the current
// time. Unknown ids are no-ops.
func (s *WardrobeStore) MarkAsWorn(id string) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		worn := s.now()
		s.items[i].TimesWorn++
		s.items[i].LastWorn = &worn
		s.base.notify(s.snapshotLocked())
		return
	}
}

// ToggleFavorite flips the per-item favorite flag in place. This flag is
// independent of the favorites collection. Unknown ids are no-ops.
func (s *WardrobeStore) ToggleFavorite(id string) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		s.items[i].IsFavorite = !s.items[i].IsFavorite
		s.base.notify(s.snapshotLocked())
		return
	}
}

// ItemsByCategory returns items matching the category, or everything for
// "all". Pure read.
func (s *WardrobeStore) ItemsByCategory(category string) []domain.WardrobeItem {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	if category == "" || category == domain.WardrobeCategoryAll {
		out := make([]domain.WardrobeItem, len(s.items))
		copy(out, s.items)
		return out
	}

	var out []domain.WardrobeItem
	for _, item := range s.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Item returns a copy of a single item by id.
func (s *WardrobeStore) Item(id string) (domain.WardrobeItem, bool) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.WardrobeItem{}, false
}

// SetItems replaces the wardrobe wholesale.
func (s *WardrobeStore) SetItems(items []domain.WardrobeItem) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.items = append([]domain.WardrobeItem(nil), items...)
	s.base.notify(s.snapshotLocked())
}

// Reset clears the wardrobe.
func (s *WardrobeStore) Reset() {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.items = nil
	s.base.notify(s.snapshotLocked())
}

func (s *WardrobeStore) snapshotLocked() []byte {
	payload, err := json.Marshal(wardrobeSnapshot{Items: s.items})
	if err != nil {
		return nil
	}
	return payload
}

func (s *WardrobeStore) restore(payload []byte) error {
	var snap wardrobeSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return err
	}

	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.items = snap.Items
	return nil
}
