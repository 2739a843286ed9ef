/**
 * @description
 * This file defines the wardrobe domain models. Wardrobe items are created
 * by explicit user action; TimesWorn only ever increases via mark-as-worn
 * and IsFavorite is a per-item flag, distinct from the favorites collection.
 */
package domain

import "time"

// Wardrobe categories. "all" is a query value, not a stored category.
const (
	WardrobeCategoryAll         = "all"
	WardrobeCategoryTops        = "tops"
	WardrobeCategoryBottoms     = "bottoms"
	WardrobeCategoryDresses     = "dresses"
	WardrobeCategoryOuterwear   = "outerwear"
	WardrobeCategoryShoes       = "shoes"
	WardrobeCategoryAccessories = "accessories"
	WardrobeCategoryBags        = "bags"
	WardrobeCategoryJewelry     = "jewelry"
)

// WardrobeItem is a single garment the user tracks.
type WardrobeItem struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Color        string     `json:"color"`
	Brand        string     `json:"brand,omitempty"`
	ImageURL     string     `json:"image_url,omitempty"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	Price        *int       `json:"price,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	TimesWorn    int        `json:"times_worn"`
	LastWorn     *time.Time `json:"last_worn,omitempty"`
	IsFavorite   bool       `json:"is_favorite"`
	CreatedAt    time.Time  `json:"created_at"`
}

// WardrobeItemPatch carries a partial item update. Nil fields are absent.
// TimesWorn/LastWorn are owned by mark-as-worn and cannot be patched.
type WardrobeItemPatch struct {
	Name         *string    `json:"name,omitempty"`
	Category     *string    `json:"category,omitempty"`
	Color        *string    `json:"color,omitempty"`
	Brand        *string    `json:"brand,omitempty"`
	ImageURL     *string    `json:"image_url,omitempty"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	Price        *int       `json:"price,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
}
