/**
 * @description
 * This file defines the catalog-facing domain models: outfits, their items,
 * and shoppable products. Favorites hold denormalized copies of these;
 * presence in the favorites collection is the favorite marker.
 */
package domain

// Outfit is a curated set of items suggested by an analysis or browsed
// from the catalog.
type Outfit struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	ImageURL        string       `json:"image_url,omitempty"`
	Items           []OutfitItem `json:"items"`
	Occasion        string       `json:"occasion"`
	Style           string       `json:"style"`
	Season          string       `json:"season"`
	TotalPrice      int          `json:"total_price"`
	IsPremiumLocked bool         `json:"is_premium_locked"`
	IsFavorite      bool         `json:"is_favorite"`
}

// OutfitItem is one garment inside an outfit.
type OutfitItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Color        string `json:"color"`
	ImageURL     string `json:"image_url,omitempty"`
	Price        int    `json:"price"`
	Brand        string `json:"brand"`
	Retailer     string `json:"retailer"`
	AffiliateURL string `json:"affiliate_url,omitempty"`
}

// Product is a shoppable catalog item.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Brand         string   `json:"brand"`
	Price         int      `json:"price"`
	OriginalPrice *int     `json:"original_price,omitempty"`
	Currency      string   `json:"currency"`
	ImageURL      string   `json:"image_url,omitempty"`
	Retailer      string   `json:"retailer"`
	AffiliateURL  string   `json:"affiliate_url"`
	Rating        *float64 `json:"rating,omitempty"`
	ReviewCount   *int     `json:"review_count,omitempty"`
	Colors        []string `json:"colors"`
	Sizes         []string `json:"sizes"`
	InStock       bool     `json:"in_stock"`
	IsFavorite    bool     `json:"is_favorite"`
}

// Trend is a fashion trend entry surfaced on the home screen.
type Trend struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
	Season      string `json:"season"`
}
