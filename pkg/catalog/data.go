package catalog

import "github.com/styleadvisor/session-service/internal/domain"

// Canned catalog data. Twelve products so the product-11 /
// product-beyond-10 gates have something to bite on, five outfit
// suggestions so suggestions three through five sit behind the paywall.

var mockProducts = []domain.Product{
	{ID: "prod-001", Name: "Classic White Tee", Description: "Heavyweight cotton crew neck", Category: "tops", Brand: "Everlane", Price: 3000, Currency: "USD", Retailer: "Everlane", AffiliateURL: "https://shop.example.com/prod-001", Colors: []string{"white"}, Sizes: []string{"XS", "S", "M", "L", "XL"}, InStock: true},
	{ID: "prod-002", Name: "High-Rise Straight Jeans", Description: "Rigid denim, vintage wash", Category: "bottoms", Brand: "Levi's", Price: 9800, Currency: "USD", Retailer: "Levi's", AffiliateURL: "https://shop.example.com/prod-002", Colors: []string{"indigo"}, Sizes: []string{"24", "26", "28", "30", "32"}, InStock: true},
	{ID: "prod-003", Name: "Wool Overcoat", Description: "Double-breasted, camel", Category: "outerwear", Brand: "COS", Price: 29000, Currency: "USD", Retailer: "COS", AffiliateURL: "https://shop.example.com/prod-003", Colors: []string{"camel", "black"}, Sizes: []string{"S", "M", "L"}, InStock: true},
	{ID: "prod-004", Name: "Leather Chelsea Boots", Description: "Polished calfskin, stacked heel", Category: "shoes", Brand: "Dr. Martens", Price: 16000, Currency: "USD", Retailer: "Zappos", AffiliateURL: "https://shop.example.com/prod-004", Colors: []string{"black", "brown"}, Sizes: []string{"6", "7", "8", "9", "10"}, InStock: true},
	{ID: "prod-005", Name: "Silk Slip Dress", Description: "Bias cut, midi length", Category: "dresses", Brand: "Reformation", Price: 24800, Currency: "USD", Retailer: "Reformation", AffiliateURL: "https://shop.example.com/prod-005", Colors: []string{"champagne", "black"}, Sizes: []string{"XS", "S", "M", "L"}, InStock: true},
	{ID: "prod-006", Name: "Cashmere Crewneck", Description: "Two-ply Mongolian cashmere", Category: "tops", Brand: "Uniqlo", Price: 9900, Currency: "USD", Retailer: "Uniqlo", AffiliateURL: "https://shop.example.com/prod-006", Colors: []string{"grey", "navy", "oat"}, Sizes: []string{"S", "M", "L", "XL"}, InStock: true},
	{ID: "prod-007", Name: "Pleated Trousers", Description: "Relaxed taper, cropped", Category: "bottoms", Brand: "Arket", Price: 11000, Currency: "USD", Retailer: "Arket", AffiliateURL: "https://shop.example.com/prod-007", Colors: []string{"olive", "black"}, Sizes: []string{"28", "30", "32", "34"}, InStock: true},
	{ID: "prod-008", Name: "Canvas Tote", Description: "Structured everyday carry", Category: "bags", Brand: "Baggu", Price: 4200, Currency: "USD", Retailer: "Baggu", AffiliateURL: "https://shop.example.com/prod-008", Colors: []string{"natural"}, Sizes: []string{"OS"}, InStock: true},
	{ID: "prod-009", Name: "Gold Hoop Earrings", Description: "14k gold vermeil, 20mm", Category: "jewelry", Brand: "Mejuri", Price: 7800, Currency: "USD", Retailer: "Mejuri", AffiliateURL: "https://shop.example.com/prod-009", Colors: []string{"gold"}, Sizes: []string{"OS"}, InStock: true},
	{ID: "prod-010", Name: "Linen Shirt", Description: "Relaxed fit, garment washed", Category: "tops", Brand: "Muji", Price: 5500, Currency: "USD", Retailer: "Muji", AffiliateURL: "https://shop.example.com/prod-010", Colors: []string{"white", "sage"}, Sizes: []string{"S", "M", "L"}, InStock: true},
	{ID: "prod-011", Name: "Suede Loafers", Description: "Penny loafer, crepe sole", Category: "shoes", Brand: "G.H. Bass", Price: 15500, Currency: "USD", Retailer: "Nordstrom", AffiliateURL: "https://shop.example.com/prod-011", Colors: []string{"tan"}, Sizes: []string{"7", "8", "9", "10"}, InStock: true},
	{ID: "prod-012", Name: "Trench Coat", Description: "Water-resistant cotton gabardine", Category: "outerwear", Brand: "Burberry", Price: 52000, Currency: "USD", Retailer: "Burberry", AffiliateURL: "https://shop.example.com/prod-012", Colors: []string{"honey"}, Sizes: []string{"S", "M", "L"}, InStock: false},
}

var mockOutfits = []domain.Outfit{
	{
		ID: "outfit-001", Name: "Effortless Weekend", Description: "Relaxed staples with a polished finish",
		Occasion: "casual", Style: "minimal", Season: "spring", TotalPrice: 28800,
		Items: []domain.OutfitItem{
			{ID: "oi-001", Name: "Classic White Tee", Category: "tops", Color: "white", Price: 3000, Brand: "Everlane", Retailer: "Everlane"},
			{ID: "oi-002", Name: "High-Rise Straight Jeans", Category: "bottoms", Color: "indigo", Price: 9800, Brand: "Levi's", Retailer: "Levi's"},
			{ID: "oi-003", Name: "Suede Loafers", Category: "shoes", Color: "tan", Price: 16000, Brand: "G.H. Bass", Retailer: "Nordstrom"},
		},
	},
	{
		ID: "outfit-002", Name: "City Evening", Description: "Sleek layers for dinner and drinks",
		Occasion: "evening", Style: "classic", Season: "autumn", TotalPrice: 69800,
		Items: []domain.OutfitItem{
			{ID: "oi-004", Name: "Silk Slip Dress", Category: "dresses", Color: "black", Price: 24800, Brand: "Reformation", Retailer: "Reformation"},
			{ID: "oi-005", Name: "Wool Overcoat", Category: "outerwear", Color: "camel", Price: 29000, Brand: "COS", Retailer: "COS"},
			{ID: "oi-006", Name: "Leather Chelsea Boots", Category: "shoes", Color: "black", Price: 16000, Brand: "Dr. Martens", Retailer: "Zappos"},
		},
	},
	{
		ID: "outfit-003", Name: "Smart Office", Description: "Tailored separates that still breathe",
		Occasion: "work", Style: "business-casual", Season: "all", TotalPrice: 36400,
		Items: []domain.OutfitItem{
			{ID: "oi-007", Name: "Cashmere Crewneck", Category: "tops", Color: "navy", Price: 9900, Brand: "Uniqlo", Retailer: "Uniqlo"},
			{ID: "oi-008", Name: "Pleated Trousers", Category: "bottoms", Color: "black", Price: 11000, Brand: "Arket", Retailer: "Arket"},
			{ID: "oi-009", Name: "Suede Loafers", Category: "shoes", Color: "tan", Price: 15500, Brand: "G.H. Bass", Retailer: "Nordstrom"},
		},
	},
	{
		ID: "outfit-004", Name: "Rainy Commute", Description: "Weatherproof without losing the silhouette",
		Occasion: "commute", Style: "classic", Season: "winter", TotalPrice: 67300,
		Items: []domain.OutfitItem{
			{ID: "oi-010", Name: "Trench Coat", Category: "outerwear", Color: "honey", Price: 52000, Brand: "Burberry", Retailer: "Burberry"},
			{ID: "oi-011", Name: "Linen Shirt", Category: "tops", Color: "white", Price: 5500, Brand: "Muji", Retailer: "Muji"},
			{ID: "oi-012", Name: "High-Rise Straight Jeans", Category: "bottoms", Color: "indigo", Price: 9800, Brand: "Levi's", Retailer: "Levi's"},
		},
	},
	{
		ID: "outfit-005", Name: "Gallery Opening", Description: "Quiet statement pieces, one accent",
		Occasion: "evening", Style: "minimal", Season: "spring", TotalPrice: 44100,
		Items: []domain.OutfitItem{
			{ID: "oi-013", Name: "Pleated Trousers", Category: "bottoms", Color: "olive", Price: 11000, Brand: "Arket", Retailer: "Arket"},
			{ID: "oi-014", Name: "Cashmere Crewneck", Category: "tops", Color: "oat", Price: 9900, Brand: "Uniqlo", Retailer: "Uniqlo"},
			{ID: "oi-015", Name: "Gold Hoop Earrings", Category: "jewelry", Color: "gold", Price: 7800, Brand: "Mejuri", Retailer: "Mejuri"},
			{ID: "oi-016", Name: "Leather Chelsea Boots", Category: "shoes", Color: "brown", Price: 15400, Brand: "Dr. Martens", Retailer: "Zappos"},
		},
	},
}

var mockTrends = []domain.Trend{
	{ID: "trend-001", Title: "Quiet Luxury", Description: "Understated fabrics and tonal dressing keep leading the season", Season: "autumn"},
	{ID: "trend-002", Title: "Sheer Layering", Description: "Lightweight transparent layers over structured basics", Season: "spring"},
	{ID: "trend-003", Title: "Cherry Red", Description: "The accent color of the moment, from bags to boots", Season: "winter"},
	{ID: "trend-004", Title: "Boxy Tailoring", Description: "Relaxed shoulders and cropped jackets replace the slim suit", Season: "all"},
}
