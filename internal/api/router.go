/**
 * @description
 * This file sets up the HTTP router for the session service. It defines
 * the public endpoints (health, auth, catalog) and groups the per-user
 * state endpoints behind the bearer-token middleware. Analysis submission
 * additionally passes through the Redis rate limiter.
 *
 * @dependencies
 * - github.com/go-chi/chi/v5: A lightweight and idiomatic router for Go.
 * - github.com/go-chi/cors: CORS middleware for browser clients.
 */

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Routes creates and returns the router for the session service.
func Routes(h *Handler, tokens *TokenManager, limiter *RateLimiter) http.Handler {
	r := chi.NewRouter()

	// Add standard middleware for logging, panic recovery, and timeouts.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any major browsers
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Session service is healthy"))
	})

	// Public endpoints
	r.Post("/auth/register", h.handleRegister)
	r.Post("/auth/login", h.handleLogin)
	r.Get("/catalog/products", h.handleGetProducts)
	r.Get("/catalog/outfits", h.handleGetOutfits)
	r.Get("/catalog/trends", h.handleGetTrends)

	// Group routes that require authentication.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(tokens))

		r.Get("/session", h.handleGetSession)
		r.Post("/auth/logout", h.handleLogout)
		r.Put("/auth/onboarded", h.handleSetOnboarded)
		r.Put("/auth/terms", h.handleAcceptTerms)
		r.Delete("/auth/account", h.handleDeleteAccount)

		r.Get("/profile", h.handleGetProfile)
		r.Post("/profile", h.handleSetProfile)
		r.Patch("/profile", h.handleUpdateProfile)
		r.Put("/profile/style-preferences", h.handleSetStylePreferences)
		r.Put("/profile/budget-range", h.handleSetBudgetRange)
		r.Put("/profile/retailers", h.handleSetPreferredRetailers)

		r.Get("/subscription", h.handleGetSubscription)
		r.Get("/subscription/gate/{feature}", h.handleGate)
		r.Post("/subscription/upgrade", h.handleUpgrade)
		r.Post("/subscription/restore", h.handleRestore)
		r.Post("/subscription/cancel", h.handleCancel)

		r.Get("/analysis", h.handleGetAnalysis)
		r.Patch("/analysis/draft", h.handleUpdateDraft)
		r.Delete("/analysis/current", h.handleClearAnalysis)
		r.Get("/analysis/history", h.handleGetHistory)
		r.With(limiter.Middleware("analysis_submit")).Post("/analysis/submit", h.handleSubmitAnalysis)

		r.Get("/favorites", h.handleGetFavorites)
		r.Post("/favorites/outfits", h.handleAddFavoriteOutfit)
		r.Delete("/favorites/outfits/{id}", h.handleRemoveFavoriteOutfit)
		r.Post("/favorites/products", h.handleAddFavoriteProduct)
		r.Delete("/favorites/products/{id}", h.handleRemoveFavoriteProduct)

		r.Get("/wardrobe", h.handleGetWardrobe)
		r.Post("/wardrobe", h.handleAddWardrobeItem)
		r.Patch("/wardrobe/{id}", h.handleUpdateWardrobeItem)
		r.Delete("/wardrobe/{id}", h.handleRemoveWardrobeItem)
		r.Post("/wardrobe/{id}/worn", h.handleMarkWorn)
		r.Post("/wardrobe/{id}/favorite", h.handleToggleWardrobeFavorite)

		r.Get("/notifications", h.handleGetNotifications)
		r.Post("/notifications/toasts", h.handleShowToast)
		r.Delete("/notifications/toasts", h.handleClearToasts)
		r.Delete("/notifications/toasts/{id}", h.handleHideToast)
		r.Post("/notifications/modal", h.handleShowModal)
		r.Delete("/notifications/modal", h.handleHideModal)
	})

	return r
}
