/**
 * @description
 * This file defines the identity-related domain models for the session-service:
 * the authenticated principal, the per-user session flags, and the stored
 * credential record used by register/login.
 */
package domain

import "time"

// Principal is the authenticated user as seen by the rest of the system.
// It is created wholesale at login and cleared at logout.
type Principal struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Session captures the per-user authentication and lifecycle flags.
// IsAuthenticated is true iff Token is non-empty. IsOnboarded only
// transitions false -> true during a session; logout resets it.
type Session struct {
	Principal        *Principal `json:"principal,omitempty"`
	Token            string     `json:"token,omitempty"`
	IsAuthenticated  bool       `json:"is_authenticated"`
	IsOnboarded      bool       `json:"is_onboarded"`
	HasAcceptedTerms bool       `json:"has_accepted_terms"`
	IsLoading        bool       `json:"is_loading"`
}

// Credential is a row in the users table. The password hash never leaves
// the store layer.
type Credential struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
}
