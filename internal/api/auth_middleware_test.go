package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func runMiddleware(t *testing.T, tokens *TokenManager, authHeader string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	AuthMiddleware(tokens)(next).ServeHTTP(rec, req)
	return rec, gotUserID
}

func TestAuthMiddlewareAcceptsValidBearerToken(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)
	token, err := tokens.Mint("user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec, userID := runMiddleware(t, tokens, "Bearer "+token)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if userID != "user-1" {
		t.Fatalf("expected user-1 in context, got %q", userID)
	}
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)

	rec, _ := runMiddleware(t, tokens, "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)

	rec, _ := runMiddleware(t, tokens, "Token abc")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddlewareRejectsForgedToken(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)
	forged, _ := other.Mint("user-1")

	rec, _ := runMiddleware(t, tokens, "Bearer "+forged)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
