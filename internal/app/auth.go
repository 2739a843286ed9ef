/**
 * @description
 * This file contains the authentication workflow: register, login,
 * logout, and account deletion. It composes the credential repository,
 * the token minter, and the identity container; the containers themselves
 * stay free of credential handling.
 */
package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/styleadvisor/session-service/internal/domain"
)

// ErrInvalidCredentials is returned on a failed login. The reason is
// deliberately not distinguished.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialStore defines the credential persistence the auth flow needs.
type CredentialStore interface {
	CreateUser(ctx context.Context, cred *domain.Credential) (string, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.Credential, error)
	DeleteUser(ctx context.Context, userID string) error
}

// SnapshotDeleter removes a user's persisted snapshots on account deletion.
type SnapshotDeleter interface {
	DeleteSnapshots(ctx context.Context, userID string) error
}

// TokenMinter issues session tokens for a user id.
type TokenMinter interface {
	Mint(userID string) (string, error)
}

// AuthService orchestrates authentication against the session hub.
type AuthService struct {
	creds     CredentialStore
	snapshots SnapshotDeleter
	tokens    TokenMinter
	hub       *Hub
	producer  EventPublisher
	logger    *slog.Logger
}

// NewAuthService creates the auth workflow. producer may be nil.
func NewAuthService(creds CredentialStore, snapshots SnapshotDeleter, tokens TokenMinter, hub *Hub, producer EventPublisher, logger *slog.Logger) *AuthService {
	return &AuthService{
		creds:     creds,
		snapshots: snapshots,
		tokens:    tokens,
		hub:       hub,
		producer:  producer,
		logger:    logger,
	}
}

// Register creates a credential and logs the new user straight in.
func (s *AuthService) Register(ctx context.Context, email, displayName, password string) (domain.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Session{}, err
	}

	cred := &domain.Credential{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	userID, err := s.creds.CreateUser(ctx, cred)
	if err != nil {
		return domain.Session{}, err
	}

	sess, err := s.establishSession(ctx, userID, email, displayName, cred.CreatedAt)
	if err != nil {
		return domain.Session{}, err
	}
	s.publish(ctx, domain.RoutingKeyUserRegistered, domain.UserEvent{
		UserID:     userID,
		Email:      email,
		OccurredAt: time.Now().UTC(),
	})
	return sess, nil
}

// Login verifies the credential and installs the principal into the
// user's identity container.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	cred, err := s.creds.GetUserByEmail(ctx, email)
	if err != nil {
		return domain.Session{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return domain.Session{}, ErrInvalidCredentials
	}

	sess, err := s.establishSession(ctx, cred.ID, cred.Email, cred.DisplayName, cred.CreatedAt)
	if err != nil {
		return domain.Session{}, err
	}
	s.publish(ctx, domain.RoutingKeyUserLoggedIn, domain.UserEvent{
		UserID:     cred.ID,
		Email:      cred.Email,
		OccurredAt: time.Now().UTC(),
	})
	return sess, nil
}

// MarkOnboarded flags onboarding complete and announces the transition.
// The flag is one-way, so repeat calls publish nothing.
func (s *AuthService) MarkOnboarded(ctx context.Context, sess *Session) {
	already := sess.Identity.Session().IsOnboarded
	sess.Identity.SetOnboarded(true)
	if already {
		return
	}
	s.publish(ctx, domain.RoutingKeyUserOnboarded, domain.UserEvent{
		UserID:     sess.UserID,
		OccurredAt: time.Now().UTC(),
	})
}

// Logout clears the identity container and evicts the live bundle.
func (s *AuthService) Logout(ctx context.Context, userID string) {
	sess := s.hub.Session(ctx, userID)
	sess.Identity.Logout()
	s.hub.Evict(userID)
}

// DeleteAccount removes the credential and every persisted snapshot,
// then evicts the live bundle. This is the one destructive flow behind
// an explicit confirmation step in the client.
func (s *AuthService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.creds.DeleteUser(ctx, userID); err != nil {
		return err
	}
	if err := s.snapshots.DeleteSnapshots(ctx, userID); err != nil {
		// The credential is gone; orphaned snapshots are only logged.
		s.logger.Error("failed to delete snapshots", "user_id", userID, "error", err)
	}
	s.hub.Evict(userID)
	return nil
}

func (s *AuthService) establishSession(ctx context.Context, userID, email, displayName string, createdAt time.Time) (domain.Session, error) {
	token, err := s.tokens.Mint(userID)
	if err != nil {
		return domain.Session{}, err
	}

	sess := s.hub.Session(ctx, userID)
	sess.Identity.Login(domain.Principal{
		ID:          userID,
		Email:       email,
		DisplayName: displayName,
		CreatedAt:   createdAt,
	}, token)
	return sess.Identity.Session(), nil
}

func (s *AuthService) publish(ctx context.Context, routingKey string, body interface{}) {
	if s.producer == nil {
		return
	}
	if err := s.producer.Publish(ctx, domain.EventsExchange, routingKey, body); err != nil {
		s.logger.Error("failed to publish auth event", "routing_key", routingKey, "error", err)
	}
}
