/**
 * @description
 * This file implements the data access layer for user credentials backing
 * register/login.
 */
package store

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/styleadvisor/session-service/internal/domain"
)

var (
	// ErrUserNotFound is returned when no credential matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned on a unique violation during registration.
	ErrEmailTaken = errors.New("email already registered")
)

// CredentialRepository handles database operations for user credentials.
type CredentialRepository struct {
	db *pgxpool.Pool
}

// NewCredentialRepository creates a new credential repository.
func NewCredentialRepository(db *pgxpool.Pool) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// CreateUser inserts a new credential row and returns its id.
func (r *CredentialRepository) CreateUser(ctx context.Context, cred *domain.Credential) (string, error) {
	query := `
        INSERT INTO users (id, email, display_name, password_hash)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	var userID string
	err := r.db.QueryRow(ctx, query, cred.ID, cred.Email, cred.DisplayName, cred.PasswordHash).Scan(&userID)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return "", ErrEmailTaken
		}
		log.Printf("Error inserting user into database: %v", err)
		return "", err
	}
	return userID, nil
}

// GetUserByEmail retrieves a credential by email.
func (r *CredentialRepository) GetUserByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	var cred domain.Credential
	query := `
        SELECT id, email, display_name, password_hash, created_at
        FROM users
        WHERE email = $1
    `
	err := r.db.QueryRow(ctx, query, email).Scan(
		&cred.ID,
		&cred.Email,
		&cred.DisplayName,
		&cred.PasswordHash,
		&cred.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &cred, nil
}

// DeleteUser removes a credential row (account deletion).
func (r *CredentialRepository) DeleteUser(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	return err
}
