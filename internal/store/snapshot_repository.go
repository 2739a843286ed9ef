/**
 * @description
 * This file implements the data access layer for per-store state
 * snapshots. Each user persists one named snapshot per store (key is the
 * store name) containing only the durable subset of its state, as a
 * versioned jsonb payload.
 */
package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SnapshotVersion is written with every snapshot. The loader falls back
// to defaults when it encounters a version it does not understand.
const SnapshotVersion = 1

// ErrSnapshotNotFound is returned when no snapshot exists for the key.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Snapshot is one persisted store snapshot.
type Snapshot struct {
	UserID    string
	Store     string
	Version   int
	Payload   []byte
	UpdatedAt time.Time
}

// SnapshotRepository handles database operations for snapshots.
type SnapshotRepository struct {
	db *pgxpool.Pool
}

// NewSnapshotRepository creates a new snapshot repository.
func NewSnapshotRepository(db *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// GetSnapshot retrieves the snapshot for a user and store name.
func (r *SnapshotRepository) GetSnapshot(ctx context.Context, userID, storeName string) (*Snapshot, error) {
	var snap Snapshot
	query := `
        SELECT user_id, store, version, payload, updated_at
        FROM store_snapshots
        WHERE user_id = $1 AND store = $2
    `
	err := r.db.QueryRow(ctx, query, userID, storeName).Scan(
		&snap.UserID,
		&snap.Store,
		&snap.Version,
		&snap.Payload,
		&snap.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrSnapshotNotFound
		}
		return nil, err
	}
	return &snap, nil
}

// UpsertSnapshot writes a snapshot, replacing any previous one for the
// same user and store.
func (r *SnapshotRepository) UpsertSnapshot(ctx context.Context, snap Snapshot) error {
	query := `
        INSERT INTO store_snapshots (user_id, store, version, payload, updated_at)
        VALUES ($1, $2, $3, $4, NOW())
        ON CONFLICT (user_id, store) DO UPDATE SET
            version = EXCLUDED.version,
            payload = EXCLUDED.payload,
            updated_at = NOW()
    `
	_, err := r.db.Exec(ctx, query, snap.UserID, snap.Store, snap.Version, snap.Payload)
	return err
}

// DeleteSnapshots removes every snapshot for a user (account deletion).
func (r *SnapshotRepository) DeleteSnapshots(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM store_snapshots WHERE user_id = $1`, userID)
	return err
}

// ListUserIDsByStore returns the user ids that have a snapshot for the
// given store name. Used by the quota reset job to sweep persisted
// subscriptions.
func (r *SnapshotRepository) ListUserIDsByStore(ctx context.Context, storeName string) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT user_id FROM store_snapshots WHERE store = $1`, storeName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
