/**
 * @description
 * Scheduled job implementations. The entitlement store only exposes the
 * quota-reset primitive; this is the rollover that calls it, once per
 * day across live sessions and every persisted subscription snapshot.
 */
package app

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/styleadvisor/session-service/internal/domain"
	"github.com/styleadvisor/session-service/internal/store"
)

// JobsRepository defines the database operations the jobs need.
type JobsRepository interface {
	ListUserIDsByStore(ctx context.Context, storeName string) ([]string, error)
	GetSnapshot(ctx context.Context, userID, storeName string) (*store.Snapshot, error)
	UpsertSnapshot(ctx context.Context, snap store.Snapshot) error
}

// Jobs contains the logic for all scheduled tasks.
type Jobs struct {
	hub      *Hub
	repo     JobsRepository
	producer EventPublisher
	logger   *slog.Logger
}

// NewJobs creates a new jobs runner. producer may be nil.
func NewJobs(hub *Hub, repo JobsRepository, producer EventPublisher, logger *slog.Logger) *Jobs {
	return &Jobs{hub: hub, repo: repo, producer: producer, logger: logger}
}

// ResetDailyQuotas restores the free analysis quota for every
// non-premium user. Live sessions are reset in memory (their own
// write-through mirrors the change); cold snapshots are rewritten
// directly so users who next appear tomorrow rehydrate a fresh quota.
func (j *Jobs) ResetDailyQuotas() {
	j.logger.Info("starting daily quota reset job")
	ctx := context.Background()

	reset := 0
	live := map[string]bool{}
	j.hub.Each(func(sess *Session) {
		live[sess.UserID] = true
		if sess.Entitlement.ResetDailyAnalysis() {
			reset++
		}
	})

	userIDs, err := j.repo.ListUserIDsByStore(ctx, SnapshotStoreSubscription)
	if err != nil {
		j.logger.Error("failed to list subscription snapshots", "error", err)
	} else {
		for _, userID := range userIDs {
			if live[userID] {
				continue
			}
			changed, err := j.resetSnapshot(ctx, userID)
			if err != nil {
				j.logger.Error("failed to reset quota snapshot", "user_id", userID, "error", err)
				continue
			}
			if changed {
				reset++
			}
		}
	}

	if j.producer != nil {
		event := domain.QuotaResetEvent{UsersReset: reset, OccurredAt: time.Now().UTC()}
		if err := j.producer.Publish(ctx, domain.EventsExchange, domain.RoutingKeySubQuotaReset, event); err != nil {
			j.logger.Error("failed to publish quota reset event", "error", err)
		}
	}

	j.logger.Info("daily quota reset job finished", "users_reset", reset)
}

func (j *Jobs) resetSnapshot(ctx context.Context, userID string) (bool, error) {
	snap, err := j.repo.GetSnapshot(ctx, userID, SnapshotStoreSubscription)
	if err != nil {
		return false, err
	}
	if snap.Version != store.SnapshotVersion {
		// Leave unknown versions alone; the loader handles them.
		return false, nil
	}

	var payload entitlementSnapshot
	if err := json.Unmarshal(snap.Payload, &payload); err != nil {
		return false, err
	}
	if payload.Status.IsPremium || payload.Status.AnalysisRemaining == payload.Status.AnalysisLimit {
		return false, nil
	}
	payload.Status.AnalysisRemaining = payload.Status.AnalysisLimit

	raw, err := json.Marshal(payload)
	if err != nil {
		return false, err
	}
	err = j.repo.UpsertSnapshot(ctx, store.Snapshot{
		UserID:  userID,
		Store:   SnapshotStoreSubscription,
		Version: store.SnapshotVersion,
		Payload: raw,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
