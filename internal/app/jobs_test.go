package app

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/styleadvisor/session-service/internal/domain"
	"github.com/styleadvisor/session-service/internal/store"
)

type stubJobsRepo struct {
	snapshots map[string]*store.Snapshot // keyed by user id
	upserts   []store.Snapshot
}

func (r *stubJobsRepo) ListUserIDsByStore(ctx context.Context, storeName string) ([]string, error) {
	ids := make([]string, 0, len(r.snapshots))
	for id := range r.snapshots {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *stubJobsRepo) GetSnapshot(ctx context.Context, userID, storeName string) (*store.Snapshot, error) {
	snap, ok := r.snapshots[userID]
	if !ok {
		return nil, store.ErrSnapshotNotFound
	}
	return snap, nil
}

func (r *stubJobsRepo) UpsertSnapshot(ctx context.Context, snap store.Snapshot) error {
	r.upserts = append(r.upserts, snap)
	return nil
}

func subscriptionSnapshot(t *testing.T, status domain.Entitlement) *store.Snapshot {
	t.Helper()
	payload, err := json.Marshal(entitlementSnapshot{Status: status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return &store.Snapshot{Store: SnapshotStoreSubscription, Version: store.SnapshotVersion, Payload: payload}
}

func TestResetDailyQuotasResetsLiveSessions(t *testing.T) {
	hub := NewHub(&stubSnapshotReader{}, nil, testLogger(), 2)
	sess := hub.Session(context.Background(), "user-1")
	sess.Entitlement.DecrementAnalysis()
	sess.Entitlement.DecrementAnalysis()

	jobs := NewJobs(hub, &stubJobsRepo{}, nil, testLogger())
	jobs.ResetDailyQuotas()

	if got := sess.Entitlement.Status().AnalysisRemaining; got != 2 {
		t.Fatalf("expected live quota restored to 2, got %d", got)
	}
}

func TestResetDailyQuotasRewritesColdSnapshots(t *testing.T) {
	repo := &stubJobsRepo{snapshots: map[string]*store.Snapshot{
		"cold-user": subscriptionSnapshot(t, domain.Entitlement{
			Plan:              domain.PlanFree,
			AnalysisRemaining: 0,
			AnalysisLimit:     1,
		}),
	}}
	hub := NewHub(&stubSnapshotReader{}, nil, testLogger(), 1)
	publisher := &recordingPublisher{}

	jobs := NewJobs(hub, repo, publisher, testLogger())
	jobs.ResetDailyQuotas()

	if len(repo.upserts) != 1 {
		t.Fatalf("expected 1 snapshot rewrite, got %d", len(repo.upserts))
	}
	var rewritten entitlementSnapshot
	if err := json.Unmarshal(repo.upserts[0].Payload, &rewritten); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rewritten.Status.AnalysisRemaining != 1 {
		t.Fatalf("expected rewritten quota 1, got %d", rewritten.Status.AnalysisRemaining)
	}

	keys := publisher.keys()
	if len(keys) != 1 || keys[0] != domain.RoutingKeySubQuotaReset {
		t.Fatalf("expected quota reset event, got %v", keys)
	}
}

func TestResetDailyQuotasSkipsPremiumAndFullSnapshots(t *testing.T) {
	repo := &stubJobsRepo{snapshots: map[string]*store.Snapshot{
		"premium-user": subscriptionSnapshot(t, domain.Entitlement{
			IsPremium:         true,
			Plan:              domain.PlanMonthly,
			AnalysisRemaining: domain.UnlimitedAnalyses,
			AnalysisLimit:     domain.UnlimitedAnalyses,
		}),
		"fresh-user": subscriptionSnapshot(t, domain.Entitlement{
			Plan:              domain.PlanFree,
			AnalysisRemaining: 1,
			AnalysisLimit:     1,
		}),
	}}
	hub := NewHub(&stubSnapshotReader{}, nil, testLogger(), 1)

	jobs := NewJobs(hub, repo, nil, testLogger())
	jobs.ResetDailyQuotas()

	if len(repo.upserts) != 0 {
		t.Fatalf("expected no snapshot rewrites, got %d", len(repo.upserts))
	}
}

type quotaEventRecorder struct {
	events []domain.QuotaResetEvent
}

func (p *quotaEventRecorder) Publish(ctx context.Context, exchange, routingKey string, body interface{}) error {
	if event, ok := body.(domain.QuotaResetEvent); ok {
		p.events = append(p.events, event)
	}
	return nil
}

func TestResetDailyQuotasCountsOnlyChangedUsers(t *testing.T) {
	repo := &stubJobsRepo{snapshots: map[string]*store.Snapshot{
		"premium-cold": subscriptionSnapshot(t, domain.Entitlement{
			IsPremium:         true,
			Plan:              domain.PlanMonthly,
			AnalysisRemaining: domain.UnlimitedAnalyses,
			AnalysisLimit:     domain.UnlimitedAnalyses,
		}),
		"fresh-cold": subscriptionSnapshot(t, domain.Entitlement{
			Plan:              domain.PlanFree,
			AnalysisRemaining: 1,
			AnalysisLimit:     1,
		}),
		"spent-cold": subscriptionSnapshot(t, domain.Entitlement{
			Plan:              domain.PlanFree,
			AnalysisRemaining: 0,
			AnalysisLimit:     1,
		}),
	}}
	hub := NewHub(&stubSnapshotReader{}, nil, testLogger(), 1)

	spentLive := hub.Session(context.Background(), "spent-live")
	spentLive.Entitlement.DecrementAnalysis()
	premiumLive := hub.Session(context.Background(), "premium-live")
	premiumLive.Entitlement.SetPremium(true)
	hub.Session(context.Background(), "fresh-live")

	publisher := &quotaEventRecorder{}
	jobs := NewJobs(hub, repo, publisher, testLogger())
	jobs.ResetDailyQuotas()

	// Only spent-live and spent-cold actually change; premium and
	// already-full users must not inflate the count.
	if len(publisher.events) != 1 {
		t.Fatalf("expected 1 quota reset event, got %d", len(publisher.events))
	}
	if got := publisher.events[0].UsersReset; got != 2 {
		t.Fatalf("expected 2 users reset, got %d", got)
	}
}

func TestResetDailyQuotasLeavesLiveUsersSnapshotAlone(t *testing.T) {
	repo := &stubJobsRepo{snapshots: map[string]*store.Snapshot{
		"user-1": subscriptionSnapshot(t, domain.Entitlement{
			Plan:              domain.PlanFree,
			AnalysisRemaining: 0,
			AnalysisLimit:     1,
		}),
	}}
	hub := NewHub(&stubSnapshotReader{}, nil, testLogger(), 1)
	hub.Session(context.Background(), "user-1")

	jobs := NewJobs(hub, repo, nil, testLogger())
	jobs.ResetDailyQuotas()

	// The live session's own write-through mirrors the change; the job
	// must not also rewrite the snapshot underneath it.
	if len(repo.upserts) != 0 {
		t.Fatalf("expected no direct snapshot rewrite for live users, got %d", len(repo.upserts))
	}
}
