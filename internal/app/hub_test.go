package app

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/styleadvisor/session-service/internal/domain"
	"github.com/styleadvisor/session-service/internal/store"
)

type stubSnapshotReader struct {
	snapshots map[string]*store.Snapshot // keyed by store name
	err       error
}

func (r *stubSnapshotReader) GetSnapshot(ctx context.Context, userID, storeName string) (*store.Snapshot, error) {
	if r.err != nil {
		return nil, r.err
	}
	snap, ok := r.snapshots[storeName]
	if !ok {
		return nil, store.ErrSnapshotNotFound
	}
	return snap, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSessionRehydratesFromSnapshots(t *testing.T) {
	authPayload, _ := json.Marshal(identitySnapshot{
		Principal:   &domain.Principal{ID: "user-1", Email: "a@b.com"},
		Token:       "token-abc",
		IsOnboarded: true,
	})
	subPayload, _ := json.Marshal(entitlementSnapshot{
		Status: domain.Entitlement{IsPremium: true, Plan: domain.PlanYearly, AnalysisRemaining: domain.UnlimitedAnalyses, AnalysisLimit: domain.UnlimitedAnalyses},
	})
	reader := &stubSnapshotReader{snapshots: map[string]*store.Snapshot{
		SnapshotStoreAuth:         {Version: store.SnapshotVersion, Payload: authPayload},
		SnapshotStoreSubscription: {Version: store.SnapshotVersion, Payload: subPayload},
	}}

	hub := NewHub(reader, nil, testLogger(), 1)
	sess := hub.Session(context.Background(), "user-1")

	identity := sess.Identity.Session()
	if !identity.IsAuthenticated || !identity.IsOnboarded {
		t.Fatalf("expected identity restored, got %+v", identity)
	}
	if identity.IsLoading {
		t.Fatal("expected loading flag cleared after rehydration")
	}

	status := sess.Entitlement.Status()
	if !status.IsPremium || status.Plan != domain.PlanYearly {
		t.Fatalf("expected entitlement restored, got %+v", status)
	}
	// Restored snapshot carried no feature list; defaults fill in.
	if len(status.Features) == 0 {
		t.Fatal("expected default feature list after restore")
	}
}

func TestSessionIsCreatedOnceAndReused(t *testing.T) {
	hub := NewHub(&stubSnapshotReader{}, nil, testLogger(), 1)

	first := hub.Session(context.Background(), "user-1")
	second := hub.Session(context.Background(), "user-1")

	if first != second {
		t.Fatal("expected the same bundle on repeat access")
	}
}

func TestUnknownSnapshotVersionFallsBackToDefaults(t *testing.T) {
	payload, _ := json.Marshal(entitlementSnapshot{
		Status: domain.Entitlement{IsPremium: true},
	})
	reader := &stubSnapshotReader{snapshots: map[string]*store.Snapshot{
		SnapshotStoreSubscription: {Version: store.SnapshotVersion + 7, Payload: payload},
	}}

	hub := NewHub(reader, nil, testLogger(), 2)
	sess := hub.Session(context.Background(), "user-1")

	status := sess.Entitlement.Status()
	if status.IsPremium {
		t.Fatal("expected unknown snapshot version to be ignored")
	}
	if status.AnalysisRemaining != 2 {
		t.Fatalf("expected free defaults, got remaining=%d", status.AnalysisRemaining)
	}
}

func TestReaderErrorKeepsDefaults(t *testing.T) {
	reader := &stubSnapshotReader{err: errors.New("database offline")}

	hub := NewHub(reader, nil, testLogger(), 1)
	sess := hub.Session(context.Background(), "user-1")

	if sess.Identity.Session().IsAuthenticated {
		t.Fatal("expected default identity when reads fail")
	}
	if sess.Identity.Session().IsLoading {
		t.Fatal("expected loading flag cleared even when reads fail")
	}
}

func TestEvictDropsLiveBundle(t *testing.T) {
	hub := NewHub(&stubSnapshotReader{}, nil, testLogger(), 1)
	hub.Session(context.Background(), "user-1")

	hub.Evict("user-1")

	if _, ok := hub.Peek("user-1"); ok {
		t.Fatal("expected bundle evicted")
	}
}

func TestEachVisitsEveryLiveSession(t *testing.T) {
	hub := NewHub(&stubSnapshotReader{}, nil, testLogger(), 1)
	hub.Session(context.Background(), "user-1")
	hub.Session(context.Background(), "user-2")

	seen := map[string]bool{}
	hub.Each(func(sess *Session) { seen[sess.UserID] = true })

	if !seen["user-1"] || !seen["user-2"] {
		t.Fatalf("expected both sessions visited, got %v", seen)
	}
}
