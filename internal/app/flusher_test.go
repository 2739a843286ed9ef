package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/styleadvisor/session-service/internal/store"
)

type recordingWriter struct {
	mu    sync.Mutex
	snaps []store.Snapshot
	err   error
}

func (w *recordingWriter) UpsertSnapshot(ctx context.Context, snap store.Snapshot) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.snaps = append(w.snaps, snap)
	return w.err
}

func (w *recordingWriter) all() []store.Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]store.Snapshot, len(w.snaps))
	copy(out, w.snaps)
	return out
}

func TestFlusherWritesEnqueuedSnapshots(t *testing.T) {
	writer := &recordingWriter{}
	f := NewFlusher(writer, testLogger(), 8)
	go f.Run(context.Background())

	f.Enqueue("user-1", SnapshotStoreAuth, []byte(`{"token":"abc"}`))
	f.Enqueue("user-1", SnapshotStoreWardrobe, []byte(`{"items":[]}`))
	f.Close()

	snaps := writer.all()
	if len(snaps) != 2 {
		t.Fatalf("expected 2 writes, got %d", len(snaps))
	}
	if snaps[0].Store != SnapshotStoreAuth || snaps[0].UserID != "user-1" {
		t.Fatalf("unexpected first write %+v", snaps[0])
	}
	if snaps[0].Version != store.SnapshotVersion {
		t.Fatalf("expected version %d, got %d", store.SnapshotVersion, snaps[0].Version)
	}
}

func TestFlusherDropsWhenQueueFull(t *testing.T) {
	writer := &recordingWriter{}
	f := NewFlusher(writer, testLogger(), 1)
	// Run is intentionally not started so the queue cannot drain.

	f.Enqueue("user-1", SnapshotStoreAuth, []byte(`{}`))
	f.Enqueue("user-1", SnapshotStoreAuth, []byte(`{}`)) // dropped, must not block

	done := make(chan struct{})
	go func() {
		f.Enqueue("user-1", SnapshotStoreAuth, []byte(`{}`))
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected enqueue on a full queue to return immediately")
	}
}

func TestFlusherCloseWaitsForDrain(t *testing.T) {
	writer := &recordingWriter{}
	f := NewFlusher(writer, testLogger(), 8)
	go f.Run(context.Background())

	for i := 0; i < 5; i++ {
		f.Enqueue("user-1", SnapshotStoreFavorites, []byte(`{}`))
	}
	f.Close()

	if got := len(writer.all()); got != 5 {
		t.Fatalf("expected all 5 queued writes drained before close returned, got %d", got)
	}
}
