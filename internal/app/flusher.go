/**
 * @description
 * This file implements the asynchronous snapshot writer. State containers
 * hand their committed snapshots to the flusher through a buffered queue;
 * a single writer goroutine upserts them into durable storage. Storage is
 * a one-way mirror of in-memory state, so slow or failing writes never
 * block or fail the interactive mutation path: queue-full and write
 * errors are logged and dropped.
 */
package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/styleadvisor/session-service/internal/store"
)

const defaultFlushQueueSize = 256

// SnapshotWriter is the persistence port the flusher writes through.
type SnapshotWriter interface {
	UpsertSnapshot(ctx context.Context, snap store.Snapshot) error
}

type flushRequest struct {
	userID  string
	store   string
	payload []byte
}

// Flusher mirrors committed store snapshots to durable storage.
type Flusher struct {
	writer SnapshotWriter
	logger *slog.Logger
	queue  chan flushRequest

	closeOnce sync.Once
	done      chan struct{}
}

// NewFlusher creates a flusher with the given queue capacity (<=0 uses
// the default).
func NewFlusher(writer SnapshotWriter, logger *slog.Logger, queueSize int) *Flusher {
	if queueSize <= 0 {
		queueSize = defaultFlushQueueSize
	}
	return &Flusher{
		writer: writer,
		logger: logger,
		queue:  make(chan flushRequest, queueSize),
		done:   make(chan struct{}),
	}
}

// Run consumes the queue until it is closed. Call on its own goroutine.
func (f *Flusher) Run(ctx context.Context) {
	defer close(f.done)

	for req := range f.queue {
		writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := f.writer.UpsertSnapshot(writeCtx, store.Snapshot{
			UserID:  req.userID,
			Store:   req.store,
			Version: store.SnapshotVersion,
			Payload: req.payload,
		})
		cancel()
		if err != nil {
			// Durability is best effort; in-memory state stays authoritative.
			f.logger.Error("snapshot write failed", "user_id", req.userID, "store", req.store, "error", err)
		}
	}
}

// Enqueue submits a snapshot write. Never blocks: when the queue is full
// the write is dropped and logged, and a later mutation will re-mirror
// the store.
func (f *Flusher) Enqueue(userID, storeName string, payload []byte) {
	select {
	case f.queue <- flushRequest{userID: userID, store: storeName, payload: payload}:
	default:
		f.logger.Warn("snapshot queue full, dropping write", "user_id", userID, "store", storeName)
	}
}

// Close stops accepting writes and waits for the queue to drain.
func (f *Flusher) Close() {
	f.closeOnce.Do(func() {
		close(f.queue)
	})
	<-f.done
}
