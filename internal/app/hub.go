/**
 * @description
 * This file implements the session hub: the per-user bundle of state
 * containers and its cold-start rehydration from persisted snapshots.
 * Containers never call each other; workflows compose them through the
 * bundle the hub hands out.
 */
package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/styleadvisor/session-service/internal/store"
)

// SnapshotReader is the persistence port used for rehydration.
type SnapshotReader interface {
	GetSnapshot(ctx context.Context, userID, storeName string) (*store.Snapshot, error)
}

// Session bundles the state containers for one user.
type Session struct {
	UserID        string
	Identity      *IdentityStore
	Profile       *ProfileStore
	Entitlement   *EntitlementStore
	Analysis      *AnalysisStore
	Favorites     *FavoritesStore
	Wardrobe      *WardrobeStore
	Notifications *NotificationStore
}

// Hub owns the live sessions. Each bundle is created on first access and
// rehydrated from its named snapshots before being handed out.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]*Session

	reader    SnapshotReader
	flusher   *Flusher
	logger    *slog.Logger
	freeLimit int
}

// NewHub creates a session hub. flusher may be nil (tests), in which case
// mutations are not mirrored.
func NewHub(reader SnapshotReader, flusher *Flusher, logger *slog.Logger, freeLimit int) *Hub {
	return &Hub{
		sessions:  make(map[string]*Session),
		reader:    reader,
		flusher:   flusher,
		logger:    logger,
		freeLimit: freeLimit,
	}
}

// Session returns the live bundle for the user, creating and rehydrating
// it on first access.
func (h *Hub) Session(ctx context.Context, userID string) *Session {
	h.mu.Lock()
	if sess, ok := h.sessions[userID]; ok {
		h.mu.Unlock()
		return sess
	}
	sess := h.newSession(userID)
	h.sessions[userID] = sess
	h.mu.Unlock()

	// First access: state is provisional until rehydration settles.
	h.rehydrate(ctx, sess)
	return sess
}

// Peek returns the live bundle without creating one.
func (h *Hub) Peek(userID string) (*Session, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sess, ok := h.sessions[userID]
	return sess, ok
}

// Evict drops a live bundle (logout, account deletion). Persisted
// snapshots are untouched unless the caller removes them too.
func (h *Hub) Evict(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.sessions, userID)
}

// Each invokes fn for every live session.
func (h *Hub) Each(fn func(*Session)) {
	h.mu.Lock()
	sessions := make([]*Session, 0, len(h.sessions))
	for _, sess := range h.sessions {
		sessions = append(sessions, sess)
	}
	h.mu.Unlock()

	for _, sess := range sessions {
		fn(sess)
	}
}

func (h *Hub) newSession(userID string) *Session {
	onChange := func(storeName string, payload []byte) {
		if h.flusher != nil {
			h.flusher.Enqueue(userID, storeName, payload)
		}
	}
	return &Session{
		UserID:        userID,
		Identity:      NewIdentityStore(onChange),
		Profile:       NewProfileStore(onChange),
		Entitlement:   NewEntitlementStore(h.freeLimit, onChange),
		Analysis:      NewAnalysisStore(),
		Favorites:     NewFavoritesStore(onChange),
		Wardrobe:      NewWardrobeStore(onChange),
		Notifications: NewNotificationStore(),
	}
}

type restorer interface {
	restore(payload []byte) error
}

func (h *Hub) rehydrate(ctx context.Context, sess *Session) {
	targets := []struct {
		name string
		dst  restorer
	}{
		{SnapshotStoreAuth, sess.Identity},
		{SnapshotStoreUser, sess.Profile},
		{SnapshotStoreSubscription, sess.Entitlement},
		{SnapshotStoreFavorites, sess.Favorites},
		{SnapshotStoreWardrobe, sess.Wardrobe},
	}

	for _, target := range targets {
		if h.reader == nil {
			continue
		}
		snap, err := h.reader.GetSnapshot(ctx, sess.UserID, target.name)
		if err != nil {
			if !errors.Is(err, store.ErrSnapshotNotFound) {
				// Best effort: the container keeps its defaults.
				h.logger.Error("snapshot load failed", "user_id", sess.UserID, "store", target.name, "error", err)
			}
			continue
		}
		if snap.Version != store.SnapshotVersion {
			h.logger.Warn("unknown snapshot version, using defaults",
				"user_id", sess.UserID, "store", target.name, "version", snap.Version)
			continue
		}
		if err := target.dst.restore(snap.Payload); err != nil {
			h.logger.Error("snapshot decode failed", "user_id", sess.UserID, "store", target.name, "error", err)
		}
	}

	sess.Identity.SetLoading(false)
}
