/**
 * @description
 * Shared plumbing for the per-user state containers. Every container
 * guards its state with a mutex, mutates synchronously, and reports the
 * new durable snapshot through a change callback so the flusher can
 * mirror it to storage without blocking the mutation path.
 */
package app

import "sync"

// Snapshot names. These match the storage keys the mobile client used,
// one named snapshot per store.
const (
	SnapshotStoreAuth         = "styleadvisor-auth"
	SnapshotStoreUser         = "styleadvisor-user"
	SnapshotStoreSubscription = "styleadvisor-subscription"
	SnapshotStoreFavorites    = "styleadvisor-favorites"
	SnapshotStoreWardrobe     = "styleadvisor-wardrobe"
)

// ChangeFunc receives the marshalled durable snapshot of a store after
// each mutation. Implementations must not block.
type ChangeFunc func(store string, payload []byte)

type baseStore struct {
	mu       sync.Mutex
	name     string
	onChange ChangeFunc
}

func newBaseStore(name string, onChange ChangeFunc) baseStore {
	return baseStore{name: name, onChange: onChange}
}

// notify forwards the snapshot to the change callback. A nil payload
// (marshal failure) is skipped; in-memory state stays authoritative.
func (b *baseStore) notify(payload []byte) {
	if b.onChange == nil || payload == nil {
		return
	}
	b.onChange(b.name, payload)
}
