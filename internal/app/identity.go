/**
 * @description
 * This file implements the identity state container. It owns the
 * authenticated principal, the session token, and the session lifecycle
 * flags. Mutations are synchronous; durable fields are mirrored to storage
 * through the snapshot callback after every change.
 */
package app

import (
	"encoding/json"

	"github.com/styleadvisor/session-service/internal/domain"
)

// identitySnapshot is the durable subset of the identity state. The
// loading flag is runtime-only and never persisted.
type identitySnapshot struct {
	Principal        *domain.Principal `json:"principal,omitempty"`
	Token            string            `json:"token,omitempty"`
	IsAuthenticated  bool              `json:"is_authenticated"`
	IsOnboarded      bool              `json:"is_onboarded"`
	HasAcceptedTerms bool              `json:"has_accepted_terms"`
}

// IdentityStore holds the session for a single user. Its operations
// cannot fail; persistence errors are absorbed downstream.
type IdentityStore struct {
	base baseStore
	sess domain.Session
}

// NewIdentityStore creates an identity container. onChange receives the
// marshalled durable snapshot after each mutation and may be nil.
func NewIdentityStore(onChange ChangeFunc) *IdentityStore {
	return &IdentityStore{
		base: newBaseStore(SnapshotStoreAuth, onChange),
		sess: domain.Session{IsLoading: true},
	}
}

// Login installs the principal and token wholesale and marks the session
// authenticated. There are no preconditions.
func (s *IdentityStore) Login(principal domain.Principal, token string) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	p := principal
	s.sess.Principal = &p
	s.sess.Token = token
	s.sess.IsAuthenticated = token != ""
	s.sess.IsLoading = false
	s.base.notify(s.snapshotLocked())
}

// Logout clears the session back to defaults. The loading flag stays
// false: after an explicit logout the state is settled, not provisional.
func (s *IdentityStore) Logout() {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.sess = domain.Session{}
	s.base.notify(s.snapshotLocked())
}

// SetPrincipal replaces the principal without touching the token or flags.
func (s *IdentityStore) SetPrincipal(principal domain.Principal) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	p := principal
	s.sess.Principal = &p
	s.base.notify(s.snapshotLocked())
}

// SetOnboarded marks onboarding complete. The flag is one-way: attempts
// to lower it on a live session are ignored, only logout clears it.
func (s *IdentityStore) SetOnboarded(v bool) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	if !v && s.sess.IsOnboarded {
		return
	}
	s.sess.IsOnboarded = v
	s.base.notify(s.snapshotLocked())
}

// SetAcceptedTerms records terms acceptance.
func (s *IdentityStore) SetAcceptedTerms(v bool) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.sess.HasAcceptedTerms = v
	s.base.notify(s.snapshotLocked())
}

// SetLoading flags the session as provisional while rehydration is in
// flight. Not persisted.
func (s *IdentityStore) SetLoading(v bool) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.sess.IsLoading = v
}

// Session returns a copy of the current session.
func (s *IdentityStore) Session() domain.Session {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	out := s.sess
	if s.sess.Principal != nil {
		p := *s.sess.Principal
		out.Principal = &p
	}
	return out
}

// Reset returns the container to defaults, loading flag cleared.
func (s *IdentityStore) Reset() {
	s.Logout()
}

func (s *IdentityStore) snapshotLocked() []byte {
	payload, err := json.Marshal(identitySnapshot{
		Principal:        s.sess.Principal,
		Token:            s.sess.Token,
		IsAuthenticated:  s.sess.IsAuthenticated,
		IsOnboarded:      s.sess.IsOnboarded,
		HasAcceptedTerms: s.sess.HasAcceptedTerms,
	})
	if err != nil {
		return nil
	}
	return payload
}

// restore rehydrates the container from a persisted snapshot.
func (s *IdentityStore) restore(payload []byte) error {
	var snap identitySnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return err
	}

	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.sess = domain.Session{
		Principal:        snap.Principal,
		Token:            snap.Token,
		IsAuthenticated:  snap.Token != "",
		IsOnboarded:      snap.IsOnboarded,
		HasAcceptedTerms: snap.HasAcceptedTerms,
		IsLoading:        false,
	}
	return nil
}
