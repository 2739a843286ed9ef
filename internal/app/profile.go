/**
 * @description
 * This file implements the profile state container. The profile record is
 * established once via Set during onboarding and afterwards only
 * partial-updated with shallow merge semantics: absent patch fields leave
 * the existing value untouched. Updating a non-existent profile is a no-op.
 */
package app

import (
	"encoding/json"

	"github.com/styleadvisor/session-service/internal/domain"
)

type profileSnapshot struct {
	Profile *domain.Profile `json:"profile"`
}

// ProfileStore holds the style profile for a single user.
type ProfileStore struct {
	base    baseStore
	profile *domain.Profile
}

// NewProfileStore creates a profile container.
func NewProfileStore(onChange ChangeFunc) *ProfileStore {
	return &ProfileStore{base: newBaseStore(SnapshotStoreUser, onChange)}
}

// Set replaces the entire record. Used once at onboarding start to
// establish the profile id.
func (s *ProfileStore) Set(profile domain.Profile) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	p := profile
	s.profile = &p
	s.base.notify(s.snapshotLocked())
}

// Update shallow-merges the patch into the existing record. No-op when no
// profile exists yet. Inverted budget ranges are accepted uncritically.
func (s *ProfileStore) Update(patch domain.ProfilePatch) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	if s.profile == nil {
		return
	}

	if patch.Gender != nil {
		s.profile.Gender = *patch.Gender
	}
	if patch.Age != nil {
		s.profile.Age = patch.Age
	}
	if patch.HeightCm != nil {
		s.profile.HeightCm = patch.HeightCm
	}
	if patch.WeightKg != nil {
		s.profile.WeightKg = patch.WeightKg
	}
	if patch.BodyType != nil {
		s.profile.BodyType = *patch.BodyType
	}
	if patch.SkinTone != nil {
		s.profile.SkinTone = *patch.SkinTone
	}
	if patch.StylePreferences != nil {
		s.profile.StylePreferences = *patch.StylePreferences
	}
	if patch.FavoriteColors != nil {
		s.profile.FavoriteColors = *patch.FavoriteColors
	}
	if patch.AvoidColors != nil {
		s.profile.AvoidColors = *patch.AvoidColors
	}
	if patch.BudgetRange != nil {
		s.profile.BudgetRange = *patch.BudgetRange
	}
	if patch.PreferredRetailers != nil {
		s.profile.PreferredRetailers = *patch.PreferredRetailers
	}
	if patch.NotificationsEnabled != nil {
		s.profile.NotificationsEnabled = *patch.NotificationsEnabled
	}
	if patch.OnboardingCompleted != nil {
		s.profile.OnboardingCompleted = *patch.OnboardingCompleted
	}
	s.base.notify(s.snapshotLocked())
}

// SetStylePreferences is a single-field convenience wrapper over Update.
func (s *ProfileStore) SetStylePreferences(prefs []domain.StylePreference) {
	s.Update(domain.ProfilePatch{StylePreferences: &prefs})
}

// SetBudgetRange is a single-field convenience wrapper over Update.
func (s *ProfileStore) SetBudgetRange(budget domain.BudgetRange) {
	s.Update(domain.ProfilePatch{BudgetRange: &budget})
}

// SetPreferredRetailers is a single-field convenience wrapper over Update.
func (s *ProfileStore) SetPreferredRetailers(retailers []string) {
	s.Update(domain.ProfilePatch{PreferredRetailers: &retailers})
}

// Get returns a copy of the profile, or nil when none exists.
func (s *ProfileStore) Get() *domain.Profile {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// Reset clears the profile.
func (s *ProfileStore) Reset() {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.profile = nil
	s.base.notify(s.snapshotLocked())
}

func (s *ProfileStore) snapshotLocked() []byte {
	payload, err := json.Marshal(profileSnapshot{Profile: s.profile})
	if err != nil {
		return nil
	}
	return payload
}

func (s *ProfileStore) restore(payload []byte) error {
	var snap profileSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return err
	}

	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.profile = snap.Profile
	return nil
}
