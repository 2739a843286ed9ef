/**
 * @description
 * This file implements the entitlement state container, the one piece of
 * real decision logic in the session model: premium tier transitions, the
 * consumable daily analysis quota, and the feature gate the UI branches on.
 */
package app

import (
	"encoding/json"

	"github.com/styleadvisor/session-service/internal/domain"
)

// gateTable maps recognized feature keys to the action taken when the
// user is not premium. Keys absent from the table are allowed by default,
// which keeps the vocabulary open for new or legacy client builds.
// GateLimitModal entries are quota-gated rather than unconditionally
// blocked.
var gateTable = map[string]domain.GateAction{
	domain.FeatureAnalysis:          domain.GateLimitModal,
	domain.FeatureOutfitSuggestion3: domain.GatePaywall,
	domain.FeatureOutfitSuggestion4: domain.GatePaywall,
	domain.FeatureOutfitSuggestion5: domain.GatePaywall,
	domain.FeatureProduct11:         domain.GatePaywall,
	domain.FeatureProductBeyond10:   domain.GatePaywall,
	domain.FeatureAdvancedInsights:  domain.GatePaywall,
	domain.FeatureFitDetails:        domain.GatePaywall,
	domain.FeatureColorDetails:      domain.GatePaywall,
}

type entitlementSnapshot struct {
	Status domain.Entitlement `json:"status"`
}

// EntitlementStore holds the subscription status for a single user.
type EntitlementStore struct {
	base      baseStore
	status    domain.Entitlement
	freeLimit int
}

// NewEntitlementStore creates an entitlement container seeded with the
// free-tier defaults for the given daily limit.
func NewEntitlementStore(freeLimit int, onChange ChangeFunc) *EntitlementStore {
	if freeLimit <= 0 {
		freeLimit = 1
	}
	return &EntitlementStore{
		base:      newBaseStore(SnapshotStoreSubscription, onChange),
		status:    domain.FreeEntitlement(freeLimit),
		freeLimit: freeLimit,
	}
}

// SetStatus replaces the status wholesale.
func (s *EntitlementStore) SetStatus(status domain.Entitlement) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.status = status
	s.base.notify(s.snapshotLocked())
}

// SetPremium switches tiers. Premium sets plan=monthly, the unlimited
// quota sentinel, and marks every feature available. Losing premium
// restores the free defaults.
func (s *EntitlementStore) SetPremium(isPremium bool) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.status.IsPremium = isPremium
	if isPremium {
		s.status.Plan = domain.PlanMonthly
		s.status.AnalysisRemaining = domain.UnlimitedAnalyses
		s.status.AnalysisLimit = domain.UnlimitedAnalyses
	} else {
		s.status.Plan = domain.PlanFree
		s.status.ExpiresAt = nil
		s.status.AnalysisRemaining = s.freeLimit
		s.status.AnalysisLimit = s.freeLimit
	}
	for i := range s.status.Features {
		s.status.Features[i].IsAvailable = isPremium
	}
	s.base.notify(s.snapshotLocked())
}

// SetPlan upgrades to a specific premium plan (monthly/yearly/lifetime).
func (s *EntitlementStore) SetPlan(plan string) {
	s.SetPremium(true)

	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	switch plan {
	case domain.PlanMonthly, domain.PlanYearly, domain.PlanLifetime:
		s.status.Plan = plan
	}
	s.base.notify(s.snapshotLocked())
}

// DecrementAnalysis consumes one analysis from the free quota. Premium
// users and an exhausted quota are no-ops; remaining never goes negative.
func (s *EntitlementStore) DecrementAnalysis() {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	if s.status.IsPremium || s.status.AnalysisRemaining <= 0 {
		return
	}
	s.status.AnalysisRemaining--
	s.base.notify(s.snapshotLocked())
}

// ResetDailyAnalysis restores the free quota to its limit and reports
// whether anything changed. Premium users and an already-full quota are
// no-ops; when the rollover runs is the scheduler's concern.
func (s *EntitlementStore) ResetDailyAnalysis() bool {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	if s.status.IsPremium || s.status.AnalysisRemaining == s.status.AnalysisLimit {
		return false
	}
	s.status.AnalysisRemaining = s.status.AnalysisLimit
	s.base.notify(s.snapshotLocked())
	return true
}

// Gate decides whether the feature behind key is usable now. Pure read,
// no side effects. Premium always allows; otherwise the policy table
// dispatches: quota-gated keys soft-block with a limit modal when the
// quota is exhausted, premium-only keys hard-block with the paywall, and
// unrecognized keys are allowed.
func (s *EntitlementStore) Gate(key string) domain.GateDecision {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	if s.status.IsPremium {
		return domain.GateDecision{Allowed: true, Action: domain.GateAllow}
	}

	action, known := gateTable[key]
	if !known {
		return domain.GateDecision{Allowed: true, Action: domain.GateAllow}
	}

	switch action {
	case domain.GateLimitModal:
		if s.status.AnalysisRemaining <= 0 {
			return domain.GateDecision{Allowed: false, Action: domain.GateLimitModal}
		}
		return domain.GateDecision{Allowed: true, Action: domain.GateAllow}
	default:
		return domain.GateDecision{Allowed: false, Action: domain.GatePaywall}
	}
}

// Status returns a copy of the current entitlement.
func (s *EntitlementStore) Status() domain.Entitlement {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	return s.copyStatusLocked()
}

// Reset restores the free-tier defaults.
func (s *EntitlementStore) Reset() {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.status = domain.FreeEntitlement(s.freeLimit)
	s.base.notify(s.snapshotLocked())
}

func (s *EntitlementStore) copyStatusLocked() domain.Entitlement {
	out := s.status
	out.Features = make([]domain.PremiumFeature, len(s.status.Features))
	copy(out.Features, s.status.Features)
	return out
}

func (s *EntitlementStore) snapshotLocked() []byte {
	payload, err := json.Marshal(entitlementSnapshot{Status: s.status})
	if err != nil {
		return nil
	}
	return payload
}

func (s *EntitlementStore) restore(payload []byte) error {
	var snap entitlementSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return err
	}

	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.status = snap.Status
	if len(s.status.Features) == 0 {
		s.status.Features = domain.DefaultPremiumFeatures()
	}
	return nil
}
