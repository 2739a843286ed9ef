package app

import (
	"testing"

	"github.com/styleadvisor/session-service/internal/domain"
)

func TestSetPremiumGrantsUnlimitedQuotaAndFeatures(t *testing.T) {
	s := NewEntitlementStore(1, nil)

	s.SetPremium(true)

	status := s.Status()
	if !status.IsPremium {
		t.Fatal("expected premium status")
	}
	if status.Plan != domain.PlanMonthly {
		t.Fatalf("expected plan %q, got %q", domain.PlanMonthly, status.Plan)
	}
	if status.AnalysisRemaining != domain.UnlimitedAnalyses || status.AnalysisLimit != domain.UnlimitedAnalyses {
		t.Fatalf("expected unlimited quota, got remaining=%d limit=%d", status.AnalysisRemaining, status.AnalysisLimit)
	}
	for _, f := range status.Features {
		if !f.IsAvailable {
			t.Fatalf("expected feature %q to be available", f.ID)
		}
	}
}

func TestSetPremiumFalseRestoresFreeDefaults(t *testing.T) {
	s := NewEntitlementStore(3, nil)

	s.SetPremium(true)
	s.SetPremium(false)

	status := s.Status()
	if status.IsPremium {
		t.Fatal("expected free status")
	}
	if status.Plan != domain.PlanFree {
		t.Fatalf("expected plan %q, got %q", domain.PlanFree, status.Plan)
	}
	if status.ExpiresAt != nil {
		t.Fatal("expected expiry to be cleared")
	}
	if status.AnalysisRemaining != 3 || status.AnalysisLimit != 3 {
		t.Fatalf("expected free quota 3/3, got remaining=%d limit=%d", status.AnalysisRemaining, status.AnalysisLimit)
	}
	for _, f := range status.Features {
		if f.IsAvailable {
			t.Fatalf("expected feature %q to be unavailable", f.ID)
		}
	}
}

func TestSetPlanKeepsRequestedPremiumPlan(t *testing.T) {
	s := NewEntitlementStore(1, nil)

	s.SetPlan(domain.PlanYearly)

	status := s.Status()
	if !status.IsPremium {
		t.Fatal("expected premium status")
	}
	if status.Plan != domain.PlanYearly {
		t.Fatalf("expected plan %q, got %q", domain.PlanYearly, status.Plan)
	}
}

func TestDecrementAnalysisNeverGoesNegative(t *testing.T) {
	s := NewEntitlementStore(2, nil)

	for i := 0; i < 5; i++ {
		s.DecrementAnalysis()
	}

	if got := s.Status().AnalysisRemaining; got != 0 {
		t.Fatalf("expected remaining to clamp at 0, got %d", got)
	}
}

func TestDecrementAnalysisIgnoresPremiumUsers(t *testing.T) {
	s := NewEntitlementStore(1, nil)
	s.SetPremium(true)

	s.DecrementAnalysis()

	if got := s.Status().AnalysisRemaining; got != domain.UnlimitedAnalyses {
		t.Fatalf("expected premium quota untouched, got %d", got)
	}
}

func TestResetDailyAnalysisRestoresFreeQuota(t *testing.T) {
	s := NewEntitlementStore(2, nil)
	s.DecrementAnalysis()
	s.DecrementAnalysis()

	if !s.ResetDailyAnalysis() {
		t.Fatal("expected reset to report a change for a spent quota")
	}
	if got := s.Status().AnalysisRemaining; got != 2 {
		t.Fatalf("expected remaining restored to 2, got %d", got)
	}
}

func TestResetDailyAnalysisNoOpCases(t *testing.T) {
	full := NewEntitlementStore(2, nil)
	if full.ResetDailyAnalysis() {
		t.Fatal("expected no change for an already-full quota")
	}

	premium := NewEntitlementStore(2, nil)
	premium.SetPremium(true)
	if premium.ResetDailyAnalysis() {
		t.Fatal("expected no change for a premium entitlement")
	}
	if got := premium.Status().AnalysisRemaining; got != domain.UnlimitedAnalyses {
		t.Fatalf("expected premium quota untouched, got %d", got)
	}
}

func TestGateDecisions(t *testing.T) {
	tests := []struct {
		name       string
		premium    bool
		remaining  int
		key        string
		wantAllow  bool
		wantAction domain.GateAction
	}{
		{
			name:       "premium allows quota-gated analysis",
			premium:    true,
			key:        domain.FeatureAnalysis,
			wantAllow:  true,
			wantAction: domain.GateAllow,
		},
		{
			name:       "premium allows paywalled key",
			premium:    true,
			key:        domain.FeatureAdvancedInsights,
			wantAllow:  true,
			wantAction: domain.GateAllow,
		},
		{
			name:       "free with quota allows analysis",
			remaining:  1,
			key:        domain.FeatureAnalysis,
			wantAllow:  true,
			wantAction: domain.GateAllow,
		},
		{
			name:       "free without quota soft-blocks analysis",
			remaining:  0,
			key:        domain.FeatureAnalysis,
			wantAllow:  false,
			wantAction: domain.GateLimitModal,
		},
		{
			name:       "free hits paywall on fourth suggestion",
			remaining:  1,
			key:        domain.FeatureOutfitSuggestion4,
			wantAllow:  false,
			wantAction: domain.GatePaywall,
		},
		{
			name:       "free hits paywall on eleventh product",
			remaining:  1,
			key:        domain.FeatureProduct11,
			wantAllow:  false,
			wantAction: domain.GatePaywall,
		},
		{
			name:       "free hits paywall on fit details",
			remaining:  0,
			key:        domain.FeatureFitDetails,
			wantAllow:  false,
			wantAction: domain.GatePaywall,
		},
		{
			name:       "unknown key is allowed by default",
			remaining:  0,
			key:        "some-new-feature",
			wantAllow:  true,
			wantAction: domain.GateAllow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewEntitlementStore(1, nil)
			if tt.premium {
				s.SetPremium(true)
			} else {
				status := s.Status()
				status.AnalysisRemaining = tt.remaining
				s.SetStatus(status)
			}

			got := s.Gate(tt.key)
			if got.Allowed != tt.wantAllow || got.Action != tt.wantAction {
				t.Fatalf("expected allowed=%t action=%q, got allowed=%t action=%q",
					tt.wantAllow, tt.wantAction, got.Allowed, got.Action)
			}
		})
	}
}

func TestEntitlementNotifiesOnMutation(t *testing.T) {
	var notified int
	s := NewEntitlementStore(1, func(store string, payload []byte) {
		if store != SnapshotStoreSubscription {
			t.Fatalf("expected store %q, got %q", SnapshotStoreSubscription, store)
		}
		notified++
	})

	s.SetPremium(true)
	s.DecrementAnalysis() // premium: no-op, no write

	if notified != 1 {
		t.Fatalf("expected 1 snapshot notification, got %d", notified)
	}
}
