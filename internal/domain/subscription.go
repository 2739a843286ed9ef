/**
 * @description
 * This file defines the entitlement domain models: the subscription status,
 * premium features, feature keys, and the three-way gate decision that the
 * UI branches on.
 */
package domain

import "time"

// Plan identifiers.
const (
	PlanFree     = "free"
	PlanMonthly  = "monthly"
	PlanYearly   = "yearly"
	PlanLifetime = "lifetime"
)

// UnlimitedAnalyses is the sentinel limit used while premium is active.
const UnlimitedAnalyses = 999

// Entitlement is the computed premium/free access level for a user,
// including the consumable daily analysis quota.
type Entitlement struct {
	IsPremium         bool             `json:"is_premium"`
	Plan              string           `json:"plan"`
	ExpiresAt         *time.Time       `json:"expires_at,omitempty"`
	AnalysisRemaining int              `json:"analysis_remaining"`
	AnalysisLimit     int              `json:"analysis_limit"`
	Features          []PremiumFeature `json:"features"`
}

// PremiumFeature is a single marketable premium capability.
type PremiumFeature struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsAvailable bool   `json:"is_available"`
}

// GateAction tells the UI how to react to a blocked feature.
type GateAction string

const (
	GateAllow GateAction = "allow"
	// GatePaywall is a hard block requiring purchase.
	GatePaywall GateAction = "paywall"
	// GateLimitModal is a soft block: quota exhausted, retry later or upgrade.
	GateLimitModal GateAction = "limit-modal"
)

// GateDecision is the result of checking a feature key against the
// current entitlement.
type GateDecision struct {
	Allowed bool       `json:"allowed"`
	Action  GateAction `json:"action"`
}

// Feature keys consumed by the client. The vocabulary is open ended;
// unknown keys are allowed by default.
const (
	FeatureAnalysis          = "analysis"
	FeatureOutfitSuggestion3 = "outfit-suggestion-3"
	FeatureOutfitSuggestion4 = "outfit-suggestion-4"
	FeatureOutfitSuggestion5 = "outfit-suggestion-5"
	FeatureProduct11         = "product-11"
	FeatureProductBeyond10   = "product-beyond-10"
	FeatureAdvancedInsights  = "advanced-insights"
	FeatureFitDetails        = "fit-details"
	FeatureColorDetails      = "color-details"
)

// PurchaseResult is the billing collaborator contract: the call either
// succeeds with the payload fields set, or fails with an error message
// and no entitlement change.
type PurchaseResult struct {
	Success           bool       `json:"success"`
	Plan              string     `json:"plan,omitempty"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
	RestoredPurchases int        `json:"restored_purchases,omitempty"`
	ErrorMessage      string     `json:"error,omitempty"`
}

// DefaultPremiumFeatures returns the free-tier feature list, everything
// unavailable.
func DefaultPremiumFeatures() []PremiumFeature {
	return []PremiumFeature{
		{ID: "unlimited-analyses", Name: "Unlimited Analyses", Description: "No daily limits"},
		{ID: "all-suggestions", Name: "All Outfit Suggestions", Description: "See all AI recommendations"},
		{ID: "advanced-insights", Name: "Advanced Insights", Description: "Detailed style analysis"},
		{ID: "priority-support", Name: "Priority Support", Description: "Get help faster"},
		{ID: "exclusive-content", Name: "Exclusive Content", Description: "Fashion trends & tips"},
		{ID: "no-ads", Name: "Ad-Free", Description: "No advertisements"},
	}
}

// FreeEntitlement returns the free-tier defaults with the given daily limit.
func FreeEntitlement(limit int) Entitlement {
	if limit <= 0 {
		limit = 1
	}
	return Entitlement{
		IsPremium:         false,
		Plan:              PlanFree,
		AnalysisRemaining: limit,
		AnalysisLimit:     limit,
		Features:          DefaultPremiumFeatures(),
	}
}
