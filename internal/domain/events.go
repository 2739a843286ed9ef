/**
 * @description
 * This file defines the events published to the message broker when
 * session state changes in ways other systems care about.
 */
package domain

import "time"

// Exchange and routing keys for published events.
const (
	EventsExchange = "styleadvisor.events"

	RoutingKeyUserRegistered    = "user.registered"
	RoutingKeyUserLoggedIn      = "user.logged_in"
	RoutingKeyUserOnboarded     = "user.onboarded"
	RoutingKeySubUpgraded       = "subscription.upgraded"
	RoutingKeySubCancelled      = "subscription.cancelled"
	RoutingKeySubQuotaReset     = "subscription.quota_reset"
	RoutingKeyAnalysisCompleted = "analysis.completed"
)

// UserEvent is published on register/login/onboarding transitions.
type UserEvent struct {
	UserID     string    `json:"user_id"`
	Email      string    `json:"email,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// SubscriptionEvent is published when the entitlement changes tier.
type SubscriptionEvent struct {
	UserID     string    `json:"user_id"`
	Plan       string    `json:"plan"`
	IsPremium  bool      `json:"is_premium"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AnalysisCompletedEvent is published when the analysis pipeline finishes.
type AnalysisCompletedEvent struct {
	UserID       string    `json:"user_id"`
	ResultID     string    `json:"result_id"`
	OverallScore int       `json:"overall_score"`
	RequestType  string    `json:"request_type"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// QuotaResetEvent is published after the daily quota rollover job runs.
type QuotaResetEvent struct {
	UsersReset int       `json:"users_reset"`
	OccurredAt time.Time `json:"occurred_at"`
}
