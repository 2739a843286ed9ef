/**
 * @description
 * This file contains the subscription workflow: upgrade, restore, and
 * cancel. Entitlement only mutates on an explicit success from the
 * billing collaborator; failures surface as an error toast and leave the
 * entitlement untouched.
 */
package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/styleadvisor/session-service/internal/domain"
)

// ErrPurchaseFailed is returned when the billing collaborator reports an
// unsuccessful purchase or restore.
var ErrPurchaseFailed = errors.New("purchase failed")

// BillingClient is the mock billing collaborator contract.
type BillingClient interface {
	Subscribe(ctx context.Context, userID, plan string) (domain.PurchaseResult, error)
	RestorePurchases(ctx context.Context, userID string) (domain.PurchaseResult, error)
}

// BillingService orchestrates entitlement changes against the billing
// collaborator.
type BillingService struct {
	client   BillingClient
	producer EventPublisher
	logger   *slog.Logger
}

// NewBillingService creates the subscription workflow. producer may be nil.
func NewBillingService(client BillingClient, producer EventPublisher, logger *slog.Logger) *BillingService {
	return &BillingService{client: client, producer: producer, logger: logger}
}

// Upgrade purchases the plan and, on success only, flips the entitlement
// to premium.
func (s *BillingService) Upgrade(ctx context.Context, sess *Session, plan string) (domain.Entitlement, error) {
	result, err := s.client.Subscribe(ctx, sess.UserID, plan)
	if err != nil || !result.Success {
		message := "Purchase could not be completed. Please try again."
		if result.ErrorMessage != "" {
			message = result.ErrorMessage
		}
		sess.Notifications.ShowToast(domain.ToastError, message, 0)
		if err != nil {
			return sess.Entitlement.Status(), err
		}
		return sess.Entitlement.Status(), ErrPurchaseFailed
	}

	sess.Entitlement.SetPlan(result.Plan)
	if result.ExpiresAt != nil {
		status := sess.Entitlement.Status()
		status.ExpiresAt = result.ExpiresAt
		sess.Entitlement.SetStatus(status)
	}
	sess.Notifications.ShowToast(domain.ToastSuccess, "Welcome to Premium!", 0)
	s.publish(ctx, domain.RoutingKeySubUpgraded, domain.SubscriptionEvent{
		UserID:     sess.UserID,
		Plan:       result.Plan,
		IsPremium:  true,
		OccurredAt: time.Now().UTC(),
	})
	return sess.Entitlement.Status(), nil
}

// Restore replays past purchases. An empty restore is a success with no
// entitlement change.
func (s *BillingService) Restore(ctx context.Context, sess *Session) (domain.Entitlement, int, error) {
	result, err := s.client.RestorePurchases(ctx, sess.UserID)
	if err != nil || !result.Success {
		message := "Restore failed. Please try again."
		if result.ErrorMessage != "" {
			message = result.ErrorMessage
		}
		sess.Notifications.ShowToast(domain.ToastError, message, 0)
		if err != nil {
			return sess.Entitlement.Status(), 0, err
		}
		return sess.Entitlement.Status(), 0, ErrPurchaseFailed
	}

	if result.RestoredPurchases == 0 {
		sess.Notifications.ShowToast(domain.ToastInfo, "No purchases to restore", 0)
		return sess.Entitlement.Status(), 0, nil
	}

	sess.Entitlement.SetPlan(result.Plan)
	sess.Notifications.ShowToast(domain.ToastSuccess, "Purchases restored", 0)
	s.publish(ctx, domain.RoutingKeySubUpgraded, domain.SubscriptionEvent{
		UserID:     sess.UserID,
		Plan:       result.Plan,
		IsPremium:  true,
		OccurredAt: time.Now().UTC(),
	})
	return sess.Entitlement.Status(), result.RestoredPurchases, nil
}

// Cancel drops the user back to the free tier. Not exposed by the store
// model as a direct transition in the client, but supported here so a
// lapsed subscription resets to free defaults.
func (s *BillingService) Cancel(ctx context.Context, sess *Session) domain.Entitlement {
	sess.Entitlement.SetPremium(false)
	sess.Notifications.ShowToast(domain.ToastInfo, "Subscription cancelled", 0)
	s.publish(ctx, domain.RoutingKeySubCancelled, domain.SubscriptionEvent{
		UserID:     sess.UserID,
		Plan:       domain.PlanFree,
		IsPremium:  false,
		OccurredAt: time.Now().UTC(),
	})
	return sess.Entitlement.Status()
}

func (s *BillingService) publish(ctx context.Context, routingKey string, body interface{}) {
	if s.producer == nil {
		return
	}
	if err := s.producer.Publish(ctx, domain.EventsExchange, routingKey, body); err != nil {
		s.logger.Error("failed to publish subscription event", "routing_key", routingKey, "error", err)
	}
}
