/**
 * @description
 * This file implements the analysis workflow: the staged pipeline that
 * turns a submitted draft into a result. The pipeline is a timed
 * simulation; its only obligations are the entitlement gate on entry,
 * quota consumption on completion, and clean cancellation so nothing
 * mutates the session after the consuming screen has gone away.
 */
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/styleadvisor/session-service/internal/domain"
)

var (
	// ErrNoDraft is returned when submit is called with an empty slot.
	ErrNoDraft = errors.New("no analysis draft to submit")
	// ErrAlreadyProcessing is returned while a run is in flight.
	ErrAlreadyProcessing = errors.New("analysis already in progress")
)

// GateError reports a blocked submission together with the gate decision
// the UI should act on.
type GateError struct {
	Decision domain.GateDecision
}

func (e *GateError) Error() string {
	return fmt.Sprintf("feature blocked: %s", e.Decision.Action)
}

// ResultBuilder produces the canned analysis result for a draft.
type ResultBuilder interface {
	BuildResult(req domain.AnalysisRequest, premiumContent bool) domain.AnalysisResult
}

// EventPublisher publishes domain events to the broker.
type EventPublisher interface {
	Publish(ctx context.Context, exchange, routingKey string, body interface{}) error
}

// Processor runs the staged analysis pipeline.
type Processor struct {
	builder   ResultBuilder
	producer  EventPublisher
	logger    *slog.Logger
	stepDelay time.Duration
	steps     int
}

// NewProcessor creates a processor. producer may be nil.
func NewProcessor(builder ResultBuilder, producer EventPublisher, logger *slog.Logger, stepDelay time.Duration, steps int) *Processor {
	if steps <= 0 {
		steps = 4
	}
	if stepDelay <= 0 {
		stepDelay = 900 * time.Millisecond
	}
	return &Processor{
		builder:   builder,
		producer:  producer,
		logger:    logger,
		stepDelay: stepDelay,
		steps:     steps,
	}
}

// Start gates and launches a pipeline run for the session's current
// draft. ctx should be the process context, not a request context: the
// run outlives the submitting request and is cancelled either by
// shutdown or by the session abandoning the analysis.
func (p *Processor) Start(ctx context.Context, sess *Session) error {
	decision := sess.Entitlement.Gate(domain.FeatureAnalysis)
	if !decision.Allowed {
		if decision.Action == domain.GateLimitModal {
			sess.Notifications.ShowModal(domain.ModalLimitReached, "Daily limit reached",
				"You have used all free analyses for today. Upgrade for unlimited access.", nil)
		}
		return &GateError{Decision: decision}
	}

	draft := sess.Analysis.CurrentRequest()
	if draft == nil {
		return ErrNoDraft
	}

	runCtx, cancel := context.WithCancel(ctx)
	gen, ok := sess.Analysis.BeginProcessing(cancel)
	if !ok {
		cancel()
		return ErrAlreadyProcessing
	}

	go p.run(runCtx, sess, *draft, gen)
	return nil
}

func (p *Processor) run(ctx context.Context, sess *Session, draft domain.AnalysisRequest, gen uint64) {
	for step := 1; step <= p.steps; step++ {
		select {
		case <-ctx.Done():
			sess.Analysis.EndProcessing(gen)
			return
		case <-time.After(p.stepDelay):
			sess.Analysis.SetProcessingStep(step)
		}
	}

	premium := sess.Entitlement.Status().IsPremium
	result := p.builder.BuildResult(draft, premium)

	// Installation is rejected when the run was cleared or superseded.
	if !sess.Analysis.CompleteRun(gen, result) {
		return
	}
	sess.Entitlement.DecrementAnalysis()
	sess.Notifications.ShowToast(domain.ToastSuccess, "Your style analysis is ready", 0)

	if p.producer != nil {
		event := domain.AnalysisCompletedEvent{
			UserID:       sess.UserID,
			ResultID:     result.ID,
			OverallScore: result.OverallScore,
			RequestType:  draft.Type,
			OccurredAt:   time.Now().UTC(),
		}
		if err := p.producer.Publish(ctx, domain.EventsExchange, domain.RoutingKeyAnalysisCompleted, event); err != nil {
			p.logger.Error("failed to publish analysis event", "user_id", sess.UserID, "error", err)
		}
	}
}
