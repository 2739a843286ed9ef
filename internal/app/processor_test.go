package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/styleadvisor/session-service/internal/domain"
)

type stubBuilder struct{}

func (stubBuilder) BuildResult(req domain.AnalysisRequest, premiumContent bool) domain.AnalysisResult {
	return domain.AnalysisResult{
		ID:               "result-1",
		OverallScore:     80,
		IsPremiumContent: premiumContent,
	}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(ctx context.Context, exchange, routingKey string, body interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, routingKey)
	return nil
}

func (p *recordingPublisher) keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	copy(out, p.events)
	return out
}

func newTestSession(freeLimit int) *Session {
	hub := NewHub(&stubSnapshotReader{}, nil, testLogger(), freeLimit)
	return hub.Session(context.Background(), "user-1")
}

func waitForProcessingToFinish(t *testing.T, sess *Session) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if processing, _ := sess.Analysis.Processing(); !processing {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("pipeline did not finish in time")
}

func TestStartWithoutDraftReturnsError(t *testing.T) {
	p := NewProcessor(stubBuilder{}, nil, testLogger(), time.Millisecond, 2)
	sess := newTestSession(1)

	err := p.Start(context.Background(), sess)
	if !errors.Is(err, ErrNoDraft) {
		t.Fatalf("expected ErrNoDraft, got %v", err)
	}
}

func TestCompletedRunInstallsResultAndConsumesQuota(t *testing.T) {
	publisher := &recordingPublisher{}
	p := NewProcessor(stubBuilder{}, publisher, testLogger(), time.Millisecond, 2)
	sess := newTestSession(2)
	sess.Analysis.UpdateCurrentRequest(domain.AnalysisRequestPatch{})

	if err := p.Start(context.Background(), sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	waitForProcessingToFinish(t, sess)

	if sess.Analysis.CurrentResult() == nil {
		t.Fatal("expected result installed")
	}
	if got := len(sess.Analysis.History()); got != 1 {
		t.Fatalf("expected 1 history entry, got %d", got)
	}
	if got := sess.Entitlement.Status().AnalysisRemaining; got != 1 {
		t.Fatalf("expected quota consumed to 1, got %d", got)
	}
	if got := len(sess.Notifications.Toasts()); got != 1 {
		t.Fatalf("expected completion toast, got %d toasts", got)
	}

	keys := publisher.keys()
	if len(keys) != 1 || keys[0] != domain.RoutingKeyAnalysisCompleted {
		t.Fatalf("expected analysis completion event, got %v", keys)
	}
}

func TestPremiumRunDoesNotConsumeQuota(t *testing.T) {
	p := NewProcessor(stubBuilder{}, nil, testLogger(), time.Millisecond, 2)
	sess := newTestSession(1)
	sess.Entitlement.SetPremium(true)
	sess.Analysis.UpdateCurrentRequest(domain.AnalysisRequestPatch{})

	if err := p.Start(context.Background(), sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	waitForProcessingToFinish(t, sess)

	if got := sess.Entitlement.Status().AnalysisRemaining; got != domain.UnlimitedAnalyses {
		t.Fatalf("expected premium quota untouched, got %d", got)
	}
	if result := sess.Analysis.CurrentResult(); result == nil || !result.IsPremiumContent {
		t.Fatalf("expected premium content result, got %+v", result)
	}
}

func TestExhaustedQuotaBlocksWithLimitModal(t *testing.T) {
	p := NewProcessor(stubBuilder{}, nil, testLogger(), time.Millisecond, 2)
	sess := newTestSession(1)
	status := sess.Entitlement.Status()
	status.AnalysisRemaining = 0
	sess.Entitlement.SetStatus(status)
	sess.Analysis.UpdateCurrentRequest(domain.AnalysisRequestPatch{})

	err := p.Start(context.Background(), sess)

	var gateErr *GateError
	if !errors.As(err, &gateErr) {
		t.Fatalf("expected GateError, got %v", err)
	}
	if gateErr.Decision.Action != domain.GateLimitModal {
		t.Fatalf("expected limit-modal action, got %q", gateErr.Decision.Action)
	}

	modal := sess.Notifications.ActiveModal()
	if modal == nil || modal.Type != domain.ModalLimitReached {
		t.Fatalf("expected limit-reached modal shown, got %+v", modal)
	}
}

func TestSecondStartWhileRunningIsRejected(t *testing.T) {
	p := NewProcessor(stubBuilder{}, nil, testLogger(), 100*time.Millisecond, 4)
	sess := newTestSession(2)
	sess.Analysis.UpdateCurrentRequest(domain.AnalysisRequestPatch{})

	if err := p.Start(context.Background(), sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Start(context.Background(), sess); !errors.Is(err, ErrAlreadyProcessing) {
		t.Fatalf("expected ErrAlreadyProcessing, got %v", err)
	}

	sess.Analysis.ClearCurrent()
}

func TestClearCurrentCancelsRunWithoutInstallingResult(t *testing.T) {
	p := NewProcessor(stubBuilder{}, nil, testLogger(), 50*time.Millisecond, 4)
	sess := newTestSession(2)
	sess.Analysis.UpdateCurrentRequest(domain.AnalysisRequestPatch{})

	if err := p.Start(context.Background(), sess); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sess.Analysis.ClearCurrent()
	waitForProcessingToFinish(t, sess)

	// Give the cancelled goroutine a moment to observe ctx.Done.
	time.Sleep(100 * time.Millisecond)

	if sess.Analysis.CurrentResult() != nil {
		t.Fatal("expected no result after cancellation")
	}
	if got := len(sess.Analysis.History()); got != 0 {
		t.Fatalf("expected empty history after cancellation, got %d", got)
	}
	if got := sess.Entitlement.Status().AnalysisRemaining; got != 2 {
		t.Fatalf("expected quota untouched after cancellation, got %d", got)
	}
}
