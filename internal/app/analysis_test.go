package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/styleadvisor/session-service/internal/domain"
)

func TestUpdateCurrentRequestCreatesDraftWithTextDefault(t *testing.T) {
	s := NewAnalysisStore()

	prompt := "what goes with a navy blazer"
	s.UpdateCurrentRequest(domain.AnalysisRequestPatch{TextPrompt: &prompt})

	draft := s.CurrentRequest()
	if draft == nil {
		t.Fatal("expected draft to be created")
	}
	if draft.Type != domain.AnalysisTypeText {
		t.Fatalf("expected default type %q, got %q", domain.AnalysisTypeText, draft.Type)
	}
	if draft.TextPrompt != prompt {
		t.Fatalf("expected prompt %q, got %q", prompt, draft.TextPrompt)
	}
}

func TestUpdateCurrentRequestMergesIntoExistingDraft(t *testing.T) {
	s := NewAnalysisStore()

	prompt := "office outfit"
	s.UpdateCurrentRequest(domain.AnalysisRequestPatch{TextPrompt: &prompt})

	occasion := "work"
	s.UpdateCurrentRequest(domain.AnalysisRequestPatch{Occasion: &occasion})

	draft := s.CurrentRequest()
	if draft.TextPrompt != prompt {
		t.Fatalf("expected prompt to survive merge, got %q", draft.TextPrompt)
	}
	if draft.Occasion != occasion {
		t.Fatalf("expected occasion %q, got %q", occasion, draft.Occasion)
	}
}

func TestAddToHistoryBoundsAtTwentyNewestFirst(t *testing.T) {
	s := NewAnalysisStore()

	for i := 0; i < 25; i++ {
		s.AddToHistory(domain.AnalysisResult{ID: fmt.Sprintf("result-%d", i)})
	}

	history := s.History()
	if len(history) != maxHistoryEntries {
		t.Fatalf("expected history bounded at %d, got %d", maxHistoryEntries, len(history))
	}
	if history[0].ID != "result-24" {
		t.Fatalf("expected newest entry first, got %q", history[0].ID)
	}
	if history[len(history)-1].ID != "result-5" {
		t.Fatalf("expected oldest surviving entry result-5, got %q", history[len(history)-1].ID)
	}
}

func TestSetHistoryAppliesBound(t *testing.T) {
	s := NewAnalysisStore()

	incoming := make([]domain.AnalysisResult, 30)
	for i := range incoming {
		incoming[i] = domain.AnalysisResult{ID: fmt.Sprintf("result-%d", i)}
	}
	s.SetHistory(incoming)

	if got := len(s.History()); got != maxHistoryEntries {
		t.Fatalf("expected history bounded at %d, got %d", maxHistoryEntries, got)
	}
}

func TestBeginProcessingRejectsConcurrentRun(t *testing.T) {
	s := NewAnalysisStore()

	gen, ok := s.BeginProcessing(func() {})
	if !ok {
		t.Fatal("expected first begin to succeed")
	}
	if _, ok := s.BeginProcessing(func() {}); ok {
		t.Fatal("expected second begin to be rejected")
	}

	s.EndProcessing(gen)
	if _, ok := s.BeginProcessing(func() {}); !ok {
		t.Fatal("expected begin to succeed after end")
	}
}

func TestCompleteRunRejectsClearedRun(t *testing.T) {
	s := NewAnalysisStore()
	s.UpdateCurrentRequest(domain.AnalysisRequestPatch{})

	gen, ok := s.BeginProcessing(func() {})
	if !ok {
		t.Fatal("expected begin to succeed")
	}
	s.ClearCurrent()

	if s.CompleteRun(gen, domain.AnalysisResult{ID: "stale"}) {
		t.Fatal("expected stale install to be rejected")
	}
	if s.CurrentResult() != nil {
		t.Fatal("expected cleared slot to stay empty")
	}
	if got := len(s.History()); got != 0 {
		t.Fatalf("expected empty history, got %d entries", got)
	}
}

func TestStaleEndProcessingLeavesNewRunAlone(t *testing.T) {
	s := NewAnalysisStore()

	oldGen, _ := s.BeginProcessing(func() {})
	s.ClearCurrent()
	if _, ok := s.BeginProcessing(func() {}); !ok {
		t.Fatal("expected new run to begin")
	}

	s.EndProcessing(oldGen)
	if processing, _ := s.Processing(); !processing {
		t.Fatal("expected new run to still be processing")
	}
}

func TestCompleteRunInstallsResultAndHistory(t *testing.T) {
	s := NewAnalysisStore()
	s.UpdateCurrentRequest(domain.AnalysisRequestPatch{})

	gen, _ := s.BeginProcessing(func() {})
	if !s.CompleteRun(gen, domain.AnalysisResult{ID: "result-1"}) {
		t.Fatal("expected live run to install")
	}

	if got := s.CurrentResult(); got == nil || got.ID != "result-1" {
		t.Fatalf("expected installed result, got %+v", got)
	}
	if got := len(s.History()); got != 1 {
		t.Fatalf("expected 1 history entry, got %d", got)
	}
	if processing, _ := s.Processing(); processing {
		t.Fatal("expected processing flag cleared after install")
	}
}

func TestClearCurrentCancelsInFlightRun(t *testing.T) {
	s := NewAnalysisStore()
	ctx, cancel := context.WithCancel(context.Background())

	s.UpdateCurrentRequest(domain.AnalysisRequestPatch{})
	s.BeginProcessing(cancel)
	s.ClearCurrent()

	select {
	case <-ctx.Done():
	default:
		t.Fatal("expected in-flight context to be cancelled")
	}

	if s.CurrentRequest() != nil {
		t.Fatal("expected draft to be cleared")
	}
	if processing, _ := s.Processing(); processing {
		t.Fatal("expected processing flag cleared")
	}
}

func TestResetClearsHistoryToo(t *testing.T) {
	s := NewAnalysisStore()
	s.AddToHistory(domain.AnalysisResult{ID: "result-1"})

	s.Reset()

	if got := len(s.History()); got != 0 {
		t.Fatalf("expected empty history, got %d entries", got)
	}
}
