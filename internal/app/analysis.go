/**
 * @description
 * This file implements the analysis session container: the in-progress
 * request draft, the most recent result, processing flags, and a bounded
 * newest-first result history. Drafts and results are runtime-only and
 * never persisted; a fresh process starts with an empty slot.
 */
package app

import (
	"context"

	"github.com/styleadvisor/session-service/internal/domain"
)

// maxHistoryEntries bounds the result history; the oldest entry is
// evicted first.
const maxHistoryEntries = 20

// AnalysisStore holds the analysis session for a single user.
type AnalysisStore struct {
	base           baseStore
	currentRequest *domain.AnalysisRequest
	currentResult  *domain.AnalysisResult
	history        []domain.AnalysisResult
	isProcessing   bool
	processingStep int
	cancel         context.CancelFunc
	generation     uint64
}

// NewAnalysisStore creates an analysis container. The store has no
// durable snapshot, so no change callback is taken.
func NewAnalysisStore() *AnalysisStore {
	return &AnalysisStore{base: newBaseStore("", nil)}
}

// SetCurrentRequest replaces the draft wholesale; nil discards it.
func (s *AnalysisStore) SetCurrentRequest(req *domain.AnalysisRequest) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.currentRequest = req
}

// UpdateCurrentRequest shallow-merges the patch into the draft. When no
// draft exists one is created from the patch, defaulting the type to text.
func (s *AnalysisStore) UpdateCurrentRequest(patch domain.AnalysisRequestPatch) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	if s.currentRequest == nil {
		s.currentRequest = &domain.AnalysisRequest{Type: domain.AnalysisTypeText}
	}
	if patch.Type != nil {
		s.currentRequest.Type = *patch.Type
	}
	if patch.ImageBase64 != nil {
		s.currentRequest.ImageBase64 = *patch.ImageBase64
	}
	if patch.TextPrompt != nil {
		s.currentRequest.TextPrompt = *patch.TextPrompt
	}
	if patch.Occasion != nil {
		s.currentRequest.Occasion = *patch.Occasion
	}
	if patch.Style != nil {
		s.currentRequest.Style = *patch.Style
	}
}

// CurrentRequest returns a copy of the draft, or nil.
func (s *AnalysisStore) CurrentRequest() *domain.AnalysisRequest {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	if s.currentRequest == nil {
		return nil
	}
	req := *s.currentRequest
	return &req
}

// SetCurrentResult installs a result. The draft is intentionally left in
// place; clearing it is the caller's decision.
func (s *AnalysisStore) SetCurrentResult(result *domain.AnalysisResult) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.currentResult = result
}

// CurrentResult returns a copy of the latest result, or nil.
func (s *AnalysisStore) CurrentResult() *domain.AnalysisResult {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	if s.currentResult == nil {
		return nil
	}
	res := *s.currentResult
	return &res
}

// AddToHistory prepends the result and truncates to the most recent
// entries.
func (s *AnalysisStore) AddToHistory(result domain.AnalysisResult) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.appendHistoryLocked(result)
}

func (s *AnalysisStore) appendHistoryLocked(result domain.AnalysisResult) {
	s.history = append([]domain.AnalysisResult{result}, s.history...)
	if len(s.history) > maxHistoryEntries {
		s.history = s.history[:maxHistoryEntries]
	}
}

// SetHistory replaces the history, still subject to the bound.
func (s *AnalysisStore) SetHistory(history []domain.AnalysisResult) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.history = make([]domain.AnalysisResult, 0, len(history))
	s.history = append(s.history, history...)
	if len(s.history) > maxHistoryEntries {
		s.history = s.history[:maxHistoryEntries]
	}
}

// History returns a copy of the bounded result history, newest first.
func (s *AnalysisStore) History() []domain.AnalysisResult {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	out := make([]domain.AnalysisResult, len(s.history))
	copy(out, s.history)
	return out
}

// BeginProcessing flags the pipeline as running, records the cancel
// function for the in-flight run so an abandoning caller can stop it,
// and returns the run's generation token. Installation and teardown
// require the token, so a run that has been cleared out from under
// cannot touch a later run's state. Returns false when a run is already
// in flight.
func (s *AnalysisStore) BeginProcessing(cancel context.CancelFunc) (uint64, bool) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	if s.isProcessing {
		return 0, false
	}
	s.generation++
	s.isProcessing = true
	s.processingStep = 0
	s.cancel = cancel
	return s.generation, true
}

// SetProcessingStep advances the pipeline progress indicator.
func (s *AnalysisStore) SetProcessingStep(step int) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.processingStep = step
}

// EndProcessing clears the processing flags for the given run. A stale
// token is a no-op: the run was already cleared or superseded.
func (s *AnalysisStore) EndProcessing(gen uint64) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	if gen != s.generation {
		return
	}
	s.isProcessing = false
	s.processingStep = 0
	s.cancel = nil
}

// CompleteRun atomically installs the result and appends it to history
// for the run identified by gen, clearing the processing flags. Returns
// false without mutating anything when the run was cleared or superseded
// after its final step.
func (s *AnalysisStore) CompleteRun(gen uint64, result domain.AnalysisResult) bool {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	if gen != s.generation || !s.isProcessing {
		return false
	}
	res := result
	s.currentResult = &res
	s.appendHistoryLocked(result)
	s.isProcessing = false
	s.processingStep = 0
	s.cancel = nil
	return true
}

// Processing reports the running flag and current step.
func (s *AnalysisStore) Processing() (bool, int) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	return s.isProcessing, s.processingStep
}

// ClearCurrent resets draft, result, and processing state. An in-flight
// pipeline run is cancelled and its generation token invalidated, so
// nothing mutates the slot after the consuming screen has gone away.
func (s *AnalysisStore) ClearCurrent() {
	s.base.mu.Lock()
	cancel := s.cancel
	s.generation++
	s.currentRequest = nil
	s.currentResult = nil
	s.isProcessing = false
	s.processingStep = 0
	s.cancel = nil
	s.base.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Reset clears everything including history.
func (s *AnalysisStore) Reset() {
	s.ClearCurrent()

	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.history = nil
}
