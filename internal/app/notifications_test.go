package app

import (
	"testing"
	"time"

	"github.com/styleadvisor/session-service/internal/domain"
)

// manualTimer collects scheduled dismissals so tests can fire them
// deterministically.
type manualTimer struct {
	durations []time.Duration
	fns       []func()
}

func (m *manualTimer) after(d time.Duration, fn func()) {
	m.durations = append(m.durations, d)
	m.fns = append(m.fns, fn)
}

func (m *manualTimer) fireAll() {
	for _, fn := range m.fns {
		fn()
	}
}

func newTestNotificationStore() (*NotificationStore, *manualTimer) {
	s := NewNotificationStore()
	timer := &manualTimer{}
	s.afterFunc = timer.after
	return s, timer
}

func TestShowToastSchedulesDefaultDismissal(t *testing.T) {
	s, timer := newTestNotificationStore()

	id := s.ShowToast(domain.ToastSuccess, "Saved", 0)

	if id == "" {
		t.Fatal("expected a generated toast id")
	}
	if len(timer.durations) != 1 || timer.durations[0] != defaultToastDuration {
		t.Fatalf("expected default dismissal window %v, got %v", defaultToastDuration, timer.durations)
	}

	timer.fireAll()
	if got := len(s.Toasts()); got != 0 {
		t.Fatalf("expected toast dismissed after timer fired, got %d", got)
	}
}

func TestShowToastHonorsCustomDuration(t *testing.T) {
	s, timer := newTestNotificationStore()

	s.ShowToast(domain.ToastInfo, "Heads up", 5000)

	if timer.durations[0] != 5*time.Second {
		t.Fatalf("expected 5s dismissal window, got %v", timer.durations[0])
	}
}

func TestLateTimerAfterManualHideIsNoOp(t *testing.T) {
	s, timer := newTestNotificationStore()

	id := s.ShowToast(domain.ToastError, "Something failed", 0)
	s.HideToast(id)

	// The pending timer fires after the toast is already gone.
	timer.fireAll()

	if got := len(s.Toasts()); got != 0 {
		t.Fatalf("expected no toasts, got %d", got)
	}
}

func TestToastsKeepDisplayOrder(t *testing.T) {
	s, _ := newTestNotificationStore()

	s.ShowToast(domain.ToastInfo, "first", 0)
	s.ShowToast(domain.ToastInfo, "second", 0)

	toasts := s.Toasts()
	if len(toasts) != 2 || toasts[0].Message != "first" || toasts[1].Message != "second" {
		t.Fatalf("expected display order preserved, got %+v", toasts)
	}
}

func TestShowModalReplacesActiveModal(t *testing.T) {
	s, _ := newTestNotificationStore()

	s.ShowModal(domain.ModalPremiumRequired, "Go Premium", "Unlock everything", nil)
	id := s.ShowModal(domain.ModalLimitReached, "Limit reached", "Come back tomorrow", map[string]interface{}{"feature": "analysis"})

	modal := s.ActiveModal()
	if modal == nil {
		t.Fatal("expected an active modal")
	}
	if modal.ID != id || modal.Type != domain.ModalLimitReached {
		t.Fatalf("expected the replacement modal to be active, got %+v", modal)
	}

	s.HideModal()
	if s.ActiveModal() != nil {
		t.Fatal("expected modal slot cleared")
	}
}
