/**
 * @description
 * This file implements the presentation-signal container: active toasts
 * with timed auto-dismissal and a single-slot modal. Nothing here is
 * business logic or persisted; other stores and workflows trigger these
 * signals and presentation layers consume them.
 */
package app

import (
	"time"

	"github.com/google/uuid"

	"github.com/styleadvisor/session-service/internal/domain"
)

// defaultToastDuration applies when a toast does not carry its own.
const defaultToastDuration = 3000 * time.Millisecond

// NotificationStore holds the ephemeral UI signals for a single user.
type NotificationStore struct {
	base        baseStore
	toasts      []domain.Toast
	activeModal *domain.Modal
	afterFunc   func(d time.Duration, fn func()) // swapped in tests
}

// NewNotificationStore creates a notification container.
func NewNotificationStore() *NotificationStore {
	return &NotificationStore{
		base: newBaseStore("", nil),
		afterFunc: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
}

// ShowToast assigns a generated id, appends the toast, and schedules its
// auto-dismissal. The returned id can be used for early dismissal. A
// pending timer firing after the toast was already removed is a
// redundant no-op filter, so timers are never cancelled explicitly.
func (s *NotificationStore) ShowToast(toastType, message string, durationMs int) string {
	toast := domain.Toast{
		ID:         uuid.New().String(),
		Type:       toastType,
		Message:    message,
		DurationMs: durationMs,
	}

	s.base.mu.Lock()
	s.toasts = append(s.toasts, toast)
	s.base.mu.Unlock()

	duration := defaultToastDuration
	if durationMs > 0 {
		duration = time.Duration(durationMs) * time.Millisecond
	}
	s.afterFunc(duration, func() {
		s.HideToast(toast.ID)
	})

	return toast.ID
}

// HideToast removes a toast early; absent ids are no-ops.
func (s *NotificationStore) HideToast(id string) {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	kept := s.toasts[:0]
	for _, t := range s.toasts {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.toasts = kept
}

// ClearToasts removes every active toast.
func (s *NotificationStore) ClearToasts() {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.toasts = nil
}

// Toasts returns a copy of the active toasts in display order.
func (s *NotificationStore) Toasts() []domain.Toast {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	out := make([]domain.Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

// ShowModal installs a modal, replacing any active one.
func (s *NotificationStore) ShowModal(modalType, title, message string, data map[string]interface{}) string {
	modal := domain.Modal{
		ID:      uuid.New().String(),
		Type:    modalType,
		Title:   title,
		Message: message,
		Data:    data,
	}

	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.activeModal = &modal
	return modal.ID
}

// HideModal clears the modal slot.
func (s *NotificationStore) HideModal() {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	s.activeModal = nil
}

// ActiveModal returns a copy of the active modal, or nil.
func (s *NotificationStore) ActiveModal() *domain.Modal {
	s.base.mu.Lock()
	defer s.base.mu.Unlock()

	if s.activeModal == nil {
		return nil
	}
	m := *s.activeModal
	return &m
}
