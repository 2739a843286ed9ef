/**
 * @description
 * This file defines the ephemeral presentation signals: toasts and modals.
 * These are consumed by the presentation layer and never persisted.
 */
package domain

// Toast types.
const (
	ToastSuccess = "success"
	ToastError   = "error"
	ToastWarning = "warning"
	ToastInfo    = "info"
)

// Toast is a transient notification with an auto-dismiss duration.
type Toast struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Message    string `json:"message"`
	DurationMs int    `json:"duration_ms,omitempty"`
}

// Modal types.
const (
	ModalLimitReached    = "limit-reached"
	ModalPremiumRequired = "premium-required"
	ModalConfirm         = "confirm"
	ModalCustom          = "custom"
)

// Modal is a blocking presentation signal. Only one modal is active at a
// time; showing a new one replaces the previous.
type Modal struct {
	ID      string                 `json:"id"`
	Type    string                 `json:"type"`
	Title   string                 `json:"title,omitempty"`
	Message string                 `json:"message,omitempty"`
	Data    map[string]interface{} `json:"data,omitempty"`
}
