package entities

import "time"

// ToastKind is the outcome a toast announces
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast is a transient, auto-dismissing notification
type Toast struct {
	ID        string    `json:"id"`
	Kind      ToastKind `json:"kind"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the toast should no longer be displayed at now
func (t Toast) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
