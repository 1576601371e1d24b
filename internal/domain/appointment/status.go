package appointment

import "github.com/gabrielcaixeta01/barber-agenda/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusActive, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ===============================
// Transition rules
// ===============================

// CanCancel: active -> cancelled. Cancelling an already-cancelled
// appointment is an idempotent no-op. Nothing leaves completed.
func CanCancel(current Status) error {
	if current == StatusCompleted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanReactivate: cancelled -> active. Reactivating an already-active
// appointment is an idempotent no-op.
func CanReactivate(current Status) error {
	if current == StatusCompleted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete: only active appointments can be completed.
func CanComplete(current Status) error {
	if current != StatusActive {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus is forced on every created appointment, whether it
// comes from the public flow or from the admin walk-in form.
func InitialStatus() Status {
	return StatusActive
}
