package appointment

import (
	"time"

	"github.com/gabrielcaixeta01/barber-agenda/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}
	if Status(ap.Status) == StatusCancelled {
		return nil
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Reactivate(ap *models.Appointment) error {
	if err := CanReactivate(Status(ap.Status)); err != nil {
		return err
	}
	if Status(ap.Status) == StatusActive {
		return nil
	}

	ap.Status = string(StatusActive)
	ap.CancelledAt = nil
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}
