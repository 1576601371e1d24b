package appointment

import (
	"context"

	"github.com/gabrielcaixeta01/barber-agenda/internal/audit"
	domain "github.com/gabrielcaixeta01/barber-agenda/internal/domain/appointment"
	"github.com/gabrielcaixeta01/barber-agenda/internal/models"
	"github.com/gabrielcaixeta01/barber-agenda/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	adminID *string,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	already := domain.Status(ap.Status) == domain.StatusCancelled

	if err := domain.Cancel(ap, timezone.Now()); err != nil {
		return nil, err
	}

	if already {
		return ap, nil
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  adminID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
