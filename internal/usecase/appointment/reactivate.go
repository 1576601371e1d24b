package appointment

import (
	"context"

	"github.com/gabrielcaixeta01/barber-agenda/internal/audit"
	domain "github.com/gabrielcaixeta01/barber-agenda/internal/domain/appointment"
	"github.com/gabrielcaixeta01/barber-agenda/internal/models"
)

type ReactivateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReactivateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ReactivateAppointment {
	return &ReactivateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ReactivateAppointment) Execute(
	ctx context.Context,
	adminID *string,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	already := domain.Status(ap.Status) == domain.StatusActive

	if err := domain.Reactivate(ap); err != nil {
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
		Action:   "appointment_reactivated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
