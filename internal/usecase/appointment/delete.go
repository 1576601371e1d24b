package appointment

import (
	"context"

	"github.com/gabrielcaixeta01/barber-agenda/internal/audit"
	domain "github.com/gabrielcaixeta01/barber-agenda/internal/domain/appointment"
)

// DeleteAppointment is a hard delete, reachable from any status. There
// is no soft-delete trail beyond the audit entry.
type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	adminID *string,
	appointmentID string,
) error {

	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  adminID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
