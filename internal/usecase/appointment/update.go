package appointment

import (
	"context"

	"github.com/gabrielcaixeta01/barber-agenda/internal/audit"
	domain "github.com/gabrielcaixeta01/barber-agenda/internal/domain/appointment"
	"github.com/gabrielcaixeta01/barber-agenda/internal/httperr"
	"github.com/gabrielcaixeta01/barber-agenda/internal/models"
	"github.com/gabrielcaixeta01/barber-agenda/internal/validators"
)

type UpdateAppointmentInput struct {
	ID string

	Date      string
	Time      string
	ServiceID string
	// BarberID empty means "to be assigned".
	BarberID string

	AdminID *string
}

// UpdateAppointment overwrites date, time, service and barber. Status
// is not touched here; lifecycle changes go through their own actions.
type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	date, err := validators.MustDate(in.Date, "appointment_date")
	if err != nil {
		return nil, err
	}
	timeHM, err := validators.MustTime(in.Time, "appointment_time")
	if err != nil {
		return nil, err
	}
	serviceID, err := validators.MustString(in.ServiceID, "service_id")
	if err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	var barberID *string
	ap.Barber = nil
	if b := validators.OptionalString(in.BarberID); b != "" {
		barber, err := uc.repo.GetBarber(ctx, b)
		if err != nil {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		barberID = &barber.ID
		ap.Barber = barber
	}

	ap.AppointmentDate = date
	ap.AppointmentTime = timeHM + ":00"
	ap.ServiceID = service.ID
	ap.Service = *service
	ap.BarberID = barberID

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  in.AdminID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
