package appointment

import (
	"context"

	"github.com/gabrielcaixeta01/barber-agenda/internal/audit"
	domain "github.com/gabrielcaixeta01/barber-agenda/internal/domain/appointment"
	"github.com/gabrielcaixeta01/barber-agenda/internal/httperr"
	"github.com/gabrielcaixeta01/barber-agenda/internal/models"
	"github.com/gabrielcaixeta01/barber-agenda/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	// BarberID may be empty: the appointment is created unassigned.
	BarberID  string
	ServiceID string

	Date string
	Time string

	ClientName  string
	ClientPhone string

	// WalkIn marks admin-entered appointments. The public flow only
	// books active barbers; a walk-in may be assigned to any barber.
	WalkIn  bool
	AdminID *string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	serviceID, err := validators.MustString(in.ServiceID, "service_id")
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
	clientName, err := validators.MustString(in.ClientName, "client_name")
	if err != nil {
		return nil, err
	}
	clientPhone, err := validators.MustString(in.ClientPhone, "client_phone")
	if err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, serviceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	var barberID *string
	if b := validators.OptionalString(in.BarberID); b != "" {
		barber, err := uc.repo.GetBarber(ctx, b)
		if err != nil {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		if !barber.Active && !in.WalkIn {
			return nil, httperr.ErrBusiness("barber_inactive")
		}
		barberID = &barber.ID
	}

	ap := &models.Appointment{
		BarberID:        barberID,
		ServiceID:       service.ID,
		AppointmentDate: date,
		AppointmentTime: timeHM + ":00",
		Status:          string(domain.InitialStatus()),
		ClientName:      clientName,
		ClientPhone:     clientPhone,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AdminID:  in.AdminID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"date":    date,
			"time":    timeHM,
			"walk_in": in.WalkIn,
		},
	})

	return ap, nil
}
