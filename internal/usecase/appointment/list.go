package appointment

import (
	"context"

	domain "github.com/gabrielcaixeta01/barber-agenda/internal/domain/appointment"
	"github.com/gabrielcaixeta01/barber-agenda/internal/dto"
	"github.com/gabrielcaixeta01/barber-agenda/internal/httperr"
	"github.com/gabrielcaixeta01/barber-agenda/internal/models"
	"github.com/gabrielcaixeta01/barber-agenda/internal/timezone"
	"github.com/gabrielcaixeta01/barber-agenda/internal/validators"
)

type ListAppointmentsInput struct {
	// View is "upcoming" (default), "history" or "all".
	View     string
	Date     string
	Status   string
	BarberID string
}

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]dto.AppointmentListDTO, error) {

	view := in.View
	switch view {
	case "", "upcoming":
		view = "upcoming"
	case "history":
	case "all":
		view = ""
	default:
		return nil, httperr.ErrBusiness("invalid_view")
	}

	date := validators.OptionalString(in.Date)
	if date != "" {
		var err error
		if date, err = validators.MustDate(date, "date"); err != nil {
			return nil, err
		}
	}

	status := validators.OptionalString(in.Status)
	if status != "" && !domain.IsValidStatus(status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	appointments, err := uc.repo.ListAppointments(ctx, domain.ListFilter{
		View:     view,
		Date:     date,
		Status:   status,
		BarberID: validators.OptionalString(in.BarberID),
		Today:    timezone.TodayISO(),
	})
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}

func toListDTOs(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, toListDTO(ap))
	}
	return out
}

func toListDTO(ap models.Appointment) dto.AppointmentListDTO {
	row := dto.AppointmentListDTO{
		ID:              ap.ID,
		AppointmentDate: ap.AppointmentDate,
		AppointmentTime: ap.AppointmentTime,
		Status:          ap.Status,
		ClientName:      ap.ClientName,
		ClientPhone:     ap.ClientPhone,
	}

	if ap.Barber != nil && ap.Barber.ID != "" {
		row.Barber = &dto.EntityRef{
			ID:   ap.Barber.ID,
			Name: ap.Barber.Name,
		}
	}
	if ap.Service.ID != "" {
		row.Service = &dto.ServiceRef{
			ID:              ap.Service.ID,
			Name:            ap.Service.Name,
			DurationMinutes: ap.Service.DurationMinutes,
			PriceCents:      ap.Service.PriceCents,
		}
	}

	return row
}
