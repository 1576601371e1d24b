package appointment

import (
	"context"

	"github.com/gabrielcaixeta01/barber-agenda/internal/models"
)

// ListFilter narrows the admin/public appointment listings. All fields
// are optional; Today anchors the upcoming/history views and is always
// set by the use case.
type ListFilter struct {
	// View is "upcoming" (date >= today, cancelled hidden unless a
	// status filter is supplied) or "history" (date < today, newest
	// date first). Empty means no date-range restriction.
	View string

	Date     string
	Status   string
	BarberID string

	// DateFrom/DateTo bound the week grid; inclusive on both ends.
	DateFrom string
	DateTo   string

	Today string
}

type Repository interface {
	// -------- Catalog --------
	GetService(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	GetBarber(
		ctx context.Context,
		id string,
	) (*models.Barber, error)

	ListActiveBarbers(
		ctx context.Context,
	) ([]models.Barber, error)

	// -------- Appointment (lifecycle) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id string,
	) error

	// -------- Listings --------
	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)

	CountAppointments(
		ctx context.Context,
		dateFrom string,
		dateTo string,
		status string,
	) (int64, error)

	CountActiveBarbers(
		ctx context.Context,
	) (int64, error)

	// -------- Availability --------
	ListSchedulesForDay(
		ctx context.Context,
		dayOfWeek int,
		barberID string,
	) ([]models.BarberSchedule, error)

	ListBookedAppointments(
		ctx context.Context,
		date string,
		barberID string,
	) ([]models.Appointment, error)
}
