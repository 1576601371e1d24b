package appointment

import (
	"context"
	"fmt"

	domain "github.com/gabrielcaixeta01/barber-agenda/internal/domain/appointment"
	"github.com/gabrielcaixeta01/barber-agenda/internal/httperr"
	"github.com/gabrielcaixeta01/barber-agenda/internal/models"
)

// fakeRepo is an in-memory domain.Repository for the use case tests.
type fakeRepo struct {
	services     map[string]*models.Service
	barbers      map[string]*models.Barber
	appointments map[string]*models.Appointment
	schedules    []models.BarberSchedule

	listResult []models.Appointment
	lastFilter domain.ListFilter

	updates int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services:     make(map[string]*models.Service),
		barbers:      make(map[string]*models.Barber),
		appointments: make(map[string]*models.Appointment),
	}
}

var _ domain.Repository = (*fakeRepo)(nil)

func (f *fakeRepo) GetService(_ context.Context, id string) (*models.Service, error) {
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, httperr.ErrBusiness("service_not_found")
}

func (f *fakeRepo) GetBarber(_ context.Context, id string) (*models.Barber, error) {
	if b, ok := f.barbers[id]; ok {
		return b, nil
	}
	return nil, httperr.ErrBusiness("barber_not_found")
}

func (f *fakeRepo) ListActiveBarbers(_ context.Context) ([]models.Barber, error) {
	var out []models.Barber
	for _, b := range f.barbers {
		if b.Active {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if ap.ID == "" {
		ap.ID = fmt.Sprintf("ap-%d", len(f.appointments)+1)
	}
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id string) (*models.Appointment, error) {
	if ap, ok := f.appointments[id]; ok {
		return ap, nil
	}
	return nil, httperr.ErrBusiness("appointment_not_found")
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.updates++
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, id string) error {
	if _, ok := f.appointments[id]; !ok {
		return httperr.ErrBusiness("appointment_not_found")
	}
	delete(f.appointments, id)
	return nil
}

func (f *fakeRepo) ListAppointments(_ context.Context, filter domain.ListFilter) ([]models.Appointment, error) {
	f.lastFilter = filter
	return f.listResult, nil
}

func (f *fakeRepo) CountAppointments(_ context.Context, dateFrom, dateTo, status string) (int64, error) {
	var n int64
	for _, ap := range f.appointments {
		if ap.AppointmentDate >= dateFrom && ap.AppointmentDate <= dateTo && ap.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) CountActiveBarbers(_ context.Context) (int64, error) {
	var n int64
	for _, b := range f.barbers {
		if b.Active {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) ListSchedulesForDay(_ context.Context, dayOfWeek int, barberID string) ([]models.BarberSchedule, error) {
	var out []models.BarberSchedule
	for _, s := range f.schedules {
		if s.DayOfWeek != dayOfWeek {
			continue
		}
		if barberID != "" && s.BarberID != barberID {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeRepo) ListBookedAppointments(_ context.Context, date, barberID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.AppointmentDate != date || ap.Status == "cancelled" {
			continue
		}
		if barberID != "" && (ap.BarberID == nil || *ap.BarberID != barberID) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}
