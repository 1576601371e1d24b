package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/gabrielcaixeta01/barber-agenda/internal/domain/appointment"
	"github.com/gabrielcaixeta01/barber-agenda/internal/httperr"
	"github.com/gabrielcaixeta01/barber-agenda/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	id string,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) ListActiveBarbers(
	ctx context.Context,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

// --------------------------------------------------
// Appointment (lifecycle)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service").
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id string,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Appointment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("appointment_not_found")
	}
	return nil
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Service")

	switch filter.View {
	case "upcoming":
		q = q.Where("appointment_date >= ?", filter.Today).
			Order("appointment_date ASC")
		if filter.Status == "" {
			q = q.Where("status <> ?", string(domain.StatusCancelled))
		}
	case "history":
		q = q.Where("appointment_date < ?", filter.Today).
			Order("appointment_date DESC")
	default:
		q = q.Order("appointment_date ASC")
	}

	if filter.Date != "" {
		q = q.Where("appointment_date = ?", filter.Date)
	}
	if filter.DateFrom != "" {
		q = q.Where("appointment_date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		q = q.Where("appointment_date <= ?", filter.DateTo)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.BarberID != "" {
		q = q.Where("barber_id = ?", filter.BarberID)
	}

	var aps []models.Appointment
	if err := q.
		Order("appointment_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) CountAppointments(
	ctx context.Context,
	dateFrom string,
	dateTo string,
	status string,
) (int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("appointment_date >= ? AND appointment_date <= ?", dateFrom, dateTo)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AppointmentGormRepository) CountActiveBarbers(
	ctx context.Context,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Barber{}).
		Where("active = ?", true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListSchedulesForDay(
	ctx context.Context,
	dayOfWeek int,
	barberID string,
) ([]models.BarberSchedule, error) {

	q := r.db.WithContext(ctx).
		Where("day_of_week = ?", dayOfWeek)
	if barberID != "" {
		q = q.Where("barber_id = ?", barberID)
	}

	var schedules []models.BarberSchedule
	if err := q.
		Order("start_time ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *AppointmentGormRepository) ListBookedAppointments(
	ctx context.Context,
	date string,
	barberID string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Select("id", "barber_id", "appointment_time", "status").
		Where(
			"appointment_date = ? AND status <> ?",
			date, string(domain.StatusCancelled),
		)
	if barberID != "" {
		q = q.Where("barber_id = ?", barberID)
	}

	var aps []models.Appointment
	if err := q.
		Order("appointment_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
