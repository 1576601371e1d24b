package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/gabrielcaixeta01/barber-agenda/internal/domain/appointment"
	"github.com/gabrielcaixeta01/barber-agenda/internal/httperr"
	"github.com/gabrielcaixeta01/barber-agenda/internal/models"
	"github.com/gabrielcaixeta01/barber-agenda/internal/validators"
)

// 2025-03-10 is a Monday, day_of_week 1.
const monday = "2025-03-10"

func TestGetAvailability_InvalidInput(t *testing.T) {
	uc := NewGetAvailability(newFakeRepo())

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: "10/03/2025"})
	var fe *validators.FieldError
	assert.ErrorAs(t, err, &fe)

	_, err = uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:     monday,
		BarberID: "missing",
	})
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
}

func TestGetAvailability_InactiveBarberHasNoSlots(t *testing.T) {
	repo := newFakeRepo()
	repo.barbers["b-1"] = &models.Barber{ID: "b-1", Active: false}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:     monday,
		BarberID: "b-1",
	})
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailability_ScheduleWindow(t *testing.T) {
	repo := newFakeRepo()
	repo.barbers["b-1"] = &models.Barber{ID: "b-1", Active: true}
	repo.schedules = []models.BarberSchedule{
		{BarberID: "b-1", DayOfWeek: 1, StartTime: "09:00", EndTime: "11:00"},
	}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:     monday,
		BarberID: "b-1",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slots,
		"slot must end within the window")
}

func TestGetAvailability_BookedSlotsExcluded(t *testing.T) {
	repo := newFakeRepo()
	b1 := "b-1"
	repo.barbers[b1] = &models.Barber{ID: b1, Active: true}
	repo.schedules = []models.BarberSchedule{
		{BarberID: b1, DayOfWeek: 1, StartTime: "09:00", EndTime: "11:00"},
	}
	repo.appointments["ap-1"] = &models.Appointment{
		ID: "ap-1", BarberID: &b1,
		AppointmentDate: monday, AppointmentTime: "09:30:00",
		Status: "active",
	}
	repo.appointments["ap-2"] = &models.Appointment{
		ID: "ap-2", BarberID: &b1,
		AppointmentDate: monday, AppointmentTime: "10:00:00",
		Status: "cancelled",
	}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		Date:     monday,
		BarberID: b1,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "10:30"}, slots,
		"active booking blocks its slot, cancelled booking frees it")
}

func TestGetAvailability_AnyBarber(t *testing.T) {
	repo := newFakeRepo()
	b1, b2 := "b-1", "b-2"
	repo.barbers[b1] = &models.Barber{ID: b1, Active: true}
	repo.barbers[b2] = &models.Barber{ID: b2, Active: true}
	repo.schedules = []models.BarberSchedule{
		{BarberID: b1, DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00"},
		{BarberID: b2, DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00"},
	}
	// Both chairs taken at 09:00; only b-1 taken at 09:30.
	repo.appointments["ap-1"] = &models.Appointment{
		ID: "ap-1", BarberID: &b1,
		AppointmentDate: monday, AppointmentTime: "09:00:00", Status: "active",
	}
	repo.appointments["ap-2"] = &models.Appointment{
		ID: "ap-2", BarberID: &b2,
		AppointmentDate: monday, AppointmentTime: "09:00:00", Status: "active",
	}
	repo.appointments["ap-3"] = &models.Appointment{
		ID: "ap-3", BarberID: &b1,
		AppointmentDate: monday, AppointmentTime: "09:30:00", Status: "active",
	}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: monday})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:30"}, slots,
		"a slot stays open while any active barber is free")
}

func TestGetAvailability_InactiveBarberScheduleIgnored(t *testing.T) {
	repo := newFakeRepo()
	repo.barbers["b-1"] = &models.Barber{ID: "b-1", Active: true}
	repo.barbers["b-2"] = &models.Barber{ID: "b-2", Active: false}
	repo.schedules = []models.BarberSchedule{
		{BarberID: "b-1", DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00"},
		{BarberID: "b-2", DayOfWeek: 1, StartTime: "14:00", EndTime: "18:00"},
	}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: monday})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30"}, slots)
}

func TestGetAvailability_StaticFallback(t *testing.T) {
	repo := newFakeRepo()
	repo.barbers["b-1"] = &models.Barber{ID: "b-1", Active: true}
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{Date: monday})
	require.NoError(t, err)

	require.Len(t, slots, 21, "09:00 through 19:00 inclusive at 30min")
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "19:00", slots[len(slots)-1])
}
