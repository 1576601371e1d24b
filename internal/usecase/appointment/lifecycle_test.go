package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielcaixeta01/barber-agenda/internal/httperr"
	"github.com/gabrielcaixeta01/barber-agenda/internal/models"
)

func seedAppointment(repo *fakeRepo, status string) *models.Appointment {
	ap := &models.Appointment{
		ID:              "ap-1",
		ServiceID:       "svc-1",
		AppointmentDate: "2025-03-10",
		AppointmentTime: "14:30:00",
		Status:          status,
		ClientName:      "João",
		ClientPhone:     "31999990000",
	}
	repo.appointments[ap.ID] = ap
	return ap
}

func TestCancelAppointment(t *testing.T) {
	t.Run("active is cancelled and persisted", func(t *testing.T) {
		repo := newFakeRepo()
		seedAppointment(repo, "active")
		uc := NewCancelAppointment(repo, nil)

		ap, err := uc.Execute(context.Background(), nil, "ap-1")
		require.NoError(t, err)
		assert.Equal(t, "cancelled", ap.Status)
		assert.NotNil(t, ap.CancelledAt)
		assert.Equal(t, 1, repo.updates)
	})

	t.Run("already cancelled skips the write", func(t *testing.T) {
		repo := newFakeRepo()
		when := time.Now()
		seedAppointment(repo, "cancelled").CancelledAt = &when
		uc := NewCancelAppointment(repo, nil)

		ap, err := uc.Execute(context.Background(), nil, "ap-1")
		require.NoError(t, err)
		assert.Equal(t, "cancelled", ap.Status)
		assert.Equal(t, 0, repo.updates)
	})

	t.Run("completed is rejected", func(t *testing.T) {
		repo := newFakeRepo()
		seedAppointment(repo, "completed")
		uc := NewCancelAppointment(repo, nil)

		_, err := uc.Execute(context.Background(), nil, "ap-1")
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewCancelAppointment(repo, nil)

		_, err := uc.Execute(context.Background(), nil, "nope")
		assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	})
}

func TestReactivateAppointment(t *testing.T) {
	t.Run("cancelled returns to active", func(t *testing.T) {
		repo := newFakeRepo()
		when := time.Now()
		seedAppointment(repo, "cancelled").CancelledAt = &when
		uc := NewReactivateAppointment(repo, nil)

		ap, err := uc.Execute(context.Background(), nil, "ap-1")
		require.NoError(t, err)
		assert.Equal(t, "active", ap.Status)
		assert.Nil(t, ap.CancelledAt)
		assert.Equal(t, 1, repo.updates)
	})

	t.Run("already active skips the write", func(t *testing.T) {
		repo := newFakeRepo()
		seedAppointment(repo, "active")
		uc := NewReactivateAppointment(repo, nil)

		ap, err := uc.Execute(context.Background(), nil, "ap-1")
		require.NoError(t, err)
		assert.Equal(t, "active", ap.Status)
		assert.Equal(t, 0, repo.updates)
	})

	t.Run("completed is rejected", func(t *testing.T) {
		repo := newFakeRepo()
		seedAppointment(repo, "completed")
		uc := NewReactivateAppointment(repo, nil)

		_, err := uc.Execute(context.Background(), nil, "ap-1")
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})
}

func TestCompleteAppointment(t *testing.T) {
	t.Run("active is completed", func(t *testing.T) {
		repo := newFakeRepo()
		seedAppointment(repo, "active")
		uc := NewCompleteAppointment(repo, nil)

		ap, err := uc.Execute(context.Background(), nil, "ap-1")
		require.NoError(t, err)
		assert.Equal(t, "completed", ap.Status)
		assert.NotNil(t, ap.CompletedAt)
	})

	t.Run("cancelled cannot be completed", func(t *testing.T) {
		repo := newFakeRepo()
		seedAppointment(repo, "cancelled")
		uc := NewCompleteAppointment(repo, nil)

		_, err := uc.Execute(context.Background(), nil, "ap-1")
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})
}

func TestDeleteAppointment(t *testing.T) {
	t.Run("hard delete from any status", func(t *testing.T) {
		for _, status := range []string{"active", "cancelled", "completed"} {
			repo := newFakeRepo()
			seedAppointment(repo, status)
			uc := NewDeleteAppointment(repo, nil)

			require.NoError(t, uc.Execute(context.Background(), nil, "ap-1"), status)
			assert.Empty(t, repo.appointments)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewDeleteAppointment(repo, nil)

		err := uc.Execute(context.Background(), nil, "nope")
		assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	})
}

func TestUpdateAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.services["svc-1"] = &models.Service{ID: "svc-1", Name: "Corte"}
	repo.services["svc-2"] = &models.Service{ID: "svc-2", Name: "Barba"}
	repo.barbers["b-1"] = &models.Barber{ID: "b-1", Name: "Carlos", Active: true}
	seedAppointment(repo, "active")
	uc := NewUpdateAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:        "ap-1",
		Date:      "2025-03-12",
		Time:      "10:00",
		ServiceID: "svc-2",
		BarberID:  "b-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-12", ap.AppointmentDate)
	assert.Equal(t, "10:00:00", ap.AppointmentTime)
	assert.Equal(t, "svc-2", ap.ServiceID)
	require.NotNil(t, ap.BarberID)
	assert.Equal(t, "b-1", *ap.BarberID)

	// Clearing the barber leaves the appointment unassigned.
	ap, err = uc.Execute(context.Background(), UpdateAppointmentInput{
		ID:        "ap-1",
		Date:      "2025-03-12",
		Time:      "10:00",
		ServiceID: "svc-2",
	})
	require.NoError(t, err)
	assert.Nil(t, ap.BarberID)
}
