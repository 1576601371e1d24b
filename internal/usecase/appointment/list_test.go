package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielcaixeta01/barber-agenda/internal/httperr"
	"github.com/gabrielcaixeta01/barber-agenda/internal/models"
)

func TestListAppointments_ViewMapping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "upcoming"},
		{in: "upcoming", want: "upcoming"},
		{in: "history", want: "history"},
		{in: "all", want: ""},
	}

	for _, tt := range tests {
		repo := newFakeRepo()
		uc := NewListAppointments(repo)

		_, err := uc.Execute(context.Background(), ListAppointmentsInput{View: tt.in})
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, repo.lastFilter.View, "view %q", tt.in)
		assert.NotEmpty(t, repo.lastFilter.Today)
	}
}

func TestListAppointments_RejectsBadFilters(t *testing.T) {
	uc := NewListAppointments(newFakeRepo())

	_, err := uc.Execute(context.Background(), ListAppointmentsInput{View: "tomorrow"})
	assert.True(t, httperr.IsBusiness(err, "invalid_view"))

	_, err = uc.Execute(context.Background(), ListAppointmentsInput{Status: "pending"})
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	_, err = uc.Execute(context.Background(), ListAppointmentsInput{Date: "03-10"})
	assert.Error(t, err)
}

func TestListAppointments_DTOShape(t *testing.T) {
	repo := newFakeRepo()
	b1 := "b-1"
	repo.listResult = []models.Appointment{
		{
			ID:              "ap-1",
			BarberID:        &b1,
			Barber:          &models.Barber{ID: b1, Name: "Carlos"},
			Service:         models.Service{ID: "svc-1", Name: "Corte", DurationMinutes: 30, PriceCents: 3500},
			AppointmentDate: "2025-03-10",
			AppointmentTime: "14:30:00",
			Status:          "active",
			ClientName:      "João",
		},
		{
			ID:              "ap-2",
			Service:         models.Service{ID: "svc-1", Name: "Corte"},
			AppointmentDate: "2025-03-11",
			AppointmentTime: "09:00:00",
			Status:          "active",
			ClientName:      "Pedro",
		},
	}
	uc := NewListAppointments(repo)

	rows, err := uc.Execute(context.Background(), ListAppointmentsInput{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].Barber)
	assert.Equal(t, "Carlos", rows[0].Barber.Name)
	require.NotNil(t, rows[0].Service)
	assert.Equal(t, 3500, rows[0].Service.PriceCents)

	assert.Nil(t, rows[1].Barber, "unassigned appointment has no barber ref")
}
