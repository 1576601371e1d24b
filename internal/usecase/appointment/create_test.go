package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielcaixeta01/barber-agenda/internal/httperr"
	"github.com/gabrielcaixeta01/barber-agenda/internal/models"
	"github.com/gabrielcaixeta01/barber-agenda/internal/validators"
)

func seedCatalog(repo *fakeRepo) {
	repo.services["svc-1"] = &models.Service{
		ID: "svc-1", Name: "Corte", DurationMinutes: 30, PriceCents: 3500,
	}
	repo.barbers["b-1"] = &models.Barber{ID: "b-1", Name: "Carlos", Active: true}
	repo.barbers["b-2"] = &models.Barber{ID: "b-2", Name: "Rafael", Active: false}
}

func validCreateInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		BarberID:    "b-1",
		ServiceID:   "svc-1",
		Date:        "2025-03-10",
		Time:        "14:30",
		ClientName:  "João",
		ClientPhone: "31999990000",
	}
}

func TestCreateAppointment_Success(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)
	uc := NewCreateAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), validCreateInput())
	require.NoError(t, err)

	assert.Equal(t, "active", ap.Status)
	assert.Equal(t, "14:30:00", ap.AppointmentTime, "time stored with seconds")
	assert.Equal(t, "2025-03-10", ap.AppointmentDate)
	require.NotNil(t, ap.BarberID)
	assert.Equal(t, "b-1", *ap.BarberID)
	assert.NotEmpty(t, ap.ID)
}

func TestCreateAppointment_UnassignedBarber(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)
	uc := NewCreateAppointment(repo, nil)

	in := validCreateInput()
	in.BarberID = ""

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Nil(t, ap.BarberID)
}

func TestCreateAppointment_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateAppointmentInput)
		field  string
	}{
		{"missing service", func(in *CreateAppointmentInput) { in.ServiceID = "" }, "service_id"},
		{"bad date", func(in *CreateAppointmentInput) { in.Date = "10/03/2025" }, "appointment_date"},
		{"bad time", func(in *CreateAppointmentInput) { in.Time = "2pm" }, "appointment_time"},
		{"missing name", func(in *CreateAppointmentInput) { in.ClientName = "  " }, "client_name"},
		{"missing phone", func(in *CreateAppointmentInput) { in.ClientPhone = "" }, "client_phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			seedCatalog(repo)
			uc := NewCreateAppointment(repo, nil)

			in := validCreateInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			require.Error(t, err)

			var fe *validators.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
			assert.Empty(t, repo.appointments, "nothing persisted")
		})
	}
}

func TestCreateAppointment_UnknownRefs(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)
	uc := NewCreateAppointment(repo, nil)

	in := validCreateInput()
	in.ServiceID = "svc-missing"
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))

	in = validCreateInput()
	in.BarberID = "b-missing"
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
}

func TestCreateAppointment_InactiveBarber(t *testing.T) {
	repo := newFakeRepo()
	seedCatalog(repo)
	uc := NewCreateAppointment(repo, nil)

	in := validCreateInput()
	in.BarberID = "b-2"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "barber_inactive"),
		"public flow rejects inactive barbers")

	in.WalkIn = true
	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err, "walk-in may use an inactive barber")
	assert.Equal(t, "b-2", *ap.BarberID)
}
