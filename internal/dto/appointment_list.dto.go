package dto

// EntityRef is the joined barber/service shape used by listings.
type EntityRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ServiceRef struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	PriceCents      int    `json:"price_cents"`
}

type AppointmentListDTO struct {
	ID              string      `json:"id"`
	AppointmentDate string      `json:"appointment_date"`
	AppointmentTime string      `json:"appointment_time"`
	Status          string      `json:"status"`
	ClientName      string      `json:"client_name"`
	ClientPhone     string      `json:"client_phone"`
	Barber          *EntityRef  `json:"barber"`
	Service         *ServiceRef `json:"service"`
}

type ServiceSummaryDTO struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type WeekAgendaDTO struct {
	WeekStart         string               `json:"week_start"`
	WeekEnd           string               `json:"week_end"`
	TotalAppointments int                  `json:"total_appointments"`
	Appointments      []AppointmentListDTO `json:"appointments"`
	ServicesSummary   []ServiceSummaryDTO  `json:"services_summary"`
}

type AdminStatsDTO struct {
	AppointmentsToday int64 `json:"appointments_today"`
	AppointmentsWeek  int64 `json:"appointments_week"`
	ActiveBarbers     int64 `json:"active_barbers"`
}
