package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	// BarberID is nullable: an appointment may be created without a
	// barber ("to be assigned") and assigned later by the admin.
	BarberID *string `gorm:"type:uuid;index" json:"barber_id"`
	Barber   *Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber,omitempty"`

	ServiceID string  `gorm:"type:uuid;not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	// AppointmentDate is "YYYY-MM-DD"; AppointmentTime is stored with
	// seconds ("HH:MM:SS").
	AppointmentDate string `gorm:"type:date;index;not null" json:"appointment_date"`
	AppointmentTime string `gorm:"type:time;not null" json:"appointment_time"`

	Status string `gorm:"size:20;default:'active'" json:"status"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20;not null" json:"client_phone"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
