package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BarberSchedule is one working window of a barber on a weekday
// (Sunday = 0). More than one row per barber per day is allowed,
// e.g. split morning/afternoon shifts. Times are "HH:MM".
type BarberSchedule struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	BarberID string `gorm:"type:uuid;index;not null" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber"`

	DayOfWeek int    `gorm:"not null" json:"day_of_week"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *BarberSchedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (BarberSchedule) TableName() string {
	return "barber_schedules"
}
