package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminProfile is one-to-one with an authenticated admin identity.
// It is upserted through the profile form and never deleted by the app.
type AdminProfile struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	DisplayName string `gorm:"size:100;not null" json:"display_name"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *AdminProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
