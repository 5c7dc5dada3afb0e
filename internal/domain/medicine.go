package domain

import (
	"time"

	"github.com/google/uuid"
)

// Medicine is a daily medicine reminder owned by a user.
type Medicine struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string    `gorm:"type:varchar(255);not null;index" json:"user_id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Time       string    `gorm:"type:varchar(5);not null" json:"time"`
	Dosage     string    `gorm:"type:varchar(255)" json:"dosage"`
	TakenToday bool      `gorm:"not null;default:false" json:"taken_today"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Medicine) TableName() string {
	return "medicines"
}

// CreateMedicineRequest is the request body for adding a medicine reminder.
// @Description Request payload for a daily medicine reminder.
type CreateMedicineRequest struct {
	UserID string `json:"user_id" validate:"required,max=255" example:"user-123"`
	Name   string `json:"name" validate:"required,max=255" example:"Vitamin D"`
	// Reminder time of day in 24h HH:MM format
	Time   string `json:"time" validate:"required,clock" example:"08:30"`
	Dosage string `json:"dosage,omitempty" validate:"omitempty,max=255" example:"1000 IU"`
}
