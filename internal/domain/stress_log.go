package domain

import (
	"github.com/google/uuid"
)

// SuggestedTags is the fixed set of trigger tags offered by the client.
// The server accepts any string; this list exists for seeding and docs.
var SuggestedTags = []string{"Work", "Relationships", "Health", "Studies", "Finance", "Family", "Other"}

// StressLog is a single immutable stress journal entry. Entries are only
// ever created or bulk-deleted; there is no update or per-row delete.
type StressLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(255);not null;index:idx_stress_logs_user_ts" json:"user_id"`
	Timestamp int64     `gorm:"not null;index:idx_stress_logs_user_ts,sort:desc" json:"timestamp"`
	Date      string    `gorm:"type:varchar(10);not null" json:"date"`
	Mood      int       `gorm:"not null" json:"mood"`
	Tag       *string   `gorm:"type:varchar(255)" json:"tag"`
	Note      *string   `gorm:"type:text" json:"note"`
	SleepHours *float64 `json:"sleep_hours"`
	WorkHours  *float64 `json:"work_hours"`
	HeartRate  *int     `json:"heart_rate"`
}

func (StressLog) TableName() string {
	return "stress_logs"
}

// CreateStressLogRequest is the request body for submitting a stress log.
// @Description Request payload for recording a stress journal entry.
type CreateStressLogRequest struct {
	// Opaque client-supplied identifier grouping entries
	UserID string `json:"user_id" validate:"required,max=255" example:"user-123"`
	// Stress level, nominally 1 (calm) to 10 (very stressed); range not enforced
	Mood int `json:"mood" validate:"required" example:"7"`
	// Optional trigger tag, e.g. "Work" or "Health"
	Tag *string `json:"tag,omitempty" validate:"omitempty,max=255" example:"Work"`
	// Optional free-text note
	Note *string `json:"note,omitempty" example:"deadline week"`
	// Hours slept last night
	SleepHours *float64 `json:"sleep_hours,omitempty" validate:"omitempty,gte=0" example:"6.5"`
	// Hours worked today
	WorkHours *float64 `json:"work_hours,omitempty" validate:"omitempty,gte=0" example:"9"`
	// Optional resting heart rate in bpm
	HeartRate *int `json:"heart_rate,omitempty" validate:"omitempty,gte=0" example:"72"`
}

// SubmitStressLogResponse is the response body for a submitted entry.
// @Description Server-assigned id plus rule-based wellness suggestions.
type SubmitStressLogResponse struct {
	ID          uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Suggestions []string  `json:"suggestions"`
	Message     string    `json:"message" example:"Stress log saved successfully"`
}

// ResetResponse is the response body for the destructive reset endpoint.
type ResetResponse struct {
	Message        string `json:"message" example:"Database reset successfully"`
	DeletedRecords int64  `json:"deletedRecords" example:"42"`
}
