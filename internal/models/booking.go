package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	TherapistID string    `gorm:"type:uuid;not null;index" json:"therapist_id"`
	Therapist   Therapist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"therapist"`

	// SessionDate is a calendar date ("2006-01-02"), StartTime a slot ("15:04").
	SessionDate string `gorm:"size:10;not null;index" json:"session_date"`
	StartTime   string `gorm:"size:5;not null" json:"start_time"`
	DurationMin int    `gorm:"default:60" json:"duration_min"`

	Amount float64 `json:"amount"`
	Status string  `gorm:"size:20;default:'confirmed'" json:"status"`

	MeetingLink string     `gorm:"size:255" json:"meeting_link"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
