package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Therapist struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Name           string `gorm:"size:100;not null" json:"name"`
	Specialization string `gorm:"size:100" json:"specialization"`
	Qualifications string `gorm:"size:255" json:"qualifications"`
	Bio            string `gorm:"size:1000" json:"bio"`

	ApprovalStatus string `gorm:"size:20;default:'pending'" json:"approval_status"`
	Active         bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Therapist) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
