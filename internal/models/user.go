package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser      = "user"
	RoleTherapist = "therapist"
	RoleAdmin     = "admin"
)

type User struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	FullName     string `gorm:"size:100;not null" json:"full_name"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'user'" json:"role"`
	Active       bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
