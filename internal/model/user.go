package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account. The password is stored only as a
// bcrypt hash and is never serialized or logged.
type User struct {
	ID             uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Username       string     `json:"username" gorm:"size:255;not null;uniqueIndex"`
	PasswordHash   string     `json:"-" gorm:"size:255;not null"`
	Name           string     `json:"name" gorm:"size:30;not null"`
	Surname        string     `json:"surname" gorm:"size:255;not null"`
	ProfilePicture *uuid.UUID `json:"profilePicture,omitempty" gorm:"type:char(36)"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// BeforeCreate sets the UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
