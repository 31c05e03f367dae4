package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Point is a longitude/latitude pair recording where a picture was taken.
type Point struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Picture belongs to exactly one album. Only the picture's URL is stored;
// binary storage is out of scope.
type Picture struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	InAlbum   uuid.UUID `json:"inAlbum" gorm:"type:char(36);not null;index"`
	URL       string    `json:"url" gorm:"size:2048;not null"`
	AddedBy   uuid.UUID `json:"addedBy" gorm:"type:char(36);not null;index"`
	Location  *Point    `json:"location,omitempty" gorm:"embedded;embeddedPrefix:location_"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate sets the UUID before creating the record.
func (p *Picture) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
