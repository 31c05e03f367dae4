package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Album groups pictures and is shared by its contributors. Every album has
// at least one contributor: its creator is inserted as the initial one in
// the same transaction that creates the album.
type Album struct {
	ID        uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Title     string     `json:"title" gorm:"size:30;not null;index"`
	Location  *string    `json:"location,omitempty" gorm:"size:255"`
	CoverPic  *uuid.UUID `json:"coverPic,omitempty" gorm:"type:char(36)"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	// Contributor user ids, loaded from album_contributors by the repository.
	Contributors []uuid.UUID `json:"contributors" gorm:"-"`
}

// BeforeCreate sets the UUID before creating the record.
func (a *Album) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// HasContributor reports whether the given user id is in the contributor set.
func (a *Album) HasContributor(userID uuid.UUID) bool {
	for _, id := range a.Contributors {
		if id == userID {
			return true
		}
	}
	return false
}

// AlbumContributor is a membership row granting a user write access to an album.
type AlbumContributor struct {
	AlbumID uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID  uuid.UUID `gorm:"type:char(36);primaryKey;index"`
}

// TableName overrides the GORM default.
func (AlbumContributor) TableName() string { return "album_contributors" }
