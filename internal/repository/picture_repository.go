package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sharemypics/internal/model"
)

// PictureFilter narrows List to pictures in a given album or added by a
// given user. Nil fields match everything.
type PictureFilter struct {
	InAlbum *uuid.UUID
	AddedBy *uuid.UUID
}

// PictureRepository defines picture persistence operations.
type PictureRepository interface {
	Create(ctx context.Context, picture *model.Picture) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Picture, error)
	List(ctx context.Context, filter PictureFilter) ([]model.Picture, error)
	Update(ctx context.Context, picture *model.Picture) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type pictureRepository struct {
	db *gorm.DB
}

// NewPictureRepository creates a new picture repository.
func NewPictureRepository(db *gorm.DB) PictureRepository {
	return &pictureRepository{db: db}
}

func (r *pictureRepository) Create(ctx context.Context, picture *model.Picture) error {
	return r.db.WithContext(ctx).Create(picture).Error
}

func (r *pictureRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Picture, error) {
	var picture model.Picture
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&picture).Error; err != nil {
		return nil, err
	}
	return &picture, nil
}

// List returns matching pictures sorted by url.
func (r *pictureRepository) List(ctx context.Context, filter PictureFilter) ([]model.Picture, error) {
	query := r.db.WithContext(ctx).Order("url")
	if filter.InAlbum != nil {
		query = query.Where("in_album = ?", *filter.InAlbum)
	}
	if filter.AddedBy != nil {
		query = query.Where("added_by = ?", *filter.AddedBy)
	}
	pictures := make([]model.Picture, 0)
	if err := query.Find(&pictures).Error; err != nil {
		return nil, err
	}
	return pictures, nil
}

// Update overwrites the mutable columns, treating a vanished row as not found.
func (r *pictureRepository) Update(ctx context.Context, picture *model.Picture) error {
	res := r.db.WithContext(ctx).Model(&model.Picture{}).
		Where("id = ?", picture.ID).
		Select("in_album", "url", "added_by", "location_longitude", "location_latitude").
		Updates(picture)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *pictureRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Picture{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
