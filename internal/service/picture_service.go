package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sharemypics/internal/cache"
	apperrors "sharemypics/internal/errors"
	"sharemypics/internal/model"
	"sharemypics/internal/policy"
	"sharemypics/internal/repository"
)

// PicturePatch carries a partial update; nil fields are left untouched.
type PicturePatch struct {
	InAlbum  *uuid.UUID
	URL      *string
	AddedBy  *uuid.UUID
	Location *model.Point
}

// PicturePut carries a full update; an absent location clears it.
type PicturePut struct {
	InAlbum  uuid.UUID
	URL      string
	AddedBy  uuid.UUID
	Location *model.Point
}

// PictureService owns the picture lifecycle. Creating requires contributor
// membership in the target album; updating and deleting are allowed to the
// uploader and to the owning album's contributors.
type PictureService interface {
	Create(ctx context.Context, caller *model.User, inAlbum uuid.UUID, url string, location *model.Point) (*model.Picture, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Picture, error)
	List(ctx context.Context, inAlbum, addedBy string) ([]model.Picture, error)
	Patch(ctx context.Context, caller *model.User, id uuid.UUID, patch PicturePatch) (*model.Picture, error)
	Put(ctx context.Context, caller *model.User, id uuid.UUID, put PicturePut) (*model.Picture, error)
	Delete(ctx context.Context, caller *model.User, id uuid.UUID) error
}

type pictureService struct {
	pictures repository.PictureRepository
	albums   repository.AlbumRepository
	cache    *cache.Client
}

// NewPictureService creates a new picture service.
func NewPictureService(pictures repository.PictureRepository, albums repository.AlbumRepository, cache *cache.Client) PictureService {
	return &pictureService{pictures: pictures, albums: albums, cache: cache}
}

func pictureCacheKey(id uuid.UUID) string {
	return "picture:" + id.String()
}

func (s *pictureService) Create(ctx context.Context, caller *model.User, inAlbum uuid.UUID, url string, location *model.Point) (*model.Picture, error) {
	album, err := s.albums.FindByID(ctx, inAlbum)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("album", inAlbum.String())
		}
		return nil, fmt.Errorf("find album: %w", err)
	}
	if !policy.CanAddPicture(caller, album) {
		return nil, apperrors.ErrForbidden
	}

	picture := &model.Picture{
		ID:       uuid.New(),
		InAlbum:  inAlbum,
		URL:      url,
		AddedBy:  caller.ID,
		Location: location,
	}
	if err := s.pictures.Create(ctx, picture); err != nil {
		return nil, fmt.Errorf("create picture: %w", err)
	}
	return picture, nil
}

func (s *pictureService) Get(ctx context.Context, id uuid.UUID) (*model.Picture, error) {
	if data, _ := s.cache.Get(ctx, pictureCacheKey(id)); data != nil {
		var cached model.Picture
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	picture, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(picture); err == nil {
		_ = s.cache.Set(ctx, pictureCacheKey(id), payload, resourceCacheTTL)
	}
	return picture, nil
}

// List returns pictures sorted by url, optionally narrowed by inAlbum and
// addedBy. Filter values that are not well-formed ids are silently ignored.
func (s *pictureService) List(ctx context.Context, inAlbum, addedBy string) ([]model.Picture, error) {
	var filter repository.PictureFilter
	if id, err := uuid.Parse(inAlbum); err == nil {
		filter.InAlbum = &id
	}
	if id, err := uuid.Parse(addedBy); err == nil {
		filter.AddedBy = &id
	}
	return s.pictures.List(ctx, filter)
}

func (s *pictureService) Patch(ctx context.Context, caller *model.User, id uuid.UUID, patch PicturePatch) (*model.Picture, error) {
	picture, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeWrite(ctx, caller, picture); err != nil {
		return nil, err
	}

	if patch.InAlbum != nil {
		picture.InAlbum = *patch.InAlbum
	}
	if patch.URL != nil {
		picture.URL = *patch.URL
	}
	if patch.AddedBy != nil {
		picture.AddedBy = *patch.AddedBy
	}
	if patch.Location != nil {
		picture.Location = patch.Location
	}

	return s.store(ctx, picture)
}

func (s *pictureService) Put(ctx context.Context, caller *model.User, id uuid.UUID, put PicturePut) (*model.Picture, error) {
	picture, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeWrite(ctx, caller, picture); err != nil {
		return nil, err
	}

	picture.InAlbum = put.InAlbum
	picture.URL = put.URL
	picture.AddedBy = put.AddedBy
	picture.Location = put.Location

	return s.store(ctx, picture)
}

func (s *pictureService) Delete(ctx context.Context, caller *model.User, id uuid.UUID) error {
	picture, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizeWrite(ctx, caller, picture); err != nil {
		return err
	}

	if err := s.pictures.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("picture", id.String())
		}
		return fmt.Errorf("delete picture: %w", err)
	}
	_ = s.cache.Invalidate(ctx, pictureCacheKey(id))
	return nil
}

// authorizeWrite applies the shared-ownership rule. A picture whose album has
// vanished is still writable by its uploader.
func (s *pictureService) authorizeWrite(ctx context.Context, caller *model.User, picture *model.Picture) error {
	album, err := s.albums.FindByID(ctx, picture.InAlbum)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("find album: %w", err)
	}
	if !policy.CanModifyPicture(caller, picture, album) {
		return apperrors.ErrForbidden
	}
	return nil
}

func (s *pictureService) load(ctx context.Context, id uuid.UUID) (*model.Picture, error) {
	picture, err := s.pictures.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("picture", id.String())
		}
		return nil, fmt.Errorf("find picture: %w", err)
	}
	return picture, nil
}

func (s *pictureService) store(ctx context.Context, picture *model.Picture) (*model.Picture, error) {
	if err := s.pictures.Update(ctx, picture); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("picture", picture.ID.String())
		}
		return nil, fmt.Errorf("update picture: %w", err)
	}
	_ = s.cache.Invalidate(ctx, pictureCacheKey(picture.ID))
	return picture, nil
}
