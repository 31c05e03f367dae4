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

// AlbumPatch carries a partial update; nil fields are left untouched.
type AlbumPatch struct {
	Title    *string
	Location *string
	CoverPic *uuid.UUID
}

// AlbumPut carries a full update; absent optional fields clear.
type AlbumPut struct {
	Title    string
	Location *string
	CoverPic *uuid.UUID
}

// AlbumService owns the album lifecycle. Reads are public by design; every
// write requires contributor membership, re-checked inside the transaction
// that performs the write.
type AlbumService interface {
	Create(ctx context.Context, caller *model.User, title string, location *string, coverPic *uuid.UUID) (*model.Album, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Album, error)
	List(ctx context.Context) ([]model.Album, error)
	Patch(ctx context.Context, caller *model.User, id uuid.UUID, patch AlbumPatch) (*model.Album, error)
	Put(ctx context.Context, caller *model.User, id uuid.UUID, put AlbumPut) (*model.Album, error)
	AddContributor(ctx context.Context, caller *model.User, albumID, userID uuid.UUID) (*model.Album, error)
	Delete(ctx context.Context, caller *model.User, id uuid.UUID) error
}

type albumService struct {
	albums repository.AlbumRepository
	users  repository.UserRepository
	cache  *cache.Client
}

// NewAlbumService creates a new album service.
func NewAlbumService(albums repository.AlbumRepository, users repository.UserRepository, cache *cache.Client) AlbumService {
	return &albumService{albums: albums, users: users, cache: cache}
}

func albumCacheKey(id uuid.UUID) string {
	return "album:" + id.String()
}

// Create inserts the album with the caller as its sole initial contributor.
func (s *albumService) Create(ctx context.Context, caller *model.User, title string, location *string, coverPic *uuid.UUID) (*model.Album, error) {
	album := &model.Album{
		ID:       uuid.New(),
		Title:    title,
		Location: location,
		CoverPic: coverPic,
	}
	if err := s.albums.Create(ctx, album, caller.ID); err != nil {
		return nil, fmt.Errorf("create album: %w", err)
	}
	return album, nil
}

func (s *albumService) Get(ctx context.Context, id uuid.UUID) (*model.Album, error) {
	if data, _ := s.cache.Get(ctx, albumCacheKey(id)); data != nil {
		var cached model.Album
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	album, err := s.albums.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("album", id.String())
		}
		return nil, fmt.Errorf("find album: %w", err)
	}

	if payload, err := json.Marshal(album); err == nil {
		_ = s.cache.Set(ctx, albumCacheKey(id), payload, resourceCacheTTL)
	}
	return album, nil
}

func (s *albumService) List(ctx context.Context) ([]model.Album, error) {
	return s.albums.List(ctx)
}

func (s *albumService) Patch(ctx context.Context, caller *model.User, id uuid.UUID, patch AlbumPatch) (*model.Album, error) {
	var updated *model.Album
	err := s.albums.WithTransaction(ctx, func(ctx context.Context, repo repository.AlbumRepository) error {
		album, err := s.loadFrom(ctx, repo, id)
		if err != nil {
			return err
		}
		if !policy.CanModifyAlbum(caller, album) {
			return apperrors.ErrForbidden
		}

		if patch.Title != nil {
			album.Title = *patch.Title
		}
		if patch.Location != nil {
			album.Location = patch.Location
		}
		if patch.CoverPic != nil {
			album.CoverPic = patch.CoverPic
		}

		if err := repo.Update(ctx, album); err != nil {
			return s.mapWriteError(err, id)
		}
		updated = album
		return nil
	})
	if err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx, albumCacheKey(id))
	return updated, nil
}

func (s *albumService) Put(ctx context.Context, caller *model.User, id uuid.UUID, put AlbumPut) (*model.Album, error) {
	var updated *model.Album
	err := s.albums.WithTransaction(ctx, func(ctx context.Context, repo repository.AlbumRepository) error {
		album, err := s.loadFrom(ctx, repo, id)
		if err != nil {
			return err
		}
		if !policy.CanModifyAlbum(caller, album) {
			return apperrors.ErrForbidden
		}

		album.Title = put.Title
		album.Location = put.Location
		album.CoverPic = put.CoverPic

		if err := repo.Update(ctx, album); err != nil {
			return s.mapWriteError(err, id)
		}
		updated = album
		return nil
	})
	if err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx, albumCacheKey(id))
	return updated, nil
}

// AddContributor grants the target user write access. The caller must
// already be a contributor and the target must resolve to an existing user.
func (s *albumService) AddContributor(ctx context.Context, caller *model.User, albumID, userID uuid.UUID) (*model.Album, error) {
	var updated *model.Album
	err := s.albums.WithTransaction(ctx, func(ctx context.Context, repo repository.AlbumRepository) error {
		album, err := s.loadFrom(ctx, repo, albumID)
		if err != nil {
			return err
		}
		if !policy.CanModifyAlbum(caller, album) {
			return apperrors.ErrForbidden
		}

		if _, err := s.users.FindByID(ctx, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("user", userID.String())
			}
			return fmt.Errorf("find user: %w", err)
		}

		if err := repo.AddContributor(ctx, albumID, userID); err != nil {
			return fmt.Errorf("add contributor: %w", err)
		}

		updated, err = s.loadFrom(ctx, repo, albumID)
		return err
	})
	if err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx, albumCacheKey(albumID))
	return updated, nil
}

func (s *albumService) Delete(ctx context.Context, caller *model.User, id uuid.UUID) error {
	err := s.albums.WithTransaction(ctx, func(ctx context.Context, repo repository.AlbumRepository) error {
		album, err := s.loadFrom(ctx, repo, id)
		if err != nil {
			return err
		}
		if !policy.CanModifyAlbum(caller, album) {
			return apperrors.ErrForbidden
		}
		if err := repo.Delete(ctx, id); err != nil {
			return s.mapWriteError(err, id)
		}
		return nil
	})
	if err != nil {
		return err
	}
	_ = s.cache.Invalidate(ctx, albumCacheKey(id))
	return nil
}

func (s *albumService) loadFrom(ctx context.Context, repo repository.AlbumRepository, id uuid.UUID) (*model.Album, error) {
	album, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("album", id.String())
		}
		return nil, fmt.Errorf("find album: %w", err)
	}
	return album, nil
}

func (s *albumService) mapWriteError(err error, id uuid.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFound("album", id.String())
	}
	return fmt.Errorf("write album: %w", err)
}
