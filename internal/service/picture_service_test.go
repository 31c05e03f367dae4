package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "sharemypics/internal/errors"
	"sharemypics/internal/model"
	"sharemypics/internal/repository"
)

func TestPictureService_Create(t *testing.T) {
	contributor := &model.User{ID: uuid.New(), Username: "bob"}
	outsider := &model.User{ID: uuid.New(), Username: "eve"}
	albumID := uuid.New()
	album := &model.Album{ID: albumID, Contributors: []uuid.UUID{contributor.ID}}

	tests := []struct {
		name    string
		caller  *model.User
		wantErr error
	}{
		{name: "album contributor may add", caller: contributor},
		{name: "outsider is denied", caller: outsider, wantErr: apperrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPictures := new(MockPictureRepository)
			mockAlbums := new(MockAlbumRepository)
			mockAlbums.On("FindByID", mock.Anything, albumID).Return(album, nil)
			if tt.wantErr == nil {
				mockPictures.On("Create", mock.Anything, mock.AnythingOfType("*model.Picture")).Return(nil)
			}

			svc := NewPictureService(mockPictures, mockAlbums, nil)
			picture, err := svc.Create(context.Background(), tt.caller, albumID, "https://img.example/1.jpg", nil)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, picture)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.caller.ID, picture.AddedBy)
				assert.Equal(t, albumID, picture.InAlbum)
			}
			mockPictures.AssertExpectations(t)
		})
	}
}

func TestPictureService_Patch_PartialUpdate(t *testing.T) {
	uploader := &model.User{ID: uuid.New(), Username: "bob"}
	albumID := uuid.New()
	pictureID := uuid.New()
	location := &model.Point{Longitude: 6.65, Latitude: 46.78}

	mockPictures := new(MockPictureRepository)
	mockAlbums := new(MockAlbumRepository)
	mockPictures.On("FindByID", mock.Anything, pictureID).Return(&model.Picture{
		ID:       pictureID,
		InAlbum:  albumID,
		URL:      "old.jpg",
		AddedBy:  uploader.ID,
		Location: location,
	}, nil)
	mockAlbums.On("FindByID", mock.Anything, albumID).Return(&model.Album{ID: albumID}, nil)
	mockPictures.On("Update", mock.Anything, mock.AnythingOfType("*model.Picture")).Return(nil)

	svc := NewPictureService(mockPictures, mockAlbums, nil)
	picture, err := svc.Patch(context.Background(), uploader, pictureID, PicturePatch{URL: strPtr("new.jpg")})

	assert.NoError(t, err)
	assert.Equal(t, "new.jpg", picture.URL)
	// fields absent from the patch keep their stored values
	assert.Equal(t, uploader.ID, picture.AddedBy)
	assert.Equal(t, location, picture.Location)
	mockPictures.AssertExpectations(t)
}

func TestPictureService_Patch_UploaderWithoutMembership(t *testing.T) {
	// The uploader keeps write access even when not a contributor of the
	// owning album.
	uploader := &model.User{ID: uuid.New()}
	albumID := uuid.New()
	pictureID := uuid.New()

	mockPictures := new(MockPictureRepository)
	mockAlbums := new(MockAlbumRepository)
	mockPictures.On("FindByID", mock.Anything, pictureID).Return(&model.Picture{
		ID:      pictureID,
		InAlbum: albumID,
		URL:     "old.jpg",
		AddedBy: uploader.ID,
	}, nil)
	mockAlbums.On("FindByID", mock.Anything, albumID).Return(&model.Album{
		ID:           albumID,
		Contributors: []uuid.UUID{uuid.New()},
	}, nil)
	mockPictures.On("Update", mock.Anything, mock.AnythingOfType("*model.Picture")).Return(nil)

	svc := NewPictureService(mockPictures, mockAlbums, nil)
	_, err := svc.Patch(context.Background(), uploader, pictureID, PicturePatch{URL: strPtr("new.jpg")})
	assert.NoError(t, err)
}

func TestPictureService_List_FilterParsing(t *testing.T) {
	albumID := uuid.New()

	tests := []struct {
		name       string
		inAlbum    string
		addedBy    string
		wantFilter repository.PictureFilter
	}{
		{
			name:       "well-formed album filter",
			inAlbum:    albumID.String(),
			wantFilter: repository.PictureFilter{InAlbum: &albumID},
		},
		{
			name:       "malformed filters are ignored",
			inAlbum:    "not-an-id",
			addedBy:    "42",
			wantFilter: repository.PictureFilter{},
		},
		{
			name:       "no filters",
			wantFilter: repository.PictureFilter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPictures := new(MockPictureRepository)
			mockPictures.On("List", mock.Anything, mock.MatchedBy(func(f repository.PictureFilter) bool {
				if (f.InAlbum == nil) != (tt.wantFilter.InAlbum == nil) {
					return false
				}
				if f.InAlbum != nil && *f.InAlbum != *tt.wantFilter.InAlbum {
					return false
				}
				return (f.AddedBy == nil) == (tt.wantFilter.AddedBy == nil)
			})).Return([]model.Picture{}, nil)

			svc := NewPictureService(mockPictures, new(MockAlbumRepository), nil)
			pictures, err := svc.List(context.Background(), tt.inAlbum, tt.addedBy)

			assert.NoError(t, err)
			assert.Empty(t, pictures)
			mockPictures.AssertExpectations(t)
		})
	}
}

func TestPictureService_Delete_Forbidden(t *testing.T) {
	outsider := &model.User{ID: uuid.New()}
	albumID := uuid.New()
	pictureID := uuid.New()

	mockPictures := new(MockPictureRepository)
	mockAlbums := new(MockAlbumRepository)
	mockPictures.On("FindByID", mock.Anything, pictureID).Return(&model.Picture{
		ID:      pictureID,
		InAlbum: albumID,
		AddedBy: uuid.New(),
	}, nil)
	mockAlbums.On("FindByID", mock.Anything, albumID).Return(&model.Album{
		ID:           albumID,
		Contributors: []uuid.UUID{uuid.New()},
	}, nil)

	svc := NewPictureService(mockPictures, mockAlbums, nil)
	err := svc.Delete(context.Background(), outsider, pictureID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
