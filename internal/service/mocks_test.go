package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sharemypics/internal/model"
	"sharemypics/internal/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAlbumRepository is a mock implementation of repository.AlbumRepository.
type MockAlbumRepository struct {
	mock.Mock
}

func (m *MockAlbumRepository) Create(ctx context.Context, album *model.Album, creatorID uuid.UUID) error {
	args := m.Called(ctx, album, creatorID)
	return args.Error(0)
}

func (m *MockAlbumRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Album, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Album), args.Error(1)
}

func (m *MockAlbumRepository) List(ctx context.Context) ([]model.Album, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Album), args.Error(1)
}

func (m *MockAlbumRepository) Update(ctx context.Context, album *model.Album) error {
	args := m.Called(ctx, album)
	return args.Error(0)
}

func (m *MockAlbumRepository) AddContributor(ctx context.Context, albumID, userID uuid.UUID) error {
	args := m.Called(ctx, albumID, userID)
	return args.Error(0)
}

func (m *MockAlbumRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// WithTransaction runs fn against the mock itself so expectations set on the
// mock cover the transactional path too.
func (m *MockAlbumRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.AlbumRepository) error) error {
	m.Called(ctx, fn)
	return fn(ctx, m)
}

// MockPictureRepository is a mock implementation of repository.PictureRepository.
type MockPictureRepository struct {
	mock.Mock
}

func (m *MockPictureRepository) Create(ctx context.Context, picture *model.Picture) error {
	args := m.Called(ctx, picture)
	return args.Error(0)
}

func (m *MockPictureRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Picture, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Picture), args.Error(1)
}

func (m *MockPictureRepository) List(ctx context.Context, filter repository.PictureFilter) ([]model.Picture, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Picture), args.Error(1)
}

func (m *MockPictureRepository) Update(ctx context.Context, picture *model.Picture) error {
	args := m.Called(ctx, picture)
	return args.Error(0)
}

func (m *MockPictureRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
