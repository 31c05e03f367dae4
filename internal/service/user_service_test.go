package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "sharemypics/internal/errors"
	"sharemypics/internal/model"
)

func TestUserService_Patch(t *testing.T) {
	owner := &model.User{ID: uuid.New(), Username: "alice", Name: "Alice", Surname: "Smith"}
	stranger := &model.User{ID: uuid.New(), Username: "eve"}

	t.Run("self may patch, untouched fields survive", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		stored := *owner
		mockRepo.On("FindByID", mock.Anything, owner.ID).Return(&stored, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewUserService(mockRepo, nil)
		updated, err := svc.Patch(context.Background(), owner, owner.ID, UserPatch{Name: strPtr("Alicia")})

		assert.NoError(t, err)
		assert.Equal(t, "Alicia", updated.Name)
		assert.Equal(t, "alice", updated.Username)
		assert.Equal(t, "Smith", updated.Surname)
		mockRepo.AssertExpectations(t)
	})

	t.Run("patched password is re-hashed", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		stored := *owner
		mockRepo.On("FindByID", mock.Anything, owner.ID).Return(&stored, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

		svc := NewUserService(mockRepo, nil)
		updated, err := svc.Patch(context.Background(), owner, owner.ID, UserPatch{Password: strPtr("new-secret")})

		assert.NoError(t, err)
		assert.NotEqual(t, "new-secret", updated.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new-secret")))
	})

	t.Run("another identity is denied", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		stored := *owner
		mockRepo.On("FindByID", mock.Anything, owner.ID).Return(&stored, nil)

		svc := NewUserService(mockRepo, nil)
		_, err := svc.Patch(context.Background(), stranger, owner.ID, UserPatch{Name: strPtr("Mallory")})

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestUserService_Get_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	id := uuid.New()
	mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo, nil)
	_, err := svc.Get(context.Background(), id)

	var nf *apperrors.NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, "user", nf.Resource)
	assert.Contains(t, nf.Error(), id.String())
}

func TestUserService_Delete(t *testing.T) {
	owner := &model.User{ID: uuid.New(), Username: "alice"}

	t.Run("self may delete", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		stored := *owner
		mockRepo.On("FindByID", mock.Anything, owner.ID).Return(&stored, nil)
		mockRepo.On("Delete", mock.Anything, owner.ID).Return(nil)

		svc := NewUserService(mockRepo, nil)
		assert.NoError(t, svc.Delete(context.Background(), owner, owner.ID))
		mockRepo.AssertExpectations(t)
	})

	t.Run("another identity is denied", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		stored := *owner
		mockRepo.On("FindByID", mock.Anything, owner.ID).Return(&stored, nil)

		svc := NewUserService(mockRepo, nil)
		err := svc.Delete(context.Background(), &model.User{ID: uuid.New()}, owner.ID)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestUserService_Put_ClearsAbsentFields(t *testing.T) {
	pic := uuid.New()
	owner := &model.User{ID: uuid.New(), Username: "alice", Name: "Alice", Surname: "Smith", ProfilePicture: &pic}

	mockRepo := new(MockUserRepository)
	stored := *owner
	mockRepo.On("FindByID", mock.Anything, owner.ID).Return(&stored, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	svc := NewUserService(mockRepo, nil)
	updated, err := svc.Put(context.Background(), owner, owner.ID, UserPut{
		Username: "alice2",
		Password: "secret",
		Name:     "Alice",
		Surname:  "Smith",
	})

	assert.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Nil(t, updated.ProfilePicture)
}
