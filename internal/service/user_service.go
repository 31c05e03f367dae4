package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sharemypics/internal/cache"
	apperrors "sharemypics/internal/errors"
	"sharemypics/internal/model"
	"sharemypics/internal/policy"
	"sharemypics/internal/repository"
)

const resourceCacheTTL = 5 * time.Minute

// UserPatch carries a partial update; nil fields are left untouched.
type UserPatch struct {
	Username       *string
	Password       *string
	Name           *string
	Surname        *string
	ProfilePicture *uuid.UUID
}

// UserPut carries a full update; every mutable field is overwritten and
// absent optional fields clear.
type UserPut struct {
	Username       string
	Password       string
	Name           string
	Surname        string
	ProfilePicture *uuid.UUID
}

// UserService exposes user lifecycle operations. Reads are public; writes
// are self-only, decided by the policy package.
type UserService interface {
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Patch(ctx context.Context, caller *model.User, id uuid.UUID, patch UserPatch) (*model.User, error)
	Put(ctx context.Context, caller *model.User, id uuid.UUID, put UserPut) (*model.User, error)
	Delete(ctx context.Context, caller *model.User, id uuid.UUID) error
}

type userService struct {
	users repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(users repository.UserRepository, cache *cache.Client) UserService {
	return &userService{users: users, cache: cache}
}

func userCacheKey(id uuid.UUID) string {
	return "user:" + id.String()
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, userCacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("user", id.String())
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, userCacheKey(id), payload, resourceCacheTTL)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// Patch overwrites only the fields present in the request. A new password is
// re-hashed before it is stored.
func (s *userService) Patch(ctx context.Context, caller *model.User, id uuid.UUID, patch UserPatch) (*model.User, error) {
	user, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanModifyUser(caller, user) {
		return nil, apperrors.ErrForbidden
	}

	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Surname != nil {
		user.Surname = *patch.Surname
	}
	if patch.ProfilePicture != nil {
		user.ProfilePicture = patch.ProfilePicture
	}

	return s.store(ctx, user)
}

// Put overwrites every mutable field; an absent profile picture clears it.
func (s *userService) Put(ctx context.Context, caller *model.User, id uuid.UUID, put UserPut) (*model.User, error) {
	user, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanModifyUser(caller, user) {
		return nil, apperrors.ErrForbidden
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(put.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.Username = put.Username
	user.PasswordHash = string(hashed)
	user.Name = put.Name
	user.Surname = put.Surname
	user.ProfilePicture = put.ProfilePicture

	return s.store(ctx, user)
}

func (s *userService) Delete(ctx context.Context, caller *model.User, id uuid.UUID) error {
	user, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanModifyUser(caller, user) {
		return apperrors.ErrForbidden
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound("user", id.String())
		}
		return fmt.Errorf("delete user: %w", err)
	}
	_ = s.cache.Invalidate(ctx, userCacheKey(id))
	return nil
}

// load reads the target without going through the cache: write paths must
// see current state.
func (s *userService) load(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("user", id.String())
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *userService) store(ctx context.Context, user *model.User) (*model.User, error) {
	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &apperrors.DuplicateUsernameError{Username: user.Username}
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("user", user.ID.String())
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	_ = s.cache.Invalidate(ctx, userCacheKey(user.ID))
	return user, nil
}
