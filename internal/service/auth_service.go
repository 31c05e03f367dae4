package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sharemypics/internal/auth"
	apperrors "sharemypics/internal/errors"
	"sharemypics/internal/model"
	"sharemypics/internal/repository"
)

const bcryptCost = 10

// AuthService is the credential store: it owns registration and password
// verification and hands out tokens on successful authentication.
type AuthService interface {
	Register(ctx context.Context, username, password, name, surname string, profilePicture *uuid.UUID) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, string, error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{users: users, jwtService: jwtService}
}

// Register creates a new user with a hashed password. Uniqueness is enforced
// by the storage layer's unique constraint, so two concurrent registrations
// of the same username cannot both succeed; the loser gets the duplicate
// error here.
func (s *authService) Register(ctx context.Context, username, password, name, surname string, profilePicture *uuid.UUID) (*model.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.New(),
		Username:       username,
		PasswordHash:   string(hashedPassword),
		Name:           name,
		Surname:        surname,
		ProfilePicture: profilePicture,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &apperrors.DuplicateUsernameError{Username: username}
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate verifies the password against the stored hash and issues a
// token whose subject is the user id. Unknown usernames and wrong passwords
// produce the same error.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}
