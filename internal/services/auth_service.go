package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"skyharbor/booking/internal/auth"
	"skyharbor/booking/internal/constants"
	"skyharbor/booking/internal/db/repositories"
	gormModels "skyharbor/booking/internal/models/gorm"
)

// ErrBadCredentials is returned on login with an unknown email or a
// wrong password. Both cases look the same to the caller.
var ErrBadCredentials = errors.New("invalid email or password")

// UserStore is what the auth service needs from the users table.
type UserStore interface {
	Create(ctx context.Context, user *gormModels.User) error
	FindByEmail(ctx context.Context, email string) (*gormModels.User, error)
	FindByID(ctx context.Context, id int64) (*gormModels.User, error)
}

// AuthService registers users and exchanges credentials for tokens.
type AuthService struct {
	users      UserStore
	tokens     *auth.TokenService
	bcryptCost int
}

func NewAuthService(users UserStore, tokens *auth.TokenService, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// Register creates a non-staff account.
func (s *AuthService) Register(ctx context.Context, email, password string) (*gormModels.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &gormModels.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         constants.RolePassenger,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", time.Time{}, ErrBadCredentials
		}
		return "", time.Time{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", time.Time{}, ErrBadCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Profile returns the account behind a set of claims.
func (s *AuthService) Profile(ctx context.Context, userID int64) (*gormModels.User, error) {
	return s.users.FindByID(ctx, userID)
}
