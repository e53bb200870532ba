package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golden-thread/internal/apperror"
	"golden-thread/internal/auth"
	"golden-thread/internal/domain"
	"golden-thread/internal/metrics"
	"golden-thread/internal/repository"
)

const (
	msgEmailUsed          = "Email already used"
	msgInvalidCredentials = "Invalid credentials"
)

// TokenIssuer signs tokens for authenticated users
type TokenIssuer interface {
	Issue(userID int64, email, role string) (string, error)
}

// UserService defines the interface for account business logic
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

type userService struct {
	userRepo repository.UserRepository
	issuer   TokenIssuer
	now      func() time.Time
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo repository.UserRepository, issuer TokenIssuer) UserService {
	return &userService{
		userRepo: userRepo,
		issuer:   issuer,
		now:      time.Now,
	}
}

// Register creates a shopper account and returns it with a fresh token
func (s *userService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, "", apperror.Internal(fmt.Errorf("failed to check existing user: %w", err))
	}
	if existingUser != nil {
		return nil, "", apperror.Conflict(msgEmailUsed)
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, "", apperror.Validation("Password too long")
		}
		return nil, "", apperror.Internal(fmt.Errorf("failed to hash password: %w", err))
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         domain.RoleUser,
		CreatedAt:    s.now().UTC().Truncate(time.Millisecond),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration of the same email
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, "", apperror.Conflict(msgEmailUsed)
		}
		return nil, "", apperror.Internal(fmt.Errorf("failed to create user: %w", err))
	}
	metrics.UsersRegistered.Inc()

	token, err := s.issuer.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	return user, token, nil
}

// Login checks the credentials and returns the user with a fresh token.
// Unknown email and wrong password fail identically.
func (s *userService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", apperror.Unauthorized(msgInvalidCredentials)
		}
		return nil, "", apperror.Internal(fmt.Errorf("failed to find user: %w", err))
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", apperror.Unauthorized(msgInvalidCredentials)
	}

	token, err := s.issuer.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	return user, token, nil
}
