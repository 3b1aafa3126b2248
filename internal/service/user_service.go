package service

import (
	"context"
	"errors"
	"strings"

	dom "github.com/aubertlenno/Todo-Backend/internal/domain"
	"github.com/aubertlenno/Todo-Backend/internal/password"
	"github.com/aubertlenno/Todo-Backend/internal/repo"
	"github.com/aubertlenno/Todo-Backend/internal/utils"

	"github.com/jackc/pgx/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserExists         = errors.New("user already exists")
)

// UserService handles registration and credential checks.
type UserService struct {
	repo   repo.UserRepo
	hasher *password.Hasher
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo, hasher *password.Hasher) *UserService {
	return &UserService{repo: repo, hasher: hasher}
}

// Register creates a new user with a hashed password. A duplicate username
// or email maps to ErrUserExists.
func (s *UserService) Register(ctx context.Context, username, pw string, email *string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || pw == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	if email != nil {
		trimmed := strings.TrimSpace(*email)
		if trimmed == "" {
			email = nil
		} else {
			email = &trimmed
		}
	}
	hash, err := s.hasher.Hash(pw)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, username, hash, email)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, ErrUserExists
		}
		return dom.User{}, err
	}
	return u, nil
}

// GetByUsername returns the user, or ErrNotFound if no such account exists.
func (s *UserService) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrNotFound
		}
		return dom.User{}, err
	}
	return u, nil
}

// ValidateCredentials checks username and password; returns the user if valid.
// An unknown user and a wrong password are indistinguishable to the caller.
func (s *UserService) ValidateCredentials(ctx context.Context, username, pw string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || pw == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if !s.hasher.Verify(pw, u.PasswordHash) {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}
