package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/dimaskresna/campus-booking-backend/internal/auth"
)

// Service defines business logic related to users.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Login(ctx context.Context, username, password string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	List(ctx context.Context, filter Filter) ([]*User, int, error)
	Suspend(ctx context.Context, id int64) error
	Unsuspend(ctx context.Context, id int64) error
}

type RegisterRequest struct {
	Username string
	FullName string
	Email    string
	Password string
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher

	minPasswordLength int
}

// NewService creates a new user Service.
func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:              repo,
		hasher:            hasher,
		minPasswordLength: 8,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	username := strings.TrimSpace(strings.ToLower(req.Username))
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(req.Password) < s.minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters", s.minPasswordLength)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &User{
		Username:     username,
		FullName:     strings.TrimSpace(req.FullName),
		Email:        strings.TrimSpace(strings.ToLower(req.Email)),
		PasswordHash: hash,
		Role:         auth.RoleUser,
	}

	// Uniqueness is enforced by the users table constraints; the repository
	// maps violations to ErrEmailAlreadyUsed / ErrUsernameTaken.
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *service) Login(ctx context.Context, username, password string) (*User, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user by username: %w", err)
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if u.IsSuspended {
		return nil, ErrSuspended
	}

	if err := s.repo.TouchLastLogin(ctx, u.ID); err != nil {
		// Non-fatal: login still succeeds.
		log.Printf("failed to record last login for user %d: %v", u.ID, err)
	}

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*User, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Suspend(ctx context.Context, id int64) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u.Role == auth.RoleAdmin {
		return ErrCannotSuspendAdmin
	}
	return s.repo.SetSuspended(ctx, id, true)
}

func (s *service) Unsuspend(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SetSuspended(ctx, id, false)
}
