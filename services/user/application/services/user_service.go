package services

import (
	"context"
	"fmt"

	"github.com/ku-alexej/shareit/services/user/domain/models"
	"github.com/ku-alexej/shareit/services/user/domain/repositories"
)

// UserService orchestrates the user directory: registration, partial updates,
// lookups and removal. Email uniqueness is enforced at write time by the
// repository (pre-check inside the update transaction plus the unique index).
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService returns a UserService wired with the given repository.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Create registers a new user. Returns ErrEmailTaken on duplicate email.
func (s *UserService) Create(ctx context.Context, name, email string) (*models.User, error) {
	user, err := s.repo.Create(ctx, models.User{Name: name, Email: email})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Update merges non-nil patch fields onto the stored user.
// Updating the email to its current value is always allowed.
func (s *UserService) Update(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	user, err := s.repo.Patch(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// GetByID returns a single user. Returns ErrUserNotFound when absent.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// List returns all registered users.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Delete removes a user. Returns ErrUserNotFound when absent and ErrUserInUse
// when items or bookings still reference the user — removal never cascades.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
