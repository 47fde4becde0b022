package repositories

import (
	"context"

	"github.com/ku-alexej/shareit/services/user/domain/models"
)

// UserRepository is the persistence interface for users.
// The domain layer owns this interface; infrastructure implements it.
type UserRepository interface {
	// Create persists a new user and returns it with the assigned id.
	// Returns ErrEmailTaken when the email collides with another user.
	Create(ctx context.Context, user models.User) (*models.User, error)

	// Patch merges non-nil fields onto the stored user inside one
	// transaction, re-checking email uniqueness before the write.
	// Returns ErrUserNotFound or ErrEmailTaken.
	Patch(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error)

	GetByID(ctx context.Context, id int64) (*models.User, error)

	// FindAll returns every user; ordering is not guaranteed.
	FindAll(ctx context.Context) ([]models.User, error)

	// Delete removes a user. Returns ErrUserNotFound when absent and
	// ErrUserInUse when items or bookings still reference the user.
	Delete(ctx context.Context, id int64) error

	// Exists reports whether a user with the given id exists.
	Exists(ctx context.Context, id int64) (bool, error)
}
