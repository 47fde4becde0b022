package repositories

import (
	"context"

	"github.com/ku-alexej/shareit/pkg/httpx"
	"github.com/ku-alexej/shareit/services/request/domain/models"
)

// RequestRepository is the persistence boundary for item requests.
type RequestRepository interface {
	// Create stores a new request and returns it with id and creation
	// time filled in.
	Create(ctx context.Context, request models.ItemRequest) (*models.ItemRequest, error)
	// GetByID returns a single request or ErrRequestNotFound.
	GetByID(ctx context.Context, id int64) (*models.ItemRequest, error)
	// FindByRequester returns the user's own requests, newest first.
	FindByRequester(ctx context.Context, requesterID int64) ([]models.ItemRequest, error)
	// FindOthers returns other users' requests, newest first.
	FindOthers(ctx context.Context, requesterID int64, page httpx.Page) ([]models.ItemRequest, error)
	// Exists reports whether a request with the given id exists.
	Exists(ctx context.Context, id int64) (bool, error)
}

// ItemReader supplies the items answering wishlist requests.
type ItemReader interface {
	FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]models.AnswerItem, error)
}

// UserReader is the slice of the user context the request context needs.
type UserReader interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
