package repositories

import (
	"context"

	"github.com/ku-alexej/shareit/pkg/httpx"
	"github.com/ku-alexej/shareit/services/item/domain/models"
)

// ItemRepository is the persistence boundary for items.
type ItemRepository interface {
	// Create stores a new item and returns it with its assigned id.
	Create(ctx context.Context, item models.Item) (*models.Item, error)
	// Patch applies a partial update. The update is rejected with
	// ErrNotOwner when ownerID does not own the item.
	Patch(ctx context.Context, id, ownerID int64, patch models.ItemPatch) (*models.Item, error)
	// GetByID returns a single item or ErrItemNotFound.
	GetByID(ctx context.Context, id int64) (*models.Item, error)
	// FindByOwner returns the owner's items ordered by id.
	FindByOwner(ctx context.Context, ownerID int64, page httpx.Page) ([]models.Item, error)
	// Search returns available items whose name or description contains
	// text, case-insensitively.
	Search(ctx context.Context, text string, page httpx.Page) ([]models.Item, error)
	// FindByRequestIDs returns all items answering any of the given
	// wishlist requests.
	FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]models.Item, error)
}

// CommentRepository is the persistence boundary for item comments.
type CommentRepository interface {
	// Create stores a comment and returns it with id, author name and
	// creation time filled in.
	Create(ctx context.Context, comment models.Comment) (*models.Comment, error)
	// ListByItems returns the comments of the given items, oldest first
	// by id.
	ListByItems(ctx context.Context, itemIDs []int64) ([]models.Comment, error)
}
