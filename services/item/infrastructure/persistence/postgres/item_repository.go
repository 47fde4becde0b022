package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ku-alexej/shareit/pkg/database"
	pkgevents "github.com/ku-alexej/shareit/pkg/events"
	"github.com/ku-alexej/shareit/pkg/httpx"
	itemdomain "github.com/ku-alexej/shareit/services/item/domain"
	"github.com/ku-alexej/shareit/services/item/domain/events"
	"github.com/ku-alexej/shareit/services/item/domain/models"
)

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus *pkgevents.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection
// pool. The event bus is used to publish item.created within the insert
// transaction.
func NewItemRepository(db *database.Database, bus *pkgevents.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// Create inserts the item and publishes item.created in the same
// transaction, so the event exists only if the row was committed.
func (r *ItemRepository) Create(ctx context.Context, item models.Item) (*models.Item, error) {
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx,
			`INSERT INTO items (name, description, available, owner_id, request_id)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			item.Name, item.Description, item.Available, item.OwnerID, item.RequestID,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("insert item: %w", err)
		}

		payload, err := json.Marshal(events.ItemCreatedEvent{
			EventID:     uuid.NewString(),
			ItemID:      item.ID,
			Name:        item.Name,
			Description: item.Description,
			Available:   item.Available,
			OwnerID:     item.OwnerID,
			RequestID:   item.RequestID,
		})
		if err != nil {
			return fmt.Errorf("marshal item created event: %w", err)
		}

		pub, err := r.bus.NewTxPublisher(tx)
		if err != nil {
			return err
		}
		msg := message.NewMessage(uuid.NewString(), payload)
		if err := pub.Publish(events.TopicItemCreated, msg); err != nil {
			return fmt.Errorf("publish item created: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Patch merges the patch onto the stored item inside one transaction. The
// row is locked so a concurrent patch cannot be lost.
func (r *ItemRepository) Patch(ctx context.Context, id, ownerID int64, patch models.ItemPatch) (*models.Item, error) {
	var updated models.Item
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var current models.Item
		err := tx.QueryRowContext(ctx,
			`SELECT id, name, description, available, owner_id, request_id
			 FROM items WHERE id = $1 FOR UPDATE`, id,
		).Scan(&current.ID, &current.Name, &current.Description,
			&current.Available, &current.OwnerID, &current.RequestID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return itemdomain.ErrItemNotFound
			}
			return fmt.Errorf("select item: %w", err)
		}
		if current.OwnerID != ownerID {
			return itemdomain.ErrNotOwner
		}

		updated = current.Merge(patch)

		if _, err := tx.ExecContext(ctx,
			`UPDATE items SET name = $1, description = $2, available = $3 WHERE id = $4`,
			updated.Name, updated.Description, updated.Available, id,
		); err != nil {
			return fmt.Errorf("update item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetByID retrieves an item by id. Returns ErrItemNotFound if not found.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT id, name, description, available, owner_id, request_id
		 FROM items WHERE id = $1`, id,
	).Scan(&item.ID, &item.Name, &item.Description,
		&item.Available, &item.OwnerID, &item.RequestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return &item, nil
}

// FindByOwner returns the owner's items ordered by id.
func (r *ItemRepository) FindByOwner(ctx context.Context, ownerID int64, page httpx.Page) ([]models.Item, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, name, description, available, owner_id, request_id
		 FROM items WHERE owner_id = $1
		 ORDER BY id
		 LIMIT $2 OFFSET $3`,
		ownerID, page.Limit(), page.Offset(),
	)
	if err != nil {
		return nil, fmt.Errorf("query items by owner: %w", err)
	}
	return scanItems(rows)
}

// Search returns available items whose name or description contains text,
// case-insensitively.
func (r *ItemRepository) Search(ctx context.Context, text string, page httpx.Page) ([]models.Item, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, name, description, available, owner_id, request_id
		 FROM items
		 WHERE available
		   AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		 ORDER BY id
		 LIMIT $2 OFFSET $3`,
		text, page.Limit(), page.Offset(),
	)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	return scanItems(rows)
}

// FindByRequestIDs returns all items answering any of the given wishlist
// requests.
func (r *ItemRepository) FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]models.Item, error) {
	if len(requestIDs) == 0 {
		return nil, nil
	}
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, name, description, available, owner_id, request_id
		 FROM items WHERE request_id = ANY($1)
		 ORDER BY id`,
		requestIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query items by requests: %w", err)
	}
	return scanItems(rows)
}

func scanItems(rows *sql.Rows) ([]models.Item, error) {
	defer rows.Close() //nolint:errcheck

	var items []models.Item
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description,
			&it.Available, &it.OwnerID, &it.RequestID); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}
