package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ku-alexej/shareit/pkg/cache"
	"github.com/ku-alexej/shareit/pkg/httpx"
	"github.com/ku-alexej/shareit/pkg/logger"
	itemdomain "github.com/ku-alexej/shareit/services/item/domain"
	"github.com/ku-alexej/shareit/services/item/domain/models"
	"github.com/ku-alexej/shareit/services/item/domain/repositories"
	requestdomain "github.com/ku-alexej/shareit/services/request/domain"
	userdomain "github.com/ku-alexej/shareit/services/user/domain"
)

// ItemService implements the item catalog use cases.
type ItemService struct {
	items    repositories.ItemRepository
	comments repositories.CommentRepository
	users    repositories.UserReader
	requests repositories.RequestReader
	bookings repositories.BookingReader
	cache    *cache.ItemCache
	log      logger.Logger
	now      func() time.Time
}

// NewItemService wires the item use cases. cache may be nil, in which case
// reads always hit the database.
func NewItemService(
	items repositories.ItemRepository,
	comments repositories.CommentRepository,
	users repositories.UserReader,
	requests repositories.RequestReader,
	bookings repositories.BookingReader,
	itemCache *cache.ItemCache,
	log logger.Logger,
) *ItemService {
	return &ItemService{
		items:    items,
		comments: comments,
		users:    users,
		requests: requests,
		bookings: bookings,
		cache:    itemCache,
		log:      log,
		now:      time.Now,
	}
}

// Create registers a new item for ownerID.
func (s *ItemService) Create(ctx context.Context, ownerID int64, item models.Item) (*models.Item, error) {
	ok, err := s.users.Exists(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	if item.RequestID != nil {
		ok, err := s.requests.Exists(ctx, *item.RequestID)
		if err != nil {
			return nil, fmt.Errorf("create item: %w", err)
		}
		if !ok {
			return nil, requestdomain.ErrRequestNotFound
		}
	}

	item.OwnerID = ownerID
	created, err := s.items.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return created, nil
}

// Update merges the patch onto an existing item. Only the owner may update.
// The cache entry is dropped so the next read sees the new state.
func (s *ItemService) Update(ctx context.Context, ownerID, itemID int64, patch models.ItemPatch) (*models.Item, error) {
	updated, err := s.items.Patch(ctx, itemID, ownerID, patch)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, itemID)
	return updated, nil
}

// GetByID returns an item with its comments. Booking references are
// filled only when the caller owns the item.
func (s *ItemService) GetByID(ctx context.Context, callerID, itemID int64) (*models.ItemDetails, error) {
	item, err := s.getItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	details := models.ItemDetails{Item: *item}

	comments, err := s.comments.ListByItems(ctx, []int64{itemID})
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	details.Comments = comments

	if callerID == item.OwnerID {
		now := s.now()
		last, err := s.bookings.LastForItems(ctx, []int64{itemID}, now)
		if err != nil {
			return nil, fmt.Errorf("get item: %w", err)
		}
		next, err := s.bookings.NextForItems(ctx, []int64{itemID}, now)
		if err != nil {
			return nil, fmt.Errorf("get item: %w", err)
		}
		if ref, ok := last[itemID]; ok {
			details.LastBooking = &ref
		}
		if ref, ok := next[itemID]; ok {
			details.NextBooking = &ref
		}
	}
	return &details, nil
}

// GetByOwner returns the owner's items with booking references and
// comments, fetched in batches rather than per item.
func (s *ItemService) GetByOwner(ctx context.Context, ownerID int64, page httpx.Page) ([]models.ItemDetails, error) {
	ok, err := s.users.Exists(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}

	items, err := s.items.FindByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	if len(items) == 0 {
		return []models.ItemDetails{}, nil
	}

	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	now := s.now()
	last, err := s.bookings.LastForItems(ctx, ids, now)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	next, err := s.bookings.NextForItems(ctx, ids, now)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	comments, err := s.comments.ListByItems(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return assembleDetails(items, last, next, comments), nil
}

// Search returns available items matching text. Blank text yields an
// empty result without touching the database.
func (s *ItemService) Search(ctx context.Context, text string, page httpx.Page) ([]models.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []models.Item{}, nil
	}
	items, err := s.items.Search(ctx, text, page)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	if items == nil {
		items = []models.Item{}
	}
	return items, nil
}

// CreateComment stores feedback on an item. Only users whose booking of
// the item already ended may comment.
func (s *ItemService) CreateComment(ctx context.Context, authorID, itemID int64, text string) (*models.Comment, error) {
	ok, err := s.users.Exists(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	finished, err := s.bookings.HasFinishedBooking(ctx, itemID, authorID, s.now())
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	if !finished {
		return nil, itemdomain.ErrCommentNotAllowed
	}

	comment, err := s.comments.Create(ctx, models.Comment{
		Text:     text,
		ItemID:   itemID,
		AuthorID: authorID,
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// getItem reads through the cache when one is configured. Cache failures
// fall back to the database.
func (s *ItemService) getItem(ctx context.Context, itemID int64) (*models.Item, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, itemID)
		if err == nil {
			return cachedToItem(cached), nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "item cache read failed", "item_id", itemID, "error", err)
		}
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, itemToCached(item)); err != nil {
			s.log.WarnContext(ctx, "item cache write failed", "item_id", itemID, "error", err)
		}
	}
	return item, nil
}

func (s *ItemService) invalidate(ctx context.Context, itemID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, itemID); err != nil {
		s.log.WarnContext(ctx, "item cache invalidation failed", "item_id", itemID, "error", err)
	}
}

func cachedToItem(c *cache.CachedItem) *models.Item {
	item := &models.Item{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Available:   c.Available,
		OwnerID:     c.OwnerID,
	}
	if c.RequestID != 0 {
		id := c.RequestID
		item.RequestID = &id
	}
	return item
}

func itemToCached(item *models.Item) *cache.CachedItem {
	c := &cache.CachedItem{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		OwnerID:     item.OwnerID,
	}
	if item.RequestID != nil {
		c.RequestID = *item.RequestID
	}
	return c
}

// assembleDetails joins the batched projections back onto their items,
// preserving item order.
func assembleDetails(
	items []models.Item,
	last, next map[int64]models.BookingRef,
	comments []models.Comment,
) []models.ItemDetails {
	byItem := make(map[int64][]models.Comment, len(items))
	for _, c := range comments {
		byItem[c.ItemID] = append(byItem[c.ItemID], c)
	}

	details := make([]models.ItemDetails, 0, len(items))
	for _, it := range items {
		d := models.ItemDetails{Item: it, Comments: byItem[it.ID]}
		if ref, ok := last[it.ID]; ok {
			d.LastBooking = &ref
		}
		if ref, ok := next[it.ID]; ok {
			d.NextBooking = &ref
		}
		details = append(details, d)
	}
	return details
}
