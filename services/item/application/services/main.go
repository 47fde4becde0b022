package services

import (
	"context"
	"time"

	"github.com/ku-alexej/shareit/pkg/app"
	"github.com/ku-alexej/shareit/pkg/cache"
	bookingmodels "github.com/ku-alexej/shareit/services/booking/domain/models"
	bookingpg "github.com/ku-alexej/shareit/services/booking/infrastructure/persistence/postgres"
	"github.com/ku-alexej/shareit/services/item/domain/models"
	itempg "github.com/ku-alexej/shareit/services/item/infrastructure/persistence/postgres"
	requestpg "github.com/ku-alexej/shareit/services/request/infrastructure/persistence/postgres"
	userpg "github.com/ku-alexej/shareit/services/user/infrastructure/persistence/postgres"
)

// Services bundles the item context's use cases.
type Services struct {
	Item *ItemService
}

// New wires the item services against the application's resources.
func New(a *app.Application) *Services {
	items := itempg.NewItemRepository(a.Db, a.EventBus)
	comments := itempg.NewCommentRepository(a.Db)
	users := userpg.NewUserRepository(a.Db)
	requests := requestpg.NewRequestRepository(a.Db)
	bookings := &bookingReader{repo: bookingpg.NewBookingRepository(a.Db)}

	var itemCache *cache.ItemCache
	if a.Redis != nil {
		itemCache = cache.NewItemCache(a.Redis)
	}

	return &Services{
		Item: NewItemService(items, comments, users, requests, bookings, itemCache, a.Logger),
	}
}

// bookingReader narrows the booking repository to the projections item
// views need.
type bookingReader struct {
	repo *bookingpg.BookingRepository
}

func (r *bookingReader) LastForItems(ctx context.Context, itemIDs []int64, at time.Time) (map[int64]models.BookingRef, error) {
	bookings, err := r.repo.LastForItems(ctx, itemIDs, at)
	if err != nil {
		return nil, err
	}
	return toRefs(bookings), nil
}

func (r *bookingReader) NextForItems(ctx context.Context, itemIDs []int64, at time.Time) (map[int64]models.BookingRef, error) {
	bookings, err := r.repo.NextForItems(ctx, itemIDs, at)
	if err != nil {
		return nil, err
	}
	return toRefs(bookings), nil
}

func (r *bookingReader) HasFinishedBooking(ctx context.Context, itemID, userID int64, at time.Time) (bool, error) {
	return r.repo.HasFinishedBooking(ctx, itemID, userID, at)
}

func toRefs(bookings map[int64]bookingmodels.Booking) map[int64]models.BookingRef {
	refs := make(map[int64]models.BookingRef, len(bookings))
	for itemID, b := range bookings {
		refs[itemID] = models.BookingRef{ID: b.ID, BookerID: b.BookerID}
	}
	return refs
}
