package repositories

import (
	"context"
	"time"

	"github.com/ku-alexej/shareit/services/item/domain/models"
)

// UserReader is the slice of the user context the item context needs.
type UserReader interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// RequestReader is the slice of the request context the item context
// needs when linking a new item to a wishlist request.
type RequestReader interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// BookingReader supplies the booking projections shown on item views.
// Last bookings started at or before the reference time and were not
// rejected or canceled; next bookings start strictly after it.
type BookingReader interface {
	LastForItems(ctx context.Context, itemIDs []int64, at time.Time) (map[int64]models.BookingRef, error)
	NextForItems(ctx context.Context, itemIDs []int64, at time.Time) (map[int64]models.BookingRef, error)
	// HasFinishedBooking reports whether userID had a booking of itemID
	// that ended before the reference time.
	HasFinishedBooking(ctx context.Context, itemID, userID int64, at time.Time) (bool, error)
}
