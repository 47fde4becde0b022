package repositories

import (
	"context"
	"time"

	"github.com/ku-alexej/shareit/pkg/httpx"
	"github.com/ku-alexej/shareit/services/booking/domain/models"
)

// BookingRepository is the persistence boundary for bookings. Reads
// return rows with the item name and owner id joined in.
type BookingRepository interface {
	// Create stores a new booking and returns it with its assigned id.
	Create(ctx context.Context, booking models.Booking) (*models.Booking, error)
	// GetByID returns a single booking or ErrBookingNotFound.
	GetByID(ctx context.Context, id int64) (*models.Booking, error)
	// SetStatus moves a booking to the given status. The transition is
	// checked under a row lock; resolved bookings yield ErrAlreadyResolved.
	SetStatus(ctx context.Context, id int64, next models.Status) (*models.Booking, error)
	// ListByBooker returns the user's bookings matching state, newest
	// start first.
	ListByBooker(ctx context.Context, bookerID int64, state models.State, at time.Time, page httpx.Page) ([]models.Booking, error)
	// ListByOwner returns the bookings of the user's items matching
	// state, newest start first.
	ListByOwner(ctx context.Context, ownerID int64, state models.State, at time.Time, page httpx.Page) ([]models.Booking, error)
	// LastForItems returns, per item, the latest booking that started at
	// or before the reference time and was not rejected or canceled.
	LastForItems(ctx context.Context, itemIDs []int64, at time.Time) (map[int64]models.Booking, error)
	// NextForItems returns, per item, the earliest booking starting
	// strictly after the reference time, excluding rejected and canceled.
	NextForItems(ctx context.Context, itemIDs []int64, at time.Time) (map[int64]models.Booking, error)
	// HasFinishedBooking reports whether bookerID had a booking of the
	// item that ended before the reference time.
	HasFinishedBooking(ctx context.Context, itemID, bookerID int64, at time.Time) (bool, error)
}

// ItemReader is the slice of the item context the booking context needs.
type ItemReader interface {
	GetByID(ctx context.Context, id int64) (*models.ItemRef, error)
}

// UserReader is the slice of the user context the booking context needs.
type UserReader interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
