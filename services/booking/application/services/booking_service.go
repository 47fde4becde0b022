package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ku-alexej/shareit/pkg/httpx"
	bookingdomain "github.com/ku-alexej/shareit/services/booking/domain"
	"github.com/ku-alexej/shareit/services/booking/domain/models"
	"github.com/ku-alexej/shareit/services/booking/domain/repositories"
	userdomain "github.com/ku-alexej/shareit/services/user/domain"
)

// BookingService implements the rental workflow use cases.
type BookingService struct {
	bookings repositories.BookingRepository
	items    repositories.ItemReader
	users    repositories.UserReader
	now      func() time.Time
}

// NewBookingService wires the booking use cases.
func NewBookingService(
	bookings repositories.BookingRepository,
	items repositories.ItemReader,
	users repositories.UserReader,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		items:    items,
		users:    users,
		now:      time.Now,
	}
}

// Create places a new booking in the waiting state. Owners cannot book
// their own items; that case reads as the item not being bookable at all.
func (s *BookingService) Create(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*models.Booking, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, bookingdomain.ErrItemUnavailable
	}
	if !end.After(start) {
		return nil, bookingdomain.ErrInvalidTimeRange
	}
	ok, err := s.users.Exists(ctx, bookerID)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if !ok {
		return nil, userdomain.ErrUserNotFound
	}
	if item.OwnerID == bookerID {
		return nil, bookingdomain.ErrOwnBooking
	}

	booking, err := s.bookings.Create(ctx, models.Booking{
		Start:    start,
		End:      end,
		ItemID:   itemID,
		BookerID: bookerID,
		Status:   models.StatusWaiting,
	})
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return booking, nil
}

// Resolve lets the item's owner approve or reject a waiting booking.
func (s *BookingService) Resolve(ctx context.Context, ownerID, bookingID int64, approved bool) (*models.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.OwnerID != ownerID {
		return nil, bookingdomain.ErrBookingNotFound
	}

	next := models.StatusRejected
	if approved {
		next = models.StatusApproved
	}
	return s.bookings.SetStatus(ctx, bookingID, next)
}

// Cancel lets the booker withdraw their own waiting booking.
func (s *BookingService) Cancel(ctx context.Context, bookerID, bookingID int64) (*models.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.BookerID != bookerID {
		return nil, bookingdomain.ErrBookingNotFound
	}
	return s.bookings.SetStatus(ctx, bookingID, models.StatusCanceled)
}

// GetByID returns a booking to its booker or the item's owner. Anyone
// else learns nothing about it.
func (s *BookingService) GetByID(ctx context.Context, callerID, bookingID int64) (*models.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.BookerID != callerID && booking.OwnerID != callerID {
		return nil, bookingdomain.ErrBookingNotFound
	}
	return booking, nil
}

// ListByBooker returns the user's own bookings filtered by state.
func (s *BookingService) ListByBooker(ctx context.Context, bookerID int64, state models.State, page httpx.Page) ([]models.Booking, error) {
	if err := s.requireUser(ctx, bookerID); err != nil {
		return nil, err
	}
	bookings, err := s.bookings.ListByBooker(ctx, bookerID, state, s.now(), page)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// ListByOwner returns the bookings of the user's items filtered by state.
func (s *BookingService) ListByOwner(ctx context.Context, ownerID int64, state models.State, page httpx.Page) ([]models.Booking, error) {
	if err := s.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}
	bookings, err := s.bookings.ListByOwner(ctx, ownerID, state, s.now(), page)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (s *BookingService) requireUser(ctx context.Context, userID int64) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !ok {
		return userdomain.ErrUserNotFound
	}
	return nil
}
