package domain

import "errors"

var (
	// ErrBookingNotFound is returned when no booking exists for the
	// requested id, or when the caller is neither booker nor owner.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrItemUnavailable is returned when the requested item is not open
	// for booking.
	ErrItemUnavailable = errors.New("item is not available for booking")

	// ErrInvalidTimeRange is returned when a booking window is malformed.
	ErrInvalidTimeRange = errors.New("booking end must be after start")

	// ErrOwnBooking is returned when an owner tries to book their own item.
	// Reported as not found, matching the ownership checks elsewhere.
	ErrOwnBooking = errors.New("owner cannot book own item")

	// ErrAlreadyResolved is returned when approving or rejecting a booking
	// that already left the waiting state.
	ErrAlreadyResolved = errors.New("booking already resolved")

	// ErrUnsupportedState is returned for unknown list-filter states.
	ErrUnsupportedState = errors.New("unsupported booking state")
)

// UnsupportedStateError reports the rejected filter value. The message
// format is part of the HTTP contract.
type UnsupportedStateError struct {
	Value string
}

func (e *UnsupportedStateError) Error() string {
	return "Unknown state: " + e.Value
}

func (e *UnsupportedStateError) Is(target error) bool {
	return target == ErrUnsupportedState
}
