package models

// BookingRef is the slice of a booking the item views expose: enough to
// render lastBooking and nextBooking for an owner.
type BookingRef struct {
	ID       int64
	BookerID int64
}
