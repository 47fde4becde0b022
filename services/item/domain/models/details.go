package models

// ItemDetails is the read projection of an item. Booking references are
// populated only for the owner; everyone else sees nil.
type ItemDetails struct {
	Item
	LastBooking *BookingRef
	NextBooking *BookingRef
	Comments    []Comment
}
