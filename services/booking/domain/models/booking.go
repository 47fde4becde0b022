package models

import "time"

// Booking is a rental of an item for a time window. ItemName and OwnerID
// are denormalized from the item row so list views need no extra lookups.
type Booking struct {
	ID       int64
	Start    time.Time
	End      time.Time
	ItemID   int64
	ItemName string
	BookerID int64
	OwnerID  int64
	Status   Status
}

// ItemRef is the slice of an item the booking context needs when a
// booking is created.
type ItemRef struct {
	ID        int64
	Name      string
	OwnerID   int64
	Available bool
}
