package models

import "time"

// Comment is feedback left on an item by a user who finished renting it.
// AuthorName is denormalized from the author row for read views.
type Comment struct {
	ID         int64
	Text       string
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
}
