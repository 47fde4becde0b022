package models

import "time"

// ItemRequest is a wishlist entry: a user describing an item they would
// like to rent.
type ItemRequest struct {
	ID          int64
	Description string
	RequesterID int64
	Created     time.Time
}

// AnswerItem is an item offered in response to a request.
type AnswerItem struct {
	ID          int64
	Name        string
	Description string
	Available   bool
	OwnerID     int64
	RequestID   int64
}

// RequestDetails is the read projection of a request together with the
// items answering it.
type RequestDetails struct {
	ItemRequest
	Items []AnswerItem
}
