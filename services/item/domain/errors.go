package domain

import "errors"

var (
	// ErrItemNotFound is returned when no item exists for the requested id.
	ErrItemNotFound = errors.New("item not found")

	// ErrNotOwner is returned when a caller tries to manage an item they do
	// not own. Reported as not found so item existence is not leaked.
	ErrNotOwner = errors.New("item does not belong to user")

	// ErrCommentNotAllowed is returned when a user without a finished
	// booking of the item tries to comment on it.
	ErrCommentNotAllowed = errors.New("commenting requires a finished booking")
)
