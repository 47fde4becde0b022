package domain

import "errors"

// ErrRequestNotFound is returned when no item request exists for the
// requested id.
var ErrRequestNotFound = errors.New("item request not found")
