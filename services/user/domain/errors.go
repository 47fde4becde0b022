package domain

import "errors"

// Sentinel errors for the user domain. Use errors.Is() to check these.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates the email is already used by another user.
	ErrEmailTaken = errors.New("email already used by another user")

	// ErrUserInUse indicates the user still owns items or participates in
	// bookings and cannot be deleted.
	ErrUserInUse = errors.New("user still referenced by items or bookings")
)
