package models

// Status is the lifecycle state of a booking.
type Status string

const (
	// StatusWaiting marks a new booking pending the owner's decision.
	StatusWaiting Status = "WAITING"
	// StatusApproved marks a booking the owner accepted.
	StatusApproved Status = "APPROVED"
	// StatusRejected marks a booking the owner declined.
	StatusRejected Status = "REJECTED"
	// StatusCanceled marks a booking the booker withdrew.
	StatusCanceled Status = "CANCELED"
)

// Resolved reports whether the booking has left the waiting state.
func (s Status) Resolved() bool {
	return s != StatusWaiting
}

// CanTransition reports whether a booking may move from one status to
// another. Every resolution is terminal; only waiting bookings move.
func CanTransition(from, to Status) bool {
	if from != StatusWaiting {
		return false
	}
	switch to {
	case StatusApproved, StatusRejected, StatusCanceled:
		return true
	default:
		return false
	}
}
