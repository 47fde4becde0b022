package models

import domain "github.com/ku-alexej/shareit/services/booking/domain"

// State filters booking lists by time window or status.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState validates a raw filter value. Unknown values produce an
// UnsupportedStateError carrying the raw input.
func ParseState(raw string) (State, error) {
	if raw == "" {
		return StateAll, nil
	}
	switch State(raw) {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return State(raw), nil
	default:
		return "", &domain.UnsupportedStateError{Value: raw}
	}
}
