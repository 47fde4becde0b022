// Package auth carries the caller identity supplied with each request.
//
// There is no session or token layer: the edge is expected to pass a numeric
// user id in the X-Sharer-User-Id header and the service treats it as trusted
// input. Business rules downstream decide what that user may actually do.
package auth

import (
	"context"
	"errors"
)

// UserHeader is the request header carrying the caller's user id.
const UserHeader = "X-Sharer-User-Id"

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const userIDKey contextKey = "user_id"

// ErrUserIDNotFound is returned when no caller id exists in the request context.
var ErrUserIDNotFound = errors.New("user id not found in context")

// UserIDFromCtx extracts the caller's user id from the request context.
// Returns ErrUserIDNotFound if no id is set (the identity middleware did not run).
func UserIDFromCtx(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(userIDKey).(int64)
	if !ok || id == 0 {
		return 0, ErrUserIDNotFound
	}
	return id, nil
}

// WithUserID returns a new context with the given caller id attached.
// Used by the identity middleware after parsing the header.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}
