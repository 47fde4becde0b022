// Package errhttp maps domain errors onto HTTP responses so handlers do
// not repeat the translation for every endpoint.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ku-alexej/shareit/pkg/httpx"
	bookingdomain "github.com/ku-alexej/shareit/services/booking/domain"
	itemdomain "github.com/ku-alexej/shareit/services/item/domain"
	requestdomain "github.com/ku-alexej/shareit/services/request/domain"
	userdomain "github.com/ku-alexej/shareit/services/user/domain"
)

// StatusFor returns the HTTP status for a domain error. Errors that carry
// no domain meaning fall through to 500.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, userdomain.ErrUserNotFound),
		errors.Is(err, itemdomain.ErrItemNotFound),
		errors.Is(err, itemdomain.ErrNotOwner),
		errors.Is(err, bookingdomain.ErrBookingNotFound),
		errors.Is(err, bookingdomain.ErrOwnBooking),
		errors.Is(err, requestdomain.ErrRequestNotFound):
		return http.StatusNotFound
	case errors.Is(err, userdomain.ErrEmailTaken),
		errors.Is(err, userdomain.ErrUserInUse):
		return http.StatusConflict
	case errors.Is(err, bookingdomain.ErrItemUnavailable),
		errors.Is(err, bookingdomain.ErrInvalidTimeRange),
		errors.Is(err, bookingdomain.ErrAlreadyResolved),
		errors.Is(err, itemdomain.ErrCommentNotAllowed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes err as a JSON error response. Unmapped errors and the
// unsupported list-state error report status 500; only the list-state
// error keeps its message, everything else is masked.
func WriteError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError &&
		!errors.Is(err, bookingdomain.ErrUnsupportedState) {
		httpx.JSONError(w, status, "Internal server error")
		return
	}
	httpx.JSONError(w, status, err.Error())
}
