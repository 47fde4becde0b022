package handlers

import (
	"net/http"

	"github.com/ku-alexej/shareit/pkg/auth"
	"github.com/ku-alexej/shareit/pkg/errhttp"
	"github.com/ku-alexej/shareit/pkg/httpx"
	appsvcs "github.com/ku-alexej/shareit/services/booking/application/services"
	"github.com/ku-alexej/shareit/services/booking/domain/models"
)

// GetBookingsHandler handles GET /bookings requests, listing the calling
// user's own bookings.
type GetBookingsHandler struct {
	svc *appsvcs.Services
}

// NewGetBookingsHandler returns a GetBookingsHandler backed by the given
// services.
func NewGetBookingsHandler(svc *appsvcs.Services) *GetBookingsHandler {
	return &GetBookingsHandler{svc: svc}
}

// Execute lists the caller's bookings, newest start first.
//
//	@Summary		List own bookings
//	@Tags			bookings
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		int		true	"Calling user id"
//	@Param			state				query		string	false	"ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED"	default(ALL)
//	@Param			from				query		int		false	"Offset of the first booking"						default(0)
//	@Param			size				query		int		false	"Page size"											default(10)
//	@Success		200					{array}		BookingResponse
//	@Failure		400					{object}	ErrorResponse
//	@Failure		404					{object}	ErrorResponse
//	@Failure		500					{object}	ErrorResponse
//	@Router			/bookings [get]
func (h *GetBookingsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	state, err := models.ParseState(r.URL.Query().Get("state"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	page, err := httpx.ParsePage(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	bookings, err := h.svc.Booking.ListByBooker(r.Context(), userID, state, page)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newBookingResponses(bookings))
}
