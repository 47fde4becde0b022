package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ku-alexej/shareit/pkg/auth"
	"github.com/ku-alexej/shareit/pkg/errhttp"
	"github.com/ku-alexej/shareit/pkg/httpx"
	appsvcs "github.com/ku-alexej/shareit/services/booking/application/services"
)

// GetBookingHandler handles GET /bookings/{bookingId} requests.
type GetBookingHandler struct {
	svc *appsvcs.Services
}

// NewGetBookingHandler returns a GetBookingHandler backed by the given
// services.
func NewGetBookingHandler(svc *appsvcs.Services) *GetBookingHandler {
	return &GetBookingHandler{svc: svc}
}

// Execute returns a booking to its booker or the item's owner.
//
//	@Summary		Get booking
//	@Tags			bookings
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		int	true	"Calling user id"
//	@Param			bookingId			path		int	true	"Booking id"
//	@Success		200					{object}	BookingResponse
//	@Failure		404					{object}	ErrorResponse
//	@Router			/bookings/{bookingId} [get]
func (h *GetBookingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	bookingID, err := strconv.ParseInt(chi.URLParam(r, "bookingId"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	booking, err := h.svc.Booking.GetByID(r.Context(), userID, bookingID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newBookingResponse(*booking))
}
