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

// CancelBookingHandler handles PATCH /bookings/{bookingId}/cancel requests.
type CancelBookingHandler struct {
	svc *appsvcs.Services
}

// NewCancelBookingHandler returns a CancelBookingHandler backed by the
// given services.
func NewCancelBookingHandler(svc *appsvcs.Services) *CancelBookingHandler {
	return &CancelBookingHandler{svc: svc}
}

// Execute withdraws the caller's own waiting booking.
//
//	@Summary		Cancel booking
//	@Description	The booker withdraws a booking that is still waiting
//	@Tags			bookings
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		int	true	"Calling user id"
//	@Param			bookingId			path		int	true	"Booking id"
//	@Success		200					{object}	BookingResponse
//	@Failure		400					{object}	ErrorResponse
//	@Failure		404					{object}	ErrorResponse
//	@Router			/bookings/{bookingId}/cancel [patch]
func (h *CancelBookingHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	booking, err := h.svc.Booking.Cancel(r.Context(), userID, bookingID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newBookingResponse(*booking))
}
