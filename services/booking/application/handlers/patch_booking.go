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

// PatchBookingHandler handles PATCH /bookings/{bookingId} requests.
type PatchBookingHandler struct {
	svc *appsvcs.Services
}

// NewPatchBookingHandler returns a PatchBookingHandler backed by the
// given services.
func NewPatchBookingHandler(svc *appsvcs.Services) *PatchBookingHandler {
	return &PatchBookingHandler{svc: svc}
}

// Execute approves or rejects a waiting booking as the item's owner.
//
//	@Summary		Resolve booking
//	@Description	The item's owner approves or rejects a waiting booking
//	@Tags			bookings
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		int		true	"Calling user id"
//	@Param			bookingId			path		int		true	"Booking id"
//	@Param			approved			query		bool	true	"true approves, false rejects"
//	@Success		200					{object}	BookingResponse
//	@Failure		400					{object}	ErrorResponse
//	@Failure		404					{object}	ErrorResponse
//	@Router			/bookings/{bookingId} [patch]
func (h *PatchBookingHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	approved, err := strconv.ParseBool(r.URL.Query().Get("approved"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, `invalid "approved" query parameter`)
		return
	}

	booking, err := h.svc.Booking.Resolve(r.Context(), userID, bookingID, approved)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newBookingResponse(*booking))
}
