package handlers

import (
	"net/http"
	"time"

	"github.com/ku-alexej/shareit/pkg/auth"
	"github.com/ku-alexej/shareit/pkg/errhttp"
	"github.com/ku-alexej/shareit/pkg/httpx"
	pkgvalidator "github.com/ku-alexej/shareit/pkg/validator"
	appsvcs "github.com/ku-alexej/shareit/services/booking/application/services"
)

// CreateBookingRequest is the request body for POST /bookings.
type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" validate:"required,min=1" example:"2"`
	Start  time.Time `json:"start"  validate:"required"`
	End    time.Time `json:"end"    validate:"required"`
} // @name CreateBookingRequest

// PostBookingHandler handles POST /bookings requests.
type PostBookingHandler struct {
	svc *appsvcs.Services
}

// NewPostBookingHandler returns a PostBookingHandler backed by the given
// services.
func NewPostBookingHandler(svc *appsvcs.Services) *PostBookingHandler {
	return &PostBookingHandler{svc: svc}
}

// Execute places a booking for the calling user.
//
//	@Summary		Create booking
//	@Description	Books an item for a time window; starts in the WAITING state
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		int						true	"Calling user id"
//	@Param			request				body		CreateBookingRequest	true	"Booking window"
//	@Success		201					{object}	BookingResponse
//	@Failure		400					{object}	ErrorResponse
//	@Failure		404					{object}	ErrorResponse
//	@Router			/bookings [post]
func (h *PostBookingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateBookingRequest](w, r)
	if !ok {
		return
	}
	if req.Start.Before(time.Now()) {
		httpx.JSONError(w, http.StatusBadRequest, "booking start must not be in the past")
		return
	}
	if !req.End.After(req.Start) {
		httpx.JSONError(w, http.StatusBadRequest, "booking end must be after start")
		return
	}

	booking, err := h.svc.Booking.Create(r.Context(), userID, req.ItemID, req.Start, req.End)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, newBookingResponse(*booking))
}
