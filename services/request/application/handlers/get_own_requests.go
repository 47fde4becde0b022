package handlers

import (
	"net/http"

	"github.com/ku-alexej/shareit/pkg/auth"
	"github.com/ku-alexej/shareit/pkg/errhttp"
	"github.com/ku-alexej/shareit/pkg/httpx"
	appsvcs "github.com/ku-alexej/shareit/services/request/application/services"
)

// GetOwnRequestsHandler handles GET /requests requests, listing the
// calling user's own wishlist entries.
type GetOwnRequestsHandler struct {
	svc *appsvcs.Services
}

// NewGetOwnRequestsHandler returns a GetOwnRequestsHandler backed by the
// given services.
func NewGetOwnRequestsHandler(svc *appsvcs.Services) *GetOwnRequestsHandler {
	return &GetOwnRequestsHandler{svc: svc}
}

// Execute lists the caller's requests with answering items, newest first.
//
//	@Summary		List own item requests
//	@Tags			requests
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		int	true	"Calling user id"
//	@Success		200					{array}		RequestResponse
//	@Failure		404					{object}	ErrorResponse
//	@Router			/requests [get]
func (h *GetOwnRequestsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	details, err := h.svc.Request.GetOwn(r.Context(), userID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newRequestResponses(details))
}
