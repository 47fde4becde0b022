package handlers

import (
	"net/http"

	"github.com/ku-alexej/shareit/pkg/auth"
	"github.com/ku-alexej/shareit/pkg/errhttp"
	"github.com/ku-alexej/shareit/pkg/httpx"
	appsvcs "github.com/ku-alexej/shareit/services/request/application/services"
)

// GetAllRequestsHandler handles GET /requests/all requests, listing
// other users' wishlist entries.
type GetAllRequestsHandler struct {
	svc *appsvcs.Services
}

// NewGetAllRequestsHandler returns a GetAllRequestsHandler backed by the
// given services.
func NewGetAllRequestsHandler(svc *appsvcs.Services) *GetAllRequestsHandler {
	return &GetAllRequestsHandler{svc: svc}
}

// Execute lists other users' requests, newest first.
//
//	@Summary		List other users' item requests
//	@Tags			requests
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		int	true	"Calling user id"
//	@Param			from				query		int	false	"Offset of the first request"	default(0)
//	@Param			size				query		int	false	"Page size"						default(10)
//	@Success		200					{array}		RequestResponse
//	@Failure		400					{object}	ErrorResponse
//	@Failure		404					{object}	ErrorResponse
//	@Router			/requests/all [get]
func (h *GetAllRequestsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := httpx.ParsePage(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	details, err := h.svc.Request.GetAll(r.Context(), userID, page)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newRequestResponses(details))
}
