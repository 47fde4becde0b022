package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ku-alexej/shareit/pkg/auth"
	"github.com/ku-alexej/shareit/pkg/errhttp"
	"github.com/ku-alexej/shareit/pkg/httpx"
	appsvcs "github.com/ku-alexej/shareit/services/request/application/services"
)

// GetRequestHandler handles GET /requests/{requestId} requests.
type GetRequestHandler struct {
	svc *appsvcs.Services
}

// NewGetRequestHandler returns a GetRequestHandler backed by the given
// services.
func NewGetRequestHandler(svc *appsvcs.Services) *GetRequestHandler {
	return &GetRequestHandler{svc: svc}
}

// Execute returns one request with its answering items.
//
//	@Summary		Get item request
//	@Tags			requests
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		int	true	"Calling user id"
//	@Param			requestId			path		int	true	"Request id"
//	@Success		200					{object}	RequestResponse
//	@Failure		404					{object}	ErrorResponse
//	@Router			/requests/{requestId} [get]
func (h *GetRequestHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	requestID, err := strconv.ParseInt(chi.URLParam(r, "requestId"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	details, err := h.svc.Request.GetByID(r.Context(), userID, requestID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newRequestResponse(*details))
}
