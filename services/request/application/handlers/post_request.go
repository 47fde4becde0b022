package handlers

import (
	"net/http"

	"github.com/ku-alexej/shareit/pkg/auth"
	"github.com/ku-alexej/shareit/pkg/errhttp"
	"github.com/ku-alexej/shareit/pkg/httpx"
	pkgvalidator "github.com/ku-alexej/shareit/pkg/validator"
	appsvcs "github.com/ku-alexej/shareit/services/request/application/services"
	"github.com/ku-alexej/shareit/services/request/domain/models"
)

// CreateRequestRequest is the request body for POST /requests.
type CreateRequestRequest struct {
	Description string `json:"description" validate:"required,notblank,max=1000" example:"need a cordless drill for a weekend"`
} // @name CreateRequestRequest

// PostRequestHandler handles POST /requests requests.
type PostRequestHandler struct {
	svc *appsvcs.Services
}

// NewPostRequestHandler returns a PostRequestHandler backed by the given
// services.
func NewPostRequestHandler(svc *appsvcs.Services) *PostRequestHandler {
	return &PostRequestHandler{svc: svc}
}

// Execute registers a wishlist request for the calling user.
//
//	@Summary		Create item request
//	@Tags			requests
//	@Accept			json
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		int						true	"Calling user id"
//	@Param			request				body		CreateRequestRequest	true	"Wanted item description"
//	@Success		201					{object}	RequestResponse
//	@Failure		400					{object}	ErrorResponse
//	@Failure		404					{object}	ErrorResponse
//	@Router			/requests [post]
func (h *PostRequestHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateRequestRequest](w, r)
	if !ok {
		return
	}

	request, err := h.svc.Request.Create(r.Context(), userID, req.Description)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, newRequestResponse(models.RequestDetails{
		ItemRequest: *request,
		Items:       []models.AnswerItem{},
	}))
}
