package handlers

import (
	"net/http"

	"github.com/ku-alexej/shareit/pkg/auth"
	"github.com/ku-alexej/shareit/pkg/errhttp"
	"github.com/ku-alexej/shareit/pkg/httpx"
	pkgvalidator "github.com/ku-alexej/shareit/pkg/validator"
	appsvcs "github.com/ku-alexej/shareit/services/item/application/services"
	"github.com/ku-alexej/shareit/services/item/domain/models"
)

// CreateItemRequest is the request body for POST /items.
type CreateItemRequest struct {
	Name        string `json:"name"        validate:"required,notblank,max=255"  example:"cordless drill"`
	Description string `json:"description" validate:"required,notblank,max=1000" example:"18V, two batteries"`
	Available   *bool  `json:"available"   validate:"required"                   example:"true"`
	RequestID   *int64 `json:"requestId"   validate:"omitempty,min=1"            example:"1"`
} // @name CreateItemRequest

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given
// services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute registers a new item owned by the calling user.
//
//	@Summary		Create item
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		int					true	"Calling user id"
//	@Param			request				body		CreateItemRequest	true	"Item to register"
//	@Success		201					{object}	ItemResponse
//	@Failure		400					{object}	ErrorResponse
//	@Failure		404					{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), userID, models.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, newItemResponse(*item))
}
