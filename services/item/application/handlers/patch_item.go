package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ku-alexej/shareit/pkg/auth"
	"github.com/ku-alexej/shareit/pkg/errhttp"
	"github.com/ku-alexej/shareit/pkg/httpx"
	pkgvalidator "github.com/ku-alexej/shareit/pkg/validator"
	appsvcs "github.com/ku-alexej/shareit/services/item/application/services"
	"github.com/ku-alexej/shareit/services/item/domain/models"
)

// UpdateItemRequest is the request body for PATCH /items/{itemId}.
// Nil fields keep their stored values.
type UpdateItemRequest struct {
	Name        *string `json:"name"        validate:"omitempty,notblank,max=255"  example:"cordless drill"`
	Description *string `json:"description" validate:"omitempty,notblank,max=1000" example:"18V, two batteries"`
	Available   *bool   `json:"available"   example:"false"`
} // @name UpdateItemRequest

// PatchItemHandler handles PATCH /items/{itemId} requests.
type PatchItemHandler struct {
	svc *appsvcs.Services
}

// NewPatchItemHandler returns a PatchItemHandler backed by the given
// services.
func NewPatchItemHandler(svc *appsvcs.Services) *PatchItemHandler {
	return &PatchItemHandler{svc: svc}
}

// Execute merges the supplied fields onto an item the caller owns.
//
//	@Summary		Update item
//	@Description	Partially updates an item; only the owner may update
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		int					true	"Calling user id"
//	@Param			itemId				path		int					true	"Item id"
//	@Param			request				body		UpdateItemRequest	true	"Fields to update"
//	@Success		200					{object}	ItemResponse
//	@Failure		400					{object}	ErrorResponse
//	@Failure		404					{object}	ErrorResponse
//	@Router			/items/{itemId} [patch]
func (h *PatchItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.UserIDFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemId"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Update(r.Context(), userID, itemID, models.ItemPatch{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newItemResponse(*item))
}
