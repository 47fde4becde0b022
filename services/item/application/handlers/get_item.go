package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ku-alexej/shareit/pkg/auth"
	"github.com/ku-alexej/shareit/pkg/errhttp"
	"github.com/ku-alexej/shareit/pkg/httpx"
	appsvcs "github.com/ku-alexej/shareit/services/item/application/services"
)

// GetItemHandler handles GET /items/{itemId} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHandler returns a GetItemHandler backed by the given
// services.
func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute returns an item with its comments. The owner also sees the
// nearest past and future bookings.
//
//	@Summary		Get item
//	@Tags			items
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		int	true	"Calling user id"
//	@Param			itemId				path		int	true	"Item id"
//	@Success		200					{object}	ItemDetailsResponse
//	@Failure		404					{object}	ErrorResponse
//	@Router			/items/{itemId} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	details, err := h.svc.Item.GetByID(r.Context(), userID, itemID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newItemDetailsResponse(*details))
}
