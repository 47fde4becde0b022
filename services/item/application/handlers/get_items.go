package handlers

import (
	"net/http"

	"github.com/ku-alexej/shareit/pkg/auth"
	"github.com/ku-alexej/shareit/pkg/errhttp"
	"github.com/ku-alexej/shareit/pkg/httpx"
	appsvcs "github.com/ku-alexej/shareit/services/item/application/services"
)

// GetItemsHandler handles GET /items requests, listing the calling
// user's own items.
type GetItemsHandler struct {
	svc *appsvcs.Services
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given
// services.
func NewGetItemsHandler(svc *appsvcs.Services) *GetItemsHandler {
	return &GetItemsHandler{svc: svc}
}

// Execute lists the caller's items with bookings and comments.
//
//	@Summary		List own items
//	@Tags			items
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		int	true	"Calling user id"
//	@Param			from				query		int	false	"Offset of the first item"	default(0)
//	@Param			size				query		int	false	"Page size"					default(10)
//	@Success		200					{array}		ItemDetailsResponse
//	@Failure		400					{object}	ErrorResponse
//	@Router			/items [get]
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	details, err := h.svc.Item.GetByOwner(r.Context(), userID, page)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]ItemDetailsResponse, 0, len(details))
	for _, d := range details {
		out = append(out, newItemDetailsResponse(d))
	}
	httpx.JSON(w, http.StatusOK, out)
}
