package handlers

import (
	"net/http"

	"github.com/ku-alexej/shareit/pkg/errhttp"
	"github.com/ku-alexej/shareit/pkg/httpx"
	appsvcs "github.com/ku-alexej/shareit/services/item/application/services"
)

// SearchItemsHandler handles GET /items/search requests.
type SearchItemsHandler struct {
	svc *appsvcs.Services
}

// NewSearchItemsHandler returns a SearchItemsHandler backed by the given
// services.
func NewSearchItemsHandler(svc *appsvcs.Services) *SearchItemsHandler {
	return &SearchItemsHandler{svc: svc}
}

// Execute searches available items by name or description. Blank text
// yields an empty list.
//
//	@Summary		Search items
//	@Tags			items
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		int		true	"Calling user id"
//	@Param			text				query		string	true	"Search text"
//	@Param			from				query		int		false	"Offset of the first item"	default(0)
//	@Param			size				query		int		false	"Page size"					default(10)
//	@Success		200					{array}		ItemResponse
//	@Failure		400					{object}	ErrorResponse
//	@Router			/items/search [get]
func (h *SearchItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	page, err := httpx.ParsePage(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.svc.Item.Search(r.Context(), r.URL.Query().Get("text"), page)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, newItemResponse(it))
	}
	httpx.JSON(w, http.StatusOK, out)
}
