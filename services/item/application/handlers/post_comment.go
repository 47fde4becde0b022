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
)

// CreateCommentRequest is the request body for POST /items/{itemId}/comment.
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,notblank,max=1000" example:"drill worked great"`
} // @name CreateCommentRequest

// PostCommentHandler handles POST /items/{itemId}/comment requests.
type PostCommentHandler struct {
	svc *appsvcs.Services
}

// NewPostCommentHandler returns a PostCommentHandler backed by the given
// services.
func NewPostCommentHandler(svc *appsvcs.Services) *PostCommentHandler {
	return &PostCommentHandler{svc: svc}
}

// Execute stores feedback on an item the caller finished renting.
//
//	@Summary		Comment on item
//	@Description	Allowed only after one of the caller's bookings of the item ended
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			X-Sharer-User-Id	header		int						true	"Calling user id"
//	@Param			itemId				path		int						true	"Item id"
//	@Param			request				body		CreateCommentRequest	true	"Comment text"
//	@Success		201					{object}	CommentResponse
//	@Failure		400					{object}	ErrorResponse
//	@Failure		404					{object}	ErrorResponse
//	@Router			/items/{itemId}/comment [post]
func (h *PostCommentHandler) Execute(w http.ResponseWriter, r *http.Request) {
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

	req, ok := pkgvalidator.ValidateRequest[CreateCommentRequest](w, r)
	if !ok {
		return
	}

	comment, err := h.svc.Item.CreateComment(r.Context(), userID, itemID, req.Text)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, newCommentResponse(*comment))
}
