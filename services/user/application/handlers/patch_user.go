package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ku-alexej/shareit/pkg/errhttp"
	"github.com/ku-alexej/shareit/pkg/httpx"
	pkgvalidator "github.com/ku-alexej/shareit/pkg/validator"
	appsvcs "github.com/ku-alexej/shareit/services/user/application/services"
	"github.com/ku-alexej/shareit/services/user/domain/models"
)

// UpdateUserRequest is the request body for PATCH /users/{userId}.
// Nil fields keep their stored values.
type UpdateUserRequest struct {
	Name  *string `json:"name"  validate:"omitempty,notblank,max=255" example:"Alexej"`
	Email *string `json:"email" validate:"omitempty,email"            example:"alexej@example.com"`
} // @name UpdateUserRequest

// PatchUserHandler handles PATCH /users/{userId} requests.
type PatchUserHandler struct {
	svc *appsvcs.Services
}

// NewPatchUserHandler returns a PatchUserHandler backed by the given services.
func NewPatchUserHandler(svc *appsvcs.Services) *PatchUserHandler {
	return &PatchUserHandler{svc: svc}
}

// Execute merges the supplied fields onto an existing user.
//
//	@Summary		Update user
//	@Description	Partially updates a user; omitted fields are unchanged
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			userId	path		int					true	"User id"
//	@Param			request	body		UpdateUserRequest	true	"Fields to update"
//	@Success		200		{object}	UserResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/users/{userId} [patch]
func (h *PatchUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateUserRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.User.Update(r.Context(), id, models.UserPatch{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newUserResponse(*user))
}
