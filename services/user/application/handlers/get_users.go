package handlers

import (
	"net/http"

	"github.com/ku-alexej/shareit/pkg/errhttp"
	"github.com/ku-alexej/shareit/pkg/httpx"
	appsvcs "github.com/ku-alexej/shareit/services/user/application/services"
)

// GetUsersHandler handles GET /users requests.
type GetUsersHandler struct {
	svc *appsvcs.Services
}

// NewGetUsersHandler returns a GetUsersHandler backed by the given services.
func NewGetUsersHandler(svc *appsvcs.Services) *GetUsersHandler {
	return &GetUsersHandler{svc: svc}
}

// Execute returns all registered users.
//
//	@Summary		List users
//	@Tags			users
//	@Produce		json
//	@Success		200	{array}		UserResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/users [get]
func (h *GetUsersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.User.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, newUserResponse(u))
	}
	httpx.JSON(w, http.StatusOK, out)
}
