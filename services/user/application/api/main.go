package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ku-alexej/shareit/pkg/app"
	"github.com/ku-alexej/shareit/services/user/application/handlers"
	appsvcs "github.com/ku-alexej/shareit/services/user/application/services"
)

// UserRoutes registers user-directory endpoints on the provided chi router.
// The user endpoints do not require the caller identity header.
func UserRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/users", func(r chi.Router) {
		r.Post("/", handlers.NewPostUserHandler(svcs).Execute)
		r.Get("/", handlers.NewGetUsersHandler(svcs).Execute)
		r.Get("/{userId}", handlers.NewGetUserHandler(svcs).Execute)
		r.Patch("/{userId}", handlers.NewPatchUserHandler(svcs).Execute)
		r.Delete("/{userId}", handlers.NewDeleteUserHandler(svcs).Execute)
	})
}
