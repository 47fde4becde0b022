package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ku-alexej/shareit/pkg/app"
	"github.com/ku-alexej/shareit/pkg/auth"
	"github.com/ku-alexej/shareit/services/request/application/handlers"
	appsvcs "github.com/ku-alexej/shareit/services/request/application/services"
)

// RequestRoutes registers the wishlist endpoints on the provided chi
// router. Every endpoint requires the caller identity header.
func RequestRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/requests", func(r chi.Router) {
		r.Use(auth.RequireUser(a.Logger))

		r.Post("/", handlers.NewPostRequestHandler(svcs).Execute)
		r.Get("/", handlers.NewGetOwnRequestsHandler(svcs).Execute)
		r.Get("/all", handlers.NewGetAllRequestsHandler(svcs).Execute)
		r.Get("/{requestId}", handlers.NewGetRequestHandler(svcs).Execute)
	})
}
