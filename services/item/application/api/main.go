package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ku-alexej/shareit/pkg/app"
	"github.com/ku-alexej/shareit/pkg/auth"
	"github.com/ku-alexej/shareit/services/item/application/handlers"
	appsvcs "github.com/ku-alexej/shareit/services/item/application/services"
)

// ItemRoutes registers the item catalog endpoints on the provided chi
// router. Every endpoint requires the caller identity header.
func ItemRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/items", func(r chi.Router) {
		r.Use(auth.RequireUser(a.Logger))

		r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
		r.Get("/", handlers.NewGetItemsHandler(svcs).Execute)
		r.Get("/search", handlers.NewSearchItemsHandler(svcs).Execute)
		r.Get("/{itemId}", handlers.NewGetItemHandler(svcs).Execute)
		r.Patch("/{itemId}", handlers.NewPatchItemHandler(svcs).Execute)
		r.Post("/{itemId}/comment", handlers.NewPostCommentHandler(svcs).Execute)
	})
}
