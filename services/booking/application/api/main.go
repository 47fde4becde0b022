package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ku-alexej/shareit/pkg/app"
	"github.com/ku-alexej/shareit/pkg/auth"
	"github.com/ku-alexej/shareit/services/booking/application/handlers"
	appsvcs "github.com/ku-alexej/shareit/services/booking/application/services"
)

// BookingRoutes registers the rental workflow endpoints on the provided
// chi router. Every endpoint requires the caller identity header.
func BookingRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/bookings", func(r chi.Router) {
		r.Use(auth.RequireUser(a.Logger))

		r.Post("/", handlers.NewPostBookingHandler(svcs).Execute)
		r.Get("/", handlers.NewGetBookingsHandler(svcs).Execute)
		r.Get("/owner", handlers.NewGetOwnerBookingsHandler(svcs).Execute)
		r.Get("/{bookingId}", handlers.NewGetBookingHandler(svcs).Execute)
		r.Patch("/{bookingId}", handlers.NewPatchBookingHandler(svcs).Execute)
		r.Patch("/{bookingId}/cancel", handlers.NewCancelBookingHandler(svcs).Execute)
	})
}
