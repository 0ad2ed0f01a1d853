package routes

import (
	"github.com/go-chi/chi/v5"

	"skyward-experiment/flightdeck/internal/api"
	"skyward-experiment/flightdeck/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers.
// Search and read endpoints are public behind a per-IP rate limit; mutation
// endpoints require an admin token.
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies) {
	flightSvc := deps.Services.Flight

	r.Route("/api/v1", func(v1 chi.Router) {
		// Public inventory reads
		v1.Group(func(public chi.Router) {
			public.Use(middleware.RateLimitMiddleware)

			public.Get("/flights/search", api.SearchFlightsHandler(flightSvc))
			public.Get("/flights/{flight_id}", api.GetFlightHandler(flightSvc))
			public.Get("/flights/{flight_id}/seats", api.GetAvailableSeatsHandler(flightSvc))
		})

		// Admin-only mutations
		v1.Group(func(admin chi.Router) {
			admin.Use(middleware.AdminAuthMiddleware())

			admin.Post("/flights", api.CreateFlightHandler(flightSvc))
			admin.Put("/flights/{flight_id}", api.UpdateFlightHandler(flightSvc))
			admin.Patch("/flights/{flight_id}/status", api.UpdateFlightStatusHandler(flightSvc))
			admin.Delete("/flights/{flight_id}", api.DeactivateFlightHandler(flightSvc))

			admin.Get("/admin/inventory/stats", api.InventoryStatsHandler(deps.Repo.Stats))
		})
	})
}
