package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"skyward-experiment/flightdeck/internal/api"
	"skyward-experiment/flightdeck/internal/db"
	"skyward-experiment/flightdeck/internal/logging"
	"skyward-experiment/flightdeck/internal/metrics"
	"skyward-experiment/flightdeck/internal/middleware"
)

func RegisterRoutes(upSince time.Time) http.Handler {
	r := chi.NewRouter()

	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(metricsReg))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link", "X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	deps, err := api.InitDependencies(db.PgDB, db.DB, metricsReg)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}
	logging.Info("Router initialized with metrics and logging middleware")

	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, deps.Services.Cache, upSince))

	RegisterAPIRoutes(r, deps)

	return r
}
