package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"skyward-experiment/flightdeck/internal/common"
	"skyward-experiment/flightdeck/internal/models/dtos"
)

// HealthCheckHandler handles GET /healthCheck
func HealthCheckHandler(db *sqlx.DB, cache common.CacheInterface, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := make(map[string]dtos.ServiceStatus)

		pgStatus, pgDetails := "ok", "Postgres connected"
		if err := db.Ping(); err != nil {
			pgStatus, pgDetails = "down", err.Error()
		}
		services["postgres"] = dtos.ServiceStatus{Status: pgStatus, Details: pgDetails}

		cacheStatus, cacheDetails := "ok", "Cache available"
		if redisCache, isRedis := cache.(*common.RedisCacheService); isRedis {
			if err := redisCache.Ping(r.Context()); err != nil {
				cacheStatus, cacheDetails = "down", err.Error()
			}
		} else {
			cacheDetails = "In-memory cache"
		}
		services["cache"] = dtos.ServiceStatus{Status: cacheStatus, Details: cacheDetails}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		resp := dtos.HealthCheckResponse{
			Status:   overallStatus,
			Uptime:   time.Since(upSince).Round(time.Second).String(),
			Services: services,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
