package api

import (
	"net/http"

	"skyward-experiment/flightdeck/internal/apperrors"
	"skyward-experiment/flightdeck/internal/db/repositories"
)

// InventoryStats is the admin-facing aggregate snapshot of the flight
// inventory.
type InventoryStats struct {
	FlightsByStatus []repositories.StatusCount `json:"flightsByStatus"`
	Seats           repositories.SeatTotals    `json:"seats"`
}

// InventoryStatsHandler handles GET /api/v1/admin/inventory/stats
func InventoryStatsHandler(statsRepo *repositories.StatsRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := statsRepo.FlightCountsByStatus(r.Context())
		if err != nil {
			respondWithAppError(w, apperrors.NewInternalError(err))
			return
		}

		totals, err := statsRepo.SeatInventoryTotals(r.Context())
		if err != nil {
			respondWithAppError(w, apperrors.NewInternalError(err))
			return
		}

		stats := &InventoryStats{
			FlightsByStatus: counts,
			Seats:           *totals,
		}
		respondWithSuccess(w, http.StatusOK, stats)
	}
}
