package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"skyward-experiment/flightdeck/internal/constants"
)

// StatusCount is one row of the per-status flight breakdown.
type StatusCount struct {
	Status string `db:"status" json:"status"`
	Count  int64  `db:"count" json:"count"`
}

// SeatTotals aggregates seat inventory across all active flights.
type SeatTotals struct {
	TotalSeats     int64 `db:"total_seats" json:"totalSeats"`
	AvailableSeats int64 `db:"available_seats" json:"availableSeats"`
}

// StatsRepository answers aggregate inventory questions with raw SQL over
// the sqlx handle.
type StatsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository creates a new sqlx-based stats repository
func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// FlightCountsByStatus returns the number of active flights per status.
func (r *StatsRepository) FlightCountsByStatus(ctx context.Context) ([]StatusCount, error) {
	var counts []StatusCount
	if err := r.db.SelectContext(ctx, &counts, constants.QueryFlightCountsByStatus); err != nil {
		return nil, fmt.Errorf("failed to fetch flight counts: %w", err)
	}
	return counts, nil
}

// SeatInventoryTotals returns fleet-wide seat totals for active flights.
func (r *StatsRepository) SeatInventoryTotals(ctx context.Context) (*SeatTotals, error) {
	var totals SeatTotals
	if err := r.db.GetContext(ctx, &totals, constants.QuerySeatInventoryTotals); err != nil {
		return nil, fmt.Errorf("failed to fetch seat totals: %w", err)
	}
	return &totals, nil
}
