package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"skyward-experiment/flightdeck/internal/constants"
	gormModels "skyward-experiment/flightdeck/internal/models/gorm"
)

// SeatRepository handles seat table reads. Seat rows are written once, in
// bulk, by FlightRepository.CreateWithSeats; booking and blocking mutations
// belong to the booking subsystem.
type SeatRepository struct {
	db *gorm.DB
}

// NewSeatRepository creates a new GORM-based seat repository
func NewSeatRepository(db *gorm.DB) *SeatRepository {
	return &SeatRepository{db: db}
}

// FindAvailable returns the open (available, unblocked) seats of a flight,
// ordered row then column, optionally restricted to one class.
func (r *SeatRepository) FindAvailable(ctx context.Context, flightID string, seatClass *constants.SeatClass) ([]gormModels.Seat, error) {
	q := r.db.WithContext(ctx).
		Where("flight_id = ?", flightID).
		Where("is_available = ?", true).
		Where("is_blocked = ?", false)

	if seatClass != nil {
		q = q.Where("seat_class = ?", *seatClass)
	}

	var seats []gormModels.Seat
	err := q.Order(`row ASC, "column" ASC`).Find(&seats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seats: %w", err)
	}

	return seats, nil
}
