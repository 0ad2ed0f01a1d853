package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	gormModels "skyward-experiment/flightdeck/internal/models/gorm"
)

// BookingRepository reads booking rows owned by the booking subsystem.
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new GORM-based booking repository
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// CountForFlight returns how many bookings exist for a flight. Used to gate
// large schedule changes on already-ticketed flights.
func (r *BookingRepository) CountForFlight(ctx context.Context, flightID string) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&gormModels.Booking{}).
		Where("flight_id = ?", flightID).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	return count, nil
}
