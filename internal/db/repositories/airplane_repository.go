package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	gormModels "skyward-experiment/flightdeck/internal/models/gorm"
)

// AirplaneRepository handles airplane table reads. The fleet is owned by
// fleet management; this service only reads capacity and cabin configuration.
type AirplaneRepository struct {
	db *gorm.DB
}

// NewAirplaneRepository creates a new GORM-based airplane repository
func NewAirplaneRepository(db *gorm.DB) *AirplaneRepository {
	return &AirplaneRepository{db: db}
}

// GetByID retrieves an airplane by its ID. Returns (nil, nil) when absent.
func (r *AirplaneRepository) GetByID(ctx context.Context, airplaneID string) (*gormModels.Airplane, error) {
	var airplane gormModels.Airplane

	err := r.db.WithContext(ctx).
		Where("id = ?", airplaneID).
		First(&airplane).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch airplane: %w", err)
	}

	return &airplane, nil
}
