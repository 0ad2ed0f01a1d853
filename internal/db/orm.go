package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	gormModels "skyward-experiment/flightdeck/internal/models/gorm"
)

var PgDB *gorm.DB

// InitPostgresORM opens the GORM connection used by the repositories.
func InitPostgresORM() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsnFromEnv()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	PgDB = db
	return db, nil
}

// Migrate creates or updates the inventory tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&gormModels.Airline{},
		&gormModels.Airport{},
		&gormModels.Airplane{},
		&gormModels.Flight{},
		&gormModels.Seat{},
		&gormModels.Booking{},
	)
}
