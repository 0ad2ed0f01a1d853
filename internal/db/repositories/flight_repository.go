package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"skyward-experiment/flightdeck/internal/constants"
	gormModels "skyward-experiment/flightdeck/internal/models/gorm"
)

// SearchPlan is the fully resolved query plan a flight search executes
// against storage. All normalization (uppercasing, timezone day bounds,
// sort-key mapping) happens before a plan is built; the repository only
// translates it to SQL.
type SearchPlan struct {
	Statuses       []constants.FlightStatus
	MinSeats       int
	DayStart       *time.Time
	DayEnd         *time.Time
	MinPrice       *float64
	MaxPrice       *float64
	WindowStart    *time.Time
	WindowEnd      *time.Time
	FromIATA       string
	ToIATA         string
	AirlineCodes   []string
	OrderClause    string
	Limit          int
	Offset         int
}

// FlightRepository handles flight table operations using GORM
type FlightRepository struct {
	db *gorm.DB
}

// NewFlightRepository creates a new GORM-based flight repository
func NewFlightRepository(db *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

func (r *FlightRepository) searchQuery(ctx context.Context, plan SearchPlan) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&gormModels.Flight{}).
		Joins("JOIN airports AS dep_airport ON dep_airport.id = flights.departure_airport_id").
		Joins("JOIN airports AS arr_airport ON arr_airport.id = flights.arrival_airport_id").
		Joins("JOIN airlines ON airlines.id = flights.airline_id").
		Where("flights.is_active = ?", true).
		Where("flights.status IN ?", plan.Statuses).
		Where("flights.available_seats >= ?", plan.MinSeats)

	if plan.DayStart != nil && plan.DayEnd != nil {
		q = q.Where("flights.departure_time BETWEEN ? AND ?", *plan.DayStart, *plan.DayEnd)
	}
	if plan.MaxPrice != nil {
		q = q.Where("flights.base_price <= ?", *plan.MaxPrice)
	}
	if plan.MinPrice != nil {
		q = q.Where("flights.base_price >= ?", *plan.MinPrice)
	}
	if plan.WindowStart != nil && plan.WindowEnd != nil {
		q = q.Where("flights.departure_time >= ? AND flights.departure_time <= ?",
			*plan.WindowStart, *plan.WindowEnd)
	}
	if plan.FromIATA != "" {
		q = q.Where("dep_airport.iata_code = ?", plan.FromIATA)
	}
	if plan.ToIATA != "" {
		q = q.Where("arr_airport.iata_code = ?", plan.ToIATA)
	}
	if len(plan.AirlineCodes) > 0 {
		q = q.Where("airlines.code IN ?", plan.AirlineCodes)
	}

	return q
}

// FindFlights executes a search plan, returning the requested page together
// with the total match count so pagination metadata is always consistent
// with the returned rows.
func (r *FlightRepository) FindFlights(ctx context.Context, plan SearchPlan) ([]gormModels.Flight, int64, error) {
	var total int64
	if err := r.searchQuery(ctx, plan).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count flights: %w", err)
	}

	var flights []gormModels.Flight
	err := r.searchQuery(ctx, plan).
		Select("flights.*").
		Order(plan.OrderClause).
		Limit(plan.Limit).
		Offset(plan.Offset).
		Preload("Airline").
		Preload("Airplane").
		Preload("DepartureAirport").
		Preload("ArrivalAirport").
		Find(&flights).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search flights: %w", err)
	}

	return flights, total, nil
}

// GetByID retrieves a flight with its relations. Returns (nil, nil) when the
// flight does not exist. With includeSeats, only currently available seats
// are preloaded.
func (r *FlightRepository) GetByID(ctx context.Context, flightID string, includeSeats bool) (*gormModels.Flight, error) {
	q := r.db.WithContext(ctx).
		Preload("Airline").
		Preload("Airplane").
		Preload("DepartureAirport").
		Preload("ArrivalAirport")

	if includeSeats {
		q = q.Preload("Seats", "is_available = ?", true)
	}

	var flight gormModels.Flight
	err := q.Where("id = ?", flightID).First(&flight).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch flight: %w", err)
	}

	return &flight, nil
}

// CreateWithSeats inserts the flight row and its full seat map in one
// transaction. A flight is never observable with totalSeats > 0 but no
// seat rows.
func (r *FlightRepository) CreateWithSeats(ctx context.Context, flight *gormModels.Flight, seats []gormModels.Seat) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(flight).Error; err != nil {
			return fmt.Errorf("failed to create flight: %w", err)
		}
		if len(seats) > 0 {
			if err := tx.CreateInBatches(seats, 200).Error; err != nil {
				return fmt.Errorf("failed to create seats: %w", err)
			}
		}
		return nil
	})
}

// Update applies the given column updates to a flight.
func (r *FlightRepository) Update(ctx context.Context, flightID string, attrs map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&gormModels.Flight{}).
		Where("id = ?", flightID).
		Updates(attrs)

	if result.Error != nil {
		return fmt.Errorf("failed to update flight: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Deactivate soft-deletes a flight. Flight rows are never physically removed.
func (r *FlightRepository) Deactivate(ctx context.Context, flightID string) error {
	return r.Update(ctx, flightID, map[string]interface{}{"is_active": false})
}
