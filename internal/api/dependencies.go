package api

import (
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"

	"skyward-experiment/flightdeck/internal/common"
	"skyward-experiment/flightdeck/internal/db/repositories"
	"skyward-experiment/flightdeck/internal/logging"
	"skyward-experiment/flightdeck/internal/metrics"
	"skyward-experiment/flightdeck/internal/services"
)

type Repositories struct {
	Flights   *repositories.FlightRepository
	Seats     *repositories.SeatRepository
	Airplanes *repositories.AirplaneRepository
	Bookings  *repositories.BookingRepository
	Stats     *repositories.StatsRepository
}

type Services struct {
	Cache  common.CacheInterface
	Flight *services.FlightService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

// searchLocation resolves the reference timezone for calendar-day and
// hour-of-day search filters. Defaults to server local time.
func searchLocation() *time.Location {
	name := os.Getenv("SEARCH_TIMEZONE")
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		logging.Warn("Invalid SEARCH_TIMEZONE, falling back to local time", "value", name)
		return time.Local
	}
	return loc
}

// InitDependencies wires repositories, cache and services. Redis is used
// when REDIS_HOST is set and reachable; otherwise search results are cached
// in process memory.
func InitDependencies(gormDB *gorm.DB, sqlxDB *sqlx.DB, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	repos := &Repositories{
		Flights:   repositories.NewFlightRepository(gormDB),
		Seats:     repositories.NewSeatRepository(gormDB),
		Airplanes: repositories.NewAirplaneRepository(gormDB),
		Bookings:  repositories.NewBookingRepository(gormDB),
		Stats:     repositories.NewStatsRepository(sqlxDB),
	}

	var cache common.CacheInterface
	if os.Getenv("REDIS_HOST") != "" {
		redisCache, err := common.NewRedisCacheService()
		if err != nil {
			return nil, err
		}
		cache = redisCache
		logging.Info("Using Redis result cache")
	} else {
		cache = common.NewMemoryCacheService(common.SearchCacheTTLSeconds, 600)
		logging.Info("REDIS_HOST not set, using in-memory result cache")
	}

	flightSvc := services.NewFlightService(
		repos.Flights,
		repos.Seats,
		repos.Airplanes,
		repos.Bookings,
		cache,
		metricsReg,
		searchLocation(),
	)

	return &Dependencies{
		Repo: repos,
		Services: &Services{
			Cache:  cache,
			Flight: flightSvc,
		},
	}, nil
}
