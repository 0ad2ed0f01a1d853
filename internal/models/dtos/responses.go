package dtos

import (
	"time"

	"skyward-experiment/flightdeck/internal/constants"
	gormModels "skyward-experiment/flightdeck/internal/models/gorm"
)

// APIResponse is the common envelope for all JSON responses.
type APIResponse[T any] struct {
	Status    constants.APIStatus `json:"status"`
	Timestamp time.Time           `json:"timestamp"`
	Data      *T                  `json:"data,omitempty"`
	Error     *ErrorBody          `json:"error,omitempty"`
}

// ErrorBody is the serialized form of an application error.
type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"`
}

// Availability summarizes seat inventory on a flight snapshot.
type Availability struct {
	Total      int `json:"total"`
	Available  int `json:"available"`
	Percentage int `json:"percentage"`
}

// EnrichedFlight is a flight row plus fields computed at read time.
type EnrichedFlight struct {
	gormModels.Flight
	Duration          int                             `json:"duration"`
	FormattedDuration string                          `json:"formattedDuration"`
	Pricing           map[constants.SeatClass]float64 `json:"pricing"`
	Availability      Availability                    `json:"availability"`
	SeatMap           SeatMap                         `json:"seatMap,omitempty"`
}

// SeatMap groups seats by class, row-then-column ordered within each class.
type SeatMap map[constants.SeatClass][]gormModels.Seat

// Pagination describes the returned page relative to the full result set.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// SearchFilters echoes the primary criteria back to the caller.
type SearchFilters struct {
	From          string              `json:"from"`
	To            string              `json:"to"`
	DepartureDate string              `json:"departureDate,omitempty"`
	Passengers    int                 `json:"passengers"`
	FlightClass   constants.SeatClass `json:"flightClass"`
}

// SearchResult is the full response of a flight search. Ephemeral: cached
// under a TTL but never persisted.
type SearchResult struct {
	Flights    []EnrichedFlight `json:"flights"`
	Pagination Pagination       `json:"pagination"`
	Filters    SearchFilters    `json:"filters"`
}

// ServiceStatus reports health of one dependency.
type ServiceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

// HealthCheckResponse is returned by GET /healthCheck.
type HealthCheckResponse struct {
	Status   string                   `json:"status"`
	Uptime   string                   `json:"uptime"`
	Services map[string]ServiceStatus `json:"services"`
}
