package dtos

import (
	"time"

	"skyward-experiment/flightdeck/internal/constants"
)

// HourRange restricts departures to an hour-of-day window (inclusive).
type HourRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// SearchQuery carries every customer search parameter. It is immutable once
// built: the planner only reads it, to construct a query plan and a cache key.
type SearchQuery struct {
	From               string              `json:"from"`
	To                 string              `json:"to"`
	DepartureDate      string              `json:"departureDate,omitempty"` // YYYY-MM-DD
	ReturnDate         string              `json:"returnDate,omitempty"`
	Passengers         int                 `json:"passengers"`
	FlightClass        constants.SeatClass `json:"flightClass"`
	Page               int                 `json:"page"`
	Limit              int                 `json:"limit"`
	SortBy             constants.SortKey   `json:"sortBy"`
	SortOrder          string              `json:"sortOrder"`
	MaxPrice           *float64            `json:"maxPrice,omitempty"`
	MinPrice           *float64            `json:"minPrice,omitempty"`
	PreferredAirlines  []string            `json:"preferredAirlines,omitempty"`
	MaxStops           int                 `json:"maxStops"`
	DepartureTimeRange *HourRange          `json:"departureTimeRange,omitempty"`
}

// CreateFlightRequest is the admin payload for scheduling a new flight.
type CreateFlightRequest struct {
	FlightNumber       string    `json:"flightNumber"`
	AirlineID          string    `json:"airlineId"`
	AirplaneID         string    `json:"airplaneId"`
	DepartureAirportID string    `json:"departureAirportId"`
	ArrivalAirportID   string    `json:"arrivalAirportId"`
	DepartureTime      time.Time `json:"departureTime"`
	ArrivalTime        time.Time `json:"arrivalTime"`
	BasePrice          float64   `json:"basePrice"`
	Currency           string    `json:"currency,omitempty"`
	Gate               *string   `json:"gate,omitempty"`
	Terminal           *string   `json:"terminal,omitempty"`
}

// UpdateFlightRequest carries a partial flight update; nil fields are untouched.
type UpdateFlightRequest struct {
	DepartureTime *time.Time `json:"departureTime,omitempty"`
	ArrivalTime   *time.Time `json:"arrivalTime,omitempty"`
	BasePrice     *float64   `json:"basePrice,omitempty"`
	Gate          *string    `json:"gate,omitempty"`
	Terminal      *string    `json:"terminal,omitempty"`
}

// UpdateStatusRequest moves a flight through its lifecycle.
type UpdateStatusRequest struct {
	Status constants.FlightStatus `json:"status"`
	Reason string                 `json:"reason,omitempty"`
}
