package gorm

import (
	"time"

	"skyward-experiment/flightdeck/internal/constants"
)

// Flight represents a scheduled flight row
type Flight struct {
	ID                  string                 `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	FlightNumber        string                 `gorm:"column:flight_number;type:varchar(10);not null" json:"flightNumber"`
	AirlineID           string                 `gorm:"column:airline_id;type:uuid;not null;index" json:"airlineId"`
	AirplaneID          string                 `gorm:"column:airplane_id;type:uuid;not null" json:"airplaneId"`
	DepartureAirportID  string                 `gorm:"column:departure_airport_id;type:uuid;not null;index" json:"departureAirportId"`
	ArrivalAirportID    string                 `gorm:"column:arrival_airport_id;type:uuid;not null;index" json:"arrivalAirportId"`
	DepartureTime       time.Time              `gorm:"column:departure_time;not null;index" json:"departureTime"`
	ArrivalTime         time.Time              `gorm:"column:arrival_time;not null" json:"arrivalTime"`
	ActualDepartureTime *time.Time             `gorm:"column:actual_departure_time" json:"actualDepartureTime,omitempty"`
	ActualArrivalTime   *time.Time             `gorm:"column:actual_arrival_time" json:"actualArrivalTime,omitempty"`
	Status              constants.FlightStatus `gorm:"column:status;type:varchar(20);not null;default:'scheduled';index" json:"status"`
	BasePrice           float64                `gorm:"column:base_price;type:numeric(10,2);not null" json:"basePrice"`
	Currency            string                 `gorm:"column:currency;type:varchar(3);not null;default:'USD'" json:"currency"`
	TotalSeats          int                    `gorm:"column:total_seats;not null" json:"totalSeats"`
	AvailableSeats      int                    `gorm:"column:available_seats;not null" json:"availableSeats"`
	Gate                *string                `gorm:"column:gate;type:varchar(10)" json:"gate,omitempty"`
	Terminal            *string                `gorm:"column:terminal;type:varchar(10)" json:"terminal,omitempty"`
	DelayReason         *string                `gorm:"column:delay_reason;type:text" json:"delayReason,omitempty"`
	IsActive            bool                   `gorm:"column:is_active;not null;default:true" json:"isActive"`
	CreatedAt           time.Time              `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time              `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	// Relationships
	Airline          *Airline  `gorm:"foreignKey:AirlineID" json:"airline,omitempty"`
	Airplane         *Airplane `gorm:"foreignKey:AirplaneID" json:"airplane,omitempty"`
	DepartureAirport *Airport  `gorm:"foreignKey:DepartureAirportID" json:"departureAirport,omitempty"`
	ArrivalAirport   *Airport  `gorm:"foreignKey:ArrivalAirportID" json:"arrivalAirport,omitempty"`
	Seats            []Seat    `gorm:"foreignKey:FlightID" json:"seats,omitempty"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flights"
}
