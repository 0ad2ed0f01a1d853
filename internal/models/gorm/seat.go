package gorm

import (
	"fmt"
	"time"

	"skyward-experiment/flightdeck/internal/constants"
)

// Seat represents one physical seat on a flight. Rows are created in bulk
// when the flight is created and the layout never changes afterwards; only
// the availability and blocked flags are mutated by the booking subsystem.
type Seat struct {
	ID          string              `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	FlightID    string              `gorm:"column:flight_id;type:uuid;not null;uniqueIndex:idx_flight_seat,priority:1" json:"flightId"`
	SeatNumber  string              `gorm:"column:seat_number;type:varchar(4);not null;uniqueIndex:idx_flight_seat,priority:2" json:"seatNumber"`
	Row         int                 `gorm:"column:row;not null" json:"row"`
	Column      string              `gorm:"column:column;type:varchar(1);not null" json:"column"`
	SeatClass   constants.SeatClass `gorm:"column:seat_class;type:varchar(20);not null;index" json:"seatClass"`
	SeatType    constants.SeatType  `gorm:"column:seat_type;type:varchar(10);not null" json:"seatType"`
	IsAvailable bool                `gorm:"column:is_available;not null;default:true" json:"isAvailable"`
	IsBlocked   bool                `gorm:"column:is_blocked;not null;default:false" json:"isBlocked"`
	BasePrice   float64             `gorm:"column:base_price;type:numeric(10,2);not null;default:0" json:"basePrice"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (Seat) TableName() string {
	return "seats"
}

// Label returns the human readable seat number, e.g. "12C".
func (s Seat) Label() string {
	return fmt.Sprintf("%d%s", s.Row, s.Column)
}
