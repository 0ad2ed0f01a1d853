package gorm

import "time"

// Booking is owned by the booking subsystem. Only the per-flight count is
// read here, to guard schedule changes on flights that already have
// ticketed passengers.
type Booking struct {
	ID         string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	FlightID   string    `gorm:"column:flight_id;type:uuid;not null;index" json:"flightId"`
	UserID     string    `gorm:"column:user_id;type:uuid;not null" json:"userId"`
	PNR        string    `gorm:"column:pnr;type:varchar(8);not null;uniqueIndex" json:"pnr"`
	Status     string    `gorm:"column:status;type:varchar(20);not null;default:'confirmed'" json:"status"`
	TotalPrice float64   `gorm:"column:total_price;type:numeric(10,2);not null" json:"totalPrice"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (Booking) TableName() string {
	return "bookings"
}
