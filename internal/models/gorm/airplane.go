package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// SeatConfig maps a seat class name to the number of seats in that class.
// Stored as JSONB in Postgres and as serialized JSON under sqlite in tests.
type SeatConfig map[string]int

// Scan implements the sql.Scanner interface for SeatConfig
func (c *SeatConfig) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for SeatConfig: %T", value)
	}
	return json.Unmarshal(data, c)
}

// Value implements the driver.Valuer interface for SeatConfig
func (c SeatConfig) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

// Airplane represents an aircraft in the fleet. Owned by fleet management;
// read-only input to seat layout generation.
type Airplane struct {
	ID                 string     `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	AirlineID          string     `gorm:"column:airline_id;type:uuid;not null" json:"airlineId"`
	Manufacturer       string     `gorm:"column:manufacturer;type:varchar(50);not null" json:"manufacturer"`
	Model              string     `gorm:"column:model;type:varchar(50);not null" json:"model"`
	RegistrationNumber string     `gorm:"column:registration_number;type:varchar(20);not null;uniqueIndex" json:"registrationNumber"`
	Capacity           int        `gorm:"column:capacity;not null" json:"capacity"`
	SeatConfiguration  SeatConfig `gorm:"column:seat_configuration;type:jsonb" json:"seatConfiguration,omitempty"`
	IsActive           bool       `gorm:"column:is_active;not null;default:true" json:"isActive"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// TableName specifies the table name for GORM
func (Airplane) TableName() string {
	return "airplanes"
}
