package gorm

import "time"

// Airport represents an airport record keyed by its IATA code for search
type Airport struct {
	ID       string `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	IATACode string `gorm:"column:iata_code;type:varchar(3);not null;uniqueIndex" json:"iataCode"`
	ICAOCode string `gorm:"column:icao_code;type:varchar(4)" json:"icaoCode,omitempty"`
	Name     string `gorm:"column:name;type:text;not null" json:"name"`
	City     string `gorm:"column:city;type:varchar(100)" json:"city"`
	Country  string `gorm:"column:country;type:varchar(100)" json:"country"`
	Timezone string `gorm:"column:timezone;type:varchar(50)" json:"timezone,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// TableName specifies the table name for GORM
func (Airport) TableName() string {
	return "airports"
}
