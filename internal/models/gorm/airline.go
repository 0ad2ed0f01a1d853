package gorm

import "time"

// Airline represents an operating airline
type Airline struct {
	ID       string `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	Code     string `gorm:"column:code;type:varchar(3);not null;uniqueIndex" json:"code"`
	Name     string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Country  string `gorm:"column:country;type:varchar(100)" json:"country"`
	IsActive bool   `gorm:"column:is_active;not null;default:true" json:"isActive"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// TableName specifies the table name for GORM
func (Airline) TableName() string {
	return "airlines"
}
