package model

import (
	"time"
)

// SensorReadingModel is the GORM-specific struct for the 'sensor_readings' table.
// Readings are append-only time series data, so no soft delete column.
type SensorReadingModel struct {
	ID         int64     `gorm:"primary_key;autoIncrement"`
	BoxID      int64     `gorm:"not null;index:idx_readings_box_type_time,priority:1"`
	Type       string    `gorm:"type:varchar(20);not null;index:idx_readings_box_type_time,priority:2"`
	Value      float64   `gorm:"type:double precision;not null"`
	RecordedAt time.Time `gorm:"not null;index:idx_readings_box_type_time,priority:3,sort:desc"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SensorReadingModel) TableName() string {
	return "sensor_readings"
}
