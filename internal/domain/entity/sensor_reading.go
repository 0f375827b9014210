// Package entity contains the core business objects of the project.
package entity

import "time"

// SensorType identifies the kind of measurement a box sensor reports.
type SensorType string

const (
	// SensorTemperature reports degrees Celsius.
	SensorTemperature SensorType = "temperature"
	// SensorHumidity reports relative humidity percentage.
	SensorHumidity SensorType = "humidity"
	// SensorWeight reports contents weight in grams.
	SensorWeight SensorType = "weight"
)

// String returns the string representation of the SensorType.
func (t SensorType) String() string {
	return string(t)
}

// IsValid checks if the SensorType is a valid value.
func (t SensorType) IsValid() bool {
	switch t {
	case SensorTemperature, SensorHumidity, SensorWeight:
		return true
	default:
		return false
	}
}

// AllSensorTypes lists every supported sensor type, in report order.
func AllSensorTypes() []SensorType {
	return []SensorType{SensorTemperature, SensorHumidity, SensorWeight}
}

// SensorReading is a single time-series measurement reported by a box.
type SensorReading struct {
	ID         int64      `json:"id"`
	BoxID      int64      `json:"box_id"`
	Type       SensorType `json:"type"`
	Value      float64    `json:"value"`
	RecordedAt time.Time  `json:"recorded_at"`
}
