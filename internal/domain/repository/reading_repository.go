package repository

import (
	"context"
	"time"

	"neosafe/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrReadingNotFound is returned when no reading exists for the requested
// box and sensor type.
var ErrReadingNotFound = errors.New("sensor reading not found")

// SensorReadingRepository is the time-series store contract consumed by the
// telemetry gateway. The gateway never touches the store before the access
// policy has permitted the read.
type SensorReadingRepository interface {
	// InsertReading appends one measurement to the time series.
	InsertReading(ctx context.Context, reading *entity.SensorReading) error

	// FindLatestReading retrieves the most recent reading of one sensor type.
	FindLatestReading(ctx context.Context, boxID int64, sensorType entity.SensorType) (*entity.SensorReading, error)

	// FindReadingsInRange retrieves readings of one sensor type within
	// [from, to], ordered by recording time ascending.
	FindReadingsInRange(ctx context.Context, boxID int64, sensorType entity.SensorType, from, to time.Time) ([]*entity.SensorReading, error)
}
