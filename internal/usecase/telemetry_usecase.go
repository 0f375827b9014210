package usecase

import (
	"context"
	"time"

	"neosafe/internal/domain/entity"
)

// ReadingView is one sensor's latest state as presented to clients. When the
// store has no reading for a sensor (or the store is unreachable), Available
// is false and Value/RecordedAt are nil; values are never invented.
type ReadingView struct {
	Type       entity.SensorType `json:"type"`
	Value      *float64          `json:"value"`
	RecordedAt *time.Time        `json:"recorded_at"`
	Available  bool              `json:"available"`
}

// ReadingInput carries one device-reported measurement.
type ReadingInput struct {
	BoxID      int64
	Type       entity.SensorType
	Value      float64
	RecordedAt time.Time
}

// TelemetryUsecase defines the permission-gated telemetry read and ingest
// use cases. Every read is authorized against the box visibility policy
// before the time-series store is touched.
type TelemetryUsecase interface {
	// LatestReadings retrieves the most recent reading of every sensor type
	// for the box, with unavailable placeholders for sensors that have never
	// reported.
	LatestReadings(ctx context.Context, principal entity.Principal, boxID int64) ([]*ReadingView, error)

	// HistoricalReadings retrieves one sensor's readings within [from, to].
	HistoricalReadings(ctx context.Context, principal entity.Principal, boxID int64, sensorType entity.SensorType, from, to time.Time) ([]*entity.SensorReading, error)

	// IngestReading appends a device-reported measurement to the series.
	IngestReading(ctx context.Context, input *ReadingInput) (*entity.SensorReading, error)

	// CameraStream returns the box's live camera stream pointer. The stream
	// itself is served elsewhere; this only authorizes and resolves the URL.
	CameraStream(ctx context.Context, principal entity.Principal, boxID int64) (string, error)
}
