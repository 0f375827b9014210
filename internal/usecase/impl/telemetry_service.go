package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"neosafe/config"
	"neosafe/internal/domain/entity"
	domainerrors "neosafe/internal/domain/errors"
	"neosafe/internal/domain/policy"
	"neosafe/internal/domain/repository"
	"neosafe/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type telemetryService struct {
	boxRepo     repository.BoxRepository
	readingRepo repository.SensorReadingRepository
	config      *config.Config
	logger      *slog.Logger
}

// TelemetryServiceParams holds dependencies for TelemetryService, injected by Fx.
type TelemetryServiceParams struct {
	fx.In

	BoxRepo     repository.BoxRepository
	ReadingRepo repository.SensorReadingRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewTelemetryService creates a new telemetry service instance
func NewTelemetryService(params TelemetryServiceParams) usecase.TelemetryUsecase {
	return &telemetryService{
		boxRepo:     params.BoxRepo,
		readingRepo: params.ReadingRepo,
		config:      params.Config,
		logger:      params.Logger,
	}
}

// LatestReadings retrieves the most recent reading of every sensor type for
// the box. A sensor that has never reported, or a store failure, yields an
// unavailable placeholder for that sensor; values are never invented.
func (s *telemetryService) LatestReadings(ctx context.Context, principal entity.Principal, boxID int64) ([]*usecase.ReadingView, error) {
	if _, err := s.visibleBox(ctx, principal, boxID); err != nil {
		return nil, err
	}

	sensorTypes := entity.AllSensorTypes()
	views := make([]*usecase.ReadingView, 0, len(sensorTypes))

	for _, sensorType := range sensorTypes {
		reading, err := s.readingRepo.FindLatestReading(ctx, boxID, sensorType)
		if err != nil {
			if !errors.Is(err, repository.ErrReadingNotFound) {
				s.logger.Warn("failed to read latest sensor value",
					slog.Int64("box_id", boxID),
					slog.String("sensor_type", sensorType.String()),
					slog.String("error", err.Error()),
				)
			}
			views = append(views, &usecase.ReadingView{
				Type:      sensorType,
				Available: false,
			})

			continue
		}

		value := reading.Value
		recordedAt := reading.RecordedAt
		views = append(views, &usecase.ReadingView{
			Type:       sensorType,
			Value:      &value,
			RecordedAt: &recordedAt,
			Available:  true,
		})
	}

	return views, nil
}

// HistoricalReadings retrieves one sensor's readings within [from, to].
func (s *telemetryService) HistoricalReadings(ctx context.Context, principal entity.Principal, boxID int64, sensorType entity.SensorType, from, to time.Time) ([]*entity.SensorReading, error) {
	if !sensorType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown sensor type")
	}
	if from.After(to) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid time range")
	}

	if _, err := s.visibleBox(ctx, principal, boxID); err != nil {
		return nil, err
	}

	readings, err := s.readingRepo.FindReadingsInRange(ctx, boxID, sensorType, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find sensor readings in range")
	}

	return readings, nil
}

// IngestReading appends a device-reported measurement to the series.
func (s *telemetryService) IngestReading(ctx context.Context, input *usecase.ReadingInput) (*entity.SensorReading, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown sensor type")
	}

	if _, err := s.boxRepo.FindBoxByID(ctx, input.BoxID); err != nil {
		if errors.Is(err, repository.ErrBoxNotFound) {
			return nil, domainerrors.ErrBoxNotFound
		}

		return nil, errors.Wrap(err, "failed to find box by ID")
	}

	recordedAt := input.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	reading := &entity.SensorReading{
		BoxID:      input.BoxID,
		Type:       input.Type,
		Value:      input.Value,
		RecordedAt: recordedAt,
	}

	if err := s.readingRepo.InsertReading(ctx, reading); err != nil {
		return nil, errors.Wrap(err, "failed to insert sensor reading")
	}

	return reading, nil
}

// CameraStream returns the box's live camera stream pointer.
func (s *telemetryService) CameraStream(ctx context.Context, principal entity.Principal, boxID int64) (string, error) {
	box, err := s.visibleBox(ctx, principal, boxID)
	if err != nil {
		return "", err
	}

	if box.CameraStreamURL != "" {
		return box.CameraStreamURL, nil
	}

	if s.config.Camera != nil && s.config.Camera.StreamURLTemplate != "" {
		template := s.config.Camera.StreamURLTemplate
		if strings.Contains(template, "%d") {
			return fmt.Sprintf(template, box.ID), nil
		}

		return template, nil
	}

	return "", domainerrors.ErrNotFound.WrapMessage("no camera stream configured for box")
}

// visibleBox loads the box and applies the visibility policy.
func (s *telemetryService) visibleBox(ctx context.Context, principal entity.Principal, boxID int64) (*entity.SafeBox, error) {
	box, err := s.boxRepo.FindBoxByID(ctx, boxID)
	if err != nil {
		if errors.Is(err, repository.ErrBoxNotFound) {
			return nil, domainerrors.ErrBoxNotFound
		}

		return nil, errors.Wrap(err, "failed to find box by ID")
	}

	if !policy.CanView(principal, box) {
		return nil, domainerrors.ErrBoxNotFound
	}

	return box, nil
}
