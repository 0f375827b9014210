package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"neosafe/config"
	"neosafe/internal/domain/entity"
	domainerrors "neosafe/internal/domain/errors"
	"neosafe/internal/domain/repository"
	mockRepo "neosafe/internal/mocks/repository"
	"neosafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type telemetryServiceMocks struct {
	boxRepo     *mockRepo.MockBoxRepository
	readingRepo *mockRepo.MockSensorReadingRepository
}

func newTelemetryServiceForTest(t *testing.T, cfg *config.Config) (usecase.TelemetryUsecase, *telemetryServiceMocks) {
	if cfg == nil {
		cfg = &config.Config{}
	}
	mocks := &telemetryServiceMocks{
		boxRepo:     mockRepo.NewMockBoxRepository(t),
		readingRepo: mockRepo.NewMockSensorReadingRepository(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewTelemetryService(TelemetryServiceParams{
		BoxRepo:     mocks.boxRepo,
		ReadingRepo: mocks.readingRepo,
		Config:      cfg,
		Logger:      logger,
	})

	return svc, mocks
}

func ownedBoxForTest(boxID int64, ownerID uuid.UUID) *entity.SafeBox {
	return &entity.SafeBox{
		ID:         boxID,
		ProviderID: uuid.New(),
		OwnerID:    &ownerID,
		IsClaimed:  true,
		Status:     entity.BoxStatusTransferred,
	}
}

func TestTelemetryService_LatestReadings(t *testing.T) {
	svc, mocks := newTelemetryServiceForTest(t, nil)

	ctx := context.Background()
	ownerID := uuid.New()
	owner := entity.Principal{ID: ownerID, Role: entity.RoleUser}
	recordedAt := time.Now().Add(-time.Minute)

	mocks.boxRepo.EXPECT().FindBoxByID(ctx, int64(42)).Return(ownedBoxForTest(42, ownerID), nil)

	mocks.readingRepo.EXPECT().
		FindLatestReading(ctx, int64(42), entity.SensorTemperature).
		Return(&entity.SensorReading{
			BoxID: 42, Type: entity.SensorTemperature, Value: 22.5, RecordedAt: recordedAt,
		}, nil)
	mocks.readingRepo.EXPECT().
		FindLatestReading(ctx, int64(42), entity.SensorHumidity).
		Return(&entity.SensorReading{
			BoxID: 42, Type: entity.SensorHumidity, Value: 61.0, RecordedAt: recordedAt,
		}, nil)
	mocks.readingRepo.EXPECT().
		FindLatestReading(ctx, int64(42), entity.SensorWeight).
		Return(&entity.SensorReading{
			BoxID: 42, Type: entity.SensorWeight, Value: 1250.0, RecordedAt: recordedAt,
		}, nil)

	views, err := svc.LatestReadings(ctx, owner, 42)
	require.NoError(t, err)
	require.Len(t, views, 3)
	for _, view := range views {
		assert.True(t, view.Available)
		require.NotNil(t, view.Value)
		require.NotNil(t, view.RecordedAt)
	}
	assert.Equal(t, 22.5, *views[0].Value)
}

func TestTelemetryService_LatestReadings_MissingSensorYieldsPlaceholder(t *testing.T) {
	svc, mocks := newTelemetryServiceForTest(t, nil)

	ctx := context.Background()
	ownerID := uuid.New()
	owner := entity.Principal{ID: ownerID, Role: entity.RoleUser}

	mocks.boxRepo.EXPECT().FindBoxByID(ctx, int64(42)).Return(ownedBoxForTest(42, ownerID), nil)

	mocks.readingRepo.EXPECT().
		FindLatestReading(ctx, int64(42), entity.SensorTemperature).
		Return(&entity.SensorReading{
			BoxID: 42, Type: entity.SensorTemperature, Value: 22.5, RecordedAt: time.Now(),
		}, nil)
	mocks.readingRepo.EXPECT().
		FindLatestReading(ctx, int64(42), entity.SensorHumidity).
		Return(nil, repository.ErrReadingNotFound)
	mocks.readingRepo.EXPECT().
		FindLatestReading(ctx, int64(42), entity.SensorWeight).
		Return(nil, errors.New("connection refused"))

	views, err := svc.LatestReadings(ctx, owner, 42)
	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.True(t, views[0].Available)

	assert.False(t, views[1].Available)
	assert.Nil(t, views[1].Value)
	assert.Nil(t, views[1].RecordedAt)

	assert.False(t, views[2].Available)
	assert.Nil(t, views[2].Value)
}

func TestTelemetryService_LatestReadings_OutOfScopeReportsNotFound(t *testing.T) {
	svc, mocks := newTelemetryServiceForTest(t, nil)

	ctx := context.Background()
	stranger := entity.Principal{ID: uuid.New(), Role: entity.RoleUser}

	mocks.boxRepo.EXPECT().FindBoxByID(ctx, int64(42)).Return(ownedBoxForTest(42, uuid.New()), nil)

	views, err := svc.LatestReadings(ctx, stranger, 42)
	require.ErrorIs(t, err, domainerrors.ErrBoxNotFound)
	assert.Nil(t, views)
}

func TestTelemetryService_HistoricalReadings(t *testing.T) {
	svc, mocks := newTelemetryServiceForTest(t, nil)

	ctx := context.Background()
	ownerID := uuid.New()
	owner := entity.Principal{ID: ownerID, Role: entity.RoleUser}
	from := time.Now().Add(-time.Hour)
	to := time.Now()

	mocks.boxRepo.EXPECT().FindBoxByID(ctx, int64(42)).Return(ownedBoxForTest(42, ownerID), nil)
	mocks.readingRepo.EXPECT().
		FindReadingsInRange(ctx, int64(42), entity.SensorTemperature, from, to).
		Return([]*entity.SensorReading{
			{BoxID: 42, Type: entity.SensorTemperature, Value: 21.0, RecordedAt: from.Add(10 * time.Minute)},
			{BoxID: 42, Type: entity.SensorTemperature, Value: 22.0, RecordedAt: from.Add(30 * time.Minute)},
		}, nil)

	readings, err := svc.HistoricalReadings(ctx, owner, 42, entity.SensorTemperature, from, to)
	require.NoError(t, err)
	assert.Len(t, readings, 2)
}

func TestTelemetryService_HistoricalReadings_Validation(t *testing.T) {
	ctx := context.Background()
	owner := entity.Principal{ID: uuid.New(), Role: entity.RoleUser}
	now := time.Now()

	t.Run("unknown sensor type", func(t *testing.T) {
		svc, _ := newTelemetryServiceForTest(t, nil)

		_, err := svc.HistoricalReadings(ctx, owner, 42, entity.SensorType("voltage"), now.Add(-time.Hour), now)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("inverted time range", func(t *testing.T) {
		svc, _ := newTelemetryServiceForTest(t, nil)

		_, err := svc.HistoricalReadings(ctx, owner, 42, entity.SensorTemperature, now, now.Add(-time.Hour))
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestTelemetryService_IngestReading(t *testing.T) {
	svc, mocks := newTelemetryServiceForTest(t, nil)

	ctx := context.Background()
	recordedAt := time.Now().Add(-time.Second)

	mocks.boxRepo.EXPECT().FindBoxByID(ctx, int64(42)).Return(&entity.SafeBox{
		ID:     42,
		Status: entity.BoxStatusAvailable,
	}, nil)
	mocks.readingRepo.EXPECT().
		InsertReading(ctx, &entity.SensorReading{
			BoxID:      42,
			Type:       entity.SensorWeight,
			Value:      980.0,
			RecordedAt: recordedAt,
		}).
		Return(nil)

	reading, err := svc.IngestReading(ctx, &usecase.ReadingInput{
		BoxID:      42,
		Type:       entity.SensorWeight,
		Value:      980.0,
		RecordedAt: recordedAt,
	})
	require.NoError(t, err)
	assert.Equal(t, recordedAt, reading.RecordedAt)
}

func TestTelemetryService_IngestReading_DefaultsRecordedAt(t *testing.T) {
	svc, mocks := newTelemetryServiceForTest(t, nil)

	ctx := context.Background()
	before := time.Now()

	mocks.boxRepo.EXPECT().FindBoxByID(ctx, int64(42)).Return(&entity.SafeBox{
		ID:     42,
		Status: entity.BoxStatusAvailable,
	}, nil)
	mocks.readingRepo.EXPECT().
		InsertReading(ctx, mock.AnythingOfType("*entity.SensorReading")).
		Return(nil)

	reading, err := svc.IngestReading(ctx, &usecase.ReadingInput{
		BoxID: 42,
		Type:  entity.SensorTemperature,
		Value: 20.0,
	})
	require.NoError(t, err)
	assert.False(t, reading.RecordedAt.Before(before))
}

func TestTelemetryService_IngestReading_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown sensor type", func(t *testing.T) {
		svc, _ := newTelemetryServiceForTest(t, nil)

		_, err := svc.IngestReading(ctx, &usecase.ReadingInput{
			BoxID: 42,
			Type:  entity.SensorType("voltage"),
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("unknown box", func(t *testing.T) {
		svc, mocks := newTelemetryServiceForTest(t, nil)

		mocks.boxRepo.EXPECT().
			FindBoxByID(ctx, int64(99)).
			Return(nil, repository.ErrBoxNotFound)

		_, err := svc.IngestReading(ctx, &usecase.ReadingInput{
			BoxID: 99,
			Type:  entity.SensorTemperature,
		})
		assert.ErrorIs(t, err, domainerrors.ErrBoxNotFound)
	})
}

func TestTelemetryService_CameraStream(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	owner := entity.Principal{ID: ownerID, Role: entity.RoleUser}

	t.Run("box-specific URL wins", func(t *testing.T) {
		svc, mocks := newTelemetryServiceForTest(t, &config.Config{
			Camera: &config.CameraConfig{StreamURLTemplate: "rtsp://cam.local/box-%d"},
		})

		box := ownedBoxForTest(42, ownerID)
		box.CameraStreamURL = "rtsp://cam.local/custom"
		mocks.boxRepo.EXPECT().FindBoxByID(ctx, int64(42)).Return(box, nil)

		url, err := svc.CameraStream(ctx, owner, 42)
		require.NoError(t, err)
		assert.Equal(t, "rtsp://cam.local/custom", url)
	})

	t.Run("falls back to template", func(t *testing.T) {
		svc, mocks := newTelemetryServiceForTest(t, &config.Config{
			Camera: &config.CameraConfig{StreamURLTemplate: "rtsp://cam.local/box-%d"},
		})

		mocks.boxRepo.EXPECT().FindBoxByID(ctx, int64(42)).Return(ownedBoxForTest(42, ownerID), nil)

		url, err := svc.CameraStream(ctx, owner, 42)
		require.NoError(t, err)
		assert.Equal(t, "rtsp://cam.local/box-42", url)
	})

	t.Run("not configured", func(t *testing.T) {
		svc, mocks := newTelemetryServiceForTest(t, &config.Config{})

		mocks.boxRepo.EXPECT().FindBoxByID(ctx, int64(42)).Return(ownedBoxForTest(42, ownerID), nil)

		_, err := svc.CameraStream(ctx, owner, 42)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}
