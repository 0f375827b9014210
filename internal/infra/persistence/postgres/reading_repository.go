// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"neosafe/internal/domain/entity"
	domainerrors "neosafe/internal/domain/errors"
	"neosafe/internal/domain/repository"
	"neosafe/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sensorReadingRepository implements the repository.SensorReadingRepository interface.
type sensorReadingRepository struct {
	db *gorm.DB
}

// NewSensorReadingRepository is the constructor for sensorReadingRepository.
func NewSensorReadingRepository(db *gorm.DB) repository.SensorReadingRepository {
	return &sensorReadingRepository{
		db: db,
	}
}

// InsertReading appends one measurement to the time series.
func (repo *sensorReadingRepository) InsertReading(ctx context.Context, reading *entity.SensorReading) error {
	readingM := fromReadingDomain(reading)

	if err := repo.db.WithContext(ctx).Create(readingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBoxNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert sensor reading")
	}

	reading.ID = readingM.ID

	return nil
}

// FindLatestReading retrieves the most recent reading of one sensor type.
func (repo *sensorReadingRepository) FindLatestReading(ctx context.Context, boxID int64, sensorType entity.SensorType) (*entity.SensorReading, error) {
	var readingM model.SensorReadingModel

	if err := repo.db.WithContext(ctx).
		Where("box_id = ? AND type = ?", boxID, sensorType.String()).
		Order("recorded_at DESC").
		First(&readingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReadingNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest sensor reading")
	}

	return toReadingDomain(&readingM), nil
}

// FindReadingsInRange retrieves readings of one sensor type within [from, to],
// ordered by recording time ascending.
func (repo *sensorReadingRepository) FindReadingsInRange(ctx context.Context, boxID int64, sensorType entity.SensorType, from, to time.Time) ([]*entity.SensorReading, error) {
	var readingModels []*model.SensorReadingModel

	if err := repo.db.WithContext(ctx).
		Where("box_id = ? AND type = ? AND recorded_at BETWEEN ? AND ?", boxID, sensorType.String(), from, to).
		Order("recorded_at ASC").
		Find(&readingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sensor readings in range")
	}

	readings := make([]*entity.SensorReading, 0, len(readingModels))
	for _, readingM := range readingModels {
		readings = append(readings, toReadingDomain(readingM))
	}

	return readings, nil
}

// --- Mapper Functions ---

// toReadingDomain converts a GORM SensorReadingModel to a domain SensorReading entity.
func toReadingDomain(data *model.SensorReadingModel) *entity.SensorReading {
	if data == nil {
		return nil
	}

	return &entity.SensorReading{
		ID:         data.ID,
		BoxID:      data.BoxID,
		Type:       entity.SensorType(data.Type),
		Value:      data.Value,
		RecordedAt: data.RecordedAt,
	}
}

// fromReadingDomain converts a domain SensorReading entity to a GORM SensorReadingModel.
func fromReadingDomain(data *entity.SensorReading) *model.SensorReadingModel {
	if data == nil {
		return nil
	}

	return &model.SensorReadingModel{
		ID:         data.ID,
		BoxID:      data.BoxID,
		Type:       data.Type.String(),
		Value:      data.Value,
		RecordedAt: data.RecordedAt,
	}
}
