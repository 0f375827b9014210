// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"neosafe/internal/domain/entity"
	domainerrors "neosafe/internal/domain/errors"
	"neosafe/internal/domain/repository"
	"neosafe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// transferRequestRepository implements the repository.TransferRequestRepository interface.
type transferRequestRepository struct {
	db *gorm.DB
}

// NewTransferRequestRepository is the constructor for transferRequestRepository.
func NewTransferRequestRepository(db *gorm.DB) repository.TransferRequestRepository {
	return &transferRequestRepository{
		db: db,
	}
}

// CreateRequest persists a new pending transfer request.
func (repo *transferRequestRepository) CreateRequest(ctx context.Context, req *entity.TransferRequest) error {
	reqM := fromTransferRequestDomain(req)
	reqM.Status = entity.TransferStatusPending.String()

	if err := repo.db.WithContext(ctx).Create(reqM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBoxNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required transfer request information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transfer request")
	}

	// Update the entity with generated values
	req.ID = reqM.ID
	req.Status = entity.TransferStatus(reqM.Status)
	req.CreatedAt = reqM.CreatedAt
	req.UpdatedAt = reqM.UpdatedAt

	return nil
}

// FindRequestByID retrieves a transfer request by its identity.
func (repo *transferRequestRepository) FindRequestByID(ctx context.Context, id int64) (*entity.TransferRequest, error) {
	var reqM model.TransferRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reqM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransferRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find transfer request by ID")
	}

	return toTransferRequestDomain(&reqM), nil
}

// FindPendingRequest retrieves the requestor's pending request for a box.
func (repo *transferRequestRepository) FindPendingRequest(ctx context.Context, boxID int64, requestorID uuid.UUID) (*entity.TransferRequest, error) {
	var reqM model.TransferRequestModel

	if err := repo.db.WithContext(ctx).
		Where("box_id = ? AND requestor_id = ? AND status = ?", boxID, requestorID, entity.TransferStatusPending.String()).
		First(&reqM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransferRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending transfer request")
	}

	return toTransferRequestDomain(&reqM), nil
}

// ListRequests retrieves every transfer request, newest first.
func (repo *transferRequestRepository) ListRequests(ctx context.Context) ([]*entity.TransferRequest, error) {
	var reqModels []*model.TransferRequestModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&reqModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list transfer requests")
	}

	return toTransferRequestDomainSlice(reqModels), nil
}

// ListRequestsByProvider retrieves requests targeting a provider's boxes, newest first.
func (repo *transferRequestRepository) ListRequestsByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.TransferRequest, error) {
	var reqModels []*model.TransferRequestModel

	if err := repo.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&reqModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list transfer requests by provider")
	}

	return toTransferRequestDomainSlice(reqModels), nil
}

// ListRequestsByRequestor retrieves a user's own requests, newest first.
func (repo *transferRequestRepository) ListRequestsByRequestor(ctx context.Context, requestorID uuid.UUID) ([]*entity.TransferRequest, error) {
	var reqModels []*model.TransferRequestModel

	if err := repo.db.WithContext(ctx).
		Where("requestor_id = ?", requestorID).
		Order("created_at DESC").
		Find(&reqModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list transfer requests by requestor")
	}

	return toTransferRequestDomainSlice(reqModels), nil
}

// ResolveRequest atomically moves a pending request to approved or rejected.
// The conditional WHERE on status makes concurrent resolutions race safely:
// only one matches the pending row.
func (repo *transferRequestRepository) ResolveRequest(ctx context.Context, id int64, status entity.TransferStatus, notes string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TransferRequestModel{}).
		Where("id = ? AND status = ?", id, entity.TransferStatusPending.String()).
		Updates(map[string]any{
			"status": status.String(),
			"notes":  notes,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to resolve transfer request")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindRequestByID(ctx, id); err != nil {
			return err
		}

		return repository.ErrTransferNotPending
	}

	return nil
}

// --- Mapper Functions ---

// toTransferRequestDomain converts a GORM TransferRequestModel to a domain TransferRequest entity.
func toTransferRequestDomain(data *model.TransferRequestModel) *entity.TransferRequest {
	if data == nil {
		return nil
	}

	return &entity.TransferRequest{
		ID:           data.ID,
		BoxID:        data.BoxID,
		RequestorID:  data.RequestorID,
		ProviderID:   data.ProviderID,
		PropertyCode: data.PropertyCode,
		Status:       entity.TransferStatus(data.Status),
		Notes:        data.Notes,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromTransferRequestDomain converts a domain TransferRequest entity to a GORM TransferRequestModel.
func fromTransferRequestDomain(data *entity.TransferRequest) *model.TransferRequestModel {
	if data == nil {
		return nil
	}

	return &model.TransferRequestModel{
		ID:           data.ID,
		BoxID:        data.BoxID,
		RequestorID:  data.RequestorID,
		ProviderID:   data.ProviderID,
		PropertyCode: data.PropertyCode,
		Status:       data.Status.String(),
		Notes:        data.Notes,
	}
}

func toTransferRequestDomainSlice(reqModels []*model.TransferRequestModel) []*entity.TransferRequest {
	requests := make([]*entity.TransferRequest, 0, len(reqModels))
	for _, reqM := range reqModels {
		requests = append(requests, toTransferRequestDomain(reqM))
	}

	return requests
}
