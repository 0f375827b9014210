// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"neosafe/internal/domain/entity"
	domainerrors "neosafe/internal/domain/errors"
	"neosafe/internal/domain/repository"
	"neosafe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// boxRepository implements the repository.BoxRepository interface.
type boxRepository struct {
	db *gorm.DB
}

// NewBoxRepository is the constructor for boxRepository.
func NewBoxRepository(db *gorm.DB) repository.BoxRepository {
	return &boxRepository{
		db: db,
	}
}

// CreateBox persists a new box with its pre-generated claim code.
func (repo *boxRepository) CreateBox(ctx context.Context, box *entity.SafeBox) error {
	boxM := fromBoxDomain(box)

	if err := repo.db.WithContext(ctx).Create(boxM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateClaimCode
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrBoxCreationFailed.WrapMessage("missing required box information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create box")
	}

	// Update the entity with generated values
	box.ID = boxM.ID
	box.CreatedAt = boxM.CreatedAt
	box.UpdatedAt = boxM.UpdatedAt

	return nil
}

// FindBoxByID retrieves a box by its registry identity.
func (repo *boxRepository) FindBoxByID(ctx context.Context, id int64) (*entity.SafeBox, error) {
	var boxM model.SafeBoxModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&boxM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBoxNotFound
		}

		return nil, errors.Wrap(err, "failed to find box by ID")
	}

	return toBoxDomain(&boxM), nil
}

// FindBoxByClaimCode retrieves a box by its 8-char claim code.
func (repo *boxRepository) FindBoxByClaimCode(ctx context.Context, code string) (*entity.SafeBox, error) {
	var boxM model.SafeBoxModel

	if err := repo.db.WithContext(ctx).
		Where("claim_code = ?", code).
		First(&boxM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBoxNotFound
		}

		return nil, errors.Wrap(err, "failed to find box by claim code")
	}

	return toBoxDomain(&boxM), nil
}

// FindBoxByPropertyCode retrieves a box by its 6-char property code.
func (repo *boxRepository) FindBoxByPropertyCode(ctx context.Context, code string) (*entity.SafeBox, error) {
	var boxM model.SafeBoxModel

	if err := repo.db.WithContext(ctx).
		Where("property_code = ?", code).
		First(&boxM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBoxNotFound
		}

		return nil, errors.Wrap(err, "failed to find box by property code")
	}

	return toBoxDomain(&boxM), nil
}

// ListUnclaimed retrieves every unclaimed box, newest first.
func (repo *boxRepository) ListUnclaimed(ctx context.Context) ([]*entity.SafeBox, error) {
	var boxModels []*model.SafeBoxModel

	if err := repo.db.WithContext(ctx).
		Where("is_claimed = ?", false).
		Order("created_at DESC").
		Find(&boxModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list unclaimed boxes")
	}

	return toBoxDomainSlice(boxModels), nil
}

// ListUnclaimedByProvider retrieves a provider's unclaimed boxes, newest first.
func (repo *boxRepository) ListUnclaimedByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.SafeBox, error) {
	var boxModels []*model.SafeBoxModel

	if err := repo.db.WithContext(ctx).
		Where("provider_id = ? AND is_claimed = ?", providerID, false).
		Order("created_at DESC").
		Find(&boxModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list unclaimed boxes by provider")
	}

	return toBoxDomainSlice(boxModels), nil
}

// ListOwnedBy retrieves the claimed boxes owned by an account, newest first.
func (repo *boxRepository) ListOwnedBy(ctx context.Context, ownerID uuid.UUID) ([]*entity.SafeBox, error) {
	var boxModels []*model.SafeBoxModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND is_claimed = ?", ownerID, true).
		Order("created_at DESC").
		Find(&boxModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list boxes by owner")
	}

	return toBoxDomainSlice(boxModels), nil
}

// Claim atomically transitions the box with the given claim code to claimed.
// Only an available box matches: a box with a transfer in flight must stay
// claimable exclusively through the provider-approval path, otherwise the
// open request could never be resolved. The single conditional UPDATE is the
// linearization point: the database guarantees at most one caller matches the
// available row, so concurrent claimants never both win. Losers are
// distinguished from unknown codes and in-flight transfers by a follow-up
// lookup.
func (repo *boxRepository) Claim(ctx context.Context, code string, claimantID uuid.UUID) (*entity.SafeBox, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SafeBoxModel{}).
		Where("claim_code = ? AND is_claimed = ? AND status = ?",
			code, false, entity.BoxStatusAvailable.String()).
		Updates(map[string]any{
			"owner_id":   claimantID,
			"is_claimed": true,
			"status":     entity.BoxStatusTransferred.String(),
		})

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to claim box")
	}

	if result.RowsAffected == 0 {
		// The code does not exist, a transfer is in flight, or someone else
		// claimed the box first.
		var boxM model.SafeBoxModel
		if err := repo.db.WithContext(ctx).
			Where("claim_code = ?", code).
			First(&boxM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, repository.ErrBoxNotFound
			}

			return nil, errors.Wrap(err, "failed to resolve claim conflict")
		}

		if !boxM.IsClaimed && boxM.Status == entity.BoxStatusPendingTransfer.String() {
			return nil, repository.ErrBoxStateConflict
		}

		return nil, repository.ErrClaimConflict
	}

	box, err := repo.FindBoxByClaimCode(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload claimed box")
	}

	return box, nil
}

// SetPropertyCode assigns a transfer code to an available box.
func (repo *boxRepository) SetPropertyCode(ctx context.Context, boxID int64, code string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SafeBoxModel{}).
		Where("id = ? AND status = ?", boxID, entity.BoxStatusAvailable.String()).
		Update("property_code", code)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicatePropertyCode
		}

		return errors.Wrap(result.Error, "failed to set property code")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindBoxByID(ctx, boxID); err != nil {
			return err
		}

		return repository.ErrBoxStateConflict
	}

	return nil
}

// MarkPendingTransfer moves an available box to pending_transfer.
func (repo *boxRepository) MarkPendingTransfer(ctx context.Context, boxID int64, requestedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SafeBoxModel{}).
		Where("id = ? AND status = ?", boxID, entity.BoxStatusAvailable.String()).
		Updates(map[string]any{
			"status":                entity.BoxStatusPendingTransfer.String(),
			"transfer_requested_at": requestedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark box pending transfer")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindBoxByID(ctx, boxID); err != nil {
			return err
		}

		return repository.ErrBoxStateConflict
	}

	return nil
}

// CompleteTransfer moves a pending_transfer box to transferred: sets the
// owner, the claimed flag, and invalidates the property code. The claim code
// column keeps its value so the code stays reserved by the unique index.
func (repo *boxRepository) CompleteTransfer(ctx context.Context, boxID int64, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SafeBoxModel{}).
		Where("id = ? AND status = ?", boxID, entity.BoxStatusPendingTransfer.String()).
		Updates(map[string]any{
			"owner_id":              ownerID,
			"is_claimed":            true,
			"status":                entity.BoxStatusTransferred.String(),
			"property_code":         nil,
			"transfer_requested_at": nil,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to complete transfer")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindBoxByID(ctx, boxID); err != nil {
			return err
		}

		return repository.ErrBoxStateConflict
	}

	return nil
}

// RevertPendingTransfer moves a pending_transfer box back to available.
func (repo *boxRepository) RevertPendingTransfer(ctx context.Context, boxID int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SafeBoxModel{}).
		Where("id = ? AND status = ?", boxID, entity.BoxStatusPendingTransfer.String()).
		Updates(map[string]any{
			"status":                entity.BoxStatusAvailable.String(),
			"transfer_requested_at": nil,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to revert pending transfer")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindBoxByID(ctx, boxID); err != nil {
			return err
		}

		return repository.ErrBoxStateConflict
	}

	return nil
}

// DeleteBox removes an unclaimed box (soft delete). Claimed boxes are refused.
func (repo *boxRepository) DeleteBox(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND is_claimed = ?", id, false).
		Delete(&model.SafeBoxModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete box")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindBoxByID(ctx, id); err != nil {
			return err
		}

		return repository.ErrBoxClaimed
	}

	return nil
}

// --- Mapper Functions ---

// toBoxDomain converts a GORM SafeBoxModel to a domain SafeBox entity.
func toBoxDomain(data *model.SafeBoxModel) *entity.SafeBox {
	if data == nil {
		return nil
	}

	return &entity.SafeBox{
		ID:                  data.ID,
		Name:                data.Name,
		Model:               data.Model,
		SerialNumber:        data.SerialNumber,
		ProviderID:          data.ProviderID,
		OwnerID:             data.OwnerID,
		ClaimCode:           data.ClaimCode,
		PropertyCode:        data.PropertyCode,
		IsClaimed:           data.IsClaimed,
		Status:              entity.BoxStatus(data.Status),
		CameraStreamURL:     data.CameraStreamURL,
		TransferRequestedAt: data.TransferRequestedAt,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromBoxDomain converts a domain SafeBox entity to a GORM SafeBoxModel.
func fromBoxDomain(data *entity.SafeBox) *model.SafeBoxModel {
	if data == nil {
		return nil
	}

	return &model.SafeBoxModel{
		ID:                  data.ID,
		Name:                data.Name,
		Model:               data.Model,
		SerialNumber:        data.SerialNumber,
		ProviderID:          data.ProviderID,
		OwnerID:             data.OwnerID,
		ClaimCode:           data.ClaimCode,
		PropertyCode:        data.PropertyCode,
		IsClaimed:           data.IsClaimed,
		Status:              data.Status.String(),
		CameraStreamURL:     data.CameraStreamURL,
		TransferRequestedAt: data.TransferRequestedAt,
	}
}

func toBoxDomainSlice(boxModels []*model.SafeBoxModel) []*entity.SafeBox {
	boxes := make([]*entity.SafeBox, 0, len(boxModels))
	for _, boxM := range boxModels {
		boxes = append(boxes, toBoxDomain(boxM))
	}

	return boxes
}
