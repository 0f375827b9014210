package impl

import (
	"context"
	"log/slog"

	deliverycontext "neosafe/internal/delivery/context"
	"neosafe/internal/domain/entity"
	domainerrors "neosafe/internal/domain/errors"
	"neosafe/internal/domain/policy"
	"neosafe/internal/domain/repository"
	"neosafe/internal/domain/service"
	"neosafe/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxCodeAttempts bounds the regenerate-and-retry loop on claim and property
// code collisions. The 36^8 code space makes even one retry rare.
const maxCodeAttempts = 5

type boxService struct {
	boxRepo       repository.BoxRepository
	codeGenerator service.CodeGenerator
	qrcodeService service.QRCodeService
	publisher     service.EventPublisher
	logger        *slog.Logger
}

// BoxServiceParams holds dependencies for BoxService, injected by Fx.
type BoxServiceParams struct {
	fx.In

	BoxRepo       repository.BoxRepository
	CodeGenerator service.CodeGenerator
	QRCodeService service.QRCodeService
	Publisher     service.EventPublisher
	Logger        *slog.Logger
}

// NewBoxService creates a new box service instance
func NewBoxService(params BoxServiceParams) usecase.BoxUsecase {
	return &boxService{
		boxRepo:       params.BoxRepo,
		codeGenerator: params.CodeGenerator,
		qrcodeService: params.QRCodeService,
		publisher:     params.Publisher,
		logger:        params.Logger,
	}
}

// CreateBox registers a new box under the provider with a fresh claim code.
func (s *boxService) CreateBox(ctx context.Context, principal entity.Principal, input *usecase.BoxInput) (*entity.SafeBox, error) {
	if !principal.IsProvider() && !principal.IsAdmin() {
		return nil, domainerrors.ErrForbidden
	}

	box := &entity.SafeBox{
		Name:            input.Name,
		Model:           input.Model,
		SerialNumber:    input.SerialNumber,
		ProviderID:      principal.ID,
		CameraStreamURL: input.CameraStreamURL,
		IsClaimed:       false,
		Status:          entity.BoxStatusAvailable,
	}

	// The unique index is the uniqueness authority; regenerate on collision.
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := s.codeGenerator.NewClaimCode()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate claim code")
		}
		box.ClaimCode = code

		err = s.boxRepo.CreateBox(ctx, box)
		if err == nil {
			return box, nil
		}
		if errors.Is(err, repository.ErrDuplicateClaimCode) {
			continue
		}

		return nil, errors.Wrap(err, "failed to create box")
	}

	return nil, domainerrors.ErrBoxCreationFailed.WrapMessage("claim code generation kept colliding")
}

// GetBox retrieves one box, subject to visibility rules.
func (s *boxService) GetBox(ctx context.Context, principal entity.Principal, boxID int64) (*entity.SafeBox, error) {
	box, err := s.visibleBox(ctx, principal, boxID)
	if err != nil {
		return nil, err
	}

	return sanitizeBox(box), nil
}

// ListBoxes retrieves the boxes visible to the principal.
func (s *boxService) ListBoxes(ctx context.Context, principal entity.Principal) ([]*entity.SafeBox, error) {
	var (
		boxes []*entity.SafeBox
		err   error
	)

	switch principal.Role {
	case entity.RoleAdmin:
		boxes, err = s.boxRepo.ListUnclaimed(ctx)
	case entity.RoleProvider:
		boxes, err = s.boxRepo.ListUnclaimedByProvider(ctx, principal.ID)
	case entity.RoleUser:
		boxes, err = s.boxRepo.ListOwnedBy(ctx, principal.ID)
	default:
		return nil, domainerrors.ErrForbidden
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to list boxes")
	}

	for i, box := range boxes {
		boxes[i] = sanitizeBox(box)
	}

	return boxes, nil
}

// ClaimBox transfers ownership of the box carrying the claim code to the principal.
func (s *boxService) ClaimBox(ctx context.Context, principal entity.Principal, claimCode string) (*entity.SafeBox, error) {
	if !principal.IsUser() {
		return nil, domainerrors.ErrForbidden
	}
	if len(claimCode) != service.ClaimCodeLength {
		return nil, domainerrors.ErrClaimCodeNotFound
	}

	box, err := s.boxRepo.Claim(ctx, claimCode, principal.ID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBoxNotFound):
			return nil, domainerrors.ErrClaimCodeNotFound
		case errors.Is(err, repository.ErrClaimConflict):
			return nil, domainerrors.ErrBoxAlreadyClaimed
		case errors.Is(err, repository.ErrBoxStateConflict):
			return nil, domainerrors.ErrBoxNotAvailable
		default:
			return nil, errors.Wrap(err, "failed to claim box")
		}
	}

	s.publishEvent(ctx, &service.BoxEvent{
		Type:     service.EventBoxClaimed,
		BoxID:    box.ID,
		BoxName:  box.Name,
		ActorID:  principal.ID.String(),
		TargetID: box.ProviderID.String(),
		Detail:   "箱子已被認領",
	})

	return sanitizeBox(box), nil
}

// ClaimBoxFromQR parses a scanned claim QR and claims the embedded code.
func (s *boxService) ClaimBoxFromQR(ctx context.Context, principal entity.Principal, qrData string) (*entity.SafeBox, error) {
	claimCode, err := s.qrcodeService.ParseClaimQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrClaimCodeNotFound
	}

	return s.ClaimBox(ctx, principal, claimCode)
}

// GenerateClaimQR renders the box's claim code as a printable QR image.
func (s *boxService) GenerateClaimQR(ctx context.Context, principal entity.Principal, boxID int64) ([]byte, error) {
	box, err := s.visibleBox(ctx, principal, boxID)
	if err != nil {
		return nil, err
	}
	if !policy.CanModify(principal, box) {
		return nil, domainerrors.ErrForbidden
	}

	qrCode, err := s.qrcodeService.GenerateClaimQR(box.ClaimCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate claim QR")
	}

	return qrCode, nil
}

// GeneratePropertyCode assigns a fresh property code to an available box.
func (s *boxService) GeneratePropertyCode(ctx context.Context, principal entity.Principal, boxID int64) (string, error) {
	box, err := s.visibleBox(ctx, principal, boxID)
	if err != nil {
		return "", err
	}
	if !policy.CanModify(principal, box) {
		return "", domainerrors.ErrForbidden
	}
	if box.Status != entity.BoxStatusAvailable {
		return "", domainerrors.ErrBoxNotAvailable
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := s.codeGenerator.NewPropertyCode()
		if err != nil {
			return "", errors.Wrap(err, "failed to generate property code")
		}

		err = s.boxRepo.SetPropertyCode(ctx, boxID, code)
		if err == nil {
			return code, nil
		}
		switch {
		case errors.Is(err, repository.ErrDuplicatePropertyCode):
			continue
		case errors.Is(err, repository.ErrBoxStateConflict):
			return "", domainerrors.ErrBoxNotAvailable
		default:
			return "", errors.Wrap(err, "failed to set property code")
		}
	}

	return "", domainerrors.ErrInternalError.WrapMessage("property code generation kept colliding")
}

// UnlockBox sends the remote unlock signal for a claimed box.
func (s *boxService) UnlockBox(ctx context.Context, principal entity.Principal, boxID int64) error {
	box, err := s.visibleBox(ctx, principal, boxID)
	if err != nil {
		return err
	}
	if !policy.CanUnlock(principal, box) {
		return domainerrors.ErrForbidden
	}

	event := &service.BoxEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      service.EventBoxUnlock,
		BoxID:     box.ID,
		BoxName:   box.Name,
		ActorID:   principal.ID.String(),
		TargetID:  principal.ID.String(),
		Detail:    "遠端開鎖指令已送出",
	}
	if err := s.publisher.PublishBoxEvent(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish unlock event")
	}

	return nil
}

// DeleteBox removes an unclaimed box from the registry.
func (s *boxService) DeleteBox(ctx context.Context, principal entity.Principal, boxID int64) error {
	box, err := s.visibleBox(ctx, principal, boxID)
	if err != nil {
		return err
	}
	if !policy.CanModify(principal, box) {
		return domainerrors.ErrForbidden
	}

	if err := s.boxRepo.DeleteBox(ctx, boxID); err != nil {
		switch {
		case errors.Is(err, repository.ErrBoxNotFound):
			return domainerrors.ErrBoxNotFound
		case errors.Is(err, repository.ErrBoxClaimed):
			return domainerrors.ErrClaimedBoxImmutable
		default:
			return errors.Wrap(err, "failed to delete box")
		}
	}

	return nil
}

// visibleBox loads the box and applies the visibility policy. Boxes outside
// the principal's scope surface as not found so their existence never leaks.
func (s *boxService) visibleBox(ctx context.Context, principal entity.Principal, boxID int64) (*entity.SafeBox, error) {
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

// publishEvent publishes best-effort: the state change already committed, so
// a queue outage must not fail the request.
func (s *boxService) publishEvent(ctx context.Context, event *service.BoxEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := s.publisher.PublishBoxEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish box event",
			slog.String("event_type", event.Type),
			slog.Int64("box_id", event.BoxID),
			slog.String("error", err.Error()),
		)
	}
}

// sanitizeBox blanks the claim code on claimed boxes before they leave the
// service. The code stays reserved in storage but is a secret with no
// remaining consumer once ownership has transferred.
func sanitizeBox(box *entity.SafeBox) *entity.SafeBox {
	if box == nil {
		return nil
	}

	if box.IsClaimed {
		cloned := *box
		cloned.ClaimCode = ""

		return &cloned
	}

	return box
}
