package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "neosafe/internal/delivery/context"
	"neosafe/internal/domain/entity"
	domainerrors "neosafe/internal/domain/errors"
	"neosafe/internal/domain/repository"
	"neosafe/internal/domain/service"
	"neosafe/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type transferService struct {
	boxRepo      repository.BoxRepository
	transferRepo repository.TransferRequestRepository
	txManager    repository.TransactionManager
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// TransferServiceParams holds dependencies for TransferService, injected by Fx.
type TransferServiceParams struct {
	fx.In

	BoxRepo      repository.BoxRepository
	TransferRepo repository.TransferRequestRepository
	TxManager    repository.TransactionManager
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewTransferService creates a new transfer service instance
func NewTransferService(params TransferServiceParams) usecase.TransferUsecase {
	return &transferService{
		boxRepo:      params.BoxRepo,
		transferRepo: params.TransferRepo,
		txManager:    params.TxManager,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// RequestTransfer opens a pending transfer request for the box carrying the
// property code. The box moves to pending_transfer and the request is created
// under one transaction so neither can exist without the other.
func (s *transferService) RequestTransfer(ctx context.Context, principal entity.Principal, propertyCode, notes string) (*entity.TransferRequest, error) {
	if !principal.IsUser() {
		return nil, domainerrors.ErrForbidden
	}
	if len(propertyCode) != service.PropertyCodeLength {
		return nil, domainerrors.ErrPropertyCodeNotFound
	}

	box, err := s.boxRepo.FindBoxByPropertyCode(ctx, propertyCode)
	if err != nil {
		if errors.Is(err, repository.ErrBoxNotFound) {
			return nil, domainerrors.ErrPropertyCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find box by property code")
	}

	if box.IsClaimed {
		return nil, domainerrors.ErrBoxAlreadyClaimed
	}
	if box.Status != entity.BoxStatusAvailable {
		return nil, domainerrors.ErrBoxNotAvailable
	}

	if _, err := s.transferRepo.FindPendingRequest(ctx, box.ID, principal.ID); err == nil {
		return nil, domainerrors.ErrPendingTransferExists
	} else if !errors.Is(err, repository.ErrTransferRequestNotFound) {
		return nil, errors.Wrap(err, "failed to check pending transfer request")
	}

	request := &entity.TransferRequest{
		BoxID:        box.ID,
		RequestorID:  principal.ID,
		ProviderID:   box.ProviderID,
		PropertyCode: propertyCode,
		Status:       entity.TransferStatusPending,
		Notes:        notes,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewBoxRepository().MarkPendingTransfer(ctx, box.ID, time.Now()); err != nil {
			if errors.Is(err, repository.ErrBoxStateConflict) {
				return domainerrors.ErrBoxNotAvailable
			}

			return errors.Wrap(err, "failed to mark box pending transfer")
		}

		if err := factory.NewTransferRequestRepository().CreateRequest(ctx, request); err != nil {
			return errors.Wrap(err, "failed to create transfer request")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, &service.BoxEvent{
		Type:     service.EventTransferRequested,
		BoxID:    box.ID,
		BoxName:  box.Name,
		ActorID:  principal.ID.String(),
		TargetID: box.ProviderID.String(),
		Detail:   "收到新的過戶申請",
	})

	return request, nil
}

// ListTransferRequests retrieves the requests visible to the principal.
func (s *transferService) ListTransferRequests(ctx context.Context, principal entity.Principal) ([]*entity.TransferRequest, error) {
	var (
		requests []*entity.TransferRequest
		err      error
	)

	switch principal.Role {
	case entity.RoleAdmin:
		requests, err = s.transferRepo.ListRequests(ctx)
	case entity.RoleProvider:
		requests, err = s.transferRepo.ListRequestsByProvider(ctx, principal.ID)
	case entity.RoleUser:
		requests, err = s.transferRepo.ListRequestsByRequestor(ctx, principal.ID)
	default:
		return nil, domainerrors.ErrForbidden
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to list transfer requests")
	}

	return requests, nil
}

// RespondToRequest resolves a pending request. Approval moves box ownership
// to the requestor; rejection returns the box to available. The request and
// box mutations commit together or not at all.
func (s *transferService) RespondToRequest(ctx context.Context, principal entity.Principal, requestID int64, approve bool, notes string) (*entity.TransferRequest, error) {
	request, err := s.transferRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrTransferRequestNotFound) {
			return nil, domainerrors.ErrTransferRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find transfer request by ID")
	}

	if !principal.IsAdmin() {
		if !principal.IsProvider() || request.ProviderID != principal.ID {
			return nil, domainerrors.ErrNotTransferProvider
		}
	}

	if request.Status != entity.TransferStatusPending {
		return nil, domainerrors.ErrTransferAlreadyProcessed
	}

	status := entity.TransferStatusRejected
	if approve {
		status = entity.TransferStatusApproved
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewTransferRequestRepository().ResolveRequest(ctx, requestID, status, notes); err != nil {
			if errors.Is(err, repository.ErrTransferNotPending) {
				return domainerrors.ErrTransferAlreadyProcessed
			}

			return errors.Wrap(err, "failed to resolve transfer request")
		}

		boxRepo := factory.NewBoxRepository()
		if approve {
			if err := boxRepo.CompleteTransfer(ctx, request.BoxID, request.RequestorID); err != nil {
				if errors.Is(err, repository.ErrBoxStateConflict) {
					return domainerrors.ErrBoxNotAvailable
				}

				return errors.Wrap(err, "failed to complete transfer")
			}

			return nil
		}

		if err := boxRepo.RevertPendingTransfer(ctx, request.BoxID); err != nil {
			if errors.Is(err, repository.ErrBoxStateConflict) {
				return domainerrors.ErrBoxNotAvailable
			}

			return errors.Wrap(err, "failed to revert pending transfer")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	request.Status = status
	request.Notes = notes

	decision := entity.TransferStatusRejected.String()
	detail := "過戶申請已被拒絕"
	if approve {
		decision = entity.TransferStatusApproved.String()
		detail = "過戶申請已通過，箱子已轉移"
	}

	s.publishEvent(ctx, &service.BoxEvent{
		Type:     service.EventTransferResolved,
		BoxID:    request.BoxID,
		ActorID:  principal.ID.String(),
		TargetID: request.RequestorID.String(),
		Detail:   detail,
		Decision: decision,
	})

	return request, nil
}

// publishEvent publishes best-effort: the state change already committed, so
// a queue outage must not fail the request.
func (s *transferService) publishEvent(ctx context.Context, event *service.BoxEvent) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := s.publisher.PublishBoxEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish box event",
			slog.String("event_type", event.Type),
			slog.Int64("box_id", event.BoxID),
			slog.String("error", err.Error()),
		)
	}
}
