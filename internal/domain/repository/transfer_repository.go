package repository

import (
	"context"

	"neosafe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for transfer-request persistence.
var (
	// ErrTransferRequestNotFound is returned when a transfer request is not found.
	ErrTransferRequestNotFound = errors.New("transfer request not found")
	// ErrTransferNotPending is returned when resolving a request that has
	// already been processed.
	ErrTransferNotPending = errors.New("transfer request not pending")
)

// TransferRequestRepository defines the interface for property-code transfer
// request persistence.
type TransferRequestRepository interface {
	// CreateRequest persists a new pending transfer request.
	CreateRequest(ctx context.Context, req *entity.TransferRequest) error

	// FindRequestByID retrieves a transfer request by its identity.
	FindRequestByID(ctx context.Context, id int64) (*entity.TransferRequest, error)

	// FindPendingRequest retrieves the requestor's pending request for a box,
	// or ErrTransferRequestNotFound when none exists.
	FindPendingRequest(ctx context.Context, boxID int64, requestorID uuid.UUID) (*entity.TransferRequest, error)

	// ListRequests retrieves every transfer request (admin view).
	ListRequests(ctx context.Context) ([]*entity.TransferRequest, error)

	// ListRequestsByProvider retrieves requests targeting a provider's boxes.
	ListRequestsByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.TransferRequest, error)

	// ListRequestsByRequestor retrieves a user's own requests.
	ListRequestsByRequestor(ctx context.Context, requestorID uuid.UUID) ([]*entity.TransferRequest, error)

	// ResolveRequest atomically moves a pending request to approved or
	// rejected. Returns ErrTransferNotPending when the request was already
	// processed by a concurrent caller.
	ResolveRequest(ctx context.Context, id int64, status entity.TransferStatus, notes string) error
}
