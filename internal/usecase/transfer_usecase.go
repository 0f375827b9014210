package usecase

import (
	"context"

	"neosafe/internal/domain/entity"
)

// TransferUsecase defines the property-code transfer workflow: a user
// presents a box's property code, the box's provider approves or rejects.
type TransferUsecase interface {
	// RequestTransfer opens a pending transfer request for the box carrying
	// the property code. One pending request per (box, requestor) pair.
	RequestTransfer(ctx context.Context, principal entity.Principal, propertyCode, notes string) (*entity.TransferRequest, error)

	// ListTransferRequests retrieves the requests visible to the principal:
	// admins see all, providers the requests against their boxes, users
	// their own requests.
	ListTransferRequests(ctx context.Context, principal entity.Principal) ([]*entity.TransferRequest, error)

	// RespondToRequest resolves a pending request. Approval moves box
	// ownership to the requestor under one transaction; rejection returns
	// the box to available. Provider of the box (or admin) only.
	RespondToRequest(ctx context.Context, principal entity.Principal, requestID int64, approve bool, notes string) (*entity.TransferRequest, error)
}
