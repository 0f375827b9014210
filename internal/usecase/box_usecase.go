// Package usecase defines the application-level contracts between the HTTP
// delivery layer and the business services.
package usecase

import (
	"context"

	"neosafe/internal/domain/entity"
)

// BoxInput carries the provider-supplied fields for registering a new box.
type BoxInput struct {
	Name            string
	Model           string
	SerialNumber    string
	CameraStreamURL string
}

// BoxUsecase defines the box registry and claim use cases. Every operation
// takes the request principal and enforces the role-scoped access policy
// before touching storage.
type BoxUsecase interface {
	// CreateBox registers a new box under the provider and assigns it a
	// fresh unique claim code. Admins may also register boxes on behalf of
	// themselves as provider.
	CreateBox(ctx context.Context, principal entity.Principal, input *BoxInput) (*entity.SafeBox, error)

	// GetBox retrieves one box, subject to visibility rules. Boxes outside
	// the principal's scope are reported as not found, never as forbidden.
	GetBox(ctx context.Context, principal entity.Principal, boxID int64) (*entity.SafeBox, error)

	// ListBoxes retrieves the boxes visible to the principal: admins see the
	// unclaimed inventory, providers their own unclaimed boxes, users the
	// boxes they own.
	ListBoxes(ctx context.Context, principal entity.Principal) ([]*entity.SafeBox, error)

	// ClaimBox transfers ownership of the box carrying the claim code to the
	// principal. Exactly one concurrent claimant per code succeeds.
	ClaimBox(ctx context.Context, principal entity.Principal, claimCode string) (*entity.SafeBox, error)

	// ClaimBoxFromQR parses a scanned claim QR and claims the embedded code.
	ClaimBoxFromQR(ctx context.Context, principal entity.Principal, qrData string) (*entity.SafeBox, error)

	// GenerateClaimQR renders the box's claim code as a printable QR image.
	GenerateClaimQR(ctx context.Context, principal entity.Principal, boxID int64) ([]byte, error)

	// GeneratePropertyCode assigns a fresh 6-char property code to an
	// available box, enabling the approval-based transfer path.
	GeneratePropertyCode(ctx context.Context, principal entity.Principal, boxID int64) (string, error)

	// UnlockBox sends the remote unlock signal for a claimed box. Owner only.
	UnlockBox(ctx context.Context, principal entity.Principal, boxID int64) error

	// DeleteBox removes an unclaimed box from the registry.
	DeleteBox(ctx context.Context, principal entity.Principal, boxID int64) error
}
