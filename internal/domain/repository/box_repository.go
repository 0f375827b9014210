// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"neosafe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for box persistence.
var (
	// ErrBoxNotFound is returned when a box is not found.
	ErrBoxNotFound = errors.New("box not found")
	// ErrDuplicateClaimCode is returned when a freshly generated claim code
	// collides with an existing one on insert.
	ErrDuplicateClaimCode = errors.New("claim code already assigned")
	// ErrDuplicatePropertyCode is returned when a property code collides on assignment.
	ErrDuplicatePropertyCode = errors.New("property code already assigned")
	// ErrClaimConflict is returned when a conditional claim matched a box that
	// is no longer unclaimed: the caller lost the race.
	ErrClaimConflict = errors.New("box already claimed")
	// ErrBoxStateConflict is returned when a conditional status transition
	// matched no row in the expected state.
	ErrBoxStateConflict = errors.New("box not in expected state")
	// ErrBoxClaimed is returned when deleting a claimed box.
	ErrBoxClaimed = errors.New("claimed box cannot be deleted")
)

// BoxRepository is the registry's persistence contract. Every mutation is a
// single atomic statement against the store: the store's conditional-write
// guarantee is the authority for claim atomicity, never application memory.
type BoxRepository interface {
	// CreateBox persists a new box with its pre-generated claim code.
	// Returns ErrDuplicateClaimCode when the unique claim-code index rejects
	// the insert; callers regenerate and retry.
	CreateBox(ctx context.Context, box *entity.SafeBox) error

	// FindBoxByID retrieves a box by its registry identity.
	FindBoxByID(ctx context.Context, id int64) (*entity.SafeBox, error)

	// FindBoxByClaimCode retrieves a box by its 8-char claim code.
	FindBoxByClaimCode(ctx context.Context, code string) (*entity.SafeBox, error)

	// FindBoxByPropertyCode retrieves a box by its 6-char property code.
	FindBoxByPropertyCode(ctx context.Context, code string) (*entity.SafeBox, error)

	// ListUnclaimed retrieves every unclaimed box (admin inventory view).
	ListUnclaimed(ctx context.Context) ([]*entity.SafeBox, error)

	// ListUnclaimedByProvider retrieves a provider's unclaimed boxes.
	ListUnclaimedByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.SafeBox, error)

	// ListOwnedBy retrieves the claimed boxes owned by an account.
	ListOwnedBy(ctx context.Context, ownerID uuid.UUID) ([]*entity.SafeBox, error)

	// Claim atomically transitions the box with the given code from unclaimed
	// to claimed by claimantID. Linearizable per code: when N callers race,
	// exactly one succeeds, the rest get ErrClaimConflict. Unknown codes
	// return ErrBoxNotFound.
	Claim(ctx context.Context, code string, claimantID uuid.UUID) (*entity.SafeBox, error)

	// SetPropertyCode assigns a transfer code to an available box.
	// Returns ErrBoxStateConflict when the box is not available and
	// ErrDuplicatePropertyCode on a code collision.
	SetPropertyCode(ctx context.Context, boxID int64, code string) error

	// MarkPendingTransfer moves an available box to pending_transfer.
	MarkPendingTransfer(ctx context.Context, boxID int64, requestedAt time.Time) error

	// CompleteTransfer moves a pending_transfer box to transferred: sets the
	// owner, the claimed flag, and invalidates the property code.
	CompleteTransfer(ctx context.Context, boxID int64, ownerID uuid.UUID) error

	// RevertPendingTransfer moves a pending_transfer box back to available.
	RevertPendingTransfer(ctx context.Context, boxID int64) error

	// DeleteBox removes an unclaimed box. Returns ErrBoxClaimed when the box
	// has an owner; claimed boxes are immutable outside the transfer paths.
	DeleteBox(ctx context.Context, id int64) error
}
