// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BoxStatus represents the transfer lifecycle state of a safe box.
type BoxStatus string

const (
	// BoxStatusAvailable means the box is unclaimed and no transfer is in flight.
	BoxStatusAvailable BoxStatus = "available"
	// BoxStatusPendingTransfer means a property-code transfer request awaits provider approval.
	BoxStatusPendingTransfer BoxStatus = "pending_transfer"
	// BoxStatusTransferred means the box has a confirmed owner.
	BoxStatusTransferred BoxStatus = "transferred"
)

// String returns the string representation of the BoxStatus.
func (s BoxStatus) String() string {
	return string(s)
}

// IsValid checks if the BoxStatus is a valid value.
func (s BoxStatus) IsValid() bool {
	switch s {
	case BoxStatusAvailable, BoxStatusPendingTransfer, BoxStatusTransferred:
		return true
	default:
		return false
	}
}

// SafeBox is a physical safe-box device record. Invariants maintained by the
// registry and transfer engine:
//   - the claim code is unique across all boxes (claimed codes stay reserved),
//   - IsClaimed is true exactly when OwnerID is set,
//   - every box has exactly one provider, assigned at creation.
type SafeBox struct {
	ID                  int64      `json:"id"`                              // Registry-assigned numeric identity, immutable.
	Name                string     `json:"name"`                            // Display name given by the provider.
	Model               string     `json:"model"`                           // Hardware model label.
	SerialNumber        string     `json:"serial_number"`                   // Manufacturer serial number.
	ProviderID          uuid.UUID  `json:"provider_id"`                     // Account that registered the box; immutable.
	OwnerID             *uuid.UUID `json:"owner_id"`                        // Claiming account; nil until claimed.
	ClaimCode           string     `json:"claim_code,omitempty"`            // One-time 8-char claim secret; hidden once claimed.
	PropertyCode        *string    `json:"property_code,omitempty"`         // Optional 6-char provider-approved transfer code.
	IsClaimed           bool       `json:"is_claimed"`                      // True after a successful claim.
	Status              BoxStatus  `json:"status"`                          // available, pending_transfer or transferred.
	CameraStreamURL     string     `json:"camera_stream_url,omitempty"`     // Pointer to the live camera stream (not proxied here).
	TransferRequestedAt *time.Time `json:"transfer_requested_at,omitempty"` // When the pending transfer was requested.
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// OwnedBy reports whether the box is claimed and owned by the given account.
func (b *SafeBox) OwnedBy(accountID uuid.UUID) bool {
	return b.IsClaimed && b.OwnerID != nil && *b.OwnerID == accountID
}

// ProvidedBy reports whether the box was registered by the given provider account.
func (b *SafeBox) ProvidedBy(accountID uuid.UUID) bool {
	return b.ProviderID == accountID
}
