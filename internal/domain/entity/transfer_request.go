// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransferStatus represents the state of a property-code transfer request.
type TransferStatus string

const (
	// TransferStatusPending means the request awaits a provider decision.
	TransferStatusPending TransferStatus = "pending"
	// TransferStatusApproved means the provider approved the transfer and ownership moved.
	TransferStatusApproved TransferStatus = "approved"
	// TransferStatusRejected means the provider rejected the transfer.
	TransferStatusRejected TransferStatus = "rejected"
)

// String returns the string representation of the TransferStatus.
func (s TransferStatus) String() string {
	return string(s)
}

// TransferRequest is a user's request to take ownership of a box using its
// 6-char property code, resolved by the box's provider. This is the approval
// based transfer path; the claim-code path transfers ownership directly.
type TransferRequest struct {
	ID           int64          `json:"id"`
	BoxID        int64          `json:"box_id"`
	RequestorID  uuid.UUID      `json:"requestor_id"`  // User asking for ownership.
	ProviderID   uuid.UUID      `json:"provider_id"`   // Provider who must respond; copied from the box.
	PropertyCode string         `json:"property_code"` // Code presented by the requestor.
	Status       TransferStatus `json:"status"`
	Notes        string         `json:"notes,omitempty"` // Optional provider comment on the decision.
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
