// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice represents a mobile device registered as a push target for box
// events (claims, transfer decisions, unlock confirmations). The box worker
// resolves an event's target account to its active devices and sends one FCM
// message per token.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`         // Registry identity of the push target.
	UserID    uuid.UUID `json:"user_id"`    // Account whose box events land on this device.
	FCMToken  string    `json:"fcm_token"`  // Firebase Cloud Messaging token; rotated on re-registration.
	DeviceID  string    `json:"device_id"`  // Client-supplied hardware identifier, stable across reinstalls.
	Platform  string    `json:"platform"`   // Device platform (ios, android).
	IsActive  bool      `json:"is_active"`  // Only active devices take part in event fan-out.
	CreatedAt time.Time `json:"created_at"` // When the device was enrolled.
	UpdatedAt time.Time `json:"updated_at"` // Last token rotation or state change.
}
