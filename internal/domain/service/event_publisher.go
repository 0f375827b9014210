package service

import (
	"context"
)

// Box event types carried on the queue.
const (
	EventBoxClaimed        = "box.claimed"
	EventTransferRequested = "transfer.requested"
	EventTransferResolved  = "transfer.resolved"
	EventBoxUnlock         = "box.unlock"
)

// BoxEvent represents a box lifecycle event to be processed by the box worker,
// which fans it out as push notifications to the affected account's devices.
type BoxEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Type      string `json:"type"`                 // One of the Event* constants
	BoxID     int64  `json:"box_id"`
	BoxName   string `json:"box_name"`
	ActorID   string `json:"actor_id"`             // Account that triggered the event
	TargetID  string `json:"target_id"`            // Account whose devices should be notified
	Detail    string `json:"detail,omitempty"`     // Human-readable event summary
	Decision  string `json:"decision,omitempty"`   // approved/rejected for transfer.resolved
}

// EventPublisher defines the interface for publishing box events to a message queue
type EventPublisher interface {
	// PublishBoxEvent publishes a box event for async processing
	PublishBoxEvent(ctx context.Context, event *BoxEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
