package service

import (
	"context"
)

// SalonEvent represents a salon mutation to be consumed by downstream workers
// (reminder scheduling, analytics).
type SalonEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	Type          string `json:"type"`                 // One of the constants.SalonEvent* values
	SalonID       string `json:"salon_id"`
	OwnerID       string `json:"owner_id,omitempty"`
	OwnerPromoted bool   `json:"owner_promoted,omitempty"` // True when the mutation promoted the owner's role
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSalonEvent publishes a salon mutation event for async processing
	PublishSalonEvent(ctx context.Context, event *SalonEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
