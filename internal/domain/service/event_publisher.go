package service

import (
	"context"
)

// NewEventsMessage announces events created by an import run
type NewEventsMessage struct {
	RequestID string   `json:"request_id,omitempty"` // For distributed tracing
	Source    string   `json:"source,omitempty"`
	City      string   `json:"city,omitempty"`
	EventIDs  []string `json:"event_ids"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNewEvents publishes the IDs of newly imported events
	PublishNewEvents(ctx context.Context, msg *NewEventsMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
