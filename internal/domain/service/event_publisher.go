package service

import (
	"context"
	"time"
)

// AvailabilityRequestEvent is published when someone outside every zone asks to be
// told once delivery reaches them.
type AvailabilityRequestEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	WaitlistID  string    `json:"waitlist_id"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CellTopic   string    `json:"cell_topic"`
	UserID      string    `json:"user_id,omitempty"`
	DeviceID    string    `json:"device_id,omitempty"`
	Contact     string    `json:"contact,omitempty"`
	RequestedAt time.Time `json:"requested_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAvailabilityRequest publishes a waitlist request for async processing
	PublishAvailabilityRequest(ctx context.Context, event *AvailabilityRequestEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
