package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JobEvent describes a job lifecycle change published for asynchronous
// consumers (push fan-out worker, audit sinks).
type JobEvent struct {
	EventType  string     `json:"event_type"` // "assigned" or "status_changed"
	JobID      uuid.UUID  `json:"job_id"`
	Reference  string     `json:"reference"`
	Status     string     `json:"status"`
	DriverID   *uuid.UUID `json:"driver_id,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
	RequestID  string     `json:"request_id,omitempty"`
}

// EventPublisher defines the interface for publishing job events.
type EventPublisher interface {
	// PublishJobEvent publishes a job lifecycle event. Delivery is
	// best-effort from the API's perspective; failures must not abort the
	// originating request.
	PublishJobEvent(ctx context.Context, event *JobEvent) error

	// Close releases publisher resources.
	Close() error
}
