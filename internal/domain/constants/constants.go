// Package constants holds cross-layer constant values.
package constants

// Pub/Sub provider names accepted by configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Context keys set by the auth middleware and read by handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
)

// Job event types published on job lifecycle changes.
const (
	JobEventAssigned      = "assigned"
	JobEventStatusChanged = "status_changed"
)
