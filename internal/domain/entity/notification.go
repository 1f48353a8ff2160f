package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a per-recipient in-app notification row with a read flag.
// It is a table scanned on demand, not a queue; a row is inserted for every
// recipient regardless of push delivery outcome.
type Notification struct {
	ID          uuid.UUID         `json:"id"`
	RecipientID uuid.UUID         `json:"recipient_id"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Data        map[string]string `json:"data,omitempty"`
	Read        bool              `json:"read"`
	CreatedAt   time.Time         `json:"created_at"`
}
