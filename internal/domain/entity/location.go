package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationPoint is one GPS sample reported by a driver's device. Points are
// append-only; they are never updated or deleted by this service.
type LocationPoint struct {
	ID         uuid.UUID  `json:"id"`
	DriverID   uuid.UUID  `json:"driver_id"`
	JobID      *uuid.UUID `json:"job_id,omitempty"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	SpeedKmh   float64    `json:"speed_kmh"`
	HeadingDeg float64    `json:"heading_deg"`
	RecordedAt time.Time  `json:"recorded_at"`
	CreatedAt  time.Time  `json:"created_at"`
}
