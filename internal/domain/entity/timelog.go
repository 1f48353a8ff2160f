package entity

import (
	"time"

	"github.com/google/uuid"
)

// TimeLog records the working interval of a driver on a job. A nil EndTime
// means the log is still open. Opened when a job moves to in_progress, closed
// when it completes; consumed only by payroll aggregation.
type TimeLog struct {
	ID        uuid.UUID  `json:"id"`
	JobID     uuid.UUID  `json:"job_id"`
	DriverID  uuid.UUID  `json:"driver_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// IsOpen reports whether the log has not been closed yet.
func (t *TimeLog) IsOpen() bool {
	return t.EndTime == nil
}
