package entity

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the lifecycle state of a job.
type JobStatus string

const (
	// JobStatusPending indicates a job waiting for a driver assignment.
	JobStatusPending JobStatus = "pending"
	// JobStatusAssigned indicates a job assigned to a driver but not started.
	JobStatusAssigned JobStatus = "assigned"
	// JobStatusInProgress indicates a job currently being executed.
	JobStatusInProgress JobStatus = "in_progress"
	// JobStatusCompleted indicates a delivered job. Terminal.
	JobStatusCompleted JobStatus = "completed"
	// JobStatusCancelled indicates an aborted job. Terminal.
	JobStatusCancelled JobStatus = "cancelled"
)

// String returns the string representation of the JobStatus.
func (s JobStatus) String() string {
	return string(s)
}

// IsValid checks if the JobStatus is a valid value.
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusPending, JobStatusAssigned, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusCancelled
}

// CanTransitionTo reports whether a transition from s to next is allowed.
// The lifecycle is linear: pending -> assigned -> in_progress -> completed,
// with cancelled reachable from any non-terminal state.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	switch next {
	case JobStatusAssigned:
		return s == JobStatusPending
	case JobStatusInProgress:
		return s == JobStatusAssigned
	case JobStatusCompleted:
		return s == JobStatusInProgress
	case JobStatusCancelled:
		return !s.IsTerminal()
	default:
		return false
	}
}

// Job represents a load to be picked up and delivered by a driver.
type Job struct {
	ID               uuid.UUID  `json:"id"`
	Reference        string     `json:"reference"`
	Status           JobStatus  `json:"status"`
	DriverID         *uuid.UUID `json:"driver_id,omitempty"`
	PickupAddress    string     `json:"pickup_address"`
	PickupLatitude   float64    `json:"pickup_latitude"`
	PickupLongitude  float64    `json:"pickup_longitude"`
	DeliveryAddress  string     `json:"delivery_address"`
	DeliveryLatitude float64    `json:"delivery_latitude"`
	DeliveryLongitude float64   `json:"delivery_longitude"`
	CargoDescription string     `json:"cargo_description"`
	AssignedAt       *time.Time `json:"assigned_at,omitempty"`
	StartedAt        *time.Time `json:"started_at,omitempty"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	CancelledAt      *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// IsOwnedBy reports whether the job is assigned to the given driver.
func (j *Job) IsOwnedBy(driverID uuid.UUID) bool {
	return j.DriverID != nil && *j.DriverID == driverID
}
