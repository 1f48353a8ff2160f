package usecase

import (
	"context"

	"fleet/internal/domain/entity"
	"fleet/internal/domain/repository"
	"fleet/internal/domain/service"

	"github.com/google/uuid"
)

// CreateJobInput defines the data required to create a job.
type CreateJobInput struct {
	Reference         string
	PickupAddress     string
	PickupLatitude    float64
	PickupLongitude   float64
	DeliveryAddress   string
	DeliveryLatitude  float64
	DeliveryLongitude float64
	CargoDescription  string
}

// StatusUpdateInput identifies who is requesting a job status change.
// Admins may move any job; drivers only jobs assigned to them.
type StatusUpdateInput struct {
	JobID     uuid.UUID
	NewStatus entity.JobStatus
	ActorID   uuid.UUID
	ActorRole entity.Role
}

// JobUsecase defines the interface for job management business operations.
type JobUsecase interface {
	// CreateJob registers a new pending job.
	CreateJob(ctx context.Context, input CreateJobInput) (*entity.Job, error)

	// GetJob retrieves a job by ID. Drivers may only read jobs assigned to
	// them.
	GetJob(ctx context.Context, id uuid.UUID, actor Actor) (*entity.Job, error)

	// ListJobs retrieves jobs matching the filter, newest first.
	ListJobs(ctx context.Context, filter repository.JobFilter) ([]*entity.Job, error)

	// AssignJob assigns a pending job to a driver and publishes an event.
	AssignJob(ctx context.Context, jobID, driverID uuid.UUID) (*entity.Job, error)

	// UpdateJobStatus moves a job through its lifecycle. The matching time log
	// write happens in the same transaction: in_progress opens one, completed
	// closes the open one.
	UpdateJobStatus(ctx context.Context, input StatusUpdateInput) (*entity.Job, error)

	// GenerateTrackingQR renders the PNG QR code handed to carriers.
	GenerateTrackingQR(ctx context.Context, jobID uuid.UUID, actor Actor) ([]byte, error)

	// OptimizeJobRoute returns the best route between the job's pickup and
	// delivery coordinates.
	OptimizeJobRoute(ctx context.Context, jobID uuid.UUID, actor Actor) (*service.Route, error)
}
