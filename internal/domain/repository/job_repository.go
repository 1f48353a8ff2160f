package repository

import (
	"context"

	"fleet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for job persistence.
var (
	// ErrJobNotFound is returned when a job row is missing.
	ErrJobNotFound = errors.New("job not found")
	// ErrDuplicateJob is returned when the load reference already exists.
	ErrDuplicateJob = errors.New("job already exists")
)

// JobFilter narrows job listings.
type JobFilter struct {
	Status   *entity.JobStatus
	DriverID *uuid.UUID
	Limit    int
	Offset   int
}

// JobRepository defines the interface for job-related database operations.
type JobRepository interface {
	// CreateJob persists a new job.
	CreateJob(ctx context.Context, job *entity.Job) error

	// FindJobByID retrieves a job by its primary key.
	FindJobByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)

	// ListJobs retrieves jobs matching the filter, newest first.
	ListJobs(ctx context.Context, filter JobFilter) ([]*entity.Job, error)

	// UpdateJob persists the job's mutable fields (status, driver, lifecycle
	// timestamps). Last write wins.
	UpdateJob(ctx context.Context, job *entity.Job) error

	// CountByStatus returns the number of jobs in the given status.
	CountByStatus(ctx context.Context, status entity.JobStatus) (int64, error)
}
