package repository

import (
	"context"
	"time"

	"fleet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTimeLogNotFound is returned when no matching time log row exists.
var ErrTimeLogNotFound = errors.New("time log not found")

// TimeLogRepository defines the interface for time log database operations.
type TimeLogRepository interface {
	// CreateTimeLog opens a new time log for a job/driver pair.
	CreateTimeLog(ctx context.Context, log *entity.TimeLog) error

	// FindOpenTimeLog retrieves the open (end_time IS NULL) log for a job, if any.
	FindOpenTimeLog(ctx context.Context, jobID uuid.UUID) (*entity.TimeLog, error)

	// CloseTimeLog sets end_time on an open log.
	CloseTimeLog(ctx context.Context, id uuid.UUID, endTime time.Time) error

	// FindTimeLogsByDriver retrieves all logs for a driver within a period,
	// for payroll aggregation.
	FindTimeLogsByDriver(ctx context.Context, driverID uuid.UUID, from, to time.Time) ([]*entity.TimeLog, error)
}
