package repository

import (
	"context"

	"fleet/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationRepository defines the interface for location history operations.
// The table is append-only; there are no update or delete operations.
type LocationRepository interface {
	// BulkInsertPoints appends a batch of GPS samples.
	BulkInsertPoints(ctx context.Context, points []*entity.LocationPoint) error

	// FindLatestByDriver retrieves the most recent point for a driver.
	FindLatestByDriver(ctx context.Context, driverID uuid.UUID) (*entity.LocationPoint, error)

	// FindPointsByJob retrieves all points recorded against a job, oldest first.
	FindPointsByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.LocationPoint, error)

	// CountPoints returns the total number of stored points.
	CountPoints(ctx context.Context) (int64, error)
}
