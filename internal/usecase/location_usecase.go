package usecase

import (
	"context"

	"fleet/internal/domain/entity"

	"github.com/google/uuid"
)

// PointInput is one GPS sample submitted by a driver's device.
type PointInput struct {
	JobID      *uuid.UUID
	Latitude   float64
	Longitude  float64
	SpeedKmh   float64
	HeadingDeg float64
	RecordedAt int64 // unix milliseconds as reported by the device
}

// LocationUsecase defines the interface for GPS history operations.
type LocationUsecase interface {
	// RecordPoints appends a batch of samples for the driver. Returns the
	// number of points stored.
	RecordPoints(ctx context.Context, driverID uuid.UUID, points []PointInput) (int, error)

	// GetDriverLatest retrieves the most recent point for a driver, or nil
	// when the driver has never reported.
	GetDriverLatest(ctx context.Context, driverID uuid.UUID) (*entity.LocationPoint, error)

	// GetJobTrack retrieves the full track recorded against a job. Drivers
	// may only read tracks of jobs assigned to them.
	GetJobTrack(ctx context.Context, jobID uuid.UUID, actor Actor) ([]*entity.LocationPoint, error)
}
