package impl

import (
	"context"
	"time"

	"fleet/internal/domain/entity"
	domainerrors "fleet/internal/domain/errors"
	"fleet/internal/domain/repository"
	"fleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// locationService implements the LocationUsecase interface.
type locationService struct {
	locationRepo repository.LocationRepository
	jobRepo      repository.JobRepository
}

// NewLocationService creates a new location service instance
func NewLocationService(locationRepo repository.LocationRepository, jobRepo repository.JobRepository) usecase.LocationUsecase {
	return &locationService{
		locationRepo: locationRepo,
		jobRepo:      jobRepo,
	}
}

// RecordPoints appends a batch of samples for the driver.
func (s *locationService) RecordPoints(ctx context.Context, driverID uuid.UUID, points []usecase.PointInput) (int, error) {
	if len(points) == 0 {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("no points provided")
	}

	now := time.Now()
	entities := make([]*entity.LocationPoint, 0, len(points))
	for _, point := range points {
		recordedAt := time.UnixMilli(point.RecordedAt)
		// Clock skew on devices is common; a sample claiming to be from the
		// future is clamped to arrival time.
		if recordedAt.After(now) {
			recordedAt = now
		}

		entities = append(entities, &entity.LocationPoint{
			ID:         uuid.New(),
			DriverID:   driverID,
			JobID:      point.JobID,
			Latitude:   point.Latitude,
			Longitude:  point.Longitude,
			SpeedKmh:   point.SpeedKmh,
			HeadingDeg: point.HeadingDeg,
			RecordedAt: recordedAt,
			CreatedAt:  now,
		})
	}

	if err := s.locationRepo.BulkInsertPoints(ctx, entities); err != nil {
		return 0, errors.Wrap(err, "failed to insert location points")
	}

	return len(entities), nil
}

// GetDriverLatest retrieves the most recent point for a driver.
func (s *locationService) GetDriverLatest(ctx context.Context, driverID uuid.UUID) (*entity.LocationPoint, error) {
	point, err := s.locationRepo.FindLatestByDriver(ctx, driverID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find latest location point")
	}

	return point, nil
}

// GetJobTrack retrieves the full track recorded against a job. Drivers may
// only read tracks of jobs assigned to them.
func (s *locationService) GetJobTrack(ctx context.Context, jobID uuid.UUID, actor usecase.Actor) ([]*entity.LocationPoint, error) {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domainerrors.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job by id")
	}
	if err := authorizeJobAccess(job, actor); err != nil {
		return nil, err
	}

	points, err := s.locationRepo.FindPointsByJob(ctx, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find job track")
	}

	return points, nil
}
