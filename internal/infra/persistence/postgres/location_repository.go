package postgres

import (
	"context"

	"fleet/internal/domain/entity"
	domainerrors "fleet/internal/domain/errors"
	"fleet/internal/domain/repository"
	"fleet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// BulkInsertPoints appends a batch of GPS samples.
func (repo *locationRepository) BulkInsertPoints(ctx context.Context, points []*entity.LocationPoint) error {
	if len(points) == 0 {
		return nil
	}

	pointModels := make([]*model.LocationPointModel, 0, len(points))
	for _, point := range points {
		pointModels = append(pointModels, fromLocationDomain(point))
	}

	if err := repo.db.WithContext(ctx).Create(&pointModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDriverNotFound.WrapMessage("invalid driver reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert location points")
	}

	return nil
}

// FindLatestByDriver retrieves the most recent point for a driver.
func (repo *locationRepository) FindLatestByDriver(ctx context.Context, driverID uuid.UUID) (*entity.LocationPoint, error) {
	var pointM model.LocationPointModel

	if err := repo.db.WithContext(ctx).
		Where("driver_id = ?", driverID).
		Order("recorded_at DESC").
		First(&pointM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find latest location point")
	}

	return toLocationDomain(&pointM), nil
}

// FindPointsByJob retrieves all points recorded against a job, oldest first.
func (repo *locationRepository) FindPointsByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.LocationPoint, error) {
	var pointModels []*model.LocationPointModel

	if err := repo.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("recorded_at ASC").
		Find(&pointModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find location points by job")
	}

	points := make([]*entity.LocationPoint, 0, len(pointModels))
	for _, pointM := range pointModels {
		points = append(points, toLocationDomain(pointM))
	}

	return points, nil
}

// CountPoints returns the total number of stored points.
func (repo *locationRepository) CountPoints(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LocationPointModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count location points")
	}

	return count, nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.LocationPointModel) *entity.LocationPoint {
	if data == nil {
		return nil
	}

	return &entity.LocationPoint{
		ID:         data.ID,
		DriverID:   data.DriverID,
		JobID:      data.JobID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		SpeedKmh:   data.SpeedKmh,
		HeadingDeg: data.HeadingDeg,
		RecordedAt: data.RecordedAt,
		CreatedAt:  data.CreatedAt,
	}
}

func fromLocationDomain(data *entity.LocationPoint) *model.LocationPointModel {
	if data == nil {
		return nil
	}

	return &model.LocationPointModel{
		ID:         data.ID,
		DriverID:   data.DriverID,
		JobID:      data.JobID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		SpeedKmh:   data.SpeedKmh,
		HeadingDeg: data.HeadingDeg,
		RecordedAt: data.RecordedAt,
		CreatedAt:  data.CreatedAt,
	}
}
