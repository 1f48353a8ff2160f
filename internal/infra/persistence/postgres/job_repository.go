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

// jobRepository implements the repository.JobRepository interface.
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository is the constructor for jobRepository.
func NewJobRepository(db *gorm.DB) repository.JobRepository {
	return &jobRepository{
		db: db,
	}
}

// CreateJob persists a new job.
func (repo *jobRepository) CreateJob(ctx context.Context, job *entity.Job) error {
	jobM := fromJobDomain(job)

	if err := repo.db.WithContext(ctx).Create(jobM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateJob
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDriverNotFound.WrapMessage("invalid driver reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create job")
	}

	job.ID = jobM.ID
	job.CreatedAt = jobM.CreatedAt
	job.UpdatedAt = jobM.UpdatedAt

	return nil
}

// FindJobByID retrieves a job by its primary key.
func (repo *jobRepository) FindJobByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	var jobM model.JobModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&jobM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job by ID")
	}

	return toJobDomain(&jobM), nil
}

// ListJobs retrieves jobs matching the filter, newest first.
func (repo *jobRepository) ListJobs(ctx context.Context, filter repository.JobFilter) ([]*entity.Job, error) {
	query := repo.db.WithContext(ctx).Model(&model.JobModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.DriverID != nil {
		query = query.Where("driver_id = ?", *filter.DriverID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var jobModels []*model.JobModel
	if err := query.Order("created_at DESC").Find(&jobModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list jobs")
	}

	jobs := make([]*entity.Job, 0, len(jobModels))
	for _, jobM := range jobModels {
		jobs = append(jobs, toJobDomain(jobM))
	}

	return jobs, nil
}

// UpdateJob persists the job's mutable fields. Last write wins.
func (repo *jobRepository) UpdateJob(ctx context.Context, job *entity.Job) error {
	result := repo.db.WithContext(ctx).
		Model(&model.JobModel{}).
		Where("id = ?", job.ID).
		Updates(map[string]any{
			"status":       job.Status.String(),
			"driver_id":    job.DriverID,
			"assigned_at":  job.AssignedAt,
			"started_at":   job.StartedAt,
			"completed_at": job.CompletedAt,
			"cancelled_at": job.CancelledAt,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrDriverNotFound.WrapMessage("invalid driver reference")
		}

		return errors.Wrap(result.Error, "failed to update job")
	}

	if result.RowsAffected == 0 {
		return repository.ErrJobNotFound
	}

	return nil
}

// CountByStatus returns the number of jobs in the given status.
func (repo *jobRepository) CountByStatus(ctx context.Context, status entity.JobStatus) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.JobModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count jobs by status")
	}

	return count, nil
}

// --- Mapper Functions ---

// toJobDomain converts a GORM JobModel to a domain Job entity.
func toJobDomain(data *model.JobModel) *entity.Job {
	if data == nil {
		return nil
	}

	return &entity.Job{
		ID:                data.ID,
		Reference:         data.Reference,
		Status:            entity.JobStatus(data.Status),
		DriverID:          data.DriverID,
		PickupAddress:     data.PickupAddress,
		PickupLatitude:    data.PickupLatitude,
		PickupLongitude:   data.PickupLongitude,
		DeliveryAddress:   data.DeliveryAddress,
		DeliveryLatitude:  data.DeliveryLatitude,
		DeliveryLongitude: data.DeliveryLongitude,
		CargoDescription:  data.CargoDescription,
		AssignedAt:        data.AssignedAt,
		StartedAt:         data.StartedAt,
		CompletedAt:       data.CompletedAt,
		CancelledAt:       data.CancelledAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromJobDomain converts a domain Job entity to a GORM JobModel.
func fromJobDomain(data *entity.Job) *model.JobModel {
	if data == nil {
		return nil
	}

	return &model.JobModel{
		ID:                data.ID,
		Reference:         data.Reference,
		Status:            data.Status.String(),
		DriverID:          data.DriverID,
		PickupAddress:     data.PickupAddress,
		PickupLatitude:    data.PickupLatitude,
		PickupLongitude:   data.PickupLongitude,
		DeliveryAddress:   data.DeliveryAddress,
		DeliveryLatitude:  data.DeliveryLatitude,
		DeliveryLongitude: data.DeliveryLongitude,
		CargoDescription:  data.CargoDescription,
		AssignedAt:        data.AssignedAt,
		StartedAt:         data.StartedAt,
		CompletedAt:       data.CompletedAt,
		CancelledAt:       data.CancelledAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
