package postgres

import (
	"context"
	"time"

	"fleet/internal/domain/entity"
	domainerrors "fleet/internal/domain/errors"
	"fleet/internal/domain/repository"
	"fleet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// timeLogRepository implements the repository.TimeLogRepository interface.
type timeLogRepository struct {
	db *gorm.DB
}

// NewTimeLogRepository is the constructor for timeLogRepository.
func NewTimeLogRepository(db *gorm.DB) repository.TimeLogRepository {
	return &timeLogRepository{
		db: db,
	}
}

// CreateTimeLog opens a new time log for a job/driver pair.
func (repo *timeLogRepository) CreateTimeLog(ctx context.Context, log *entity.TimeLog) error {
	logM := fromTimeLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrJobNotFound.WrapMessage("invalid job reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create time log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// FindOpenTimeLog retrieves the open (end_time IS NULL) log for a job, if any.
func (repo *timeLogRepository) FindOpenTimeLog(ctx context.Context, jobID uuid.UUID) (*entity.TimeLog, error) {
	var logM model.TimeLogModel

	if err := repo.db.WithContext(ctx).
		Where("job_id = ? AND end_time IS NULL", jobID).
		Order("start_time DESC").
		First(&logM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTimeLogNotFound
		}

		return nil, errors.Wrap(err, "failed to find open time log")
	}

	return toTimeLogDomain(&logM), nil
}

// CloseTimeLog sets end_time on an open log.
func (repo *timeLogRepository) CloseTimeLog(ctx context.Context, id uuid.UUID, endTime time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TimeLogModel{}).
		Where("id = ? AND end_time IS NULL", id).
		Update("end_time", endTime)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to close time log")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTimeLogNotFound
	}

	return nil
}

// FindTimeLogsByDriver retrieves all logs for a driver within a period.
func (repo *timeLogRepository) FindTimeLogsByDriver(ctx context.Context, driverID uuid.UUID, from, to time.Time) ([]*entity.TimeLog, error) {
	var logModels []*model.TimeLogModel

	if err := repo.db.WithContext(ctx).
		Where("driver_id = ? AND start_time >= ? AND start_time < ?", driverID, from, to).
		Order("start_time ASC").
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find time logs by driver")
	}

	logs := make([]*entity.TimeLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toTimeLogDomain(logM))
	}

	return logs, nil
}

// --- Mapper Functions ---

func toTimeLogDomain(data *model.TimeLogModel) *entity.TimeLog {
	if data == nil {
		return nil
	}

	return &entity.TimeLog{
		ID:        data.ID,
		JobID:     data.JobID,
		DriverID:  data.DriverID,
		StartTime: data.StartTime,
		EndTime:   data.EndTime,
		CreatedAt: data.CreatedAt,
	}
}

func fromTimeLogDomain(data *entity.TimeLog) *model.TimeLogModel {
	if data == nil {
		return nil
	}

	return &model.TimeLogModel{
		ID:        data.ID,
		JobID:     data.JobID,
		DriverID:  data.DriverID,
		StartTime: data.StartTime,
		EndTime:   data.EndTime,
		CreatedAt: data.CreatedAt,
	}
}
