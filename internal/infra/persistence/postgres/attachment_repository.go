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

// attachmentRepository implements the repository.AttachmentRepository interface.
type attachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository is the constructor for attachmentRepository.
func NewAttachmentRepository(db *gorm.DB) repository.AttachmentRepository {
	return &attachmentRepository{
		db: db,
	}
}

// CreateAttachment persists a new attachment metadata row.
func (repo *attachmentRepository) CreateAttachment(ctx context.Context, attachment *entity.JobAttachment) error {
	attachmentM := fromAttachmentDomain(attachment)

	if err := repo.db.WithContext(ctx).Create(attachmentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrJobNotFound.WrapMessage("invalid job reference")
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("storage key already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create attachment")
	}

	attachment.ID = attachmentM.ID
	attachment.CreatedAt = attachmentM.CreatedAt

	return nil
}

// FindAttachmentByID retrieves an attachment by its primary key.
func (repo *attachmentRepository) FindAttachmentByID(ctx context.Context, id uuid.UUID) (*entity.JobAttachment, error) {
	var attachmentM model.JobAttachmentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&attachmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAttachmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find attachment by id")
	}

	return toAttachmentDomain(&attachmentM), nil
}

// FindAttachmentsByJob retrieves all attachments for a job, newest first.
func (repo *attachmentRepository) FindAttachmentsByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.JobAttachment, error) {
	var attachmentModels []*model.JobAttachmentModel

	if err := repo.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&attachmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find attachments by job")
	}

	attachments := make([]*entity.JobAttachment, 0, len(attachmentModels))
	for _, attachmentM := range attachmentModels {
		attachments = append(attachments, toAttachmentDomain(attachmentM))
	}

	return attachments, nil
}

// DeleteAttachment removes the metadata row.
func (repo *attachmentRepository) DeleteAttachment(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.JobAttachmentModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete attachment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAttachmentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAttachmentDomain(data *model.JobAttachmentModel) *entity.JobAttachment {
	if data == nil {
		return nil
	}

	return &entity.JobAttachment{
		ID:          data.ID,
		JobID:       data.JobID,
		UploadedBy:  data.UploadedBy,
		FileName:    data.FileName,
		ContentType: data.ContentType,
		SizeBytes:   data.SizeBytes,
		StorageKey:  data.StorageKey,
		CreatedAt:   data.CreatedAt,
	}
}

func fromAttachmentDomain(data *entity.JobAttachment) *model.JobAttachmentModel {
	if data == nil {
		return nil
	}

	return &model.JobAttachmentModel{
		ID:          data.ID,
		JobID:       data.JobID,
		UploadedBy:  data.UploadedBy,
		FileName:    data.FileName,
		ContentType: data.ContentType,
		SizeBytes:   data.SizeBytes,
		StorageKey:  data.StorageKey,
		CreatedAt:   data.CreatedAt,
	}
}
