package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"fleet/internal/domain/entity"
	domainerrors "fleet/internal/domain/errors"
	"fleet/internal/domain/repository"
	"fleet/internal/domain/service"
	"fleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// attachmentService implements the AttachmentUsecase interface.
type attachmentService struct {
	attachmentRepo repository.AttachmentRepository
	jobRepo        repository.JobRepository
	blobStorage    service.BlobStorage
	logger         *slog.Logger
}

// AttachmentServiceParams holds dependencies for AttachmentService, injected by Fx.
type AttachmentServiceParams struct {
	fx.In

	AttachmentRepo repository.AttachmentRepository
	JobRepo        repository.JobRepository
	BlobStorage    service.BlobStorage
	Logger         *slog.Logger
}

// NewAttachmentService is the constructor for attachmentService.
func NewAttachmentService(params AttachmentServiceParams) usecase.AttachmentUsecase {
	return &attachmentService{
		attachmentRepo: params.AttachmentRepo,
		jobRepo:        params.JobRepo,
		blobStorage:    params.BlobStorage,
		logger:         params.Logger,
	}
}

// UploadAttachment stores the blob first, then the metadata row. A metadata
// failure deletes the just-written blob so the bucket holds no unreferenced
// files from failed uploads.
func (s *attachmentService) UploadAttachment(ctx context.Context, input usecase.UploadAttachmentInput) (*entity.JobAttachment, error) {
	if err := s.authorizeJob(ctx, input.JobID, input.Actor); err != nil {
		return nil, err
	}

	attachment := &entity.JobAttachment{
		ID:          uuid.New(),
		JobID:       input.JobID,
		UploadedBy:  input.Actor.ID,
		FileName:    input.FileName,
		ContentType: input.ContentType,
		SizeBytes:   input.SizeBytes,
		CreatedAt:   time.Now(),
	}
	attachment.StorageKey = fmt.Sprintf("jobs/%s/%s-%s", input.JobID, attachment.ID, input.FileName)

	if err := s.blobStorage.Write(ctx, attachment.StorageKey, input.ContentType, input.Content); err != nil {
		return nil, errors.Wrap(err, "failed to store attachment blob")
	}

	if err := s.attachmentRepo.CreateAttachment(ctx, attachment); err != nil {
		if delErr := s.blobStorage.Delete(ctx, attachment.StorageKey); delErr != nil {
			s.logger.Warn("failed to clean up blob after metadata failure",
				slog.String("storage_key", attachment.StorageKey),
				slog.Any("error", delErr),
			)
		}

		return nil, errors.Wrap(err, "failed to create attachment metadata")
	}

	return attachment, nil
}

// GetAttachment retrieves an attachment's metadata and opens its blob.
func (s *attachmentService) GetAttachment(ctx context.Context, id uuid.UUID) (*entity.JobAttachment, io.ReadCloser, error) {
	attachment, err := s.attachmentRepo.FindAttachmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAttachmentNotFound) {
			return nil, nil, domainerrors.ErrAttachmentNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find attachment by id")
	}

	reader, err := s.blobStorage.Read(ctx, attachment.StorageKey)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open attachment blob")
	}

	return attachment, reader, nil
}

// ListJobAttachments retrieves attachment metadata for a job, newest first.
func (s *attachmentService) ListJobAttachments(ctx context.Context, jobID uuid.UUID, actor usecase.Actor) ([]*entity.JobAttachment, error) {
	if err := s.authorizeJob(ctx, jobID, actor); err != nil {
		return nil, err
	}

	attachments, err := s.attachmentRepo.FindAttachmentsByJob(ctx, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list job attachments")
	}

	return attachments, nil
}

// authorizeJob loads the job and applies the same visibility rule as job
// reads: drivers only reach jobs assigned to them.
func (s *attachmentService) authorizeJob(ctx context.Context, jobID uuid.UUID, actor usecase.Actor) error {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return domainerrors.ErrJobNotFound
		}

		return errors.Wrap(err, "failed to find job by id")
	}

	return authorizeJobAccess(job, actor)
}

// DeleteAttachment removes the blob, then the metadata row. A failed blob
// delete is logged and tolerated so metadata never outlives the file; the
// reverse orphan (a file without metadata) is accepted.
func (s *attachmentService) DeleteAttachment(ctx context.Context, id uuid.UUID) error {
	attachment, err := s.attachmentRepo.FindAttachmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAttachmentNotFound) {
			return domainerrors.ErrAttachmentNotFound
		}

		return errors.Wrap(err, "failed to find attachment by id")
	}

	if err := s.blobStorage.Delete(ctx, attachment.StorageKey); err != nil {
		// Continue anyway: the metadata row must not survive.
		s.logger.Warn("failed to delete attachment blob, removing metadata regardless",
			slog.String("storage_key", attachment.StorageKey),
			slog.Any("error", err),
		)
	}

	if err := s.attachmentRepo.DeleteAttachment(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete attachment metadata")
	}

	return nil
}
