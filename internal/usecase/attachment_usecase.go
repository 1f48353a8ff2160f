package usecase

import (
	"context"
	"io"

	"fleet/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadAttachmentInput defines one attachment upload. The actor doubles as
// the uploader on the stored metadata row.
type UploadAttachmentInput struct {
	JobID       uuid.UUID
	Actor       Actor
	FileName    string
	ContentType string
	SizeBytes   int64
	Content     io.Reader
}

// AttachmentUsecase defines the interface for job attachment operations.
// Drivers may only touch attachments of jobs assigned to them.
type AttachmentUsecase interface {
	// UploadAttachment stores the blob and its metadata row.
	UploadAttachment(ctx context.Context, input UploadAttachmentInput) (*entity.JobAttachment, error)

	// GetAttachment retrieves an attachment's metadata and opens its blob.
	// The caller owns the returned reader.
	GetAttachment(ctx context.Context, id uuid.UUID) (*entity.JobAttachment, io.ReadCloser, error)

	// ListJobAttachments retrieves attachment metadata for a job, newest first.
	ListJobAttachments(ctx context.Context, jobID uuid.UUID, actor Actor) ([]*entity.JobAttachment, error)

	// DeleteAttachment removes the blob then the metadata row. A failed blob
	// delete is logged and tolerated so metadata never outlives the file.
	DeleteAttachment(ctx context.Context, id uuid.UUID) error
}
