package repository

import (
	"context"

	"fleet/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrAttachmentNotFound is returned when an attachment row is missing.
var ErrAttachmentNotFound = errors.New("attachment not found")

// AttachmentRepository defines the interface for attachment metadata operations.
type AttachmentRepository interface {
	// CreateAttachment persists a new attachment metadata row.
	CreateAttachment(ctx context.Context, attachment *entity.JobAttachment) error

	// FindAttachmentByID retrieves an attachment by its primary key.
	FindAttachmentByID(ctx context.Context, id uuid.UUID) (*entity.JobAttachment, error)

	// FindAttachmentsByJob retrieves all attachments for a job, newest first.
	FindAttachmentsByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.JobAttachment, error)

	// DeleteAttachment removes the metadata row.
	DeleteAttachment(ctx context.Context, id uuid.UUID) error
}
