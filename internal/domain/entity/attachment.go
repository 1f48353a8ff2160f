package entity

import (
	"time"

	"github.com/google/uuid"
)

// JobAttachment is the metadata row for a document stored in the blob bucket
// (proof of delivery, bill of lading, inspection photos). The blob itself
// lives at StorageKey.
type JobAttachment struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	UploadedBy  uuid.UUID `json:"uploaded_by"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	StorageKey  string    `json:"storage_key"`
	CreatedAt   time.Time `json:"created_at"`
}
