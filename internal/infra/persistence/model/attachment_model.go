package model

import (
	"time"

	"github.com/google/uuid"
)

// JobAttachmentModel is the GORM-specific struct for the 'job_attachments' table.
type JobAttachmentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	JobID       uuid.UUID `gorm:"type:uuid;not null;index"`
	UploadedBy  uuid.UUID `gorm:"type:uuid;not null"`
	FileName    string    `gorm:"type:varchar(255);not null"`
	ContentType string    `gorm:"type:varchar(100);not null"`
	SizeBytes   int64     `gorm:"not null"`
	StorageKey  string    `gorm:"type:varchar(512);not null;uniqueIndex"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (JobAttachmentModel) TableName() string {
	return "job_attachments"
}
