package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
type NotificationModel struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipientID uuid.UUID         `gorm:"type:uuid;not null;index:idx_notifications_recipient_read"`
	Title       string            `gorm:"type:varchar(255);not null"`
	Body        string            `gorm:"type:text;not null"`
	Data        map[string]string `gorm:"type:jsonb;serializer:json"`
	Read        bool              `gorm:"not null;default:false;index:idx_notifications_recipient_read"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
