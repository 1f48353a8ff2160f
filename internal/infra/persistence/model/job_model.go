package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JobModel is the GORM-specific struct for the 'jobs' table.
type JobModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Reference         string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	Status            string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	DriverID          *uuid.UUID `gorm:"type:uuid;index"`
	PickupAddress     string     `gorm:"type:text;not null"`
	PickupLatitude    float64    `gorm:"type:double precision;not null"`
	PickupLongitude   float64    `gorm:"type:double precision;not null"`
	DeliveryAddress   string     `gorm:"type:text;not null"`
	DeliveryLatitude  float64    `gorm:"type:double precision;not null"`
	DeliveryLongitude float64    `gorm:"type:double precision;not null"`
	CargoDescription  string     `gorm:"type:text"`
	AssignedAt        *time.Time
	StartedAt         *time.Time
	CompletedAt       *time.Time
	CancelledAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (JobModel) TableName() string {
	return "jobs"
}

// TimeLogModel is the GORM-specific struct for the 'time_logs' table.
type TimeLogModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	JobID     uuid.UUID `gorm:"type:uuid;not null;index"`
	DriverID  uuid.UUID `gorm:"type:uuid;not null;index"`
	StartTime time.Time `gorm:"not null"`
	EndTime   *time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TimeLogModel) TableName() string {
	return "time_logs"
}
