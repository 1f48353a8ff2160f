package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationPointModel is the GORM-specific struct for the 'location_history'
// table. Rows are append-only; there is no soft delete.
type LocationPointModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DriverID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_location_driver_recorded"`
	JobID      *uuid.UUID `gorm:"type:uuid;index"`
	Latitude   float64    `gorm:"type:double precision;not null"`
	Longitude  float64    `gorm:"type:double precision;not null"`
	SpeedKmh   float64    `gorm:"type:double precision;not null;default:0"`
	HeadingDeg float64    `gorm:"type:double precision;not null;default:0"`
	RecordedAt time.Time  `gorm:"not null;index:idx_location_driver_recorded"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationPointModel) TableName() string {
	return "location_history"
}
