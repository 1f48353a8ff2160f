// Package model contains the GORM-specific structs mapping entities to tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileModel is the GORM-specific struct for the 'profiles' table.
type ProfileModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email                string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash         string    `gorm:"type:varchar(255);not null"`
	FullName             string    `gorm:"type:varchar(255);not null"`
	Phone                string    `gorm:"type:varchar(50)"`
	Role                 string    `gorm:"type:varchar(20);not null;default:'user';index"`
	NotificationsEnabled bool      `gorm:"not null;default:true"`
	IsActive             bool      `gorm:"not null;default:true"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
