package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents an authenticated identity and its operational attributes.
// There is exactly one row per identity; profiles are never deleted, only
// deactivated.
type Profile struct {
	ID                   uuid.UUID `json:"id"`
	Email                string    `json:"email"`
	PasswordHash         string    `json:"-"`
	FullName             string    `json:"full_name"`
	Phone                string    `json:"phone"`
	Role                 Role      `json:"role"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	IsActive             bool      `json:"is_active"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// IsAdmin reports whether the profile carries the admin role.
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
