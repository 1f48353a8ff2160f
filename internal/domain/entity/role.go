// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a profile can have in the system.
type Role string

const (
	// RoleAdmin indicates a dispatcher/back-office administrator.
	RoleAdmin Role = "admin"
	// RoleDriver indicates a driver operating vehicles in the fleet.
	RoleDriver Role = "driver"
	// RoleUser indicates a regular user with read-only access.
	RoleUser Role = "user"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDriver, RoleUser:
		return true
	default:
		return false
	}
}
