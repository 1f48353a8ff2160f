package usecase

import (
	"fleet/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller for ownership checks. Drivers
// only reach jobs assigned to them; admins and back-office users are not
// restricted.
type Actor struct {
	ID   uuid.UUID
	Role entity.Role
}
