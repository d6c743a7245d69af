package services

import (
	"github.com/google/uuid"
	"tusalon/internal/models/db_models"
)

// Actor is the authenticated account context handed down from the JWT
// middleware to every mutating operation.
type Actor struct {
	ID   uuid.UUID
	Role db_models.AccountRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == db_models.RoleAdmin
}
