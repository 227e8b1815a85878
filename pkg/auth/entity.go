package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Password hashes never leave this package
// except through the repository.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
