package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered identity. PasswordHash is a bcrypt digest and must
// never leave the service layer.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
