package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential backs email/password sign-in. Keyed by lower-cased email.
type Credential struct {
	Email        string
	UserID       uuid.UUID
	PasswordHash string
	CreatedAt    time.Time
}
