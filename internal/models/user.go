package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`            // Primary key
	Email        string    `json:"email" db:"email"`           // Unique login email
	Name         *string   `json:"name,omitempty" db:"name"`   // Optional display name
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash
	IsAdmin      bool      `json:"is_admin" db:"is_admin"`     // Admin capability
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// Identity is the authenticated caller attached to a request.
// A nil *Identity means the caller is anonymous.
type Identity struct {
	UserID  uuid.UUID
	Email   string
	IsAdmin bool

	// Token the identity was read from, used for revocation.
	TokenID        string
	TokenExpiresAt time.Time
}
