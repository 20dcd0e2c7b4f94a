// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The username is the login identifier
// and is unique across the system.
type User struct {
	ID           uuid.UUID `json:"id"`       // The unique identifier for the user.
	Username     string    `json:"username"` // The unique login name chosen at registration.
	PasswordHash string    `json:"-"`        // The bcrypt hash of the user's password. Never serialized.
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
