package service

import (
	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and verifying the bearer
// tokens that bind a request to a user id.
type TokenService interface {
	// IssueToken creates a signed token bound to the given user id.
	IssueToken(userID uuid.UUID) (string, error)

	// VerifyToken checks the token signature and returns the bound user id.
	// Any malformed or tampered token fails.
	VerifyToken(token string) (uuid.UUID, error)
}
