package repository

import (
	"context"
	"errors"

	"learnit/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPostNotFound is returned when an owner-scoped post operation matches no
// record. It covers both "no such post" and "post owned by someone else".
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the standard operations for post persistence. The
// mutating operations are owner-scoped: their match condition includes both
// the post id and the caller's user id, in a single atomic store operation.
type PostRepository interface {
	// Create persists a new post entity to the storage.
	Create(ctx context.Context, post *entity.Post) error

	// FindByOwner retrieves every post owned by the given user, with the
	// owner's username joined onto each record.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Post, error)

	// UpdateOwned atomically replaces the mutable fields of the post matching
	// (id == postID AND owner == ownerID) and returns the updated record.
	// Returns ErrPostNotFound when no record matches.
	UpdateOwned(ctx context.Context, ownerID, postID uuid.UUID, post *entity.Post) (*entity.Post, error)

	// DeleteOwned atomically deletes the post matching
	// (id == postID AND owner == ownerID) and returns the deleted record.
	// Returns ErrPostNotFound when no record matches.
	DeleteOwned(ctx context.Context, ownerID, postID uuid.UUID) (*entity.Post, error)
}
