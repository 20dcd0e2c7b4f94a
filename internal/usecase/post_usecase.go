package usecase

import (
	"context"

	"learnit/internal/domain/entity"

	"github.com/google/uuid"
)

// PostInput defines the caller-supplied fields of a post. Update uses the
// same shape as create: the whole record is replaced, not patched.
type PostInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Status      string `json:"status"`
}

// PostUsecase defines the interface for owner-scoped post operations. The
// ownerID always comes from a verified token, never from the request body.
type PostUsecase interface {
	// CreatePost stores a new post owned by ownerID.
	CreatePost(ctx context.Context, ownerID uuid.UUID, input *PostInput) (*entity.Post, error)

	// ListPosts returns every post owned by ownerID, each carrying the
	// owner's username.
	ListPosts(ctx context.Context, ownerID uuid.UUID) ([]*entity.Post, error)

	// UpdatePost replaces the post's fields if it exists and is owned by
	// ownerID, and returns the updated post.
	UpdatePost(ctx context.Context, ownerID, postID uuid.UUID, input *PostInput) (*entity.Post, error)

	// DeletePost removes the post if it exists and is owned by ownerID, and
	// returns the deleted post.
	DeletePost(ctx context.Context, ownerID, postID uuid.UUID) (*entity.Post, error)
}
