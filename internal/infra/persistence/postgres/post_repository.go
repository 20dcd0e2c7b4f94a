package postgres

import (
	"context"

	"learnit/internal/domain/entity"
	domainerrors "learnit/internal/domain/errors"
	"learnit/internal/domain/repository"
	"learnit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// postRepository implements the repository.PostRepository interface using GORM.
//
// UpdateOwned and DeleteOwned are single statements whose WHERE clause carries
// both the post id and the owner id, so the existence check, the ownership
// check, and the mutation cannot be interleaved with another request.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// Create persists a new post entity to the database.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// FindByOwner retrieves every post owned by the given user, oldest first,
// with the owner record joined for its username.
func (repo *postRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Post, error) {
	var postMs []*model.PostModel
	if err := repo.db.WithContext(ctx).
		Preload("Owner").
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&postMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find posts by owner")
	}

	posts := make([]*entity.Post, 0, len(postMs))
	for _, postM := range postMs {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// UpdateOwned atomically replaces the mutable fields of the post matching
// (id, owner) and returns the updated record via RETURNING.
func (repo *postRepository) UpdateOwned(ctx context.Context, ownerID, postID uuid.UUID, post *entity.Post) (*entity.Post, error) {
	var postM model.PostModel
	result := repo.db.WithContext(ctx).
		Model(&postM).
		Clauses(clause.Returning{}).
		Where("id = ? AND owner_id = ?", postID, ownerID).
		// A map keeps zero values: the replace semantics require empty
		// strings to be written, which a struct update would skip.
		Updates(map[string]any{
			"title":       post.Title,
			"description": post.Description,
			"url":         post.URL,
			"status":      string(post.Status),
		})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update post")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrPostNotFound
	}

	return toPostDomain(&postM), nil
}

// DeleteOwned atomically deletes the post matching (id, owner) and returns
// the deleted record via RETURNING.
func (repo *postRepository) DeleteOwned(ctx context.Context, ownerID, postID uuid.UUID) (*entity.Post, error) {
	var postM model.PostModel
	result := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ? AND owner_id = ?", postID, ownerID).
		Delete(&postM)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrPostNotFound
	}

	return toPostDomain(&postM), nil
}

// toPostDomain converts a GORM PostModel to a domain Post entity.
func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	post := &entity.Post{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		URL:         data.URL,
		Status:      entity.PostStatus(data.Status),
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.Owner != nil {
		post.OwnerUsername = data.Owner.Username
	}

	return post
}

// fromPostDomain converts a domain Post entity to a GORM PostModel for persistence.
func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		URL:         data.URL,
		Status:      string(data.Status),
		OwnerID:     data.OwnerID,
	}
}
