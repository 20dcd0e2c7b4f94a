package impl

import (
	"context"
	"log/slog"

	deliverycontext "learnit/internal/delivery/context"
	"learnit/internal/domain/entity"
	domainerrors "learnit/internal/domain/errors"
	"learnit/internal/domain/repository"
	"learnit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	postRepo repository.PostRepository
	logger   *slog.Logger
}

// PostServiceParams holds dependencies for postService, injected by Fx.
type PostServiceParams struct {
	fx.In

	PostRepo repository.PostRepository
	Logger   *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		postRepo: params.PostRepo,
		logger:   params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeInput applies the record defaults: the url gains an https prefix
// when it lacks one, and an absent status becomes "TO LEARN".
func normalizeInput(ownerID uuid.UUID, input *usecase.PostInput) *entity.Post {
	status := entity.PostStatus(input.Status)
	if status == "" {
		status = entity.StatusToLearn
	}

	return &entity.Post{
		Title:       input.Title,
		Description: input.Description,
		URL:         entity.NormalizeURL(input.URL),
		Status:      status,
		OwnerID:     ownerID,
	}
}

// CreatePost stores a new post owned by ownerID.
func (srv *postService) CreatePost(ctx context.Context, ownerID uuid.UUID, input *usecase.PostInput) (*entity.Post, error) {
	if input.Title == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingTitle, "create post input incomplete")
	}

	post := normalizeInput(ownerID, input)
	if err := srv.postRepo.Create(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.log(ctx).Info("Post created", slog.Any("postID", post.ID), slog.Any("ownerID", ownerID))

	return post, nil
}

// ListPosts returns every post owned by ownerID.
func (srv *postService) ListPosts(ctx context.Context, ownerID uuid.UUID) ([]*entity.Post, error) {
	posts, err := srv.postRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

// UpdatePost replaces the whole record. A field absent from the input is
// overwritten with its default, not preserved.
func (srv *postService) UpdatePost(ctx context.Context, ownerID, postID uuid.UUID, input *usecase.PostInput) (*entity.Post, error) {
	if input.Title == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingTitle, "update post input incomplete")
	}

	updated, err := srv.postRepo.UpdateOwned(ctx, ownerID, postID, normalizeInput(ownerID, input))
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			srv.log(ctx).Warn("Update rejected, no owned post matched",
				slog.Any("postID", postID), slog.Any("ownerID", ownerID))

			return nil, errors.Wrap(domainerrors.ErrPostNotFoundOrUnauthorized, "update post")
		}

		return nil, errors.Wrap(err, "failed to update post")
	}

	srv.log(ctx).Info("Post updated", slog.Any("postID", postID), slog.Any("ownerID", ownerID))

	return updated, nil
}

// DeletePost removes the post and returns the deleted record.
func (srv *postService) DeletePost(ctx context.Context, ownerID, postID uuid.UUID) (*entity.Post, error) {
	deleted, err := srv.postRepo.DeleteOwned(ctx, ownerID, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			srv.log(ctx).Warn("Delete rejected, no owned post matched",
				slog.Any("postID", postID), slog.Any("ownerID", ownerID))

			return nil, errors.Wrap(domainerrors.ErrPostNotFoundOrUnauthorized, "delete post")
		}

		return nil, errors.Wrap(err, "failed to delete post")
	}

	srv.log(ctx).Info("Post deleted", slog.Any("postID", postID), slog.Any("ownerID", ownerID))

	return deleted, nil
}
