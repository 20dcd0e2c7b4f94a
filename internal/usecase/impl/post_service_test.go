package impl

import (
	"context"
	"log/slog"
	"testing"

	"learnit/internal/domain/entity"
	domainerrors "learnit/internal/domain/errors"
	"learnit/internal/domain/repository"
	mockRepo "learnit/internal/mocks/repository"
	"learnit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPostServiceForTest(t *testing.T) (usecase.PostUsecase, *mockRepo.MockPostRepository) {
	t.Helper()

	mockPostRepo := mockRepo.NewMockPostRepository(t)
	service := NewPostService(PostServiceParams{
		PostRepo: mockPostRepo,
		Logger:   slog.Default(),
	})

	return service, mockPostRepo
}

func TestPostService_CreatePost_Defaults(t *testing.T) {
	service, mockPostRepo := newPostServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()

	mockPostRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Post")).
		Run(func(_ context.Context, post *entity.Post) {
			post.ID = uuid.New()
		}).
		Return(nil)

	post, err := service.CreatePost(ctx, ownerID, &usecase.PostInput{Title: "Learn Go"})
	require.NoError(t, err)
	assert.Equal(t, "Learn Go", post.Title)
	assert.Equal(t, "", post.Description)
	assert.Equal(t, "", post.URL)
	assert.Equal(t, entity.StatusToLearn, post.Status)
	assert.Equal(t, ownerID, post.OwnerID)
}

func TestPostService_CreatePost_URLNormalization(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{"bare host gains prefix", "example.com/article", "https://example.com/article"},
		{"https kept as is", "https://example.com", "https://example.com"},
		{"http is not https", "http://example.com", "https://http://example.com"},
		{"empty stays empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			service, mockPostRepo := newPostServiceForTest(t)
			ctx := context.Background()

			mockPostRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Post")).
				Return(nil)

			post, err := service.CreatePost(ctx, uuid.New(), &usecase.PostInput{Title: "t", URL: tc.url})
			require.NoError(t, err)
			assert.Equal(t, tc.want, post.URL)
		})
	}
}

func TestPostService_CreatePost_ArbitraryStatusKept(t *testing.T) {
	service, mockPostRepo := newPostServiceForTest(t)
	ctx := context.Background()

	mockPostRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Post")).
		Return(nil)

	post, err := service.CreatePost(ctx, uuid.New(), &usecase.PostInput{Title: "t", Status: "ON HOLD"})
	require.NoError(t, err)
	assert.Equal(t, entity.PostStatus("ON HOLD"), post.Status)
}

func TestPostService_CreatePost_MissingTitle(t *testing.T) {
	service, mockPostRepo := newPostServiceForTest(t)
	ctx := context.Background()

	post, err := service.CreatePost(ctx, uuid.New(), &usecase.PostInput{Description: "no title"})
	require.Error(t, err)
	assert.Nil(t, post)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingTitle))

	mockPostRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPostService_ListPosts(t *testing.T) {
	service, mockPostRepo := newPostServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()

	stored := []*entity.Post{
		{ID: uuid.New(), Title: "first", OwnerID: ownerID, OwnerUsername: "alice"},
		{ID: uuid.New(), Title: "second", OwnerID: ownerID, OwnerUsername: "alice"},
	}

	mockPostRepo.EXPECT().
		FindByOwner(ctx, ownerID).
		Return(stored, nil)

	posts, err := service.ListPosts(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "alice", posts[0].OwnerUsername)
}

func TestPostService_ListPosts_Empty(t *testing.T) {
	service, mockPostRepo := newPostServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()

	mockPostRepo.EXPECT().
		FindByOwner(ctx, ownerID).
		Return([]*entity.Post{}, nil)

	posts, err := service.ListPosts(ctx, ownerID)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostService_UpdatePost_FullReplace(t *testing.T) {
	service, mockPostRepo := newPostServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()
	postID := uuid.New()

	mockPostRepo.EXPECT().
		UpdateOwned(ctx, ownerID, postID, mock.AnythingOfType("*entity.Post")).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, id uuid.UUID, post *entity.Post) (*entity.Post, error) {
			// The absent url must arrive as the empty default, not be skipped.
			assert.Equal(t, "", post.URL)
			assert.Equal(t, entity.StatusLearned, post.Status)

			updated := *post
			updated.ID = id

			return &updated, nil
		})

	post, err := service.UpdatePost(ctx, ownerID, postID, &usecase.PostInput{Title: "t2", Status: "LEARNED"})
	require.NoError(t, err)
	assert.Equal(t, postID, post.ID)
	assert.Equal(t, "t2", post.Title)
}

func TestPostService_UpdatePost_NotOwnedOrMissing(t *testing.T) {
	service, mockPostRepo := newPostServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()
	postID := uuid.New()

	mockPostRepo.EXPECT().
		UpdateOwned(ctx, ownerID, postID, mock.AnythingOfType("*entity.Post")).
		Return(nil, repository.ErrPostNotFound)

	post, err := service.UpdatePost(ctx, ownerID, postID, &usecase.PostInput{Title: "t"})
	require.Error(t, err)
	assert.Nil(t, post)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFoundOrUnauthorized))
}

func TestPostService_UpdatePost_MissingTitle(t *testing.T) {
	service, mockPostRepo := newPostServiceForTest(t)
	ctx := context.Background()

	post, err := service.UpdatePost(ctx, uuid.New(), uuid.New(), &usecase.PostInput{URL: "example.com"})
	require.Error(t, err)
	assert.Nil(t, post)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingTitle))

	mockPostRepo.AssertNotCalled(t, "UpdateOwned", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPostService_DeletePost_ReturnsDeleted(t *testing.T) {
	service, mockPostRepo := newPostServiceForTest(t)
	ctx := context.Background()
	ownerID := uuid.New()
	postID := uuid.New()

	deleted := &entity.Post{ID: postID, Title: "gone", OwnerID: ownerID}

	mockPostRepo.EXPECT().
		DeleteOwned(ctx, ownerID, postID).
		Return(deleted, nil)

	post, err := service.DeletePost(ctx, ownerID, postID)
	require.NoError(t, err)
	assert.Equal(t, deleted, post)
}

func TestPostService_DeletePost_NotOwnedOrMissing(t *testing.T) {
	service, mockPostRepo := newPostServiceForTest(t)
	ctx := context.Background()

	mockPostRepo.EXPECT().
		DeleteOwned(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("uuid.UUID")).
		Return(nil, repository.ErrPostNotFound)

	post, err := service.DeletePost(ctx, uuid.New(), uuid.New())
	require.Error(t, err)
	assert.Nil(t, post)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFoundOrUnauthorized))
}
