package impl

import (
	"context"
	"log/slog"
	"testing"

	"learnit/internal/domain/entity"
	domainerrors "learnit/internal/domain/errors"
	"learnit/internal/domain/repository"
	mockRepo "learnit/internal/mocks/repository"
	mockSvc "learnit/internal/mocks/service"
	"learnit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthServiceForTest(t *testing.T) (usecase.AuthUsecase, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService) {
	t.Helper()

	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokens := mockSvc.NewMockTokenService(t)
	service := NewAuthService(AuthServiceParams{
		UserRepo:     mockUserRepo,
		Hasher:       mockHasher,
		TokenService: mockTokens,
		Logger:       slog.Default(),
	})

	return service, mockUserRepo, mockHasher, mockTokens
}

func TestAuthService_Register_Success(t *testing.T) {
	service, mockUserRepo, mockHasher, mockTokens := newAuthServiceForTest(t)
	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(nil, repository.ErrUserNotFound)

	mockHasher.EXPECT().
		Hash("pw1").
		Return("$2a$10$hash", nil)

	mockUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	mockTokens.EXPECT().
		IssueToken(mock.AnythingOfType("uuid.UUID")).
		Return("token123", nil)

	output, err := service.Register(ctx, &usecase.RegisterInput{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, "token123", output.AccessToken)
	assert.NotEqual(t, uuid.Nil, output.UserID)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	service, mockUserRepo, _, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(&entity.User{ID: uuid.New(), Username: "alice"}, nil)

	output, err := service.Register(ctx, &usecase.RegisterInput{Username: "alice", Password: "pw1"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	service, mockUserRepo, _, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input *usecase.RegisterInput
	}{
		{"missing password", &usecase.RegisterInput{Username: "alice"}},
		{"missing username", &usecase.RegisterInput{Password: "pw1"}},
		{"missing both", &usecase.RegisterInput{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			output, err := service.Register(ctx, tc.input)
			require.Error(t, err)
			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrMissingCredentials))
		})
	}

	// No store call should have happened for any of the rejected inputs.
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_RepoFailure(t *testing.T) {
	service, mockUserRepo, mockHasher, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(nil, repository.ErrUserNotFound)

	mockHasher.EXPECT().
		Hash("pw1").
		Return("$2a$10$hash", nil)

	mockUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(errors.New("connection refused"))

	output, err := service.Register(ctx, &usecase.RegisterInput{Username: "alice", Password: "pw1"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.False(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAuthService_Login_Success(t *testing.T) {
	service, mockUserRepo, mockHasher, mockTokens := newAuthServiceForTest(t)
	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(&entity.User{ID: userID, Username: "alice", PasswordHash: "$2a$10$hash"}, nil)

	mockHasher.EXPECT().
		Check("pw1", "$2a$10$hash").
		Return(true)

	mockTokens.EXPECT().
		IssueToken(userID).
		Return("token123", nil)

	output, err := service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, userID, output.UserID)
	assert.Equal(t, "token123", output.AccessToken)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	service, mockUserRepo, _, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByUsername(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	output, err := service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "pw1"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrIncorrectUsername))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, mockUserRepo, mockHasher, mockTokens := newAuthServiceForTest(t)
	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(&entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "$2a$10$hash"}, nil)

	mockHasher.EXPECT().
		Check("wrong", "$2a$10$hash").
		Return(false)

	output, err := service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrIncorrectPassword))

	mockTokens.AssertNotCalled(t, "IssueToken", mock.Anything)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	service, mockUserRepo, _, _ := newAuthServiceForTest(t)
	ctx := context.Background()

	output, err := service.Login(ctx, &usecase.LoginInput{Username: "alice"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingCredentials))

	mockUserRepo.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
}
