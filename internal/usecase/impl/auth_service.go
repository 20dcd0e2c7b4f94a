// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "learnit/internal/delivery/context"
	"learnit/internal/domain/entity"
	domainerrors "learnit/internal/domain/errors"
	"learnit/internal/domain/repository"
	"learnit/internal/domain/service"
	"learnit/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new user account and returns a token bound to it.
//
// The username lookup and the insert are two separate store operations, so
// two concurrent registrations for the same name can both pass the lookup.
// The unique index on username makes the insert itself fail for the loser,
// which maps to the same ErrUsernameTaken.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if input.Username == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingCredentials, "register input incomplete")
	}

	srv.log(ctx).Debug("Starting registration", slog.String("username", input.Username))

	_, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, username taken", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrUsernameTaken, "register lookup")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing username")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:     input.Username,
		PasswordHash: passwordHash,
	}
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	accessToken, err := srv.tokenService.IssueToken(newUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token after registration")
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", newUser.ID), slog.String("username", newUser.Username))

	return &usecase.AuthOutput{UserID: newUser.ID, AccessToken: accessToken}, nil
}

// Login verifies the credentials and returns a token bound to the user.
// "Incorrect username" and "Incorrect password" are distinct outcomes.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input.Username == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingCredentials, "login input incomplete")
	}

	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown username", slog.String("username", input.Username))

			return nil, errors.Wrap(domainerrors.ErrIncorrectUsername, "login lookup")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrIncorrectPassword, "login check")
	}

	accessToken, err := srv.tokenService.IssueToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token after login")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{UserID: user.ID, AccessToken: accessToken}, nil
}
