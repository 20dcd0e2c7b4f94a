// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"

	"learnit/internal/delivery/http/response"
	domainerrors "learnit/internal/domain/errors"
	"learnit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the register and login handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the user registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingCredentials.WrapMessage("malformed register body")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrMissingCredentials.WrapMessage(err.Error())
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Auth(c, "Register successfully!", output.AccessToken)
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingCredentials.WrapMessage("malformed login body")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrMissingCredentials.WrapMessage(err.Error())
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Auth(c, "Login successfully", output.AccessToken)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Message(c, "Service is healthy")
}
