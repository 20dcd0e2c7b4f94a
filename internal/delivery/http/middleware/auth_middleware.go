package middleware

import (
	"strings"

	domainerrors "learnit/internal/domain/errors"
	"learnit/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo context key carrying the authenticated user id.
const ContextKeyUserID = "userID"

// AuthMiddleware gates the post routes behind a verified bearer token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Authorization header and stores the bound user
// id on the context. Errors flow to the central error handler, so the client
// sees the standard failure envelope.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrMissingToken.WrapMessage("authorization header absent")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrInvalidToken.WrapMessage("authorization header is not a bearer token")
		}

		userID, err := m.tokenSvc.VerifyToken(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken.WrapMessage(err.Error())
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, userID)

		return next(c)
	}
}
