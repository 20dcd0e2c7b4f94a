package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "learnit/internal/domain/errors"
	mockSvc "learnit/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, tokenSvc *mockSvc.MockTokenService, authHeader string) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	m := NewAuthMiddleware(tokenSvc)
	next := func(c echo.Context) error { return nil }

	return c, m.Authenticate(next)(c)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	_, err := runAuthenticate(t, tokenSvc, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingToken))
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	// A raw token without the Bearer prefix is an invalid format.
	_, err := runAuthenticate(t, tokenSvc, "sometoken")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		VerifyToken("garbage").
		Return(uuid.Nil, errors.New("token is malformed"))

	_, err := runAuthenticate(t, tokenSvc, "Bearer garbage")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		VerifyToken("goodtoken").
		Return(userID, nil)

	c, err := runAuthenticate(t, tokenSvc, "Bearer goodtoken")
	require.NoError(t, err)
	assert.Equal(t, userID, c.Get(ContextKeyUserID))
}
