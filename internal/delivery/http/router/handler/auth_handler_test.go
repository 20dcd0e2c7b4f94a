package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"learnit/internal/delivery/http/response"
	"learnit/internal/delivery/http/validator"
	domainerrors "learnit/internal/domain/errors"
	mockUC "learnit/internal/mocks/usecase"
	"learnit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	mockAuth := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(mockAuth, slog.Default())

	mockAuth.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Username: "alice", Password: "pw1"}).
		Return(&usecase.AuthOutput{UserID: uuid.New(), AccessToken: "token123"}, nil)

	c, rec := newAuthTestContext(t, `{"username":"alice","password":"pw1"}`)
	err := handler.Register(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body response.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Register successfully!", body.Message)
	assert.Equal(t, "token123", body.AccessToken)
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	mockAuth := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(mockAuth, slog.Default())

	c, _ := newAuthTestContext(t, `{"username":"alice"}`)
	err := handler.Register(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "Missing username and/or password", appErr.Message())

	mockAuth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_UsecaseError(t *testing.T) {
	mockAuth := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(mockAuth, slog.Default())

	mockAuth.EXPECT().
		Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(nil, domainerrors.ErrUsernameTaken)

	c, _ := newAuthTestContext(t, `{"username":"alice","password":"pw1"}`)
	err := handler.Register(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Username already taken", appErr.Message())
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockAuth := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(mockAuth, slog.Default())

	mockAuth.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "pw1"}).
		Return(&usecase.AuthOutput{UserID: uuid.New(), AccessToken: "token123"}, nil)

	c, rec := newAuthTestContext(t, `{"username":"alice","password":"pw1"}`)
	err := handler.Login(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body response.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Login successfully", body.Message)
	assert.Equal(t, "token123", body.AccessToken)
}

func TestAuthHandler_Login_IncorrectPassword(t *testing.T) {
	mockAuth := mockUC.NewMockAuthUsecase(t)
	handler := NewAuthHandler(mockAuth, slog.Default())

	mockAuth.EXPECT().
		Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, domainerrors.ErrIncorrectPassword)

	c, _ := newAuthTestContext(t, `{"username":"alice","password":"wrong"}`)
	err := handler.Login(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "Incorrect password", appErr.Message())
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := HealthCheck(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}
