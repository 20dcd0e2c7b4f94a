// Package response defines the JSON envelope of the API. Every body carries a
// top-level success flag; failures carry only success and message.
package response

import (
	"net/http"

	"learnit/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// AuthResponse is the body of a successful register or login.
type AuthResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	AccessToken string `json:"accessToken"`
}

// PostResponse is the body of a successful single-post operation.
type PostResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Post    *entity.Post `json:"post"`
}

// PostListResponse is the body of a successful post listing.
type PostListResponse struct {
	Success bool           `json:"success"`
	Posts   []*entity.Post `json:"posts"`
}

// MessageResponse is a bare success or failure message.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Auth writes a successful auth response carrying the access token.
func Auth(c echo.Context, message, accessToken string) error {
	return c.JSON(http.StatusOK, AuthResponse{
		Success:     true,
		Message:     message,
		AccessToken: accessToken,
	})
}

// Post writes a successful single-post response. The message is optional:
// delete responses carry none.
func Post(c echo.Context, message string, post *entity.Post) error {
	return c.JSON(http.StatusOK, PostResponse{
		Success: true,
		Message: message,
		Post:    post,
	})
}

// Posts writes a successful post listing.
func Posts(c echo.Context, posts []*entity.Post) error {
	if posts == nil {
		posts = []*entity.Post{}
	}

	return c.JSON(http.StatusOK, PostListResponse{
		Success: true,
		Posts:   posts,
	})
}

// Message writes a bare success message.
func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: message,
	})
}

// Error writes a failure body. No detail beyond the message ever reaches the
// client.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, MessageResponse{
		Success: false,
		Message: message,
	})
}
