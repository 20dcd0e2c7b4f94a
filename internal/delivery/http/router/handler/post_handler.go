package handler

import (
	"log/slog"

	"learnit/internal/delivery/http/middleware"
	"learnit/internal/delivery/http/response"
	domainerrors "learnit/internal/domain/errors"
	"learnit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler holds dependencies for the post CRUD handlers. Every route it
// serves sits behind the auth middleware, so the owner id is always present.
type PostHandler struct {
	uc     usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		uc:     uc,
		logger: logger,
	}
}

// ownerID reads the authenticated user id set by the auth middleware.
func ownerID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrInvalidToken.WrapMessage("user id absent from context")
	}

	return userID, nil
}

// postID parses the :id path param. A malformed id is indistinguishable from
// a missing post, so it maps to the same failure.
func postID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrPostNotFoundOrUnauthorized.WrapMessage("malformed post id")
	}

	return id, nil
}

// Create handles the post creation request.
func (h *PostHandler) Create(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var input usecase.PostInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingTitle.WrapMessage("malformed post body")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrMissingTitle.WrapMessage(err.Error())
	}

	post, err := h.uc.CreatePost(c.Request().Context(), owner, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Post(c, "Happy learning!", post)
}

// List handles the post listing request.
func (h *PostHandler) List(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	posts, err := h.uc.ListPosts(c.Request().Context(), owner)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Posts(c, posts)
}

// Update handles the full-replace post update request.
func (h *PostHandler) Update(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	id, err := postID(c)
	if err != nil {
		return err
	}

	var input usecase.PostInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingTitle.WrapMessage("malformed post body")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrMissingTitle.WrapMessage(err.Error())
	}

	post, err := h.uc.UpdatePost(c.Request().Context(), owner, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Post(c, "Excellent progress!", post)
}

// Delete handles the post deletion request. The deleted record is echoed
// back without a message.
func (h *PostHandler) Delete(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	id, err := postID(c)
	if err != nil {
		return err
	}

	post, err := h.uc.DeletePost(c.Request().Context(), owner, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Post(c, "", post)
}
