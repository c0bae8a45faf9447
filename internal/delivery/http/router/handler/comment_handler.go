package handler

import (
	"log/slog"
	"net/http"

	"vidtube/internal/delivery/http/response"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CommentHandler holds dependencies for comment handlers.
type CommentHandler struct {
	uc     usecase.CommentUsecase
	logger *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{uc: uc, logger: logger}
}

type commentRequest struct {
	Content string `json:"content" validate:"required"`
}

// Add creates a comment on a video.
func (h *CommentHandler) Add(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid video ID")
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.uc.Add(c.Request().Context(), userID, videoID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCommentResponse(comment), "Comment added successfully")
}

// ListByVideo returns a page of a video's comments.
func (h *CommentHandler) ListByVideo(c echo.Context) error {
	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid video ID")
	}

	output, err := h.uc.ListByVideo(c.Request().Context(), videoID, queryInt(c, "page", 1), queryInt(c, "limit", 10))
	if err != nil {
		return errors.WithStack(err)
	}

	comments := make([]*commentResponse, 0, len(output.Comments))
	for _, comment := range output.Comments {
		comments = append(comments, toCommentResponse(comment))
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"comments": comments,
		"meta": pageMeta{
			Total:      output.Total,
			Page:       output.Page,
			Limit:      output.Limit,
			TotalPages: output.TotalPages,
		},
	}, "Comments fetched successfully")
}

// Update modifies a comment owned by the caller.
func (h *CommentHandler) Update(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	commentID, err := pathUUID(c, "commentId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid comment ID")
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.uc.Update(c.Request().Context(), userID, commentID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCommentResponse(comment), "Comment updated successfully")
}

// Delete removes a comment owned by the caller.
func (h *CommentHandler) Delete(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	commentID, err := pathUUID(c, "commentId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid comment ID")
	}

	if err := h.uc.Delete(c.Request().Context(), userID, commentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted successfully")
}
