package handler

import (
	"log/slog"
	"net/http"

	"vidtube/internal/delivery/http/response"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LikeHandler holds dependencies for like toggle handlers.
type LikeHandler struct {
	uc     usecase.LikeUsecase
	logger *slog.Logger
}

// NewLikeHandler is the constructor for LikeHandler, injected by Fx.
func NewLikeHandler(uc usecase.LikeUsecase, logger *slog.Logger) *LikeHandler {
	return &LikeHandler{uc: uc, logger: logger}
}

// ToggleVideoLike flips the caller's like on a video.
func (h *LikeHandler) ToggleVideoLike(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid video ID")
	}

	isLiked, err := h.uc.ToggleVideoLike(c.Request().Context(), userID, videoID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"isLiked": isLiked}, "Video like toggled")
}

// ToggleCommentLike flips the caller's like on a comment.
func (h *LikeHandler) ToggleCommentLike(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	commentID, err := pathUUID(c, "commentId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid comment ID")
	}

	isLiked, err := h.uc.ToggleCommentLike(c.Request().Context(), userID, commentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"isLiked": isLiked}, "Comment like toggled")
}

// GetVideoLikeCount returns the public like count of a video.
func (h *LikeHandler) GetVideoLikeCount(c echo.Context) error {
	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid video ID")
	}

	count, err := h.uc.GetVideoLikeCount(c.Request().Context(), videoID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"likeCount": count}, "Like count fetched successfully")
}

// GetUserLiked reports whether the caller likes the video.
func (h *LikeHandler) GetUserLiked(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid video ID")
	}

	isLiked, err := h.uc.IsVideoLiked(c.Request().Context(), userID, videoID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"isLiked": isLiked}, "Like state fetched successfully")
}

// GetLikedVideos returns the caller's liked videos.
func (h *LikeHandler) GetLikedVideos(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	videos, err := h.uc.GetLikedVideos(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVideoResponses(videos), "Liked videos fetched successfully")
}
