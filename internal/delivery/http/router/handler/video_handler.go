package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"vidtube/internal/delivery/http/response"
	"vidtube/internal/domain/entity"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VideoHandler holds dependencies for video catalog handlers.
type VideoHandler struct {
	uc     usecase.VideoUsecase
	logger *slog.Logger
}

// NewVideoHandler is the constructor for VideoHandler, injected by Fx.
func NewVideoHandler(uc usecase.VideoUsecase, logger *slog.Logger) *VideoHandler {
	return &VideoHandler{uc: uc, logger: logger}
}

type updateVideoRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
}

// Publish handles the multipart video upload request.
func (h *VideoHandler) Publish(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	title := c.FormValue("title")
	if title == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "title is required")
	}

	duration, _ := strconv.ParseFloat(c.FormValue("duration"), 64)

	videoFile, videoCloser, err := formUpload(c, "videoFile")
	if err != nil {
		return response.BadRequest(c, "MISSING_FILE", "Video file is required")
	}
	defer videoCloser.Close()

	thumbnail, thumbnailCloser, err := formUpload(c, "thumbnail")
	if err != nil {
		return response.BadRequest(c, "MISSING_FILE", "Thumbnail file is required")
	}
	defer thumbnailCloser.Close()

	video, err := h.uc.Publish(c.Request().Context(), userID, &usecase.PublishVideoInput{
		Title:       title,
		Description: c.FormValue("description"),
		Duration:    duration,
		VideoFile:   videoFile,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toVideoResponse(video), "Video published successfully")
}

// List returns published videos matching the query parameters.
func (h *VideoHandler) List(c echo.Context) error {
	query := entity.VideoListQuery{
		Search:   c.QueryParam("query"),
		SortBy:   c.QueryParam("sortBy"),
		SortType: c.QueryParam("sortType"),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 10),
	}

	output, err := h.uc.List(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"videos": toVideoResponses(output.Videos),
		"meta": pageMeta{
			Total:      output.Total,
			Page:       output.Page,
			Limit:      output.Limit,
			TotalPages: output.TotalPages,
		},
	}, "Videos fetched successfully")
}

// GetByID returns one video, counting the view.
func (h *VideoHandler) GetByID(c echo.Context) error {
	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid video ID")
	}

	video, err := h.uc.GetByID(c.Request().Context(), videoID, optionalUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVideoResponse(video), "Video fetched successfully")
}

// ListMine returns all of the caller's videos, drafts included.
func (h *VideoHandler) ListMine(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	videos, err := h.uc.ListByOwner(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVideoResponses(videos), "Videos fetched successfully")
}

// IncrementViews bumps the view counter without returning the video.
func (h *VideoHandler) IncrementViews(c echo.Context) error {
	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid video ID")
	}

	if err := h.uc.IncrementViews(c.Request().Context(), videoID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "View counted")
}

// Update modifies a video's details, with an optional new thumbnail.
func (h *VideoHandler) Update(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid video ID")
	}

	input := &usecase.UpdateVideoInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
	}

	if thumbnail, thumbnailCloser, err := formUpload(c, "thumbnail"); err == nil {
		defer thumbnailCloser.Close()
		input.Thumbnail = thumbnail
	}

	video, err := h.uc.Update(c.Request().Context(), userID, videoID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVideoResponse(video), "Video updated successfully")
}

// Delete removes a video and everything attached to it.
func (h *VideoHandler) Delete(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid video ID")
	}

	if err := h.uc.Delete(c.Request().Context(), userID, videoID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Video deleted successfully")
}

// TogglePublish flips the video's published flag.
func (h *VideoHandler) TogglePublish(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid video ID")
	}

	video, err := h.uc.TogglePublishStatus(c.Request().Context(), userID, videoID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVideoResponse(video), "Publish status toggled successfully")
}
