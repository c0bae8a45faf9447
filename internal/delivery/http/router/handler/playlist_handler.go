package handler

import (
	"context"
	"log/slog"
	"net/http"

	"vidtube/internal/delivery/http/response"
	"vidtube/internal/domain/entity"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PlaylistHandler holds dependencies for playlist handlers.
type PlaylistHandler struct {
	uc     usecase.PlaylistUsecase
	logger *slog.Logger
}

// NewPlaylistHandler is the constructor for PlaylistHandler, injected by Fx.
func NewPlaylistHandler(uc usecase.PlaylistUsecase, logger *slog.Logger) *PlaylistHandler {
	return &PlaylistHandler{uc: uc, logger: logger}
}

type playlistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create makes a new, empty playlist.
func (h *PlaylistHandler) Create(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	var req playlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid playlist input")
	}
	if req.Name == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "name is required")
	}

	playlist, err := h.uc.Create(c.Request().Context(), userID, &usecase.PlaylistInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPlaylistResponse(playlist), "Playlist created successfully")
}

// GetByID returns a playlist with its videos.
func (h *PlaylistHandler) GetByID(c echo.Context) error {
	playlistID, err := pathUUID(c, "playlistId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid playlist ID")
	}

	playlist, err := h.uc.GetByID(c.Request().Context(), playlistID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlaylistResponse(playlist), "Playlist fetched successfully")
}

// Update modifies a playlist owned by the caller.
func (h *PlaylistHandler) Update(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	playlistID, err := pathUUID(c, "playlistId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid playlist ID")
	}

	var req playlistRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid playlist input")
	}

	playlist, err := h.uc.Update(c.Request().Context(), userID, playlistID, &usecase.PlaylistInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlaylistResponse(playlist), "Playlist updated successfully")
}

// Delete removes a playlist owned by the caller.
func (h *PlaylistHandler) Delete(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	playlistID, err := pathUUID(c, "playlistId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid playlist ID")
	}

	if err := h.uc.Delete(c.Request().Context(), userID, playlistID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Playlist deleted successfully")
}

// ListByUser returns all playlists owned by a user.
func (h *PlaylistHandler) ListByUser(c echo.Context) error {
	userID, err := pathUUID(c, "userId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid user ID")
	}

	playlists, err := h.uc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*playlistResponse, 0, len(playlists))
	for _, playlist := range playlists {
		out = append(out, toPlaylistResponse(playlist))
	}

	return response.Success(c, http.StatusOK, out, "Playlists fetched successfully")
}

// AddVideo inserts a video into a playlist owned by the caller.
func (h *PlaylistHandler) AddVideo(c echo.Context) error {
	return h.mutateVideo(c, h.uc.AddVideo, "Video added to playlist")
}

// RemoveVideo removes a video from a playlist owned by the caller.
func (h *PlaylistHandler) RemoveVideo(c echo.Context) error {
	return h.mutateVideo(c, h.uc.RemoveVideo, "Video removed from playlist")
}

func (h *PlaylistHandler) mutateVideo(
	c echo.Context,
	mutate func(ctx context.Context, ownerID, playlistID, videoID uuid.UUID) (*entity.Playlist, error),
	message string,
) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	playlistID, err := pathUUID(c, "playlistId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid playlist ID")
	}

	videoID, err := pathUUID(c, "videoId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid video ID")
	}

	playlist, err := mutate(c.Request().Context(), userID, playlistID, videoID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlaylistResponse(playlist), message)
}
