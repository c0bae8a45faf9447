package handler

import (
	"log/slog"
	"net/http"

	"vidtube/internal/delivery/http/response"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for channel dashboard handlers.
type DashboardHandler struct {
	uc     usecase.DashboardUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, logger: logger}
}

// GetStats returns the caller's channel statistics.
func (h *DashboardHandler) GetStats(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	stats, err := h.uc.GetChannelStats(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, channelStatsResponse{
		TotalVideos:      stats.TotalVideos,
		TotalViews:       stats.TotalViews,
		TotalSubscribers: stats.TotalSubscribers,
		TotalLikes:       stats.TotalLikes,
	}, "Channel stats fetched successfully")
}

// GetVideos returns all of the caller's videos, drafts included.
func (h *DashboardHandler) GetVideos(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	videos, err := h.uc.GetChannelVideos(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toVideoResponses(videos), "Channel videos fetched successfully")
}
