package handler

import (
	"log/slog"
	"net/http"

	"vidtube/internal/delivery/http/response"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SubscriptionHandler holds dependencies for subscription handlers.
type SubscriptionHandler struct {
	uc     usecase.SubscriptionUsecase
	logger *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler, injected by Fx.
func NewSubscriptionHandler(uc usecase.SubscriptionUsecase, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc, logger: logger}
}

// Toggle flips the caller's subscription to a channel.
func (h *SubscriptionHandler) Toggle(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	channelID, err := pathUUID(c, "channelId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid channel ID")
	}

	subscribed, err := h.uc.Toggle(c.Request().Context(), userID, channelID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"subscribed": subscribed}, "Subscription toggled")
}

// GetSubscribers lists the users following a channel.
func (h *SubscriptionHandler) GetSubscribers(c echo.Context) error {
	channelID, err := pathUUID(c, "channelId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid channel ID")
	}

	users, err := h.uc.GetSubscribers(c.Request().Context(), channelID)
	if err != nil {
		return errors.WithStack(err)
	}

	subscribers := make([]*userResponse, 0, len(users))
	for _, user := range users {
		subscribers = append(subscribers, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, subscribers, "Subscribers fetched successfully")
}

// GetSubscribedChannels lists the channels a user follows.
func (h *SubscriptionHandler) GetSubscribedChannels(c echo.Context) error {
	subscriberID, err := pathUUID(c, "subscriberId")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid subscriber ID")
	}

	users, err := h.uc.GetSubscribedChannels(c.Request().Context(), subscriberID)
	if err != nil {
		return errors.WithStack(err)
	}

	channels := make([]*userResponse, 0, len(users))
	for _, user := range users {
		channels = append(channels, toUserResponse(user))
	}

	return response.Success(c, http.StatusOK, channels, "Subscribed channels fetched successfully")
}
