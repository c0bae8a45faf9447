package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionUsecase defines the interface for channel subscription operations.
type SubscriptionUsecase interface {
	// Toggle flips the caller's subscription to a channel and reports the
	// resulting state. Subscribing to oneself is rejected.
	Toggle(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)

	// GetSubscribers returns the users following the channel.
	GetSubscribers(ctx context.Context, channelID uuid.UUID) ([]*entity.User, error)

	// GetSubscribedChannels returns the channels the user follows.
	GetSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.User, error)
}
