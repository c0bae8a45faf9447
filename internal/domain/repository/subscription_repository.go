package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDuplicateSubscription is returned when a subscriber already follows the
// channel. The toggle use case treats it as "already subscribed".
var ErrDuplicateSubscription = errors.New("subscription already exists")

// SubscriptionRepository defines the standard operations for subscription persistence.
type SubscriptionRepository interface {
	// Create persists a new subscription. Returns ErrDuplicateSubscription
	// when the unique (subscriber, channel) constraint is violated.
	Create(ctx context.Context, subscription *entity.Subscription) error

	// Delete removes the subscriber's subscription to a channel. It reports
	// whether a row was actually deleted.
	Delete(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)

	// Exists reports whether the subscriber currently follows the channel.
	Exists(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error)

	// CountSubscribers returns how many users follow the channel.
	CountSubscribers(ctx context.Context, channelID uuid.UUID) (int64, error)

	// CountSubscribedTo returns how many channels the user follows.
	CountSubscribedTo(ctx context.Context, subscriberID uuid.UUID) (int64, error)

	// ListSubscribers returns the channel's subscribers with users joined.
	ListSubscribers(ctx context.Context, channelID uuid.UUID) ([]*entity.Subscription, error)

	// ListSubscribedChannels returns the channels a user follows with users joined.
	ListSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.Subscription, error)
}
