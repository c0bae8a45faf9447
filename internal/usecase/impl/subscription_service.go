package impl

import (
	"context"
	"log/slog"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// subscriptionService implements the SubscriptionUsecase interface.
type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	userRepo         repository.UserRepository
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for subscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	UserRepo         repository.UserRepository
	Logger           *slog.Logger
}

// NewSubscriptionService is the constructor for subscriptionService.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		userRepo:         params.UserRepo,
		logger:           params.Logger,
	}
}

func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Toggle flips the caller's subscription to a channel. Delete-first, same
// shape as the like toggle; the unique index absorbs concurrent duplicates.
func (srv *subscriptionService) Toggle(ctx context.Context, subscriberID, channelID uuid.UUID) (bool, error) {
	if subscriberID == channelID {
		return false, errors.Wrap(domainerrors.ErrSelfSubscription, "cannot subscribe to own channel")
	}

	if _, err := srv.userRepo.FindByID(ctx, channelID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, errors.Wrap(domainerrors.ErrChannelNotFound, "cannot subscribe to missing channel")
		}

		return false, errors.Wrap(err, "failed to load channel for subscription toggle")
	}

	deleted, err := srv.subscriptionRepo.Delete(ctx, subscriberID, channelID)
	if err != nil {
		return false, errors.Wrap(err, "failed to remove subscription")
	}
	if deleted {
		srv.log(ctx).Debug("Unsubscribed", slog.Any("subscriberID", subscriberID), slog.Any("channelID", channelID))

		return false, nil
	}

	subscription := &entity.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
	if err := srv.subscriptionRepo.Create(ctx, subscription); err != nil {
		if errors.Is(err, repository.ErrDuplicateSubscription) {
			return true, nil
		}

		return false, errors.Wrap(err, "failed to create subscription")
	}

	srv.log(ctx).Debug("Subscribed", slog.Any("subscriberID", subscriberID), slog.Any("channelID", channelID))

	return true, nil
}

// GetSubscribers returns the users following the channel.
func (srv *subscriptionService) GetSubscribers(ctx context.Context, channelID uuid.UUID) ([]*entity.User, error) {
	subscriptions, err := srv.subscriptionRepo.ListSubscribers(ctx, channelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribers")
	}

	users := make([]*entity.User, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		if subscription.Subscriber != nil {
			users = append(users, subscription.Subscriber.PublicProfile())
		}
	}

	return users, nil
}

// GetSubscribedChannels returns the channels the user follows.
func (srv *subscriptionService) GetSubscribedChannels(ctx context.Context, subscriberID uuid.UUID) ([]*entity.User, error) {
	subscriptions, err := srv.subscriptionRepo.ListSubscribedChannels(ctx, subscriberID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribed channels")
	}

	channels := make([]*entity.User, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		if subscription.Channel != nil {
			channels = append(channels, subscription.Channel.PublicProfile())
		}
	}

	return channels, nil
}
