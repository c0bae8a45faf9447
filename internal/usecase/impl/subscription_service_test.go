package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	mockRepo "vidtube/internal/mocks/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriptionServiceFixtures struct {
	service          usecase.SubscriptionUsecase
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	userRepo         *mockRepo.MockUserRepository
}

func createTestSubscriptionService(t *testing.T) subscriptionServiceFixtures {
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewSubscriptionService(SubscriptionServiceParams{
		SubscriptionRepo: subscriptionRepo,
		UserRepo:         userRepo,
		Logger:           logger,
	})

	return subscriptionServiceFixtures{
		service:          svc,
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
	}
}

func TestSubscriptionService_Toggle_Subscribe(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	subscriberID := uuid.New()
	channel := newTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, channel.ID).Return(channel, nil)
	fx.subscriptionRepo.EXPECT().Delete(ctx, subscriberID, channel.ID).Return(false, nil)
	fx.subscriptionRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(sub *entity.Subscription) bool {
			return sub.SubscriberID == subscriberID && sub.ChannelID == channel.ID
		})).
		Return(nil)

	subscribed, err := fx.service.Toggle(ctx, subscriberID, channel.ID)

	require.NoError(t, err)
	assert.True(t, subscribed)
}

func TestSubscriptionService_Toggle_Unsubscribe(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	subscriberID := uuid.New()
	channel := newTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, channel.ID).Return(channel, nil)
	fx.subscriptionRepo.EXPECT().Delete(ctx, subscriberID, channel.ID).Return(true, nil)

	subscribed, err := fx.service.Toggle(ctx, subscriberID, channel.ID)

	require.NoError(t, err)
	assert.False(t, subscribed)
}

func TestSubscriptionService_Toggle_SelfSubscription(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	userID := uuid.New()

	subscribed, err := fx.service.Toggle(ctx, userID, userID)

	assert.Error(t, err)
	assert.False(t, subscribed)
	assert.True(t, errors.Is(err, domainerrors.ErrSelfSubscription))
}

func TestSubscriptionService_Toggle_MissingChannel(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	channelID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, channelID).Return(nil, repository.ErrUserNotFound)

	subscribed, err := fx.service.Toggle(ctx, uuid.New(), channelID)

	assert.Error(t, err)
	assert.False(t, subscribed)
	assert.True(t, errors.Is(err, domainerrors.ErrChannelNotFound))
}

// A concurrent toggle that wins the insert still leaves the caller subscribed.
func TestSubscriptionService_Toggle_ConcurrentDuplicate(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	subscriberID := uuid.New()
	channel := newTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, channel.ID).Return(channel, nil)
	fx.subscriptionRepo.EXPECT().Delete(ctx, subscriberID, channel.ID).Return(false, nil)
	fx.subscriptionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Subscription")).
		Return(repository.ErrDuplicateSubscription)

	subscribed, err := fx.service.Toggle(ctx, subscriberID, channel.ID)

	require.NoError(t, err)
	assert.True(t, subscribed)
}

func TestSubscriptionService_GetSubscribers_StripsCredentials(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	channelID := uuid.New()
	subscriber := newTestUser()

	fx.subscriptionRepo.EXPECT().
		ListSubscribers(ctx, channelID).
		Return([]*entity.Subscription{
			{SubscriberID: subscriber.ID, ChannelID: channelID, Subscriber: subscriber},
		}, nil)

	users, err := fx.service.GetSubscribers(ctx, channelID)

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, subscriber.Username, users[0].Username)
	assert.Empty(t, users[0].PasswordHash)
	assert.Empty(t, users[0].RefreshTokenHash)
}

func TestSubscriptionService_GetSubscribedChannels(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	subscriberID := uuid.New()
	channel := newTestUser()

	fx.subscriptionRepo.EXPECT().
		ListSubscribedChannels(ctx, subscriberID).
		Return([]*entity.Subscription{
			{SubscriberID: subscriberID, ChannelID: channel.ID, Channel: channel},
		}, nil)

	channels, err := fx.service.GetSubscribedChannels(ctx, subscriberID)

	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, channel.Username, channels[0].Username)
	assert.Empty(t, channels[0].PasswordHash)
}
