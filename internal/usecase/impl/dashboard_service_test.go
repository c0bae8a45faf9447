package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vidtube/internal/domain/entity"
	mockRepo "vidtube/internal/mocks/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dashboardServiceFixtures struct {
	service          usecase.DashboardUsecase
	videoRepo        *mockRepo.MockVideoRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	likeRepo         *mockRepo.MockLikeRepository
}

func createTestDashboardService(t *testing.T) dashboardServiceFixtures {
	videoRepo := mockRepo.NewMockVideoRepository(t)
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	likeRepo := mockRepo.NewMockLikeRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewDashboardService(DashboardServiceParams{
		VideoRepo:        videoRepo,
		SubscriptionRepo: subscriptionRepo,
		LikeRepo:         likeRepo,
		Logger:           logger,
	})

	return dashboardServiceFixtures{
		service:          svc,
		videoRepo:        videoRepo,
		subscriptionRepo: subscriptionRepo,
		likeRepo:         likeRepo,
	}
}

func TestDashboardService_GetChannelStats_Aggregates(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.videoRepo.EXPECT().CountByOwner(ctx, ownerID).Return(int64(12), nil)
	fx.videoRepo.EXPECT().SumViewsByOwner(ctx, ownerID).Return(int64(34567), nil)
	fx.subscriptionRepo.EXPECT().CountSubscribers(ctx, ownerID).Return(int64(890), nil)
	fx.likeRepo.EXPECT().CountByChannel(ctx, ownerID).Return(int64(456), nil)

	stats, err := fx.service.GetChannelStats(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalVideos)
	assert.Equal(t, int64(34567), stats.TotalViews)
	assert.Equal(t, int64(890), stats.TotalSubscribers)
	assert.Equal(t, int64(456), stats.TotalLikes)
}

func TestDashboardService_GetChannelStats_CountFailure(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.videoRepo.EXPECT().CountByOwner(ctx, ownerID).Return(int64(0), errors.New("connection reset"))

	stats, err := fx.service.GetChannelStats(ctx, ownerID)

	assert.Error(t, err)
	assert.Nil(t, stats)
}

func TestDashboardService_GetChannelVideos_IncludesDrafts(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	draft := newTestVideo(ownerID)
	draft.IsPublished = false
	videos := []*entity.Video{newTestVideo(ownerID), draft}

	fx.videoRepo.EXPECT().ListByOwner(ctx, ownerID).Return(videos, nil)

	got, err := fx.service.GetChannelVideos(ctx, ownerID)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.False(t, got[1].IsPublished)
}
