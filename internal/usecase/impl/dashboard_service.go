package impl

import (
	"context"
	"log/slog"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	videoRepo        repository.VideoRepository
	subscriptionRepo repository.SubscriptionRepository
	likeRepo         repository.LikeRepository
	logger           *slog.Logger
}

// DashboardServiceParams holds dependencies for dashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	VideoRepo        repository.VideoRepository
	SubscriptionRepo repository.SubscriptionRepository
	LikeRepo         repository.LikeRepository
	Logger           *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		videoRepo:        params.VideoRepo,
		subscriptionRepo: params.SubscriptionRepo,
		likeRepo:         params.LikeRepo,
		logger:           params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetChannelStats aggregates the dashboard figures for the caller's channel.
// Counts are derived from the source tables rather than kept as denormalized
// counters, so they cannot drift.
func (srv *dashboardService) GetChannelStats(ctx context.Context, ownerID uuid.UUID) (*entity.ChannelStats, error) {
	totalVideos, err := srv.videoRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count channel videos")
	}

	totalViews, err := srv.videoRepo.SumViewsByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum channel views")
	}

	totalSubscribers, err := srv.subscriptionRepo.CountSubscribers(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count channel subscribers")
	}

	totalLikes, err := srv.likeRepo.CountByChannel(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count channel likes")
	}

	srv.log(ctx).Debug("Channel stats assembled", slog.Any("ownerID", ownerID))

	return &entity.ChannelStats{
		TotalVideos:      totalVideos,
		TotalViews:       totalViews,
		TotalSubscribers: totalSubscribers,
		TotalLikes:       totalLikes,
	}, nil
}

// GetChannelVideos returns all of the caller's videos, drafts included.
func (srv *dashboardService) GetChannelVideos(ctx context.Context, ownerID uuid.UUID) ([]*entity.Video, error) {
	videos, err := srv.videoRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list channel videos")
	}

	return videos, nil
}
