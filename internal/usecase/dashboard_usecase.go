package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// DashboardUsecase defines the interface for channel dashboard reads.
type DashboardUsecase interface {
	// GetChannelStats aggregates video, view, subscriber, and like totals
	// for the caller's channel.
	GetChannelStats(ctx context.Context, ownerID uuid.UUID) (*entity.ChannelStats, error)

	// GetChannelVideos returns all of the caller's videos, drafts included.
	GetChannelVideos(ctx context.Context, ownerID uuid.UUID) ([]*entity.Video, error)
}
