package repository

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// WatchHistoryRepository defines the operations for watch history persistence.
type WatchHistoryRepository interface {
	// Record upserts a history entry for (user, video). Watching a video
	// again refreshes the timestamp instead of adding a duplicate.
	Record(ctx context.Context, userID, videoID uuid.UUID) error

	// ListByUser returns the user's history with videos and their owners
	// joined, most recently watched first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WatchHistoryEntry, error)
}
