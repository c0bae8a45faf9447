package postgres

import (
	"context"
	"time"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"
	"vidtube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// watchHistoryRepository implements the repository.WatchHistoryRepository interface.
type watchHistoryRepository struct {
	db *gorm.DB
}

// NewWatchHistoryRepository is the constructor for watchHistoryRepository.
func NewWatchHistoryRepository(db *gorm.DB) repository.WatchHistoryRepository {
	return &watchHistoryRepository{
		db: db,
	}
}

// Record upserts a history entry for (user, video). Re-watching refreshes
// the timestamp instead of adding a duplicate row.
func (repo *watchHistoryRepository) Record(ctx context.Context, userID, videoID uuid.UUID) error {
	entry := &model.WatchHistoryModel{
		UserID:    userID,
		VideoID:   videoID,
		WatchedAt: time.Now().UTC(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
			DoUpdates: clause.Assignments(map[string]any{"watched_at": entry.WatchedAt}),
		}).
		Create(entry).Error; err != nil {
		return errors.Wrap(err, "failed to record watch history")
	}

	return nil
}

// ListByUser returns the user's history, most recently watched first.
func (repo *watchHistoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WatchHistoryEntry, error) {
	var entryModels []*model.WatchHistoryModel

	if err := repo.db.WithContext(ctx).
		Preload("Video").
		Preload("Video.Owner").
		Where("user_id = ?", userID).
		Order("watched_at DESC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list watch history")
	}

	entries := make([]*entity.WatchHistoryEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, &entity.WatchHistoryEntry{
			ID:        entryM.ID,
			UserID:    entryM.UserID,
			VideoID:   entryM.VideoID,
			WatchedAt: entryM.WatchedAt,
			Video:     toVideoDomain(entryM.Video),
		})
	}

	return entries, nil
}
