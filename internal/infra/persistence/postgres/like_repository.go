package postgres

import (
	"context"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"
	"vidtube/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// likeRepository implements the repository.LikeRepository interface.
type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository is the constructor for likeRepository.
func NewLikeRepository(db *gorm.DB) repository.LikeRepository {
	return &likeRepository{
		db: db,
	}
}

// Create persists a new like. A unique violation from a concurrent toggle
// surfaces as ErrDuplicateLike so the caller can treat it as already-liked.
func (repo *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	likeM := fromLikeDomain(like)

	if err := repo.db.WithContext(ctx).Create(likeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLike
		}

		return errors.Wrap(err, "failed to create like")
	}

	like.ID = likeM.ID
	like.CreatedAt = likeM.CreatedAt

	return nil
}

// DeleteByVideo removes the user's like on a video, reporting whether a row existed.
func (repo *likeRepository) DeleteByVideo(ctx context.Context, userID, videoID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("liked_by_id = ? AND video_id = ?", userID, videoID).
		Delete(&model.LikeModel{})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete like by video")
	}

	return result.RowsAffected > 0, nil
}

// DeleteByComment removes the user's like on a comment, reporting whether a row existed.
func (repo *likeRepository) DeleteByComment(ctx context.Context, userID, commentID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("liked_by_id = ? AND comment_id = ?", userID, commentID).
		Delete(&model.LikeModel{})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete like by comment")
	}

	return result.RowsAffected > 0, nil
}

// CountByVideo returns the number of likes on a video.
func (repo *likeRepository) CountByVideo(ctx context.Context, videoID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("video_id = ?", videoID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count likes by video")
	}

	return count, nil
}

// ExistsByVideo reports whether the user currently likes the video.
func (repo *likeRepository) ExistsByVideo(ctx context.Context, userID, videoID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Where("liked_by_id = ? AND video_id = ?", userID, videoID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check like existence")
	}

	return count > 0, nil
}

// ListLikedVideos returns the videos a user has liked, newest like first.
func (repo *likeRepository) ListLikedVideos(ctx context.Context, userID uuid.UUID) ([]*entity.Video, error) {
	var videoModels []*model.VideoModel

	if err := repo.db.WithContext(ctx).
		Model(&model.VideoModel{}).
		Joins("JOIN likes ON likes.video_id = videos.id").
		Where("likes.liked_by_id = ?", userID).
		Order("likes.created_at DESC").
		Preload("Owner").
		Find(&videoModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list liked videos")
	}

	videos := make([]*entity.Video, 0, len(videoModels))
	for _, videoM := range videoModels {
		videos = append(videos, toVideoDomain(videoM))
	}

	return videos, nil
}

// DeleteAllByVideo removes every like on a video.
func (repo *likeRepository) DeleteAllByVideo(ctx context.Context, videoID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Delete(&model.LikeModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete likes by video")
	}

	return nil
}

// DeleteAllByComment removes every like on a comment.
func (repo *likeRepository) DeleteAllByComment(ctx context.Context, commentID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("comment_id = ?", commentID).
		Delete(&model.LikeModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete likes by comment")
	}

	return nil
}

// DeleteForVideoComments removes likes on all comments belonging to a video.
func (repo *likeRepository) DeleteForVideoComments(ctx context.Context, videoID uuid.UUID) error {
	subQuery := repo.db.
		Model(&model.CommentModel{}).
		Select("id").
		Where("video_id = ?", videoID)

	if err := repo.db.WithContext(ctx).
		Where("comment_id IN (?)", subQuery).
		Delete(&model.LikeModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete likes for video comments")
	}

	return nil
}

// CountByChannel returns the total likes across all videos owned by the channel.
func (repo *likeRepository) CountByChannel(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LikeModel{}).
		Joins("JOIN videos ON videos.id = likes.video_id").
		Where("videos.owner_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count likes by channel")
	}

	return count, nil
}

// --- Mapper Functions ---

// fromLikeDomain converts a domain Like entity to a GORM LikeModel.
func fromLikeDomain(data *entity.Like) *model.LikeModel {
	if data == nil {
		return nil
	}

	return &model.LikeModel{
		ID:        data.ID,
		LikedByID: data.LikedByID,
		VideoID:   data.VideoID,
		CommentID: data.CommentID,
		CreatedAt: data.CreatedAt,
	}
}
