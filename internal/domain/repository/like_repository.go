package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDuplicateLike is returned when the same user likes the same target twice.
// The toggle use case treats it as "already liked", not a failure.
var ErrDuplicateLike = errors.New("like already exists")

// LikeRepository defines the standard operations for like persistence.
type LikeRepository interface {
	// Create persists a new like. Returns ErrDuplicateLike when the unique
	// (user, target) constraint is violated by a concurrent toggle.
	Create(ctx context.Context, like *entity.Like) error

	// DeleteByVideo removes the caller's like on a video. It reports whether
	// a row was actually deleted, which the toggle uses to decide the new state.
	DeleteByVideo(ctx context.Context, userID, videoID uuid.UUID) (bool, error)

	// DeleteByComment removes the caller's like on a comment.
	DeleteByComment(ctx context.Context, userID, commentID uuid.UUID) (bool, error)

	// CountByVideo returns the number of likes on a video.
	CountByVideo(ctx context.Context, videoID uuid.UUID) (int64, error)

	// ExistsByVideo reports whether the user currently likes the video.
	ExistsByVideo(ctx context.Context, userID, videoID uuid.UUID) (bool, error)

	// ListLikedVideos returns the videos a user has liked, newest like first.
	ListLikedVideos(ctx context.Context, userID uuid.UUID) ([]*entity.Video, error)

	// DeleteAllByVideo removes every like on a video (video delete cascade).
	DeleteAllByVideo(ctx context.Context, videoID uuid.UUID) error

	// DeleteAllByComment removes every like on a comment (comment delete cascade).
	DeleteAllByComment(ctx context.Context, commentID uuid.UUID) error

	// DeleteForVideoComments removes likes on all comments belonging to a
	// video (video delete cascade).
	DeleteForVideoComments(ctx context.Context, videoID uuid.UUID) error

	// CountByChannel returns the total likes across all videos owned by the
	// given channel. Used for dashboard statistics.
	CountByChannel(ctx context.Context, ownerID uuid.UUID) (int64, error)
}
