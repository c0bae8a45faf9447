package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// LikeUsecase defines the interface for like toggle operations. Toggles are
// idempotent per state: liking twice in a row ends in the same state as
// liking once then unliking once then liking once.
type LikeUsecase interface {
	// ToggleVideoLike flips the caller's like on a video and reports the
	// resulting state.
	ToggleVideoLike(ctx context.Context, userID, videoID uuid.UUID) (bool, error)

	// ToggleCommentLike flips the caller's like on a comment.
	ToggleCommentLike(ctx context.Context, userID, commentID uuid.UUID) (bool, error)

	// GetLikedVideos returns the videos the caller has liked, newest like first.
	GetLikedVideos(ctx context.Context, userID uuid.UUID) ([]*entity.Video, error)

	// GetVideoLikeCount returns the number of likes on a video.
	GetVideoLikeCount(ctx context.Context, videoID uuid.UUID) (int64, error)

	// IsVideoLiked reports whether the user currently likes the video.
	IsVideoLiked(ctx context.Context, userID, videoID uuid.UUID) (bool, error)
}
