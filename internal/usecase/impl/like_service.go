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

// likeService implements the LikeUsecase interface.
type likeService struct {
	likeRepo    repository.LikeRepository
	videoRepo   repository.VideoRepository
	commentRepo repository.CommentRepository
	logger      *slog.Logger
}

// LikeServiceParams holds dependencies for likeService, injected by Fx.
type LikeServiceParams struct {
	fx.In

	LikeRepo    repository.LikeRepository
	VideoRepo   repository.VideoRepository
	CommentRepo repository.CommentRepository
	Logger      *slog.Logger
}

// NewLikeService is the constructor for likeService.
func NewLikeService(params LikeServiceParams) usecase.LikeUsecase {
	return &likeService{
		likeRepo:    params.LikeRepo,
		videoRepo:   params.VideoRepo,
		commentRepo: params.CommentRepo,
		logger:      params.Logger,
	}
}

func (srv *likeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ToggleVideoLike flips the caller's like on a video. Delete-first: when a
// like existed it is removed, otherwise one is inserted. A concurrent
// duplicate insert collapses into the liked state via the unique index.
func (srv *likeService) ToggleVideoLike(ctx context.Context, userID, videoID uuid.UUID) (bool, error) {
	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return false, errors.Wrap(domainerrors.ErrVideoNotFound, "cannot like missing video")
		}

		return false, errors.Wrap(err, "failed to load video for like toggle")
	}

	deleted, err := srv.likeRepo.DeleteByVideo(ctx, userID, videoID)
	if err != nil {
		return false, errors.Wrap(err, "failed to remove like")
	}
	if deleted {
		srv.log(ctx).Debug("Video unliked", slog.Any("userID", userID), slog.Any("videoID", videoID))

		return false, nil
	}

	like := &entity.Like{LikedByID: userID, VideoID: &videoID}
	if err := srv.likeRepo.Create(ctx, like); err != nil {
		if errors.Is(err, repository.ErrDuplicateLike) {
			// Lost a race against another toggle; the like already exists.
			return true, nil
		}

		return false, errors.Wrap(err, "failed to create like")
	}

	srv.log(ctx).Debug("Video liked", slog.Any("userID", userID), slog.Any("videoID", videoID))

	return true, nil
}

// ToggleCommentLike flips the caller's like on a comment.
func (srv *likeService) ToggleCommentLike(ctx context.Context, userID, commentID uuid.UUID) (bool, error) {
	if _, err := srv.commentRepo.FindByID(ctx, commentID); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return false, errors.Wrap(domainerrors.ErrCommentNotFound, "cannot like missing comment")
		}

		return false, errors.Wrap(err, "failed to load comment for like toggle")
	}

	deleted, err := srv.likeRepo.DeleteByComment(ctx, userID, commentID)
	if err != nil {
		return false, errors.Wrap(err, "failed to remove like")
	}
	if deleted {
		srv.log(ctx).Debug("Comment unliked", slog.Any("userID", userID), slog.Any("commentID", commentID))

		return false, nil
	}

	like := &entity.Like{LikedByID: userID, CommentID: &commentID}
	if err := srv.likeRepo.Create(ctx, like); err != nil {
		if errors.Is(err, repository.ErrDuplicateLike) {
			return true, nil
		}

		return false, errors.Wrap(err, "failed to create like")
	}

	srv.log(ctx).Debug("Comment liked", slog.Any("userID", userID), slog.Any("commentID", commentID))

	return true, nil
}

// GetVideoLikeCount returns the number of likes on a video.
func (srv *likeService) GetVideoLikeCount(ctx context.Context, videoID uuid.UUID) (int64, error) {
	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return 0, errors.Wrap(domainerrors.ErrVideoNotFound, "cannot count likes of missing video")
		}

		return 0, errors.Wrap(err, "failed to load video for like count")
	}

	count, err := srv.likeRepo.CountByVideo(ctx, videoID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count likes")
	}

	return count, nil
}

// IsVideoLiked reports whether the user currently likes the video.
func (srv *likeService) IsVideoLiked(ctx context.Context, userID, videoID uuid.UUID) (bool, error) {
	liked, err := srv.likeRepo.ExistsByVideo(ctx, userID, videoID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check like state")
	}

	return liked, nil
}

// GetLikedVideos returns the videos the caller has liked, newest like first.
func (srv *likeService) GetLikedVideos(ctx context.Context, userID uuid.UUID) ([]*entity.Video, error) {
	videos, err := srv.likeRepo.ListLikedVideos(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list liked videos")
	}

	for _, video := range videos {
		if video.Owner != nil {
			video.Owner = video.Owner.PublicProfile()
		}
	}

	return videos, nil
}
