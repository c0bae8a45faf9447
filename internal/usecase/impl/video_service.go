package impl

import (
	"context"
	"log/slog"
	"path"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// videoService implements the VideoUsecase interface.
type videoService struct {
	txManager        repository.TransactionManager
	videoRepo        repository.VideoRepository
	watchHistoryRepo repository.WatchHistoryRepository
	assetStorage     service.AssetStorage
	logger           *slog.Logger
}

// VideoServiceParams holds dependencies for videoService, injected by Fx.
type VideoServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	VideoRepo        repository.VideoRepository
	WatchHistoryRepo repository.WatchHistoryRepository
	AssetStorage     service.AssetStorage
	Logger           *slog.Logger
}

// NewVideoService is the constructor for videoService.
func NewVideoService(params VideoServiceParams) usecase.VideoUsecase {
	return &videoService{
		txManager:        params.TxManager,
		videoRepo:        params.VideoRepo,
		watchHistoryRepo: params.WatchHistoryRepo,
		assetStorage:     params.AssetStorage,
		logger:           params.Logger,
	}
}

func (srv *videoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Publish uploads the media files and creates the video record. New videos
// start published.
func (srv *videoService) Publish(ctx context.Context, ownerID uuid.UUID, input *usecase.PublishVideoInput) (*entity.Video, error) {
	if input.VideoFile == nil || input.Thumbnail == nil {
		return nil, errors.Wrap(domainerrors.ErrMissingFile, "video file and thumbnail are required")
	}

	srv.log(ctx).Info("Publishing video", slog.Any("ownerID", ownerID), slog.String("title", input.Title))

	videoURL, err := srv.saveUpload(ctx, "videos", input.VideoFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload video file")
	}

	thumbnailURL, err := srv.saveUpload(ctx, "thumbnails", input.Thumbnail)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload thumbnail")
	}

	video := &entity.Video{
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		VideoFile:   videoURL,
		Thumbnail:   thumbnailURL,
		Duration:    input.Duration,
		IsPublished: true,
	}

	if err := srv.videoRepo.Create(ctx, video); err != nil {
		return nil, errors.Wrap(err, "failed to create video record")
	}

	srv.log(ctx).Debug("Video published", slog.Any("videoID", video.ID))

	return video, nil
}

// GetByID loads a video with its owner, increments the view counter, and
// records the viewer's watch history when a viewer is present.
func (srv *videoService) GetByID(ctx context.Context, videoID uuid.UUID, viewerID *uuid.UUID) (*entity.Video, error) {
	video, err := srv.videoRepo.FindByIDWithOwner(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVideoNotFound, "failed to load video")
		}

		return nil, errors.Wrap(err, "failed to load video")
	}

	if err := srv.videoRepo.IncrementViews(ctx, videoID); err != nil {
		// A lost view increment is not worth failing the read.
		srv.log(ctx).Warn("Failed to increment views", slog.Any("videoID", videoID), slog.Any("error", err))
	} else {
		video.Views++
	}

	if viewerID != nil {
		if err := srv.watchHistoryRepo.Record(ctx, *viewerID, videoID); err != nil {
			srv.log(ctx).Warn("Failed to record watch history", slog.Any("videoID", videoID), slog.Any("error", err))
		}
	}

	if video.Owner != nil {
		video.Owner = video.Owner.PublicProfile()
	}

	return video, nil
}

// List returns published videos matching the query.
func (srv *videoService) List(ctx context.Context, query entity.VideoListQuery) (*usecase.VideoListOutput, error) {
	videos, total, err := srv.videoRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list videos")
	}

	for _, video := range videos {
		if video.Owner != nil {
			video.Owner = video.Owner.PublicProfile()
		}
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 10
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &usecase.VideoListOutput{
		Videos:     videos,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// loadOwnedVideo loads a video and checks ownership. A missing video maps
// to not found; someone else's video maps to forbidden.
func (srv *videoService) loadOwnedVideo(ctx context.Context, ownerID, videoID uuid.UUID) (*entity.Video, error) {
	video, err := srv.videoRepo.FindByID(ctx, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVideoNotFound, "failed to load video")
		}

		return nil, errors.Wrap(err, "failed to load video")
	}

	if video.OwnerID != ownerID {
		srv.log(ctx).Warn("Ownership check failed", slog.Any("videoID", videoID), slog.Any("callerID", ownerID))

		return nil, errors.Wrap(domainerrors.ErrNotResourceOwner, "video owned by another channel")
	}

	return video, nil
}

// Update modifies a video owned by the caller.
func (srv *videoService) Update(ctx context.Context, ownerID, videoID uuid.UUID, input *usecase.UpdateVideoInput) (*entity.Video, error) {
	video, err := srv.loadOwnedVideo(ctx, ownerID, videoID)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		video.Title = input.Title
	}
	if input.Description != "" {
		video.Description = input.Description
	}
	if input.Thumbnail != nil {
		thumbnailURL, err := srv.saveUpload(ctx, "thumbnails", input.Thumbnail)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upload thumbnail")
		}
		video.Thumbnail = thumbnailURL
	}

	if err := srv.videoRepo.Update(ctx, video); err != nil {
		return nil, errors.Wrap(err, "failed to update video")
	}

	srv.log(ctx).Debug("Video updated", slog.Any("videoID", videoID))

	return video, nil
}

// Delete removes a video owned by the caller together with its comments and
// likes, in one transaction.
func (srv *videoService) Delete(ctx context.Context, ownerID, videoID uuid.UUID) error {
	if _, err := srv.loadOwnedVideo(ctx, ownerID, videoID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		likeRepo := repoFactory.NewLikeRepository()
		commentRepo := repoFactory.NewCommentRepository()
		videoRepo := repoFactory.NewVideoRepository()

		// Likes on the video's comments go first, then the comments, then
		// the video's own likes, then the video.
		if err := likeRepo.DeleteForVideoComments(ctx, videoID); err != nil {
			return errors.Wrap(err, "failed to delete comment likes")
		}
		if err := commentRepo.DeleteByVideo(ctx, videoID); err != nil {
			return errors.Wrap(err, "failed to delete comments")
		}
		if err := likeRepo.DeleteAllByVideo(ctx, videoID); err != nil {
			return errors.Wrap(err, "failed to delete video likes")
		}
		if err := videoRepo.Delete(ctx, videoID); err != nil {
			return errors.Wrap(err, "failed to delete video")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute video delete transaction", slog.Any("videoID", videoID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute video delete transaction")
	}

	srv.log(ctx).Info("Video deleted", slog.Any("videoID", videoID))

	return nil
}

// TogglePublishStatus flips the video's published flag.
func (srv *videoService) TogglePublishStatus(ctx context.Context, ownerID, videoID uuid.UUID) (*entity.Video, error) {
	video, err := srv.loadOwnedVideo(ctx, ownerID, videoID)
	if err != nil {
		return nil, err
	}

	video.IsPublished = !video.IsPublished

	if err := srv.videoRepo.Update(ctx, video); err != nil {
		return nil, errors.Wrap(err, "failed to toggle publish status")
	}

	srv.log(ctx).Debug("Publish status toggled", slog.Any("videoID", videoID), slog.Bool("isPublished", video.IsPublished))

	return video, nil
}

// ListByOwner returns all of the caller's videos, drafts included.
func (srv *videoService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Video, error) {
	videos, err := srv.videoRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owned videos")
	}

	return videos, nil
}

// IncrementViews bumps the view counter for an existing video.
func (srv *videoService) IncrementViews(ctx context.Context, videoID uuid.UUID) error {
	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return errors.Wrap(domainerrors.ErrVideoNotFound, "cannot count view of missing video")
		}

		return errors.Wrap(err, "failed to load video for view count")
	}

	if err := srv.videoRepo.IncrementViews(ctx, videoID); err != nil {
		return errors.Wrap(err, "failed to increment views")
	}

	return nil
}

func (srv *videoService) saveUpload(ctx context.Context, prefix string, upload *usecase.Upload) (string, error) {
	name := prefix + "/" + uuid.New().String() + path.Ext(upload.Filename)

	url, err := srv.assetStorage.Save(ctx, name, upload.Content)
	if err != nil {
		srv.log(ctx).Error("Asset upload failed", slog.String("object", name), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrUploadFailed, "failed to save asset")
	}

	return url, nil
}
