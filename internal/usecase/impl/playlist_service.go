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

// playlistService implements the PlaylistUsecase interface.
type playlistService struct {
	playlistRepo repository.PlaylistRepository
	videoRepo    repository.VideoRepository
	logger       *slog.Logger
}

// PlaylistServiceParams holds dependencies for playlistService, injected by Fx.
type PlaylistServiceParams struct {
	fx.In

	PlaylistRepo repository.PlaylistRepository
	VideoRepo    repository.VideoRepository
	Logger       *slog.Logger
}

// NewPlaylistService is the constructor for playlistService.
func NewPlaylistService(params PlaylistServiceParams) usecase.PlaylistUsecase {
	return &playlistService{
		playlistRepo: params.PlaylistRepo,
		videoRepo:    params.VideoRepo,
		logger:       params.Logger,
	}
}

func (srv *playlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create makes a new, empty playlist.
func (srv *playlistService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.PlaylistInput) (*entity.Playlist, error) {
	playlist := &entity.Playlist{
		OwnerID:     ownerID,
		Name:        input.Name,
		Description: input.Description,
	}

	if err := srv.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, errors.Wrap(err, "failed to create playlist")
	}

	srv.log(ctx).Debug("Playlist created", slog.Any("playlistID", playlist.ID))

	return playlist, nil
}

// GetByID returns a playlist with its videos.
func (srv *playlistService) GetByID(ctx context.Context, playlistID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := srv.playlistRepo.FindByIDWithVideos(ctx, playlistID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaylistNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPlaylistNotFound, "failed to load playlist")
		}

		return nil, errors.Wrap(err, "failed to load playlist")
	}

	for _, video := range playlist.Videos {
		if video.Owner != nil {
			video.Owner = video.Owner.PublicProfile()
		}
	}

	return playlist, nil
}

// loadOwnedPlaylist loads a playlist and checks ownership.
func (srv *playlistService) loadOwnedPlaylist(ctx context.Context, ownerID, playlistID uuid.UUID) (*entity.Playlist, error) {
	playlist, err := srv.playlistRepo.FindByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, repository.ErrPlaylistNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPlaylistNotFound, "failed to load playlist")
		}

		return nil, errors.Wrap(err, "failed to load playlist")
	}

	if playlist.OwnerID != ownerID {
		srv.log(ctx).Warn("Ownership check failed", slog.Any("playlistID", playlistID), slog.Any("callerID", ownerID))

		return nil, errors.Wrap(domainerrors.ErrNotResourceOwner, "playlist owned by another user")
	}

	return playlist, nil
}

// Update modifies a playlist owned by the caller.
func (srv *playlistService) Update(ctx context.Context, ownerID, playlistID uuid.UUID, input *usecase.PlaylistInput) (*entity.Playlist, error) {
	playlist, err := srv.loadOwnedPlaylist(ctx, ownerID, playlistID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		playlist.Name = input.Name
	}
	if input.Description != "" {
		playlist.Description = input.Description
	}

	if err := srv.playlistRepo.Update(ctx, playlist); err != nil {
		return nil, errors.Wrap(err, "failed to update playlist")
	}

	srv.log(ctx).Debug("Playlist updated", slog.Any("playlistID", playlistID))

	return playlist, nil
}

// Delete removes a playlist owned by the caller.
func (srv *playlistService) Delete(ctx context.Context, ownerID, playlistID uuid.UUID) error {
	if _, err := srv.loadOwnedPlaylist(ctx, ownerID, playlistID); err != nil {
		return err
	}

	if err := srv.playlistRepo.Delete(ctx, playlistID); err != nil {
		return errors.Wrap(err, "failed to delete playlist")
	}

	srv.log(ctx).Debug("Playlist deleted", slog.Any("playlistID", playlistID))

	return nil
}

// ListByUser returns all playlists owned by a user.
func (srv *playlistService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Playlist, error) {
	playlists, err := srv.playlistRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list playlists")
	}

	return playlists, nil
}

// AddVideo inserts a video into a playlist owned by the caller. Adding a
// video that is already present is a no-op.
func (srv *playlistService) AddVideo(ctx context.Context, ownerID, playlistID, videoID uuid.UUID) (*entity.Playlist, error) {
	if _, err := srv.loadOwnedPlaylist(ctx, ownerID, playlistID); err != nil {
		return nil, err
	}

	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVideoNotFound, "cannot add missing video to playlist")
		}

		return nil, errors.Wrap(err, "failed to load video for playlist add")
	}

	if err := srv.playlistRepo.AddVideo(ctx, playlistID, videoID); err != nil && !errors.Is(err, repository.ErrDuplicatePlaylistVideo) {
		return nil, errors.Wrap(err, "failed to add video to playlist")
	}

	return srv.GetByID(ctx, playlistID)
}

// RemoveVideo removes a video from a playlist owned by the caller.
func (srv *playlistService) RemoveVideo(ctx context.Context, ownerID, playlistID, videoID uuid.UUID) (*entity.Playlist, error) {
	if _, err := srv.loadOwnedPlaylist(ctx, ownerID, playlistID); err != nil {
		return nil, err
	}

	if _, err := srv.playlistRepo.RemoveVideo(ctx, playlistID, videoID); err != nil {
		return nil, errors.Wrap(err, "failed to remove video from playlist")
	}

	return srv.GetByID(ctx, playlistID)
}
