package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaylistInput defines the data for creating or updating a playlist.
type PlaylistInput struct {
	Name        string
	Description string
}

// PlaylistUsecase defines the interface for playlist operations. Mutations
// are restricted to the playlist's owner.
type PlaylistUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, input *PlaylistInput) (*entity.Playlist, error)

	// GetByID returns a playlist with its videos.
	GetByID(ctx context.Context, playlistID uuid.UUID) (*entity.Playlist, error)

	Update(ctx context.Context, ownerID, playlistID uuid.UUID, input *PlaylistInput) (*entity.Playlist, error)
	Delete(ctx context.Context, ownerID, playlistID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Playlist, error)

	// AddVideo inserts a video into the playlist. Adding a video that is
	// already present is a no-op.
	AddVideo(ctx context.Context, ownerID, playlistID, videoID uuid.UUID) (*entity.Playlist, error)

	// RemoveVideo removes a video from the playlist.
	RemoveVideo(ctx context.Context, ownerID, playlistID, videoID uuid.UUID) (*entity.Playlist, error)
}
