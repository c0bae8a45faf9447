package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPlaylistNotFound is returned when a playlist does not exist.
var ErrPlaylistNotFound = errors.New("playlist not found")

// ErrDuplicatePlaylistVideo is returned when a video is already in the playlist.
var ErrDuplicatePlaylistVideo = errors.New("video already in playlist")

// PlaylistRepository defines the standard operations for playlist persistence.
type PlaylistRepository interface {
	// Create persists a new playlist.
	Create(ctx context.Context, playlist *entity.Playlist) error

	// FindByID retrieves a playlist without its videos.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error)

	// FindByIDWithVideos retrieves a playlist with its videos joined.
	FindByIDWithVideos(ctx context.Context, id uuid.UUID) (*entity.Playlist, error)

	// Update modifies a playlist's name and description.
	Update(ctx context.Context, playlist *entity.Playlist) error

	// Delete removes a playlist and its membership rows.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByOwner returns all playlists owned by a user.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error)

	// AddVideo inserts a membership row. Returns ErrDuplicatePlaylistVideo
	// when the video is already present.
	AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error

	// RemoveVideo deletes a membership row, reporting whether one existed.
	RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error)
}
