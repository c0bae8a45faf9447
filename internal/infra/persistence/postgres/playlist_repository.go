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

// playlistRepository implements the repository.PlaylistRepository interface.
type playlistRepository struct {
	db *gorm.DB
}

// NewPlaylistRepository is the constructor for playlistRepository.
func NewPlaylistRepository(db *gorm.DB) repository.PlaylistRepository {
	return &playlistRepository{
		db: db,
	}
}

// Create persists a new playlist.
func (repo *playlistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	playlistM := fromPlaylistDomain(playlist)

	if err := repo.db.WithContext(ctx).Create(playlistM).Error; err != nil {
		return errors.Wrap(err, "failed to create playlist")
	}

	playlist.ID = playlistM.ID
	playlist.CreatedAt = playlistM.CreatedAt
	playlist.UpdatedAt = playlistM.UpdatedAt

	return nil
}

// FindByID retrieves a playlist without its videos.
func (repo *playlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Playlist, error) {
	var playlistM model.PlaylistModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&playlistM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaylistNotFound
		}

		return nil, errors.Wrap(err, "failed to find playlist by ID")
	}

	return toPlaylistDomain(&playlistM), nil
}

// FindByIDWithVideos retrieves a playlist together with its videos in
// insertion order.
func (repo *playlistRepository) FindByIDWithVideos(ctx context.Context, id uuid.UUID) (*entity.Playlist, error) {
	playlist, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var memberships []*model.PlaylistVideoModel
	if err := repo.db.WithContext(ctx).
		Preload("Video").
		Preload("Video.Owner").
		Where("playlist_id = ?", id).
		Order("created_at ASC").
		Find(&memberships).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load playlist videos")
	}

	videos := make([]*entity.Video, 0, len(memberships))
	for _, membership := range memberships {
		if membership.Video != nil {
			videos = append(videos, toVideoDomain(membership.Video))
		}
	}
	playlist.Videos = videos

	return playlist, nil
}

// Update modifies a playlist's name and description.
func (repo *playlistRepository) Update(ctx context.Context, playlist *entity.Playlist) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlaylistModel{}).
		Where("id = ?", playlist.ID).
		Updates(map[string]any{
			"name":        playlist.Name,
			"description": playlist.Description,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update playlist")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlaylistNotFound
	}

	return nil
}

// Delete removes a playlist and its membership rows.
func (repo *playlistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("playlist_id = ?", id).
		Delete(&model.PlaylistVideoModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete playlist memberships")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PlaylistModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete playlist")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlaylistNotFound
	}

	return nil
}

// ListByOwner returns all playlists owned by a user.
func (repo *playlistRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Playlist, error) {
	var playlistModels []*model.PlaylistModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&playlistModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list playlists by owner")
	}

	playlists := make([]*entity.Playlist, 0, len(playlistModels))
	for _, playlistM := range playlistModels {
		playlists = append(playlists, toPlaylistDomain(playlistM))
	}

	return playlists, nil
}

// AddVideo inserts a membership row. Duplicate adds surface as
// ErrDuplicatePlaylistVideo so the caller can treat them as no-ops.
func (repo *playlistRepository) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	membership := &model.PlaylistVideoModel{
		PlaylistID: playlistID,
		VideoID:    videoID,
	}

	if err := repo.db.WithContext(ctx).Create(membership).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePlaylistVideo
		}

		return errors.Wrap(err, "failed to add video to playlist")
	}

	return nil
}

// RemoveVideo deletes a membership row, reporting whether one existed.
func (repo *playlistRepository) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideoModel{})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to remove video from playlist")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

// toPlaylistDomain converts a GORM PlaylistModel to a domain Playlist entity.
func toPlaylistDomain(data *model.PlaylistModel) *entity.Playlist {
	if data == nil {
		return nil
	}

	return &entity.Playlist{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromPlaylistDomain converts a domain Playlist entity to a GORM PlaylistModel.
func fromPlaylistDomain(data *entity.Playlist) *model.PlaylistModel {
	if data == nil {
		return nil
	}

	return &model.PlaylistModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
