package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	mockRepo "vidtube/internal/mocks/repository"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type playlistServiceFixtures struct {
	service      usecase.PlaylistUsecase
	playlistRepo *mockRepo.MockPlaylistRepository
	videoRepo    *mockRepo.MockVideoRepository
}

func createTestPlaylistService(t *testing.T) playlistServiceFixtures {
	playlistRepo := mockRepo.NewMockPlaylistRepository(t)
	videoRepo := mockRepo.NewMockVideoRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewPlaylistService(PlaylistServiceParams{
		PlaylistRepo: playlistRepo,
		VideoRepo:    videoRepo,
		Logger:       logger,
	})

	return playlistServiceFixtures{
		service:      svc,
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
	}
}

func newTestPlaylist(ownerID uuid.UUID) *entity.Playlist {
	return &entity.Playlist{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        "Watch later",
		Description: "Saved for the weekend",
	}
}

func TestPlaylistService_Create_Success(t *testing.T) {
	fx := createTestPlaylistService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.playlistRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Playlist")).
		Run(func(ctx context.Context, playlist *entity.Playlist) {
			playlist.ID = uuid.New()
		}).
		Return(nil)

	playlist, err := fx.service.Create(ctx, ownerID, &usecase.PlaylistInput{
		Name:        "Watch later",
		Description: "Saved for the weekend",
	})

	require.NoError(t, err)
	require.NotNil(t, playlist)
	assert.Equal(t, ownerID, playlist.OwnerID)
	assert.Equal(t, "Watch later", playlist.Name)
}

func TestPlaylistService_GetByID_NotFound(t *testing.T) {
	fx := createTestPlaylistService(t)

	ctx := context.Background()
	playlistID := uuid.New()

	fx.playlistRepo.EXPECT().FindByIDWithVideos(ctx, playlistID).Return(nil, repository.ErrPlaylistNotFound)

	playlist, err := fx.service.GetByID(ctx, playlistID)

	assert.Error(t, err)
	assert.Nil(t, playlist)
	assert.True(t, errors.Is(err, domainerrors.ErrPlaylistNotFound))
}

func TestPlaylistService_Update_NotOwner(t *testing.T) {
	fx := createTestPlaylistService(t)

	ctx := context.Background()
	playlist := newTestPlaylist(uuid.New())

	fx.playlistRepo.EXPECT().FindByID(ctx, playlist.ID).Return(playlist, nil)

	got, err := fx.service.Update(ctx, uuid.New(), playlist.ID, &usecase.PlaylistInput{Name: "Hijacked"})

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrNotResourceOwner))
}

func TestPlaylistService_Delete_Success(t *testing.T) {
	fx := createTestPlaylistService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	playlist := newTestPlaylist(ownerID)

	fx.playlistRepo.EXPECT().FindByID(ctx, playlist.ID).Return(playlist, nil)
	fx.playlistRepo.EXPECT().Delete(ctx, playlist.ID).Return(nil)

	err := fx.service.Delete(ctx, ownerID, playlist.ID)

	require.NoError(t, err)
}

func TestPlaylistService_AddVideo_Success(t *testing.T) {
	fx := createTestPlaylistService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	playlist := newTestPlaylist(ownerID)
	video := newTestVideo(uuid.New())

	loaded := newTestPlaylist(ownerID)
	loaded.ID = playlist.ID
	loaded.Videos = []*entity.Video{video}

	fx.playlistRepo.EXPECT().FindByID(ctx, playlist.ID).Return(playlist, nil)
	fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
	fx.playlistRepo.EXPECT().AddVideo(ctx, playlist.ID, video.ID).Return(nil)
	fx.playlistRepo.EXPECT().FindByIDWithVideos(ctx, playlist.ID).Return(loaded, nil)

	got, err := fx.service.AddVideo(ctx, ownerID, playlist.ID, video.ID)

	require.NoError(t, err)
	require.Len(t, got.Videos, 1)
	assert.Equal(t, video.ID, got.Videos[0].ID)
}

// Adding a video that is already in the playlist is a no-op, not an error.
func TestPlaylistService_AddVideo_AlreadyPresent(t *testing.T) {
	fx := createTestPlaylistService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	playlist := newTestPlaylist(ownerID)
	video := newTestVideo(uuid.New())

	loaded := newTestPlaylist(ownerID)
	loaded.ID = playlist.ID
	loaded.Videos = []*entity.Video{video}

	fx.playlistRepo.EXPECT().FindByID(ctx, playlist.ID).Return(playlist, nil)
	fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
	fx.playlistRepo.EXPECT().AddVideo(ctx, playlist.ID, video.ID).Return(repository.ErrDuplicatePlaylistVideo)
	fx.playlistRepo.EXPECT().FindByIDWithVideos(ctx, playlist.ID).Return(loaded, nil)

	got, err := fx.service.AddVideo(ctx, ownerID, playlist.ID, video.ID)

	require.NoError(t, err)
	require.Len(t, got.Videos, 1)
}

func TestPlaylistService_AddVideo_MissingVideo(t *testing.T) {
	fx := createTestPlaylistService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	playlist := newTestPlaylist(ownerID)
	videoID := uuid.New()

	fx.playlistRepo.EXPECT().FindByID(ctx, playlist.ID).Return(playlist, nil)
	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(nil, repository.ErrVideoNotFound)

	got, err := fx.service.AddVideo(ctx, ownerID, playlist.ID, videoID)

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrVideoNotFound))
}

func TestPlaylistService_RemoveVideo_Success(t *testing.T) {
	fx := createTestPlaylistService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	playlist := newTestPlaylist(ownerID)
	videoID := uuid.New()

	emptied := newTestPlaylist(ownerID)
	emptied.ID = playlist.ID

	fx.playlistRepo.EXPECT().FindByID(ctx, playlist.ID).Return(playlist, nil)
	fx.playlistRepo.EXPECT().RemoveVideo(ctx, playlist.ID, videoID).Return(true, nil)
	fx.playlistRepo.EXPECT().FindByIDWithVideos(ctx, playlist.ID).Return(emptied, nil)

	got, err := fx.service.RemoveVideo(ctx, ownerID, playlist.ID, videoID)

	require.NoError(t, err)
	assert.Empty(t, got.Videos)
}

func TestPlaylistService_ListByUser(t *testing.T) {
	fx := createTestPlaylistService(t)

	ctx := context.Background()
	userID := uuid.New()
	playlists := []*entity.Playlist{newTestPlaylist(userID), newTestPlaylist(userID)}

	fx.playlistRepo.EXPECT().ListByOwner(ctx, userID).Return(playlists, nil)

	got, err := fx.service.ListByUser(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
