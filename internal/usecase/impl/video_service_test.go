package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	mockRepo "vidtube/internal/mocks/repository"
	mockSvc "vidtube/internal/mocks/service"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// videoServiceFixtures holds all test dependencies for video service tests.
type videoServiceFixtures struct {
	service          usecase.VideoUsecase
	txManager        *mockRepo.MockTransactionManager
	videoRepo        *mockRepo.MockVideoRepository
	watchHistoryRepo *mockRepo.MockWatchHistoryRepository
	assetStorage     *mockSvc.MockAssetStorage
}

func createTestVideoService(t *testing.T) videoServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	videoRepo := mockRepo.NewMockVideoRepository(t)
	watchHistoryRepo := mockRepo.NewMockWatchHistoryRepository(t)
	assetStorage := mockSvc.NewMockAssetStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewVideoService(VideoServiceParams{
		TxManager:        txManager,
		VideoRepo:        videoRepo,
		WatchHistoryRepo: watchHistoryRepo,
		AssetStorage:     assetStorage,
		Logger:           logger,
	})

	return videoServiceFixtures{
		service:          svc,
		txManager:        txManager,
		videoRepo:        videoRepo,
		watchHistoryRepo: watchHistoryRepo,
		assetStorage:     assetStorage,
	}
}

func hasPrefixMatcher(prefix string) interface{} {
	return mock.MatchedBy(func(name string) bool { return strings.HasPrefix(name, prefix) })
}

func TestVideoService_Publish_Success(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.assetStorage.EXPECT().
		Save(ctx, hasPrefixMatcher("videos/"), mock.Anything).
		Return("https://cdn.example.com/videos/v.mp4", nil)
	fx.assetStorage.EXPECT().
		Save(ctx, hasPrefixMatcher("thumbnails/"), mock.Anything).
		Return("https://cdn.example.com/thumbnails/t.png", nil)

	fx.videoRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Video")).
		Run(func(ctx context.Context, video *entity.Video) {
			video.ID = uuid.New()
		}).
		Return(nil)

	video, err := fx.service.Publish(ctx, ownerID, &usecase.PublishVideoInput{
		Title:       "My Video",
		Description: "First upload",
		Duration:    120.5,
		VideoFile:   newTestUpload("clip.mp4"),
		Thumbnail:   newTestUpload("thumb.png"),
	})

	require.NoError(t, err)
	require.NotNil(t, video)
	assert.Equal(t, ownerID, video.OwnerID)
	assert.Equal(t, "https://cdn.example.com/videos/v.mp4", video.VideoFile)
	assert.Equal(t, "https://cdn.example.com/thumbnails/t.png", video.Thumbnail)
	assert.True(t, video.IsPublished)
}

func TestVideoService_Publish_MissingFiles(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()

	video, err := fx.service.Publish(ctx, uuid.New(), &usecase.PublishVideoInput{
		Title:     "My Video",
		VideoFile: newTestUpload("clip.mp4"),
	})

	assert.Error(t, err)
	assert.Nil(t, video)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingFile))
}

func TestVideoService_GetByID_RecordsViewAndHistory(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	owner := newTestUser()
	video := newTestVideo(owner.ID)
	video.Owner = owner
	viewerID := uuid.New()

	fx.videoRepo.EXPECT().FindByIDWithOwner(ctx, video.ID).Return(video, nil)
	fx.videoRepo.EXPECT().IncrementViews(ctx, video.ID).Return(nil)
	fx.watchHistoryRepo.EXPECT().Record(ctx, viewerID, video.ID).Return(nil)

	got, err := fx.service.GetByID(ctx, video.ID, &viewerID)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(10), got.Views)
	assert.Empty(t, got.Owner.PasswordHash)
	assert.Empty(t, got.Owner.RefreshTokenHash)
}

// Telemetry writes must never fail the read path.
func TestVideoService_GetByID_ViewIncrementFailureTolerated(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	video := newTestVideo(uuid.New())

	fx.videoRepo.EXPECT().FindByIDWithOwner(ctx, video.ID).Return(video, nil)
	fx.videoRepo.EXPECT().IncrementViews(ctx, video.ID).Return(errors.New("connection reset"))

	got, err := fx.service.GetByID(ctx, video.ID, nil)

	require.NoError(t, err)
	assert.Equal(t, int64(9), got.Views)
}

func TestVideoService_GetByID_NotFound(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	videoID := uuid.New()

	fx.videoRepo.EXPECT().FindByIDWithOwner(ctx, videoID).Return(nil, repository.ErrVideoNotFound)

	got, err := fx.service.GetByID(ctx, videoID, nil)

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrVideoNotFound))
}

func TestVideoService_List_ComputesPages(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	query := entity.VideoListQuery{Page: 2, Limit: 10}
	videos := []*entity.Video{newTestVideo(uuid.New()), newTestVideo(uuid.New())}

	fx.videoRepo.EXPECT().List(ctx, query).Return(videos, int64(25), nil)

	output, err := fx.service.List(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, int64(25), output.Total)
	assert.Equal(t, 2, output.Page)
	assert.Equal(t, 3, output.TotalPages)
	assert.Len(t, output.Videos, 2)
}

func TestVideoService_Update_NotOwner(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	video := newTestVideo(uuid.New())
	strangerID := uuid.New()

	fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)

	got, err := fx.service.Update(ctx, strangerID, video.ID, &usecase.UpdateVideoInput{Title: "Hijacked"})

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrNotResourceOwner))
}

func TestVideoService_Update_NotFound(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	videoID := uuid.New()

	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(nil, repository.ErrVideoNotFound)

	got, err := fx.service.Update(ctx, uuid.New(), videoID, &usecase.UpdateVideoInput{Title: "New"})

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrVideoNotFound))
}

func TestVideoService_Update_Success(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	video := newTestVideo(ownerID)

	fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
	fx.videoRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Video")).Return(nil)

	got, err := fx.service.Update(ctx, ownerID, video.ID, &usecase.UpdateVideoInput{
		Title:       "Renamed",
		Description: "Updated description",
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, "Updated description", got.Description)
}

func TestVideoService_Delete_CascadesInTransaction(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	video := newTestVideo(ownerID)

	fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLikeRepo := mockRepo.NewMockLikeRepository(t)
			mockCommentRepo := mockRepo.NewMockCommentRepository(t)
			mockVideoRepo := mockRepo.NewMockVideoRepository(t)

			mockFactory.EXPECT().NewLikeRepository().Return(mockLikeRepo)
			mockFactory.EXPECT().NewCommentRepository().Return(mockCommentRepo)
			mockFactory.EXPECT().NewVideoRepository().Return(mockVideoRepo)

			mockLikeRepo.EXPECT().DeleteForVideoComments(ctx, video.ID).Return(nil)
			mockCommentRepo.EXPECT().DeleteByVideo(ctx, video.ID).Return(nil)
			mockLikeRepo.EXPECT().DeleteAllByVideo(ctx, video.ID).Return(nil)
			mockVideoRepo.EXPECT().Delete(ctx, video.ID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.Delete(ctx, ownerID, video.ID)

	require.NoError(t, err)
}

func TestVideoService_Delete_NotOwner(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	video := newTestVideo(uuid.New())

	fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)

	err := fx.service.Delete(ctx, uuid.New(), video.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotResourceOwner))
}

func TestVideoService_TogglePublishStatus_Flips(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	video := newTestVideo(ownerID)
	video.IsPublished = true

	fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
	fx.videoRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Video")).Return(nil)

	got, err := fx.service.TogglePublishStatus(ctx, ownerID, video.ID)

	require.NoError(t, err)
	assert.False(t, got.IsPublished)
}

func TestVideoService_ListByOwner_IncludesDrafts(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	published := newTestVideo(ownerID)
	draft := newTestVideo(ownerID)
	draft.IsPublished = false

	fx.videoRepo.EXPECT().ListByOwner(ctx, ownerID).Return([]*entity.Video{published, draft}, nil)

	videos, err := fx.service.ListByOwner(ctx, ownerID)

	require.NoError(t, err)
	assert.Len(t, videos, 2)
}

func TestVideoService_IncrementViews_Success(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	video := newTestVideo(uuid.New())

	fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
	fx.videoRepo.EXPECT().IncrementViews(ctx, video.ID).Return(nil)

	err := fx.service.IncrementViews(ctx, video.ID)

	require.NoError(t, err)
}

func TestVideoService_IncrementViews_NotFound(t *testing.T) {
	fx := createTestVideoService(t)

	ctx := context.Background()
	videoID := uuid.New()

	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(nil, repository.ErrVideoNotFound)

	err := fx.service.IncrementViews(ctx, videoID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVideoNotFound))
}
