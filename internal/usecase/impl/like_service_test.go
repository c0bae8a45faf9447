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

type likeServiceFixtures struct {
	service     usecase.LikeUsecase
	likeRepo    *mockRepo.MockLikeRepository
	videoRepo   *mockRepo.MockVideoRepository
	commentRepo *mockRepo.MockCommentRepository
}

func createTestLikeService(t *testing.T) likeServiceFixtures {
	likeRepo := mockRepo.NewMockLikeRepository(t)
	videoRepo := mockRepo.NewMockVideoRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewLikeService(LikeServiceParams{
		LikeRepo:    likeRepo,
		VideoRepo:   videoRepo,
		CommentRepo: commentRepo,
		Logger:      logger,
	})

	return likeServiceFixtures{
		service:     svc,
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
	}
}

func TestLikeService_ToggleVideoLike_Like(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	userID := uuid.New()
	video := newTestVideo(uuid.New())

	fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
	fx.likeRepo.EXPECT().DeleteByVideo(ctx, userID, video.ID).Return(false, nil)
	fx.likeRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(like *entity.Like) bool {
			return like.LikedByID == userID && like.VideoID != nil && *like.VideoID == video.ID && like.CommentID == nil
		})).
		Return(nil)

	liked, err := fx.service.ToggleVideoLike(ctx, userID, video.ID)

	require.NoError(t, err)
	assert.True(t, liked)
}

func TestLikeService_ToggleVideoLike_Unlike(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	userID := uuid.New()
	video := newTestVideo(uuid.New())

	fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
	fx.likeRepo.EXPECT().DeleteByVideo(ctx, userID, video.ID).Return(true, nil)

	liked, err := fx.service.ToggleVideoLike(ctx, userID, video.ID)

	require.NoError(t, err)
	assert.False(t, liked)
}

// Losing the insert race against another toggle means the like exists; the
// caller still ends up in the liked state.
func TestLikeService_ToggleVideoLike_ConcurrentDuplicate(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	userID := uuid.New()
	video := newTestVideo(uuid.New())

	fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
	fx.likeRepo.EXPECT().DeleteByVideo(ctx, userID, video.ID).Return(false, nil)
	fx.likeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Like")).
		Return(repository.ErrDuplicateLike)

	liked, err := fx.service.ToggleVideoLike(ctx, userID, video.ID)

	require.NoError(t, err)
	assert.True(t, liked)
}

func TestLikeService_ToggleVideoLike_MissingVideo(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	videoID := uuid.New()

	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(nil, repository.ErrVideoNotFound)

	liked, err := fx.service.ToggleVideoLike(ctx, uuid.New(), videoID)

	assert.Error(t, err)
	assert.False(t, liked)
	assert.True(t, errors.Is(err, domainerrors.ErrVideoNotFound))
}

func TestLikeService_ToggleCommentLike_Like(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	userID := uuid.New()
	commentID := uuid.New()

	fx.commentRepo.EXPECT().
		FindByID(ctx, commentID).
		Return(&entity.Comment{ID: commentID, OwnerID: uuid.New(), Content: "nice"}, nil)
	fx.likeRepo.EXPECT().DeleteByComment(ctx, userID, commentID).Return(false, nil)
	fx.likeRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(like *entity.Like) bool {
			return like.LikedByID == userID && like.CommentID != nil && *like.CommentID == commentID && like.VideoID == nil
		})).
		Return(nil)

	liked, err := fx.service.ToggleCommentLike(ctx, userID, commentID)

	require.NoError(t, err)
	assert.True(t, liked)
}

func TestLikeService_ToggleCommentLike_MissingComment(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	commentID := uuid.New()

	fx.commentRepo.EXPECT().FindByID(ctx, commentID).Return(nil, repository.ErrCommentNotFound)

	liked, err := fx.service.ToggleCommentLike(ctx, uuid.New(), commentID)

	assert.Error(t, err)
	assert.False(t, liked)
	assert.True(t, errors.Is(err, domainerrors.ErrCommentNotFound))
}

func TestLikeService_GetVideoLikeCount_Success(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	video := newTestVideo(uuid.New())

	fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
	fx.likeRepo.EXPECT().CountByVideo(ctx, video.ID).Return(int64(42), nil)

	count, err := fx.service.GetVideoLikeCount(ctx, video.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}

func TestLikeService_GetVideoLikeCount_MissingVideo(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	videoID := uuid.New()

	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(nil, repository.ErrVideoNotFound)

	_, err := fx.service.GetVideoLikeCount(ctx, videoID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVideoNotFound))
}

func TestLikeService_IsVideoLiked(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	userID := uuid.New()
	videoID := uuid.New()

	fx.likeRepo.EXPECT().ExistsByVideo(ctx, userID, videoID).Return(true, nil)

	liked, err := fx.service.IsVideoLiked(ctx, userID, videoID)

	require.NoError(t, err)
	assert.True(t, liked)
}

func TestLikeService_GetLikedVideos_StripsCredentials(t *testing.T) {
	fx := createTestLikeService(t)

	ctx := context.Background()
	userID := uuid.New()
	owner := newTestUser()
	video := newTestVideo(owner.ID)
	video.Owner = owner

	fx.likeRepo.EXPECT().ListLikedVideos(ctx, userID).Return([]*entity.Video{video}, nil)

	videos, err := fx.service.GetLikedVideos(ctx, userID)

	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Empty(t, videos[0].Owner.PasswordHash)
	assert.Empty(t, videos[0].Owner.RefreshTokenHash)
}
