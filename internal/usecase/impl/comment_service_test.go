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

type commentServiceFixtures struct {
	service     usecase.CommentUsecase
	txManager   *mockRepo.MockTransactionManager
	commentRepo *mockRepo.MockCommentRepository
	videoRepo   *mockRepo.MockVideoRepository
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	videoRepo := mockRepo.NewMockVideoRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCommentService(CommentServiceParams{
		TxManager:   txManager,
		CommentRepo: commentRepo,
		VideoRepo:   videoRepo,
		Logger:      logger,
	})

	return commentServiceFixtures{
		service:     svc,
		txManager:   txManager,
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
	}
}

func TestCommentService_Add_Success(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	userID := uuid.New()
	video := newTestVideo(uuid.New())

	fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
	fx.commentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Comment")).
		Run(func(ctx context.Context, comment *entity.Comment) {
			comment.ID = uuid.New()
		}).
		Return(nil)

	comment, err := fx.service.Add(ctx, userID, video.ID, "great video")

	require.NoError(t, err)
	require.NotNil(t, comment)
	assert.Equal(t, userID, comment.OwnerID)
	assert.Equal(t, video.ID, comment.VideoID)
	assert.Equal(t, "great video", comment.Content)
}

func TestCommentService_Add_MissingVideo(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	videoID := uuid.New()

	fx.videoRepo.EXPECT().FindByID(ctx, videoID).Return(nil, repository.ErrVideoNotFound)

	comment, err := fx.service.Add(ctx, uuid.New(), videoID, "great video")

	assert.Error(t, err)
	assert.Nil(t, comment)
	assert.True(t, errors.Is(err, domainerrors.ErrVideoNotFound))
}

func TestCommentService_Update_NotOwner(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	comment := &entity.Comment{ID: uuid.New(), VideoID: uuid.New(), OwnerID: uuid.New(), Content: "original"}

	fx.commentRepo.EXPECT().FindByID(ctx, comment.ID).Return(comment, nil)

	got, err := fx.service.Update(ctx, uuid.New(), comment.ID, "edited")

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrNotResourceOwner))
}

func TestCommentService_Update_NotFound(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	commentID := uuid.New()

	fx.commentRepo.EXPECT().FindByID(ctx, commentID).Return(nil, repository.ErrCommentNotFound)

	got, err := fx.service.Update(ctx, uuid.New(), commentID, "edited")

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrCommentNotFound))
}

func TestCommentService_Update_Success(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	comment := &entity.Comment{ID: uuid.New(), VideoID: uuid.New(), OwnerID: ownerID, Content: "original"}

	fx.commentRepo.EXPECT().FindByID(ctx, comment.ID).Return(comment, nil)
	fx.commentRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Comment")).Return(nil)

	got, err := fx.service.Update(ctx, ownerID, comment.ID, "edited")

	require.NoError(t, err)
	assert.Equal(t, "edited", got.Content)
}

func TestCommentService_Delete_CascadesLikes(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	comment := &entity.Comment{ID: uuid.New(), VideoID: uuid.New(), OwnerID: ownerID, Content: "bye"}

	fx.commentRepo.EXPECT().FindByID(ctx, comment.ID).Return(comment, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLikeRepo := mockRepo.NewMockLikeRepository(t)
			mockCommentRepo := mockRepo.NewMockCommentRepository(t)

			mockFactory.EXPECT().NewLikeRepository().Return(mockLikeRepo)
			mockFactory.EXPECT().NewCommentRepository().Return(mockCommentRepo)

			mockLikeRepo.EXPECT().DeleteAllByComment(ctx, comment.ID).Return(nil)
			mockCommentRepo.EXPECT().Delete(ctx, comment.ID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.Delete(ctx, ownerID, comment.ID)

	require.NoError(t, err)
}

func TestCommentService_ListByVideo_Paginates(t *testing.T) {
	fx := createTestCommentService(t)

	ctx := context.Background()
	video := newTestVideo(uuid.New())
	owner := newTestUser()
	comments := []*entity.Comment{
		{ID: uuid.New(), VideoID: video.ID, OwnerID: owner.ID, Content: "first", Owner: owner},
	}

	fx.videoRepo.EXPECT().FindByID(ctx, video.ID).Return(video, nil)
	fx.commentRepo.EXPECT().ListByVideo(ctx, video.ID, 1, 10).Return(comments, int64(11), nil)

	output, err := fx.service.ListByVideo(ctx, video.ID, 1, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(11), output.Total)
	assert.Equal(t, 2, output.TotalPages)
	require.Len(t, output.Comments, 1)
	assert.Empty(t, output.Comments[0].Owner.PasswordHash)
}
