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

// commentService implements the CommentUsecase interface.
type commentService struct {
	txManager   repository.TransactionManager
	commentRepo repository.CommentRepository
	videoRepo   repository.VideoRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for commentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CommentRepo repository.CommentRepository
	VideoRepo   repository.VideoRepository
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		txManager:   params.TxManager,
		commentRepo: params.CommentRepo,
		videoRepo:   params.VideoRepo,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add creates a comment on an existing video.
func (srv *commentService) Add(ctx context.Context, userID, videoID uuid.UUID, content string) (*entity.Comment, error) {
	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVideoNotFound, "cannot comment on missing video")
		}

		return nil, errors.Wrap(err, "failed to load video for comment")
	}

	comment := &entity.Comment{
		VideoID: videoID,
		OwnerID: userID,
		Content: content,
	}

	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	srv.log(ctx).Debug("Comment added", slog.Any("commentID", comment.ID), slog.Any("videoID", videoID))

	return comment, nil
}

// loadOwnedComment loads a comment and checks ownership.
func (srv *commentService) loadOwnedComment(ctx context.Context, userID, commentID uuid.UUID) (*entity.Comment, error) {
	comment, err := srv.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCommentNotFound, "failed to load comment")
		}

		return nil, errors.Wrap(err, "failed to load comment")
	}

	if comment.OwnerID != userID {
		srv.log(ctx).Warn("Ownership check failed", slog.Any("commentID", commentID), slog.Any("callerID", userID))

		return nil, errors.Wrap(domainerrors.ErrNotResourceOwner, "comment owned by another user")
	}

	return comment, nil
}

// Update modifies a comment owned by the caller.
func (srv *commentService) Update(ctx context.Context, userID, commentID uuid.UUID, content string) (*entity.Comment, error) {
	comment, err := srv.loadOwnedComment(ctx, userID, commentID)
	if err != nil {
		return nil, err
	}

	comment.Content = content

	if err := srv.commentRepo.Update(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to update comment")
	}

	srv.log(ctx).Debug("Comment updated", slog.Any("commentID", commentID))

	return comment, nil
}

// Delete removes a comment owned by the caller along with its likes.
func (srv *commentService) Delete(ctx context.Context, userID, commentID uuid.UUID) error {
	if _, err := srv.loadOwnedComment(ctx, userID, commentID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewLikeRepository().DeleteAllByComment(ctx, commentID); err != nil {
			return errors.Wrap(err, "failed to delete comment likes")
		}
		if err := repoFactory.NewCommentRepository().Delete(ctx, commentID); err != nil {
			return errors.Wrap(err, "failed to delete comment")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute comment delete transaction", slog.Any("commentID", commentID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute comment delete transaction")
	}

	srv.log(ctx).Debug("Comment deleted", slog.Any("commentID", commentID))

	return nil
}

// ListByVideo returns a page of a video's comments, newest first.
func (srv *commentService) ListByVideo(ctx context.Context, videoID uuid.UUID, page, limit int) (*usecase.CommentListOutput, error) {
	if _, err := srv.videoRepo.FindByID(ctx, videoID); err != nil {
		if errors.Is(err, repository.ErrVideoNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVideoNotFound, "cannot list comments of missing video")
		}

		return nil, errors.Wrap(err, "failed to load video for comment listing")
	}

	comments, total, err := srv.commentRepo.ListByVideo(ctx, videoID, page, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	for _, comment := range comments {
		if comment.Owner != nil {
			comment.Owner = comment.Owner.PublicProfile()
		}
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	return &usecase.CommentListOutput{
		Comments:   comments,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}
