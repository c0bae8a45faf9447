package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// CommentListOutput returns a page of comments plus pagination metadata.
type CommentListOutput struct {
	Comments   []*entity.Comment
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// CommentUsecase defines the interface for comment operations.
type CommentUsecase interface {
	// Add creates a comment on an existing video.
	Add(ctx context.Context, userID, videoID uuid.UUID, content string) (*entity.Comment, error)

	// Update modifies a comment owned by the caller.
	Update(ctx context.Context, userID, commentID uuid.UUID, content string) (*entity.Comment, error)

	// Delete removes a comment owned by the caller along with its likes.
	Delete(ctx context.Context, userID, commentID uuid.UUID) error

	// ListByVideo returns a page of a video's comments, newest first.
	ListByVideo(ctx context.Context, videoID uuid.UUID, page, limit int) (*CommentListOutput, error)
}
