package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCommentNotFound is returned when a comment does not exist.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the standard operations for comment persistence.
type CommentRepository interface {
	// Create persists a new comment.
	Create(ctx context.Context, comment *entity.Comment) error

	// FindByID retrieves a comment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// Update modifies a comment's content.
	Update(ctx context.Context, comment *entity.Comment) error

	// Delete removes a comment row.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListByVideo returns a page of comments for a video with their authors
	// joined, newest first, plus the total count.
	ListByVideo(ctx context.Context, videoID uuid.UUID, page, limit int) ([]*entity.Comment, int64, error)

	// DeleteByVideo removes all comments on a video (video delete cascade).
	DeleteByVideo(ctx context.Context, videoID uuid.UUID) error
}
