package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVideoNotFound is returned when a video does not exist.
var ErrVideoNotFound = errors.New("video not found")

// VideoRepository defines the standard operations for video persistence.
type VideoRepository interface {
	// Create persists a new video.
	Create(ctx context.Context, video *entity.Video) error

	// FindByID retrieves a video by its ID, regardless of publish state.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error)

	// FindByIDWithOwner retrieves a video with its owning channel joined.
	FindByIDWithOwner(ctx context.Context, id uuid.UUID) (*entity.Video, error)

	// Update modifies an existing video's mutable fields.
	Update(ctx context.Context, video *entity.Video) error

	// Delete removes a video row. Cascading cleanup of likes and comments
	// is orchestrated by the use case inside one transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns published videos matching the query, plus the total count
	// before pagination.
	List(ctx context.Context, query entity.VideoListQuery) ([]*entity.Video, int64, error)

	// ListByOwner returns all of a channel's videos, drafts included.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Video, error)

	// IncrementViews bumps the view counter by one with a single statement.
	IncrementViews(ctx context.Context, id uuid.UUID) error

	// CountByOwner returns the number of videos a channel has.
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// SumViewsByOwner returns the total views across a channel's videos.
	SumViewsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}
