package usecase

import (
	"context"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// PublishVideoInput defines the data required to publish a new video.
type PublishVideoInput struct {
	Title       string
	Description string
	Duration    float64
	VideoFile   *Upload
	Thumbnail   *Upload
}

// UpdateVideoInput defines the mutable video fields. Thumbnail is optional.
type UpdateVideoInput struct {
	Title       string
	Description string
	Thumbnail   *Upload
}

// --- Output DTOs ---

// VideoListOutput returns a page of videos plus pagination metadata.
type VideoListOutput struct {
	Videos     []*entity.Video
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// VideoUsecase defines the interface for video catalog operations.
type VideoUsecase interface {
	// Publish uploads the media files and creates the video record.
	Publish(ctx context.Context, ownerID uuid.UUID, input *PublishVideoInput) (*entity.Video, error)

	// GetByID loads a video with its owner, increments the view counter,
	// and records the viewer's watch history when a viewer is present.
	GetByID(ctx context.Context, videoID uuid.UUID, viewerID *uuid.UUID) (*entity.Video, error)

	// List returns published videos matching the query.
	List(ctx context.Context, query entity.VideoListQuery) (*VideoListOutput, error)

	// Update modifies a video owned by the caller. A video owned by someone
	// else is rejected as forbidden, a missing one as not found.
	Update(ctx context.Context, ownerID, videoID uuid.UUID, input *UpdateVideoInput) (*entity.Video, error)

	// Delete removes a video owned by the caller together with its
	// comments and likes.
	Delete(ctx context.Context, ownerID, videoID uuid.UUID) error

	// TogglePublishStatus flips the video's published flag.
	TogglePublishStatus(ctx context.Context, ownerID, videoID uuid.UUID) (*entity.Video, error)

	// ListByOwner returns all of the caller's videos, drafts included.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Video, error)

	// IncrementViews bumps the view counter without loading the video body.
	IncrementViews(ctx context.Context, videoID uuid.UUID) error
}
