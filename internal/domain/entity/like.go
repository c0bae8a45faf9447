package entity

import (
	"time"

	"github.com/google/uuid"
)

// Like records a user liking exactly one target: a video or a comment.
// Exactly one of VideoID and CommentID is set; a partial unique index on
// (liked_by, video_id) and (liked_by, comment_id) guarantees at most one
// like per user per target.
type Like struct {
	ID        uuid.UUID
	LikedByID uuid.UUID
	VideoID   *uuid.UUID
	CommentID *uuid.UUID
	CreatedAt time.Time
}
