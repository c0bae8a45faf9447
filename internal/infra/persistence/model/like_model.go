package model

import (
	"time"

	"github.com/google/uuid"
)

// LikeModel mirrors the 'likes' table. Exactly one of VideoID and CommentID
// is set. The composite unique indexes back the idempotent toggle: a
// concurrent duplicate insert fails with a unique violation instead of
// producing a second like.
type LikeModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LikedByID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_video;uniqueIndex:idx_likes_user_comment"`
	VideoID   *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_likes_user_video;index"`
	CommentID *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_likes_user_comment;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LikeModel) TableName() string {
	return "likes"
}
