package model

import (
	"time"

	"github.com/google/uuid"
)

// WatchHistoryModel mirrors the 'watch_history' table. The composite unique
// index keeps one row per (user, video); re-watching updates WatchedAt.
type WatchHistoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_watch_history_user_video"`
	VideoID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_watch_history_user_video"`
	WatchedAt time.Time `gorm:"not null;index"`

	Video *VideoModel `gorm:"foreignKey:VideoID"`
}

// TableName explicitly sets the table name for GORM.
func (WatchHistoryModel) TableName() string {
	return "watch_history"
}
