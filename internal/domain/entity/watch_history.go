package entity

import (
	"time"

	"github.com/google/uuid"
)

// WatchHistoryEntry records that a user has watched a video. Re-watching
// updates the timestamp instead of inserting a duplicate row.
type WatchHistoryEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	VideoID   uuid.UUID
	WatchedAt time.Time

	// Video is populated when history is read back.
	Video *Video
}
