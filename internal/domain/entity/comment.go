package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a user comment attached to a video.
type Comment struct {
	ID        uuid.UUID
	VideoID   uuid.UUID
	OwnerID   uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Owner is populated on read paths that join the comment author.
	Owner *User
}
