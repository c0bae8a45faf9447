package entity

import (
	"time"

	"github.com/google/uuid"
)

// Playlist is an ordered, user-owned collection of videos.
type Playlist struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Videos is populated when the playlist is loaded with its contents.
	Videos []*Video
}
