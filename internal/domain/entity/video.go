package entity

import (
	"time"

	"github.com/google/uuid"
)

// Video represents a published or draft video belonging to a channel.
type Video struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	VideoFile   string  // Public URL of the video object.
	Thumbnail   string  // Public URL of the thumbnail object.
	Duration    float64 // Duration in seconds.
	Views       int64
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Owner is populated on read paths that join the owning channel.
	Owner *User
}

// VideoListQuery captures search, sorting and pagination for video listings.
type VideoListQuery struct {
	Search   string // Case-insensitive match against the title. Empty matches all.
	SortBy   string // Column to sort on; implementations whitelist the values.
	SortType string // "asc" or "desc".
	Page     int
	Limit    int
}

// ChannelStats aggregates dashboard figures for a single channel.
type ChannelStats struct {
	TotalVideos      int64
	TotalViews       int64
	TotalSubscribers int64
	TotalLikes       int64 // Likes across all of the channel's videos.
}
