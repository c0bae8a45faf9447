package entity

import (
	"time"

	"github.com/google/uuid"
)

// Subscription links a subscriber to a channel (both are users).
// A unique index on (subscriber_id, channel_id) enforces the 0-or-1
// invariant the toggle operation relies on.
type Subscription struct {
	ID           uuid.UUID
	SubscriberID uuid.UUID
	ChannelID    uuid.UUID
	CreatedAt    time.Time

	// Subscriber and Channel are populated on read paths that join users.
	Subscriber *User
	Channel    *User
}
