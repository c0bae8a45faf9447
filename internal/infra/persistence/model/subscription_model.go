package model

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionModel mirrors the 'subscriptions' table. The composite unique
// index keeps at most one subscription per (subscriber, channel) pair.
type SubscriptionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SubscriberID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_subscriber_channel"`
	ChannelID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_subscriptions_subscriber_channel;index"`
	CreatedAt    time.Time

	Subscriber *UserModel `gorm:"foreignKey:SubscriberID"`
	Channel    *UserModel `gorm:"foreignKey:ChannelID"`
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
