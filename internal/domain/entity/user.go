// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity of the platform, representing an account that is
// both a viewer and a channel. PasswordHash and RefreshTokenHash are
// persistence concerns and must never be serialized in API responses.
type User struct {
	ID               uuid.UUID  // The unique identifier for the user.
	Username         string     // Lowercased unique handle, also the channel name.
	Email            string     // The user's unique email, usable as a login identifier.
	FullName         string     // The user's display name.
	Avatar           string     // Public URL of the avatar image.
	CoverImage       string     // Public URL of the channel cover image. Optional.
	PasswordHash     string     // bcrypt hash of the user's password.
	RefreshTokenHash string     // SHA-256 hash of the single active refresh token. Empty when logged out.
	CreatedAt        time.Time  // Timestamp of account creation.
	UpdatedAt        time.Time  // Timestamp of the last modification.
}

// PublicProfile returns a copy of the user with credential material removed.
// Handlers serialize this instead of the raw entity.
func (u *User) PublicProfile() *User {
	if u == nil {
		return nil
	}

	clone := *u
	clone.PasswordHash = ""
	clone.RefreshTokenHash = ""

	return &clone
}

// ChannelProfile is a read model combining a user's public identity with
// subscription aggregates for the channel page.
type ChannelProfile struct {
	User                      *User
	SubscribersCount          int64
	ChannelsSubscribedToCount int64
	IsSubscribed              bool // Whether the requesting user subscribes to this channel.
}
