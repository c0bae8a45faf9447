// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// Upload carries a multipart file from the delivery layer into a use case
// without the use case knowing about HTTP.
type Upload struct {
	Filename string
	Content  io.Reader
}

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// Avatar is required; CoverImage is optional.
type RegisterInput struct {
	Username   string
	Email      string
	FullName   string
	Password   string
	Avatar     *Upload
	CoverImage *Upload
}

// LoginInput defines the data required for a user to log in. Either
// Username or Email identifies the account.
type LoginInput struct {
	Username string
	Email    string
	Password string
}

// ChangePasswordInput defines the data required to change the password.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// UpdateAccountInput defines the mutable account detail fields.
type UpdateAccountInput struct {
	FullName string
	Email    string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// TokenPairOutput returns a freshly rotated token pair.
type TokenPairOutput struct {
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// RefreshTokens validates the presented refresh token, rotates the
	// stored hash, and issues a new token pair. A token that no longer
	// matches the stored hash is rejected as expired or already used.
	RefreshTokens(ctx context.Context, refreshToken string) (*TokenPairOutput, error)

	// Logout clears the stored refresh token hash, ending the session.
	Logout(ctx context.Context, userID uuid.UUID) error

	// ChangePassword verifies the old password before storing the new
	// hash. The active session survives a password change.
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error

	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateAccountDetails(ctx context.Context, userID uuid.UUID, input *UpdateAccountInput) (*entity.User, error)
	UpdateAvatar(ctx context.Context, userID uuid.UUID, upload *Upload) (*entity.User, error)
	UpdateCoverImage(ctx context.Context, userID uuid.UUID, upload *Upload) (*entity.User, error)

	// GetChannelProfile returns a channel's public profile with subscriber
	// counts. viewerID, when present, fills in IsSubscribed.
	GetChannelProfile(ctx context.Context, username string, viewerID *uuid.UUID) (*entity.ChannelProfile, error)

	GetWatchHistory(ctx context.Context, userID uuid.UUID) ([]*entity.WatchHistoryEntry, error)
}
