// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUser is returned when a username or email is already taken.
var ErrDuplicateUser = errors.New("username or email already registered")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their lowercased username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByUsernameOrEmail retrieves a user matching either identifier.
	// Login accepts both, so a single lookup covers the two cases.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user's profile fields (full name, email,
	// avatar, cover image).
	Update(ctx context.Context, user *entity.User) error

	// UpdatePasswordHash replaces the stored password hash.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error

	// StoreRefreshTokenHash overwrites the single active refresh token hash.
	// Logging in on a second device invalidates the first device's token.
	StoreRefreshTokenHash(ctx context.Context, id uuid.UUID, tokenHash string) error

	// RotateRefreshTokenHash atomically swaps oldHash for newHash. It reports
	// false when the stored hash no longer equals oldHash, which means the
	// presented token was already rotated, reused or revoked.
	RotateRefreshTokenHash(ctx context.Context, id uuid.UUID, oldHash, newHash string) (bool, error)

	// ClearRefreshTokenHash removes the stored refresh token hash on logout.
	ClearRefreshTokenHash(ctx context.Context, id uuid.UUID) error
}
