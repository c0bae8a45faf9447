// Package model defines the GORM models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// RefreshTokenHash holds the SHA-256 digest of the single active refresh
// token; an empty string means the user has no live session.
type UserModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username         string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email            string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName         string    `gorm:"type:varchar(100);not null"`
	Avatar           string    `gorm:"type:text;not null"`
	CoverImage       string    `gorm:"type:text"`
	PasswordHash     string    `gorm:"type:text;not null"`
	RefreshTokenHash string    `gorm:"type:varchar(64)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
