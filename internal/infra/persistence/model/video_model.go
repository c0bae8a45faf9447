package model

import (
	"time"

	"github.com/google/uuid"
)

// VideoModel mirrors the 'videos' table.
type VideoModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	VideoFile   string    `gorm:"type:text;not null"`
	Thumbnail   string    `gorm:"type:text;not null"`
	Duration    float64   `gorm:"not null;default:0"`
	Views       int64     `gorm:"not null;default:0"`
	IsPublished bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Owner *UserModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (VideoModel) TableName() string {
	return "videos"
}
