package impl

import (
	"strings"

	"vidtube/internal/domain/entity"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
)

// newTestUser returns a persisted-looking account with credential material set,
// so tests can verify it never leaks through public profiles.
func newTestUser() *entity.User {
	return &entity.User{
		ID:               uuid.New(),
		Username:         "testchannel",
		Email:            "test@example.com",
		FullName:         "Test Channel",
		Avatar:           "https://cdn.example.com/avatars/a.png",
		PasswordHash:     "bcrypt-hash",
		RefreshTokenHash: "stored-refresh-hash",
	}
}

func newTestUpload(filename string) *usecase.Upload {
	return &usecase.Upload{
		Filename: filename,
		Content:  strings.NewReader("file-bytes"),
	}
}

func newTestVideo(ownerID uuid.UUID) *entity.Video {
	return &entity.Video{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       "Test Video",
		Description: "A video about testing",
		VideoFile:   "https://cdn.example.com/videos/v.mp4",
		Thumbnail:   "https://cdn.example.com/thumbnails/t.png",
		Duration:    42.5,
		Views:       9,
		IsPublished: true,
	}
}
