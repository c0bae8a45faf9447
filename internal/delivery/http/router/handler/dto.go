// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"vidtube/internal/domain/entity"

	"github.com/google/uuid"
)

// The wire types below decouple JSON field naming from the domain entities.
// Credential fields never appear here.

type userResponse struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	Avatar     string    `json:"avatar"`
	CoverImage string    `json:"coverImage,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toUserResponse(user *entity.User) *userResponse {
	if user == nil {
		return nil
	}

	return &userResponse{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		FullName:   user.FullName,
		Avatar:     user.Avatar,
		CoverImage: user.CoverImage,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

type channelProfileResponse struct {
	ID                        uuid.UUID `json:"id"`
	Username                  string    `json:"username"`
	Email                     string    `json:"email"`
	FullName                  string    `json:"fullName"`
	Avatar                    string    `json:"avatar"`
	CoverImage                string    `json:"coverImage,omitempty"`
	SubscribersCount          int64     `json:"subscribersCount"`
	ChannelsSubscribedToCount int64     `json:"channelsSubscribedToCount"`
	IsSubscribed              bool      `json:"isSubscribed"`
}

func toChannelProfileResponse(profile *entity.ChannelProfile) *channelProfileResponse {
	if profile == nil || profile.User == nil {
		return nil
	}

	return &channelProfileResponse{
		ID:                        profile.User.ID,
		Username:                  profile.User.Username,
		Email:                     profile.User.Email,
		FullName:                  profile.User.FullName,
		Avatar:                    profile.User.Avatar,
		CoverImage:                profile.User.CoverImage,
		SubscribersCount:          profile.SubscribersCount,
		ChannelsSubscribedToCount: profile.ChannelsSubscribedToCount,
		IsSubscribed:              profile.IsSubscribed,
	}
}

type videoResponse struct {
	ID          uuid.UUID     `json:"id"`
	OwnerID     uuid.UUID     `json:"ownerId"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	VideoFile   string        `json:"videoFile"`
	Thumbnail   string        `json:"thumbnail"`
	Duration    float64       `json:"duration"`
	Views       int64         `json:"views"`
	IsPublished bool          `json:"isPublished"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	Owner       *userResponse `json:"owner,omitempty"`
}

func toVideoResponse(video *entity.Video) *videoResponse {
	if video == nil {
		return nil
	}

	return &videoResponse{
		ID:          video.ID,
		OwnerID:     video.OwnerID,
		Title:       video.Title,
		Description: video.Description,
		VideoFile:   video.VideoFile,
		Thumbnail:   video.Thumbnail,
		Duration:    video.Duration,
		Views:       video.Views,
		IsPublished: video.IsPublished,
		CreatedAt:   video.CreatedAt,
		UpdatedAt:   video.UpdatedAt,
		Owner:       toUserResponse(video.Owner),
	}
}

func toVideoResponses(videos []*entity.Video) []*videoResponse {
	out := make([]*videoResponse, 0, len(videos))
	for _, video := range videos {
		out = append(out, toVideoResponse(video))
	}

	return out
}

type commentResponse struct {
	ID        uuid.UUID     `json:"id"`
	VideoID   uuid.UUID     `json:"videoId"`
	OwnerID   uuid.UUID     `json:"ownerId"`
	Content   string        `json:"content"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Owner     *userResponse `json:"owner,omitempty"`
}

func toCommentResponse(comment *entity.Comment) *commentResponse {
	if comment == nil {
		return nil
	}

	return &commentResponse{
		ID:        comment.ID,
		VideoID:   comment.VideoID,
		OwnerID:   comment.OwnerID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
		Owner:     toUserResponse(comment.Owner),
	}
}

type playlistResponse struct {
	ID          uuid.UUID        `json:"id"`
	OwnerID     uuid.UUID        `json:"ownerId"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
	Videos      []*videoResponse `json:"videos,omitempty"`
}

func toPlaylistResponse(playlist *entity.Playlist) *playlistResponse {
	if playlist == nil {
		return nil
	}

	resp := &playlistResponse{
		ID:          playlist.ID,
		OwnerID:     playlist.OwnerID,
		Name:        playlist.Name,
		Description: playlist.Description,
		CreatedAt:   playlist.CreatedAt,
		UpdatedAt:   playlist.UpdatedAt,
	}
	if playlist.Videos != nil {
		resp.Videos = toVideoResponses(playlist.Videos)
	}

	return resp
}

type watchHistoryResponse struct {
	VideoID   uuid.UUID      `json:"videoId"`
	WatchedAt time.Time      `json:"watchedAt"`
	Video     *videoResponse `json:"video,omitempty"`
}

func toWatchHistoryResponses(entries []*entity.WatchHistoryEntry) []*watchHistoryResponse {
	out := make([]*watchHistoryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, &watchHistoryResponse{
			VideoID:   entry.VideoID,
			WatchedAt: entry.WatchedAt,
			Video:     toVideoResponse(entry.Video),
		})
	}

	return out
}

type channelStatsResponse struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalLikes       int64 `json:"totalLikes"`
}

type pageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}
