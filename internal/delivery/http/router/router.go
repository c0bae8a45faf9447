// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vidtube/internal/delivery/http/middleware"
	"vidtube/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler the router mounts, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	VideoHandler        *handler.VideoHandler
	CommentHandler      *handler.CommentHandler
	LikeHandler         *handler.LikeHandler
	SubscriptionHandler *handler.SubscriptionHandler
	PlaylistHandler     *handler.PlaylistHandler
	DashboardHandler    *handler.DashboardHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	// Credential endpoints get the per-IP rate limit.
	users := api.Group("/users")
	{
		users.POST("/register", r.params.UserHandler.Register, r.params.RateLimitMiddleware.Handle)
		users.POST("/login", r.params.UserHandler.Login, r.params.RateLimitMiddleware.Handle)
		users.POST("/refresh-token", r.params.UserHandler.RefreshToken)

		users.POST("/logout", r.params.UserHandler.Logout, auth.Authenticate)
		users.POST("/change-password", r.params.UserHandler.ChangePassword, auth.Authenticate)
		users.GET("/current-user", r.params.UserHandler.GetCurrentUser, auth.Authenticate)
		users.PATCH("/update-account-details", r.params.UserHandler.UpdateAccountDetails, auth.Authenticate)
		users.PATCH("/update-avatar", r.params.UserHandler.UpdateAvatar, auth.Authenticate)
		users.PATCH("/update-cover-image", r.params.UserHandler.UpdateCoverImage, auth.Authenticate)
		users.GET("/watch-history", r.params.UserHandler.GetWatchHistory, auth.Authenticate)

		// Public, but personalized when a session is present.
		users.GET("/channel/:username", r.params.UserHandler.GetChannelProfile, auth.OptionalAuthenticate)
	}

	videos := api.Group("/videos")
	{
		videos.GET("", r.params.VideoHandler.List)
		videos.POST("", r.params.VideoHandler.Publish, auth.Authenticate)
		videos.GET("/my-videos", r.params.VideoHandler.ListMine, auth.Authenticate)
		videos.GET("/:videoId", r.params.VideoHandler.GetByID, auth.Authenticate)
		videos.PATCH("/:videoId", r.params.VideoHandler.Update, auth.Authenticate)
		videos.DELETE("/:videoId", r.params.VideoHandler.Delete, auth.Authenticate)
		videos.PATCH("/toggle/publish/:videoId", r.params.VideoHandler.TogglePublish, auth.Authenticate)
		videos.POST("/:videoId/increment-views", r.params.VideoHandler.IncrementViews)
	}

	comments := api.Group("/comments")
	{
		comments.GET("/:videoId", r.params.CommentHandler.ListByVideo)
		comments.POST("/:videoId", r.params.CommentHandler.Add, auth.Authenticate)
		comments.PATCH("/channel/:commentId", r.params.CommentHandler.Update, auth.Authenticate)
		comments.DELETE("/channel/:commentId", r.params.CommentHandler.Delete, auth.Authenticate)
	}

	likes := api.Group("/likes")
	{
		likes.POST("/video/:videoId/like", r.params.LikeHandler.ToggleVideoLike, auth.Authenticate)
		likes.POST("/comment/:commentId/like", r.params.LikeHandler.ToggleCommentLike, auth.Authenticate)
		likes.GET("/video/:videoId/like-count", r.params.LikeHandler.GetVideoLikeCount)
		likes.GET("/video/:videoId/user-liked", r.params.LikeHandler.GetUserLiked, auth.Authenticate)
		likes.GET("/liked-videos", r.params.LikeHandler.GetLikedVideos, auth.Authenticate)
	}

	subscriptions := api.Group("/subscriptions")
	{
		subscriptions.POST("/channel/:channelId", r.params.SubscriptionHandler.Toggle, auth.Authenticate)
		subscriptions.GET("/channel/:channelId", r.params.SubscriptionHandler.GetSubscribers)
		subscriptions.GET("/user/:subscriberId", r.params.SubscriptionHandler.GetSubscribedChannels)
	}

	playlists := api.Group("/playlists")
	{
		playlists.POST("", r.params.PlaylistHandler.Create, auth.Authenticate)
		playlists.GET("/:playlistId", r.params.PlaylistHandler.GetByID)
		playlists.PATCH("/:playlistId", r.params.PlaylistHandler.Update, auth.Authenticate)
		playlists.DELETE("/:playlistId", r.params.PlaylistHandler.Delete, auth.Authenticate)
		playlists.GET("/user/:userId", r.params.PlaylistHandler.ListByUser)
		playlists.POST("/:playlistId/videos/:videoId", r.params.PlaylistHandler.AddVideo, auth.Authenticate)
		playlists.DELETE("/:playlistId/videos/:videoId", r.params.PlaylistHandler.RemoveVideo, auth.Authenticate)
	}

	dashboard := api.Group("/dashboard", auth.Authenticate)
	{
		dashboard.GET("/stats", r.params.DashboardHandler.GetStats)
		dashboard.GET("/videos", r.params.DashboardHandler.GetVideos)
	}
}
