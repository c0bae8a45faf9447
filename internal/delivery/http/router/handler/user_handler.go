package handler

import (
	"context"
	"log/slog"
	"net/http"

	"vidtube/config"
	"vidtube/internal/delivery/http/middleware"
	"vidtube/internal/delivery/http/response"
	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/service"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account and session handlers.
type UserHandler struct {
	uc       usecase.UserUsecase
	tokenSvc service.TokenService
	cfg      *config.Config
	logger   *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		cfg:      cfg,
		logger:   logger,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type updateAccountRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email" validate:"omitempty,email"`
}

func (h *UserHandler) secureCookies() bool {
	return h.cfg.Env.Env == "prod"
}

// setSessionCookies stores the token pair as httpOnly cookies so browser
// clients never touch the tokens from script.
func (h *UserHandler) setSessionCookies(c echo.Context, accessToken, refreshToken string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    accessToken,
		Path:     "/",
		MaxAge:   int(h.tokenSvc.GetAccessTokenDuration().Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies(),
		SameSite: http.SameSiteNoneMode,
	})
	c.SetCookie(&http.Cookie{
		Name:     middleware.RefreshTokenCookie,
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   int(h.tokenSvc.GetRefreshTokenDuration().Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies(),
		SameSite: http.SameSiteNoneMode,
	})
}

// clearSessionCookies expires both token cookies.
func (h *UserHandler) clearSessionCookies(c echo.Context) {
	for _, name := range []string{middleware.AccessTokenCookie, middleware.RefreshTokenCookie} {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.secureCookies(),
			SameSite: http.SameSiteNoneMode,
		})
	}
}

// Register handles the multipart account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	input := &usecase.RegisterInput{
		Username: c.FormValue("username"),
		Email:    c.FormValue("email"),
		FullName: c.FormValue("fullName"),
		Password: c.FormValue("password"),
	}

	if input.Username == "" || input.Email == "" || input.Password == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "username, email and password are required")
	}

	avatar, avatarFile, err := formUpload(c, "avatar")
	if err != nil {
		return response.BadRequest(c, "MISSING_FILE", "Avatar file is required")
	}
	defer avatarFile.Close()
	input.Avatar = avatar

	if cover, coverFile, err := formUpload(c, "coverImage"); err == nil {
		defer coverFile.Close()
		input.CoverImage = cover
	}

	user, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user), "User registered successfully")
}

// Login handles the user login request and sets the session cookies.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Username == "" && req.Email == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "username or email is required")
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookies(c, output.AccessToken, output.RefreshToken)

	return response.Success(c, http.StatusOK, map[string]any{
		"user":         toUserResponse(output.User),
		"accessToken":  output.AccessToken,
		"refreshToken": output.RefreshToken,
	}, "User logged in successfully")
}

// RefreshToken rotates the session from the refresh token cookie or body.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	refreshToken := ""
	if cookie, err := c.Cookie(middleware.RefreshTokenCookie); err == nil {
		refreshToken = cookie.Value
	}
	if refreshToken == "" {
		var req refreshRequest
		if err := c.Bind(&req); err == nil {
			refreshToken = req.RefreshToken
		}
	}
	if refreshToken == "" {
		return response.Unauthorized(c, "REFRESH_TOKEN_INVALID", "Refresh token is required")
	}

	output, err := h.uc.RefreshTokens(c.Request().Context(), refreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookies(c, output.AccessToken, output.RefreshToken)

	return response.Success(c, http.StatusOK, map[string]any{
		"accessToken":  output.AccessToken,
		"refreshToken": output.RefreshToken,
	}, "Access token refreshed")
}

// Logout ends the session and clears the cookies.
func (h *UserHandler) Logout(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	if err := h.uc.Logout(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	h.clearSessionCookies(c)

	return response.Success(c, http.StatusOK, nil, "User logged out")
}

// ChangePassword verifies the old password and stores a new one. The session
// stays valid.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password change input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.ChangePassword(c.Request().Context(), userID, &usecase.ChangePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

// GetCurrentUser returns the caller's own profile.
func (h *UserHandler) GetCurrentUser(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	user, err := h.uc.GetCurrentUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Current user fetched successfully")
}

// UpdateAccountDetails changes the caller's display name and email.
func (h *UserHandler) UpdateAccountDetails(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	var req updateAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account update input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.FullName == "" && req.Email == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "At least one field is required")
	}

	user, err := h.uc.UpdateAccountDetails(c.Request().Context(), userID, &usecase.UpdateAccountInput{
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Account details updated successfully")
}

// UpdateAvatar uploads a replacement avatar image.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	return h.updateImage(c, "avatar", h.uc.UpdateAvatar, "Avatar updated successfully")
}

// UpdateCoverImage uploads a replacement cover image.
func (h *UserHandler) UpdateCoverImage(c echo.Context) error {
	return h.updateImage(c, "coverImage", h.uc.UpdateCoverImage, "Cover image updated successfully")
}

func (h *UserHandler) updateImage(
	c echo.Context,
	field string,
	update func(ctx context.Context, userID uuid.UUID, upload *usecase.Upload) (*entity.User, error),
	message string,
) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	upload, file, err := formUpload(c, field)
	if err != nil {
		return response.BadRequest(c, "MISSING_FILE", "Image file is required")
	}
	defer file.Close()

	user, err := update(c.Request().Context(), userID, upload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), message)
}

// GetChannelProfile returns a channel page by username. An authenticated
// viewer also learns whether they subscribe to it.
func (h *UserHandler) GetChannelProfile(c echo.Context) error {
	username := c.Param("username")
	if username == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "username is required")
	}

	profile, err := h.uc.GetChannelProfile(c.Request().Context(), username, optionalUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toChannelProfileResponse(profile), "Channel profile fetched successfully")
}

// GetWatchHistory returns the caller's watch history.
func (h *UserHandler) GetWatchHistory(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
	}

	entries, err := h.uc.GetWatchHistory(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toWatchHistoryResponses(entries), "Watch history fetched successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
