// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"

	deliverycontext "vidtube/internal/delivery/context"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	subscriptionRepo repository.SubscriptionRepository
	watchHistoryRepo repository.WatchHistoryRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	assetStorage     service.AssetStorage
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	SubscriptionRepo repository.SubscriptionRepository
	WatchHistoryRepo repository.WatchHistoryRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	AssetStorage     service.AssetStorage
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		subscriptionRepo: params.SubscriptionRepo,
		watchHistoryRepo: params.WatchHistoryRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		assetStorage:     params.AssetStorage,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))
	email := strings.ToLower(strings.TrimSpace(input.Email))

	srv.log(ctx).Info("Starting registration", slog.String("username", username), slog.String("email", email))

	if _, err := srv.userRepo.FindByUsernameOrEmail(ctx, username, email); err == nil {
		srv.log(ctx).Warn("Registration rejected, account exists", slog.String("username", username))

		return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration failed")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing account")
	}

	if input.Avatar == nil {
		return nil, errors.Wrap(domainerrors.ErrMissingFile, "avatar file is required")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}

	avatarURL, err := srv.saveUpload(ctx, "avatars", input.Avatar)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload avatar")
	}

	coverImageURL := ""
	if input.CoverImage != nil {
		coverImageURL, err = srv.saveUpload(ctx, "covers", input.CoverImage)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upload cover image")
		}
	}

	newUser := &entity.User{
		Username:     username,
		Email:        email,
		FullName:     input.FullName,
		Avatar:       avatarURL,
		CoverImage:   coverImageURL,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration failed")
		}
		srv.log(ctx).Error("Failed to create user", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUserCreationFailed, "failed to create user")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return newUser.PublicProfile(), nil
}

// Login verifies the credentials, issues a token pair, and stores the
// refresh token hash as the single active session.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))
	email := strings.ToLower(strings.TrimSpace(input.Email))

	srv.log(ctx).Debug("Starting user login", slog.String("username", username))

	user, err := srv.userRepo.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown account", slog.String("username", username))

			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	// bcrypt comparison is CPU-bound; keep it outside any transaction.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	// A new login replaces any previous session; only the latest refresh
	// token stays valid.
	if err := srv.userRepo.StoreRefreshTokenHash(ctx, user.ID, srv.tokenService.HashToken(refreshToken)); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token hash")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user.PublicProfile(),
	}, nil
}

// RefreshTokens rotates the session: the presented refresh token must match
// the stored hash exactly, and rotation atomically replaces it. A token that
// was already rotated away is treated as expired or used.
func (srv *userService) RefreshTokens(ctx context.Context, refreshToken string) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Info("Attempting to refresh session")

	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	newAccessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(claims.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new tokens")
	}

	oldHash := srv.tokenService.HashToken(refreshToken)
	newHash := srv.tokenService.HashToken(newRefreshToken)

	rotated, err := srv.userRepo.RotateRefreshTokenHash(ctx, claims.UserID, oldHash, newHash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rotate refresh token hash")
	}
	if !rotated {
		// The stored hash no longer matches: the token was already used,
		// the user logged out, or a newer login replaced the session.
		srv.log(ctx).Warn("Stale refresh token presented", slog.Any("userID", claims.UserID))

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenStale, "refresh token rotation failed")
	}

	srv.log(ctx).Debug("Session refreshed", slog.Any("userID", claims.UserID))

	return &usecase.TokenPairOutput{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout ends the session by clearing the stored refresh token hash.
func (srv *userService) Logout(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Attempting to log out", slog.Any("userID", userID))

	if err := srv.userRepo.ClearRefreshTokenHash(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "logout failed")
		}

		return errors.Wrap(err, "failed to clear refresh token hash")
	}

	srv.log(ctx).Info("Successfully logged out", slog.Any("userID", userID))

	return nil
}

// ChangePassword verifies the old password before storing a new hash. The
// active session deliberately survives: the stored refresh token hash is
// left untouched.
func (srv *userService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "change password failed")
		}

		return errors.Wrap(err, "failed to load user for password change")
	}

	if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Password change rejected, old password mismatch", slog.Any("userID", userID))

		return errors.Wrap(domainerrors.ErrInvalidOldPassword, "change password failed")
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
	}

	if err := srv.userRepo.UpdatePasswordHash(ctx, userID, newHash); err != nil {
		return errors.Wrap(err, "failed to update password hash")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", userID))

	return nil
}

// GetCurrentUser returns the caller's own profile.
func (srv *userService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to load current user")
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user.PublicProfile(), nil
}

// UpdateAccountDetails changes the caller's display name and email.
func (srv *userService) UpdateAccountDetails(ctx context.Context, userID uuid.UUID, input *usecase.UpdateAccountInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to load user for update")
		}

		return nil, errors.Wrap(err, "failed to load user for update")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Email != "" {
		user.Email = strings.ToLower(strings.TrimSpace(input.Email))
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already in use")
		}

		return nil, errors.Wrap(domainerrors.ErrUserUpdateFailed, "failed to update account details")
	}

	srv.log(ctx).Debug("Account details updated", slog.Any("userID", userID))

	return user.PublicProfile(), nil
}

// UpdateAvatar uploads a new avatar image and stores its URL.
func (srv *userService) UpdateAvatar(ctx context.Context, userID uuid.UUID, upload *usecase.Upload) (*entity.User, error) {
	return srv.updateImage(ctx, userID, upload, "avatars", func(user *entity.User, url string) {
		user.Avatar = url
	})
}

// UpdateCoverImage uploads a new cover image and stores its URL.
func (srv *userService) UpdateCoverImage(ctx context.Context, userID uuid.UUID, upload *usecase.Upload) (*entity.User, error) {
	return srv.updateImage(ctx, userID, upload, "covers", func(user *entity.User, url string) {
		user.CoverImage = url
	})
}

func (srv *userService) updateImage(ctx context.Context, userID uuid.UUID, upload *usecase.Upload, prefix string, assign func(*entity.User, string)) (*entity.User, error) {
	if upload == nil {
		return nil, errors.Wrap(domainerrors.ErrMissingFile, "image file is required")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "failed to load user for image update")
		}

		return nil, errors.Wrap(err, "failed to load user for image update")
	}

	url, err := srv.saveUpload(ctx, prefix, upload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload image")
	}

	assign(user, url)

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(domainerrors.ErrUserUpdateFailed, "failed to store image URL")
	}

	srv.log(ctx).Debug("Profile image updated", slog.Any("userID", userID), slog.String("prefix", prefix))

	return user.PublicProfile(), nil
}

// GetChannelProfile assembles a channel page: public identity, subscriber
// counts, and whether the viewer subscribes to it.
func (srv *userService) GetChannelProfile(ctx context.Context, username string, viewerID *uuid.UUID) (*entity.ChannelProfile, error) {
	channel, err := srv.userRepo.FindByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrChannelNotFound, "failed to load channel")
		}

		return nil, errors.Wrap(err, "failed to load channel")
	}

	subscribers, err := srv.subscriptionRepo.CountSubscribers(ctx, channel.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count channel subscribers")
	}

	subscribedTo, err := srv.subscriptionRepo.CountSubscribedTo(ctx, channel.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count channel subscriptions")
	}

	isSubscribed := false
	if viewerID != nil {
		isSubscribed, err = srv.subscriptionRepo.Exists(ctx, *viewerID, channel.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check viewer subscription")
		}
	}

	return &entity.ChannelProfile{
		User:                      channel.PublicProfile(),
		SubscribersCount:          subscribers,
		ChannelsSubscribedToCount: subscribedTo,
		IsSubscribed:              isSubscribed,
	}, nil
}

// GetWatchHistory returns the caller's watch history, most recent first.
func (srv *userService) GetWatchHistory(ctx context.Context, userID uuid.UUID) ([]*entity.WatchHistoryEntry, error) {
	entries, err := srv.watchHistoryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load watch history")
	}

	for _, entry := range entries {
		if entry.Video != nil && entry.Video.Owner != nil {
			entry.Video.Owner = entry.Video.Owner.PublicProfile()
		}
	}

	return entries, nil
}

// saveUpload stores an uploaded file under a random object name, keeping
// the original extension.
func (srv *userService) saveUpload(ctx context.Context, prefix string, upload *usecase.Upload) (string, error) {
	name := prefix + "/" + uuid.New().String() + path.Ext(upload.Filename)

	url, err := srv.assetStorage.Save(ctx, name, upload.Content)
	if err != nil {
		srv.log(ctx).Error("Asset upload failed", slog.String("object", name), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrUploadFailed, "failed to save asset")
	}

	return url, nil
}
