package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	mockRepo "vidtube/internal/mocks/repository"
	mockSvc "vidtube/internal/mocks/service"
	"vidtube/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	watchHistoryRepo *mockRepo.MockWatchHistoryRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	assetStorage     *mockSvc.MockAssetStorage
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	watchHistoryRepo := mockRepo.NewMockWatchHistoryRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	assetStorage := mockSvc.NewMockAssetStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewUserService(UserServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		SubscriptionRepo: subscriptionRepo,
		WatchHistoryRepo: watchHistoryRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		AssetStorage:     assetStorage,
		Logger:           logger,
	})

	return userServiceFixtures{
		service:          svc,
		txManager:        txManager,
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		watchHistoryRepo: watchHistoryRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		assetStorage:     assetStorage,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "NewChannel",
		Email:    "New@Example.com",
		FullName: "New Channel",
		Password: "Password123!",
		Avatar:   newTestUpload("avatar.png"),
	}

	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, "newchannel", "new@example.com").
		Return(nil, repository.ErrUserNotFound)

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.assetStorage.EXPECT().
		Save(ctx, mock.MatchedBy(func(name string) bool { return len(name) > 8 && name[:8] == "avatars/" }), mock.Anything).
		Return("https://cdn.example.com/avatars/new.png", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "newchannel", user.Username)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, "https://cdn.example.com/avatars/new.png", user.Avatar)
	assert.Empty(t, user.PasswordHash)
}

func TestUserService_Register_DuplicateAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := newTestUser()

	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, existing.Username, existing.Email).
		Return(existing, nil)

	user, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username: existing.Username,
		Email:    existing.Email,
		Password: "Password123!",
		Avatar:   newTestUpload("avatar.png"),
	})

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_MissingAvatar(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, "newchannel", "new@example.com").
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username: "newchannel",
		Email:    "new@example.com",
		Password: "Password123!",
	})

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrMissingFile))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	account := newTestUser()

	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, account.Username, "").
		Return(account, nil)
	fx.hasher.EXPECT().Check("Password123!", account.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateTokens(account.ID).Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	fx.userRepo.EXPECT().StoreRefreshTokenHash(ctx, account.ID, "refresh-hash").Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: account.Username,
		Password: "Password123!",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Empty(t, output.User.PasswordHash)
	assert.Empty(t, output.User.RefreshTokenHash)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	account := newTestUser()

	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, account.Username, "").
		Return(account, nil)
	fx.hasher.EXPECT().Check("wrong", account.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: account.Username,
		Password: "wrong",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, "ghost", "").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "ghost",
		Password: "Password123!",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_RefreshTokens_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("old-refresh").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("new-access", "new-refresh", nil)
	fx.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash")
	fx.tokenService.EXPECT().HashToken("new-refresh").Return("new-hash")
	fx.userRepo.EXPECT().
		RotateRefreshTokenHash(ctx, userID, "old-hash", "new-hash").
		Return(true, nil)

	output, err := fx.service.RefreshTokens(ctx, "old-refresh")

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

// A refresh token that was already rotated away no longer matches the stored
// hash; presenting it again must be rejected, not silently honored.
func TestUserService_RefreshTokens_ReplayedToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("used-refresh").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID).Return("new-access", "new-refresh", nil)
	fx.tokenService.EXPECT().HashToken("used-refresh").Return("used-hash")
	fx.tokenService.EXPECT().HashToken("new-refresh").Return("new-hash")
	fx.userRepo.EXPECT().
		RotateRefreshTokenHash(ctx, userID, "used-hash", "new-hash").
		Return(false, nil)

	output, err := fx.service.RefreshTokens(ctx, "used-refresh")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenStale))
}

func TestUserService_RefreshTokens_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateRefreshToken("garbage").
		Return(nil, errors.New("token is malformed"))

	output, err := fx.service.RefreshTokens(ctx, "garbage")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Logout_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().ClearRefreshTokenHash(ctx, userID).Return(nil)

	err := fx.service.Logout(ctx, userID)

	require.NoError(t, err)
}

func TestUserService_ChangePassword_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	account := newTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.hasher.EXPECT().Check("old-password", account.PasswordHash).Return(true)
	fx.hasher.EXPECT().Hash("new-password").Return("new-bcrypt-hash", nil)
	fx.userRepo.EXPECT().UpdatePasswordHash(ctx, account.ID, "new-bcrypt-hash").Return(nil)

	err := fx.service.ChangePassword(ctx, account.ID, &usecase.ChangePasswordInput{
		OldPassword: "old-password",
		NewPassword: "new-password",
	})

	require.NoError(t, err)

	// Changing the password keeps the current session alive: the stored
	// refresh token hash must not be touched.
	fx.userRepo.AssertNotCalled(t, "ClearRefreshTokenHash", mock.Anything, mock.Anything)
	fx.userRepo.AssertNotCalled(t, "StoreRefreshTokenHash", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_ChangePassword_WrongOldPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	account := newTestUser()

	fx.userRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	fx.hasher.EXPECT().Check("not-the-old-one", account.PasswordHash).Return(false)

	err := fx.service.ChangePassword(ctx, account.ID, &usecase.ChangePasswordInput{
		OldPassword: "not-the-old-one",
		NewPassword: "new-password",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOldPassword))
}

func TestUserService_GetChannelProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	channel := newTestUser()
	viewerID := uuid.New()

	fx.userRepo.EXPECT().FindByUsername(ctx, channel.Username).Return(channel, nil)
	fx.subscriptionRepo.EXPECT().CountSubscribers(ctx, channel.ID).Return(int64(120), nil)
	fx.subscriptionRepo.EXPECT().CountSubscribedTo(ctx, channel.ID).Return(int64(7), nil)
	fx.subscriptionRepo.EXPECT().Exists(ctx, viewerID, channel.ID).Return(true, nil)

	profile, err := fx.service.GetChannelProfile(ctx, channel.Username, &viewerID)

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, int64(120), profile.SubscribersCount)
	assert.Equal(t, int64(7), profile.ChannelsSubscribedToCount)
	assert.True(t, profile.IsSubscribed)
	assert.Empty(t, profile.User.PasswordHash)
	assert.Empty(t, profile.User.RefreshTokenHash)
}

func TestUserService_GetChannelProfile_Anonymous(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	channel := newTestUser()

	fx.userRepo.EXPECT().FindByUsername(ctx, channel.Username).Return(channel, nil)
	fx.subscriptionRepo.EXPECT().CountSubscribers(ctx, channel.ID).Return(int64(3), nil)
	fx.subscriptionRepo.EXPECT().CountSubscribedTo(ctx, channel.ID).Return(int64(0), nil)

	profile, err := fx.service.GetChannelProfile(ctx, channel.Username, nil)

	require.NoError(t, err)
	assert.False(t, profile.IsSubscribed)
}

func TestUserService_GetChannelProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	profile, err := fx.service.GetChannelProfile(ctx, "ghost", nil)

	assert.Error(t, err)
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrChannelNotFound))
}
