package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"
	mockRepo "vidtube/internal/mocks/repository"
	mockSvc "vidtube/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *mockSvc.MockTokenService
	userRepo   *mockRepo.MockUserRepository
}

func createTestAuthMiddleware(t *testing.T) authFixtures {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return authFixtures{
		middleware: NewAuthMiddleware(tokenSvc, userRepo),
		tokenSvc:   tokenSvc,
		userRepo:   userRepo,
	}
}

func newAuthTestContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func okHandler(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return c.NoContent(http.StatusOK)
	}
}

func TestAuthMiddleware_Authenticate_CookieToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	account := &entity.User{ID: uuid.New(), Username: "viewer", PasswordHash: "hash"}

	fx.tokenSvc.EXPECT().
		ValidateAccessToken("cookie-token").
		Return(&service.Claims{UserID: account.ID, Type: service.TokenTypeAccess}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})
	c, rec := newAuthTestContext(req)

	called := false
	err := fx.middleware.Authenticate(okHandler(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, account.ID, c.Get("userID"))

	// The resolved user is the public profile, never raw credentials.
	resolved, ok := c.Get("user").(*entity.User)
	require.True(t, ok)
	assert.Empty(t, resolved.PasswordHash)
}

// The cookie takes priority, but API clients without cookies can present the
// same token in the Authorization header.
func TestAuthMiddleware_Authenticate_BearerFallback(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	account := &entity.User{ID: uuid.New(), Username: "viewer"}

	fx.tokenSvc.EXPECT().
		ValidateAccessToken("header-token").
		Return(&service.Claims{UserID: account.ID, Type: service.TokenTypeAccess}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer header-token")
	c, _ := newAuthTestContext(req)

	called := false
	err := fx.middleware.Authenticate(okHandler(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestAuthMiddleware_Authenticate_MissingToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, rec := newAuthTestContext(req)

	called := false
	err := fx.middleware.Authenticate(okHandler(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	fx.tokenSvc.EXPECT().
		ValidateAccessToken("expired").
		Return(nil, errors.New("token is expired"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "expired"})
	c, rec := newAuthTestContext(req)

	called := false
	err := fx.middleware.Authenticate(okHandler(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// A structurally valid token for an account that no longer exists must not
// open a session.
func TestAuthMiddleware_Authenticate_DeletedAccount(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	userID := uuid.New()

	fx.tokenSvc.EXPECT().
		ValidateAccessToken("orphan-token").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeAccess}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "orphan-token"})
	c, rec := newAuthTestContext(req)

	called := false
	err := fx.middleware.Authenticate(okHandler(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_OptionalAuthenticate_Anonymous(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, rec := newAuthTestContext(req)

	called := false
	err := fx.middleware.OptionalAuthenticate(okHandler(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, c.Get("userID"))
}

func TestAuthMiddleware_OptionalAuthenticate_WithSession(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	account := &entity.User{ID: uuid.New(), Username: "viewer"}

	fx.tokenSvc.EXPECT().
		ValidateAccessToken("cookie-token").
		Return(&service.Claims{UserID: account.ID, Type: service.TokenTypeAccess}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, account.ID).Return(account, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})
	c, _ := newAuthTestContext(req)

	called := false
	err := fx.middleware.OptionalAuthenticate(okHandler(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, account.ID, c.Get("userID"))
}
