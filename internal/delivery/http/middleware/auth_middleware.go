package middleware

import (
	"strings"

	"vidtube/internal/delivery/http/response"
	"vidtube/internal/domain/repository"
	"vidtube/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccessTokenCookie is the cookie carrying the access token for browser clients.
const AccessTokenCookie = "accessToken"

// RefreshTokenCookie is the cookie carrying the refresh token.
const RefreshTokenCookie = "refreshToken"

// AuthMiddleware validates sessions on protected routes. The access token is
// read from the accessToken cookie first, then from the Authorization header.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// extractToken returns the access token from the cookie or the Bearer header.
func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return ""
	}

	return tokenString
}

// resolveUser validates the token and loads the account. A token for a
// deleted account is as invalid as a bad signature.
func (m *AuthMiddleware) resolveUser(c echo.Context) (uuid.UUID, error) {
	tokenString := extractToken(c)
	if tokenString == "" {
		return uuid.Nil, errors.New("missing access token")
	}

	claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid access token")
	}

	user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "token account no longer exists")
	}

	c.Set("userID", user.ID)
	c.Set("user", user.PublicProfile())

	return user.ID, nil
}

// Authenticate rejects requests without a valid session.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := m.resolveUser(c); err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Unauthorized request")
		}

		return next(c)
	}
}

// OptionalAuthenticate resolves the session when one is presented but lets
// anonymous requests through. Used on public routes that personalize their
// response (channel profile, video views).
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		// Resolution failure is fine here; the handler sees no viewer.
		_, _ = m.resolveUser(c)

		return next(c)
	}
}
