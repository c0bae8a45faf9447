package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vidtube/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateLimitedRequest(m *RateLimitMiddleware, ip string) int {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/login", nil)
	req.RemoteAddr = ip + ":51234"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		return http.StatusInternalServerError
	}

	return rec.Code
}

func TestRateLimitMiddleware_RejectsOverBudget(t *testing.T) {
	m := NewRateLimitMiddleware(&config.Config{
		RateLimit: &config.RateLimitConfig{
			Requests: 2,
			Window:   time.Minute,
			Burst:    2,
		},
	})

	assert.Equal(t, http.StatusOK, rateLimitedRequest(m, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, rateLimitedRequest(m, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, rateLimitedRequest(m, "10.0.0.1"))
}

func TestRateLimitMiddleware_BudgetsArePerIP(t *testing.T) {
	m := NewRateLimitMiddleware(&config.Config{
		RateLimit: &config.RateLimitConfig{
			Requests: 1,
			Window:   time.Minute,
			Burst:    1,
		},
	})

	require.Equal(t, http.StatusOK, rateLimitedRequest(m, "10.0.0.1"))
	require.Equal(t, http.StatusTooManyRequests, rateLimitedRequest(m, "10.0.0.1"))

	// A different client keeps its own budget.
	assert.Equal(t, http.StatusOK, rateLimitedRequest(m, "10.0.0.2"))
}

func TestRateLimitMiddleware_DisabledWithoutConfig(t *testing.T) {
	m := NewRateLimitMiddleware(&config.Config{})

	for range 5 {
		assert.Equal(t, http.StatusOK, rateLimitedRequest(m, "10.0.0.1"))
	}
}
