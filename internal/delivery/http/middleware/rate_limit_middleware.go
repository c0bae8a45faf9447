package middleware

import (
	"sync"
	"time"

	"vidtube/config"
	"vidtube/internal/delivery/http/response"
	domainerrors "vidtube/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware applies a per-IP token bucket to incoming requests.
// Idle client entries are swept periodically so the map stays bounded.
type RateLimitMiddleware struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int
	ttl     time.Duration
	enabled bool
}

// NewRateLimitMiddleware creates a new rate limit middleware. A nil rate
// limit config disables limiting entirely.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		clients: make(map[string]*clientLimiter),
	}

	if cfg == nil || cfg.RateLimit == nil || cfg.RateLimit.Requests <= 0 {
		return m
	}

	window := cfg.RateLimit.Window
	if window <= 0 {
		window = time.Minute
	}
	burst := cfg.RateLimit.Burst
	if burst <= 0 {
		burst = cfg.RateLimit.Requests
	}
	ttl := cfg.RateLimit.TTL
	if ttl <= 0 {
		ttl = 3 * time.Minute
	}

	m.limit = rate.Limit(float64(cfg.RateLimit.Requests) / window.Seconds())
	m.burst = burst
	m.ttl = ttl
	m.enabled = true

	go m.cleanup()

	return m
}

func (m *RateLimitMiddleware) limiterFor(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	client, ok := m.clients[ip]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.clients[ip] = client
	}
	client.lastSeen = time.Now()

	return client.limiter
}

func (m *RateLimitMiddleware) cleanup() {
	ticker := time.NewTicker(m.ttl)
	defer ticker.Stop()

	for range ticker.C {
		m.mu.Lock()
		for ip, client := range m.clients {
			if time.Since(client.lastSeen) > m.ttl {
				delete(m.clients, ip)
			}
		}
		m.mu.Unlock()
	}
}

// Handle rejects requests that exceed the client's budget with 429.
func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		if !m.limiterFor(c.RealIP()).Allow() {
			return response.Error(c,
				domainerrors.ErrTooManyRequests.HTTPCode(),
				domainerrors.ErrTooManyRequests.ErrorCode(),
				domainerrors.ErrTooManyRequests.Message(),
				"",
			)
		}

		return next(c)
	}
}
