package middleware

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// Defaults for the AutoTask endpoint. Every request costs an LLM call,
// so the bucket refills slowly but tolerates a short burst.
const (
	DefaultAutoTaskRate  rate.Limit = 1
	DefaultAutoTaskBurst            = 5
)

// RateLimiter hands out one token-bucket limiter per key.
type RateLimiter struct {
	mu     sync.Mutex
	limits map[string]*rate.Limiter

	limit rate.Limit
	burst int
}

// NewRateLimiter creates a rate limiter allowing limit events per
// second with the given burst.
func NewRateLimiter(limit rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		limits: make(map[string]*rate.Limiter),
		limit:  limit,
		burst:  burst,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, ok := rl.limits[key]; ok {
		return limiter
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.limits[key] = limiter
	return limiter
}

// Allow checks if a request is allowed for the given key.
func (rl *RateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

// Middleware rejects over-limit requests with 429, keyed by client IP.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.Allow(c.RealIP()) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
