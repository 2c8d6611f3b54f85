// Package ratelimiter throttles requests per client key.
package ratelimiter

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"adoptamena_backend/internal/api"
)

const (
	// EnvKeyAuthRatePerMinute names the per-client request budget of the auth endpoints.
	EnvKeyAuthRatePerMinute = "AUTH_RATE_LIMIT_PER_MINUTE"

	defaultPerMinute = 30
	idleTTL          = 10 * time.Minute
	sweepThreshold   = 1024
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per key, refilled evenly over a minute.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*entry
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

// NewRateLimiter allows perMinute requests per key and minute, with bursts up to perMinute.
// A non-positive perMinute returns nil, which disables limiting.
func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		return nil
	}
	return &RateLimiter{
		limiters: make(map[string]*entry),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
		now:      time.Now,
	}
}

// PerMinuteFromEnv reads AUTH_RATE_LIMIT_PER_MINUTE, defaulting to 30.
// "0" disables limiting.
func PerMinuteFromEnv() int {
	raw := os.Getenv(EnvKeyAuthRatePerMinute)
	if raw == "" {
		return defaultPerMinute
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid auth rate limit, using default", "value", raw, "default", defaultPerMinute)
		return defaultPerMinute
	}
	return n
}

// Allow reports whether key may proceed now.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if len(rl.limiters) >= sweepThreshold {
		rl.sweep(now)
	}

	e, ok := rl.limiters[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

// sweep drops buckets idle for longer than idleTTL. Callers hold mu.
func (rl *RateLimiter) sweep(now time.Time) {
	for k, e := range rl.limiters {
		if now.Sub(e.lastSeen) > idleTTL {
			delete(rl.limiters, k)
		}
	}
}

// Middleware rejects requests over budget with 429, keyed by client IP.
// A nil RateLimiter lets everything through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil {
			c.Next()
			return
		}
		if !rl.Allow(c.ClientIP()) {
			slog.Warn("rate limit exceeded", "remote_addr", c.ClientIP(), "path", c.FullPath())
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, api.Message("too many requests, try again later"))
			return
		}
		c.Next()
	}
}
