package ratelimiter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateLimiter_Disabled(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NewRateLimiter(0))
	assert.Nil(t, NewRateLimiter(-5))
}

func TestRateLimiter_Allow(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(3)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("10.0.0.1"), "request %d", i+1)
	}
	assert.False(t, rl.Allow("10.0.0.1"), "burst exhausted")
	assert.True(t, rl.Allow("10.0.0.2"), "keys are independent")

	// One token refills every 20s at 3 per minute.
	now = now.Add(20 * time.Second)
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiter_SweepDropsIdleKeys(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(1)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.Allow("old")
	now = now.Add(idleTTL + time.Second)
	rl.Allow("fresh")
	rl.sweep(now)

	_, hasOld := rl.limiters["old"]
	_, hasFresh := rl.limiters["fresh"]
	assert.False(t, hasOld)
	assert.True(t, hasFresh)
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		limiter  *RateLimiter
		requests int
		wantLast int
	}{
		{"under budget", NewRateLimiter(5), 5, http.StatusOK},
		{"over budget", NewRateLimiter(2), 3, http.StatusTooManyRequests},
		{"disabled", nil, 50, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/auth/login", tt.limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

			var w *httptest.ResponseRecorder
			for i := 0; i < tt.requests; i++ {
				w = httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
				req.RemoteAddr = "192.0.2.10:5555"
				r.ServeHTTP(w, req)
			}
			require.NotNil(t, w)
			assert.Equal(t, tt.wantLast, w.Code)
			if tt.wantLast == http.StatusTooManyRequests {
				assert.JSONEq(t, `{"message":"too many requests, try again later"}`, w.Body.String())
				assert.Equal(t, "60", w.Header().Get("Retry-After"))
			}
		})
	}
}

func TestPerMinuteFromEnv(t *testing.T) {
	tests := map[string]int{"": 30, "10": 10, "0": 0, "abc": 30}
	for raw, want := range tests {
		t.Setenv(EnvKeyAuthRatePerMinute, raw)
		assert.Equal(t, want, PerMinuteFromEnv(), "raw %q", raw)
	}
}
