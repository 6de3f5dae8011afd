package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/languagebaba/site-api/internal/config"
)

func rateLimitTestConfig(capacity int) config.RateLimitConfig {
	return config.RateLimitConfig{
		Enabled:        true,
		Capacity:       capacity,
		RefillTokens:   1,
		RefillInterval: time.Minute,
		TTL:            15 * time.Minute,
		KeyStrategy:    "ip_fingerprint_route",
		Prefix:         "lb:rl",
	}
}

func newLimitedEcho(t *testing.T, cfg config.RateLimitConfig) *echo.Echo {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	e := echo.New()
	e.GET("/api/blog-posts", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, NewTokenBucket(cfg, rdb))
	return e
}

func limitedGET(e *echo.Echo, fp string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/blog-posts", nil)
	if fp != "" {
		req.Header.Set(FingerprintHeader, fp)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestTokenBucketExhaustion(t *testing.T) {
	e := newLimitedEcho(t, rateLimitTestConfig(3))

	for i := 0; i < 3; i++ {
		w := limitedGET(e, "dev-1")
		require.Equal(t, http.StatusOK, w.Code, "request %d within budget", i+1)
	}

	w := limitedGET(e, "dev-1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "too_many_requests")
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestTokenBucketSeparatesFingerprints(t *testing.T) {
	e := newLimitedEcho(t, rateLimitTestConfig(1))

	require.Equal(t, http.StatusOK, limitedGET(e, "dev-1").Code)
	assert.Equal(t, http.StatusTooManyRequests, limitedGET(e, "dev-1").Code)

	// A different device has its own bucket.
	assert.Equal(t, http.StatusOK, limitedGET(e, "dev-2").Code)
}

func TestTokenBucketRemainingHeader(t *testing.T) {
	e := newLimitedEcho(t, rateLimitTestConfig(5))

	w := limitedGET(e, "dev-1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "5", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
}
