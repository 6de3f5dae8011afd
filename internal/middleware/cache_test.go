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

func cacheTestConfig() config.CacheConfig {
	return config.CacheConfig{
		Enabled:      true,
		Methods:      map[string]bool{"GET": true},
		TTL:          time.Minute,
		KeyStrategy:  "route_query",
		Prefix:       "lb:cache",
		MaxBodyBytes: 1 << 20,
	}
}

func newCachedEcho(t *testing.T, cfg config.CacheConfig) (*echo.Echo, *int) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	hits := 0
	e := echo.New()
	g := e.Group("/api")
	g.Use(NewRedisCache(cfg, rdb))
	g.GET("/blog-posts", func(c echo.Context) error {
		hits++
		return c.JSON(http.StatusOK, []string{"post-1", "post-2"})
	})
	g.GET("/missing", func(c echo.Context) error {
		hits++
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	})
	return e, &hits
}

func doGET(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestCacheMissThenHit(t *testing.T) {
	e, hits := newCachedEcho(t, cacheTestConfig())

	first := doGET(e, "/api/blog-posts")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))
	assert.Equal(t, 1, *hits)

	second := doGET(e, "/api/blog-posts")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, 1, *hits, "handler must not run on a cache hit")

	// Cached body is byte-identical.
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, first.Header().Get("Content-Type"), second.Header().Get("Content-Type"))
}

func TestCacheKeyIncludesQuery(t *testing.T) {
	e, hits := newCachedEcho(t, cacheTestConfig())

	doGET(e, "/api/blog-posts?limit=5")
	doGET(e, "/api/blog-posts?limit=10")

	assert.Equal(t, 2, *hits, "different queries are distinct cache entries")
}

func TestCacheSkipsNon200(t *testing.T) {
	e, hits := newCachedEcho(t, cacheTestConfig())

	doGET(e, "/api/missing")
	w := doGET(e, "/api/missing")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 2, *hits, "error responses are never cached")
}

func TestCacheDisabledPassesThrough(t *testing.T) {
	cfg := cacheTestConfig()
	cfg.Enabled = false
	e, hits := newCachedEcho(t, cfg)

	doGET(e, "/api/blog-posts")
	w := doGET(e, "/api/blog-posts")

	assert.Empty(t, w.Header().Get("X-Cache"))
	assert.Equal(t, 2, *hits)
}
