package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTokenBucket_RefillsOverTime(t *testing.T) {
	tb := NewTokenBucket(2, 2)
	now := tb.lastRefill

	assert.True(t, tb.allowAt(now))
	assert.True(t, tb.allowAt(now))
	assert.False(t, tb.allowAt(now), "burst exhausted")

	assert.True(t, tb.allowAt(now.Add(500*time.Millisecond)), "one token after half a second at 2/s")
	assert.False(t, tb.allowAt(now.Add(500*time.Millisecond)))

	// Refill never exceeds capacity.
	later := now.Add(time.Hour)
	assert.True(t, tb.allowAt(later))
	assert.True(t, tb.allowAt(later))
	assert.False(t, tb.allowAt(later))
}

func TestMemoryStore_PerKeyBuckets(t *testing.T) {
	store := NewMemoryStore(1, 1, time.Minute)
	ctx := context.Background()

	ok, err := store.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = store.Allow(ctx, "10.0.0.1")
	assert.False(t, ok)

	ok, _ = store.Allow(ctx, "10.0.0.2")
	assert.True(t, ok)
	assert.Equal(t, 2, store.Len())
}

func newLimitedRouter(cfg RateLimiterConfig) *gin.Engine {
	r := gin.New()
	r.Use(RateLimiter(cfg))
	r.GET("/api/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.OPTIONS("/api/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestRateLimiter_RejectsAfterBurst(t *testing.T) {
	r := newLimitedRouter(RateLimiterConfig{Rate: 0.001, Burst: 2})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests {
			assert.JSONEq(t, `{"error":"Too many requests"}`, w.Body.String())
		}
	}
	assert.Equal(t, []int{200, 200, 429}, codes)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/ping", nil))
	assert.Equal(t, http.StatusNoContent, w.Code, "preflight is never limited")
}

type failingStore struct{}

func (failingStore) Allow(context.Context, string) (bool, error) {
	return false, errors.New("connection refused")
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	r := newLimitedRouter(RateLimiterConfig{Rate: 1, Burst: 1, Store: failingStore{}})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

type stubRedis struct {
	limit  int
	window time.Duration
	hits   int
}

func (s *stubRedis) Ping(context.Context) error { return nil }
func (s *stubRedis) Close() error               { return nil }
func (s *stubRedis) Allow(_ context.Context, _ string, limit int, window time.Duration) (bool, error) {
	s.limit, s.window = limit, window
	s.hits++
	return s.hits <= limit, nil
}

func TestRedisStore_UsesLargerOfRateAndBurst(t *testing.T) {
	redis := &stubRedis{}
	store := NewRedisStore(redis, 12.5, 5)

	ok, err := store.Allow(context.Background(), "ip")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 13, redis.limit)
	assert.Equal(t, time.Second, redis.window)
}
