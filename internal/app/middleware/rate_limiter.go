package middleware

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"propertyops-http-service/internal/domain/services"
	"propertyops-http-service/internal/error/code"
	"propertyops-http-service/internal/error/response"
	Logger "propertyops-http-service/pkg/logger"
)

// TokenBucket is a simple token bucket limiter
type TokenBucket struct {
	rate       float64 // tokens added per second
	capacity   int
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

// NewTokenBucket creates a full bucket
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// Allow takes one token if there is one
func (tb *TokenBucket) Allow() bool {
	return tb.allowAt(time.Now())
}

func (tb *TokenBucket) allowAt(now time.Time) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	elapsed := now.Sub(tb.lastRefill).Seconds()
	if elapsed > 0 {
		tb.lastRefill = now
		tb.tokens = math.Min(tb.tokens+elapsed*tb.rate, float64(tb.capacity))
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

// LimiterStore decides whether one more request for key is allowed
type LimiterStore interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimiterConfig configures the rate limiter
type RateLimiterConfig struct {
	Rate       float64                   // requests per second
	Burst      int                       // requests allowed at once
	ExpiryTime time.Duration             // idle time before a key's bucket is dropped
	KeyFunc    func(*gin.Context) string // defaults to the client IP
	Store      LimiterStore              // defaults to in-memory token buckets
}

// DefaultRateLimiterConfig is the default rate limiter config
var DefaultRateLimiterConfig = RateLimiterConfig{
	Rate:       20,
	Burst:      40,
	ExpiryTime: 10 * time.Minute,
}

// MemoryStore keeps one token bucket per key in process memory. Buckets idle
// for longer than the expiry are dropped, and at most size keys are tracked.
type MemoryStore struct {
	rate    float64
	burst   int
	mu      sync.Mutex
	buckets *expirable.LRU[string, *TokenBucket]
}

// NewMemoryStore creates an in-memory limiter store
func NewMemoryStore(rate float64, burst int, expiry time.Duration) *MemoryStore {
	return &MemoryStore{
		rate:    rate,
		burst:   burst,
		buckets: expirable.NewLRU[string, *TokenBucket](DefaultMemoryStoreSize, nil, expiry),
	}
}

// DefaultMemoryStoreSize caps the number of keys a MemoryStore tracks.
const DefaultMemoryStoreSize = 10000

// Allow implements LimiterStore
func (s *MemoryStore) Allow(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	bucket, ok := s.buckets.Get(key)
	if !ok {
		bucket = NewTokenBucket(s.rate, s.burst)
	}
	// Re-adding restarts the idle timer.
	s.buckets.Add(key, bucket)
	s.mu.Unlock()

	return bucket.Allow(), nil
}

// Len returns the number of tracked keys
func (s *MemoryStore) Len() int {
	return s.buckets.Len()
}

// RedisStore counts requests per key in one-second windows shared by every
// server instance.
type RedisStore struct {
	Redis services.InterfaceRedisService
	Limit int
}

// NewRedisStore allows the larger of burst and rate requests per second
func NewRedisStore(redis services.InterfaceRedisService, rate float64, burst int) *RedisStore {
	limit := burst
	if r := int(math.Ceil(rate)); r > limit {
		limit = r
	}
	return &RedisStore{Redis: redis, Limit: limit}
}

// Allow implements LimiterStore
func (s *RedisStore) Allow(ctx context.Context, key string) (bool, error) {
	return s.Redis.Allow(ctx, key, s.Limit, time.Second)
}

// RateLimiter creates the rate limiting middleware
func RateLimiter(config ...RateLimiterConfig) gin.HandlerFunc {
	cfg := DefaultRateLimiterConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRateLimiterConfig.Rate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultRateLimiterConfig.Burst
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	if cfg.Store == nil {
		cfg.Store = NewMemoryStore(cfg.Rate, cfg.Burst, cfg.ExpiryTime)
	}

	return func(c *gin.Context) {
		if c.Request.Method == "OPTIONS" {
			c.Next()
			return
		}

		allowed, err := cfg.Store.Allow(c.Request.Context(), cfg.KeyFunc(c))
		if err != nil {
			// Fail open when the store is unreachable.
			Logger.Warning("rate limiter store: %v", err)
			allowed = true
		}

		if !allowed {
			response.Fail(c, code.ErrTooManyRequests, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// IPRateLimiter limits each client IP with in-memory buckets
func IPRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:       rate,
		Burst:      burst,
		ExpiryTime: DefaultRateLimiterConfig.ExpiryTime,
	})
}
