package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"propertyops-http-service/internal/infrastructure/config"
)

// InterfaceRedisService defines the Redis service interface
type InterfaceRedisService interface {
	Ping(ctx context.Context) error
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	Close() error
}

// RedisService keeps request counters shared by every server instance.
type RedisService struct {
	Client *redis.Client
	Prefix string
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Prefix: "propertyops:ratelimit:",
	}
}

// 1 Ping checks the connection
func (s *RedisService) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx).Err()
}

// 2 Allow counts one hit for key in the current fixed window and reports
// whether the count is still within limit.
func (s *RedisService) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	bucket := time.Now().UnixNano() / int64(window)
	redisKey := fmt.Sprintf("%s%s:%d", s.Prefix, key, bucket)

	pipe := s.Client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= int64(limit), nil
}

// 3 Close releases the client's connections
func (s *RedisService) Close() error {
	return s.Client.Close()
}
