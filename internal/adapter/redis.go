package adapter

import (
	"context"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

// DistributedLimiter is a per-second token bucket kept in Redis and shared by every process
//
//go:generate mockgen -source=redis.go -destination=../mocks/redis.go -package=mocks -mock_names=DistributedLimiter=MockDistributedLimiter
type DistributedLimiter interface {
	// Allow takes one token from the bucket stored under key.
	// When the bucket is empty it returns false with the time until the next token.
	Allow(ctx context.Context, key string, perSecond int) (bool, time.Duration, error)

	// Ping checks if Redis is reachable
	Ping(ctx context.Context) error

	// Close closes the Redis connection
	Close() error
}

type redisLimiter struct {
	client  *redis.Client
	limiter *redis_rate.Limiter
}

// NewRedisLimiter connects a DistributedLimiter to the Redis server at addr
func NewRedisLimiter(addr, password string, db int) DistributedLimiter {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &redisLimiter{
		client:  client,
		limiter: redis_rate.NewLimiter(client),
	}
}

func (r *redisLimiter) Allow(ctx context.Context, key string, perSecond int) (bool, time.Duration, error) {
	res, err := r.limiter.Allow(ctx, key, redis_rate.PerSecond(perSecond))
	if err != nil {
		return false, 0, err
	}
	return res.Allowed > 0, res.RetryAfter, nil
}

func (r *redisLimiter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisLimiter) Close() error {
	return r.client.Close()
}
