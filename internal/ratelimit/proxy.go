package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/feral-file/ai-company/internal/adapter"
	"github.com/feral-file/ai-company/internal/config"
	"github.com/feral-file/ai-company/internal/logger"
)

// ErrProxyClosed is returned for requests submitted after Close
var ErrProxyClosed = errors.New("proxy is closed")

// RequestFunc is a function that performs the actual API request
type RequestFunc func(ctx context.Context) (interface{}, error)

// requestResult wraps the result and error of a request
type requestResult struct {
	value interface{}
	err   error
}

// Proxy defines the interface for rate-limiting proxy
//
//go:generate mockgen -source=proxy.go -destination=../mocks/ratelimit_proxy.go -package=mocks -mock_names=Proxy=MockRateLimitProxy
type Proxy interface {
	// Request submits a rate-limited request for execution
	Request(ctx context.Context, providerName string, fn RequestFunc) (interface{}, error)

	// Close gracefully shuts down the proxy
	Close() error
}

// proxy bounds concurrency with a worker pool and request rate with one token bucket per provider.
// The local bucket always applies; the distributed one, when present, is shared across processes.
type proxy struct {
	config      config.RateLimitConfig
	pool        pond.ResultPool[*requestResult]
	limiters    map[string]*rate.Limiter
	distributed adapter.DistributedLimiter
	clock       adapter.Clock
	closed      atomic.Bool
	closeOnce   sync.Once
}

// New builds the proxy described by cfg, sharing the budget through Redis when RedisAddr is set.
// An unreachable Redis at startup is an error.
func New(ctx context.Context, cfg config.RateLimitConfig, clock adapter.Clock, providers ...string) (Proxy, error) {
	if cfg.RedisAddr == "" {
		return NewDistributedProxy(cfg, nil, clock, providers...)
	}

	dl := adapter.NewRedisLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := dl.Ping(pingCtx); err != nil {
		_ = dl.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}

	p, err := NewDistributedProxy(cfg, dl, clock, providers...)
	if err != nil {
		_ = dl.Close()
		return nil, err
	}
	return p, nil
}

// NewProxy creates a process-local rate-limiting proxy for the given providers
func NewProxy(cfg config.RateLimitConfig, providers ...string) (Proxy, error) {
	return NewDistributedProxy(cfg, nil, adapter.NewClock(), providers...)
}

// NewDistributedProxy creates a proxy whose per-second budget is also enforced by dl.
// A nil dl gives a process-local proxy.
func NewDistributedProxy(cfg config.RateLimitConfig, dl adapter.DistributedLimiter, clock adapter.Clock, providers ...string) (Proxy, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if len(providers) == 0 {
		return nil, fmt.Errorf("at least one provider must be configured")
	}

	limiters := make(map[string]*rate.Limiter, len(providers))
	for _, name := range providers {
		limiters[name] = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	}

	pool := pond.NewResultPool[*requestResult](
		cfg.MaxWorkers,
		pond.WithQueueSize(cfg.MaxQueueSize),
	)

	logger.Info("Rate limit proxy initialized",
		zap.Int("max_workers", cfg.MaxWorkers),
		zap.Int("max_queue_size", cfg.MaxQueueSize),
		zap.Float64("requests_per_second", cfg.RequestsPerSecond),
		zap.Strings("providers", providers),
		zap.Bool("distributed", dl != nil),
	)

	return &proxy{
		config:      cfg,
		pool:        pool,
		limiters:    limiters,
		distributed: dl,
		clock:       clock,
	}, nil
}

// Request submits a rate-limited request for execution and returns the result with type safety
func Request[T any](ctx context.Context, p Proxy, providerName string, fn func(ctx context.Context) (T, error)) (T, error) {
	// If proxy is nil, execute the function directly
	if p == nil {
		return fn(ctx)
	}

	var zero T
	result, err := p.Request(ctx, providerName, func(ctx context.Context) (interface{}, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}
	return result.(T), nil
}

// Request submits a rate-limited request for execution.
// The function blocks until:
// 1. A token is acquired and the request completes
// 2. The context is canceled
// 3. The maximum queue time is exceeded while waiting for a token
func (p *proxy) Request(ctx context.Context, providerName string, fn RequestFunc) (interface{}, error) {
	if p.closed.Load() {
		return nil, ErrProxyClosed
	}

	limiter, ok := p.limiters[providerName]
	if !ok {
		return nil, fmt.Errorf("provider '%s' not configured", providerName)
	}

	resultTask := p.pool.Submit(func() *requestResult {
		queueCtx, cancel := context.WithTimeout(ctx, p.config.MaxQueueTime)
		err := limiter.Wait(queueCtx)
		if err == nil {
			err = p.acquireDistributed(queueCtx, providerName)
		}
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return &requestResult{err: ctx.Err()}
			}
			return &requestResult{err: fmt.Errorf("rate limit queue time exceeded: %w", err)}
		}

		// No timeout wrapper here, the HTTP adapter carries its own
		value, err := fn(ctx)
		return &requestResult{value: value, err: err}
	})

	result, err := resultTask.Wait()
	if err != nil {
		return nil, err
	}
	if result.err != nil {
		return nil, result.err
	}
	return result.value, nil
}

// acquireDistributed waits for a token from the shared bucket of the provider.
// A Redis failure degrades to the local bucket alone.
func (p *proxy) acquireDistributed(ctx context.Context, providerName string) error {
	if p.distributed == nil {
		return nil
	}

	key := p.config.RedisKeyPrefix + providerName
	perSecond := max(int(math.Ceil(p.config.RequestsPerSecond)), 1)
	for {
		allowed, retryAfter, err := p.distributed.Allow(ctx, key, perSecond)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Warn("Distributed rate limiter unavailable, using local limit only",
				zap.String("provider", providerName),
				zap.Error(err),
			)
			return nil
		}
		if allowed {
			return nil
		}

		if retryAfter <= 0 {
			retryAfter = 10 * time.Millisecond
		}
		logger.Debug("Shared rate limit reached, waiting",
			zap.String("provider", providerName),
			zap.Duration("retry_after", retryAfter),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-p.clock.After(retryAfter):
		}
	}
}

// Close gracefully shuts down the proxy, waiting for in-flight requests
func (p *proxy) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.closed.Store(true)

		logger.Info("Shutting down rate limit proxy")

		if errTasks := p.pool.Stop().Wait(); errTasks != nil {
			logger.Warn("Error waiting for pool tasks to complete", zap.Error(errTasks))
			err = errTasks
		}

		if p.distributed != nil {
			if closeErr := p.distributed.Close(); closeErr != nil {
				logger.Warn("Error closing distributed limiter", zap.Error(closeErr))
			}
		}

		logger.Info("Rate limit proxy shutdown complete")
	})
	return err
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *config.RateLimitConfig) error {
	if cfg.RequestsPerSecond <= 0 {
		return fmt.Errorf("requests_per_second must be positive")
	}

	if cfg.Burst <= 0 {
		cfg.Burst = max(int(cfg.RequestsPerSecond), 1)
	}

	if cfg.MaxQueueTime <= 0 {
		cfg.MaxQueueTime = 5 * time.Minute
	}

	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = runtime.NumCPU() * 2
	}

	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 1000
	}

	return nil
}
