package ratelimit_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ai-company/internal/config"
	"github.com/feral-file/ai-company/internal/logger"
	"github.com/feral-file/ai-company/internal/mocks"
	"github.com/feral-file/ai-company/internal/ratelimit"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func testConfig() config.RateLimitConfig {
	return config.RateLimitConfig{
		RequestsPerSecond: 1000,
		Burst:             100,
		MaxWorkers:        4,
		MaxQueueSize:      100,
		MaxQueueTime:      time.Second,
	}
}

func TestNewProxy_InvalidConfig_InvalidRPS(t *testing.T) {
	cfg := testConfig()
	cfg.RequestsPerSecond = 0

	p, err := ratelimit.NewProxy(cfg, "asione")
	assert.Error(t, err)
	assert.Nil(t, p)
}

func TestNewProxy_InvalidConfig_NoProviders(t *testing.T) {
	p, err := ratelimit.NewProxy(testConfig())
	assert.Error(t, err)
	assert.Nil(t, p)
}

func TestProxy_Request_Success(t *testing.T) {
	p, err := ratelimit.NewProxy(testConfig(), "asione")
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	result, err := ratelimit.Request(context.Background(), p, "asione", func(ctx context.Context) (string, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
}

func TestProxy_Request_NilProxyRunsDirectly(t *testing.T) {
	result, err := ratelimit.Request(context.Background(), nil, "asione", func(ctx context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestProxy_Request_UnknownProvider(t *testing.T) {
	p, err := ratelimit.NewProxy(testConfig(), "asione")
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	_, err = p.Request(context.Background(), "unknown", func(ctx context.Context) (interface{}, error) {
		return nil, nil
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestProxy_Request_RequestFunctionError(t *testing.T) {
	p, err := ratelimit.NewProxy(testConfig(), "anthropic")
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	boom := errors.New("boom")
	_, err = ratelimit.Request(context.Background(), p, "anthropic", func(ctx context.Context) (string, error) {
		return "", boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestProxy_Request_ProxyClosed(t *testing.T) {
	p, err := ratelimit.NewProxy(testConfig(), "asione")
	require.NoError(t, err)
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())

	_, err = p.Request(context.Background(), "asione", func(ctx context.Context) (interface{}, error) {
		return nil, nil
	})
	assert.ErrorIs(t, err, ratelimit.ErrProxyClosed)
}

func TestProxy_Request_ContextCanceled(t *testing.T) {
	cfg := testConfig()
	cfg.RequestsPerSecond = 0.001
	cfg.Burst = 1
	p, err := ratelimit.NewProxy(cfg, "asione")
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	// Drain the only token
	_, err = p.Request(context.Background(), "asione", func(ctx context.Context) (interface{}, error) {
		return nil, nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var called atomic.Bool
	_, err = p.Request(ctx, "asione", func(ctx context.Context) (interface{}, error) {
		called.Store(true)
		return nil, nil
	})
	assert.Error(t, err)
	assert.False(t, called.Load())
}

func TestProxy_Request_QueueTimeout(t *testing.T) {
	cfg := testConfig()
	cfg.RequestsPerSecond = 0.001
	cfg.Burst = 1
	cfg.MaxQueueTime = 20 * time.Millisecond
	p, err := ratelimit.NewProxy(cfg, "asione")
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	_, err = p.Request(context.Background(), "asione", func(ctx context.Context) (interface{}, error) {
		return nil, nil
	})
	require.NoError(t, err)

	_, err = p.Request(context.Background(), "asione", func(ctx context.Context) (interface{}, error) {
		return nil, nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "queue time exceeded")
}

func TestProxy_Request_Concurrent(t *testing.T) {
	p, err := ratelimit.NewProxy(testConfig(), "asione")
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	var (
		wg        sync.WaitGroup
		completed atomic.Int32
	)
	for i := range 20 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := ratelimit.Request(context.Background(), p, "asione", func(ctx context.Context) (int, error) {
				return i, nil
			})
			if assert.NoError(t, err) {
				assert.Equal(t, i, v)
				completed.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(20), completed.Load())
}

func TestDistributedProxy_WaitsForSharedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dl := mocks.NewMockDistributedLimiter(ctrl)
	clock := mocks.NewMockClock(ctrl)

	cfg := testConfig()
	cfg.RedisKeyPrefix = "test:"

	tick := make(chan time.Time, 1)
	tick <- time.Now()

	gomock.InOrder(
		dl.EXPECT().Allow(gomock.Any(), "test:asione", 1000).Return(false, 50*time.Millisecond, nil),
		clock.EXPECT().After(50*time.Millisecond).Return(tick),
		dl.EXPECT().Allow(gomock.Any(), "test:asione", 1000).Return(true, time.Duration(0), nil),
	)
	dl.EXPECT().Close().Return(nil)

	p, err := ratelimit.NewDistributedProxy(cfg, dl, clock, "asione")
	require.NoError(t, err)

	result, err := ratelimit.Request(context.Background(), p, "asione", func(ctx context.Context) (string, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	require.NoError(t, p.Close())
}

func TestDistributedProxy_RedisErrorFallsBackToLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dl := mocks.NewMockDistributedLimiter(ctrl)
	dl.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, time.Duration(0), errors.New("connection refused"))
	dl.EXPECT().Close().Return(nil)

	p, err := ratelimit.NewDistributedProxy(testConfig(), dl, mocks.NewMockClock(ctrl), "anthropic")
	require.NoError(t, err)

	result, err := ratelimit.Request(context.Background(), p, "anthropic", func(ctx context.Context) (int, error) {
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, result)
	require.NoError(t, p.Close())
}

func TestDistributedProxy_FractionalRateRoundsUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.RequestsPerSecond = 0.5
	cfg.Burst = 1

	dl := mocks.NewMockDistributedLimiter(ctrl)
	dl.EXPECT().Allow(gomock.Any(), gomock.Any(), 1).Return(true, time.Duration(0), nil)
	dl.EXPECT().Close().Return(nil)

	p, err := ratelimit.NewDistributedProxy(cfg, dl, mocks.NewMockClock(ctrl), "asione")
	require.NoError(t, err)
	defer func() { _ = p.Close() }()

	_, err = p.Request(context.Background(), "asione", func(ctx context.Context) (interface{}, error) {
		return nil, nil
	})
	require.NoError(t, err)
}
