package sweeper

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ai-company/internal/adapter"
	"github.com/feral-file/ai-company/internal/domain"
	"github.com/feral-file/ai-company/internal/logger"
	"github.com/feral-file/ai-company/internal/messaging"
	"github.com/feral-file/ai-company/internal/store"
)

const (
	DEFAULT_SWEEP_INTERVAL    = 15 * time.Second
	DEFAULT_BATCH_SIZE        = 50
	DEFAULT_WORKER_POOL_SIZE  = 4
	DEFAULT_RETRY_MAX_ELAPSED = 30 * time.Second
)

// LaunchSweeperConfig holds configuration for the launch sweeper
type LaunchSweeperConfig struct {
	Interval        time.Duration // Time to sleep between sweep cycles
	BatchSize       int           // Listings launched per cycle
	WorkerPoolSize  int           // Concurrent launches
	RetryMaxElapsed time.Duration // Retry budget of a single launch
}

// launchSweeper launches listings whose launch date has passed.
// It covers launch timers that were never scheduled or were lost.
type launchSweeper struct {
	config    LaunchSweeperConfig
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
	pool      pond.Pool
	running   atomic.Bool
	stopOnce  sync.Once
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewLaunchSweeper creates a new launch sweeper
func NewLaunchSweeper(config LaunchSweeperConfig, st store.Store, publisher messaging.Publisher, clock adapter.Clock) Sweeper {
	if config.Interval <= 0 {
		config.Interval = DEFAULT_SWEEP_INTERVAL
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DEFAULT_BATCH_SIZE
	}
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = DEFAULT_WORKER_POOL_SIZE
	}
	if config.RetryMaxElapsed <= 0 {
		config.RetryMaxElapsed = DEFAULT_RETRY_MAX_ELAPSED
	}

	return &launchSweeper{
		config:    config,
		store:     st,
		publisher: publisher,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *launchSweeper) Name() string {
	return "launch-sweeper"
}

// Start runs sweep cycles until the context is canceled or Stop is called
func (s *launchSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting launch sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)
	defer s.pool.StopAndWait()

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Launch sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Launch sweeper stop requested")
			return nil
		default:
		}

		if err := s.runSweepCycle(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err)
		}

		if !s.sleep(ctx, s.config.Interval) {
			return nil
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *launchSweeper) Stop(ctx context.Context) error {
	if !s.running.Load() {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping launch sweeper")
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Launch sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Launch sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle launches every due listing of one batch
func (s *launchSweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()

	listings, err := s.store.ListDueListings(ctx, startTime, s.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list due listings: %w", err)
	}
	if len(listings) == 0 {
		logger.DebugCtx(ctx, "No listings due for launch")
		return nil
	}

	logger.InfoCtx(ctx, "Found listings due for launch", zap.Int("count", len(listings)))

	var launched, skipped, failed atomic.Int32

	group := s.pool.NewGroup()
	for _, listing := range listings {
		id := listing.ID
		group.Submit(func() {
			result, err := s.launchWithRetry(ctx, id)
			switch {
			case err != nil:
				failed.Add(1)
				logger.ErrorCtx(ctx, err, zap.Uint64("listingID", id))
			case result.AlreadyLaunched:
				skipped.Add(1)
			default:
				launched.Add(1)
				s.publishLaunch(ctx, result)
			}
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int("due", len(listings)),
		zap.Int32("launched", launched.Load()),
		zap.Int32("already_launched", skipped.Load()),
		zap.Int32("failed", failed.Load()),
	)

	return nil
}

// launchWithRetry launches a listing, retrying database errors with exponential backoff
func (s *launchSweeper) launchWithRetry(ctx context.Context, listingID uint64) (*store.LaunchResult, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = s.config.RetryMaxElapsed

	var result *store.LaunchResult
	operation := func() error {
		var err error
		result, err = s.store.LaunchListing(ctx, listingID, s.clock.Now())
		if errors.Is(err, domain.ErrListingNotFound) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, next time.Duration) {
		logger.WarnCtx(ctx, "Launch failed, retrying",
			zap.Uint64("listingID", listingID),
			zap.Error(err),
			zap.Duration("next_retry_in", next),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify); err != nil {
		return nil, fmt.Errorf("failed to launch listing %d: %w", listingID, err)
	}
	return result, nil
}

func (s *launchSweeper) publishLaunch(ctx context.Context, result *store.LaunchResult) {
	logger.InfoCtx(ctx, "Listing launched by sweeper",
		zap.Uint64("listingID", result.Company.CEOAgentID),
		zap.Uint64("companyID", result.Company.ID),
	)

	err := s.publisher.PublishEvent(ctx, &domain.Event{
		Type:      domain.EventTypeListingLaunched,
		Subject:   strconv.FormatUint(result.Company.ID, 10),
		Data:      result.Company,
		Timestamp: s.clock.Now(),
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to publish launch event", zap.Error(err))
	}
}

// sleep returns false when interrupted by cancellation or stop
func (s *launchSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
