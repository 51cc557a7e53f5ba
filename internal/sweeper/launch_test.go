package sweeper_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ai-company/internal/domain"
	"github.com/feral-file/ai-company/internal/logger"
	"github.com/feral-file/ai-company/internal/mocks"
	"github.com/feral-file/ai-company/internal/store"
	"github.com/feral-file/ai-company/internal/store/schema"
	"github.com/feral-file/ai-company/internal/sweeper"
)

// testSweeperMocks contains all the mocks needed for testing the sweeper
type testSweeperMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
	sweeper   sweeper.Sweeper
}

// setupTestSweeper creates all the mocks and sweeper for testing
func setupTestSweeper(t *testing.T) *testSweeperMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testSweeperMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}

	tm.sweeper = sweeper.NewLaunchSweeper(sweeper.LaunchSweeperConfig{
		Interval:        time.Second,
		BatchSize:       10,
		WorkerPoolSize:  2,
		RetryMaxElapsed: 5 * time.Second,
	}, tm.store, tm.publisher, tm.clock)

	return tm
}

// tearDownTestSweeper cleans up the test mocks
func tearDownTestSweeper(mocks *testSweeperMocks) {
	mocks.ctrl.Finish()
}

// expectClock makes After fire shortly so cycles repeat quickly
func expectClock(m *testSweeperMocks, now time.Time) {
	m.clock.EXPECT().Now().Return(now).AnyTimes()
	m.clock.EXPECT().Since(now).Return(time.Millisecond).AnyTimes()
	m.clock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		go func() {
			time.Sleep(20 * time.Millisecond)
			ch <- time.Now()
		}()
		return ch
	}).AnyTimes()
}

// runFor starts the sweeper and stops it after the given duration
func runFor(t *testing.T, s sweeper.Sweeper, d time.Duration) {
	ctx := context.Background()
	go func() {
		time.Sleep(d)
		_ = s.Stop(ctx)
	}()
	require.NoError(t, s.Start(ctx))
}

func TestLaunchSweeper_Name(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	assert.Equal(t, "launch-sweeper", mocks.sweeper.Name())
}

func TestLaunchSweeper_LaunchesDueListings(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	expectClock(mocks, now)

	gomock.InOrder(
		mocks.store.EXPECT().
			ListDueListings(gomock.Any(), now, 10).
			Return([]schema.CEOAgent{{ID: 1}, {ID: 2}}, nil).
			Times(1),
		mocks.store.EXPECT().
			ListDueListings(gomock.Any(), now, 10).
			Return([]schema.CEOAgent{}, nil).
			AnyTimes(),
	)

	mocks.store.EXPECT().
		LaunchListing(gomock.Any(), uint64(1), now).
		Return(&store.LaunchResult{Company: schema.Company{ID: 10, CEOAgentID: 1}}, nil)
	mocks.store.EXPECT().
		LaunchListing(gomock.Any(), uint64(2), now).
		Return(&store.LaunchResult{Company: schema.Company{ID: 11, CEOAgentID: 2}, AlreadyLaunched: true}, nil)

	// Only the fresh launch is published
	mocks.publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.Event) error {
			assert.Equal(t, domain.EventTypeListingLaunched, event.Type)
			assert.Equal(t, "10", event.Subject)
			return nil
		}).
		Times(1)

	runFor(t, mocks.sweeper, 200*time.Millisecond)
}

func TestLaunchSweeper_RetriesTransientError(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	expectClock(mocks, now)

	gomock.InOrder(
		mocks.store.EXPECT().
			ListDueListings(gomock.Any(), now, 10).
			Return([]schema.CEOAgent{{ID: 1}}, nil).
			Times(1),
		mocks.store.EXPECT().
			ListDueListings(gomock.Any(), now, 10).
			Return(nil, nil).
			AnyTimes(),
	)

	gomock.InOrder(
		mocks.store.EXPECT().
			LaunchListing(gomock.Any(), uint64(1), now).
			Return(nil, errors.New("connection reset")),
		mocks.store.EXPECT().
			LaunchListing(gomock.Any(), uint64(1), now).
			Return(&store.LaunchResult{Company: schema.Company{ID: 10, CEOAgentID: 1}}, nil),
	)

	mocks.publisher.EXPECT().PublishEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	runFor(t, mocks.sweeper, 100*time.Millisecond)
}

func TestLaunchSweeper_ListingNotFoundIsNotRetried(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	expectClock(mocks, now)

	gomock.InOrder(
		mocks.store.EXPECT().
			ListDueListings(gomock.Any(), now, 10).
			Return([]schema.CEOAgent{{ID: 7}}, nil).
			Times(1),
		mocks.store.EXPECT().
			ListDueListings(gomock.Any(), now, 10).
			Return(nil, nil).
			AnyTimes(),
	)

	mocks.store.EXPECT().
		LaunchListing(gomock.Any(), uint64(7), now).
		Return(nil, domain.ErrListingNotFound).
		Times(1)

	runFor(t, mocks.sweeper, 150*time.Millisecond)
}

func TestLaunchSweeper_ListErrorKeepsRunning(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	expectClock(mocks, now)

	gomock.InOrder(
		mocks.store.EXPECT().
			ListDueListings(gomock.Any(), now, 10).
			Return(nil, errors.New("database unavailable")).
			Times(1),
		mocks.store.EXPECT().
			ListDueListings(gomock.Any(), now, 10).
			Return(nil, nil).
			MinTimes(1),
	)

	runFor(t, mocks.sweeper, 150*time.Millisecond)
}

func TestLaunchSweeper_StartTwice(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	expectClock(mocks, now)
	mocks.store.EXPECT().ListDueListings(gomock.Any(), now, 10).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- mocks.sweeper.Start(ctx)
	}()
	time.Sleep(50 * time.Millisecond)

	err := mocks.sweeper.Start(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already running")

	cancel()
	require.NoError(t, <-done)
}

func TestLaunchSweeper_StopWhenNotRunning(t *testing.T) {
	mocks := setupTestSweeper(t)
	defer tearDownTestSweeper(mocks)

	require.NoError(t, mocks.sweeper.Stop(context.Background()))
}
