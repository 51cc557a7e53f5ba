package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/feral-file/ai-company/internal/domain"
	"github.com/feral-file/ai-company/internal/store/schema"
)

// StoreTestSuite provides the interface for running store tests against different implementations
type StoreTestSuite struct {
	Store Store
	// InitDB should be called before each test to initialize the database
	InitDB func(t *testing.T) Store
	// CleanupDB should be called after each test to clean up the database
	CleanupDB func(t *testing.T)
}

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestListing creates a listing input with the default token economics
func buildTestListing(symbol string) CreateListingInput {
	return CreateListingInput{
		Name:               "Test CEO",
		CompanyIdea:        "AI powered pet care",
		Description:        "A CEO agent that runs a pet care company",
		CEOCharacteristics: "Decisive, data driven",
		CreatorWallet:      "token_holder_creator",
		TokenSymbol:        symbol,
		TotalTokens:        domain.DEFAULT_TOTAL_TOKENS,
		PricePerToken:      domain.DEFAULT_PRICE_PER_TOKEN,
		LaunchTimeline:     domain.DEFAULT_LAUNCH_TIMELINE_MINUTES,
		LaunchDate:         time.Now().UTC().Add(domain.DEFAULT_LAUNCH_TIMELINE_MINUTES * time.Minute).Truncate(time.Microsecond),
		TimeDuration:       domain.DEFAULT_LAUNCH_TIMELINE_MINUTES,
	}
}

// uniqueSymbol returns a token symbol unlikely to collide with rows committed by other tests
func uniqueSymbol(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, time.Now().UnixNano()%1_000_000_000)
}

func mustJSON(t *testing.T, v any) datatypes.JSON {
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return datatypes.JSON(b)
}

// =============================================================================
// Stage outputs & activities
// =============================================================================

func testCreateIdeas(t *testing.T, store Store) {
	ctx := context.Background()

	ideas := []schema.Idea{
		{Title: "Pet AI", Description: "Smart feeding", PotentialRevenue: "Subscription"},
		{Title: "Plant AI", Description: "Watering assistant", PotentialRevenue: "Ads", Fallback: true},
	}
	require.NoError(t, store.CreateIdeas(ctx, ideas))
	assert.NotZero(t, ideas[0].ID)
	assert.NotZero(t, ideas[1].ID)
	assert.NotEqual(t, ideas[0].ID, ideas[1].ID)

	require.NoError(t, store.CreateIdeas(ctx, nil))

	research := &schema.Research{
		IdeaID:       &ideas[0].ID,
		ResearchData: mustJSON(t, domain.Research{Recommendations: domain.StringList{"Focus on cats"}}),
	}
	require.NoError(t, store.CreateResearch(ctx, research))
	assert.NotZero(t, research.ID)

	product := &schema.Product{
		IdeaID:       &ideas[0].ID,
		ProductName:  "PetPal",
		Features:     mustJSON(t, []domain.Feature{{Name: "Schedules"}}),
		TargetMarket: mustJSON(t, domain.TargetMarket{PrimaryAudience: "Pet owners"}),
		RevenueModel: "Subscription",
	}
	require.NoError(t, store.CreateProduct(ctx, product))
	assert.NotZero(t, product.ID)

	// Research without a persisted idea
	orphan := &schema.Research{ResearchData: mustJSON(t, map[string]any{"competitors": []any{}})}
	require.NoError(t, store.CreateResearch(ctx, orphan))
}

func testActivities(t *testing.T, store Store) {
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		details := json.RawMessage(fmt.Sprintf(`{"n":%d}`, i))
		require.NoError(t, store.RecordActivity(ctx, "CEO Agent", fmt.Sprintf("action %d", i), details))
	}
	require.NoError(t, store.RecordActivity(ctx, "Research Agent", "no details", nil))

	activities, err := store.ListActivities(ctx, 2)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, "no details", activities[0].Action)
	assert.Equal(t, "action 2", activities[1].Action)
	assert.JSONEq(t, `{"n":2}`, string(activities[1].Details))

	all, err := store.ListActivities(ctx, 0)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(all), 4)
	assert.LessOrEqual(t, len(all), domain.ACTIVITY_FEED_LIMIT)
}

// =============================================================================
// Marketplace
// =============================================================================

func testCreateAndGetListing(t *testing.T, store Store) {
	ctx := context.Background()

	input := buildTestListing("RT1")
	created, err := store.CreateListing(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotZero(t, created.ID)

	got, err := store.GetListing(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.CompanyIdea, got.CompanyIdea)
	assert.Equal(t, input.Description, got.Description)
	assert.Equal(t, input.CEOCharacteristics, got.CEOCharacteristics)
	assert.Equal(t, input.CreatorWallet, got.CreatorWallet)
	assert.Equal(t, input.TokenSymbol, got.TokenSymbol)
	assert.Equal(t, input.TotalTokens, got.TotalTokens)
	assert.Equal(t, input.TotalTokens, got.TokensAvailable)
	assert.InDelta(t, input.PricePerToken, got.PricePerToken, 1e-9)
	assert.Equal(t, input.LaunchTimeline, got.LaunchTimeline)
	assert.Equal(t, input.TimeDuration, got.TimeDuration)
	assert.True(t, input.LaunchDate.Equal(got.LaunchDate))
	assert.Equal(t, string(domain.ListingStatusAvailable), got.Status)

	missing, err := store.GetListing(ctx, created.ID+100000)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func testDuplicateTokenSymbol(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.CreateListing(ctx, buildTestListing("DUP"))
	require.NoError(t, err)

	second := buildTestListing("DUP")
	second.Name = "Second CEO"
	_, err = store.CreateListing(ctx, second)
	assert.ErrorIs(t, err, domain.ErrDuplicateTokenSymbol)

	listings, err := store.ListListings(ctx)
	require.NoError(t, err)
	count := 0
	for _, l := range listings {
		if l.TokenSymbol == "DUP" {
			count++
			assert.Equal(t, "Test CEO", l.Name)
		}
	}
	assert.Equal(t, 1, count)
}

func testListListings(t *testing.T, store Store) {
	ctx := context.Background()

	first, err := store.CreateListing(ctx, buildTestListing("LS1"))
	require.NoError(t, err)
	second, err := store.CreateListing(ctx, buildTestListing("LS2"))
	require.NoError(t, err)

	listings, err := store.ListListings(ctx)
	require.NoError(t, err)

	pos := map[uint64]int{}
	for i, l := range listings {
		pos[l.ID] = i
	}
	require.Contains(t, pos, first.ID)
	require.Contains(t, pos, second.ID)
	assert.Less(t, pos[second.ID], pos[first.ID], "newest listing should come first")
}

func testListDueListings(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	past := buildTestListing("DUE1")
	past.LaunchDate = now.Add(-time.Minute)
	due, err := store.CreateListing(ctx, past)
	require.NoError(t, err)

	future := buildTestListing("DUE2")
	future.LaunchDate = now.Add(time.Hour)
	notDue, err := store.CreateListing(ctx, future)
	require.NoError(t, err)

	listings, err := store.ListDueListings(ctx, now, 0)
	require.NoError(t, err)

	ids := map[uint64]bool{}
	for _, l := range listings {
		ids[l.ID] = true
		assert.False(t, l.LaunchDate.After(now))
	}
	assert.True(t, ids[due.ID])
	assert.False(t, ids[notDue.ID])

	limited, err := store.ListDueListings(ctx, now, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func testBuyTokens(t *testing.T, store Store) {
	ctx := context.Background()

	listing, err := store.CreateListing(ctx, buildTestListing("BUY"))
	require.NoError(t, err)

	t.Run("successful buy decrements availability", func(t *testing.T) {
		purchase, err := store.BuyTokens(ctx, BuyTokensInput{ListingID: listing.ID, Wallet: "token_holder_a", Tokens: 30})
		require.NoError(t, err)
		assert.Equal(t, int64(70), purchase.Listing.TokensAvailable)
		assert.Equal(t, int64(30), purchase.Holding.TokensOwned)
		assert.Equal(t, "token_holder_a", purchase.Holding.UserWallet)
		assert.InDelta(t, 5.0, purchase.Holding.PurchasePrice, 1e-9)

		got, err := store.GetListing(ctx, listing.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(70), got.TokensAvailable)
	})

	t.Run("exceeding availability is rejected", func(t *testing.T) {
		_, err := store.BuyTokens(ctx, BuyTokensInput{ListingID: listing.ID, Wallet: "token_holder_b", Tokens: 80})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInsufficientTokens)

		var insufficient *domain.InsufficientTokensError
		require.True(t, errors.As(err, &insufficient))
		assert.Equal(t, int64(70), insufficient.Available)
		assert.Contains(t, err.Error(), "70")

		got, err := store.GetListing(ctx, listing.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(70), got.TokensAvailable)
	})

	t.Run("buying exactly the remainder", func(t *testing.T) {
		purchase, err := store.BuyTokens(ctx, BuyTokensInput{ListingID: listing.ID, Wallet: "token_holder_b", Tokens: 70})
		require.NoError(t, err)
		assert.Equal(t, int64(0), purchase.Listing.TokensAvailable)

		_, err = store.BuyTokens(ctx, BuyTokensInput{ListingID: listing.ID, Wallet: "token_holder_b", Tokens: 1})
		assert.ErrorIs(t, err, domain.ErrInsufficientTokens)
	})

	t.Run("non positive quantity", func(t *testing.T) {
		_, err := store.BuyTokens(ctx, BuyTokensInput{ListingID: listing.ID, Wallet: "token_holder_b", Tokens: 0})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown listing", func(t *testing.T) {
		_, err := store.BuyTokens(ctx, BuyTokensInput{ListingID: listing.ID + 100000, Wallet: "token_holder_b", Tokens: 1})
		assert.ErrorIs(t, err, domain.ErrListingNotFound)
	})

	holdings, err := store.GetHoldingsByCEOAgentID(ctx, listing.ID)
	require.NoError(t, err)
	require.Len(t, holdings, 2)
	var total int64
	for _, h := range holdings {
		total += h.TokensOwned
	}
	assert.Equal(t, listing.TotalTokens, total)
}

func testLaunchListing(t *testing.T, store Store) {
	ctx := context.Background()
	launchedAt := time.Now().UTC().Truncate(time.Microsecond)

	listing, err := store.CreateListing(ctx, buildTestListing("LCH"))
	require.NoError(t, err)
	_, err = store.BuyTokens(ctx, BuyTokensInput{ListingID: listing.ID, Wallet: "token_holder_a", Tokens: 10})
	require.NoError(t, err)

	first, err := store.LaunchListing(ctx, listing.ID, launchedAt)
	require.NoError(t, err)
	assert.False(t, first.AlreadyLaunched)
	assert.Equal(t, "Test CEO Company", first.Company.Name)
	assert.Equal(t, "Test CEO", first.Company.CEOAgentName)
	assert.Equal(t, string(domain.CompanyStatusRunning), first.Company.Status)
	assert.Equal(t, listing.ID, first.Company.CEOAgentID)
	assert.Equal(t, "LCH", first.Company.TokenSymbol)
	assert.Zero(t, first.Company.CurrentRevenue)

	// The listing is gone
	gone, err := store.GetListing(ctx, listing.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// Second launch returns the same company
	second, err := store.LaunchListing(ctx, listing.ID, launchedAt.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, second.AlreadyLaunched)
	assert.Equal(t, first.Company.ID, second.Company.ID)

	companies, err := store.ListCompanies(ctx)
	require.NoError(t, err)
	count := 0
	for _, c := range companies {
		if c.CEOAgentID == listing.ID {
			count++
		}
	}
	assert.Equal(t, 1, count)

	company, err := store.GetCompany(ctx, first.Company.ID)
	require.NoError(t, err)
	require.NotNil(t, company)
	assert.True(t, launchedAt.Equal(company.LaunchedDate))

	// Holdings survive the launch
	holdings, err := store.GetHoldingsByCEOAgentID(ctx, listing.ID)
	require.NoError(t, err)
	assert.Len(t, holdings, 1)

	// Buying after launch fails with not found
	_, err = store.BuyTokens(ctx, BuyTokensInput{ListingID: listing.ID, Wallet: "token_holder_a", Tokens: 1})
	assert.ErrorIs(t, err, domain.ErrListingNotFound)

	// Launching a listing that never existed
	_, err = store.LaunchListing(ctx, listing.ID+100000, launchedAt)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)

	missing, err := store.GetCompany(ctx, first.Company.ID+100000)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

// testEndToEndScenario walks a listing from creation to launch
func testEndToEndScenario(t *testing.T, store Store) {
	ctx := context.Background()

	input := buildTestListing("ABC")
	input.TotalTokens = 100
	input.PricePerToken = 5.00
	listing, err := store.CreateListing(ctx, input)
	require.NoError(t, err)

	_, err = store.BuyTokens(ctx, BuyTokensInput{ListingID: listing.ID, Wallet: "token_holder_1", Tokens: 30})
	require.NoError(t, err)

	got, err := store.GetListing(ctx, listing.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(70), got.TokensAvailable)

	_, err = store.BuyTokens(ctx, BuyTokensInput{ListingID: listing.ID, Wallet: "token_holder_1", Tokens: 80})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "70")

	launched, err := store.LaunchListing(ctx, listing.ID, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, "running", launched.Company.Status)

	got, err = store.GetListing(ctx, listing.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func testPortfolio(t *testing.T, store Store) {
	ctx := context.Background()
	wallet := "token_holder_portfolio"

	open, err := store.CreateListing(ctx, buildTestListing("PF1"))
	require.NoError(t, err)
	launched, err := store.CreateListing(ctx, buildTestListing("PF2"))
	require.NoError(t, err)

	for _, buy := range []BuyTokensInput{
		{ListingID: open.ID, Wallet: wallet, Tokens: 5},
		{ListingID: open.ID, Wallet: wallet, Tokens: 3},
		{ListingID: launched.ID, Wallet: wallet, Tokens: 2},
		{ListingID: launched.ID, Wallet: "someone_else", Tokens: 4},
	} {
		_, err := store.BuyTokens(ctx, buy)
		require.NoError(t, err)
	}

	result, err := store.LaunchListing(ctx, launched.ID, time.Now().UTC())
	require.NoError(t, err)

	portfolio, err := store.GetPortfolio(ctx, wallet)
	require.NoError(t, err)
	assert.Equal(t, wallet, portfolio.Wallet)
	require.Len(t, portfolio.Holdings, 2)
	assert.Equal(t, int64(10), portfolio.TotalTokens)
	assert.InDelta(t, 50.0, portfolio.TotalInvested, 1e-9)

	byAgent := map[uint64]PortfolioHolding{}
	for _, h := range portfolio.Holdings {
		byAgent[h.CEOAgentID] = h
	}

	assert.Equal(t, int64(8), byAgent[open.ID].TokensOwned)
	assert.Equal(t, "available", byAgent[open.ID].Status)
	assert.Equal(t, "PF1", byAgent[open.ID].TokenSymbol)
	assert.Nil(t, byAgent[open.ID].CompanyID)

	assert.Equal(t, int64(2), byAgent[launched.ID].TokensOwned)
	assert.Equal(t, "running", byAgent[launched.ID].Status)
	require.NotNil(t, byAgent[launched.ID].CompanyID)
	assert.Equal(t, result.Company.ID, *byAgent[launched.ID].CompanyID)
	assert.Equal(t, "Test CEO Company", byAgent[launched.ID].CompanyName)

	empty, err := store.GetPortfolio(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty.Holdings)
	assert.Zero(t, empty.TotalTokens)
}

func testRecordRevenue(t *testing.T, store Store) {
	ctx := context.Background()

	listing, err := store.CreateListing(ctx, buildTestListing("REV"))
	require.NoError(t, err)
	launched, err := store.LaunchListing(ctx, listing.ID, time.Now().UTC())
	require.NoError(t, err)
	companyID := launched.Company.ID

	distribution := domain.Distribution{
		Total:        100,
		CompanyShare: 80,
		HolderShare:  20,
		Payouts:      []domain.Payout{{Wallet: "token_holder_a", Tokens: 10, Amount: 20}},
	}

	for i := 0; i < 2; i++ {
		recorded, err := store.RecordRevenue(ctx, RecordRevenueInput{
			CompanyID:    &companyID,
			Distribution: distribution,
			ReceiptHash:  "0xreceipt",
		})
		require.NoError(t, err)
		assert.NotZero(t, recorded.ID)
		assert.JSONEq(t, `[{"wallet":"token_holder_a","tokens":10,"amount":20}]`, string(recorded.Payouts))
	}

	company, err := store.GetCompany(ctx, companyID)
	require.NoError(t, err)
	assert.InDelta(t, 200.0, company.CurrentRevenue, 1e-9)

	missing := companyID + 100000
	_, err = store.RecordRevenue(ctx, RecordRevenueInput{CompanyID: &missing, Distribution: distribution, ReceiptHash: "0x"})
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}

// =============================================================================
// Pipeline runs
// =============================================================================

func testPipelineRuns(t *testing.T, store Store) {
	ctx := context.Background()

	run := &schema.PipelineRun{
		ID:        "01JAAAAAAAAAAAAAAAAAAAAAAA",
		State:     domain.PipelineStateIdeaPending,
		IdeaCount: 3,
		Ideas:     mustJSON(t, []domain.Idea{{Title: "A", Description: "a"}}),
		Idea:      mustJSON(t, domain.Idea{Title: "A", Description: "a"}),
	}
	require.NoError(t, store.CreatePipelineRun(ctx, run))
	require.NoError(t, store.SetPipelineWorkflowID(ctx, run.ID, "company-pipeline-"+run.ID))
	assert.ErrorIs(t, store.SetPipelineWorkflowID(ctx, "missing", "x"), domain.ErrPipelineRunNotFound)

	got, err := store.GetPipelineRun(ctx, run.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "company-pipeline-"+run.ID, got.WorkflowID)
	assert.Equal(t, domain.PipelineStateIdeaPending, got.State)

	// Approve the idea
	updated, err := store.ApplyPipelineTransition(ctx, ApplyTransitionInput{
		RunID:   run.ID,
		From:    domain.PipelineStateIdeaPending,
		To:      domain.PipelineStateResearching,
		Trigger: domain.TriggerApproveIdea,
		Actor:   "token_holder_1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PipelineStateResearching, updated.State)
	assert.JSONEq(t, `{"title":"A","description":"a","potential_revenue":""}`, string(updated.Idea))

	// Stale from state is rejected
	_, err = store.ApplyPipelineTransition(ctx, ApplyTransitionInput{
		RunID:   run.ID,
		From:    domain.PipelineStateIdeaPending,
		To:      domain.PipelineStateResearching,
		Trigger: domain.TriggerApproveIdea,
		Actor:   "token_holder_2",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// Research fails
	failed, err := store.ApplyPipelineTransition(ctx, ApplyTransitionInput{
		RunID:       run.ID,
		From:        domain.PipelineStateResearching,
		To:          domain.PipelineStateFailed,
		Trigger:     domain.TriggerStageError,
		Actor:       "system",
		FailedStage: domain.StageResearch,
		Note:        "llm provider error: timeout",
	})
	require.NoError(t, err)
	require.NotNil(t, failed.FailedStage)
	assert.Equal(t, domain.StageResearch, *failed.FailedStage)
	require.NotNil(t, failed.LastError)
	assert.Equal(t, "llm provider error: timeout", *failed.LastError)

	// Resume clears the failure
	resumed, err := store.ApplyPipelineTransition(ctx, ApplyTransitionInput{
		RunID:   run.ID,
		From:    domain.PipelineStateFailed,
		To:      domain.PipelineStateResearching,
		Trigger: domain.TriggerResume,
		Actor:   "token_holder_1",
	})
	require.NoError(t, err)
	assert.Nil(t, resumed.FailedStage)
	assert.Nil(t, resumed.LastError)

	// Research done writes snapshots
	research := domain.Research{Recommendations: domain.StringList{"Go"}}
	done, err := store.ApplyPipelineTransition(ctx, ApplyTransitionInput{
		RunID:       run.ID,
		From:        domain.PipelineStateResearching,
		To:          domain.PipelineStateProductPending,
		Trigger:     domain.TriggerResearchDone,
		Actor:       "system",
		ContentHash: "0xabc",
		Snapshots: PipelineSnapshots{
			Research: mustJSON(t, research),
			Product:  mustJSON(t, domain.Product{ProductName: "P"}),
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, done.Research)
	assert.NotEmpty(t, done.Product)
	assert.NotEmpty(t, done.Idea, "untouched snapshots are kept")

	transitions, err := store.ListPipelineTransitions(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, transitions, 4)
	assert.Equal(t, domain.TriggerApproveIdea, transitions[0].Trigger)
	assert.Equal(t, "token_holder_1", transitions[0].Actor)
	assert.Equal(t, domain.TriggerStageError, transitions[1].Trigger)
	assert.Equal(t, domain.TriggerResume, transitions[2].Trigger)
	assert.Equal(t, "0xabc", transitions[3].ContentHash)

	_, err = store.ApplyPipelineTransition(ctx, ApplyTransitionInput{RunID: "missing", From: "", To: domain.PipelineStateIdeaPending})
	assert.ErrorIs(t, err, domain.ErrPipelineRunNotFound)

	missing, err := store.GetPipelineRun(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, missing)

	// Simulated revenue of the run
	runID := run.ID
	recorded, err := store.RecordRevenue(ctx, RecordRevenueInput{
		PipelineRunID: &runID,
		Distribution:  domain.Distribution{Total: 0.1, CompanyShare: 0.1, Payouts: []domain.Payout{}},
		ReceiptHash:   "0xrun",
	})
	require.NoError(t, err)
	assert.Nil(t, recorded.CompanyID)
	assert.Equal(t, runID, *recorded.PipelineRunID)
}

// =============================================================================
// Concurrency (shared connection, committed rows)
// =============================================================================

func cleanupListing(t *testing.T, db *gorm.DB, listingID uint64) {
	t.Cleanup(func() {
		db.Where("ceo_agent_id = ?", listingID).Delete(&schema.AgentTokenHolding{})
		db.Where("ceo_agent_id = ?", listingID).Delete(&schema.Company{})
		db.Where("id = ?", listingID).Delete(&schema.CEOAgent{})
	})
}

// testConcurrentBuyTokens checks that N buys of q against (N-1)*q available give N-1 successes
func testConcurrentBuyTokens(t *testing.T, store Store, db *gorm.DB) {
	ctx := context.Background()
	const (
		buyers   = 8
		quantity = 5
	)

	input := buildTestListing(uniqueSymbol("CB"))
	input.TotalTokens = (buyers - 1) * quantity
	listing, err := store.CreateListing(ctx, input)
	require.NoError(t, err)
	cleanupListing(t, db, listing.ID)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		rejected  int
		others    []error
	)
	start := make(chan struct{})
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, err := store.BuyTokens(ctx, BuyTokensInput{
				ListingID: listing.ID,
				Wallet:    fmt.Sprintf("token_holder_%d", i),
				Tokens:    quantity,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrInsufficientTokens):
				rejected++
			default:
				others = append(others, err)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	require.Empty(t, others)
	assert.Equal(t, buyers-1, successes)
	assert.Equal(t, 1, rejected)

	got, err := store.GetListing(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.TokensAvailable)

	holdings, err := store.GetHoldingsByCEOAgentID(ctx, listing.ID)
	require.NoError(t, err)
	var sold int64
	for _, h := range holdings {
		sold += h.TokensOwned
	}
	assert.Equal(t, input.TotalTokens, sold)
}

// testConcurrentLaunch checks that racing launches produce exactly one company
func testConcurrentLaunch(t *testing.T, store Store, db *gorm.DB) {
	ctx := context.Background()
	const launchers = 5

	listing, err := store.CreateListing(ctx, buildTestListing(uniqueSymbol("CL")))
	require.NoError(t, err)
	cleanupListing(t, db, listing.ID)

	var wg sync.WaitGroup
	results := make([]*LaunchResult, launchers)
	errs := make([]error, launchers)
	for i := 0; i < launchers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = store.LaunchListing(ctx, listing.ID, time.Now().UTC())
		}(i)
	}
	wg.Wait()

	fresh := 0
	var companyID uint64
	for i := 0; i < launchers; i++ {
		require.NoError(t, errs[i])
		if !results[i].AlreadyLaunched {
			fresh++
		}
		if companyID == 0 {
			companyID = results[i].Company.ID
		}
		assert.Equal(t, companyID, results[i].Company.ID)
	}
	assert.Equal(t, 1, fresh)

	var count int64
	require.NoError(t, db.Model(&schema.Company{}).Where("ceo_agent_id = ?", listing.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// =============================================================================
// Test Runner - runs all tests against a given store implementation
// =============================================================================

func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"CreateIdeas", testCreateIdeas},
		{"Activities", testActivities},
		{"CreateAndGetListing", testCreateAndGetListing},
		{"DuplicateTokenSymbol", testDuplicateTokenSymbol},
		{"ListListings", testListListings},
		{"ListDueListings", testListDueListings},
		{"BuyTokens", testBuyTokens},
		{"LaunchListing", testLaunchListing},
		{"EndToEndScenario", testEndToEndScenario},
		{"Portfolio", testPortfolio},
		{"RecordRevenue", testRecordRevenue},
		{"PipelineRuns", testPipelineRuns},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
