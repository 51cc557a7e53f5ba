package executor

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"
	enumspb "go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/feral-file/ai-company/internal/adapter"
	"github.com/feral-file/ai-company/internal/agents"
	"github.com/feral-file/ai-company/internal/api/shared/constants"
	"github.com/feral-file/ai-company/internal/api/shared/dto"
	apierrors "github.com/feral-file/ai-company/internal/api/shared/errors"
	"github.com/feral-file/ai-company/internal/domain"
	"github.com/feral-file/ai-company/internal/finance"
	"github.com/feral-file/ai-company/internal/logger"
	"github.com/feral-file/ai-company/internal/messaging"
	"github.com/feral-file/ai-company/internal/pipeline"
	"github.com/feral-file/ai-company/internal/providers/temporal"
	"github.com/feral-file/ai-company/internal/store"
	"github.com/feral-file/ai-company/internal/store/schema"
	"github.com/feral-file/ai-company/internal/workflows"
)

const financeAgentName = "Finance Agent"

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// Ping checks the database connection
	Ping(ctx context.Context) error

	// =============================================================================
	// Agent stages
	// =============================================================================

	// GenerateIdeas asks the CEO agent for ideas and persists them
	GenerateIdeas(ctx context.Context, count int) ([]domain.Idea, error)
	// ResearchIdea asks the research agent to research an idea
	ResearchIdea(ctx context.Context, idea domain.Idea) (*domain.Research, error)
	// DevelopProduct asks the product agent to design a product
	DevelopProduct(ctx context.Context, idea domain.Idea, research *domain.Research) (*domain.Product, error)
	// EvaluateProduct asks the CEO agent to evaluate a product
	EvaluateProduct(ctx context.Context, product domain.Product) (*domain.ProductEvaluation, error)
	// DevelopMarketingStrategy asks the CMO agent for a marketing strategy
	DevelopMarketingStrategy(ctx context.Context, idea domain.Idea, product domain.Product) (*domain.MarketingStrategy, error)
	// DevelopTechnicalStrategy asks the CTO agent for a technical strategy
	DevelopTechnicalStrategy(ctx context.Context, idea domain.Idea, product domain.Product) (*domain.TechnicalStrategy, error)
	// DevelopStrategies runs the marketing and technical strategies in parallel
	DevelopStrategies(ctx context.Context, idea domain.Idea, product domain.Product) (*agents.Strategies, error)
	// CreateBoltPrompt asks the head of engineering for the website prompt
	CreateBoltPrompt(ctx context.Context, input agents.PromptInput) (*domain.BoltPrompt, error)
	// ListActivities returns the latest agent activities
	ListActivities(ctx context.Context, limit int) ([]schema.AgentActivity, error)

	// =============================================================================
	// Marketplace
	// =============================================================================

	// ListListings returns all listings, newest first
	ListListings(ctx context.Context) ([]schema.CEOAgent, error)
	// GetListing returns a listing, nil if absent
	GetListing(ctx context.Context, id uint64) (*schema.CEOAgent, error)
	// CreateListing creates a listing and schedules its launch
	CreateListing(ctx context.Context, req dto.CreateListingRequest) (*schema.CEOAgent, error)
	// BuyTokens buys tokens of a listing
	BuyTokens(ctx context.Context, listingID uint64, req dto.BuyTokensRequest) (*dto.PurchaseResponse, error)
	// LaunchListing turns a listing into a company
	LaunchListing(ctx context.Context, listingID uint64) (*dto.LaunchResponse, error)

	// =============================================================================
	// Companies
	// =============================================================================

	// ListCompanies returns all companies
	ListCompanies(ctx context.Context) ([]schema.Company, error)
	// GetCompany returns a company with its holders, nil if absent
	GetCompany(ctx context.Context, id uint64) (*dto.CompanyResponse, error)
	// GetPortfolio aggregates the holdings of a wallet
	GetPortfolio(ctx context.Context, wallet string) (*store.Portfolio, error)
	// DistributeRevenue splits revenue between a company and its token holders
	DistributeRevenue(ctx context.Context, companyID uint64, amount float64) (*dto.RevenueResponse, error)

	// =============================================================================
	// Pipelines
	// =============================================================================

	// StartPipeline creates a pipeline run and starts its workflow
	StartPipeline(ctx context.Context, ideaCount int) (*dto.PipelineRunResponse, error)
	// GetPipelineRun returns a pipeline run, nil if absent
	GetPipelineRun(ctx context.Context, id string) (*dto.PipelineRunResponse, error)
	// ListPipelineTransitions returns the transitions of a run
	ListPipelineTransitions(ctx context.Context, id string) ([]schema.PipelineTransition, error)
	// VotePipeline validates a vote against the run state and signals the workflow
	VotePipeline(ctx context.Context, id string, req dto.VoteRequest) error
	// ResumePipeline resumes a failed pipeline run
	ResumePipeline(ctx context.Context, id string, actor string) error
}

// Config holds the executor configuration
type Config struct {
	OrchestratorTaskQueue string
	// ScheduleLaunches starts a launch workflow for every new listing
	ScheduleLaunches bool
}

type executor struct {
	config       Config
	store        store.Store
	agents       agents.Agents
	orchestrator temporal.TemporalOrchestrator
	publisher    messaging.Publisher
	hasher       adapter.Hasher
	json         adapter.JSON
	clock        adapter.Clock
}

// NewExecutor creates a new API executor
func NewExecutor(
	config Config,
	store store.Store,
	agents agents.Agents,
	orchestrator temporal.TemporalOrchestrator,
	publisher messaging.Publisher,
	hasher adapter.Hasher,
	json adapter.JSON,
	clock adapter.Clock,
) Executor {
	return &executor{
		config:       config,
		store:        store,
		agents:       agents,
		orchestrator: orchestrator,
		publisher:    publisher,
		hasher:       hasher,
		json:         json,
		clock:        clock,
	}
}

func (e *executor) Ping(ctx context.Context) error {
	return e.store.Ping(ctx)
}

// =============================================================================
// Agent stages
// =============================================================================

func (e *executor) GenerateIdeas(ctx context.Context, count int) ([]domain.Idea, error) {
	ideas, err := e.agents.GenerateIdeas(ctx, count)
	if err != nil {
		return nil, err
	}

	rows := make([]schema.Idea, len(ideas))
	for i, idea := range ideas {
		rows[i] = schema.Idea{
			Title:            idea.Title,
			Description:      idea.Description,
			PotentialRevenue: idea.PotentialRevenue,
			SuccessFactors:   idea.SuccessFactors,
			Fallback:         idea.Fallback,
		}
	}
	if err := e.store.CreateIdeas(ctx, rows); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to save ideas: %v", err))
	}
	for i := range ideas {
		ideas[i].ID = rows[i].ID
	}

	return ideas, nil
}

func (e *executor) ResearchIdea(ctx context.Context, idea domain.Idea) (*domain.Research, error) {
	research, err := e.agents.ResearchIdea(ctx, idea)
	if err != nil {
		return nil, err
	}

	// The response is self-contained; a failed write is only logged
	data, err := e.json.Marshal(research)
	if err == nil {
		err = e.store.CreateResearch(ctx, &schema.Research{
			IdeaID:       ideaID(idea),
			ResearchData: data,
		})
	}
	if err != nil {
		logger.WarnCtx(ctx, "Failed to save research", zap.Error(err))
	}

	return research, nil
}

func (e *executor) DevelopProduct(ctx context.Context, idea domain.Idea, research *domain.Research) (*domain.Product, error) {
	product, err := e.agents.DevelopProduct(ctx, idea, research)
	if err != nil {
		return nil, err
	}

	if err := e.saveProduct(ctx, idea, product); err != nil {
		logger.WarnCtx(ctx, "Failed to save product", zap.Error(err))
	}

	return product, nil
}

func (e *executor) saveProduct(ctx context.Context, idea domain.Idea, product *domain.Product) error {
	features, err := e.json.Marshal(product.Features)
	if err != nil {
		return err
	}
	targetMarket, err := e.json.Marshal(product.TargetMarket)
	if err != nil {
		return err
	}
	row := &schema.Product{
		IdeaID:             ideaID(idea),
		ProductName:        product.ProductName,
		ProductDescription: product.ProductDescription,
		Features:           features,
		TargetMarket:       targetMarket,
		RevenueModel:       product.RevenueModel,
	}
	if err := e.store.CreateProduct(ctx, row); err != nil {
		return err
	}
	product.ID = row.ID
	return nil
}

func ideaID(idea domain.Idea) *int64 {
	if idea.ID <= 0 {
		return nil
	}
	id := idea.ID
	return &id
}

func (e *executor) EvaluateProduct(ctx context.Context, product domain.Product) (*domain.ProductEvaluation, error) {
	return e.agents.EvaluateProduct(ctx, product)
}

func (e *executor) DevelopMarketingStrategy(ctx context.Context, idea domain.Idea, product domain.Product) (*domain.MarketingStrategy, error) {
	return e.agents.DevelopMarketingStrategy(ctx, idea, product)
}

func (e *executor) DevelopTechnicalStrategy(ctx context.Context, idea domain.Idea, product domain.Product) (*domain.TechnicalStrategy, error) {
	return e.agents.DevelopTechnicalStrategy(ctx, idea, product)
}

func (e *executor) DevelopStrategies(ctx context.Context, idea domain.Idea, product domain.Product) (*agents.Strategies, error) {
	return e.agents.DevelopStrategies(ctx, idea, product)
}

func (e *executor) CreateBoltPrompt(ctx context.Context, input agents.PromptInput) (*domain.BoltPrompt, error) {
	return e.agents.CreateBoltPrompt(ctx, input)
}

func (e *executor) ListActivities(ctx context.Context, limit int) ([]schema.AgentActivity, error) {
	if limit <= 0 {
		limit = constants.DEFAULT_ACTIVITIES_LIMIT
	}
	if limit > constants.MAX_ACTIVITIES_LIMIT {
		limit = constants.MAX_ACTIVITIES_LIMIT
	}

	activities, err := e.store.ListActivities(ctx, limit)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get activities: %v", err))
	}
	return activities, nil
}

// =============================================================================
// Marketplace
// =============================================================================

func (e *executor) ListListings(ctx context.Context) ([]schema.CEOAgent, error) {
	listings, err := e.store.ListListings(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get CEO agents: %v", err))
	}
	return listings, nil
}

func (e *executor) GetListing(ctx context.Context, id uint64) (*schema.CEOAgent, error) {
	listing, err := e.store.GetListing(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get CEO agent: %v", err))
	}
	return listing, nil
}

// CreateListing expects a validated request with defaults applied
func (e *executor) CreateListing(ctx context.Context, req dto.CreateListingRequest) (*schema.CEOAgent, error) {
	timeline := domain.DEFAULT_LAUNCH_TIMELINE_MINUTES
	if req.LaunchTimeline != nil {
		timeline = *req.LaunchTimeline
	}
	duration := timeline
	if req.TimeDuration != nil {
		duration = *req.TimeDuration
	}
	total := int64(domain.DEFAULT_TOTAL_TOKENS)
	if req.TotalTokens != nil {
		total = *req.TotalTokens
	}
	price := domain.DEFAULT_PRICE_PER_TOKEN
	if req.PricePerToken != nil {
		price = *req.PricePerToken
	}

	listing, err := e.store.CreateListing(ctx, store.CreateListingInput{
		Name:               req.Name,
		CompanyIdea:        req.CompanyIdea,
		Description:        req.Description,
		CEOCharacteristics: req.CEOCharacteristics,
		CreatorWallet:      req.CreatorWallet,
		TokenSymbol:        req.TokenSymbol,
		TotalTokens:        total,
		PricePerToken:      price,
		LaunchTimeline:     timeline,
		LaunchDate:         e.clock.Now().Add(time.Duration(timeline) * time.Minute),
		TimeDuration:       duration,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateTokenSymbol) {
			return nil, err
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create CEO agent: %v", err))
	}

	logger.InfoCtx(ctx, "CEO agent listing created",
		zap.Uint64("listingID", listing.ID),
		zap.String("tokenSymbol", listing.TokenSymbol),
		zap.Time("launchDate", listing.LaunchDate))

	e.publish(ctx, domain.EventTypeListingCreated, strconv.FormatUint(listing.ID, 10), listing)

	if e.config.ScheduleLaunches {
		// The sweeper launches the listing if scheduling fails
		if err := e.scheduleLaunch(ctx, listing); err != nil {
			logger.WarnCtx(ctx, "Failed to schedule listing launch",
				zap.Uint64("listingID", listing.ID),
				zap.Error(err))
		}
	}

	return listing, nil
}

func (e *executor) scheduleLaunch(ctx context.Context, listing *schema.CEOAgent) error {
	w := workflows.NewWorkerCore(nil, workflows.WorkerCoreConfig{})
	options := client.StartWorkflowOptions{
		ID:                       workflows.LaunchWorkflowID(listing.ID),
		TaskQueue:                e.config.OrchestratorTaskQueue,
		WorkflowExecutionTimeout: listing.LaunchDate.Sub(e.clock.Now()) + 24*time.Hour,
	}

	callCtx, cancel := context.WithTimeout(ctx, constants.ORCHESTRATOR_CALL_TIMEOUT)
	defer cancel()

	_, err := e.orchestrator.ExecuteWorkflow(callCtx, options, w.LaunchListing, workflows.LaunchInput{
		ListingID:  listing.ID,
		LaunchDate: listing.LaunchDate,
	})
	return err
}

func (e *executor) BuyTokens(ctx context.Context, listingID uint64, req dto.BuyTokensRequest) (*dto.PurchaseResponse, error) {
	purchase, err := e.store.BuyTokens(ctx, store.BuyTokensInput{
		ListingID: listingID,
		Wallet:    req.UserWallet,
		Tokens:    req.TokensToBuy,
	})
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) || errors.Is(err, domain.ErrInsufficientTokens) || errors.Is(err, domain.ErrInvalidInput) {
			return nil, err
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to buy tokens: %v", err))
	}

	listing := purchase.Listing
	resp := &dto.PurchaseResponse{
		TokensBought:    purchase.Holding.TokensOwned,
		PricePerToken:   listing.PricePerToken,
		TotalCost:       float64(purchase.Holding.TokensOwned) * listing.PricePerToken,
		AgentName:       listing.Name,
		TokenSymbol:     listing.TokenSymbol,
		TokensAvailable: listing.TokensAvailable,
	}

	e.publish(ctx, domain.EventTypeTokensPurchased, strconv.FormatUint(listingID, 10), map[string]any{
		"wallet":           purchase.Holding.UserWallet,
		"tokens":           purchase.Holding.TokensOwned,
		"price_per_token":  listing.PricePerToken,
		"tokens_available": listing.TokensAvailable,
	})

	return resp, nil
}

func (e *executor) LaunchListing(ctx context.Context, listingID uint64) (*dto.LaunchResponse, error) {
	result, err := e.store.LaunchListing(ctx, listingID, e.clock.Now())
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			return nil, err
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to launch CEO agent: %v", err))
	}

	if !result.AlreadyLaunched {
		logger.InfoCtx(ctx, "Listing launched",
			zap.Uint64("listingID", listingID),
			zap.Uint64("companyID", result.Company.ID))
		e.publish(ctx, domain.EventTypeListingLaunched, strconv.FormatUint(result.Company.ID, 10), result.Company)
	}

	return &dto.LaunchResponse{
		Company:         result.Company,
		AlreadyLaunched: result.AlreadyLaunched,
	}, nil
}

// =============================================================================
// Companies
// =============================================================================

func (e *executor) ListCompanies(ctx context.Context) ([]schema.Company, error) {
	companies, err := e.store.ListCompanies(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get companies: %v", err))
	}
	return companies, nil
}

func (e *executor) GetCompany(ctx context.Context, id uint64) (*dto.CompanyResponse, error) {
	company, err := e.store.GetCompany(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get company: %v", err))
	}
	if company == nil {
		return nil, nil
	}

	holdings, err := e.store.GetHoldingsByCEOAgentID(ctx, company.CEOAgentID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get company holders: %v", err))
	}

	return &dto.CompanyResponse{
		Company: *company,
		Holders: dto.MapHoldersToDTO(holdings),
	}, nil
}

func (e *executor) GetPortfolio(ctx context.Context, wallet string) (*store.Portfolio, error) {
	wallet = domain.NormalizeWallet(wallet)
	if wallet == "" {
		return nil, apierrors.NewValidationError("wallet is required")
	}

	portfolio, err := e.store.GetPortfolio(ctx, wallet)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get portfolio: %v", err))
	}
	return portfolio, nil
}

func (e *executor) DistributeRevenue(ctx context.Context, companyID uint64, amount float64) (*dto.RevenueResponse, error) {
	company, err := e.store.GetCompany(ctx, companyID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get company: %v", err))
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}

	rows, err := e.store.GetHoldingsByCEOAgentID(ctx, company.CEOAgentID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get company holders: %v", err))
	}
	holdings := make([]finance.Holding, len(rows))
	for i, r := range rows {
		holdings[i] = finance.Holding{Wallet: r.UserWallet, Tokens: r.TokensOwned}
	}

	distribution, err := finance.Distribute(amount, holdings)
	if err != nil {
		return nil, err
	}

	receipt, err := e.hasher.ContentHash(distribution)
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to hash distribution", err.Error())
	}

	record, err := e.store.RecordRevenue(ctx, store.RecordRevenueInput{
		CompanyID:    &company.ID,
		Distribution: distribution,
		ReceiptHash:  receipt,
	})
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return nil, err
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to record revenue: %v", err))
	}

	summary := finance.Describe(distribution)
	details, err := e.json.Marshal(map[string]any{
		"company_id":   company.ID,
		"receipt_hash": receipt,
		"distribution": distribution,
	})
	if err == nil {
		err = e.store.RecordActivity(ctx, financeAgentName, summary, details)
	}
	if err != nil {
		logger.WarnCtx(ctx, "Failed to record finance activity", zap.Error(err))
	}

	e.publish(ctx, domain.EventTypeRevenueDistributed, strconv.FormatUint(company.ID, 10), map[string]any{
		"receipt_hash": receipt,
		"distribution": distribution,
	})

	return &dto.RevenueResponse{
		DistributionID: record.ID,
		ReceiptHash:    receipt,
		Distribution:   distribution,
		Summary:        summary,
	}, nil
}

// =============================================================================
// Pipelines
// =============================================================================

func (e *executor) StartPipeline(ctx context.Context, ideaCount int) (*dto.PipelineRunResponse, error) {
	run := &schema.PipelineRun{
		ID:        ulid.MustNew(ulid.Timestamp(e.clock.Now()), ulid.DefaultEntropy()).String(),
		IdeaCount: ideaCount,
	}
	run.WorkflowID = workflows.PipelineWorkflowID(run.ID)

	if err := e.store.CreatePipelineRun(ctx, run); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create pipeline run: %v", err))
	}

	if err := e.startPipelineWorkflow(ctx, workflows.PipelineInput{
		RunID:     run.ID,
		IdeaCount: ideaCount,
	}); err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to start pipeline: %v", err))
	}

	logger.InfoCtx(ctx, "Pipeline run started", zap.String("runID", run.ID), zap.Int("ideaCount", ideaCount))

	return dto.MapPipelineRunToDTO(run), nil
}

func (e *executor) startPipelineWorkflow(ctx context.Context, input workflows.PipelineInput) error {
	w := workflows.NewWorkerCore(nil, workflows.WorkerCoreConfig{})
	options := client.StartWorkflowOptions{
		ID:                    workflows.PipelineWorkflowID(input.RunID),
		TaskQueue:             e.config.OrchestratorTaskQueue,
		WorkflowIDReusePolicy: enumspb.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
	}

	callCtx, cancel := context.WithTimeout(ctx, constants.ORCHESTRATOR_CALL_TIMEOUT)
	defer cancel()

	_, err := e.orchestrator.ExecuteWorkflow(callCtx, options, w.CompanyPipeline, input)
	return err
}

func (e *executor) GetPipelineRun(ctx context.Context, id string) (*dto.PipelineRunResponse, error) {
	run, err := e.store.GetPipelineRun(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get pipeline run: %v", err))
	}
	if run == nil {
		return nil, nil
	}
	return dto.MapPipelineRunToDTO(run), nil
}

func (e *executor) ListPipelineTransitions(ctx context.Context, id string) ([]schema.PipelineTransition, error) {
	run, err := e.store.GetPipelineRun(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get pipeline run: %v", err))
	}
	if run == nil {
		return nil, domain.ErrPipelineRunNotFound
	}

	transitions, err := e.store.ListPipelineTransitions(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get pipeline transitions: %v", err))
	}
	return transitions, nil
}

// VotePipeline expects a validated request
func (e *executor) VotePipeline(ctx context.Context, id string, req dto.VoteRequest) error {
	run, err := e.store.GetPipelineRun(ctx, id)
	if err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to get pipeline run: %v", err))
	}
	if run == nil {
		return domain.ErrPipelineRunNotFound
	}

	trigger, _ := domain.VoteTrigger(req.Item, req.Vote)
	if !pipeline.Allowed(run.State, trigger) {
		return fmt.Errorf("%w: cannot %s %s while the run is %s", domain.ErrInvalidTransition, req.Vote, req.Item, run.State)
	}

	callCtx, cancel := context.WithTimeout(ctx, constants.ORCHESTRATOR_CALL_TIMEOUT)
	defer cancel()

	err = e.orchestrator.SignalWorkflow(callCtx, run.WorkflowID, "", workflows.VoteSignal, domain.PipelineVote{
		Item:  req.Item,
		Vote:  req.Vote,
		Voter: req.Voter,
	})
	if err != nil {
		return apierrors.NewServiceError(fmt.Sprintf("Failed to deliver vote: %v", err))
	}

	logger.InfoCtx(ctx, "Pipeline vote sent",
		zap.String("runID", id),
		zap.String("trigger", string(trigger)),
		zap.String("voter", req.Voter))

	return nil
}

// ResumePipeline signals the workflow of a failed run. When that workflow has
// ended, a new one is started that resumes from the persisted state.
func (e *executor) ResumePipeline(ctx context.Context, id string, actor string) error {
	run, err := e.store.GetPipelineRun(ctx, id)
	if err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to get pipeline run: %v", err))
	}
	if run == nil {
		return domain.ErrPipelineRunNotFound
	}
	if run.State != domain.PipelineStateFailed {
		return fmt.Errorf("%w: only failed runs can be resumed, the run is %s", domain.ErrInvalidTransition, run.State)
	}

	actor = domain.NormalizeWallet(actor)
	if actor == "" {
		actor = workflows.SystemActor
	}

	callCtx, cancel := context.WithTimeout(ctx, constants.ORCHESTRATOR_CALL_TIMEOUT)
	defer cancel()

	err = e.orchestrator.SignalWorkflow(callCtx, run.WorkflowID, "", workflows.ResumeSignal, actor)
	if err == nil {
		logger.InfoCtx(ctx, "Pipeline resume sent", zap.String("runID", id), zap.String("actor", actor))
		return nil
	}

	var notFound *serviceerror.NotFound
	if !errors.As(err, &notFound) {
		return apierrors.NewServiceError(fmt.Sprintf("Failed to resume pipeline: %v", err))
	}

	if err := e.startPipelineWorkflow(ctx, workflows.PipelineInput{
		RunID:     id,
		IdeaCount: run.IdeaCount,
		Resume:    true,
		Actor:     actor,
	}); err != nil {
		return apierrors.NewServiceError(fmt.Sprintf("Failed to restart pipeline: %v", err))
	}
	if err := e.store.SetPipelineWorkflowID(ctx, id, workflows.PipelineWorkflowID(id)); err != nil {
		logger.WarnCtx(ctx, "Failed to record pipeline workflow", zap.String("runID", id), zap.Error(err))
	}

	logger.InfoCtx(ctx, "Pipeline workflow restarted", zap.String("runID", id), zap.String("actor", actor))
	return nil
}

// publish sends an event and only logs failures
func (e *executor) publish(ctx context.Context, eventType domain.EventType, subject string, data any) {
	if e.publisher == nil {
		return
	}
	err := e.publisher.PublishEvent(ctx, &domain.Event{
		Type:      eventType,
		Subject:   subject,
		Data:      data,
		Timestamp: e.clock.Now(),
	})
	if err != nil {
		logger.WarnCtx(ctx, "Failed to publish event", zap.String("type", string(eventType)), zap.Error(err))
	}
}
