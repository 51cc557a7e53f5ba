package workflows

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/ai-company/internal/adapter"
	"github.com/feral-file/ai-company/internal/agents"
	"github.com/feral-file/ai-company/internal/domain"
	"github.com/feral-file/ai-company/internal/finance"
	"github.com/feral-file/ai-company/internal/logger"
	"github.com/feral-file/ai-company/internal/messaging"
	"github.com/feral-file/ai-company/internal/store"
	"github.com/feral-file/ai-company/internal/store/schema"
)

const (
	// SystemActor is recorded on transitions not caused by a token holder
	SystemActor = "system"

	financeAgentName = "Finance Agent"

	errTypeListingNotFound     = "ListingNotFound"
	errTypePipelineRunNotFound = "PipelineRunNotFound"
	errTypeInvalidTransition   = "InvalidTransition"
)

// RunSnapshot is the set of stage payloads carried by a pipeline transition
type RunSnapshot struct {
	Ideas             []domain.Idea             `json:"ideas,omitempty"`
	Idea              *domain.Idea              `json:"idea,omitempty"`
	Research          *domain.Research          `json:"research,omitempty"`
	Product           *domain.Product           `json:"product,omitempty"`
	MarketingStrategy *domain.MarketingStrategy `json:"marketingStrategy,omitempty"`
	TechnicalStrategy *domain.TechnicalStrategy `json:"technicalStrategy,omitempty"`
	BoltPrompt        *domain.BoltPrompt        `json:"boltPrompt,omitempty"`
	Distribution      *domain.Distribution      `json:"distribution,omitempty"`
}

func (s RunSnapshot) empty() bool {
	return len(s.Ideas) == 0 && s.Idea == nil && s.Research == nil && s.Product == nil &&
		s.MarketingStrategy == nil && s.TechnicalStrategy == nil && s.BoltPrompt == nil && s.Distribution == nil
}

// TransitionInput is the input of the ApplyTransition activity
type TransitionInput struct {
	RunID       string               `json:"run_id"`
	From        domain.PipelineState `json:"from"`
	To          domain.PipelineState `json:"to"`
	Trigger     domain.Trigger       `json:"trigger"`
	Actor       string               `json:"actor"`
	Note        string               `json:"note,omitempty"`
	FailedStage domain.Stage         `json:"failed_stage,omitempty"`
	Snapshot    RunSnapshot          `json:"snapshot"`
}

// RunState is the persisted state of a run loaded when a pipeline workflow restarts
type RunState struct {
	State       domain.PipelineState `json:"state"`
	FailedStage domain.Stage         `json:"failed_stage,omitempty"`
	IdeaCount   int                  `json:"idea_count"`
	Snapshot    RunSnapshot          `json:"snapshot"`
}

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// =============================================================================
	// Stage activities
	// =============================================================================

	// GenerateIdeas asks the CEO agent for business ideas
	GenerateIdeas(ctx context.Context, count int) ([]domain.Idea, error)
	// ResearchIdea asks the research agent to research an idea
	ResearchIdea(ctx context.Context, idea domain.Idea) (*domain.Research, error)
	// DevelopProduct asks the product agent to design a product
	DevelopProduct(ctx context.Context, idea domain.Idea, research *domain.Research) (*domain.Product, error)
	// DevelopMarketingStrategy asks the CMO agent for a marketing strategy
	DevelopMarketingStrategy(ctx context.Context, idea domain.Idea, product domain.Product) (*domain.MarketingStrategy, error)
	// DevelopTechnicalStrategy asks the CTO agent for a technical strategy
	DevelopTechnicalStrategy(ctx context.Context, idea domain.Idea, product domain.Product) (*domain.TechnicalStrategy, error)
	// CreateBoltPrompt asks the head of engineering for the website prompt
	CreateBoltPrompt(ctx context.Context, input agents.PromptInput) (*domain.BoltPrompt, error)

	// =============================================================================
	// Persistence activities
	// =============================================================================

	// LoadPipelineRun loads the persisted state of a run
	LoadPipelineRun(ctx context.Context, runID string) (*RunState, error)
	// ApplyTransition persists a transition with its snapshot and content hash
	ApplyTransition(ctx context.Context, input TransitionInput) error
	// DistributeRunRevenue records the simulated revenue of a completed run
	DistributeRunRevenue(ctx context.Context, runID string, amount float64) (*domain.Distribution, error)
	// LaunchListing turns a listing into a company. It is idempotent.
	LaunchListing(ctx context.Context, listingID uint64) (*schema.Company, error)
}

// executor is the concrete implementation of Executor
type executor struct {
	store     store.Store
	agents    agents.Agents
	publisher messaging.Publisher
	hasher    adapter.Hasher
	json      adapter.JSON
	clock     adapter.Clock
}

// NewExecutor creates a new executor instance
func NewExecutor(
	store store.Store,
	agents agents.Agents,
	publisher messaging.Publisher,
	hasher adapter.Hasher,
	json adapter.JSON,
	clock adapter.Clock,
) Executor {
	return &executor{
		store:     store,
		agents:    agents,
		publisher: publisher,
		hasher:    hasher,
		json:      json,
		clock:     clock,
	}
}

// GenerateIdeas asks the CEO agent for business ideas and persists them
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
		return nil, err
	}
	for i := range ideas {
		ideas[i].ID = rows[i].ID
	}

	return ideas, nil
}

func (e *executor) ResearchIdea(ctx context.Context, idea domain.Idea) (*domain.Research, error) {
	return e.agents.ResearchIdea(ctx, idea)
}

func (e *executor) DevelopProduct(ctx context.Context, idea domain.Idea, research *domain.Research) (*domain.Product, error) {
	return e.agents.DevelopProduct(ctx, idea, research)
}

func (e *executor) DevelopMarketingStrategy(ctx context.Context, idea domain.Idea, product domain.Product) (*domain.MarketingStrategy, error) {
	return e.agents.DevelopMarketingStrategy(ctx, idea, product)
}

func (e *executor) DevelopTechnicalStrategy(ctx context.Context, idea domain.Idea, product domain.Product) (*domain.TechnicalStrategy, error) {
	return e.agents.DevelopTechnicalStrategy(ctx, idea, product)
}

func (e *executor) CreateBoltPrompt(ctx context.Context, input agents.PromptInput) (*domain.BoltPrompt, error) {
	return e.agents.CreateBoltPrompt(ctx, input)
}

// LoadPipelineRun loads the persisted state of a run
func (e *executor) LoadPipelineRun(ctx context.Context, runID string) (*RunState, error) {
	run, err := e.store.GetPipelineRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run == nil {
		return nil, temporal.NewNonRetryableApplicationError(
			fmt.Sprintf("pipeline run %s not found", runID),
			errTypePipelineRunNotFound,
			domain.ErrPipelineRunNotFound,
		)
	}

	state := &RunState{
		State:     run.State,
		IdeaCount: run.IdeaCount,
	}
	if run.FailedStage != nil {
		state.FailedStage = *run.FailedStage
	}

	columns := []struct {
		data datatypes.JSON
		dest any
	}{
		{run.Ideas, &state.Snapshot.Ideas},
		{run.Idea, &state.Snapshot.Idea},
		{run.Research, &state.Snapshot.Research},
		{run.Product, &state.Snapshot.Product},
		{run.MarketingStrategy, &state.Snapshot.MarketingStrategy},
		{run.TechnicalStrategy, &state.Snapshot.TechnicalStrategy},
		{run.BoltPrompt, &state.Snapshot.BoltPrompt},
	}
	for _, c := range columns {
		if len(c.data) == 0 {
			continue
		}
		if err := e.json.Unmarshal(c.data, c.dest); err != nil {
			return nil, fmt.Errorf("failed to decode pipeline snapshot: %w", err)
		}
	}

	return state, nil
}

// ApplyTransition persists a transition with its snapshot and content hash, then publishes it
func (e *executor) ApplyTransition(ctx context.Context, input TransitionInput) error {
	var hash string
	if !input.Snapshot.empty() {
		h, err := e.hasher.ContentHash(input.Snapshot)
		if err != nil {
			return fmt.Errorf("failed to hash snapshot: %w", err)
		}
		hash = h
	}

	snapshots, err := e.snapshotColumns(input.Snapshot)
	if err != nil {
		return err
	}

	run, err := e.store.ApplyPipelineTransition(ctx, store.ApplyTransitionInput{
		RunID:       input.RunID,
		From:        input.From,
		To:          input.To,
		Trigger:     input.Trigger,
		Actor:       input.Actor,
		ContentHash: hash,
		Note:        input.Note,
		FailedStage: input.FailedStage,
		Snapshots:   snapshots,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPipelineRunNotFound):
			return temporal.NewNonRetryableApplicationError(err.Error(), errTypePipelineRunNotFound, err)
		case errors.Is(err, domain.ErrInvalidTransition):
			return temporal.NewNonRetryableApplicationError(err.Error(), errTypeInvalidTransition, err)
		}
		return err
	}

	logger.InfoCtx(ctx, "Pipeline transition applied",
		zap.String("runID", input.RunID),
		zap.String("from", string(input.From)),
		zap.String("to", string(input.To)),
		zap.String("trigger", string(input.Trigger)),
		zap.String("actor", input.Actor))

	e.publish(ctx, domain.EventTypePipelineTransitioned, run.ID, map[string]any{
		"from_state":   input.From,
		"to_state":     input.To,
		"trigger":      input.Trigger,
		"actor":        input.Actor,
		"content_hash": hash,
	})

	return nil
}

func (e *executor) snapshotColumns(s RunSnapshot) (store.PipelineSnapshots, error) {
	var out store.PipelineSnapshots
	fields := []struct {
		value any
		set   bool
		dest  *datatypes.JSON
	}{
		{s.Ideas, len(s.Ideas) > 0, &out.Ideas},
		{s.Idea, s.Idea != nil, &out.Idea},
		{s.Research, s.Research != nil, &out.Research},
		{s.Product, s.Product != nil, &out.Product},
		{s.MarketingStrategy, s.MarketingStrategy != nil, &out.MarketingStrategy},
		{s.TechnicalStrategy, s.TechnicalStrategy != nil, &out.TechnicalStrategy},
		{s.BoltPrompt, s.BoltPrompt != nil, &out.BoltPrompt},
	}
	for _, f := range fields {
		if !f.set {
			continue
		}
		data, err := e.json.Marshal(f.value)
		if err != nil {
			return out, fmt.Errorf("failed to encode pipeline snapshot: %w", err)
		}
		*f.dest = datatypes.JSON(data)
	}
	return out, nil
}

// DistributeRunRevenue records the simulated revenue of a completed run.
// Every token holder who voted on the run holds one share.
func (e *executor) DistributeRunRevenue(ctx context.Context, runID string, amount float64) (*domain.Distribution, error) {
	transitions, err := e.store.ListPipelineTransitions(ctx, runID)
	if err != nil {
		return nil, err
	}

	voters := make(map[string]bool)
	for _, t := range transitions {
		if t.Actor == "" || t.Actor == SystemActor {
			continue
		}
		switch t.Trigger {
		case domain.TriggerApproveIdea, domain.TriggerRejectIdea, domain.TriggerApproveProduct, domain.TriggerRejectProduct:
			voters[t.Actor] = true
		}
	}
	holdings := make([]finance.Holding, 0, len(voters))
	for voter := range voters {
		holdings = append(holdings, finance.Holding{Wallet: voter, Tokens: 1})
	}
	sort.Slice(holdings, func(i, j int) bool { return holdings[i].Wallet < holdings[j].Wallet })

	distribution, err := finance.Distribute(amount, holdings)
	if err != nil {
		return nil, temporal.NewNonRetryableApplicationError(err.Error(), "InvalidRevenue", err)
	}

	receipt, err := e.hasher.ContentHash(distribution)
	if err != nil {
		return nil, fmt.Errorf("failed to hash distribution: %w", err)
	}

	if _, err := e.store.RecordRevenue(ctx, store.RecordRevenueInput{
		PipelineRunID: &runID,
		Distribution:  distribution,
		ReceiptHash:   receipt,
	}); err != nil {
		return nil, err
	}

	details, err := e.json.Marshal(map[string]any{
		"pipeline_run_id": runID,
		"receipt_hash":    receipt,
		"distribution":    distribution,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode activity details: %w", err)
	}
	if err := e.store.RecordActivity(ctx, financeAgentName, finance.Describe(distribution), details); err != nil {
		logger.WarnCtx(ctx, "Failed to record finance activity", zap.Error(err))
	}

	e.publish(ctx, domain.EventTypeRevenueDistributed, runID, map[string]any{
		"receipt_hash": receipt,
		"distribution": distribution,
	})

	return &distribution, nil
}

// LaunchListing turns a listing into a company. Launching an already launched
// listing returns the existing company; a listing that never existed is a non-retryable error.
func (e *executor) LaunchListing(ctx context.Context, listingID uint64) (*schema.Company, error) {
	result, err := e.store.LaunchListing(ctx, listingID, e.clock.Now())
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), errTypeListingNotFound, err)
		}
		return nil, err
	}

	if !result.AlreadyLaunched {
		logger.InfoCtx(ctx, "Listing launched",
			zap.Uint64("listingID", listingID),
			zap.Uint64("companyID", result.Company.ID))
		e.publish(ctx, domain.EventTypeListingLaunched, strconv.FormatUint(result.Company.ID, 10), result.Company)
	}

	return &result.Company, nil
}

// publish sends an event and only logs failures; events are best effort
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
