package store

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/ai-company/internal/domain"
	"github.com/feral-file/ai-company/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

// CreateListingInput represents the input for creating a CEO agent listing.
// Defaults are applied by the caller; the store persists what it is given.
type CreateListingInput struct {
	Name               string
	CompanyIdea        string
	Description        string
	CEOCharacteristics string
	CreatorWallet      string
	TokenSymbol        string
	TotalTokens        int64
	PricePerToken      float64
	LaunchTimeline     int
	LaunchDate         time.Time
	TimeDuration       int
}

// BuyTokensInput represents a token purchase
type BuyTokensInput struct {
	ListingID uint64
	Wallet    string
	Tokens    int64
}

// TokenPurchase is the result of a successful purchase
type TokenPurchase struct {
	Listing schema.CEOAgent
	Holding schema.AgentTokenHolding
}

// LaunchResult is the result of launching a listing
type LaunchResult struct {
	Company schema.Company
	// AlreadyLaunched is true when the company existed before the call
	AlreadyLaunched bool
}

// PortfolioHolding aggregates the tokens a wallet holds in one CEO agent
type PortfolioHolding struct {
	CEOAgentID    uint64  `json:"ceo_agent_id"`
	AgentName     string  `json:"agent_name"`
	TokenSymbol   string  `json:"token_symbol"`
	Status        string  `json:"status"`
	CompanyID     *uint64 `json:"company_id,omitempty"`
	CompanyName   string  `json:"company_name,omitempty"`
	TokensOwned   int64   `json:"tokens_owned"`
	TotalInvested float64 `json:"total_invested"`
}

// Portfolio is the set of holdings of a wallet
type Portfolio struct {
	Wallet        string             `json:"wallet"`
	Holdings      []PortfolioHolding `json:"holdings"`
	TotalTokens   int64              `json:"total_tokens"`
	TotalInvested float64            `json:"total_invested"`
}

// RecordRevenueInput represents a revenue distribution to persist.
// Exactly one of CompanyID and PipelineRunID is expected to be set.
type RecordRevenueInput struct {
	CompanyID     *uint64
	PipelineRunID *string
	Distribution  domain.Distribution
	ReceiptHash   string
}

// PipelineSnapshots holds the stage payloads written with a transition. Nil fields are left unchanged.
type PipelineSnapshots struct {
	Ideas             datatypes.JSON
	Idea              datatypes.JSON
	Research          datatypes.JSON
	Product           datatypes.JSON
	MarketingStrategy datatypes.JSON
	TechnicalStrategy datatypes.JSON
	BoltPrompt        datatypes.JSON
}

// ApplyTransitionInput represents a pipeline transition to persist
type ApplyTransitionInput struct {
	RunID       string
	From        domain.PipelineState
	To          domain.PipelineState
	Trigger     domain.Trigger
	Actor       string
	ContentHash string
	Note        string
	// FailedStage is recorded when To is failed
	FailedStage domain.Stage
	Snapshots   PipelineSnapshots
}

// Store defines the interface for database operations
type Store interface {
	// Ping checks the database connection
	Ping(ctx context.Context) error

	// =============================================================================
	// Stage outputs
	// =============================================================================

	// CreateIdeas persists generated ideas and fills in their IDs
	CreateIdeas(ctx context.Context, ideas []schema.Idea) error
	// CreateResearch persists research for an idea
	CreateResearch(ctx context.Context, research *schema.Research) error
	// CreateProduct persists a product design
	CreateProduct(ctx context.Context, product *schema.Product) error

	// =============================================================================
	// Agent activity
	// =============================================================================

	// RecordActivity appends an agent activity log entry
	RecordActivity(ctx context.Context, agentName, action string, details json.RawMessage) error
	// ListActivities returns the latest activity entries, newest first
	ListActivities(ctx context.Context, limit int) ([]schema.AgentActivity, error)

	// =============================================================================
	// Marketplace
	// =============================================================================

	// CreateListing creates a listing, returning ErrDuplicateTokenSymbol when the symbol is taken
	CreateListing(ctx context.Context, input CreateListingInput) (*schema.CEOAgent, error)
	// GetListing retrieves a listing by ID, nil if absent
	GetListing(ctx context.Context, id uint64) (*schema.CEOAgent, error)
	// ListListings returns all listings, newest first
	ListListings(ctx context.Context) ([]schema.CEOAgent, error)
	// ListDueListings returns listings whose launch date is at or before now, oldest first
	ListDueListings(ctx context.Context, now time.Time, limit int) ([]schema.CEOAgent, error)
	// BuyTokens decrements availability and appends a holding in one transaction
	BuyTokens(ctx context.Context, input BuyTokensInput) (*TokenPurchase, error)
	// LaunchListing turns a listing into a company in one transaction. It is idempotent.
	LaunchListing(ctx context.Context, listingID uint64, launchedAt time.Time) (*LaunchResult, error)

	// =============================================================================
	// Companies
	// =============================================================================

	// ListCompanies returns all companies, most recently launched first
	ListCompanies(ctx context.Context) ([]schema.Company, error)
	// GetCompany retrieves a company by ID, nil if absent
	GetCompany(ctx context.Context, id uint64) (*schema.Company, error)
	// GetHoldingsByCEOAgentID returns all holdings of a listing or launched company
	GetHoldingsByCEOAgentID(ctx context.Context, ceoAgentID uint64) ([]schema.AgentTokenHolding, error)
	// GetPortfolio aggregates the holdings of a wallet
	GetPortfolio(ctx context.Context, wallet string) (*Portfolio, error)
	// RecordRevenue persists a distribution and, for companies, increases current revenue
	RecordRevenue(ctx context.Context, input RecordRevenueInput) (*schema.RevenueDistribution, error)

	// =============================================================================
	// Pipeline runs
	// =============================================================================

	// CreatePipelineRun inserts a new pipeline run
	CreatePipelineRun(ctx context.Context, run *schema.PipelineRun) error
	// GetPipelineRun retrieves a pipeline run by ID, nil if absent
	GetPipelineRun(ctx context.Context, id string) (*schema.PipelineRun, error)
	// SetPipelineWorkflowID records the workflow driving a run
	SetPipelineWorkflowID(ctx context.Context, id string, workflowID string) error
	// ApplyPipelineTransition moves a run from one state to another and appends the transition
	ApplyPipelineTransition(ctx context.Context, input ApplyTransitionInput) (*schema.PipelineRun, error)
	// ListPipelineTransitions returns the transitions of a run in order
	ListPipelineTransitions(ctx context.Context, runID string) ([]schema.PipelineTransition, error)
}
