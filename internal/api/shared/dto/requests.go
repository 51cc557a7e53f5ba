package dto

import (
	"fmt"
	"math"
	"strings"

	"github.com/feral-file/ai-company/internal/api/shared/constants"
	apierrors "github.com/feral-file/ai-company/internal/api/shared/errors"
	"github.com/feral-file/ai-company/internal/domain"
)

const (
	errIdeaRequired           = "Idea data is required"
	errIdeaAndProductRequired = "Idea and product data are required"
)

// =============================================================================
// Agent stage requests
// =============================================================================

// GenerateIdeasRequest represents the request body for generating business ideas
type GenerateIdeasRequest struct {
	Count int `json:"count"`
}

// Validate validates the request body and applies the default count
func (r *GenerateIdeasRequest) Validate() error {
	if r.Count == 0 {
		r.Count = domain.DEFAULT_IDEA_COUNT
	}
	if r.Count < 0 || r.Count > domain.MAX_IDEA_COUNT {
		return apierrors.NewValidationError(fmt.Sprintf("count must be between 1 and %d", domain.MAX_IDEA_COUNT))
	}
	return nil
}

// ResearchRequest represents the request body for researching an idea
type ResearchRequest struct {
	Idea *domain.Idea `json:"idea"`
}

// Validate validates the request body
func (r *ResearchRequest) Validate() error {
	if !validIdea(r.Idea) {
		return apierrors.NewValidationError(errIdeaRequired)
	}
	return nil
}

// DevelopProductRequest represents the request body for designing a product
type DevelopProductRequest struct {
	Idea     *domain.Idea     `json:"idea"`
	Research *domain.Research `json:"research,omitempty"`
}

// Validate validates the request body
func (r *DevelopProductRequest) Validate() error {
	if !validIdea(r.Idea) {
		return apierrors.NewValidationError(errIdeaRequired)
	}
	return nil
}

// StrategyRequest represents the request body of the marketing, technical and combined strategy endpoints
type StrategyRequest struct {
	Idea    *domain.Idea    `json:"idea"`
	Product *domain.Product `json:"product"`
}

// Validate validates the request body
func (r *StrategyRequest) Validate() error {
	if !validIdea(r.Idea) || !validProduct(r.Product) {
		return apierrors.NewValidationError(errIdeaAndProductRequired)
	}
	return nil
}

// EvaluateProductRequest represents the request body for a CEO product evaluation
type EvaluateProductRequest struct {
	Product *domain.Product `json:"product"`
}

// Validate validates the request body
func (r *EvaluateProductRequest) Validate() error {
	if !validProduct(r.Product) {
		return apierrors.NewValidationError("Product data is required")
	}
	return nil
}

// BoltPromptRequest represents the request body for assembling the website prompt
type BoltPromptRequest struct {
	Idea              *domain.Idea              `json:"idea"`
	Product           *domain.Product           `json:"product"`
	Research          *domain.Research          `json:"research,omitempty"`
	MarketingStrategy *domain.MarketingStrategy `json:"marketingStrategy,omitempty"`
	TechnicalStrategy *domain.TechnicalStrategy `json:"technicalStrategy,omitempty"`
}

// Validate validates the request body
func (r *BoltPromptRequest) Validate() error {
	if !validIdea(r.Idea) || !validProduct(r.Product) {
		return apierrors.NewValidationError(errIdeaAndProductRequired)
	}
	return nil
}

func validIdea(idea *domain.Idea) bool {
	return idea != nil && strings.TrimSpace(idea.Title) != ""
}

func validProduct(product *domain.Product) bool {
	return product != nil && strings.TrimSpace(product.ProductName) != ""
}

// =============================================================================
// Marketplace requests
// =============================================================================

// CreateListingRequest represents the request body for creating a CEO agent listing
type CreateListingRequest struct {
	Name               string   `json:"name"`
	CompanyIdea        string   `json:"company_idea"`
	Description        string   `json:"description"`
	CEOCharacteristics string   `json:"ceo_characteristics"`
	CreatorWallet      string   `json:"creator_wallet"`
	TokenSymbol        string   `json:"token_symbol"`
	TotalTokens        *int64   `json:"total_tokens,omitempty"`
	PricePerToken      *float64 `json:"price_per_token,omitempty"`
	LaunchTimeline     *int     `json:"launch_timeline,omitempty"` // minutes until launch
	TimeDuration       *int     `json:"time_duration,omitempty"`
}

// Validate validates the request body, normalizes the symbol and wallet and applies defaults
func (r *CreateListingRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" ||
		strings.TrimSpace(r.CompanyIdea) == "" ||
		strings.TrimSpace(r.Description) == "" ||
		strings.TrimSpace(r.CEOCharacteristics) == "" ||
		strings.TrimSpace(r.TokenSymbol) == "" {
		return apierrors.NewValidationError("Missing required fields: name, company_idea, description, ceo_characteristics, token_symbol")
	}

	r.Name = strings.TrimSpace(r.Name)
	r.TokenSymbol = domain.NormalizeTokenSymbol(r.TokenSymbol)
	r.CreatorWallet = domain.NormalizeWallet(r.CreatorWallet)

	if r.TotalTokens == nil {
		total := int64(domain.DEFAULT_TOTAL_TOKENS)
		r.TotalTokens = &total
	}
	if *r.TotalTokens <= 0 {
		return apierrors.NewValidationError("total_tokens must be positive")
	}

	if r.PricePerToken == nil {
		price := domain.DEFAULT_PRICE_PER_TOKEN
		r.PricePerToken = &price
	}
	if *r.PricePerToken <= 0 || math.IsInf(*r.PricePerToken, 0) || math.IsNaN(*r.PricePerToken) {
		return apierrors.NewValidationError("price_per_token must be positive")
	}

	if r.LaunchTimeline == nil {
		timeline := domain.DEFAULT_LAUNCH_TIMELINE_MINUTES
		r.LaunchTimeline = &timeline
	}
	if *r.LaunchTimeline < 0 {
		return apierrors.NewValidationError("launch_timeline must not be negative")
	}

	if r.TimeDuration == nil {
		duration := *r.LaunchTimeline
		r.TimeDuration = &duration
	}

	return nil
}

// BuyTokensRequest represents the request body for buying listing tokens
type BuyTokensRequest struct {
	UserWallet  string `json:"user_wallet"`
	TokensToBuy int64  `json:"tokens_to_buy"`
}

// Validate validates the request body and normalizes the wallet
func (r *BuyTokensRequest) Validate() error {
	r.UserWallet = domain.NormalizeWallet(r.UserWallet)
	if r.UserWallet == "" || r.TokensToBuy <= 0 {
		return apierrors.NewValidationError("Invalid request. Need user_wallet and positive tokens_to_buy.")
	}
	if r.TokensToBuy > constants.MAX_TOKENS_PER_PURCHASE {
		return apierrors.NewValidationError(fmt.Sprintf("tokens_to_buy must not exceed %d", constants.MAX_TOKENS_PER_PURCHASE))
	}
	return nil
}

// RevenueRequest represents the request body for distributing company revenue
type RevenueRequest struct {
	Amount float64 `json:"amount"`
}

// Validate validates the request body
func (r *RevenueRequest) Validate() error {
	if r.Amount <= 0 || r.Amount > constants.MAX_REVENUE_AMOUNT || math.IsNaN(r.Amount) {
		return apierrors.NewValidationError("amount must be a positive number")
	}
	return nil
}

// =============================================================================
// Pipeline requests
// =============================================================================

// CreatePipelineRequest represents the request body for starting a pipeline run
type CreatePipelineRequest struct {
	IdeaCount int `json:"idea_count"`
}

// Validate validates the request body and applies the default idea count
func (r *CreatePipelineRequest) Validate() error {
	if r.IdeaCount == 0 {
		r.IdeaCount = domain.DEFAULT_IDEA_COUNT
	}
	if r.IdeaCount < 0 || r.IdeaCount > domain.MAX_IDEA_COUNT {
		return apierrors.NewValidationError(fmt.Sprintf("idea_count must be between 1 and %d", domain.MAX_IDEA_COUNT))
	}
	return nil
}

// VoteRequest represents a token holder vote on the pending pipeline artefact
type VoteRequest struct {
	Item  domain.VoteItem `json:"item"`
	Vote  domain.Vote     `json:"vote"`
	Voter string          `json:"voter"`
}

// Validate validates the request body and normalizes the voter
func (r *VoteRequest) Validate() error {
	if _, ok := domain.VoteTrigger(r.Item, r.Vote); !ok {
		return apierrors.NewValidationError("item must be idea or product and vote must be approve or reject")
	}
	r.Voter = domain.NormalizeWallet(r.Voter)
	if r.Voter == "" {
		return apierrors.NewValidationError("voter is required")
	}
	return nil
}

// ResumeRequest represents the request body for resuming a failed pipeline run
type ResumeRequest struct {
	Actor string `json:"actor,omitempty"`
}
