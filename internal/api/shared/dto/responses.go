package dto

import (
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/ai-company/internal/domain"
	"github.com/feral-file/ai-company/internal/store/schema"
)

// PurchaseResponse describes a completed token purchase
type PurchaseResponse struct {
	TokensBought  int64   `json:"tokens_bought"`
	PricePerToken float64 `json:"price_per_token"`
	TotalCost     float64 `json:"total_cost"`
	AgentName     string  `json:"agent_name"`
	TokenSymbol   string  `json:"token_symbol"`
	// TokensAvailable is the availability left after the purchase
	TokensAvailable int64 `json:"tokens_available"`
}

// LaunchResponse is the result of launching a listing
type LaunchResponse struct {
	Company         schema.Company `json:"company"`
	AlreadyLaunched bool           `json:"already_launched"`
}

// HolderResponse aggregates the tokens one wallet holds in a company
type HolderResponse struct {
	Wallet      string `json:"wallet"`
	TokensOwned int64  `json:"tokens_owned"`
}

// CompanyResponse is a company with its token holders
type CompanyResponse struct {
	schema.Company
	Holders []HolderResponse `json:"holders"`
}

// RevenueResponse is the result of distributing revenue
type RevenueResponse struct {
	DistributionID uint64              `json:"distribution_id"`
	ReceiptHash    string              `json:"receipt_hash"`
	Distribution   domain.Distribution `json:"distribution"`
	Summary        string              `json:"summary"`
}

// PipelineRunResponse represents a pipeline run and its stage snapshots
type PipelineRunResponse struct {
	ID                string               `json:"id"`
	State             domain.PipelineState `json:"state"`
	AwaitingVote      *domain.VoteItem     `json:"awaiting_vote,omitempty"`
	IdeaCount         int                  `json:"idea_count"`
	Ideas             datatypes.JSON       `json:"ideas,omitempty"`
	Idea              datatypes.JSON       `json:"idea,omitempty"`
	Research          datatypes.JSON       `json:"research,omitempty"`
	Product           datatypes.JSON       `json:"product,omitempty"`
	MarketingStrategy datatypes.JSON       `json:"marketingStrategy,omitempty"`
	TechnicalStrategy datatypes.JSON       `json:"technicalStrategy,omitempty"`
	BoltPrompt        datatypes.JSON       `json:"boltPrompt,omitempty"`
	FailedStage       *domain.Stage        `json:"failed_stage,omitempty"`
	LastError         *string              `json:"last_error,omitempty"`
	WorkflowID        string               `json:"workflow_id,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// MapPipelineRunToDTO maps a pipeline run model to its response
func MapPipelineRunToDTO(run *schema.PipelineRun) *PipelineRunResponse {
	resp := &PipelineRunResponse{
		ID:                run.ID,
		State:             run.State,
		IdeaCount:         run.IdeaCount,
		Ideas:             run.Ideas,
		Idea:              run.Idea,
		Research:          run.Research,
		Product:           run.Product,
		MarketingStrategy: run.MarketingStrategy,
		TechnicalStrategy: run.TechnicalStrategy,
		BoltPrompt:        run.BoltPrompt,
		FailedStage:       run.FailedStage,
		LastError:         run.LastError,
		WorkflowID:        run.WorkflowID,
		CreatedAt:         run.CreatedAt,
		UpdatedAt:         run.UpdatedAt,
	}

	var item domain.VoteItem
	switch run.State {
	case domain.PipelineStateIdeaPending:
		item = domain.VoteItemIdea
	case domain.PipelineStateProductPending:
		item = domain.VoteItemProduct
	}
	if item != "" {
		resp.AwaitingVote = &item
	}

	return resp
}

// MapHoldersToDTO aggregates holdings per wallet, keeping first purchase order
func MapHoldersToDTO(holdings []schema.AgentTokenHolding) []HolderResponse {
	index := make(map[string]int)
	holders := make([]HolderResponse, 0, len(holdings))
	for _, h := range holdings {
		i, ok := index[h.UserWallet]
		if !ok {
			index[h.UserWallet] = len(holders)
			holders = append(holders, HolderResponse{Wallet: h.UserWallet, TokensOwned: h.TokensOwned})
			continue
		}
		holders[i].TokensOwned += h.TokensOwned
	}
	return holders
}
