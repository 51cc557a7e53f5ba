package domain

// PipelineState is a named state of the company pipeline
type PipelineState string

const (
	PipelineStateIdeaPending     PipelineState = "idea_pending"
	PipelineStateResearching     PipelineState = "researching"
	PipelineStateProductPending  PipelineState = "product_pending"
	PipelineStateStrategyPending PipelineState = "strategy_pending"
	PipelineStatePromptReady     PipelineState = "prompt_ready"
	PipelineStateCompleted       PipelineState = "completed"
	PipelineStateFailed          PipelineState = "failed"
)

// Terminal reports whether no further transitions are expected
func (s PipelineState) Terminal() bool {
	return s == PipelineStateCompleted
}

// AwaitingVote reports whether the state is waiting for a token holder vote
func (s PipelineState) AwaitingVote() bool {
	return s == PipelineStateIdeaPending || s == PipelineStateProductPending
}

// Trigger is the event that causes a pipeline transition
type Trigger string

const (
	TriggerStart           Trigger = "start"
	TriggerApproveIdea     Trigger = "approve_idea"
	TriggerRejectIdea      Trigger = "reject_idea"
	TriggerResearchDone    Trigger = "research_done"
	TriggerApproveProduct  Trigger = "approve_product"
	TriggerRejectProduct   Trigger = "reject_product"
	TriggerStrategiesReady Trigger = "strategies_ready"
	TriggerRevenueDelay    Trigger = "revenue_delay_elapsed"
	TriggerStageError      Trigger = "stage_error"
	TriggerResume          Trigger = "resume"
)

// VoteItem is the pipeline artefact being voted on
type VoteItem string

const (
	VoteItemIdea    VoteItem = "idea"
	VoteItemProduct VoteItem = "product"
)

// Vote is a token holder decision
type Vote string

const (
	VoteApprove Vote = "approve"
	VoteReject  Vote = "reject"
)

// Valid checks if the vote is a known decision
func (v Vote) Valid() bool {
	return v == VoteApprove || v == VoteReject
}

// VoteTrigger maps a vote on an item to its pipeline trigger
func VoteTrigger(item VoteItem, vote Vote) (Trigger, bool) {
	switch {
	case item == VoteItemIdea && vote == VoteApprove:
		return TriggerApproveIdea, true
	case item == VoteItemIdea && vote == VoteReject:
		return TriggerRejectIdea, true
	case item == VoteItemProduct && vote == VoteApprove:
		return TriggerApproveProduct, true
	case item == VoteItemProduct && vote == VoteReject:
		return TriggerRejectProduct, true
	default:
		return "", false
	}
}

// Stage names an LLM-backed pipeline step
type Stage string

const (
	StageIdea       Stage = "idea"
	StageResearch   Stage = "research"
	StageProduct    Stage = "product"
	StageStrategies Stage = "strategies"
	StagePrompt     Stage = "prompt"
	StageRevenue    Stage = "revenue"
)

// PipelineVote is the payload of a vote signal sent to a running pipeline
type PipelineVote struct {
	Item  VoteItem `json:"item"`
	Vote  Vote     `json:"vote"`
	Voter string   `json:"voter"`
}

// Payout is the amount paid to one token holder
type Payout struct {
	Wallet string  `json:"wallet"`
	Tokens int64   `json:"tokens"`
	Amount float64 `json:"amount"`
}

// Distribution is the split of a revenue amount between company and token holders
type Distribution struct {
	Total        float64  `json:"total"`
	CompanyShare float64  `json:"company_share"`
	HolderShare  float64  `json:"holder_share"`
	Payouts      []Payout `json:"payouts"`
}
