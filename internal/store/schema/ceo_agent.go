package schema

import (
	"time"
)

// CEOAgent represents the ceo_agents table - CEO agent listings open for token sale
type CEOAgent struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// Name is the CEO agent name
	Name string `gorm:"column:name;not null;type:text" json:"name"`
	// CompanyIdea is the idea the company will pursue
	CompanyIdea string `gorm:"column:company_idea;not null;type:text" json:"company_idea"`
	// Description describes the listing
	Description string `gorm:"column:description;not null;type:text" json:"description"`
	// CEOCharacteristics describes the agent's personality
	CEOCharacteristics string `gorm:"column:ceo_characteristics;not null;type:text" json:"ceo_characteristics"`
	// CreatorWallet is the wallet of the listing creator
	CreatorWallet string `gorm:"column:creator_wallet;type:text" json:"creator_wallet"`
	// TokenSymbol is the unique upper-case token symbol
	TokenSymbol string `gorm:"column:token_symbol;not null;unique;type:varchar(32)" json:"token_symbol"`
	// TotalTokens is the number of tokens issued
	TotalTokens int64 `gorm:"column:total_tokens;not null" json:"total_tokens"`
	// TokensAvailable is the number of tokens not yet sold, 0 <= tokens_available <= total_tokens
	TokensAvailable int64 `gorm:"column:tokens_available;not null" json:"tokens_available"`
	// PricePerToken is the token price
	PricePerToken float64 `gorm:"column:price_per_token;not null;type:numeric(18,6)" json:"price_per_token"`
	// LaunchTimeline is the number of minutes between creation and launch
	LaunchTimeline int `gorm:"column:launch_timeline;not null" json:"launch_timeline"`
	// LaunchDate is when the listing becomes a company
	LaunchDate time.Time `gorm:"column:launch_date;not null;type:timestamptz" json:"launch_date"`
	// TimeDuration mirrors the launch timeline for display
	TimeDuration int `gorm:"column:time_duration;not null" json:"time_duration"`
	// Status is the listing status (available)
	Status string `gorm:"column:status;not null;default:'available';type:varchar(32)" json:"status"`
	// CreatedAt is the timestamp when the listing was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"created_at"`
	// UpdatedAt is the timestamp when the listing was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz" json:"updated_at"`
}

// TableName specifies the table name for the CEOAgent model
func (CEOAgent) TableName() string {
	return "ceo_agents"
}

// Company represents the companies table - launched CEO agents
type Company struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// CEOAgentID is the id of the launched listing, unique so a listing launches once
	CEOAgentID uint64 `gorm:"column:ceo_agent_id;not null;unique" json:"ceo_agent_id"`
	// Name is the company name derived from the agent name
	Name string `gorm:"column:name;not null;type:text" json:"name"`
	// CEOAgentName is the name of the CEO agent
	CEOAgentName string `gorm:"column:ceo_agent_name;not null;type:text" json:"ceo_agent_name"`
	// TokenSymbol is copied from the listing
	TokenSymbol string `gorm:"column:token_symbol;not null;type:varchar(32)" json:"token_symbol"`
	// CompanyIdea is copied from the listing
	CompanyIdea string `gorm:"column:company_idea;type:text" json:"company_idea"`
	// Description is copied from the listing
	Description string `gorm:"column:description;type:text" json:"description"`
	// CEOCharacteristics is copied from the listing
	CEOCharacteristics string `gorm:"column:ceo_characteristics;type:text" json:"ceo_characteristics"`
	// TotalTokens is copied from the listing
	TotalTokens int64 `gorm:"column:total_tokens;not null" json:"total_tokens"`
	// PricePerToken is copied from the listing
	PricePerToken float64 `gorm:"column:price_per_token;not null;type:numeric(18,6)" json:"price_per_token"`
	// TimeDuration is copied from the listing
	TimeDuration int `gorm:"column:time_duration;not null" json:"time_duration"`
	// Status is the company status (running)
	Status string `gorm:"column:status;not null;default:'running';type:varchar(32)" json:"status"`
	// CurrentRevenue is the sum of all distributed revenue
	CurrentRevenue float64 `gorm:"column:current_revenue;not null;default:0;type:numeric(18,6)" json:"current_revenue"`
	// LaunchedDate is the timestamp when the company was launched
	LaunchedDate time.Time `gorm:"column:launched_date;not null;default:now();type:timestamptz" json:"launched_date"`
	// CreatedAt is the timestamp when the row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"created_at"`
}

// TableName specifies the table name for the Company model
func (Company) TableName() string {
	return "companies"
}

// AgentTokenHolding represents the agent_token_holdings table - append-only token purchases
type AgentTokenHolding struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// UserWallet is the buyer wallet or token holder id
	UserWallet string `gorm:"column:user_wallet;not null;type:text" json:"user_wallet"`
	// CEOAgentID is the listing the tokens belong to; kept after launch as the company's ceo_agent_id
	CEOAgentID uint64 `gorm:"column:ceo_agent_id;not null" json:"ceo_agent_id"`
	// TokensOwned is the number of tokens bought
	TokensOwned int64 `gorm:"column:tokens_owned;not null" json:"tokens_owned"`
	// PurchasePrice is the price per token at purchase time
	PurchasePrice float64 `gorm:"column:purchase_price;not null;type:numeric(18,6)" json:"purchase_price"`
	// CreatedAt is the timestamp of the purchase
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"created_at"`
}

// TableName specifies the table name for the AgentTokenHolding model
func (AgentTokenHolding) TableName() string {
	return "agent_token_holdings"
}
