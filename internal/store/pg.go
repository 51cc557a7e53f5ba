package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ai-company/internal/domain"
	"github.com/feral-file/ai-company/internal/logger"
	"github.com/feral-file/ai-company/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// Ping checks the database connection
func (s *pgStore) Ping(ctx context.Context) error {
	return s.db.WithContext(ctx).Exec("SELECT 1").Error
}

// =============================================================================
// Stage outputs
// =============================================================================

// CreateIdeas persists generated ideas and fills in their IDs
func (s *pgStore) CreateIdeas(ctx context.Context, ideas []schema.Idea) error {
	if len(ideas) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&ideas).Error; err != nil {
		return fmt.Errorf("failed to create ideas: %w", err)
	}
	return nil
}

// CreateResearch persists research for an idea
func (s *pgStore) CreateResearch(ctx context.Context, research *schema.Research) error {
	if err := s.db.WithContext(ctx).Create(research).Error; err != nil {
		return fmt.Errorf("failed to create research: %w", err)
	}
	return nil
}

// CreateProduct persists a product design
func (s *pgStore) CreateProduct(ctx context.Context, product *schema.Product) error {
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// =============================================================================
// Agent activity
// =============================================================================

// RecordActivity appends an agent activity log entry
func (s *pgStore) RecordActivity(ctx context.Context, agentName, action string, details json.RawMessage) error {
	activity := schema.AgentActivity{
		AgentName: agentName,
		Action:    action,
		Details:   datatypes.JSON(details),
	}
	if err := s.db.WithContext(ctx).Create(&activity).Error; err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

// ListActivities returns the latest activity entries, newest first
func (s *pgStore) ListActivities(ctx context.Context, limit int) ([]schema.AgentActivity, error) {
	if limit <= 0 {
		limit = domain.ACTIVITY_FEED_LIMIT
	}

	var activities []schema.AgentActivity
	err := s.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&activities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

// =============================================================================
// Marketplace
// =============================================================================

// CreateListing creates a listing, returning ErrDuplicateTokenSymbol when the symbol is taken
func (s *pgStore) CreateListing(ctx context.Context, input CreateListingInput) (*schema.CEOAgent, error) {
	listing := schema.CEOAgent{
		Name:               input.Name,
		CompanyIdea:        input.CompanyIdea,
		Description:        input.Description,
		CEOCharacteristics: input.CEOCharacteristics,
		CreatorWallet:      input.CreatorWallet,
		TokenSymbol:        input.TokenSymbol,
		TotalTokens:        input.TotalTokens,
		TokensAvailable:    input.TotalTokens,
		PricePerToken:      input.PricePerToken,
		LaunchTimeline:     input.LaunchTimeline,
		LaunchDate:         input.LaunchDate,
		TimeDuration:       input.TimeDuration,
		Status:             string(domain.ListingStatusAvailable),
	}

	// The unique index on token_symbol arbitrates concurrent creates
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token_symbol"}},
			DoNothing: true,
		}).
		Create(&listing)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to create listing: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrDuplicateTokenSymbol
	}

	return &listing, nil
}

// GetListing retrieves a listing by ID
func (s *pgStore) GetListing(ctx context.Context, id uint64) (*schema.CEOAgent, error) {
	var listing schema.CEOAgent
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &listing, nil
}

// ListListings returns all listings, newest first
func (s *pgStore) ListListings(ctx context.Context) ([]schema.CEOAgent, error) {
	var listings []schema.CEOAgent
	err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	return listings, nil
}

// ListDueListings returns listings whose launch date is at or before now, oldest first
func (s *pgStore) ListDueListings(ctx context.Context, now time.Time, limit int) ([]schema.CEOAgent, error) {
	var listings []schema.CEOAgent
	query := s.db.WithContext(ctx).
		Where("launch_date <= ?", now).
		Order("launch_date ASC, id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to list due listings: %w", err)
	}
	return listings, nil
}

// BuyTokens decrements availability and appends a holding in one transaction
func (s *pgStore) BuyTokens(ctx context.Context, input BuyTokensInput) (*TokenPurchase, error) {
	if input.Tokens <= 0 {
		return nil, domain.NewValidationError("Tokens to buy must be a positive number")
	}

	var purchase TokenPurchase
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the listing row so concurrent purchases serialize
		var listing schema.CEOAgent
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.ListingID).
			First(&listing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrListingNotFound
			}
			return fmt.Errorf("failed to lock listing: %w", err)
		}

		if input.Tokens > listing.TokensAvailable {
			return &domain.InsufficientTokensError{Available: listing.TokensAvailable}
		}

		// 2. Conditional decrement
		result := tx.Model(&schema.CEOAgent{}).
			Where("id = ? AND tokens_available >= ?", input.ListingID, input.Tokens).
			Updates(map[string]interface{}{
				"tokens_available": gorm.Expr("tokens_available - ?", input.Tokens),
				"updated_at":       gorm.Expr("now()"),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update tokens available: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return &domain.InsufficientTokensError{Available: listing.TokensAvailable}
		}
		listing.TokensAvailable -= input.Tokens

		// 3. Append the holding
		holding := schema.AgentTokenHolding{
			UserWallet:    input.Wallet,
			CEOAgentID:    listing.ID,
			TokensOwned:   input.Tokens,
			PurchasePrice: listing.PricePerToken,
		}
		if err := tx.Create(&holding).Error; err != nil {
			return fmt.Errorf("failed to create holding: %w", err)
		}

		purchase = TokenPurchase{Listing: listing, Holding: holding}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &purchase, nil
}

// LaunchListing turns a listing into a company in one transaction.
// If the listing was already launched the existing company is returned.
func (s *pgStore) LaunchListing(ctx context.Context, listingID uint64, launchedAt time.Time) (*LaunchResult, error) {
	var result LaunchResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Already launched
		company, err := findCompanyByCEOAgentID(tx, listingID)
		if err != nil {
			return err
		}
		if company != nil {
			result = LaunchResult{Company: *company, AlreadyLaunched: true}
			return nil
		}

		// 2. Lock the listing
		var listing schema.CEOAgent
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", listingID).
			First(&listing).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to lock listing: %w", err)
			}

			// A concurrent launch may have committed while we waited on the lock
			company, err := findCompanyByCEOAgentID(tx, listingID)
			if err != nil {
				return err
			}
			if company == nil {
				return domain.ErrListingNotFound
			}
			result = LaunchResult{Company: *company, AlreadyLaunched: true}
			return nil
		}

		// 3. Insert the company and remove the listing
		newCompany := schema.Company{
			CEOAgentID:         listing.ID,
			Name:               domain.CompanyName(listing.Name),
			CEOAgentName:       listing.Name,
			TokenSymbol:        listing.TokenSymbol,
			CompanyIdea:        listing.CompanyIdea,
			Description:        listing.Description,
			CEOCharacteristics: listing.CEOCharacteristics,
			TotalTokens:        listing.TotalTokens,
			PricePerToken:      listing.PricePerToken,
			TimeDuration:       listing.TimeDuration,
			Status:             string(domain.CompanyStatusRunning),
			CurrentRevenue:     0,
			LaunchedDate:       launchedAt,
		}
		if err := tx.Create(&newCompany).Error; err != nil {
			return fmt.Errorf("failed to create company: %w", err)
		}

		if err := tx.Delete(&schema.CEOAgent{}, listing.ID).Error; err != nil {
			return fmt.Errorf("failed to delete listing: %w", err)
		}

		result = LaunchResult{Company: newCompany}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func findCompanyByCEOAgentID(tx *gorm.DB, ceoAgentID uint64) (*schema.Company, error) {
	var company schema.Company
	err := tx.Where("ceo_agent_id = ?", ceoAgentID).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &company, nil
}

// =============================================================================
// Companies
// =============================================================================

// ListCompanies returns all companies, most recently launched first
func (s *pgStore) ListCompanies(ctx context.Context) ([]schema.Company, error) {
	var companies []schema.Company
	err := s.db.WithContext(ctx).Order("launched_date DESC, id DESC").Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

// GetCompany retrieves a company by ID
func (s *pgStore) GetCompany(ctx context.Context, id uint64) (*schema.Company, error) {
	var company schema.Company
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &company, nil
}

// GetHoldingsByCEOAgentID returns all holdings of a listing or launched company
func (s *pgStore) GetHoldingsByCEOAgentID(ctx context.Context, ceoAgentID uint64) ([]schema.AgentTokenHolding, error) {
	var holdings []schema.AgentTokenHolding
	err := s.db.WithContext(ctx).
		Where("ceo_agent_id = ?", ceoAgentID).
		Order("id ASC").
		Find(&holdings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get holdings: %w", err)
	}
	return holdings, nil
}

// GetPortfolio aggregates the holdings of a wallet per CEO agent
func (s *pgStore) GetPortfolio(ctx context.Context, wallet string) (*Portfolio, error) {
	type aggregate struct {
		CEOAgentID    uint64
		TokensOwned   int64
		TotalInvested float64
	}

	var rows []aggregate
	err := s.db.WithContext(ctx).
		Model(&schema.AgentTokenHolding{}).
		Select("ceo_agent_id, SUM(tokens_owned) AS tokens_owned, SUM(tokens_owned * purchase_price) AS total_invested").
		Where("user_wallet = ?", wallet).
		Group("ceo_agent_id").
		Order("ceo_agent_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate holdings: %w", err)
	}

	portfolio := &Portfolio{Wallet: wallet, Holdings: []PortfolioHolding{}}
	if len(rows) == 0 {
		return portfolio, nil
	}

	ids := make([]uint64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.CEOAgentID)
	}

	var listings []schema.CEOAgent
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to get listings: %w", err)
	}
	listingByID := make(map[uint64]schema.CEOAgent, len(listings))
	for _, l := range listings {
		listingByID[l.ID] = l
	}

	var companies []schema.Company
	if err := s.db.WithContext(ctx).Where("ceo_agent_id IN ?", ids).Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("failed to get companies: %w", err)
	}
	companyByAgent := make(map[uint64]schema.Company, len(companies))
	for _, c := range companies {
		companyByAgent[c.CEOAgentID] = c
	}

	for _, r := range rows {
		holding := PortfolioHolding{
			CEOAgentID:    r.CEOAgentID,
			TokensOwned:   r.TokensOwned,
			TotalInvested: r.TotalInvested,
		}
		if c, ok := companyByAgent[r.CEOAgentID]; ok {
			id := c.ID
			holding.AgentName = c.CEOAgentName
			holding.TokenSymbol = c.TokenSymbol
			holding.Status = c.Status
			holding.CompanyID = &id
			holding.CompanyName = c.Name
		} else if l, ok := listingByID[r.CEOAgentID]; ok {
			holding.AgentName = l.Name
			holding.TokenSymbol = l.TokenSymbol
			holding.Status = l.Status
		} else {
			logger.WarnCtx(ctx, "Holding references unknown CEO agent", zap.Uint64("ceoAgentID", r.CEOAgentID))
		}

		portfolio.Holdings = append(portfolio.Holdings, holding)
		portfolio.TotalTokens += r.TokensOwned
		portfolio.TotalInvested += r.TotalInvested
	}

	return portfolio, nil
}

// RecordRevenue persists a distribution and, for companies, increases current revenue
func (s *pgStore) RecordRevenue(ctx context.Context, input RecordRevenueInput) (*schema.RevenueDistribution, error) {
	payouts, err := json.Marshal(input.Distribution.Payouts)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payouts: %w", err)
	}

	distribution := schema.RevenueDistribution{
		CompanyID:     input.CompanyID,
		PipelineRunID: input.PipelineRunID,
		TotalAmount:   input.Distribution.Total,
		CompanyShare:  input.Distribution.CompanyShare,
		HolderShare:   input.Distribution.HolderShare,
		Payouts:       datatypes.JSON(payouts),
		ReceiptHash:   input.ReceiptHash,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if input.CompanyID != nil {
			var company schema.Company
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ?", *input.CompanyID).
				First(&company).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrCompanyNotFound
				}
				return fmt.Errorf("failed to lock company: %w", err)
			}

			err = tx.Model(&schema.Company{}).
				Where("id = ?", company.ID).
				Update("current_revenue", gorm.Expr("current_revenue + ?", input.Distribution.Total)).Error
			if err != nil {
				return fmt.Errorf("failed to update company revenue: %w", err)
			}
		}

		if err := tx.Create(&distribution).Error; err != nil {
			return fmt.Errorf("failed to create revenue distribution: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &distribution, nil
}

// =============================================================================
// Pipeline runs
// =============================================================================

// CreatePipelineRun inserts a new pipeline run
func (s *pgStore) CreatePipelineRun(ctx context.Context, run *schema.PipelineRun) error {
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to create pipeline run: %w", err)
	}
	return nil
}

// GetPipelineRun retrieves a pipeline run by ID
func (s *pgStore) GetPipelineRun(ctx context.Context, id string) (*schema.PipelineRun, error) {
	var run schema.PipelineRun
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&run).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pipeline run: %w", err)
	}
	return &run, nil
}

// SetPipelineWorkflowID records the workflow driving a run
func (s *pgStore) SetPipelineWorkflowID(ctx context.Context, id string, workflowID string) error {
	result := s.db.WithContext(ctx).
		Model(&schema.PipelineRun{}).
		Where("id = ?", id).
		Update("workflow_id", workflowID)
	if result.Error != nil {
		return fmt.Errorf("failed to set workflow id: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrPipelineRunNotFound
	}
	return nil
}

// ApplyPipelineTransition moves a run from one state to another and appends the transition.
// The run must still be in input.From, otherwise ErrInvalidTransition is returned.
func (s *pgStore) ApplyPipelineTransition(ctx context.Context, input ApplyTransitionInput) (*schema.PipelineRun, error) {
	var run schema.PipelineRun
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the run
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.RunID).
			First(&run).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPipelineRunNotFound
			}
			return fmt.Errorf("failed to lock pipeline run: %w", err)
		}

		if run.State != input.From {
			return fmt.Errorf("%w: run is %s, expected %s", domain.ErrInvalidTransition, run.State, input.From)
		}

		// 2. Update state and snapshots
		updates := map[string]interface{}{
			"state":      string(input.To),
			"updated_at": gorm.Expr("now()"),
		}
		for column, value := range input.Snapshots.columns() {
			updates[column] = value
		}
		switch {
		case input.To == domain.PipelineStateFailed:
			updates["failed_stage"] = string(input.FailedStage)
			updates["last_error"] = input.Note
		case input.From == domain.PipelineStateFailed:
			updates["failed_stage"] = nil
			updates["last_error"] = nil
		}

		if err := tx.Model(&schema.PipelineRun{}).Where("id = ?", input.RunID).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update pipeline run: %w", err)
		}

		// 3. Append the transition
		transition := schema.PipelineTransition{
			RunID:       input.RunID,
			FromState:   input.From,
			ToState:     input.To,
			Trigger:     input.Trigger,
			Actor:       input.Actor,
			ContentHash: input.ContentHash,
			Note:        input.Note,
		}
		if err := tx.Create(&transition).Error; err != nil {
			return fmt.Errorf("failed to create pipeline transition: %w", err)
		}

		// Reload to return the persisted row
		return tx.Where("id = ?", input.RunID).First(&run).Error
	})
	if err != nil {
		return nil, err
	}

	return &run, nil
}

func (p PipelineSnapshots) columns() map[string]datatypes.JSON {
	columns := make(map[string]datatypes.JSON)
	set := func(name string, value datatypes.JSON) {
		if value != nil {
			columns[name] = value
		}
	}
	set("ideas", p.Ideas)
	set("idea", p.Idea)
	set("research", p.Research)
	set("product", p.Product)
	set("marketing_strategy", p.MarketingStrategy)
	set("technical_strategy", p.TechnicalStrategy)
	set("bolt_prompt", p.BoltPrompt)
	return columns
}

// ListPipelineTransitions returns the transitions of a run in order
func (s *pgStore) ListPipelineTransitions(ctx context.Context, runID string) ([]schema.PipelineTransition, error) {
	var transitions []schema.PipelineTransition
	err := s.db.WithContext(ctx).
		Where("run_id = ?", runID).
		Order("id ASC").
		Find(&transitions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pipeline transitions: %w", err)
	}
	return transitions, nil
}
