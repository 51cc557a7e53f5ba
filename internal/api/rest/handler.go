package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ai-company/internal/agents"
	"github.com/feral-file/ai-company/internal/api/middleware"
	"github.com/feral-file/ai-company/internal/api/shared/dto"
	"github.com/feral-file/ai-company/internal/api/shared/executor"
	"github.com/feral-file/ai-company/internal/domain"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// POST /api/agents/generate-ideas
	GenerateIdeas(c *gin.Context)
	// POST /api/agents/research
	ResearchIdea(c *gin.Context)
	// POST /api/agents/develop-product
	DevelopProduct(c *gin.Context)
	// POST /api/agents/evaluate-product
	EvaluateProduct(c *gin.Context)
	// POST /api/agents/marketing-strategy
	MarketingStrategy(c *gin.Context)
	// POST /api/agents/technical-strategy
	TechnicalStrategy(c *gin.Context)
	// POST /api/agents/strategies
	Strategies(c *gin.Context)
	// POST /api/agents/bolt-prompt
	BoltPrompt(c *gin.Context)
	// GET /api/agents/activities?limit=<limit>
	ListActivities(c *gin.Context)

	// GET /api/ceo-agents
	ListListings(c *gin.Context)
	// GET /api/ceo-agents/:id
	GetListing(c *gin.Context)
	// POST /api/ceo-agents
	CreateListing(c *gin.Context)
	// POST /api/ceo-agents/:id/buy-tokens
	BuyTokens(c *gin.Context)
	// POST /api/ceo-agents/:id/launch
	LaunchListing(c *gin.Context)

	// GET /api/companies
	ListCompanies(c *gin.Context)
	// GET /api/companies/:id
	GetCompany(c *gin.Context)
	// POST /api/companies/:id/revenue (requires authentication)
	DistributeRevenue(c *gin.Context)
	// GET /api/portfolio/:wallet
	GetPortfolio(c *gin.Context)

	// POST /api/pipelines (requires authentication)
	StartPipeline(c *gin.Context)
	// GET /api/pipelines/:id
	GetPipelineRun(c *gin.Context)
	// GET /api/pipelines/:id/transitions
	ListPipelineTransitions(c *gin.Context)
	// POST /api/pipelines/:id/votes
	VotePipeline(c *gin.Context)
	// POST /api/pipelines/:id/resume (requires authentication)
	ResumePipeline(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug    bool
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(debug bool, exec executor.Executor) Handler {
	return &handler{
		debug:    debug,
		executor: exec,
	}
}

// bindJSON binds the request body. An empty body is accepted when optional is set.
func bindJSON(c *gin.Context, req any, optional bool) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return true
		}
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return false
	}
	return true
}

// validatable is implemented by request bodies
type validatable interface {
	Validate() error
}

// bindAndValidate binds and validates a request body, responding on failure
func bindAndValidate(c *gin.Context, req validatable, optional bool) bool {
	if !bindJSON(c, req, optional) {
		return false
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "validate")
		return false
	}
	return true
}

// parseID parses a numeric path parameter
func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		respondBadRequest(c, fmt.Sprintf("Invalid %s", name))
		return 0, false
	}
	return id, true
}

// =============================================================================
// Agent stages
// =============================================================================

func (h *handler) GenerateIdeas(c *gin.Context) {
	var req dto.GenerateIdeasRequest
	if !bindAndValidate(c, &req, true) {
		return
	}

	ideas, err := h.executor.GenerateIdeas(c.Request.Context(), req.Count)
	if err != nil {
		respondError(c, err, "generate ideas")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "ideas": ideas})
}

func (h *handler) ResearchIdea(c *gin.Context) {
	var req dto.ResearchRequest
	if !bindAndValidate(c, &req, false) {
		return
	}

	research, err := h.executor.ResearchIdea(c.Request.Context(), *req.Idea)
	if err != nil {
		respondError(c, err, "research idea")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "research": research})
}

func (h *handler) DevelopProduct(c *gin.Context) {
	var req dto.DevelopProductRequest
	if !bindAndValidate(c, &req, false) {
		return
	}

	product, err := h.executor.DevelopProduct(c.Request.Context(), *req.Idea, req.Research)
	if err != nil {
		respondError(c, err, "develop product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

func (h *handler) EvaluateProduct(c *gin.Context) {
	var req dto.EvaluateProductRequest
	if !bindAndValidate(c, &req, false) {
		return
	}

	evaluation, err := h.executor.EvaluateProduct(c.Request.Context(), *req.Product)
	if err != nil {
		respondError(c, err, "evaluate product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "evaluation": evaluation})
}

func (h *handler) MarketingStrategy(c *gin.Context) {
	var req dto.StrategyRequest
	if !bindAndValidate(c, &req, false) {
		return
	}

	strategy, err := h.executor.DevelopMarketingStrategy(c.Request.Context(), *req.Idea, *req.Product)
	if err != nil {
		respondError(c, err, "marketing strategy")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "strategy": strategy})
}

func (h *handler) TechnicalStrategy(c *gin.Context) {
	var req dto.StrategyRequest
	if !bindAndValidate(c, &req, false) {
		return
	}

	strategy, err := h.executor.DevelopTechnicalStrategy(c.Request.Context(), *req.Idea, *req.Product)
	if err != nil {
		respondError(c, err, "technical strategy")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "strategy": strategy})
}

func (h *handler) Strategies(c *gin.Context) {
	var req dto.StrategyRequest
	if !bindAndValidate(c, &req, false) {
		return
	}

	strategies, err := h.executor.DevelopStrategies(c.Request.Context(), *req.Idea, *req.Product)
	if err != nil {
		respondError(c, err, "strategies")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"marketingStrategy": strategies.Marketing,
		"technicalStrategy": strategies.Technical,
	})
}

func (h *handler) BoltPrompt(c *gin.Context) {
	var req dto.BoltPromptRequest
	if !bindAndValidate(c, &req, false) {
		return
	}

	prompt, err := h.executor.CreateBoltPrompt(c.Request.Context(), agents.PromptInput{
		Idea:              *req.Idea,
		Product:           *req.Product,
		Research:          req.Research,
		MarketingStrategy: req.MarketingStrategy,
		TechnicalStrategy: req.TechnicalStrategy,
	})
	if err != nil {
		respondError(c, err, "bolt prompt")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "boltPrompt": prompt})
}

func (h *handler) ListActivities(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondValidationError(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	activities, err := h.executor.ListActivities(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err, "list activities")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "activities": activities})
}

// =============================================================================
// Marketplace
// =============================================================================

func (h *handler) ListListings(c *gin.Context) {
	listings, err := h.executor.ListListings(c.Request.Context())
	if err != nil {
		respondError(c, err, "list listings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": listings})
}

func (h *handler) GetListing(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	listing, err := h.executor.GetListing(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get listing")
		return
	}
	if listing == nil {
		respondNotFound(c, domain.ErrListingNotFound.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "agent": listing})
}

func (h *handler) CreateListing(c *gin.Context) {
	var req dto.CreateListingRequest
	if !bindAndValidate(c, &req, false) {
		return
	}

	listing, err := h.executor.CreateListing(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "create listing")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "CEO Agent created successfully!",
		"agent":   listing,
	})
}

func (h *handler) BuyTokens(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.BuyTokensRequest
	if !bindAndValidate(c, &req, false) {
		return
	}

	purchase, err := h.executor.BuyTokens(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "buy tokens")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  fmt.Sprintf("Successfully purchased %d %s tokens!", purchase.TokensBought, purchase.TokenSymbol),
		"purchase": purchase,
	})
}

func (h *handler) LaunchListing(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.executor.LaunchListing(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "launch listing")
		return
	}

	message := "Agent launched successfully!"
	if result.AlreadyLaunched {
		message = "Agent already launched!"
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"company": result.Company,
	})
}

// =============================================================================
// Companies
// =============================================================================

func (h *handler) ListCompanies(c *gin.Context) {
	companies, err := h.executor.ListCompanies(c.Request.Context())
	if err != nil {
		respondError(c, err, "list companies")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": companies})
}

func (h *handler) GetCompany(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	company, err := h.executor.GetCompany(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "get company")
		return
	}
	if company == nil {
		respondNotFound(c, "Company not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "company": company})
}

func (h *handler) DistributeRevenue(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.RevenueRequest
	if !bindAndValidate(c, &req, false) {
		return
	}

	revenue, err := h.executor.DistributeRevenue(c.Request.Context(), id, req.Amount)
	if err != nil {
		respondError(c, err, "distribute revenue")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "revenue": revenue})
}

func (h *handler) GetPortfolio(c *gin.Context) {
	portfolio, err := h.executor.GetPortfolio(c.Request.Context(), c.Param("wallet"))
	if err != nil {
		respondError(c, err, "get portfolio")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "portfolio": portfolio})
}

// =============================================================================
// Pipelines
// =============================================================================

func (h *handler) StartPipeline(c *gin.Context) {
	var req dto.CreatePipelineRequest
	if !bindAndValidate(c, &req, true) {
		return
	}

	run, err := h.executor.StartPipeline(c.Request.Context(), req.IdeaCount)
	if err != nil {
		respondError(c, err, "start pipeline")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"success": true, "run": run})
}

func (h *handler) GetPipelineRun(c *gin.Context) {
	run, err := h.executor.GetPipelineRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "get pipeline run")
		return
	}
	if run == nil {
		respondNotFound(c, "Pipeline run not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "run": run})
}

func (h *handler) ListPipelineTransitions(c *gin.Context) {
	transitions, err := h.executor.ListPipelineTransitions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "list pipeline transitions")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "transitions": transitions})
}

func (h *handler) VotePipeline(c *gin.Context) {
	var req dto.VoteRequest
	if !bindAndValidate(c, &req, false) {
		return
	}

	if err := h.executor.VotePipeline(c.Request.Context(), c.Param("id"), req); err != nil {
		respondError(c, err, "vote pipeline")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"success": true, "message": "Vote accepted"})
}

func (h *handler) ResumePipeline(c *gin.Context) {
	var req dto.ResumeRequest
	if !bindJSON(c, &req, true) {
		return
	}
	if req.Actor == "" {
		req.Actor = middleware.AuthSubject(c)
	}

	if err := h.executor.ResumePipeline(c.Request.Context(), c.Param("id"), req.Actor); err != nil {
		respondError(c, err, "resume pipeline")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"success": true, "message": "Pipeline resumed"})
}

// HealthCheck reports the API and database status
func (h *handler) HealthCheck(c *gin.Context) {
	status := "ok"
	code := http.StatusOK
	if err := h.executor.Ping(c.Request.Context()); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":  status,
		"service": "ai-company-api",
	})
}
