package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ai-company/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no prefix)
	router.GET("/health", handler.HealthCheck)

	auth := middleware.Auth(authCfg)

	api := router.Group("/api")

	agents := api.Group("/agents")
	{
		agents.POST("/generate-ideas", handler.GenerateIdeas)
		agents.POST("/research", handler.ResearchIdea)
		agents.POST("/develop-product", handler.DevelopProduct)
		agents.POST("/evaluate-product", handler.EvaluateProduct)
		agents.POST("/marketing-strategy", handler.MarketingStrategy)
		agents.POST("/technical-strategy", handler.TechnicalStrategy)
		agents.POST("/strategies", handler.Strategies)
		agents.POST("/bolt-prompt", handler.BoltPrompt)
		agents.GET("/activities", handler.ListActivities)
	}

	listings := api.Group("/ceo-agents")
	{
		listings.GET("", handler.ListListings)
		listings.POST("", handler.CreateListing)
		listings.GET("/:id", handler.GetListing)
		listings.POST("/:id/buy-tokens", handler.BuyTokens)
		listings.POST("/:id/launch", handler.LaunchListing)
	}

	companies := api.Group("/companies")
	{
		companies.GET("", handler.ListCompanies)
		companies.GET("/:id", handler.GetCompany)
		companies.POST("/:id/revenue", auth, handler.DistributeRevenue)
	}

	api.GET("/portfolio/:wallet", handler.GetPortfolio)

	pipelines := api.Group("/pipelines")
	{
		pipelines.POST("", auth, handler.StartPipeline)
		pipelines.GET("/:id", handler.GetPipelineRun)
		pipelines.GET("/:id/transitions", handler.ListPipelineTransitions)
		pipelines.POST("/:id/votes", handler.VotePipeline)
		pipelines.POST("/:id/resume", auth, handler.ResumePipeline)
	}
}
