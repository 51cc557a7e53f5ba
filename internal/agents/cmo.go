package agents

import (
	"context"
	"fmt"

	"github.com/feral-file/ai-company/internal/domain"
	"github.com/feral-file/ai-company/internal/llm"
)

const (
	cmoName        = "CMO Agent"
	cmoTokenBudget = 1500
)

// CMO designs the go-to-market strategy
type CMO struct {
	agent
}

// NewCMO creates the marketing role
func NewCMO(provider llm.Provider, recorder ActivityRecorder) *CMO {
	return &CMO{agent{
		name:     cmoName,
		system:   "You are a growth-focused chief marketing officer. Always answer with valid JSON only.",
		provider: provider,
		recorder: recorder,
	}}
}

// DevelopMarketingStrategy plans channels, segments and the launch
func (c *CMO) DevelopMarketingStrategy(ctx context.Context, idea domain.Idea, product domain.Product) (*domain.MarketingStrategy, error) {
	prompt := fmt.Sprintf(`Create a marketing strategy for this product.

Idea: %s
Product: %s
Description: %s
Target market:
%s

Format your response as JSON with this structure:
{
  "brand_positioning": "One sentence positioning",
  "key_messages": ["Message"],
  "marketing_channels": [
    {"channel": "Channel", "strategy": "How it is used", "budget": "Share of budget"}
  ],
  "target_segments": [
    {"segment": "Segment", "characteristics": "Who they are"}
  ],
  "launch_plan": {
    "pre_launch": ["Activity"],
    "launch": ["Activity"],
    "post_launch": ["Activity"]
  }
}`, idea.Title, product.ProductName, product.ProductDescription, toJSON(product.TargetMarket))

	var strategy domain.MarketingStrategy
	ok, err := c.ask(ctx, prompt, cmoTokenBudget, &strategy)
	if err != nil {
		return nil, err
	}
	if !ok {
		strategy = fallbackMarketing(product)
	}

	c.record(ctx, "Developed marketing strategy", map[string]any{
		"product_name":    product.ProductName,
		"channels_count":  len(strategy.MarketingChannels),
		"segments_count":  len(strategy.TargetSegments),
		"has_launch_plan": len(strategy.LaunchPlan.Launch) > 0,
		"fallback":        !ok,
	})

	return &strategy, nil
}
