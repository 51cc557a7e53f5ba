package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/feral-file/ai-company/internal/domain"
	"github.com/feral-file/ai-company/internal/llm"
)

const (
	ceoName             = "CEO Agent"
	ideaTokenBudget     = 2000
	evaluateTokenBudget = 1000
)

// CEO generates business ideas and judges products
type CEO struct {
	agent
}

// NewCEO creates the CEO role
func NewCEO(provider llm.Provider, recorder ActivityRecorder) *CEO {
	return &CEO{agent{
		name:     ceoName,
		system:   "You are the visionary CEO of an AI-run startup studio. You think in markets, customers and revenue. Always answer with valid JSON only.",
		provider: provider,
		recorder: recorder,
	}}
}

// ideasReply is the expected shape of an idea generation reply
type ideasReply struct {
	Ideas []domain.Idea `json:"ideas"`
}

func (r *ideasReply) Validate() error {
	if len(r.Ideas) == 0 {
		return fmt.Errorf("%w: no ideas returned", domain.ErrMalformedOutput)
	}
	for i := range r.Ideas {
		if err := r.Ideas[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// GenerateIdeas proposes count business ideas
func (c *CEO) GenerateIdeas(ctx context.Context, count int) ([]domain.Idea, error) {
	if count <= 0 {
		count = domain.DEFAULT_IDEA_COUNT
	}
	count = min(count, domain.MAX_IDEA_COUNT)

	prompt := fmt.Sprintf(`Generate %d innovative business ideas that an AI-run company could build and operate.
Focus on ideas that are realistic to launch as a web product, have a clear revenue model and address a real problem.

Format your response as JSON with this structure:
{
  "ideas": [
    {
      "title": "Idea Title",
      "description": "Brief description",
      "revenue_model": "How it makes money",
      "success_factors": "Why it could work"
    }
  ]
}`, count)

	var reply ideasReply
	ok, err := c.ask(ctx, prompt, ideaTokenBudget, &reply)
	if err != nil {
		return nil, err
	}

	ideas := reply.Ideas
	if !ok {
		ideas = fallbackIdeas(count)
	}
	if len(ideas) > count {
		ideas = ideas[:count]
	}
	for i := range ideas {
		if ideas[i].PotentialRevenue == "" {
			ideas[i].PotentialRevenue = ideas[i].RevenueModel
		}
	}

	titles := make([]string, 0, len(ideas))
	for _, idea := range ideas {
		titles = append(titles, idea.Title)
	}
	c.record(ctx, "Generated business ideas", map[string]any{
		"count":    len(ideas),
		"titles":   titles,
		"fallback": !ok,
	})

	return ideas, nil
}

// EvaluateProduct scores a product and decides whether to proceed
func (c *CEO) EvaluateProduct(ctx context.Context, product domain.Product) (*domain.ProductEvaluation, error) {
	features := make([]string, 0, len(product.Features))
	for _, f := range product.Features {
		features = append(features, f.Name)
	}

	prompt := fmt.Sprintf(`As CEO, evaluate this product concept:

Product: %s
Description: %s
Features: %s
Target Market: %s

Provide your assessment in JSON format:
{
  "viability_score": 1-10,
  "market_potential": "High/Medium/Low",
  "recommendations": "What to improve",
  "go_decision": true/false
}`, product.ProductName, product.ProductDescription, strings.Join(features, ", "), toJSON(product.TargetMarket))

	var evaluation domain.ProductEvaluation
	ok, err := c.ask(ctx, prompt, evaluateTokenBudget, &evaluation)
	if err != nil {
		return nil, err
	}
	if !ok {
		evaluation = fallbackEvaluation()
	}

	c.record(ctx, "Evaluated product", map[string]any{
		"product_name":    product.ProductName,
		"viability_score": evaluation.ViabilityScore,
		"go_decision":     evaluation.GoDecision,
		"fallback":        !ok,
	})

	return &evaluation, nil
}
