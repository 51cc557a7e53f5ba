package agents

import (
	"context"
	"fmt"

	"github.com/feral-file/ai-company/internal/domain"
	"github.com/feral-file/ai-company/internal/llm"
)

const (
	ctoName        = "CTO Agent"
	ctoTokenBudget = 1500
)

// CTO designs the technical approach
type CTO struct {
	agent
}

// NewCTO creates the technical role
func NewCTO(provider llm.Provider, recorder ActivityRecorder) *CTO {
	return &CTO{agent{
		name:     ctoName,
		system:   "You are a hands-on CTO who favours simple, proven technology. Always answer with valid JSON only.",
		provider: provider,
		recorder: recorder,
	}}
}

// DevelopTechnicalStrategy chooses the stack, architecture and delivery phases
func (c *CTO) DevelopTechnicalStrategy(ctx context.Context, idea domain.Idea, product domain.Product) (*domain.TechnicalStrategy, error) {
	prompt := fmt.Sprintf(`Create a technical strategy for this product.

Idea: %s
Product: %s
Description: %s
Features:
%s

Format your response as JSON with this structure:
{
  "technology_stack": {
    "frontend": ["Technology"],
    "backend": ["Technology"],
    "database": ["Technology"],
    "infrastructure": ["Technology"]
  },
  "architecture": {
    "overview": "Architecture summary",
    "components": ["Component"]
  },
  "development_phases": [
    {"phase": "Phase name", "duration": "Duration", "deliverables": ["Deliverable"]}
  ]
}`, idea.Title, product.ProductName, product.ProductDescription, toJSON(product.Features))

	var strategy domain.TechnicalStrategy
	ok, err := c.ask(ctx, prompt, ctoTokenBudget, &strategy)
	if err != nil {
		return nil, err
	}
	if !ok {
		strategy = fallbackTechnical()
	}

	c.record(ctx, "Developed technical strategy", map[string]any{
		"product_name":     product.ProductName,
		"tech_stack_count": len(strategy.TechnologyStack),
		"phases_count":     len(strategy.DevelopmentPhases),
		"fallback":         !ok,
	})

	return &strategy, nil
}
