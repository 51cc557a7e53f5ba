package agents

import (
	"context"
	"fmt"

	"github.com/feral-file/ai-company/internal/domain"
	"github.com/feral-file/ai-company/internal/llm"
)

const (
	productName        = "Product Agent"
	productTokenBudget = 1500
)

// ProductManager turns an idea and its research into a product design
type ProductManager struct {
	agent
}

// NewProductManager creates the product role
func NewProductManager(provider llm.Provider, recorder ActivityRecorder) *ProductManager {
	return &ProductManager{agent{
		name:     productName,
		system:   "You are a pragmatic product manager who designs lean, shippable products. Always answer with valid JSON only.",
		provider: provider,
		recorder: recorder,
	}}
}

// DevelopProduct designs a product. research may be nil.
func (p *ProductManager) DevelopProduct(ctx context.Context, idea domain.Idea, research *domain.Research) (*domain.Product, error) {
	researchText := "No research available."
	if research != nil {
		researchText = toJSON(research)
	}

	prompt := fmt.Sprintf(`Design a product for this business idea.

Idea: %s
Description: %s

Market research:
%s

Format your response as JSON with this structure:
{
  "product_name": "Name",
  "product_description": "What it is and why it matters",
  "features": [
    {"name": "Feature", "description": "What it does", "priority": "high/medium/low"}
  ],
  "target_market": {
    "primary_audience": "Main users",
    "secondary_audience": "Other users",
    "demographics": ["..."],
    "pain_points": ["..."]
  },
  "revenue_model": "How the product makes money"
}`, idea.Title, idea.Description, researchText)

	var product domain.Product
	ok, err := p.ask(ctx, prompt, productTokenBudget, &product)
	if err != nil {
		return nil, err
	}
	if !ok {
		product = fallbackProduct(idea)
	}

	p.record(ctx, "Developed product", map[string]any{
		"idea":           idea.Title,
		"product_name":   product.ProductName,
		"features_count": len(product.Features),
		"fallback":       !ok,
	})

	return &product, nil
}
