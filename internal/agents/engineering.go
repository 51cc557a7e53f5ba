package agents

import (
	"context"
	"fmt"

	"github.com/feral-file/ai-company/internal/domain"
	"github.com/feral-file/ai-company/internal/llm"
)

const (
	engineeringName        = "Head of Engineering Agent"
	engineeringTokenBudget = 2000
)

// PromptInput is everything the head of engineering knows when writing the build prompt.
// Research and strategies are optional.
type PromptInput struct {
	Idea              domain.Idea
	Product           domain.Product
	Research          *domain.Research
	MarketingStrategy *domain.MarketingStrategy
	TechnicalStrategy *domain.TechnicalStrategy
}

// HeadOfEngineering assembles the website build prompt for the code generation tool
type HeadOfEngineering struct {
	agent
}

// NewHeadOfEngineering creates the engineering role
func NewHeadOfEngineering(provider llm.Provider, recorder ActivityRecorder) *HeadOfEngineering {
	return &HeadOfEngineering{agent{
		name:     engineeringName,
		system:   "You are a head of engineering who writes precise build briefs for an AI website generator. Always answer with valid JSON only.",
		provider: provider,
		recorder: recorder,
	}}
}

// CreateBoltPrompt writes a complete website build prompt
func (h *HeadOfEngineering) CreateBoltPrompt(ctx context.Context, in PromptInput) (*domain.BoltPrompt, error) {
	optional := func(v any, present bool) string {
		if !present {
			return "Not provided."
		}
		return toJSON(v)
	}

	prompt := fmt.Sprintf(`Write a build brief for an AI website generator that will create the marketing and product website for this company.

Idea: %s
Description: %s

Product:
%s

Research:
%s

Marketing strategy:
%s

Technical strategy:
%s

Format your response as JSON with this structure:
{
  "website_title": "Title",
  "website_description": "One paragraph description",
  "pages_required": ["Page"],
  "functional_requirements": ["Requirement"],
  "design_guidelines": "Visual direction",
  "integration_needs": ["Integration"],
  "bolt_prompt": "The complete prompt to paste into the generator"
}`,
		in.Idea.Title,
		in.Idea.Description,
		toJSON(in.Product),
		optional(in.Research, in.Research != nil),
		optional(in.MarketingStrategy, in.MarketingStrategy != nil),
		optional(in.TechnicalStrategy, in.TechnicalStrategy != nil),
	)

	var out domain.BoltPrompt
	ok, err := h.ask(ctx, prompt, engineeringTokenBudget, &out)
	if err != nil {
		return nil, err
	}
	if !ok {
		out = fallbackBoltPrompt(in)
	}

	h.record(ctx, "Created Bolt prompt", map[string]any{
		"product_name":   in.Product.ProductName,
		"website_title":  out.WebsiteTitle,
		"pages_count":    len(out.PagesRequired),
		"features_count": len(out.FunctionalRequirements),
		"fallback":       !ok,
	})

	return &out, nil
}
