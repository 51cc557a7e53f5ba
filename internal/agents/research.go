package agents

import (
	"context"
	"fmt"

	"github.com/feral-file/ai-company/internal/domain"
	"github.com/feral-file/ai-company/internal/llm"
)

const (
	researchName        = "Research Agent"
	researchTokenBudget = 1500
)

// Researcher analyses the market for an idea
type Researcher struct {
	agent
}

// NewResearcher creates the research role
func NewResearcher(provider llm.Provider, recorder ActivityRecorder) *Researcher {
	return &Researcher{agent{
		name:     researchName,
		system:   "You are a meticulous market research analyst. You size markets, map competitors and give actionable recommendations. Always answer with valid JSON only.",
		provider: provider,
		recorder: recorder,
	}}
}

// ResearchIdea produces competitor and market analysis for an idea
func (r *Researcher) ResearchIdea(ctx context.Context, idea domain.Idea) (*domain.Research, error) {
	prompt := fmt.Sprintf(`Conduct market research for this business idea:

Title: %s
Description: %s
Revenue: %s

Format your response as JSON with this structure:
{
  "competitors": [
    {"name": "Competitor", "description": "What they do", "strengths": ["..."], "weaknesses": ["..."]}
  ],
  "market_analysis": {
    "market_size": "Estimated market size",
    "growth_rate": "Annual growth",
    "target_audience": "Who buys",
    "trends": ["Relevant trend"]
  },
  "recommendations": ["Actionable recommendation"]
}`, idea.Title, idea.Description, idea.PotentialRevenue)

	var research domain.Research
	ok, err := r.ask(ctx, prompt, researchTokenBudget, &research)
	if err != nil {
		return nil, err
	}
	if !ok {
		research = fallbackResearch(idea)
	}

	r.record(ctx, "Researched idea", map[string]any{
		"idea":              idea.Title,
		"competitors_count": len(research.Competitors),
		"market_size":       research.MarketAnalysis.MarketSize,
		"fallback":          !ok,
	})

	return &research, nil
}
