package agents

import (
	"fmt"
	"strings"

	"github.com/feral-file/ai-company/internal/domain"
)

var fallbackIdeaPool = []domain.Idea{
	{
		Title:          "AI Bookkeeping Assistant",
		Description:    "Automated bookkeeping for freelancers that categorises transactions and prepares quarterly tax summaries.",
		RevenueModel:   "Monthly subscription per business",
		SuccessFactors: "Freelancers hate bookkeeping and existing tools need manual input",
	},
	{
		Title:          "Local Services Marketplace Copilot",
		Description:    "A booking assistant that lets small service businesses answer enquiries and schedule jobs automatically.",
		RevenueModel:   "Per-booking fee plus premium tier",
		SuccessFactors: "Small businesses lose leads when they cannot reply quickly",
	},
	{
		Title:          "Personal Learning Path Generator",
		Description:    "Builds adaptive study plans from a learner's goals and tracks progress with short daily exercises.",
		RevenueModel:   "Freemium with paid coaching features",
		SuccessFactors: "Self-learners struggle to structure their learning",
	},
}

func fallbackIdeas(count int) []domain.Idea {
	ideas := make([]domain.Idea, 0, count)
	for i := range count {
		idea := fallbackIdeaPool[i%len(fallbackIdeaPool)]
		if i >= len(fallbackIdeaPool) {
			idea.Title = fmt.Sprintf("%s %d", idea.Title, i/len(fallbackIdeaPool)+1)
		}
		idea.PotentialRevenue = idea.RevenueModel
		idea.Fallback = true
		ideas = append(ideas, idea)
	}
	return ideas
}

func fallbackEvaluation() domain.ProductEvaluation {
	return domain.ProductEvaluation{
		ViabilityScore:  5,
		MarketPotential: "Medium",
		Recommendations: domain.StringList{"Validate demand with a landing page before building the full product"},
		GoDecision:      true,
		Fallback:        true,
	}
}

func fallbackResearch(idea domain.Idea) domain.Research {
	return domain.Research{
		Competitors: []domain.Competitor{
			{Name: "Established incumbents", Description: fmt.Sprintf("Existing providers in the %s space", idea.Title)},
		},
		MarketAnalysis: domain.MarketAnalysis{
			MarketSize:     "Unknown",
			TargetAudience: "Early adopters",
		},
		Recommendations: domain.StringList{
			"Interview ten potential customers",
			"Launch a minimal version to measure demand",
		},
		Fallback: true,
	}
}

func fallbackProduct(idea domain.Idea) domain.Product {
	return domain.Product{
		ProductName:        idea.Title,
		ProductDescription: idea.Description,
		Features: []domain.Feature{
			{Name: "User accounts", Priority: "high"},
			{Name: "Core workflow", Description: idea.Description, Priority: "high"},
			{Name: "Billing", Priority: "medium"},
		},
		TargetMarket: domain.TargetMarket{
			PrimaryAudience: "Early adopters",
		},
		RevenueModel: idea.PotentialRevenue,
		Fallback:     true,
	}
}

func fallbackMarketing(product domain.Product) domain.MarketingStrategy {
	audience := product.TargetMarket.PrimaryAudience
	if audience == "" {
		audience = "Early adopters"
	}
	return domain.MarketingStrategy{
		BrandPositioning: fmt.Sprintf("%s makes the job simple", product.ProductName),
		MarketingChannels: []domain.MarketingChannel{
			{Channel: "Content marketing", Strategy: "Educational articles and guides"},
			{Channel: "Social media", Strategy: "Community building and launch announcements"},
		},
		TargetSegments: []domain.TargetSegment{
			{Segment: audience},
		},
		LaunchPlan: domain.LaunchPlan{
			PreLaunch:  domain.StringList{"Waitlist landing page"},
			Launch:     domain.StringList{"Public launch announcement"},
			PostLaunch: domain.StringList{"Collect feedback and iterate"},
		},
		Fallback: true,
	}
}

func fallbackTechnical() domain.TechnicalStrategy {
	return domain.TechnicalStrategy{
		TechnologyStack: map[string]domain.StringList{
			"frontend":       {"React"},
			"backend":        {"Node.js"},
			"database":       {"PostgreSQL"},
			"infrastructure": {"Managed cloud hosting"},
		},
		Architecture: domain.Architecture{
			Overview: "Single web application backed by a relational database",
		},
		DevelopmentPhases: []domain.DevelopmentPhase{
			{Phase: "MVP", Duration: "4 weeks"},
			{Phase: "Beta", Duration: "4 weeks"},
			{Phase: "Launch", Duration: "2 weeks"},
		},
		Fallback: true,
	}
}

func fallbackBoltPrompt(in PromptInput) domain.BoltPrompt {
	title := in.Product.ProductName
	if title == "" {
		title = in.Idea.Title
	}

	features := make([]string, 0, len(in.Product.Features))
	for _, f := range in.Product.Features {
		features = append(features, f.Name)
	}

	pages := domain.StringList{"Home", "Features", "Pricing", "About", "Contact"}

	var b strings.Builder
	fmt.Fprintf(&b, "Build a modern, responsive marketing website for %s.\n", title)
	if in.Product.ProductDescription != "" {
		fmt.Fprintf(&b, "Product description: %s\n", in.Product.ProductDescription)
	}
	fmt.Fprintf(&b, "Pages: %s.\n", strings.Join(pages, ", "))
	if len(features) > 0 {
		fmt.Fprintf(&b, "Highlight these features: %s.\n", strings.Join(features, ", "))
	}
	if in.MarketingStrategy != nil && in.MarketingStrategy.BrandPositioning != "" {
		fmt.Fprintf(&b, "Positioning: %s.\n", in.MarketingStrategy.BrandPositioning)
	}
	b.WriteString("Use a clean design with a clear call to action on every page.")

	return domain.BoltPrompt{
		WebsiteTitle:           title,
		WebsiteDescription:     in.Product.ProductDescription,
		PagesRequired:          pages,
		FunctionalRequirements: domain.StringList(append([]string{"Contact form", "Newsletter signup"}, features...)),
		DesignGuidelines:       "Clean, modern and mobile first",
		BoltPrompt:             b.String(),
		Fallback:               true,
	}
}
