package agents

import (
	"context"

	"github.com/alitto/pond/v2"

	"github.com/feral-file/ai-company/internal/domain"
	"github.com/feral-file/ai-company/internal/llm"
)

// Strategies holds the marketing and technical strategies produced side by side
type Strategies struct {
	Marketing *domain.MarketingStrategy `json:"marketingStrategy"`
	Technical *domain.TechnicalStrategy `json:"technicalStrategy"`
}

// Agents is the set of role operations used by the API and the pipeline workflow
//
//go:generate mockgen -source=team.go -destination=../mocks/agents.go -package=mocks -mock_names=Agents=MockAgents
type Agents interface {
	GenerateIdeas(ctx context.Context, count int) ([]domain.Idea, error)
	ResearchIdea(ctx context.Context, idea domain.Idea) (*domain.Research, error)
	DevelopProduct(ctx context.Context, idea domain.Idea, research *domain.Research) (*domain.Product, error)
	EvaluateProduct(ctx context.Context, product domain.Product) (*domain.ProductEvaluation, error)
	DevelopMarketingStrategy(ctx context.Context, idea domain.Idea, product domain.Product) (*domain.MarketingStrategy, error)
	DevelopTechnicalStrategy(ctx context.Context, idea domain.Idea, product domain.Product) (*domain.TechnicalStrategy, error)
	DevelopStrategies(ctx context.Context, idea domain.Idea, product domain.Product) (*Strategies, error)
	CreateBoltPrompt(ctx context.Context, in PromptInput) (*domain.BoltPrompt, error)
	Close()
}

// Team wires every role to one provider
type Team struct {
	ceo         *CEO
	researcher  *Researcher
	product     *ProductManager
	cmo         *CMO
	cto         *CTO
	engineering *HeadOfEngineering
	pool        pond.Pool
}

// NewTeam creates all roles. strategyConcurrency bounds parallel strategy calls across requests.
func NewTeam(provider llm.Provider, recorder ActivityRecorder, strategyConcurrency int) *Team {
	if strategyConcurrency <= 0 {
		strategyConcurrency = 2
	}
	return &Team{
		ceo:         NewCEO(provider, recorder),
		researcher:  NewResearcher(provider, recorder),
		product:     NewProductManager(provider, recorder),
		cmo:         NewCMO(provider, recorder),
		cto:         NewCTO(provider, recorder),
		engineering: NewHeadOfEngineering(provider, recorder),
		pool:        pond.NewPool(strategyConcurrency),
	}
}

func (t *Team) GenerateIdeas(ctx context.Context, count int) ([]domain.Idea, error) {
	return t.ceo.GenerateIdeas(ctx, count)
}

func (t *Team) ResearchIdea(ctx context.Context, idea domain.Idea) (*domain.Research, error) {
	return t.researcher.ResearchIdea(ctx, idea)
}

func (t *Team) DevelopProduct(ctx context.Context, idea domain.Idea, research *domain.Research) (*domain.Product, error) {
	return t.product.DevelopProduct(ctx, idea, research)
}

func (t *Team) EvaluateProduct(ctx context.Context, product domain.Product) (*domain.ProductEvaluation, error) {
	return t.ceo.EvaluateProduct(ctx, product)
}

func (t *Team) DevelopMarketingStrategy(ctx context.Context, idea domain.Idea, product domain.Product) (*domain.MarketingStrategy, error) {
	return t.cmo.DevelopMarketingStrategy(ctx, idea, product)
}

func (t *Team) DevelopTechnicalStrategy(ctx context.Context, idea domain.Idea, product domain.Product) (*domain.TechnicalStrategy, error) {
	return t.cto.DevelopTechnicalStrategy(ctx, idea, product)
}

// DevelopStrategies runs the marketing and technical strategies in parallel.
// The first error cancels the other call.
func (t *Team) DevelopStrategies(ctx context.Context, idea domain.Idea, product domain.Product) (*Strategies, error) {
	var out Strategies

	groupCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	group := t.pool.NewGroupContext(groupCtx)
	group.SubmitErr(
		func() error {
			s, err := t.cmo.DevelopMarketingStrategy(groupCtx, idea, product)
			if err != nil {
				cancel()
				return err
			}
			out.Marketing = s
			return nil
		},
		func() error {
			s, err := t.cto.DevelopTechnicalStrategy(groupCtx, idea, product)
			if err != nil {
				cancel()
				return err
			}
			out.Technical = s
			return nil
		},
	)
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &out, nil
}

func (t *Team) CreateBoltPrompt(ctx context.Context, in PromptInput) (*domain.BoltPrompt, error) {
	return t.engineering.CreateBoltPrompt(ctx, in)
}

// Close stops the strategy pool
func (t *Team) Close() {
	t.pool.StopAndWait()
}
