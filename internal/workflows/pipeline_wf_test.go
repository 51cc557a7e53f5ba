package workflows_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"github.com/feral-file/ai-company/internal/agents"
	"github.com/feral-file/ai-company/internal/domain"
	"github.com/feral-file/ai-company/internal/logger"
	"github.com/feral-file/ai-company/internal/mocks"
	"github.com/feral-file/ai-company/internal/workflows"
)

// CompanyPipelineWorkflowTestSuite is the test suite for the company pipeline workflow
type CompanyPipelineWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env         *testsuite.TestWorkflowEnvironment
	ctrl        *gomock.Controller
	executor    *mocks.MockExecutor
	workerCore  workflows.WorkerCore
	transitions []workflows.TransitionInput
}

// SetupTest is called before each test
func (s *CompanyPipelineWorkflowTestSuite) SetupTest() {
	_ = logger.Initialize(logger.Config{
		Debug: true,
	})

	s.env = s.NewTestWorkflowEnvironment()
	s.ctrl = gomock.NewController(s.T())
	s.executor = mocks.NewMockExecutor(s.ctrl)
	s.workerCore = workflows.NewWorkerCore(s.executor, workflows.WorkerCoreConfig{
		StageTimeout:      time.Minute,
		StageMaxAttempts:  1,
		CompletionDelay:   10 * time.Minute,
		CompletionRevenue: 0.1,
		VoteTimeout:       24 * time.Hour,
	})
	s.transitions = nil
}

// TearDownTest is called after each test
func (s *CompanyPipelineWorkflowTestSuite) TearDownTest() {
	s.env.AssertExpectations(s.T())
	s.ctrl.Finish()
}

// TestCompanyPipelineWorkflowTestSuite runs the test suite
func TestCompanyPipelineWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyPipelineWorkflowTestSuite))
}

var (
	testIdea = domain.Idea{
		ID:               1,
		Title:            "AI Tutor",
		Description:      "Personal tutoring for every student",
		PotentialRevenue: "$1M ARR",
	}
	testResearch = domain.Research{
		MarketAnalysis:  domain.MarketAnalysis{MarketSize: "$5B"},
		Recommendations: domain.StringList{"start with math"},
	}
	testProduct = domain.Product{
		ProductName:        "TutorBot",
		ProductDescription: "A chat tutor",
		RevenueModel:       "subscription",
	}
	testMarketing  = domain.MarketingStrategy{BrandPositioning: "friendly"}
	testTechnical  = domain.TechnicalStrategy{Architecture: domain.Architecture{Overview: "serverless"}}
	testBoltPrompt = domain.BoltPrompt{WebsiteTitle: "TutorBot"}
)

// recordTransitions captures every ApplyTransition activity call
func (s *CompanyPipelineWorkflowTestSuite) recordTransitions() {
	s.env.OnActivity(s.executor.ApplyTransition, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, input workflows.TransitionInput) error {
			s.transitions = append(s.transitions, input)
			return nil
		})
}

func (s *CompanyPipelineWorkflowTestSuite) vote(after time.Duration, item domain.VoteItem, v domain.Vote, voter string) {
	s.env.RegisterDelayedCallback(func() {
		s.env.SignalWorkflow(workflows.VoteSignal, domain.PipelineVote{Item: item, Vote: v, Voter: voter})
	}, after)
}

func (s *CompanyPipelineWorkflowTestSuite) triggers() []domain.Trigger {
	out := make([]domain.Trigger, len(s.transitions))
	for i, t := range s.transitions {
		out[i] = t.Trigger
	}
	return out
}

func (s *CompanyPipelineWorkflowTestSuite) mockLaterStages() {
	s.env.OnActivity(s.executor.DevelopMarketingStrategy, mock.Anything, testIdea, testProduct).Return(&testMarketing, nil)
	s.env.OnActivity(s.executor.DevelopTechnicalStrategy, mock.Anything, testIdea, testProduct).Return(&testTechnical, nil)
	s.env.OnActivity(s.executor.CreateBoltPrompt, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, input agents.PromptInput) (*domain.BoltPrompt, error) {
			s.Equal(testIdea.Title, input.Idea.Title)
			s.Equal(testProduct.ProductName, input.Product.ProductName)
			s.NotNil(input.MarketingStrategy)
			s.NotNil(input.TechnicalStrategy)
			return &testBoltPrompt, nil
		})
	s.env.OnActivity(s.executor.DistributeRunRevenue, mock.Anything, "run-1", 0.1).Return(&domain.Distribution{
		Total:        0.1,
		CompanyShare: 0.08,
		HolderShare:  0.02,
		Payouts:      []domain.Payout{{Wallet: "holder_1", Tokens: 1, Amount: 0.02}},
	}, nil)
}

// ====================================================================================
// Happy path
// ====================================================================================

func (s *CompanyPipelineWorkflowTestSuite) TestCompanyPipeline_Completes() {
	s.recordTransitions()
	s.env.OnActivity(s.executor.GenerateIdeas, mock.Anything, 3).Return([]domain.Idea{testIdea}, nil).Once()
	s.env.OnActivity(s.executor.ResearchIdea, mock.Anything, testIdea).Return(&testResearch, nil).Once()
	s.env.OnActivity(s.executor.DevelopProduct, mock.Anything, testIdea, mock.Anything).Return(&testProduct, nil).Once()
	s.mockLaterStages()

	s.vote(time.Minute, domain.VoteItemIdea, domain.VoteApprove, "holder_1")
	s.vote(2*time.Minute, domain.VoteItemProduct, domain.VoteApprove, "holder_1")

	s.env.ExecuteWorkflow(s.workerCore.CompanyPipeline, workflows.PipelineInput{RunID: "run-1", IdeaCount: 3})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	s.Equal([]domain.Trigger{
		domain.TriggerStart,
		domain.TriggerApproveIdea,
		domain.TriggerResearchDone,
		domain.TriggerApproveProduct,
		domain.TriggerStrategiesReady,
		domain.TriggerRevenueDelay,
	}, s.triggers())

	start := s.transitions[0]
	s.Equal(domain.PipelineState(""), start.From)
	s.Equal(domain.PipelineStateIdeaPending, start.To)
	s.Equal(workflows.SystemActor, start.Actor)
	s.Require().NotNil(start.Snapshot.Idea)
	s.Equal(testIdea.Title, start.Snapshot.Idea.Title)

	s.Equal("holder_1", s.transitions[1].Actor)

	researchDone := s.transitions[2]
	s.Equal(domain.PipelineStateProductPending, researchDone.To)
	s.NotNil(researchDone.Snapshot.Research)
	s.NotNil(researchDone.Snapshot.Product)

	strategies := s.transitions[4]
	s.NotNil(strategies.Snapshot.MarketingStrategy)
	s.NotNil(strategies.Snapshot.TechnicalStrategy)
	s.NotNil(strategies.Snapshot.BoltPrompt)

	completed := s.transitions[5]
	s.Equal(domain.PipelineStateCompleted, completed.To)
	s.Require().NotNil(completed.Snapshot.Distribution)
	s.InDelta(0.1, completed.Snapshot.Distribution.Total, 1e-9)
}

func (s *CompanyPipelineWorkflowTestSuite) TestCompanyPipeline_DefaultIdeaCount() {
	s.recordTransitions()
	s.env.OnActivity(s.executor.GenerateIdeas, mock.Anything, domain.DEFAULT_IDEA_COUNT).Return([]domain.Idea{testIdea}, nil).Once()

	s.env.ExecuteWorkflow(s.workerCore.CompanyPipeline, workflows.PipelineInput{RunID: "run-1"})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

// ====================================================================================
// Votes
// ====================================================================================

func (s *CompanyPipelineWorkflowTestSuite) TestCompanyPipeline_RejectIdeaRegenerates() {
	s.recordTransitions()
	s.env.OnActivity(s.executor.GenerateIdeas, mock.Anything, 3).Return([]domain.Idea{testIdea}, nil).Times(2)
	s.env.OnActivity(s.executor.ResearchIdea, mock.Anything, testIdea).Return(&testResearch, nil).Once()
	s.env.OnActivity(s.executor.DevelopProduct, mock.Anything, testIdea, mock.Anything).Return(&testProduct, nil).Once()
	s.mockLaterStages()

	s.vote(time.Minute, domain.VoteItemIdea, domain.VoteReject, "holder_1")
	s.vote(2*time.Minute, domain.VoteItemIdea, domain.VoteApprove, "holder_2")
	s.vote(3*time.Minute, domain.VoteItemProduct, domain.VoteApprove, "holder_1")

	s.env.ExecuteWorkflow(s.workerCore.CompanyPipeline, workflows.PipelineInput{RunID: "run-1", IdeaCount: 3})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	triggers := s.triggers()
	s.Require().GreaterOrEqual(len(triggers), 3)
	s.Equal(domain.TriggerRejectIdea, triggers[1])
	s.Equal(domain.PipelineStateIdeaPending, s.transitions[1].To)
	s.NotNil(s.transitions[1].Snapshot.Idea)
	s.Equal(domain.TriggerApproveIdea, triggers[2])
	s.Equal("holder_2", s.transitions[2].Actor)
}

func (s *CompanyPipelineWorkflowTestSuite) TestCompanyPipeline_RejectProductRedesigns() {
	s.recordTransitions()
	s.env.OnActivity(s.executor.GenerateIdeas, mock.Anything, 3).Return([]domain.Idea{testIdea}, nil).Once()
	s.env.OnActivity(s.executor.ResearchIdea, mock.Anything, testIdea).Return(&testResearch, nil).Once()
	s.env.OnActivity(s.executor.DevelopProduct, mock.Anything, testIdea, mock.Anything).Return(&testProduct, nil).Times(2)
	s.mockLaterStages()

	s.vote(time.Minute, domain.VoteItemIdea, domain.VoteApprove, "holder_1")
	s.vote(2*time.Minute, domain.VoteItemProduct, domain.VoteReject, "holder_1")
	s.vote(3*time.Minute, domain.VoteItemProduct, domain.VoteApprove, "holder_1")

	s.env.ExecuteWorkflow(s.workerCore.CompanyPipeline, workflows.PipelineInput{RunID: "run-1", IdeaCount: 3})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	s.Equal([]domain.Trigger{
		domain.TriggerStart,
		domain.TriggerApproveIdea,
		domain.TriggerResearchDone,
		domain.TriggerRejectProduct,
		domain.TriggerApproveProduct,
		domain.TriggerStrategiesReady,
		domain.TriggerRevenueDelay,
	}, s.triggers())
	s.NotNil(s.transitions[3].Snapshot.Product)
}

func (s *CompanyPipelineWorkflowTestSuite) TestCompanyPipeline_InvalidVoteIgnoredThenTimeout() {
	s.recordTransitions()
	s.env.OnActivity(s.executor.GenerateIdeas, mock.Anything, 3).Return([]domain.Idea{testIdea}, nil).Once()

	// A product vote is not valid while the idea is pending
	s.vote(time.Minute, domain.VoteItemProduct, domain.VoteApprove, "holder_1")

	s.env.ExecuteWorkflow(s.workerCore.CompanyPipeline, workflows.PipelineInput{RunID: "run-1", IdeaCount: 3})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	s.Equal([]domain.Trigger{domain.TriggerStart, domain.TriggerStageError}, s.triggers())
	failed := s.transitions[1]
	s.Equal(domain.PipelineStateFailed, failed.To)
	s.Equal(domain.StageIdea, failed.FailedStage)
	s.Contains(failed.Note, "timeout")
}

// ====================================================================================
// Failures and resume
// ====================================================================================

func (s *CompanyPipelineWorkflowTestSuite) TestCompanyPipeline_StageErrorThenResume() {
	s.recordTransitions()
	s.env.OnActivity(s.executor.GenerateIdeas, mock.Anything, 3).Return([]domain.Idea{testIdea}, nil).Once()
	s.env.OnActivity(s.executor.ResearchIdea, mock.Anything, testIdea).Return(nil, errors.New("llm unavailable")).Once()
	s.env.OnActivity(s.executor.ResearchIdea, mock.Anything, testIdea).Return(&testResearch, nil).Once()
	s.env.OnActivity(s.executor.DevelopProduct, mock.Anything, testIdea, mock.Anything).Return(&testProduct, nil).Once()
	s.mockLaterStages()

	s.vote(time.Minute, domain.VoteItemIdea, domain.VoteApprove, "holder_1")
	s.env.RegisterDelayedCallback(func() {
		s.env.SignalWorkflow(workflows.ResumeSignal, "operator")
	}, 2*time.Minute)
	s.vote(3*time.Minute, domain.VoteItemProduct, domain.VoteApprove, "holder_1")

	s.env.ExecuteWorkflow(s.workerCore.CompanyPipeline, workflows.PipelineInput{RunID: "run-1", IdeaCount: 3})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	s.Equal([]domain.Trigger{
		domain.TriggerStart,
		domain.TriggerApproveIdea,
		domain.TriggerStageError,
		domain.TriggerResume,
		domain.TriggerResearchDone,
		domain.TriggerApproveProduct,
		domain.TriggerStrategiesReady,
		domain.TriggerRevenueDelay,
	}, s.triggers())

	failed := s.transitions[2]
	s.Equal(domain.PipelineStateResearching, failed.From)
	s.Equal(domain.StageResearch, failed.FailedStage)
	s.Contains(failed.Note, "llm unavailable")

	resumed := s.transitions[3]
	s.Equal(domain.PipelineStateResearching, resumed.To)
	s.Equal("operator", resumed.Actor)
}

func (s *CompanyPipelineWorkflowTestSuite) TestCompanyPipeline_ProductErrorRecordsProductStage() {
	s.recordTransitions()
	s.env.OnActivity(s.executor.GenerateIdeas, mock.Anything, 3).Return([]domain.Idea{testIdea}, nil).Once()
	s.env.OnActivity(s.executor.ResearchIdea, mock.Anything, testIdea).Return(&testResearch, nil).Once()
	s.env.OnActivity(s.executor.DevelopProduct, mock.Anything, testIdea, mock.Anything).Return(nil, errors.New("bad json")).Once()

	s.vote(time.Minute, domain.VoteItemIdea, domain.VoteApprove, "holder_1")

	s.env.ExecuteWorkflow(s.workerCore.CompanyPipeline, workflows.PipelineInput{RunID: "run-1", IdeaCount: 3})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	last := s.transitions[len(s.transitions)-1]
	s.Equal(domain.PipelineStateFailed, last.To)
	s.Equal(domain.PipelineStateResearching, last.From)
	s.Equal(domain.StageProduct, last.FailedStage)
	s.Require().NotNil(last.Snapshot.Research)
	s.Equal(testResearch.MarketAnalysis.MarketSize, last.Snapshot.Research.MarketAnalysis.MarketSize)
	s.Nil(last.Snapshot.Product)
}

func (s *CompanyPipelineWorkflowTestSuite) TestCompanyPipeline_ProductErrorThenResumeKeepsResearch() {
	s.recordTransitions()
	s.env.OnActivity(s.executor.GenerateIdeas, mock.Anything, 3).Return([]domain.Idea{testIdea}, nil).Once()
	s.env.OnActivity(s.executor.ResearchIdea, mock.Anything, testIdea).Return(&testResearch, nil).Once()
	s.env.OnActivity(s.executor.DevelopProduct, mock.Anything, testIdea, mock.Anything).Return(nil, errors.New("bad json")).Once()
	s.env.OnActivity(s.executor.DevelopProduct, mock.Anything, testIdea, mock.Anything).Return(
		func(ctx context.Context, idea domain.Idea, research *domain.Research) (*domain.Product, error) {
			s.NotNil(research)
			return &testProduct, nil
		}).Once()
	s.mockLaterStages()

	s.vote(time.Minute, domain.VoteItemIdea, domain.VoteApprove, "holder_1")
	s.env.RegisterDelayedCallback(func() {
		s.env.SignalWorkflow(workflows.ResumeSignal, "operator")
	}, 2*time.Minute)
	s.vote(3*time.Minute, domain.VoteItemProduct, domain.VoteApprove, "holder_1")

	s.env.ExecuteWorkflow(s.workerCore.CompanyPipeline, workflows.PipelineInput{RunID: "run-1", IdeaCount: 3})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	s.Equal([]domain.Trigger{
		domain.TriggerStart,
		domain.TriggerApproveIdea,
		domain.TriggerStageError,
		domain.TriggerResume,
		domain.TriggerApproveProduct,
		domain.TriggerStrategiesReady,
		domain.TriggerRevenueDelay,
	}, s.triggers())

	resumed := s.transitions[3]
	s.Equal(domain.PipelineStateProductPending, resumed.To)
	s.NotNil(resumed.Snapshot.Research)
	s.NotNil(resumed.Snapshot.Product)
}

func (s *CompanyPipelineWorkflowTestSuite) TestCompanyPipeline_ResumeFromPersistedState() {
	s.recordTransitions()
	s.env.OnActivity(s.executor.LoadPipelineRun, mock.Anything, "run-1").Return(&workflows.RunState{
		State:       domain.PipelineStateFailed,
		FailedStage: domain.StagePrompt,
		IdeaCount:   3,
		Snapshot: workflows.RunSnapshot{
			Ideas:             []domain.Idea{testIdea},
			Idea:              &testIdea,
			Research:          &testResearch,
			Product:           &testProduct,
			MarketingStrategy: &testMarketing,
			TechnicalStrategy: &testTechnical,
		},
	}, nil).Once()
	s.env.OnActivity(s.executor.CreateBoltPrompt, mock.Anything, mock.Anything).Return(&testBoltPrompt, nil).Once()
	s.env.OnActivity(s.executor.DistributeRunRevenue, mock.Anything, "run-1", 0.1).Return(&domain.Distribution{
		Total:        0.1,
		CompanyShare: 0.1,
	}, nil).Once()

	s.env.ExecuteWorkflow(s.workerCore.CompanyPipeline, workflows.PipelineInput{RunID: "run-1", Resume: true, Actor: "holder_1"})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	s.Equal([]domain.Trigger{
		domain.TriggerResume,
		domain.TriggerStrategiesReady,
		domain.TriggerRevenueDelay,
	}, s.triggers())
	s.Equal(domain.PipelineStateStrategyPending, s.transitions[0].To)
	s.Equal("holder_1", s.transitions[0].Actor)
}

func (s *CompanyPipelineWorkflowTestSuite) TestCompanyPipeline_ResumeNotFailedIsNoop() {
	s.env.OnActivity(s.executor.LoadPipelineRun, mock.Anything, "run-1").Return(&workflows.RunState{
		State: domain.PipelineStateCompleted,
	}, nil).Once()

	s.env.ExecuteWorkflow(s.workerCore.CompanyPipeline, workflows.PipelineInput{RunID: "run-1", Resume: true})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *CompanyPipelineWorkflowTestSuite) TestCompanyPipeline_PersistenceErrorFailsWorkflow() {
	s.env.OnActivity(s.executor.GenerateIdeas, mock.Anything, 3).Return([]domain.Idea{testIdea}, nil).Once()
	s.env.OnActivity(s.executor.ApplyTransition, mock.Anything, mock.Anything).Return(
		temporal.NewNonRetryableApplicationError("database unavailable", "DatabaseError", nil))

	s.env.ExecuteWorkflow(s.workerCore.CompanyPipeline, workflows.PipelineInput{RunID: "run-1", IdeaCount: 3})

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}

func (s *CompanyPipelineWorkflowTestSuite) TestCompanyPipeline_CompletionPersistErrorFailsRunThenResumes() {
	failedOnce := false
	s.env.OnActivity(s.executor.ApplyTransition, mock.Anything, mock.Anything).Return(
		func(ctx context.Context, input workflows.TransitionInput) error {
			if input.To == domain.PipelineStateCompleted && !failedOnce {
				failedOnce = true
				return temporal.NewNonRetryableApplicationError("database unavailable", "DatabaseError", nil)
			}
			s.transitions = append(s.transitions, input)
			return nil
		})
	s.env.OnActivity(s.executor.GenerateIdeas, mock.Anything, 3).Return([]domain.Idea{testIdea}, nil).Once()
	s.env.OnActivity(s.executor.ResearchIdea, mock.Anything, testIdea).Return(&testResearch, nil).Once()
	s.env.OnActivity(s.executor.DevelopProduct, mock.Anything, testIdea, mock.Anything).Return(&testProduct, nil).Once()
	s.env.OnActivity(s.executor.DevelopMarketingStrategy, mock.Anything, testIdea, testProduct).Return(&testMarketing, nil).Once()
	s.env.OnActivity(s.executor.DevelopTechnicalStrategy, mock.Anything, testIdea, testProduct).Return(&testTechnical, nil).Once()
	s.env.OnActivity(s.executor.CreateBoltPrompt, mock.Anything, mock.Anything).Return(&testBoltPrompt, nil).Once()
	s.env.OnActivity(s.executor.DistributeRunRevenue, mock.Anything, "run-1", 0.1).Return(&domain.Distribution{
		Total:        0.1,
		CompanyShare: 0.1,
	}, nil).Once()

	s.vote(time.Minute, domain.VoteItemIdea, domain.VoteApprove, "holder_1")
	s.vote(2*time.Minute, domain.VoteItemProduct, domain.VoteApprove, "holder_1")
	s.env.RegisterDelayedCallback(func() {
		s.env.SignalWorkflow(workflows.ResumeSignal, "operator")
	}, time.Hour)

	s.env.ExecuteWorkflow(s.workerCore.CompanyPipeline, workflows.PipelineInput{RunID: "run-1", IdeaCount: 3})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	s.Equal([]domain.Trigger{
		domain.TriggerStart,
		domain.TriggerApproveIdea,
		domain.TriggerResearchDone,
		domain.TriggerApproveProduct,
		domain.TriggerStrategiesReady,
		domain.TriggerStageError,
		domain.TriggerResume,
		domain.TriggerRevenueDelay,
	}, s.triggers())

	failed := s.transitions[5]
	s.Equal(domain.PipelineStatePromptReady, failed.From)
	s.Equal(domain.PipelineStateFailed, failed.To)
	s.Equal(domain.StageRevenue, failed.FailedStage)
	s.Contains(failed.Note, "database unavailable")

	s.Equal(domain.PipelineStatePromptReady, s.transitions[6].To)
	s.Equal(domain.PipelineStateCompleted, s.transitions[7].To)
}
