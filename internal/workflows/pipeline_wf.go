package workflows

import (
	"errors"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/feral-file/ai-company/internal/agents"
	"github.com/feral-file/ai-company/internal/domain"
	"github.com/feral-file/ai-company/internal/logger"
	"github.com/feral-file/ai-company/internal/pipeline"
)

var errVoteTimeout = errors.New("no vote received before the timeout")

// companyPipeline is the in-memory state of one CompanyPipeline execution
type companyPipeline struct {
	w           *workerCore
	runID       string
	ideaCount   int
	state       domain.PipelineState
	failedStage domain.Stage
	snap        RunSnapshot
	votes       workflow.ReceiveChannel
	resumes     workflow.ReceiveChannel
}

// CompanyPipeline drives a pipeline run through the FSM in internal/pipeline.
// Pending states wait for vote signals, working states run the agents, and a
// stage error parks the run in failed until a resume signal arrives.
func (w *workerCore) CompanyPipeline(ctx workflow.Context, input PipelineInput) error {
	logger.InfoWf(ctx, "Starting company pipeline",
		zap.String("runID", input.RunID),
		zap.Int("ideaCount", input.IdeaCount),
		zap.Bool("resume", input.Resume))

	p := &companyPipeline{
		w:         w,
		runID:     input.RunID,
		ideaCount: input.IdeaCount,
		votes:     workflow.GetSignalChannel(ctx, VoteSignal),
		resumes:   workflow.GetSignalChannel(ctx, ResumeSignal),
	}
	if p.ideaCount <= 0 {
		p.ideaCount = domain.DEFAULT_IDEA_COUNT
	}

	if !input.Resume {
		return p.loop(ctx, domain.TriggerStart, SystemActor)
	}

	var state RunState
	if err := workflow.ExecuteActivity(p.persistCtx(ctx), w.executor.LoadPipelineRun, input.RunID).Get(ctx, &state); err != nil {
		return err
	}
	if state.State != domain.PipelineStateFailed {
		logger.InfoWf(ctx, "Pipeline run is not failed, nothing to resume",
			zap.String("runID", input.RunID),
			zap.String("state", string(state.State)))
		return nil
	}

	p.state = state.State
	p.failedStage = state.FailedStage
	p.snap = state.Snapshot
	if state.IdeaCount > 0 {
		p.ideaCount = state.IdeaCount
	}

	actor := input.Actor
	if actor == "" {
		actor = SystemActor
	}
	return p.loop(ctx, domain.TriggerResume, actor)
}

func (p *companyPipeline) loop(ctx workflow.Context, trigger domain.Trigger, actor string) error {
	var pending RunSnapshot

	for {
		tr, err := pipeline.Next(p.state, trigger, p.failedStage)
		if err != nil {
			return temporal.NewNonRetryableApplicationError(err.Error(), errTypeInvalidTransition, err)
		}

		// Pending states are entered with the artefact to vote on
		if stage, ok := pipeline.EntryStage(tr.To, trigger); ok && tr.To.AwaitingVote() {
			snapshot, err := p.runVoteStage(ctx, stage)
			if err != nil {
				resumed, next, err := p.failAndAwaitResume(ctx, stage, pending, err)
				if err != nil || !resumed {
					return err
				}
				trigger, actor = domain.TriggerResume, next
				continue
			}
			pending = snapshot
		}

		if err := p.apply(ctx, tr, actor, pending, "", ""); err != nil {
			stage, ok := redoStage(tr)
			if !ok {
				return err
			}
			resumed, next, err := p.failAndAwaitResume(ctx, stage, pending, err)
			if err != nil || !resumed {
				return err
			}
			pending = RunSnapshot{}
			trigger, actor = domain.TriggerResume, next
			continue
		}
		pending = RunSnapshot{}
		p.state = tr.To
		p.failedStage = ""

		var stage domain.Stage
		switch p.state {
		case domain.PipelineStateCompleted:
			logger.InfoWf(ctx, "Company pipeline completed", zap.String("runID", p.runID))
			return nil

		case domain.PipelineStateIdeaPending, domain.PipelineStateProductPending:
			var ok bool
			trigger, actor, ok = p.awaitVote(ctx)
			if ok {
				continue
			}
			stage = domain.StageIdea
			if p.state == domain.PipelineStateProductPending {
				stage = domain.StageProduct
			}
			err = errVoteTimeout

		case domain.PipelineStateResearching:
			pending, stage, err = p.research(ctx)
			trigger, actor = domain.TriggerResearchDone, SystemActor

		case domain.PipelineStateStrategyPending:
			pending, stage, err = p.strategies(ctx)
			trigger, actor = domain.TriggerStrategiesReady, SystemActor

		case domain.PipelineStatePromptReady:
			pending, err = p.revenue(ctx)
			stage = domain.StageRevenue
			trigger, actor = domain.TriggerRevenueDelay, SystemActor
		}

		if err != nil {
			// Whatever the stage produced before failing is kept with the failure
			resumed, next, err := p.failAndAwaitResume(ctx, stage, pending, err)
			pending = RunSnapshot{}
			if err != nil || !resumed {
				return err
			}
			trigger, actor = domain.TriggerResume, next
		}
	}
}

// runVoteStage produces the artefact a pending state votes on
func (p *companyPipeline) runVoteStage(ctx workflow.Context, stage domain.Stage) (RunSnapshot, error) {
	stageCtx := p.stageCtx(ctx)

	switch stage {
	case domain.StageIdea:
		var ideas []domain.Idea
		if err := workflow.ExecuteActivity(stageCtx, p.w.executor.GenerateIdeas, p.ideaCount).Get(ctx, &ideas); err != nil {
			return RunSnapshot{}, err
		}
		if len(ideas) == 0 {
			return RunSnapshot{}, errors.New("no ideas generated")
		}
		// The first idea is the CEO's pick and the one put to the vote
		idea := ideas[0]
		p.snap.Ideas = ideas
		p.snap.Idea = &idea
		p.snap.Research = nil
		p.snap.Product = nil
		return RunSnapshot{Ideas: ideas, Idea: &idea}, nil

	case domain.StageProduct:
		var product domain.Product
		err := workflow.ExecuteActivity(stageCtx, p.w.executor.DevelopProduct, p.idea(), p.snap.Research).Get(ctx, &product)
		if err != nil {
			return RunSnapshot{}, err
		}
		p.snap.Product = &product
		return RunSnapshot{Research: p.snap.Research, Product: &product}, nil
	}

	return RunSnapshot{}, nil
}

// research runs while Researching: research then product design
func (p *companyPipeline) research(ctx workflow.Context) (RunSnapshot, domain.Stage, error) {
	stageCtx := p.stageCtx(ctx)

	var research domain.Research
	if err := workflow.ExecuteActivity(stageCtx, p.w.executor.ResearchIdea, p.idea()).Get(ctx, &research); err != nil {
		return RunSnapshot{}, domain.StageResearch, err
	}
	p.snap.Research = &research

	var product domain.Product
	if err := workflow.ExecuteActivity(stageCtx, p.w.executor.DevelopProduct, p.idea(), &research).Get(ctx, &product); err != nil {
		return RunSnapshot{Research: &research}, domain.StageProduct, err
	}
	p.snap.Product = &product

	return RunSnapshot{Research: &research, Product: &product}, "", nil
}

// strategies runs while StrategyPending: marketing and technical strategies in parallel, then the prompt.
// Strategies already produced by an earlier attempt are kept.
func (p *companyPipeline) strategies(ctx workflow.Context) (RunSnapshot, domain.Stage, error) {
	stageCtx := p.stageCtx(ctx)
	idea, product := p.idea(), p.product()

	var marketingFuture, technicalFuture workflow.Future
	if p.snap.MarketingStrategy == nil {
		marketingFuture = workflow.ExecuteActivity(stageCtx, p.w.executor.DevelopMarketingStrategy, idea, product)
	}
	if p.snap.TechnicalStrategy == nil {
		technicalFuture = workflow.ExecuteActivity(stageCtx, p.w.executor.DevelopTechnicalStrategy, idea, product)
	}

	var strategyErr error
	if marketingFuture != nil {
		var marketing domain.MarketingStrategy
		if err := marketingFuture.Get(ctx, &marketing); err != nil {
			strategyErr = err
		} else {
			p.snap.MarketingStrategy = &marketing
		}
	}
	if technicalFuture != nil {
		var technical domain.TechnicalStrategy
		if err := technicalFuture.Get(ctx, &technical); err != nil {
			if strategyErr == nil {
				strategyErr = err
			}
		} else {
			p.snap.TechnicalStrategy = &technical
		}
	}
	if strategyErr != nil {
		return RunSnapshot{
			MarketingStrategy: p.snap.MarketingStrategy,
			TechnicalStrategy: p.snap.TechnicalStrategy,
		}, domain.StageStrategies, strategyErr
	}

	var prompt domain.BoltPrompt
	err := workflow.ExecuteActivity(stageCtx, p.w.executor.CreateBoltPrompt, agents.PromptInput{
		Idea:              idea,
		Product:           product,
		Research:          p.snap.Research,
		MarketingStrategy: p.snap.MarketingStrategy,
		TechnicalStrategy: p.snap.TechnicalStrategy,
	}).Get(ctx, &prompt)
	if err != nil {
		return RunSnapshot{
			MarketingStrategy: p.snap.MarketingStrategy,
			TechnicalStrategy: p.snap.TechnicalStrategy,
		}, domain.StagePrompt, err
	}
	p.snap.BoltPrompt = &prompt

	return RunSnapshot{
		MarketingStrategy: p.snap.MarketingStrategy,
		TechnicalStrategy: p.snap.TechnicalStrategy,
		BoltPrompt:        &prompt,
	}, "", nil
}

// revenue runs while PromptReady: wait for the completion delay and distribute the simulated revenue.
// A distribution already made by this execution is reused.
func (p *companyPipeline) revenue(ctx workflow.Context) (RunSnapshot, error) {
	if p.snap.Distribution != nil {
		return RunSnapshot{Distribution: p.snap.Distribution}, nil
	}
	if p.w.config.CompletionDelay > 0 {
		if err := workflow.Sleep(ctx, p.w.config.CompletionDelay); err != nil {
			return RunSnapshot{}, err
		}
	}

	var distribution domain.Distribution
	err := workflow.ExecuteActivity(p.persistCtx(ctx), p.w.executor.DistributeRunRevenue, p.runID, p.w.config.CompletionRevenue).
		Get(ctx, &distribution)
	if err != nil {
		return RunSnapshot{}, err
	}
	p.snap.Distribution = &distribution

	return RunSnapshot{Distribution: &distribution}, nil
}

// awaitVote blocks until a vote valid for the current state arrives or the vote timeout elapses
func (p *companyPipeline) awaitVote(ctx workflow.Context) (domain.Trigger, string, bool) {
	timerCtx, cancel := workflow.WithCancel(ctx)
	defer cancel()
	timer := workflow.NewTimer(timerCtx, p.w.config.VoteTimeout)

	for {
		var (
			vote     domain.PipelineVote
			timedOut bool
		)
		selector := workflow.NewSelector(ctx)
		selector.AddReceive(p.votes, func(c workflow.ReceiveChannel, more bool) {
			c.Receive(ctx, &vote)
		})
		selector.AddFuture(timer, func(f workflow.Future) {
			timedOut = true
		})
		selector.Select(ctx)

		if timedOut {
			logger.WarnWf(ctx, "Vote timed out", zap.String("runID", p.runID), zap.String("state", string(p.state)))
			return "", "", false
		}

		trigger, ok := domain.VoteTrigger(vote.Item, vote.Vote)
		if !ok || !pipeline.Allowed(p.state, trigger) {
			logger.WarnWf(ctx, "Ignoring vote not valid for the current state",
				zap.String("runID", p.runID),
				zap.String("state", string(p.state)),
				zap.String("item", string(vote.Item)),
				zap.String("vote", string(vote.Vote)))
			continue
		}

		logger.InfoWf(ctx, "Vote received",
			zap.String("runID", p.runID),
			zap.String("trigger", string(trigger)),
			zap.String("voter", vote.Voter))
		return trigger, vote.Voter, true
	}
}

// failAndAwaitResume moves the run to failed, persisting partial, and waits for a resume signal.
// resumed is false when the resume timeout elapsed; the run stays failed and can be restarted later.
func (p *companyPipeline) failAndAwaitResume(ctx workflow.Context, stage domain.Stage, partial RunSnapshot, cause error) (bool, string, error) {
	note := stageErrorMessage(cause)
	logger.WarnWf(ctx, "Pipeline stage failed",
		zap.String("runID", p.runID),
		zap.String("stage", string(stage)),
		zap.String("error", note))

	tr, err := pipeline.Next(p.state, domain.TriggerStageError, "")
	if err != nil {
		return false, "", temporal.NewNonRetryableApplicationError(err.Error(), errTypeInvalidTransition, err)
	}
	if err := p.apply(ctx, tr, SystemActor, partial, stage, note); err != nil {
		return false, "", err
	}
	p.state = tr.To
	p.failedStage = stage

	timerCtx, cancel := workflow.WithCancel(ctx)
	defer cancel()
	timer := workflow.NewTimer(timerCtx, p.w.config.VoteTimeout)

	var (
		actor    string
		timedOut bool
	)
	selector := workflow.NewSelector(ctx)
	selector.AddReceive(p.resumes, func(c workflow.ReceiveChannel, more bool) {
		c.Receive(ctx, &actor)
	})
	selector.AddFuture(timer, func(f workflow.Future) {
		timedOut = true
	})
	selector.Select(ctx)

	if timedOut {
		logger.InfoWf(ctx, "No resume received, leaving run failed", zap.String("runID", p.runID))
		return false, "", nil
	}
	if actor == "" {
		actor = SystemActor
	}
	return true, actor, nil
}

// redoStage returns the stage a resume re-runs when persisting tr failed.
// The boolean is false when the run is not in a state a stage error can interrupt.
func redoStage(tr pipeline.Transition) (domain.Stage, bool) {
	if tr.From == domain.PipelineStateFailed {
		return "", false
	}
	switch tr.To {
	case domain.PipelineStateProductPending:
		return domain.StageProduct, true
	case domain.PipelineStateCompleted:
		return domain.StageRevenue, true
	}
	return pipeline.EntryStage(tr.To, tr.Trigger)
}

func (p *companyPipeline) apply(ctx workflow.Context, tr pipeline.Transition, actor string, snapshot RunSnapshot, failedStage domain.Stage, note string) error {
	return workflow.ExecuteActivity(p.persistCtx(ctx), p.w.executor.ApplyTransition, TransitionInput{
		RunID:       p.runID,
		From:        tr.From,
		To:          tr.To,
		Trigger:     tr.Trigger,
		Actor:       actor,
		Note:        note,
		FailedStage: failedStage,
		Snapshot:    snapshot,
	}).Get(ctx, nil)
}

func (p *companyPipeline) idea() domain.Idea {
	if p.snap.Idea == nil {
		return domain.Idea{}
	}
	return *p.snap.Idea
}

func (p *companyPipeline) product() domain.Product {
	if p.snap.Product == nil {
		return domain.Product{}
	}
	return *p.snap.Product
}

func (p *companyPipeline) stageCtx(ctx workflow.Context) workflow.Context {
	attempts := p.w.config.StageMaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	timeout := p.w.config.StageTimeout
	if timeout <= 0 {
		timeout = 3 * time.Minute
	}
	return workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: timeout,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: attempts,
			InitialInterval: 5 * time.Second,
		},
	})
}

func (p *companyPipeline) persistCtx(ctx workflow.Context) workflow.Context {
	return workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 5,
			InitialInterval: 2 * time.Second,
		},
	})
}

// stageErrorMessage returns the innermost application error message of an activity failure
func stageErrorMessage(err error) string {
	var appErr *temporal.ApplicationError
	if errors.As(err, &appErr) {
		return appErr.Error()
	}
	return err.Error()
}
