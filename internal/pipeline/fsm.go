package pipeline

import (
	"fmt"

	"github.com/feral-file/ai-company/internal/domain"
)

// Transition is one edge taken by a pipeline run
type Transition struct {
	From    domain.PipelineState `json:"from_state"`
	To      domain.PipelineState `json:"to_state"`
	Trigger domain.Trigger       `json:"trigger"`
}

// transitions is the full transition table, excluding stage errors and resume
// which are handled separately because they apply to many states.
var transitions = map[domain.PipelineState]map[domain.Trigger]domain.PipelineState{
	"": {
		domain.TriggerStart: domain.PipelineStateIdeaPending,
	},
	domain.PipelineStateIdeaPending: {
		domain.TriggerApproveIdea: domain.PipelineStateResearching,
		domain.TriggerRejectIdea:  domain.PipelineStateIdeaPending,
	},
	domain.PipelineStateResearching: {
		domain.TriggerResearchDone: domain.PipelineStateProductPending,
	},
	domain.PipelineStateProductPending: {
		domain.TriggerApproveProduct: domain.PipelineStateStrategyPending,
		domain.TriggerRejectProduct:  domain.PipelineStateProductPending,
	},
	domain.PipelineStateStrategyPending: {
		domain.TriggerStrategiesReady: domain.PipelineStatePromptReady,
	},
	domain.PipelineStatePromptReady: {
		domain.TriggerRevenueDelay: domain.PipelineStateCompleted,
	},
}

// running lists the states a stage error can interrupt
var running = map[domain.PipelineState]bool{
	"":                                  true,
	domain.PipelineStateIdeaPending:     true,
	domain.PipelineStateResearching:     true,
	domain.PipelineStateProductPending:  true,
	domain.PipelineStateStrategyPending: true,
	domain.PipelineStatePromptReady:     true,
}

// Next returns the transition taken from state on trigger.
// failedStage is only consulted when resuming a failed run.
func Next(state domain.PipelineState, trigger domain.Trigger, failedStage domain.Stage) (Transition, error) {
	t := Transition{From: state, Trigger: trigger}

	switch trigger {
	case domain.TriggerStageError:
		if !running[state] {
			return t, invalid(state, trigger)
		}
		t.To = domain.PipelineStateFailed
		return t, nil
	case domain.TriggerResume:
		if state != domain.PipelineStateFailed {
			return t, invalid(state, trigger)
		}
		to, ok := ResumeState(failedStage)
		if !ok {
			return t, fmt.Errorf("%w: unknown failed stage %q", domain.ErrInvalidTransition, failedStage)
		}
		t.To = to
		return t, nil
	}

	to, ok := transitions[state][trigger]
	if !ok {
		return t, invalid(state, trigger)
	}
	t.To = to
	return t, nil
}

// Allowed reports whether trigger is valid in state, ignoring resume
func Allowed(state domain.PipelineState, trigger domain.Trigger) bool {
	_, err := Next(state, trigger, "")
	return err == nil
}

// ResumeState maps the stage that failed to the state re-entered on resume
func ResumeState(failed domain.Stage) (domain.PipelineState, bool) {
	switch failed {
	case domain.StageIdea:
		return domain.PipelineStateIdeaPending, true
	case domain.StageResearch:
		return domain.PipelineStateResearching, true
	case domain.StageProduct:
		return domain.PipelineStateProductPending, true
	case domain.StageStrategies, domain.StagePrompt:
		return domain.PipelineStateStrategyPending, true
	case domain.StageRevenue:
		return domain.PipelineStatePromptReady, true
	default:
		return "", false
	}
}

// EntryStage returns the stage that runs when a state is entered by the given trigger.
// The boolean is false when entering the state requires no stage work.
func EntryStage(to domain.PipelineState, trigger domain.Trigger) (domain.Stage, bool) {
	switch to {
	case domain.PipelineStateIdeaPending:
		return domain.StageIdea, true
	case domain.PipelineStateResearching:
		return domain.StageResearch, true
	case domain.PipelineStateProductPending:
		// Research completion already produced the product
		if trigger == domain.TriggerResearchDone {
			return "", false
		}
		return domain.StageProduct, true
	case domain.PipelineStateStrategyPending:
		return domain.StageStrategies, true
	case domain.PipelineStatePromptReady:
		return domain.StageRevenue, true
	default:
		return "", false
	}
}

func invalid(state domain.PipelineState, trigger domain.Trigger) error {
	from := string(state)
	if from == "" {
		from = "new"
	}
	return fmt.Errorf("%w: %s cannot handle %s", domain.ErrInvalidTransition, from, trigger)
}
