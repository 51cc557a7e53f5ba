package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ai-company/internal/domain"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name        string
		from        domain.PipelineState
		trigger     domain.Trigger
		failedStage domain.Stage
		want        domain.PipelineState
		wantErr     bool
	}{
		{name: "start", from: "", trigger: domain.TriggerStart, want: domain.PipelineStateIdeaPending},
		{name: "approve idea", from: domain.PipelineStateIdeaPending, trigger: domain.TriggerApproveIdea, want: domain.PipelineStateResearching},
		{name: "reject idea regenerates", from: domain.PipelineStateIdeaPending, trigger: domain.TriggerRejectIdea, want: domain.PipelineStateIdeaPending},
		{name: "research done", from: domain.PipelineStateResearching, trigger: domain.TriggerResearchDone, want: domain.PipelineStateProductPending},
		{name: "approve product", from: domain.PipelineStateProductPending, trigger: domain.TriggerApproveProduct, want: domain.PipelineStateStrategyPending},
		{name: "reject product retries product", from: domain.PipelineStateProductPending, trigger: domain.TriggerRejectProduct, want: domain.PipelineStateProductPending},
		{name: "strategies ready", from: domain.PipelineStateStrategyPending, trigger: domain.TriggerStrategiesReady, want: domain.PipelineStatePromptReady},
		{name: "revenue delay", from: domain.PipelineStatePromptReady, trigger: domain.TriggerRevenueDelay, want: domain.PipelineStateCompleted},
		{name: "stage error while researching", from: domain.PipelineStateResearching, trigger: domain.TriggerStageError, want: domain.PipelineStateFailed},
		{name: "stage error on new run", from: "", trigger: domain.TriggerStageError, want: domain.PipelineStateFailed},
		{name: "resume research", from: domain.PipelineStateFailed, trigger: domain.TriggerResume, failedStage: domain.StageResearch, want: domain.PipelineStateResearching},
		{name: "resume prompt", from: domain.PipelineStateFailed, trigger: domain.TriggerResume, failedStage: domain.StagePrompt, want: domain.PipelineStateStrategyPending},
		{name: "resume revenue", from: domain.PipelineStateFailed, trigger: domain.TriggerResume, failedStage: domain.StageRevenue, want: domain.PipelineStatePromptReady},
		{name: "vote on idea while researching", from: domain.PipelineStateResearching, trigger: domain.TriggerApproveIdea, wantErr: true},
		{name: "product vote while idea pending", from: domain.PipelineStateIdeaPending, trigger: domain.TriggerApproveProduct, wantErr: true},
		{name: "error after completion", from: domain.PipelineStateCompleted, trigger: domain.TriggerStageError, wantErr: true},
		{name: "resume running run", from: domain.PipelineStateResearching, trigger: domain.TriggerResume, failedStage: domain.StageResearch, wantErr: true},
		{name: "resume unknown stage", from: domain.PipelineStateFailed, trigger: domain.TriggerResume, failedStage: "", wantErr: true},
		{name: "completed is terminal", from: domain.PipelineStateCompleted, trigger: domain.TriggerRevenueDelay, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Next(tt.from, tt.trigger, tt.failedStage)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.from, got.From)
			assert.Equal(t, tt.want, got.To)
			assert.Equal(t, tt.trigger, got.Trigger)
		})
	}
}

func TestAllowed(t *testing.T) {
	assert.True(t, Allowed(domain.PipelineStateIdeaPending, domain.TriggerRejectIdea))
	assert.False(t, Allowed(domain.PipelineStateStrategyPending, domain.TriggerRejectProduct))
	assert.False(t, Allowed(domain.PipelineStateFailed, domain.TriggerResume))
}

func TestEntryStage(t *testing.T) {
	stage, ok := EntryStage(domain.PipelineStateProductPending, domain.TriggerResearchDone)
	assert.False(t, ok)
	assert.Empty(t, stage)

	stage, ok = EntryStage(domain.PipelineStateProductPending, domain.TriggerRejectProduct)
	assert.True(t, ok)
	assert.Equal(t, domain.StageProduct, stage)

	stage, ok = EntryStage(domain.PipelineStateIdeaPending, domain.TriggerRejectIdea)
	assert.True(t, ok)
	assert.Equal(t, domain.StageIdea, stage)

	_, ok = EntryStage(domain.PipelineStateCompleted, domain.TriggerRevenueDelay)
	assert.False(t, ok)
}

// A full walk through the happy path with one rejection at each vote
func TestFullRunWithRejections(t *testing.T) {
	triggers := []domain.Trigger{
		domain.TriggerStart,
		domain.TriggerRejectIdea,
		domain.TriggerApproveIdea,
		domain.TriggerResearchDone,
		domain.TriggerRejectProduct,
		domain.TriggerApproveProduct,
		domain.TriggerStrategiesReady,
		domain.TriggerRevenueDelay,
	}

	state := domain.PipelineState("")
	for _, trigger := range triggers {
		tr, err := Next(state, trigger, "")
		require.NoError(t, err, "trigger %s from %s", trigger, state)
		state = tr.To
	}
	assert.Equal(t, domain.PipelineStateCompleted, state)
	assert.True(t, state.Terminal())
}
