package agents

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/feral-file/ai-company/internal/llm"
	"github.com/feral-file/ai-company/internal/logger"
)

// ActivityRecorder persists agent activity for the activity feed
//
//go:generate mockgen -source=agent.go -destination=../mocks/activity_recorder.go -package=mocks -mock_names=ActivityRecorder=MockActivityRecorder
type ActivityRecorder interface {
	RecordActivity(ctx context.Context, agentName string, action string, details json.RawMessage) error
}

// validator is implemented by every stage payload
type validator interface {
	Validate() error
}

// agent is the shared core of every role: a name, a system prompt and a provider
type agent struct {
	name     string
	system   string
	provider llm.Provider
	recorder ActivityRecorder
}

// ask sends the prompt and decodes the reply into out.
// Upstream failures are returned as errors; a reply that cannot be decoded or
// validated returns ok=false so the caller can substitute its fallback.
func (a *agent) ask(ctx context.Context, prompt string, maxTokens int, out validator) (bool, error) {
	resp, err := a.provider.Complete(ctx, llm.Request{
		System:    a.system,
		Prompt:    prompt,
		MaxTokens: maxTokens,
	})
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("agent", a.name))
		return false, err
	}

	if err := llm.Decode(resp.Text, out); err != nil {
		logger.WarnCtx(ctx, "agent reply could not be decoded, using fallback",
			zap.String("agent", a.name),
			zap.Error(err))
		return false, nil
	}

	if err := out.Validate(); err != nil {
		logger.WarnCtx(ctx, "agent reply failed validation, using fallback",
			zap.String("agent", a.name),
			zap.Error(err))
		return false, nil
	}

	logger.DebugCtx(ctx, "agent reply accepted",
		zap.String("agent", a.name),
		zap.String("model", resp.Model),
		zap.Int("output_tokens", resp.Usage.OutputTokens))
	return true, nil
}

// record appends an activity log entry; failures are logged and otherwise ignored
func (a *agent) record(ctx context.Context, action string, details any) {
	if a.recorder == nil {
		return
	}

	data, err := json.Marshal(details)
	if err != nil {
		logger.WarnCtx(ctx, "failed to encode activity details", zap.String("agent", a.name), zap.Error(err))
		return
	}

	if err := a.recorder.RecordActivity(ctx, a.name, action, data); err != nil {
		logger.WarnCtx(ctx, "failed to record agent activity",
			zap.String("agent", a.name),
			zap.String("action", action),
			zap.Error(err))
	}
}

// toJSON renders a value for embedding in a prompt
func toJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
