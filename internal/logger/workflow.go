package logger

import (
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"
)

// WorkflowInfo identifies a Temporal workflow execution in log lines
type WorkflowInfo struct {
	WorkflowType string
	WorkflowID   string
	RunID        string
	Namespace    string
	TaskQueue    string
}

// GetWorkflowInfo extracts workflow information from workflow.Context.
// Returns nil if workflow info is not available.
func GetWorkflowInfo(ctx workflow.Context) *WorkflowInfo {
	info := workflow.GetInfo(ctx)
	if info == nil {
		return nil
	}

	workflowTypeName := info.WorkflowType.Name
	if workflowTypeName == "" {
		workflowTypeName = "unknown"
	}

	return &WorkflowInfo{
		WorkflowType: workflowTypeName,
		WorkflowID:   info.WorkflowExecution.ID,
		RunID:        info.WorkflowExecution.RunID,
		Namespace:    info.Namespace,
		TaskQueue:    info.TaskQueueName,
	}
}

// WithWorkflowInfo returns the global logger annotated with workflow fields
func WithWorkflowInfo(info WorkflowInfo) *zap.Logger {
	return log.With(
		zap.String("workflow_type", info.WorkflowType),
		zap.String("workflow_id", info.WorkflowID),
		zap.String("run_id", info.RunID),
		zap.String("namespace", info.Namespace),
		zap.String("task_queue", info.TaskQueue),
	)
}

// fromWorkflow returns a workflow-annotated logger, or nil while the workflow is replaying
// so that replayed history does not duplicate log lines.
func fromWorkflow(ctx workflow.Context) *zap.Logger {
	if workflow.IsReplaying(ctx) {
		return nil
	}
	info := GetWorkflowInfo(ctx)
	if info == nil {
		return log
	}
	return WithWorkflowInfo(*info)
}

// InfoWf logs an info message with workflow context
func InfoWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	if l := fromWorkflow(ctx); l != nil {
		l.Info(msg, fields...)
	}
}

// ErrorWf logs an error message with workflow context
func ErrorWf(ctx workflow.Context, err error, fields ...zap.Field) {
	l := fromWorkflow(ctx)
	if l == nil {
		return
	}
	if err != nil {
		l.Error(err.Error(), fields...)
	} else {
		l.Error("error occurred", fields...)
	}
}

// WarnWf logs a warning message with workflow context
func WarnWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	if l := fromWorkflow(ctx); l != nil {
		l.Warn(msg, fields...)
	}
}

// DebugWf logs a debug message with workflow context
func DebugWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	if l := fromWorkflow(ctx); l != nil {
		l.Debug(msg, fields...)
	}
}
