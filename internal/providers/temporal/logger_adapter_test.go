package temporal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestConvertKeyvalsToFields(t *testing.T) {
	fields := convertKeyvalsToFields("WorkflowID", "wf-1", 42, "skipped", "Attempt", 2, "dangling")
	assert.Len(t, fields, 2)
	assert.Equal(t, "WorkflowID", fields[0].Key)
	assert.Equal(t, "Attempt", fields[1].Key)
}

func TestZapLoggerAdapter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapLoggerAdapter(zap.New(core))

	log.Info("started", "WorkflowID", "wf-1")
	scoped := log.(*ZapLoggerAdapter).With("RunID", "run-1")
	scoped.Warn("slow", "Attempt", 3)

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "started", entries[0].Message)
	assert.Equal(t, "wf-1", entries[0].ContextMap()["WorkflowID"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "run-1", entries[1].ContextMap()["RunID"])
	assert.Equal(t, int64(3), entries[1].ContextMap()["Attempt"])
}
