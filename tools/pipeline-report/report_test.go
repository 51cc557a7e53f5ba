package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/enums/v1"
)

func closedExecution(id, wfType string, status enums.WorkflowExecutionStatus, start time.Time, d time.Duration) Execution {
	closeTime := start.Add(d)
	return Execution{
		WorkflowID:   id,
		RunID:        "run-" + id,
		WorkflowType: wfType,
		Status:       status,
		StartTime:    start,
		CloseTime:    &closeTime,
		Duration:     d,
	}
}

func TestReport_AggregatesByType(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	report := newReport(from, from.Add(24*time.Hour))

	report.Add(closedExecution("company-pipeline-a", "CompanyPipeline", enums.WORKFLOW_EXECUTION_STATUS_COMPLETED, from, 4*time.Minute))
	report.Add(closedExecution("company-pipeline-b", "CompanyPipeline", enums.WORKFLOW_EXECUTION_STATUS_COMPLETED, from.Add(time.Hour), 2*time.Minute))
	report.Add(closedExecution("company-pipeline-c", "CompanyPipeline", enums.WORKFLOW_EXECUTION_STATUS_FAILED, from.Add(30*time.Minute), 6*time.Minute))
	report.Add(Execution{
		WorkflowID:   "company-pipeline-d",
		WorkflowType: "CompanyPipeline",
		Status:       enums.WORKFLOW_EXECUTION_STATUS_RUNNING,
		StartTime:    from.Add(2 * time.Hour),
		Duration:     time.Hour,
	})
	report.Add(closedExecution("listing-launch-1", "LaunchListing", enums.WORKFLOW_EXECUTION_STATUS_TIMED_OUT, from, time.Minute))
	report.Finalize()

	groups := report.SortedGroups()
	require.Len(t, groups, 2)
	assert.Equal(t, "CompanyPipeline", groups[0].WorkflowType)
	assert.Equal(t, "LaunchListing", groups[1].WorkflowType)

	pipeline := groups[0]
	assert.Equal(t, 4, pipeline.Count)
	assert.Equal(t, 1, pipeline.RunningCount)
	assert.Equal(t, 2, pipeline.CompletedCount)
	assert.Equal(t, 1, pipeline.FailedCount)
	assert.Equal(t, 2*time.Minute, pipeline.MinDuration)
	assert.Equal(t, 6*time.Minute, pipeline.MaxDuration)
	assert.Equal(t, 4*time.Minute, pipeline.AvgDuration)
	require.Len(t, pipeline.Unsuccessful, 1)
	assert.Equal(t, "company-pipeline-c", pipeline.Unsuccessful[0].WorkflowID)

	launch := groups[1]
	assert.Equal(t, 1, launch.TimedOutCount)
	assert.Equal(t, 1, launch.failures())
}

func TestReport_UnsuccessfulOrderedByStart(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	report := newReport(from, from.Add(time.Hour))

	report.Add(closedExecution("late", "CompanyPipeline", enums.WORKFLOW_EXECUTION_STATUS_TERMINATED, from.Add(30*time.Minute), time.Second))
	report.Add(closedExecution("early", "CompanyPipeline", enums.WORKFLOW_EXECUTION_STATUS_CANCELED, from, time.Second))
	report.Finalize()

	unsuccessful := report.Groups["CompanyPipeline"].Unsuccessful
	require.Len(t, unsuccessful, 2)
	assert.Equal(t, "early", unsuccessful[0].WorkflowID)
	assert.Equal(t, "late", unsuccessful[1].WorkflowID)
}

func TestRenderMarkdown(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	report := newReport(from, from.Add(time.Hour))
	report.Add(closedExecution("company-pipeline-x", "CompanyPipeline", enums.WORKFLOW_EXECUTION_STATUS_FAILED, from, 90*time.Second))
	report.Finalize()

	var b strings.Builder
	require.NoError(t, renderMarkdown(&b, report))

	out := b.String()
	assert.Contains(t, out, "# Pipeline Report")
	assert.Contains(t, out, "| CompanyPipeline | 1 | 0 | 0 | 1 | 1m 30s | 1m 30s | 1m 30s |")
	assert.Contains(t, out, "## Unsuccessful CompanyPipeline runs")
	assert.Contains(t, out, "`company-pipeline-x`")
}

func TestBuildQuery(t *testing.T) {
	from := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	assert.Equal(t,
		"WorkflowType = 'LaunchListing' AND StartTime >= '2026-03-04T05:06:07Z'",
		buildQuery("LaunchListing", from))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{name: "milliseconds", duration: 500 * time.Millisecond, want: "500ms"},
		{name: "seconds", duration: 5 * time.Second, want: "5.00s"},
		{name: "minutes", duration: 2*time.Minute + 30*time.Second, want: "2m 30s"},
		{name: "hours", duration: time.Hour + 15*time.Minute, want: "1h 15m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.duration))
		})
	}
}

func TestStatusEmoji(t *testing.T) {
	assert.Equal(t, "🟡", statusEmoji(1, 1, 1))
	assert.Equal(t, "❌", statusEmoji(1, 1, 0))
	assert.Equal(t, "✅", statusEmoji(1, 0, 0))
	assert.Equal(t, "⚪", statusEmoji(0, 0, 0))
}

func TestPercentageString(t *testing.T) {
	assert.Equal(t, "0.00%", percentageString(1, 0))
	assert.Equal(t, "50.00%", percentageString(1, 2))
}
