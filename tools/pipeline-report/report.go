package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"go.temporal.io/api/enums/v1"
)

// Execution is one workflow run as seen by the visibility store
type Execution struct {
	WorkflowID   string
	RunID        string
	WorkflowType string
	Status       enums.WorkflowExecutionStatus
	StartTime    time.Time
	CloseTime    *time.Time
	Duration     time.Duration
}

// TypeGroup aggregates the executions of one workflow type
type TypeGroup struct {
	WorkflowType    string
	Count           int
	RunningCount    int
	CompletedCount  int
	FailedCount     int
	TerminatedCount int
	TimedOutCount   int
	CanceledCount   int
	MinDuration     time.Duration
	MaxDuration     time.Duration
	AvgDuration     time.Duration
	totalClosed     time.Duration
	Unsuccessful    []Execution
}

// Report is the per-type summary of a time window
type Report struct {
	From   time.Time
	To     time.Time
	Groups map[string]*TypeGroup
}

func newReport(from, to time.Time) *Report {
	return &Report{
		From:   from,
		To:     to,
		Groups: make(map[string]*TypeGroup),
	}
}

// Add folds exec into the group of its workflow type.
// Durations only count closed executions.
func (r *Report) Add(exec Execution) {
	group, ok := r.Groups[exec.WorkflowType]
	if !ok {
		group = &TypeGroup{WorkflowType: exec.WorkflowType}
		r.Groups[exec.WorkflowType] = group
	}
	group.Count++

	switch exec.Status {
	case enums.WORKFLOW_EXECUTION_STATUS_RUNNING:
		group.RunningCount++
		return
	case enums.WORKFLOW_EXECUTION_STATUS_COMPLETED, enums.WORKFLOW_EXECUTION_STATUS_CONTINUED_AS_NEW:
		group.CompletedCount++
	case enums.WORKFLOW_EXECUTION_STATUS_FAILED:
		group.FailedCount++
		group.Unsuccessful = append(group.Unsuccessful, exec)
	case enums.WORKFLOW_EXECUTION_STATUS_TERMINATED:
		group.TerminatedCount++
		group.Unsuccessful = append(group.Unsuccessful, exec)
	case enums.WORKFLOW_EXECUTION_STATUS_TIMED_OUT:
		group.TimedOutCount++
		group.Unsuccessful = append(group.Unsuccessful, exec)
	case enums.WORKFLOW_EXECUTION_STATUS_CANCELED:
		group.CanceledCount++
		group.Unsuccessful = append(group.Unsuccessful, exec)
	}

	closed := group.Count - group.RunningCount
	if closed == 1 || exec.Duration < group.MinDuration {
		group.MinDuration = exec.Duration
	}
	if exec.Duration > group.MaxDuration {
		group.MaxDuration = exec.Duration
	}
	group.totalClosed += exec.Duration
}

// Finalize computes averages and orders the unsuccessful executions by start time
func (r *Report) Finalize() {
	for _, group := range r.Groups {
		if closed := group.Count - group.RunningCount; closed > 0 {
			group.AvgDuration = group.totalClosed / time.Duration(closed)
		}
		sort.Slice(group.Unsuccessful, func(i, j int) bool {
			return group.Unsuccessful[i].StartTime.Before(group.Unsuccessful[j].StartTime)
		})
	}
}

// SortedGroups returns the groups ordered by workflow type name
func (r *Report) SortedGroups() []*TypeGroup {
	groups := make([]*TypeGroup, 0, len(r.Groups))
	for _, group := range r.Groups {
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].WorkflowType < groups[j].WorkflowType
	})
	return groups
}

func (g *TypeGroup) failures() int {
	return g.FailedCount + g.TerminatedCount + g.TimedOutCount + g.CanceledCount
}

func printReport(w io.Writer, report *Report) {
	_, _ = fmt.Fprintln(w, strings.Repeat("=", 80))
	_, _ = fmt.Fprintf(w, "PIPELINE REPORT  %s -> %s\n",
		report.From.Format("2006-01-02 15:04:05"), report.To.Format("2006-01-02 15:04:05"))
	_, _ = fmt.Fprintln(w, strings.Repeat("=", 80))

	if len(report.Groups) == 0 {
		_, _ = fmt.Fprintln(w, "No workflows found.")
		return
	}

	for _, group := range report.SortedGroups() {
		_, _ = fmt.Fprintf(w, "%s %s\n", statusEmoji(group.CompletedCount, group.failures(), group.RunningCount), group.WorkflowType)
		_, _ = fmt.Fprintf(w, "  Count:        %d\n", group.Count)
		_, _ = fmt.Fprintf(w, "  Running:      %d\n", group.RunningCount)
		_, _ = fmt.Fprintf(w, "  Completed:    %d (%s)\n", group.CompletedCount, percentageString(group.CompletedCount, group.Count))
		if n := group.failures(); n > 0 {
			_, _ = fmt.Fprintf(w, "  Unsuccessful: %d (%s)\n", n, percentageString(n, group.Count))
		}
		if group.Count > group.RunningCount {
			_, _ = fmt.Fprintf(w, "  Duration:     min %s / avg %s / max %s\n",
				formatDuration(group.MinDuration), formatDuration(group.AvgDuration), formatDuration(group.MaxDuration))
		}
		_, _ = fmt.Fprintf(w, "  Start Rate:   %s\n", formatRate(group.Count, report.To.Sub(report.From)))
		for _, exec := range group.Unsuccessful {
			_, _ = fmt.Fprintf(w, "    %s  %s  %s\n", formatStatus(exec.Status), exec.WorkflowID, exec.StartTime.Format("2006-01-02 15:04:05"))
		}
		_, _ = fmt.Fprintln(w)
	}
	_, _ = fmt.Fprintln(w, strings.Repeat("-", 80))
}

func writeMarkdownReport(path string, report *Report) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	return renderMarkdown(file, report)
}

func renderMarkdown(w io.Writer, report *Report) error {
	var b strings.Builder
	b.WriteString("# Pipeline Report\n\n")
	fmt.Fprintf(&b, "Window: %s to %s\n\n",
		report.From.Format("2006-01-02 15:04:05"), report.To.Format("2006-01-02 15:04:05"))

	b.WriteString("| Workflow Type | Count | Running | Completed | Unsuccessful | Min | Avg | Max |\n")
	b.WriteString("|---------------|-------|---------|-----------|--------------|-----|-----|-----|\n")
	for _, group := range report.SortedGroups() {
		fmt.Fprintf(&b, "| %s | %d | %d | %d | %d | %s | %s | %s |\n",
			group.WorkflowType, group.Count, group.RunningCount, group.CompletedCount, group.failures(),
			formatDuration(group.MinDuration), formatDuration(group.AvgDuration), formatDuration(group.MaxDuration))
	}

	for _, group := range report.SortedGroups() {
		if len(group.Unsuccessful) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n## Unsuccessful %s runs\n\n", group.WorkflowType)
		b.WriteString("| Workflow ID | Run ID | Status | Started |\n")
		b.WriteString("|-------------|--------|--------|---------|\n")
		for _, exec := range group.Unsuccessful {
			fmt.Fprintf(&b, "| `%s` | `%s` | %s | %s |\n",
				exec.WorkflowID, exec.RunID, exec.Status.String(), exec.StartTime.Format("2006-01-02 15:04:05"))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func formatStatus(status enums.WorkflowExecutionStatus) string {
	switch status {
	case enums.WORKFLOW_EXECUTION_STATUS_RUNNING:
		return "🟡 RUNNING"
	case enums.WORKFLOW_EXECUTION_STATUS_COMPLETED:
		return "✅ COMPLETED"
	case enums.WORKFLOW_EXECUTION_STATUS_FAILED:
		return "❌ FAILED"
	case enums.WORKFLOW_EXECUTION_STATUS_CANCELED:
		return "🚫 CANCELED"
	case enums.WORKFLOW_EXECUTION_STATUS_TERMINATED:
		return "⛔ TERMINATED"
	case enums.WORKFLOW_EXECUTION_STATUS_TIMED_OUT:
		return "⏱️ TIMED_OUT"
	default:
		return status.String()
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
}

func formatRate(count int, window time.Duration) string {
	if window.Hours() == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f/h", float64(count)/window.Hours())
}

func percentageString(part, total int) string {
	if total == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(part)/float64(total)*100)
}

func statusEmoji(completed, failed, running int) string {
	if running > 0 {
		return "🟡"
	}
	if failed > 0 {
		return "❌"
	}
	if completed > 0 {
		return "✅"
	}
	return "⚪"
}
