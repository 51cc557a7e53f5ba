package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/alitto/pond/v2"
	workflowpb "go.temporal.io/api/workflow/v1"
	"go.temporal.io/api/workflowservice/v1"
	"go.temporal.io/sdk/client"
)

const (
	defaultTemporalHost = "localhost:7233"
	defaultNamespace    = "default"
)

// workflowTypes are the workflow types registered by cmd/worker
var workflowTypes = []string{"CompanyPipeline", "LaunchListing"}

type Config struct {
	TemporalHost string
	Namespace    string
	Since        time.Duration
	PageSize     int
	MaxWorkflows int
	QueryTimeout time.Duration
	OutputFile   string
	Debug        bool
}

func main() {
	cfg := parseFlags()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	c, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalHost,
		Namespace: cfg.Namespace,
	})
	if err != nil {
		fmt.Printf("Error creating Temporal client: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	fmt.Printf("Connected to Temporal at %s (namespace: %s)\n", cfg.TemporalHost, cfg.Namespace)

	now := time.Now()
	from := now.Add(-cfg.Since)
	report, err := collectReport(ctx, c, cfg, from, now)
	if err != nil {
		fmt.Printf("Error collecting report: %v\n", err)
		os.Exit(1)
	}

	printReport(os.Stdout, report)

	if cfg.OutputFile != "" {
		if err := writeMarkdownReport(cfg.OutputFile, report); err != nil {
			fmt.Printf("\nWarning: failed to write markdown file: %v\n", err)
			return
		}
		fmt.Printf("\nReport written to: %s\n", cfg.OutputFile)
	}
}

func parseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.TemporalHost, "temporal-host", defaultTemporalHost, "Temporal host address")
	flag.StringVar(&cfg.Namespace, "namespace", defaultNamespace, "Temporal namespace")
	flag.DurationVar(&cfg.Since, "since", 24*time.Hour, "Report on workflows started within this window")
	flag.IntVar(&cfg.PageSize, "page-size", 500, "Page size for Temporal queries (max: 1000)")
	flag.IntVar(&cfg.MaxWorkflows, "max-workflows", 5000, "Maximum workflows to collect per type (0 = unlimited)")
	flag.DurationVar(&cfg.QueryTimeout, "query-timeout", 30*time.Second, "Timeout for each Temporal query")
	flag.StringVar(&cfg.OutputFile, "output", "", "Output markdown file path (optional)")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable debug output")
	flag.Parse()

	if cfg.PageSize <= 0 || cfg.PageSize > 1000 {
		cfg.PageSize = 1000
	}
	if cfg.Since <= 0 {
		cfg.Since = 24 * time.Hour
	}

	return cfg
}

// collectReport lists every execution of each workflow type in [from, to) and folds them into groups.
// Each type is paged through on its own goroutine.
func collectReport(ctx context.Context, c client.Client, cfg *Config, from, to time.Time) (*Report, error) {
	report := newReport(from, to)

	var mu sync.Mutex
	pool := pond.NewPool(len(workflowTypes))
	defer pool.StopAndWait()

	groupCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	group := pool.NewGroupContext(groupCtx)
	for _, wfType := range workflowTypes {
		group.SubmitErr(func() error {
			executions, err := listExecutions(groupCtx, c, cfg, buildQuery(wfType, from))
			if err != nil {
				cancel()
				return fmt.Errorf("failed to list %s workflows: %w", wfType, err)
			}

			mu.Lock()
			defer mu.Unlock()
			for _, exec := range executions {
				report.Add(toExecution(exec, to))
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	report.Finalize()
	return report, nil
}

func listExecutions(ctx context.Context, c client.Client, cfg *Config, query string) ([]*workflowpb.WorkflowExecutionInfo, error) {
	if cfg.Debug {
		fmt.Printf("[DEBUG] Query: %s\n", query)
	}

	var (
		executions []*workflowpb.WorkflowExecutionInfo
		pageToken  []byte
	)
	for {
		queryCtx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
		resp, err := c.ListWorkflow(queryCtx, &workflowservice.ListWorkflowExecutionsRequest{
			Namespace:     cfg.Namespace,
			Query:         query,
			PageSize:      int32(cfg.PageSize), //nolint:gosec,G115
			NextPageToken: pageToken,
		})
		cancel()
		if err != nil {
			if ctx.Err() == nil && queryCtx.Err() == context.DeadlineExceeded {
				return nil, fmt.Errorf("timeout while listing workflows (timeout: %v). Try increasing -query-timeout", cfg.QueryTimeout)
			}
			return nil, err
		}

		executions = append(executions, resp.Executions...)
		if cfg.MaxWorkflows > 0 && len(executions) >= cfg.MaxWorkflows {
			return executions[:cfg.MaxWorkflows], nil
		}
		if len(resp.NextPageToken) == 0 {
			return executions, nil
		}
		pageToken = resp.NextPageToken
	}
}

func buildQuery(workflowType string, from time.Time) string {
	return fmt.Sprintf("WorkflowType = '%s' AND StartTime >= '%s'", workflowType, from.UTC().Format(time.RFC3339))
}

func toExecution(info *workflowpb.WorkflowExecutionInfo, now time.Time) Execution {
	exec := Execution{
		WorkflowID:   info.GetExecution().GetWorkflowId(),
		RunID:        info.GetExecution().GetRunId(),
		WorkflowType: info.GetType().GetName(),
		Status:       info.GetStatus(),
		StartTime:    info.GetStartTime().AsTime(),
	}
	if info.GetCloseTime() != nil {
		closeTime := info.GetCloseTime().AsTime()
		exec.CloseTime = &closeTime
		exec.Duration = closeTime.Sub(exec.StartTime)
	} else {
		exec.Duration = now.Sub(exec.StartTime)
	}
	return exec
}
