package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/workflow"
)

const (
	// VoteSignal carries a domain.PipelineVote to a running pipeline
	VoteSignal = "pipeline-vote"
	// ResumeSignal carries the resuming actor to a failed pipeline
	ResumeSignal = "pipeline-resume"
)

// PipelineInput starts or restarts a company pipeline workflow
type PipelineInput struct {
	RunID     string `json:"run_id"`
	IdeaCount int    `json:"idea_count"`
	// Resume restarts a failed run from its persisted state
	Resume bool `json:"resume,omitempty"`
	// Actor is recorded on the resume transition
	Actor string `json:"actor,omitempty"`
}

// LaunchInput schedules the launch of a listing
type LaunchInput struct {
	ListingID  uint64    `json:"listing_id"`
	LaunchDate time.Time `json:"launch_date"`
}

// PipelineWorkflowID returns the workflow ID for a pipeline run
func PipelineWorkflowID(runID string) string {
	return fmt.Sprintf("company-pipeline-%s", runID)
}

// LaunchWorkflowID returns the workflow ID for a listing launch
func LaunchWorkflowID(listingID uint64) string {
	return fmt.Sprintf("listing-launch-%d", listingID)
}

// WorkerCore defines the workflows run by the worker
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockWorkerCore
type WorkerCore interface {
	// CompanyPipeline drives a pipeline run through the idea, research, product, strategy and prompt stages
	CompanyPipeline(ctx workflow.Context, input PipelineInput) error

	// LaunchListing waits until the launch date and launches the listing
	LaunchListing(ctx workflow.Context, input LaunchInput) error
}

// WorkerCoreConfig holds the timing of the workflows
type WorkerCoreConfig struct {
	// StageTimeout bounds a single LLM backed activity
	StageTimeout time.Duration
	// StageMaxAttempts is the number of attempts of a stage activity
	StageMaxAttempts int32
	// CompletionDelay is the wait between PromptReady and Completed
	CompletionDelay time.Duration
	// CompletionRevenue is the simulated revenue distributed on completion
	CompletionRevenue float64
	// VoteTimeout is how long a run waits for a vote or a resume
	VoteTimeout time.Duration
}

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	config   WorkerCoreConfig
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor, config WorkerCoreConfig) WorkerCore {
	return &workerCore{
		executor: executor,
		config:   config,
	}
}
