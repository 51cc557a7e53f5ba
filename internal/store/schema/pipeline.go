package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/ai-company/internal/domain"
)

// PipelineRun represents the pipeline_runs table - one persisted company pipeline
type PipelineRun struct {
	// ID is a ULID
	ID string `gorm:"column:id;primaryKey;type:varchar(26)" json:"id"`
	// State is the current FSM state
	State domain.PipelineState `gorm:"column:state;not null;type:varchar(32)" json:"state"`
	// IdeaCount is the number of ideas generated per idea stage
	IdeaCount int `gorm:"column:idea_count;not null;default:3" json:"idea_count"`
	// Ideas is the latest generated idea list
	Ideas datatypes.JSON `gorm:"column:ideas;type:jsonb" json:"ideas,omitempty"`
	// Idea is the idea currently under vote or approved
	Idea datatypes.JSON `gorm:"column:idea;type:jsonb" json:"idea,omitempty"`
	// Research is the research snapshot
	Research datatypes.JSON `gorm:"column:research;type:jsonb" json:"research,omitempty"`
	// Product is the product snapshot
	Product datatypes.JSON `gorm:"column:product;type:jsonb" json:"product,omitempty"`
	// MarketingStrategy is the marketing strategy snapshot
	MarketingStrategy datatypes.JSON `gorm:"column:marketing_strategy;type:jsonb" json:"marketing_strategy,omitempty"`
	// TechnicalStrategy is the technical strategy snapshot
	TechnicalStrategy datatypes.JSON `gorm:"column:technical_strategy;type:jsonb" json:"technical_strategy,omitempty"`
	// BoltPrompt is the final website prompt
	BoltPrompt datatypes.JSON `gorm:"column:bolt_prompt;type:jsonb" json:"bolt_prompt,omitempty"`
	// FailedStage is the stage that moved the run to failed
	FailedStage *domain.Stage `gorm:"column:failed_stage;type:varchar(32)" json:"failed_stage,omitempty"`
	// LastError is the message of the last stage error
	LastError *string `gorm:"column:last_error;type:text" json:"last_error,omitempty"`
	// WorkflowID is the Temporal workflow driving the run
	WorkflowID string `gorm:"column:workflow_id;type:text" json:"workflow_id"`
	// CreatedAt is the timestamp when the run was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"created_at"`
	// UpdatedAt is the timestamp of the last transition
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz" json:"updated_at"`
}

// TableName specifies the table name for the PipelineRun model
func (PipelineRun) TableName() string {
	return "pipeline_runs"
}

// PipelineTransition represents the pipeline_transitions table - append-only FSM history
type PipelineTransition struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// RunID references the pipeline run
	RunID string `gorm:"column:run_id;not null;type:varchar(26)" json:"run_id"`
	// FromState is the state before the transition, empty for the first transition
	FromState domain.PipelineState `gorm:"column:from_state;not null;type:varchar(32)" json:"from_state"`
	// ToState is the state after the transition
	ToState domain.PipelineState `gorm:"column:to_state;not null;type:varchar(32)" json:"to_state"`
	// Trigger is what caused the transition
	Trigger domain.Trigger `gorm:"column:trigger;not null;type:varchar(32)" json:"trigger"`
	// Actor is the voter or "system"
	Actor string `gorm:"column:actor;not null;type:text" json:"actor"`
	// ContentHash is keccak256 of the JCS canonical stage payload
	ContentHash string `gorm:"column:content_hash;type:varchar(66)" json:"content_hash,omitempty"`
	// Note holds a human readable detail such as an error message
	Note string `gorm:"column:note;type:text" json:"note,omitempty"`
	// CreatedAt is the timestamp of the transition
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"created_at"`
}

// TableName specifies the table name for the PipelineTransition model
func (PipelineTransition) TableName() string {
	return "pipeline_transitions"
}
