package schema

import (
	"time"

	"gorm.io/datatypes"
)

// AgentActivity represents the agent_activities table - append-only agent activity log
type AgentActivity struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// AgentName is the role that performed the action (e.g. "CEO Agent")
	AgentName string `gorm:"column:agent_name;not null;type:text" json:"agent_name"`
	// Action is a short description of what happened
	Action string `gorm:"column:action;not null;type:text" json:"action"`
	// Details holds action specific data
	Details datatypes.JSON `gorm:"column:details;type:jsonb" json:"details"`
	// CreatedAt is the timestamp of the action
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz" json:"created_at"`
}

// TableName specifies the table name for the AgentActivity model
func (AgentActivity) TableName() string {
	return "agent_activities"
}
