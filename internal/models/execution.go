package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ExecutionStatus string

const (
	ExecutionPending   ExecutionStatus = "PENDING"
	ExecutionRunning   ExecutionStatus = "RUNNING"
	ExecutionCompleted ExecutionStatus = "COMPLETED"
	ExecutionFailed    ExecutionStatus = "FAILED"
)

// AgentExecution records one invocation of an agent (or of the
// orchestrator itself). Status only ever moves RUNNING -> COMPLETED
// or RUNNING -> FAILED; a record is never reopened.
type AgentExecution struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	AgentID   string `gorm:"size:36;not null;index" json:"agentId"`
	Agent     *Agent `json:"agent,omitempty"`
	ProjectID string `gorm:"size:36;not null;index" json:"projectId"`

	Status       ExecutionStatus `gorm:"type:varchar(20);not null" json:"status"`
	Input        datatypes.JSON  `json:"input"`
	Output       datatypes.JSON  `json:"output"`
	ErrorMessage string          `gorm:"type:text" json:"errorMessage,omitempty"`
	StartedAt    *time.Time      `json:"startedAt"`
	CompletedAt  *time.Time      `json:"completedAt"`
}

func (e *AgentExecution) BeforeCreate(*gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
