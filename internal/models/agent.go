package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AgentType string

const (
	AgentInputParser    AgentType = "INPUT_PARSER"
	AgentPlanning       AgentType = "PLANNING_AGENT"
	AgentRiskAssessment AgentType = "RISK_ASSESSMENT"
	AgentDocumentation  AgentType = "DOCUMENTATION"
	AgentOrchestrator   AgentType = "ORCHESTRATOR"
)

// Agent is static reference data, seeded at startup.
type Agent struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name        string         `gorm:"uniqueIndex;size:255;not null" json:"name"`
	Type        AgentType      `gorm:"type:varchar(50);not null" json:"type"`
	Description string         `gorm:"type:text" json:"description"`
	IsActive    bool           `gorm:"default:true" json:"isActive"`
	Config      datatypes.JSON `json:"config"`

	Executions []AgentExecution `json:"executions,omitempty"`
}

func (a *Agent) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
