package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectType string
type ProjectStatus string
type Priority string

const (
	ProjectSoftware       ProjectType = "SOFTWARE"
	ProjectMarketing      ProjectType = "MARKETING"
	ProjectInfrastructure ProjectType = "INFRASTRUCTURE"
	ProjectResearch       ProjectType = "RESEARCH"
	ProjectOther          ProjectType = "OTHER"

	StatusPlanning   ProjectStatus = "PLANNING"
	StatusInProgress ProjectStatus = "IN_PROGRESS"
	StatusOnHold     ProjectStatus = "ON_HOLD"
	StatusCompleted  ProjectStatus = "COMPLETED"
	StatusCancelled  ProjectStatus = "CANCELLED"

	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

type Project struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Title             string        `gorm:"size:255;not null" json:"title"`
	Description       string        `gorm:"type:text" json:"description"`
	Industry          string        `gorm:"size:100" json:"industry"`
	ProjectType       ProjectType   `gorm:"type:varchar(50);not null" json:"projectType"`
	Priority          Priority      `gorm:"type:varchar(20);not null" json:"priority"`
	Status            ProjectStatus `gorm:"type:varchar(50);not null" json:"status"`
	EstimatedDuration int           `json:"estimatedDuration"` // days
	StartDate         *time.Time    `json:"startDate"`
	EndDate           *time.Time    `json:"endDate"`

	Requirements    []Requirement    `gorm:"constraint:OnDelete:CASCADE" json:"requirements,omitempty"`
	Tasks           []Task           `gorm:"constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
	Risks           []Risk           `gorm:"constraint:OnDelete:CASCADE" json:"risks,omitempty"`
	Documents       []Document       `gorm:"constraint:OnDelete:CASCADE" json:"documents,omitempty"`
	Uploads         []FileUpload     `gorm:"constraint:OnDelete:CASCADE" json:"uploads,omitempty"`
	AgentExecutions []AgentExecution `gorm:"constraint:OnDelete:CASCADE" json:"agentExecutions,omitempty"`
}

func (p *Project) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
