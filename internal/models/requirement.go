package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RequirementCategory string
type RequirementStatus string

const (
	ReqFunctional    RequirementCategory = "FUNCTIONAL"
	ReqNonFunctional RequirementCategory = "NON_FUNCTIONAL"
	ReqTechnical     RequirementCategory = "TECHNICAL"
	ReqBusiness      RequirementCategory = "BUSINESS"

	ReqDraft       RequirementStatus = "DRAFT"
	ReqReview      RequirementStatus = "REVIEW"
	ReqApproved    RequirementStatus = "APPROVED"
	ReqImplemented RequirementStatus = "IMPLEMENTED"
)

type Requirement struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ProjectID string   `gorm:"size:36;not null;index" json:"projectId"`
	Project   *Project `json:"project,omitempty"`

	Title       string              `gorm:"size:255;not null" json:"title"`
	Description string              `gorm:"type:text;not null" json:"description"`
	Category    RequirementCategory `gorm:"type:varchar(50);not null" json:"category"`
	Priority    Priority            `gorm:"type:varchar(20);not null" json:"priority"`
	Status      RequirementStatus   `gorm:"type:varchar(50);not null" json:"status"`
	Tags        string              `gorm:"size:255" json:"tags"`
}

func (r *Requirement) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
