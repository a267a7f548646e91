package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RiskCategory string
type RiskLevel string
type RiskStatus string

const (
	RiskTechnical   RiskCategory = "TECHNICAL"
	RiskBusiness    RiskCategory = "BUSINESS"
	RiskOperational RiskCategory = "OPERATIONAL"
	RiskFinancial   RiskCategory = "FINANCIAL"
	RiskTimeline    RiskCategory = "TIMELINE"
	RiskResource    RiskCategory = "RESOURCE"

	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"

	RiskIdentified RiskStatus = "IDENTIFIED"
	RiskAssessed   RiskStatus = "ASSESSED"
	RiskMitigated  RiskStatus = "MITIGATED"
	RiskClosed     RiskStatus = "CLOSED"
)

type Risk struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ProjectID string   `gorm:"size:36;not null;index" json:"projectId"`
	Project   *Project `json:"project,omitempty"`

	Title       string       `gorm:"size:255;not null" json:"title"`
	Description string       `gorm:"type:text;not null" json:"description"`
	Category    RiskCategory `gorm:"type:varchar(50);not null" json:"category"`
	Probability RiskLevel    `gorm:"type:varchar(20);not null" json:"probability"`
	Impact      RiskLevel    `gorm:"type:varchar(20);not null" json:"impact"`
	Status      RiskStatus   `gorm:"type:varchar(50);not null" json:"status"`
	Mitigation  string       `gorm:"type:text" json:"mitigation"`
	Owner       string       `gorm:"size:255" json:"owner"`
}

func (r *Risk) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
