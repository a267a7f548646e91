package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentType string

const (
	DocRequirements  DocumentType = "REQUIREMENTS"
	DocTechnicalSpec DocumentType = "TECHNICAL_SPEC"
	DocUserStories   DocumentType = "USER_STORIES"
	DocProjectPlan   DocumentType = "PROJECT_PLAN"
	DocOther         DocumentType = "OTHER"
)

type Document struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ProjectID string   `gorm:"size:36;not null;index" json:"projectId"`
	Project   *Project `json:"project,omitempty"`

	Title   string       `gorm:"size:255;not null" json:"title"`
	Content string       `gorm:"type:text" json:"content"`
	DocType DocumentType `gorm:"type:varchar(50);not null" json:"docType"`
}

func (d *Document) BeforeCreate(*gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
