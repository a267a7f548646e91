package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskReview     TaskStatus = "REVIEW"
	TaskDone       TaskStatus = "DONE"
)

type Task struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ProjectID string   `gorm:"size:36;not null;index" json:"projectId"`
	Project   *Project `json:"project,omitempty"`

	Title          string     `gorm:"size:255;not null" json:"title"`
	Description    string     `gorm:"type:text" json:"description"`
	Status         TaskStatus `gorm:"type:varchar(50);not null" json:"status"`
	Priority       Priority   `gorm:"type:varchar(20);not null" json:"priority"`
	EstimatedHours int        `json:"estimatedHours"`
	Assignee       string     `gorm:"size:255" json:"assignee"`
	Dependencies   string     `gorm:"size:255" json:"dependencies"`
	Tags           string     `gorm:"size:255" json:"tags"`
}

func (t *Task) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
