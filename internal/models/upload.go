package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UploadStatus string

const (
	UploadProcessing UploadStatus = "PROCESSING"
	UploadProcessed  UploadStatus = "PROCESSED"
	UploadError      UploadStatus = "ERROR"
)

// FileUpload is created PROCESSING and updated exactly once to
// PROCESSED or ERROR; immutable thereafter.
type FileUpload struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploadedAt"`

	FileName     string `gorm:"size:255;not null" json:"fileName"`
	OriginalName string `gorm:"size:255;not null" json:"originalName"`
	FilePath     string `gorm:"size:512;not null" json:"filePath"`
	FileSize     int64  `json:"fileSize"`
	MimeType     string `gorm:"size:100" json:"mimeType"`

	ProjectID *string `gorm:"size:36;index" json:"projectId"`

	Status        UploadStatus   `gorm:"type:varchar(20);not null" json:"status"`
	ProcessedData datatypes.JSON `json:"processedData"`
	ErrorMessage  string         `gorm:"type:text" json:"errorMessage,omitempty"`
}

func (f *FileUpload) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
