package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"pm-assistant/internal/database"
	"pm-assistant/internal/fileproc"
	"pm-assistant/internal/models"

	"github.com/gin-gonic/gin"
)

// Upload accepts one multipart file, stores it under the upload dir
// and extracts its content. The FileUpload row starts PROCESSING and
// is updated exactly once to PROCESSED or ERROR.
func Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		log.Printf("failed to open uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "File upload failed"})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		log.Printf("failed to read uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "File upload failed"})
		return
	}

	fileName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(fileHeader.Filename))
	filePath := filepath.Join(cfg.UploadDir, fileName)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Printf("failed to create upload dir: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "File upload failed"})
		return
	}
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		log.Printf("failed to store uploaded file: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "File upload failed"})
		return
	}

	var projectID *string
	if pid := c.PostForm("projectId"); pid != "" {
		projectID = &pid
	}

	upload := models.FileUpload{
		FileName:     fileName,
		OriginalName: fileHeader.Filename,
		FilePath:     filePath,
		FileSize:     fileHeader.Size,
		MimeType:     fileHeader.Header.Get("Content-Type"),
		ProjectID:    projectID,
		Status:       models.UploadProcessing,
	}
	if err := database.DB.Create(&upload).Error; err != nil {
		log.Printf("failed to create upload record: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "File upload failed"})
		return
	}

	processed, procErr := fileproc.Process(fileHeader.Filename, upload.MimeType, data)

	if procErr != nil {
		if err := database.DB.Model(&upload).Updates(map[string]any{
			"status":        models.UploadError,
			"error_message": procErr.Error(),
		}).Error; err != nil {
			log.Printf("failed to mark upload %s errored: %v", upload.ID, err)
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"fileId":   upload.ID,
			"fileName": upload.FileName,
			"status":   models.UploadError,
			"error":    procErr.Error(),
		})
		return
	}

	raw, _ := json.Marshal(processed)
	if err := database.DB.Model(&upload).Updates(map[string]any{
		"status":         models.UploadProcessed,
		"processed_data": raw,
	}).Error; err != nil {
		log.Printf("failed to mark upload %s processed: %v", upload.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"fileId":        upload.ID,
		"fileName":      upload.FileName,
		"status":        models.UploadProcessed,
		"processedData": processed,
	})
}

func ListUploads(c *gin.Context) {
	dbq := database.DB.Order("uploaded_at desc")
	if projectID := c.Query("projectId"); projectID != "" {
		dbq = dbq.Where("project_id = ?", projectID)
	}

	var uploads []models.FileUpload
	if err := dbq.Find(&uploads).Error; err != nil {
		log.Printf("failed to list uploads: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch uploads"})
		return
	}

	c.JSON(http.StatusOK, uploads)
}
