package handlers

import (
	"log"
	"net/http"

	"pm-assistant/internal/database"
	"pm-assistant/internal/models"

	"github.com/gin-gonic/gin"
)

func ListDocuments(c *gin.Context) {
	dbq := database.DB.Preload("Project").Order("created_at desc")
	if projectID := c.Query("projectId"); projectID != "" {
		dbq = dbq.Where("project_id = ?", projectID)
	}

	var documents []models.Document
	if err := dbq.Find(&documents).Error; err != nil {
		log.Printf("failed to list documents: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
		return
	}

	c.JSON(http.StatusOK, documents)
}

type createDocumentRequest struct {
	ProjectID string              `json:"projectId"`
	Title     string              `json:"title"`
	Content   string              `json:"content"`
	DocType   models.DocumentType `json:"docType"`
}

func CreateDocument(c *gin.Context) {
	var req createDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.ProjectID == "" || req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if req.DocType == "" {
		req.DocType = models.DocOther
	}

	document := models.Document{
		ProjectID: req.ProjectID,
		Title:     req.Title,
		Content:   req.Content,
		DocType:   req.DocType,
	}

	if err := database.DB.Create(&document).Error; err != nil {
		log.Printf("failed to create document: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create document"})
		return
	}

	c.JSON(http.StatusCreated, document)
}
