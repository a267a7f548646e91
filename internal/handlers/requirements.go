package handlers

import (
	"log"
	"net/http"

	"pm-assistant/internal/database"
	"pm-assistant/internal/models"

	"github.com/gin-gonic/gin"
)

func ListRequirements(c *gin.Context) {
	dbq := database.DB.Preload("Project").Order("created_at desc")
	if projectID := c.Query("projectId"); projectID != "" {
		dbq = dbq.Where("project_id = ?", projectID)
	}

	var requirements []models.Requirement
	if err := dbq.Find(&requirements).Error; err != nil {
		log.Printf("failed to list requirements: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requirements"})
		return
	}

	c.JSON(http.StatusOK, requirements)
}

type createRequirementRequest struct {
	ProjectID   string                     `json:"projectId"`
	Title       string                     `json:"title"`
	Description string                     `json:"description"`
	Category    models.RequirementCategory `json:"category"`
	Priority    models.Priority            `json:"priority"`
	Tags        string                     `json:"tags"`
}

func CreateRequirement(c *gin.Context) {
	var req createRequirementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.ProjectID == "" || req.Title == "" || req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if req.Category == "" {
		req.Category = models.ReqFunctional
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}

	requirement := models.Requirement{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      models.ReqDraft,
		Tags:        req.Tags,
	}

	if err := database.DB.Create(&requirement).Error; err != nil {
		log.Printf("failed to create requirement: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create requirement"})
		return
	}

	database.DB.Preload("Project").First(&requirement, "id = ?", requirement.ID)
	c.JSON(http.StatusCreated, requirement)
}
