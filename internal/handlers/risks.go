package handlers

import (
	"log"
	"net/http"

	"pm-assistant/internal/database"
	"pm-assistant/internal/models"

	"github.com/gin-gonic/gin"
)

func ListRisks(c *gin.Context) {
	dbq := database.DB.Preload("Project").Order("created_at desc")
	if projectID := c.Query("projectId"); projectID != "" {
		dbq = dbq.Where("project_id = ?", projectID)
	}

	var risks []models.Risk
	if err := dbq.Find(&risks).Error; err != nil {
		log.Printf("failed to list risks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch risks"})
		return
	}

	c.JSON(http.StatusOK, risks)
}

type createRiskRequest struct {
	ProjectID   string              `json:"projectId"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    models.RiskCategory `json:"category"`
	Probability models.RiskLevel    `json:"probability"`
	Impact      models.RiskLevel    `json:"impact"`
	Mitigation  string              `json:"mitigation"`
	Owner       string              `json:"owner"`
}

func CreateRisk(c *gin.Context) {
	var req createRiskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.ProjectID == "" || req.Title == "" || req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if req.Category == "" {
		req.Category = models.RiskTechnical
	}
	if req.Probability == "" {
		req.Probability = models.RiskMedium
	}
	if req.Impact == "" {
		req.Impact = models.RiskMedium
	}

	risk := models.Risk{
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Probability: req.Probability,
		Impact:      req.Impact,
		Status:      models.RiskIdentified,
		Mitigation:  req.Mitigation,
		Owner:       req.Owner,
	}

	if err := database.DB.Create(&risk).Error; err != nil {
		log.Printf("failed to create risk: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create risk"})
		return
	}

	database.DB.Preload("Project").First(&risk, "id = ?", risk.ID)
	c.JSON(http.StatusCreated, risk)
}
