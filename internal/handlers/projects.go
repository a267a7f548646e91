package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"pm-assistant/internal/database"
	"pm-assistant/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type projectCounts struct {
	Requirements    int `json:"requirements"`
	Tasks           int `json:"tasks"`
	Risks           int `json:"risks"`
	Documents       int `json:"documents"`
	AgentExecutions int `json:"agentExecutions,omitempty"`
}

type projectResponse struct {
	models.Project
	Counts projectCounts `json:"_count"`
}

func withCounts(p models.Project) projectResponse {
	return projectResponse{
		Project: p,
		Counts: projectCounts{
			Requirements:    len(p.Requirements),
			Tasks:           len(p.Tasks),
			Risks:           len(p.Risks),
			Documents:       len(p.Documents),
			AgentExecutions: len(p.AgentExecutions),
		},
	}
}

func ListProjects(c *gin.Context) {
	var projects []models.Project
	err := database.DB.
		Preload("Requirements").
		Preload("Tasks").
		Preload("Risks").
		Preload("Documents").
		Order("updated_at desc").
		Find(&projects).Error
	if err != nil {
		log.Printf("failed to list projects: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	out := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, withCounts(p))
	}
	c.JSON(http.StatusOK, out)
}

type createProjectRequest struct {
	Title             string             `json:"title"`
	Description       string             `json:"description"`
	Industry          string             `json:"industry"`
	ProjectType       models.ProjectType `json:"projectType"`
	Priority          models.Priority    `json:"priority"`
	EstimatedDuration int                `json:"estimatedDuration"`
	StartDate         *time.Time         `json:"startDate"`
	EndDate           *time.Time         `json:"endDate"`
}

func CreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project title is required"})
		return
	}
	if req.ProjectType == "" {
		req.ProjectType = models.ProjectSoftware
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}

	project := models.Project{
		Title:             req.Title,
		Description:       req.Description,
		Industry:          req.Industry,
		ProjectType:       req.ProjectType,
		Priority:          req.Priority,
		Status:            models.StatusPlanning,
		EstimatedDuration: req.EstimatedDuration,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
	}

	if err := database.DB.Create(&project).Error; err != nil {
		log.Printf("failed to create project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, project)
}

func GetProject(c *gin.Context) {
	id := c.Param("id")

	var project models.Project
	err := database.DB.
		Preload("Requirements", orderCreatedDesc).
		Preload("Tasks", orderCreatedDesc).
		Preload("Risks", orderCreatedDesc).
		Preload("Documents", orderCreatedDesc).
		Preload("AgentExecutions", orderCreatedDesc).
		Preload("AgentExecutions.Agent").
		Preload("Uploads", func(db *gorm.DB) *gorm.DB { return db.Order("uploaded_at desc") }).
		First(&project, "id = ?", id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, withCounts(project))
}

func orderCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at desc")
}

type updateProjectRequest struct {
	Title             *string               `json:"title"`
	Description       *string               `json:"description"`
	Status            *models.ProjectStatus `json:"status"`
	Priority          *models.Priority      `json:"priority"`
	Industry          *string               `json:"industry"`
	EstimatedDuration *int                  `json:"estimatedDuration"`
	StartDate         *time.Time            `json:"startDate"`
	EndDate           *time.Time            `json:"endDate"`
}

func UpdateProject(c *gin.Context) {
	id := c.Param("id")

	var project models.Project
	if err := database.DB.First(&project, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Priority != nil {
		project.Priority = *req.Priority
	}
	if req.Industry != nil {
		project.Industry = *req.Industry
	}
	if req.EstimatedDuration != nil {
		project.EstimatedDuration = *req.EstimatedDuration
	}
	if req.StartDate != nil {
		project.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}

	if err := database.DB.Save(&project).Error; err != nil {
		log.Printf("failed to update project %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	var updated models.Project
	err := database.DB.
		Preload("Requirements").
		Preload("Tasks").
		Preload("Risks").
		Preload("Documents").
		First(&updated, "id = ?", id).Error
	if err != nil {
		log.Printf("failed to reload project %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, withCounts(updated))
}

// DeleteProject removes a project; owned rows go with it via the FK
// cascade. Deletion is always an explicit user action.
func DeleteProject(c *gin.Context) {
	id := c.Param("id")

	var project models.Project
	if err := database.DB.First(&project, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	if err := database.DB.Delete(&project).Error; err != nil {
		log.Printf("failed to delete project %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
