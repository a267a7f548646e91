package handlers

import (
	"log"
	"net/http"

	"pm-assistant/internal/database"
	"pm-assistant/internal/models"

	"github.com/gin-gonic/gin"
)

func ListTasks(c *gin.Context) {
	dbq := database.DB.Preload("Project").Order("created_at desc")
	if projectID := c.Query("projectId"); projectID != "" {
		dbq = dbq.Where("project_id = ?", projectID)
	}

	var tasks []models.Task
	if err := dbq.Find(&tasks).Error; err != nil {
		log.Printf("failed to list tasks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

type createTaskRequest struct {
	ProjectID      string            `json:"projectId"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Status         models.TaskStatus `json:"status"`
	Priority       models.Priority   `json:"priority"`
	EstimatedHours int               `json:"estimatedHours"`
	Assignee       string            `json:"assignee"`
	Tags           string            `json:"tags"`
}

func CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.ProjectID == "" || req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if req.Status == "" {
		req.Status = models.TaskTodo
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}

	task := models.Task{
		ProjectID:      req.ProjectID,
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		Priority:       req.Priority,
		EstimatedHours: req.EstimatedHours,
		Assignee:       req.Assignee,
		Tags:           req.Tags,
	}

	if err := database.DB.Create(&task).Error; err != nil {
		log.Printf("failed to create task: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	database.DB.Preload("Project").First(&task, "id = ?", task.ID)
	c.JSON(http.StatusCreated, task)
}
