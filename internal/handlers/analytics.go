package handlers

import (
	"log"
	"net/http"

	"pm-assistant/internal/database"
	"pm-assistant/internal/models"

	"github.com/gin-gonic/gin"
)

// Analytics aggregates simple counts for the dashboard charts.
func Analytics(c *gin.Context) {
	var projects []models.Project
	var tasks []models.Task
	var risks []models.Risk
	var requirements []models.Requirement

	if err := database.DB.Find(&projects).Error; err != nil {
		log.Printf("failed to load projects for analytics: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}
	if err := database.DB.Find(&tasks).Error; err != nil {
		log.Printf("failed to load tasks for analytics: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}
	if err := database.DB.Find(&risks).Error; err != nil {
		log.Printf("failed to load risks for analytics: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}
	if err := database.DB.Find(&requirements).Error; err != nil {
		log.Printf("failed to load requirements for analytics: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}

	projectsByStatus := map[string]int{}
	projectsByType := map[string]int{}
	for _, p := range projects {
		projectsByStatus[string(p.Status)]++
		projectsByType[string(p.ProjectType)]++
	}

	tasksByStatus := map[string]int{}
	tasksByPriority := map[string]int{}
	for _, t := range tasks {
		tasksByStatus[string(t.Status)]++
		tasksByPriority[string(t.Priority)]++
	}

	risksByCategory := map[string]int{}
	risksByLevel := map[string]int{}
	for _, r := range risks {
		risksByCategory[string(r.Category)]++
		risksByLevel[string(r.Probability)]++
	}

	requirementsByCategory := map[string]int{}
	requirementsByStatus := map[string]int{}
	for _, r := range requirements {
		requirementsByCategory[string(r.Category)]++
		requirementsByStatus[string(r.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": gin.H{
			"total":    len(projects),
			"byStatus": projectsByStatus,
			"byType":   projectsByType,
		},
		"tasks": gin.H{
			"total":      len(tasks),
			"byStatus":   tasksByStatus,
			"byPriority": tasksByPriority,
		},
		"risks": gin.H{
			"total":      len(risks),
			"byCategory": risksByCategory,
			"byLevel":    risksByLevel,
		},
		"requirements": gin.H{
			"total":      len(requirements),
			"byCategory": requirementsByCategory,
			"byStatus":   requirementsByStatus,
		},
	})
}
