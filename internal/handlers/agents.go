package handlers

import (
	"log"
	"net/http"

	"pm-assistant/internal/database"
	"pm-assistant/internal/models"

	"github.com/gin-gonic/gin"
)

// ListAgents returns the agent catalog with each agent's five most
// recent executions. The recent-executions limit is per agent, so the
// lookup runs one small query per agent instead of a single preload.
func ListAgents(c *gin.Context) {
	var agentList []models.Agent
	if err := database.DB.Order("name asc").Find(&agentList).Error; err != nil {
		log.Printf("failed to list agents: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch agents"})
		return
	}

	for i := range agentList {
		var executions []models.AgentExecution
		err := database.DB.
			Where("agent_id = ?", agentList[i].ID).
			Order("created_at desc").
			Limit(5).
			Find(&executions).Error
		if err != nil {
			log.Printf("failed to load executions for agent %s: %v", agentList[i].ID, err)
			continue
		}
		agentList[i].Executions = executions
	}

	c.JSON(http.StatusOK, agentList)
}
