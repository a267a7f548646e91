package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"pm-assistant/internal/agents"

	"github.com/gin-gonic/gin"
)

type orchestratorRequest struct {
	ProjectID string          `json:"projectId"`
	Workflow  string          `json:"workflow"`
	Input     json.RawMessage `json:"input"`
}

// RunOrchestrator kicks off a named multi-agent workflow for a
// project and returns the aggregated result.
func RunOrchestrator(c *gin.Context) {
	var req orchestratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// validated before any execution record exists
	if req.ProjectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project ID is required"})
		return
	}
	if req.Workflow == "" {
		req.Workflow = "full_analysis"
	}

	result, err := runner.RunWorkflow(c.Request.Context(), req.ProjectID, req.Workflow, req.Input)
	if err != nil {
		if errors.Is(err, agents.ErrOrchestratorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Orchestrator agent not found"})
			return
		}
		log.Printf("orchestrator error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"executionId": result.ExecutionID,
		"workflow":    result,
	})
}
