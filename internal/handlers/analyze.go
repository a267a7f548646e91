package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"time"

	"pm-assistant/internal/agents"
	"pm-assistant/internal/models"

	"github.com/gin-gonic/gin"
)

type analyzeRequest struct {
	ProjectID      string           `json:"projectId"`
	AgentType      models.AgentType `json:"agentType"`
	Input          json.RawMessage  `json:"input"`
	StreamResponse *bool            `json:"streamResponse"`
}

// synthetic pacing between scripted steps, 1.0-3.0s; stubbed in tests
var streamPause = func() {
	time.Sleep(time.Duration(1000+rand.Intn(2000)) * time.Millisecond)
}

// Analyze runs a single agent against a project. By default the
// response is a streamed progress feed of "data: <json>" lines; with
// streamResponse=false it is one JSON envelope.
func Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.ProjectID == "" || req.AgentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project ID and agent type are required"})
		return
	}

	agent, err := agents.FindAgentByType(req.AgentType)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Agent not found"})
		return
	}

	if req.StreamResponse == nil || *req.StreamResponse {
		streamingAnalyze(c, agent, req)
	} else {
		directAnalyze(c, agent, req)
	}
}

func directAnalyze(c *gin.Context, agent *models.Agent, req analyzeRequest) {
	exec, err := agents.StartExecution(agent.ID, req.ProjectID, req.Input)
	if err != nil {
		log.Printf("agent analyze error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	result := runner.Analyze(c.Request.Context(), agent.Type, req.ProjectID, req.Input)

	if err := agents.CompleteExecution(exec.ID, result); err != nil {
		log.Printf("failed to complete execution %s: %v", exec.ID, err)
		if ferr := agents.FailExecution(exec.ID, err.Error()); ferr != nil {
			log.Printf("failed to fail execution %s: %v", exec.ID, ferr)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"executionId": exec.ID,
		"result":      result,
	})
}

// streamingAnalyze emits a scripted progress feed: a started event,
// three canned processing/step_completed pairs with synthetic pacing,
// then the one real LLM-backed analysis as the completed event and a
// [DONE] sentinel. The scripted steps are presentation only; the
// analysis at the end is the real unit of work.
//
// On an error mid-stream an error event is emitted and the stream is
// closed without a sentinel; the execution record is left RUNNING,
// unlike the direct path. Kept as observed in the original dashboard.
func streamingAnalyze(c *gin.Context, agent *models.Agent, req analyzeRequest) {
	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	emit := func(v any) {
		b, err := json.Marshal(v)
		if err != nil {
			log.Printf("failed to marshal stream event: %v", err)
			return
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", b)
		c.Writer.Flush()
	}

	exec, err := agents.StartExecution(agent.ID, req.ProjectID, req.Input)
	if err != nil {
		log.Printf("agent analyze stream error: %v", err)
		emit(gin.H{"status": "error", "error": "Analysis failed"})
		return
	}

	emit(gin.H{
		"status":      "started",
		"agent":       agent.Type,
		"executionId": exec.ID,
	})

	steps := agents.StreamSteps(agent.Type)
	for i, step := range steps {
		emit(gin.H{
			"status":   "processing",
			"step":     step.Name,
			"progress": int(math.Round(float64(i) / float64(len(steps)) * 100)),
			"message":  step.Description,
		})

		streamPause()

		emit(gin.H{
			"status": "step_completed",
			"step":   step.Name,
			"result": step.Result,
		})
	}

	result := runner.Analyze(c.Request.Context(), agent.Type, req.ProjectID, req.Input)

	if err := agents.CompleteExecution(exec.ID, result); err != nil {
		log.Printf("failed to complete execution %s: %v", exec.ID, err)
		emit(gin.H{"status": "error", "error": err.Error()})
		return
	}

	emit(gin.H{
		"status": "completed",
		"result": result,
	})

	fmt.Fprint(c.Writer, "data: [DONE]\n\n")
	c.Writer.Flush()
}
