package agents

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"pm-assistant/internal/database"
	"pm-assistant/internal/llm"
	"pm-assistant/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeSuccess(t *testing.T) {
	setupDB(t)
	client, calls := newLLMServer(t, http.StatusOK, "mock planning analysis")
	runner := NewRunner(client)

	project := createProject(t, "Rewrite Billing")

	result := runner.Analyze(context.Background(), models.AgentPlanning, project.ID, nil)

	assert.Equal(t, "PLANNING_AGENT", result.Agent)
	assert.Equal(t, "mock planning analysis", result.Analysis)
	assert.False(t, result.Fallback)
	assert.Equal(t, "Rewrite Billing", result.ProjectContext.Title)
	assert.Equal(t, "PLANNING", result.ProjectContext.Status)
	assert.Zero(t, result.ProjectContext.TasksCount)
	assert.Equal(t, 1, *calls)
}

func TestAnalyzeFallbackOnAPIError(t *testing.T) {
	setupDB(t)
	client, _ := newLLMServer(t, http.StatusInternalServerError, "")
	runner := NewRunner(client)

	project := createProject(t, "Payments Gateway")

	result := runner.Analyze(context.Background(), models.AgentPlanning, project.ID, nil)

	assert.True(t, result.Fallback)
	assert.Contains(t, result.Analysis, "Payments Gateway")
	assert.Contains(t, result.Analysis, "Planning Analysis")
}

func TestAnalyzeFallbackOnMissingKey(t *testing.T) {
	setupDB(t)
	client := llm.NewClient("", "http://localhost:0", "gpt-4.1-mini")
	runner := NewRunner(client)

	project := createProject(t, "Mobile App")

	result := runner.Analyze(context.Background(), models.AgentRiskAssessment, project.ID, nil)

	assert.True(t, result.Fallback)
	assert.Contains(t, result.Analysis, "Risk Assessment")
	assert.Contains(t, result.Analysis, "Mobile App")
}

func TestAnalyzeToleratesMissingProject(t *testing.T) {
	setupDB(t)
	client, _ := newLLMServer(t, http.StatusOK, "ok")
	runner := NewRunner(client)

	result := runner.Analyze(context.Background(), models.AgentInputParser, "no-such-id", nil)

	assert.Equal(t, "ok", result.Analysis)
	assert.Empty(t, result.ProjectContext.Title)
	assert.Empty(t, result.ProjectContext.Status)
}

func TestAnalyzeCountsInContext(t *testing.T) {
	setupDB(t)
	client, _ := newLLMServer(t, http.StatusOK, "ok")
	runner := NewRunner(client)

	project := createProject(t, "Counting")
	for i := 0; i < 3; i++ {
		task := models.Task{
			ProjectID: project.ID,
			Title:     "t",
			Status:    models.TaskTodo,
			Priority:  models.PriorityLow,
		}
		require.NoError(t, database.DB.Create(&task).Error)
	}

	result := runner.Analyze(context.Background(), models.AgentInputParser, project.ID, json.RawMessage(`{"title":"x"}`))

	assert.Equal(t, 3, result.ProjectContext.TasksCount)
	assert.Zero(t, result.ProjectContext.RisksCount)
}
