package agents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"pm-assistant/internal/database"
	"pm-assistant/internal/models"
)

// ErrOrchestratorNotFound means the seeded ORCHESTRATOR agent row is
// missing, which is a configuration problem rather than user input.
var ErrOrchestratorNotFound = errors.New("orchestrator agent not found")

type StepRecord struct {
	Agent     string         `json:"agent"`
	Status    string         `json:"status"`
	Result    map[string]any `json:"result,omitempty"`
	Error     string         `json:"error,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

type WorkflowSummary struct {
	TotalSteps     int       `json:"totalSteps"`
	CompletedSteps int       `json:"completedSteps"`
	FailedSteps    int       `json:"failedSteps"`
	ExecutionTime  time.Time `json:"executionTime"`
}

type WorkflowResult struct {
	Success     bool            `json:"success"`
	Workflow    string          `json:"workflow"`
	ProjectID   string          `json:"projectId"`
	ExecutionID string          `json:"executionId"`
	Steps       []StepRecord    `json:"steps"`
	Summary     WorkflowSummary `json:"summary"`
}

// FindAgentByType returns the seeded agent record for a type.
func FindAgentByType(agentType models.AgentType) (*models.Agent, error) {
	var agent models.Agent
	if err := database.DB.First(&agent, "type = ?", agentType).Error; err != nil {
		return nil, err
	}
	return &agent, nil
}

// StartExecution creates a RUNNING execution record before any work happens.
func StartExecution(agentID, projectID string, input json.RawMessage) (*models.AgentExecution, error) {
	now := time.Now()
	exec := models.AgentExecution{
		AgentID:   agentID,
		ProjectID: projectID,
		Status:    models.ExecutionRunning,
		Input:     []byte(normalizeRaw(input)),
		StartedAt: &now,
	}
	if err := database.DB.Create(&exec).Error; err != nil {
		return nil, fmt.Errorf("create execution: %w", err)
	}
	return &exec, nil
}

// CompleteExecution moves an execution to its COMPLETED terminal state.
func CompleteExecution(execID string, output any) error {
	raw, err := json.Marshal(output)
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	now := time.Now()
	return database.DB.Model(&models.AgentExecution{}).
		Where("id = ?", execID).
		Updates(map[string]any{
			"status":       models.ExecutionCompleted,
			"output":       raw,
			"completed_at": now,
		}).Error
}

// FailExecution moves an execution to its FAILED terminal state.
func FailExecution(execID, errMsg string) error {
	now := time.Now()
	return database.DB.Model(&models.AgentExecution{}).
		Where("id = ?", execID).
		Updates(map[string]any{
			"status":        models.ExecutionFailed,
			"error_message": errMsg,
			"completed_at":  now,
		}).Error
}

// RunStep executes a single pipeline step: it resolves the agent,
// records an execution, applies the step's seed-on-step side effects,
// runs the LLM analysis (with fallback) and merges both into one
// output payload.
func (r *Runner) RunStep(ctx context.Context, projectID string, agentType models.AgentType, input json.RawMessage) (map[string]any, error) {
	agent, err := FindAgentByType(agentType)
	if err != nil {
		return nil, fmt.Errorf("agent %s not found", agentType)
	}

	exec, err := StartExecution(agent.ID, projectID, input)
	if err != nil {
		return nil, err
	}

	extras, err := seedOnStep(projectID, agentType, input)
	if err != nil {
		if ferr := FailExecution(exec.ID, err.Error()); ferr != nil {
			log.Printf("failed to mark execution %s failed: %v", exec.ID, ferr)
		}
		return nil, err
	}

	analysis := r.Analyze(ctx, agentType, projectID, input)

	output := map[string]any{
		"agent":          analysis.Agent,
		"analysis":       analysis.Analysis,
		"timestamp":      analysis.Timestamp,
		"projectContext": analysis.ProjectContext,
	}
	if analysis.Fallback {
		output["fallback"] = true
	}
	for k, v := range extras {
		output[k] = v
	}

	if err := CompleteExecution(exec.ID, output); err != nil {
		log.Printf("failed to mark execution %s completed: %v", exec.ID, err)
	}

	return output, nil
}

// RunWorkflow resolves the named workflow and executes its steps
// strictly in order. A failed step is recorded and the pipeline moves
// on; the envelope's Success reflects only whether the orchestrator
// itself ran to completion, so a run with failed steps still reports
// Success=true. That quirk matches the observed behavior of the
// original pipeline and is kept on purpose.
func (r *Runner) RunWorkflow(ctx context.Context, projectID, workflow string, input json.RawMessage) (*WorkflowResult, error) {
	orchestrator, err := FindAgentByType(models.AgentOrchestrator)
	if err != nil {
		return nil, ErrOrchestratorNotFound
	}

	wrappedInput, _ := json.Marshal(map[string]any{
		"workflow": workflow,
		"input":    json.RawMessage(normalizeRaw(input)),
	})

	exec, err := StartExecution(orchestrator.ID, projectID, wrappedInput)
	if err != nil {
		return nil, err
	}

	result := &WorkflowResult{
		Success:     true,
		Workflow:    workflow,
		ProjectID:   projectID,
		ExecutionID: exec.ID,
		Steps:       []StepRecord{},
	}

	steps := WorkflowSteps(workflow)
	for _, agentType := range steps {
		log.Printf("executing step: %s", agentType)

		stepOutput, err := r.RunStep(ctx, projectID, agentType, input)
		if err != nil {
			log.Printf("step %s failed: %v", agentType, err)
			result.Steps = append(result.Steps, StepRecord{
				Agent:     string(agentType),
				Status:    "failed",
				Error:     err.Error(),
				Timestamp: time.Now(),
			})
			continue
		}

		result.Steps = append(result.Steps, StepRecord{
			Agent:     string(agentType),
			Status:    "completed",
			Result:    stepOutput,
			Timestamp: time.Now(),
		})
	}

	completed := 0
	failed := 0
	for _, s := range result.Steps {
		if s.Status == "completed" {
			completed++
		} else {
			failed++
		}
	}
	result.Summary = WorkflowSummary{
		TotalSteps:     len(steps),
		CompletedSteps: completed,
		FailedSteps:    failed,
		ExecutionTime:  time.Now(),
	}

	// the top-level execution completes even when individual steps failed
	if err := CompleteExecution(exec.ID, result); err != nil {
		log.Printf("failed to mark workflow execution %s completed: %v", exec.ID, err)
	}

	return result, nil
}

func normalizeRaw(input json.RawMessage) json.RawMessage {
	if len(input) == 0 {
		return json.RawMessage("null")
	}
	return input
}
