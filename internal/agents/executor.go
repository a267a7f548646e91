package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"pm-assistant/internal/database"
	"pm-assistant/internal/llm"
	"pm-assistant/internal/models"
)

const (
	analysisMaxTokens   = 2000
	analysisTemperature = 0.7
)

// Runner executes agent analyses and workflows against the shared DB.
type Runner struct {
	LLM *llm.Client
}

func NewRunner(client *llm.Client) *Runner {
	return &Runner{LLM: client}
}

type ProjectContext struct {
	// Description feeds the prompt only, it is not part of the result payload.
	Description string `json:"-"`

	Title             string `json:"title"`
	Status            string `json:"status"`
	RequirementsCount int    `json:"requirementsCount"`
	TasksCount        int    `json:"tasksCount"`
	RisksCount        int    `json:"risksCount"`
}

type AnalysisResult struct {
	Agent          string         `json:"agent"`
	Analysis       string         `json:"analysis"`
	Timestamp      time.Time      `json:"timestamp"`
	Fallback       bool           `json:"fallback,omitempty"`
	ProjectContext ProjectContext `json:"projectContext"`
}

// Analyze runs one agent analysis for a project. It never fails on an
// LLM error: any upstream problem (including a missing API key) is
// logged and replaced with a deterministic fallback text, so the
// caller always gets a usable result.
func (r *Runner) Analyze(ctx context.Context, agentType models.AgentType, projectID string, input json.RawMessage) AnalysisResult {
	pctx := loadProjectContext(projectID)

	messages := buildMessages(agentType, pctx, input)

	text, err := r.LLM.Chat(ctx, messages, analysisMaxTokens, analysisTemperature)
	if err != nil {
		log.Printf("LLM call failed for agent %s: %v", agentType, err)
		return AnalysisResult{
			Agent:          string(agentType),
			Analysis:       fallbackAnalysis(agentType, pctx),
			Timestamp:      time.Now(),
			Fallback:       true,
			ProjectContext: pctx,
		}
	}

	return AnalysisResult{
		Agent:          string(agentType),
		Analysis:       text,
		Timestamp:      time.Now(),
		ProjectContext: pctx,
	}
}

// A missing project is tolerated: every field stays empty/zero.
func loadProjectContext(projectID string) ProjectContext {
	var pctx ProjectContext

	var project models.Project
	if err := database.DB.First(&project, "id = ?", projectID).Error; err != nil {
		return pctx
	}

	pctx.Title = project.Title
	pctx.Description = project.Description
	pctx.Status = string(project.Status)

	var count int64
	if err := database.DB.Model(&models.Requirement{}).Where("project_id = ?", projectID).Count(&count).Error; err == nil {
		pctx.RequirementsCount = int(count)
	}
	if err := database.DB.Model(&models.Task{}).Where("project_id = ?", projectID).Count(&count).Error; err == nil {
		pctx.TasksCount = int(count)
	}
	if err := database.DB.Model(&models.Risk{}).Where("project_id = ?", projectID).Count(&count).Error; err == nil {
		pctx.RisksCount = int(count)
	}

	return pctx
}

func buildMessages(agentType models.AgentType, pctx ProjectContext, input json.RawMessage) []llm.Message {
	title := pctx.Title
	if title == "" {
		title = "Untitled"
	}
	status := pctx.Status
	if status == "" {
		status = "Unknown"
	}
	description := pctx.Description
	if description == "" {
		description = "No description"
	}
	baseContext := fmt.Sprintf("Project: %s\nDescription: %s\nStatus: %s", title, description, status)

	var content string
	switch agentType {
	case models.AgentInputParser:
		rawInput := "null"
		if len(input) > 0 {
			rawInput = string(input)
		}
		content = fmt.Sprintf("As an Input Parser Agent, analyze and extract structured information from the following project input:\n\n%s\n\nInput to parse: %s\n\nProvide a structured analysis of the input, identifying key project elements, requirements, tasks, and any actionable items.", baseContext, rawInput)
	case models.AgentPlanning:
		content = fmt.Sprintf("As a Planning Agent, create a comprehensive project plan for:\n\n%s\n\nCreate a detailed timeline, identify key milestones, estimate effort, and suggest resource allocation. Consider dependencies and critical path.", baseContext)
	case models.AgentRiskAssessment:
		content = fmt.Sprintf("As a Risk Assessment Agent, analyze potential risks for:\n\n%s\n\nIdentify technical, business, operational, and timeline risks. Assess probability and impact. Provide specific mitigation strategies for each risk.", baseContext)
	case models.AgentDocumentation:
		content = fmt.Sprintf("As a Documentation Agent, generate comprehensive project documentation for:\n\n%s\n\nCreate detailed requirements, technical specifications, and user stories. Format as professional project documentation.", baseContext)
	default:
		content = fmt.Sprintf("Analyze the following project and provide insights:\n\n%s", baseContext)
	}

	return []llm.Message{{Role: "user", Content: content}}
}

func fallbackAnalysis(agentType models.AgentType, pctx ProjectContext) string {
	switch agentType {
	case models.AgentInputParser:
		return fmt.Sprintf("Input Parser Analysis: Successfully processed project %q. Identified %d requirements and %d tasks.",
			pctx.Title, pctx.RequirementsCount, pctx.TasksCount)
	case models.AgentPlanning:
		return fmt.Sprintf("Planning Analysis: Created project plan for %q. Estimated 12-16 weeks duration with 4 major phases: Planning, Design, Implementation, Testing.",
			pctx.Title)
	case models.AgentRiskAssessment:
		return fmt.Sprintf("Risk Assessment: Identified %d risks for %q. Primary risks include technical complexity, resource availability, and timeline constraints.",
			pctx.RisksCount, pctx.Title)
	case models.AgentDocumentation:
		return fmt.Sprintf("Documentation Analysis: Generated comprehensive documentation for %q. Includes requirements specification, technical architecture, and implementation guidelines.",
			pctx.Title)
	default:
		return fmt.Sprintf("Analysis complete for project %q. Status: %s", pctx.Title, pctx.Status)
	}
}
