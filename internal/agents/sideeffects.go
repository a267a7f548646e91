package agents

import (
	"encoding/json"
	"fmt"

	"pm-assistant/internal/database"
	"pm-assistant/internal/models"
)

// seedOnStep performs the fixed persistence side effects a pipeline
// step carries and returns the step's extra output fields. The rows
// are deterministic demo data, deliberately independent of the LLM
// outcome, so the dashboard has something to show even when the AI
// dependency is down.
func seedOnStep(projectID string, agentType models.AgentType, input json.RawMessage) (map[string]any, error) {
	switch agentType {
	case models.AgentInputParser:
		return parseInput(input), nil
	case models.AgentPlanning:
		return seedPlanningTasks(projectID)
	case models.AgentRiskAssessment:
		return seedRisks(projectID)
	case models.AgentDocumentation:
		return seedRequirementsAndDocument(projectID)
	default:
		return map[string]any{
			"message": fmt.Sprintf("Agent %s executed successfully", agentType),
		}, nil
	}
}

func parseInput(input json.RawMessage) map[string]any {
	parsed := struct {
		Title        string `json:"title"`
		Requirements []any  `json:"requirements"`
		Tasks        []any  `json:"tasks"`
	}{}
	_ = json.Unmarshal(input, &parsed)

	if parsed.Title == "" {
		parsed.Title = "Extracted Project"
	}
	if parsed.Requirements == nil {
		parsed.Requirements = []any{}
	}
	if parsed.Tasks == nil {
		parsed.Tasks = []any{}
	}

	return map[string]any{
		"processed": true,
		"extractedData": map[string]any{
			"projectTitle": parsed.Title,
			"requirements": parsed.Requirements,
			"tasks":        parsed.Tasks,
		},
	}
}

func seedPlanningTasks(projectID string) (map[string]any, error) {
	sampleTasks := []models.Task{
		{Title: "Project Initialization", EstimatedHours: 8, Priority: models.PriorityHigh},
		{Title: "Requirements Analysis", EstimatedHours: 16, Priority: models.PriorityHigh},
		{Title: "System Design", EstimatedHours: 24, Priority: models.PriorityMedium},
		{Title: "Implementation Phase 1", EstimatedHours: 40, Priority: models.PriorityMedium},
		{Title: "Testing & QA", EstimatedHours: 16, Priority: models.PriorityHigh},
	}

	for _, task := range sampleTasks {
		task.ProjectID = projectID
		task.Description = "Auto-generated task: " + task.Title
		task.Status = models.TaskTodo
		if err := database.DB.Create(&task).Error; err != nil {
			return nil, fmt.Errorf("create task %q: %w", task.Title, err)
		}
	}

	return map[string]any{
		"tasksCreated": len(sampleTasks),
		"timeline":     "3-4 months",
		"phases":       []string{"Planning", "Design", "Development", "Testing", "Deployment"},
	}, nil
}

func seedRisks(projectID string) (map[string]any, error) {
	sampleRisks := []models.Risk{
		{
			Title:       "Technical Complexity Risk",
			Description: "High technical complexity may lead to delays",
			Category:    models.RiskTechnical,
			Probability: models.RiskMedium,
			Impact:      models.RiskHigh,
		},
		{
			Title:       "Resource Availability",
			Description: "Key team members may not be available",
			Category:    models.RiskResource,
			Probability: models.RiskLow,
			Impact:      models.RiskMedium,
		},
	}

	for _, risk := range sampleRisks {
		risk.ProjectID = projectID
		risk.Status = models.RiskIdentified
		if err := database.DB.Create(&risk).Error; err != nil {
			return nil, fmt.Errorf("create risk %q: %w", risk.Title, err)
		}
	}

	return map[string]any{
		"risksIdentified": len(sampleRisks),
		"riskScore":       "Medium",
		"recommendations": []string{"Conduct technical proof of concept", "Establish resource backup plan"},
	}, nil
}

func seedRequirementsAndDocument(projectID string) (map[string]any, error) {
	sampleRequirements := []models.Requirement{
		{
			Title:       "User Authentication",
			Description: "System must provide secure user authentication",
			Category:    models.ReqFunctional,
			Priority:    models.PriorityHigh,
		},
		{
			Title:       "Data Security",
			Description: "All data must be encrypted in transit and at rest",
			Category:    models.ReqNonFunctional,
			Priority:    models.PriorityCritical,
		},
	}

	for _, req := range sampleRequirements {
		req.ProjectID = projectID
		req.Status = models.ReqDraft
		if err := database.DB.Create(&req).Error; err != nil {
			return nil, fmt.Errorf("create requirement %q: %w", req.Title, err)
		}
	}

	doc := models.Document{
		ProjectID: projectID,
		Title:     "Project Requirements Document",
		Content:   "# Project Requirements\n\nThis document outlines the key requirements for the project...",
		DocType:   models.DocRequirements,
	}
	if err := database.DB.Create(&doc).Error; err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	return map[string]any{
		"requirementsCreated": len(sampleRequirements),
		"documentsGenerated":  1,
		"documentTypes":       []string{"requirements"},
	}, nil
}
