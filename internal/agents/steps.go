package agents

import "pm-assistant/internal/models"

// WorkflowSteps resolves a workflow name to its fixed, ordered list of
// agent steps. Unknown names fall back to the short default pipeline.
func WorkflowSteps(workflow string) []models.AgentType {
	switch workflow {
	case "full_analysis":
		return []models.AgentType{
			models.AgentInputParser,
			models.AgentPlanning,
			models.AgentRiskAssessment,
			models.AgentDocumentation,
		}
	case "quick_parse":
		return []models.AgentType{
			models.AgentInputParser,
		}
	case "risk_only":
		return []models.AgentType{
			models.AgentInputParser,
			models.AgentRiskAssessment,
		}
	default:
		return []models.AgentType{
			models.AgentInputParser,
			models.AgentPlanning,
		}
	}
}

// StreamStep is one scripted entry of the streaming progress feed. The
// description and result are canned, not derived from real work.
type StreamStep struct {
	Name        string
	Description string
	Result      string
}

func StreamSteps(agentType models.AgentType) []StreamStep {
	switch agentType {
	case models.AgentInputParser:
		return []StreamStep{
			{Name: "text_extraction", Description: "Extracting text content...", Result: "Text extracted successfully"},
			{Name: "data_parsing", Description: "Parsing structured data...", Result: "Data parsed and validated"},
			{Name: "format_conversion", Description: "Converting to standard format...", Result: "Format conversion complete"},
		}
	case models.AgentPlanning:
		return []StreamStep{
			{Name: "scope_analysis", Description: "Analyzing project scope...", Result: "Scope defined"},
			{Name: "timeline_generation", Description: "Creating project timeline...", Result: "Timeline created"},
			{Name: "resource_planning", Description: "Planning resource allocation...", Result: "Resources planned"},
		}
	case models.AgentRiskAssessment:
		return []StreamStep{
			{Name: "risk_identification", Description: "Identifying potential risks...", Result: "Risks identified"},
			{Name: "impact_analysis", Description: "Analyzing risk impact...", Result: "Impact assessed"},
			{Name: "mitigation_planning", Description: "Planning mitigation strategies...", Result: "Mitigation strategies defined"},
		}
	case models.AgentDocumentation:
		return []StreamStep{
			{Name: "requirement_extraction", Description: "Extracting requirements...", Result: "Requirements extracted"},
			{Name: "document_generation", Description: "Generating documentation...", Result: "Documents created"},
			{Name: "template_application", Description: "Applying templates...", Result: "Templates applied"},
		}
	default:
		return []StreamStep{
			{Name: "analysis", Description: "Running analysis...", Result: "Analysis complete"},
		}
	}
}
