package database

import (
	"log"
	"os"

	"pm-assistant/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// Seed creates the reference data the app expects: the five agents,
// a demo user and (on an empty database) a few sample projects.
func Seed() {
	SeedAgents()
	seedDemoUser()
	seedSampleProjects()
}

func SeedAgents() {
	agents := []models.Agent{
		{
			Name:        "Input Parser Agent",
			Type:        models.AgentInputParser,
			Description: "Processes and analyzes various input formats including text descriptions, Excel files, and JIRA exports",
			Config: datatypes.JSON(`{
				"supportedFormats": ["text", "xlsx", "csv", "json"],
				"maxFileSize": 52428800,
				"capabilities": ["text_extraction", "data_parsing", "format_conversion"]
			}`),
		},
		{
			Name:        "Planning Agent",
			Type:        models.AgentPlanning,
			Description: "Creates comprehensive project plans, timelines, and milestone definitions",
			Config: datatypes.JSON(`{
				"planningMethods": ["agile", "waterfall", "hybrid"],
				"timelineGeneration": true,
				"milestoneTracking": true,
				"resourceAllocation": true
			}`),
		},
		{
			Name:        "Risk Assessment Agent",
			Type:        models.AgentRiskAssessment,
			Description: "Identifies, categorizes, and provides mitigation strategies for project risks",
			Config: datatypes.JSON(`{
				"riskCategories": ["technical", "business", "operational", "financial", "timeline", "resource"],
				"assessmentFramework": "probability_impact_matrix",
				"mitigationStrategies": true
			}`),
		},
		{
			Name:        "Documentation Agent",
			Type:        models.AgentDocumentation,
			Description: "Generates structured requirements, technical specifications, and project documentation",
			Config: datatypes.JSON(`{
				"documentTypes": ["requirements", "technical_spec", "user_stories", "api_docs"],
				"formats": ["markdown", "html", "pdf"],
				"templates": ["agile", "traditional", "api_first"]
			}`),
		},
		{
			Name:        "Orchestrator Agent",
			Type:        models.AgentOrchestrator,
			Description: "Coordinates workflows between agents, manages execution state, and ensures proper sequencing",
			Config: datatypes.JSON(`{
				"workflowEngine": true,
				"stateManagement": true,
				"errorRecovery": true,
				"parallelExecution": true
			}`),
		},
	}

	for _, agent := range agents {
		var count int64
		if err := DB.Model(&models.Agent{}).
			Where("name = ?", agent.Name).
			Count(&count).Error; err != nil {
			log.Printf("failed to check agent %s: %v", agent.Name, err)
			continue
		}
		if count > 0 {
			continue
		}

		agent.IsActive = true
		if err := DB.Create(&agent).Error; err != nil {
			log.Printf("failed to create agent %s: %v", agent.Name, err)
			continue
		}
		log.Printf("created agent: %s", agent.Name)
	}
}

func seedDemoUser() {
	email := os.Getenv("DEMO_USER_EMAIL")
	if email == "" {
		email = "john@doe.com"
	}
	password := os.Getenv("DEMO_USER_PASSWORD")
	if password == "" {
		password = "johndoe123"
	}

	var count int64
	if err := DB.Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		log.Printf("failed to check demo user: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash demo user password: %v", err)
		return
	}

	user := models.User{
		Email:        email,
		Name:         "John Doe",
		PasswordHash: string(hash),
	}

	if err := DB.Create(&user).Error; err != nil {
		log.Printf("failed to create demo user: %v", err)
		return
	}

	log.Printf("created demo user: %s", email)
}

// sample projects only on a completely empty projects table
func seedSampleProjects() {
	var count int64
	if err := DB.Model(&models.Project{}).Count(&count).Error; err != nil {
		log.Printf("failed to check projects: %v", err)
		return
	}
	if count > 0 {
		return
	}

	projects := []models.Project{
		{
			Title:             "E-Commerce Platform Development",
			Description:       "Build a modern e-commerce platform with React, Node.js, and PostgreSQL",
			Industry:          "Software Development",
			ProjectType:       models.ProjectSoftware,
			Priority:          models.PriorityHigh,
			Status:            models.StatusPlanning,
			EstimatedDuration: 120,
		},
		{
			Title:             "Marketing Campaign Launch",
			Description:       "Launch a multi-channel marketing campaign for new product introduction",
			Industry:          "Marketing",
			ProjectType:       models.ProjectMarketing,
			Priority:          models.PriorityMedium,
			Status:            models.StatusPlanning,
			EstimatedDuration: 45,
		},
		{
			Title:             "Cloud Infrastructure Migration",
			Description:       "Migrate legacy systems to AWS cloud infrastructure with zero downtime",
			Industry:          "IT Infrastructure",
			ProjectType:       models.ProjectInfrastructure,
			Priority:          models.PriorityCritical,
			Status:            models.StatusPlanning,
			EstimatedDuration: 90,
		},
	}

	for _, p := range projects {
		if err := DB.Create(&p).Error; err != nil {
			log.Printf("failed to create sample project %s: %v", p.Title, err)
			continue
		}
		log.Printf("created sample project: %s", p.Title)
	}
}
