package server

import (
	"net/http"

	"pm-assistant/internal/config"
	"pm-assistant/internal/handlers"
	"pm-assistant/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	handlers.Init(cfg)

	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("pm_session", store))

	// AUTH
	r.POST("/api/auth/login", handlers.Login)
	r.POST("/api/auth/logout", handlers.Logout)

	api := r.Group("/api")
	api.Use(middleware.RequireAuth())

	// PROJECTS
	api.GET("/projects", handlers.ListProjects)
	api.POST("/projects", handlers.CreateProject)
	api.GET("/projects/:id", handlers.GetProject)
	api.PUT("/projects/:id", handlers.UpdateProject)
	api.DELETE("/projects/:id", handlers.DeleteProject)

	// PROJECT ARTIFACTS
	api.GET("/requirements", handlers.ListRequirements)
	api.POST("/requirements", handlers.CreateRequirement)
	api.GET("/tasks", handlers.ListTasks)
	api.POST("/tasks", handlers.CreateTask)
	api.GET("/risks", handlers.ListRisks)
	api.POST("/risks", handlers.CreateRisk)
	api.GET("/documents", handlers.ListDocuments)
	api.POST("/documents", handlers.CreateDocument)

	// AGENTS
	api.GET("/agents", handlers.ListAgents)
	api.POST("/agents/analyze", handlers.Analyze)
	api.POST("/orchestrator", handlers.RunOrchestrator)

	// DASHBOARD
	api.GET("/analytics", handlers.Analytics)
	api.GET("/settings", handlers.GetSettings)
	api.POST("/settings", handlers.SaveSettings)
	api.POST("/test-llm", handlers.TestLLM)
	api.GET("/test-llm", handlers.TestLLMHint)

	// UPLOADS
	api.POST("/upload", handlers.Upload)
	api.GET("/upload", handlers.ListUploads)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
