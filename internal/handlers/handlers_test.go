package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"pm-assistant/internal/config"
	"pm-assistant/internal/database"
	"pm-assistant/internal/middleware"
	"pm-assistant/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	router  *gin.Engine
	cookies []*http.Cookie
}

// setupEnv wires an in-memory stack: sqlite DB, seeded agents, a stub
// LLM endpoint and a logged-in session.
func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	database.DB = db
	require.NoError(t, database.Migrate())
	database.SeedAgents()

	llmStub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"stub analysis"}}]}`))
	}))
	t.Cleanup(llmStub.Close)

	cfg := &config.Config{
		DBDSN:         "test",
		ServerPort:    "0",
		SessionSecret: "test-secret",
		LLMAPIKey:     "test-key",
		LLMAPIURL:     llmStub.URL,
		LLMModel:      "gpt-4.1-mini",
		UploadDir:     t.TempDir(),
	}

	env := &testEnv{router: newTestRouter(cfg)}
	env.login(t)
	return env
}

// newTestRouter mirrors server.NewRouter; it lives here to avoid an
// import cycle between the server and handlers test packages.
func newTestRouter(cfg *config.Config) *gin.Engine {
	Init(cfg)

	r := gin.New()
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("pm_session", store))

	r.POST("/api/auth/login", Login)
	r.POST("/api/auth/logout", Logout)

	api := r.Group("/api")
	api.Use(middleware.RequireAuth())
	api.GET("/projects", ListProjects)
	api.POST("/projects", CreateProject)
	api.GET("/projects/:id", GetProject)
	api.PUT("/projects/:id", UpdateProject)
	api.DELETE("/projects/:id", DeleteProject)
	api.GET("/requirements", ListRequirements)
	api.POST("/requirements", CreateRequirement)
	api.GET("/tasks", ListTasks)
	api.POST("/tasks", CreateTask)
	api.GET("/risks", ListRisks)
	api.POST("/risks", CreateRisk)
	api.GET("/documents", ListDocuments)
	api.POST("/documents", CreateDocument)
	api.GET("/agents", ListAgents)
	api.POST("/agents/analyze", Analyze)
	api.POST("/orchestrator", RunOrchestrator)
	api.GET("/analytics", Analytics)
	api.GET("/settings", GetSettings)
	api.POST("/settings", SaveSettings)
	api.POST("/test-llm", TestLLM)
	api.GET("/test-llm", TestLLMHint)
	api.POST("/upload", Upload)
	api.GET("/upload", ListUploads)

	return r
}

func (e *testEnv) login(t *testing.T) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{Email: "tester@example.com", Name: "Tester", PasswordHash: string(hash)}
	require.NoError(t, database.DB.Create(&user).Error)

	rec := e.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "tester@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	e.cookies = rec.Result().Cookies()
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range e.cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}
