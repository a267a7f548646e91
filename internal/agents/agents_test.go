package agents

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"pm-assistant/internal/database"
	"pm-assistant/internal/llm"
	"pm-assistant/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.DB = db
	require.NoError(t, database.Migrate())
	database.SeedAgents()
}

// newLLMServer serves a canned chat-completion response and counts calls.
func newLLMServer(t *testing.T, status int, content string) (*llm.Client, *int) {
	t.Helper()

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		quoted, _ := json.Marshal(content)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":` + string(quoted) + `}}]}`))
	}))
	t.Cleanup(srv.Close)

	return llm.NewClient("test-key", srv.URL, "gpt-4.1-mini"), &calls
}

func createProject(t *testing.T, title string) models.Project {
	t.Helper()

	project := models.Project{
		Title:       title,
		ProjectType: models.ProjectSoftware,
		Priority:    models.PriorityMedium,
		Status:      models.StatusPlanning,
	}
	require.NoError(t, database.DB.Create(&project).Error)
	return project
}
