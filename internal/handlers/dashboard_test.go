package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsAggregation(t *testing.T) {
	env := setupEnv(t)

	p1 := createProjectVia(t, env, "Analytics One")
	createProjectVia(t, env, "Analytics Two")

	rec := env.do(t, http.MethodPost, "/api/tasks", map[string]any{
		"projectId": p1,
		"title":     "Only task",
		"priority":  "HIGH",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/analytics", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Projects struct {
			Total    int            `json:"total"`
			ByStatus map[string]int `json:"byStatus"`
		} `json:"projects"`
		Tasks struct {
			Total      int            `json:"total"`
			ByPriority map[string]int `json:"byPriority"`
		} `json:"tasks"`
	}
	decode(t, rec, &resp)

	assert.Equal(t, 2, resp.Projects.Total)
	assert.Equal(t, 2, resp.Projects.ByStatus["PLANNING"])
	assert.Equal(t, 1, resp.Tasks.Total)
	assert.Equal(t, 1, resp.Tasks.ByPriority["HIGH"])
}

func TestSettingsRoundTrip(t *testing.T) {
	env := setupEnv(t)

	rec := env.do(t, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var current struct {
		General struct {
			AppName string `json:"appName"`
			Theme   string `json:"theme"`
		} `json:"general"`
		Advanced struct {
			DataRetention int `json:"dataRetention"`
		} `json:"advanced"`
	}
	decode(t, rec, &current)
	assert.Equal(t, "PM Assistant MVP", current.General.AppName)
	assert.Equal(t, 365, current.Advanced.DataRetention)

	rec = env.do(t, http.MethodPost, "/api/settings", map[string]any{
		"general": map[string]any{
			"appName":  "Renamed Dashboard",
			"theme":    "dark",
			"autoSave": false,
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &current)
	assert.Equal(t, "Renamed Dashboard", current.General.AppName)
	assert.Equal(t, "dark", current.General.Theme)
	// untouched group keeps its value
	assert.Equal(t, 365, current.Advanced.DataRetention)
}

func TestLLMProbe(t *testing.T) {
	env := setupEnv(t)

	rec := env.do(t, http.MethodPost, "/api/test-llm", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success  bool   `json:"success"`
		Response string `json:"response"`
	}
	decode(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "stub analysis", resp.Response)

	rec = env.do(t, http.MethodGet, "/api/test-llm", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var hint struct {
		Message string `json:"message"`
	}
	decode(t, rec, &hint)
	assert.Equal(t, "Use POST to test LLM API", hint.Message)
}

func TestUploadCSV(t *testing.T) {
	env := setupEnv(t)
	projectID := createProjectVia(t, env, "With Upload")

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "plan.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("task,owner\nkickoff,alice\nreview,bob\n"))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("projectId", projectID))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	for _, c := range env.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success       bool   `json:"success"`
		FileID        string `json:"fileId"`
		Status        string `json:"status"`
		ProcessedData struct {
			Type     string `json:"type"`
			RowCount int    `json:"rowCount"`
		} `json:"processedData"`
	}
	decode(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "PROCESSED", resp.Status)
	assert.Equal(t, "csv", resp.ProcessedData.Type)
	assert.Equal(t, 3, resp.ProcessedData.RowCount)

	rec2 := env.do(t, http.MethodGet, "/api/upload?projectId="+projectID, nil)
	require.Equal(t, http.StatusOK, rec2.Code)
	var uploads []struct {
		ID           string `json:"id"`
		Status       string `json:"status"`
		OriginalName string `json:"originalName"`
	}
	decode(t, rec2, &uploads)
	require.Len(t, uploads, 1)
	assert.Equal(t, resp.FileID, uploads[0].ID)
	assert.Equal(t, "PROCESSED", uploads[0].Status)
	assert.Equal(t, "plan.csv", uploads[0].OriginalName)
}
