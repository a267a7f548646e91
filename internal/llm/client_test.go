package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatSuccess(t *testing.T) {
	var gotAuth string
	var gotBody chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"hello back"}}]}`))
	}))
	defer srv.Close()

	client := NewClient("secret", srv.URL, "gpt-4.1-mini")
	text, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}}, 2000, 0.7)

	require.NoError(t, err)
	assert.Equal(t, "hello back", text)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "gpt-4.1-mini", gotBody.Model)
	assert.Equal(t, 2000, gotBody.MaxTokens)
	assert.InDelta(t, 0.7, gotBody.Temperature, 0.001)
}

func TestChatMissingKey(t *testing.T) {
	client := NewClient("", "http://localhost:0", "gpt-4.1-mini")

	_, err := client.Chat(context.Background(), nil, 100, 0.1)
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestChatAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient("secret", srv.URL, "gpt-4.1-mini")
	_, err := client.Chat(context.Background(), nil, 100, 0.1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestChatEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := NewClient("secret", srv.URL, "gpt-4.1-mini")
	text, err := client.Chat(context.Background(), nil, 100, 0.1)

	require.NoError(t, err)
	assert.Equal(t, "No analysis generated", text)
}
