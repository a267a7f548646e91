package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"pm-assistant/internal/llm"

	"github.com/gin-gonic/gin"
)

// TestLLM probes the LLM endpoint with a tiny fixed prompt. Unlike the
// agent paths there is no fallback here: a broken credential or
// endpoint should be visible on the settings page.
func TestLLM(c *gin.Context) {
	messages := []llm.Message{{
		Role:    "user",
		Content: `Hello! This is a test message. Please respond with "LLM API is working correctly!"`,
	}}

	response, err := llmClient.Chat(c.Request.Context(), messages, 100, 0.1)
	if err != nil {
		log.Printf("LLM API test failed: %v", err)
		if errors.Is(err, llm.ErrNoAPIKey) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ABACUSAI_API_KEY not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "LLM API test failed",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "LLM API test successful!",
		"response":  response,
		"timestamp": time.Now(),
	})
}

func TestLLMHint(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Use POST to test LLM API"})
}
