package handlers

import (
	"pm-assistant/internal/agents"
	"pm-assistant/internal/config"
	"pm-assistant/internal/llm"
	"pm-assistant/internal/settings"
)

var (
	cfg           *config.Config
	llmClient     *llm.Client
	runner        *agents.Runner
	settingsStore *settings.Store
)

// Init wires the handler package state from the loaded config. Must be
// called once before the router is assembled.
func Init(c *config.Config) {
	cfg = c
	llmClient = llm.NewClient(c.LLMAPIKey, c.LLMAPIURL, c.LLMModel)
	runner = agents.NewRunner(llmClient)
	settingsStore = settings.NewStore()
}
