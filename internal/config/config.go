package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN         string
	ServerPort    string
	SessionSecret string

	// LLM endpoint. An empty API key is not fatal: the agents fall
	// back to locally generated analysis when the key is missing.
	LLMAPIKey string
	LLMAPIURL string
	LLMModel  string

	UploadDir string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		ServerPort:    os.Getenv("SERVER_PORT"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		LLMAPIKey:     os.Getenv("ABACUSAI_API_KEY"),
		LLMAPIURL:     os.Getenv("LLM_API_URL"),
		LLMModel:      os.Getenv("LLM_MODEL"),
		UploadDir:     os.Getenv("UPLOAD_DIR"),
	}

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}
	if cfg.LLMAPIURL == "" {
		cfg.LLMAPIURL = "https://apps.abacus.ai/v1/chat/completions"
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = "gpt-4.1-mini"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if cfg.LLMAPIKey == "" {
		log.Println("ABACUSAI_API_KEY is not set, agents will use fallback analysis")
	}

	return cfg
}
