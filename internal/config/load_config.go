package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Host             string
	Port             string
	OllamaURL        string
	Model            string
	SystemPromptPath string
	SearchBaseURL    string
	RedisAddr        string
	RedisPassword    string
	MaxTokens        int
	MaxToolRounds    int
	SearchCacheTTL   time.Duration
	EnablePythonTool bool
	LogLevel         string
}

// ------------------------------------------------------------------------------------------------------
func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{
		Host:             getEnv("HOST", "127.0.0.1"),
		Port:             getEnv("PORT", "8080"),
		OllamaURL:        getEnv("OLLAMA_URL", "http://localhost:11434/api/chat"),
		Model:            getEnv("MODEL", "llama3.1"),
		SystemPromptPath: getEnv("SYSTEM_PROMPT_PATH", "prompts/system_prompt.txt"),
		SearchBaseURL:    getEnv("SEARCH_BASE_URL", "https://html.duckduckgo.com/html"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		MaxTokens:        getEnvAsInt("MAX_TOKENS", 1024),
		MaxToolRounds:    getEnvAsInt("MAX_TOOL_ROUNDS", 5),
		SearchCacheTTL:   time.Duration(getEnvAsInt("SEARCH_CACHE_TTL_SECONDS", 300)) * time.Second,
		EnablePythonTool: getEnvAsBool("ENABLE_PYTHON_TOOL", true),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// ------------------------------------------------------------------------------------------------------
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ------------------------------------------------------------------------------------------------------
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// ------------------------------------------------------------------------------------------------------
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
