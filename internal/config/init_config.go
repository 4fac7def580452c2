package config

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"chat-agent-service/internal/api"
	"chat-agent-service/internal/api/handlers"
	"chat-agent-service/internal/llm"
	"chat-agent-service/internal/logging"
	"chat-agent-service/internal/search"
	"chat-agent-service/internal/service"
	"chat-agent-service/internal/storage"
	"chat-agent-service/internal/tools"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const defaultSystemPrompt = "You are a helpful assistant."

// ------------------------------------------------------------------------------------------------------
func (c *Config) NewLogger() (*zap.Logger, error) {
	if err := logging.Init(c.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logging.Logger, nil
}

// ------------------------------------------------------------------------------------------------------
func (c *Config) NewLLMClient() llm.Client {
	return llm.NewOllamaClient(c.OllamaURL, c.MaxTokens)
}

// ------------------------------------------------------------------------------------------------------
func (c *Config) NewSearchClient() search.Client {
	return search.NewDuckDuckGoClient(c.SearchBaseURL)
}

// ------------------------------------------------------------------------------------------------------
// NewSearchCache prefers Redis and falls back to the in-memory cache
// when Redis is unreachable
func (c *Config) NewSearchCache(logger *zap.Logger) storage.SearchCache {
	redisCache, err := storage.NewRedisCache(c.RedisAddr, c.RedisPassword)
	if err != nil {
		logger.Warn("Failed to connect to Redis, using in-memory search cache",
			zap.Error(err),
		)
		return storage.NewMemoryCache(256)
	}
	logger.Info("Connected to Redis")
	return redisCache
}

// ------------------------------------------------------------------------------------------------------
func (c *Config) NewSearchService(cache storage.SearchCache, logger *zap.Logger) service.SearchService {
	return service.NewSearchService(c.NewSearchClient(), cache, logger, c.SearchCacheTTL)
}

// ------------------------------------------------------------------------------------------------------
func (c *Config) NewToolRegistry(searchService service.SearchService, logger *zap.Logger) *tools.Registry {
	registry := tools.NewRegistry(logger)
	registry.Register(tools.NewWebSearchTool(searchService))

	if c.EnablePythonTool {
		registry.Register(tools.NewPythonTool())
	}

	return registry
}

// ------------------------------------------------------------------------------------------------------
func (c *Config) NewChatService(searchService service.SearchService, logger *zap.Logger) service.ChatService {
	registry := c.NewToolRegistry(searchService, logger)

	systemPrompt := c.loadSystemPrompt(logger)

	return service.NewChatService(
		c.NewLLMClient(),
		registry,
		logger,
		c.Model,
		c.MaxToolRounds,
		systemPrompt,
	)
}

// ------------------------------------------------------------------------------------------------------
func (c *Config) loadSystemPrompt(logger *zap.Logger) string {
	data, err := os.ReadFile(c.SystemPromptPath)
	if err != nil {
		logger.Warn("Failed to read system prompt file, using default prompt",
			zap.String("path", c.SystemPromptPath),
			zap.Error(err),
		)
		return defaultSystemPrompt
	}
	return string(data)
}

// ------------------------------------------------------------------------------------------------------
func (c *Config) NewHandler(chatService service.ChatService, searchService service.SearchService, logger *zap.Logger) *handlers.Handler {
	return handlers.NewHandler(chatService, searchService, logger)
}

// ------------------------------------------------------------------------------------------------------
func (c *Config) NewRouter(handler *handlers.Handler, logger *zap.Logger) *mux.Router {
	return api.SetupRouter(handler, logger)
}

// ------------------------------------------------------------------------------------------------------
func (c *Config) NewHTTPServer(router *mux.Router) *http.Server {
	return &http.Server{
		Addr:         net.JoinHostPort(c.Host, c.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}
}
