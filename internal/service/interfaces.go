package service

import (
	"context"

	"chat-agent-service/internal/search"
)

// ChatService defines the interface for chat operations
type ChatService interface {
	ProcessChat(ctx context.Context, req *ChatRequest) (string, error)
	ProcessChatStream(ctx context.Context, req *ChatRequest, onToken func(string) error) (string, error)
}

// SearchService defines the interface for direct web search operations
type SearchService interface {
	ProcessSearch(ctx context.Context, query string, count int) ([]search.Result, error)
}
