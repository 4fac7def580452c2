package tools

import (
	"context"
	"fmt"
	"strings"

	apperror "chat-agent-service/internal/error"
	"chat-agent-service/internal/llm"
	"chat-agent-service/internal/search"
)

// Searcher runs a web search. Satisfied by service.SearchService so the
// websearch tool shares its result cache.
type Searcher interface {
	ProcessSearch(ctx context.Context, query string, count int) ([]search.Result, error)
}

// WebSearchTool lets the model look things up on the web
type WebSearchTool struct {
	searcher Searcher
}

// ------------------------------------------------------------------------------------------------------
func NewWebSearchTool(searcher Searcher) *WebSearchTool {
	return &WebSearchTool{searcher: searcher}
}

// ------------------------------------------------------------------------------------------------------
func (t *WebSearchTool) Name() string {
	return "websearch"
}

// ------------------------------------------------------------------------------------------------------
func (t *WebSearchTool) Spec() llm.Tool {
	return llm.Tool{
		Type: "function",
		Function: llm.ToolFunction{
			Name:        "websearch",
			Description: "Get search results from web for latest events, news.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "The search query to do web search on.",
					},
					"count": map[string]any{
						"type":        "number",
						"description": "Optional field to mention how many web search results are needed",
					},
				},
				"required": []string{"query"},
			},
		},
	}
}

// ------------------------------------------------------------------------------------------------------
// Invoke runs the search and formats the results as a text block for
// the model to read
func (t *WebSearchTool) Invoke(ctx context.Context, args map[string]any) (string, error) {
	query, _ := args["query"].(string)
	if query == "" {
		return "", apperror.NewToolError("websearch called without a query", nil)
	}

	count := search.DefaultResultCount
	if raw, ok := args["count"].(float64); ok && raw > 0 {
		count = int(raw)
	}

	results, err := t.searcher.ProcessSearch(ctx, query, count)
	if err != nil {
		return "", err
	}

	blocks := make([]string, 0, len(results))
	for _, r := range results {
		blocks = append(blocks, fmt.Sprintf("Title: %s\nURL: %s\nContent: %s\n---", r.Title, r.URL, r.Content))
	}

	return strings.Join(blocks, "\n"), nil
}
