package tools

import (
	"context"
	"strings"
	"testing"

	"chat-agent-service/internal/llm"
	"chat-agent-service/internal/search"

	"go.uber.org/zap"
)

// Mock searcher for testing
type mockSearcher struct {
	results   []search.Result
	lastQuery string
	lastCount int
}

func (m *mockSearcher) ProcessSearch(_ context.Context, query string, count int) ([]search.Result, error) {
	m.lastQuery = query
	m.lastCount = count
	return m.results, nil
}

func TestWebSearchTool_Invoke(t *testing.T) {
	searcher := &mockSearcher{
		results: []search.Result{
			{Title: "Go", URL: "https://go.dev", Content: "The Go site"},
			{Title: "Go Blog", URL: "https://go.dev/blog", Content: "News"},
		},
	}
	tool := NewWebSearchTool(searcher)

	output, err := tool.Invoke(context.Background(), map[string]any{"query": "golang", "count": float64(2)})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}

	if searcher.lastQuery != "golang" {
		t.Errorf("Expected query 'golang', got '%s'", searcher.lastQuery)
	}
	if searcher.lastCount != 2 {
		t.Errorf("Expected count 2, got %d", searcher.lastCount)
	}

	want := "Title: Go\nURL: https://go.dev\nContent: The Go site\n---"
	if !strings.Contains(output, want) {
		t.Errorf("Output missing result block:\n%s", output)
	}
	if !strings.Contains(output, "Title: Go Blog") {
		t.Errorf("Output missing second result:\n%s", output)
	}
}

func TestWebSearchTool_Invoke_DefaultCount(t *testing.T) {
	searcher := &mockSearcher{}
	tool := NewWebSearchTool(searcher)

	if _, err := tool.Invoke(context.Background(), map[string]any{"query": "golang"}); err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if searcher.lastCount != 5 {
		t.Errorf("Expected default count 5, got %d", searcher.lastCount)
	}
}

func TestWebSearchTool_Invoke_MissingQuery(t *testing.T) {
	tool := NewWebSearchTool(&mockSearcher{})

	if _, err := tool.Invoke(context.Background(), map[string]any{}); err == nil {
		t.Error("Invoke() expected error for missing query, got nil")
	}
}

func TestWebSearchTool_Spec(t *testing.T) {
	spec := NewWebSearchTool(&mockSearcher{}).Spec()

	if spec.Type != "function" {
		t.Errorf("Expected type 'function', got '%s'", spec.Type)
	}
	if spec.Function.Name != "websearch" {
		t.Errorf("Expected name 'websearch', got '%s'", spec.Function.Name)
	}

	params, ok := spec.Function.Parameters["properties"].(map[string]any)
	if !ok {
		t.Fatal("Expected properties map in parameters")
	}
	if _, ok := params["query"]; !ok {
		t.Error("Expected 'query' parameter")
	}
	if _, ok := params["count"]; !ok {
		t.Error("Expected 'count' parameter")
	}
}

func TestRegistry_Dispatch(t *testing.T) {
	searcher := &mockSearcher{
		results: []search.Result{{Title: "Go", URL: "https://go.dev", Content: "site"}},
	}

	registry := NewRegistry(zap.NewNop())
	registry.Register(NewWebSearchTool(searcher))

	calls := []llm.ToolCall{
		{Function: llm.FunctionCall{Name: "unknown_tool", Arguments: map[string]any{}}},
		{Function: llm.FunctionCall{Name: "websearch", Arguments: map[string]any{"query": "golang"}}},
	}

	name, output, handled, err := registry.Dispatch(context.Background(), calls)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if !handled {
		t.Fatal("Expected a tool to be handled")
	}
	if name != "websearch" {
		t.Errorf("Expected 'websearch', got '%s'", name)
	}
	if !strings.Contains(output, "https://go.dev") {
		t.Errorf("Unexpected output: %q", output)
	}
}

func TestRegistry_Dispatch_AllUnknown(t *testing.T) {
	registry := NewRegistry(zap.NewNop())

	_, _, handled, err := registry.Dispatch(context.Background(), []llm.ToolCall{
		{Function: llm.FunctionCall{Name: "nothing"}},
	})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if handled {
		t.Error("Expected no tool handled")
	}
}

func TestRegistry_Specs_Order(t *testing.T) {
	registry := NewRegistry(zap.NewNop())
	registry.Register(NewWebSearchTool(&mockSearcher{}))
	registry.Register(NewPythonTool())

	specs := registry.Specs()
	if len(specs) != 2 {
		t.Fatalf("Expected 2 specs, got %d", len(specs))
	}
	if specs[0].Function.Name != "websearch" || specs[1].Function.Name != "python_invoker" {
		t.Errorf("Unexpected spec order: %s, %s", specs[0].Function.Name, specs[1].Function.Name)
	}
}
