package llm

import "context"

// Client interface for LLM operations
type Client interface {
	Chat(ctx context.Context, model string, messages []ChatMessage, tools []Tool) (*ChatMessage, error)
	StreamChat(ctx context.Context, model string, messages []ChatMessage, tools []Tool, onToken func(string) error) (*ChatMessage, error)
}

// ChatMessage represents a message in the conversation sent to or
// received from the model. Role is one of "system", "user", "assistant"
// or "tool".
type ChatMessage struct {
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// ToolCall is a tool invocation requested by the model
type ToolCall struct {
	Function FunctionCall `json:"function"`
}

// FunctionCall carries the tool name and its arguments as parsed JSON
type FunctionCall struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// Tool describes a callable function advertised to the model
type Tool struct {
	Type     string       `json:"type"`
	Function ToolFunction `json:"function"`
}

// ToolFunction holds the JSON-schema style description of a tool
type ToolFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// ChatRequest represents the request to the Ollama chat API
type ChatRequest struct {
	Model    string         `json:"model"`
	Messages []ChatMessage  `json:"messages"`
	Stream   bool           `json:"stream"`
	Tools    []Tool         `json:"tools,omitempty"`
	Options  map[string]any `json:"options,omitempty"`
}

// ChatResponse represents a single response object from Ollama. In
// streaming mode each NDJSON line decodes into one of these.
type ChatResponse struct {
	Model   string      `json:"model"`
	Message ChatMessage `json:"message"`
	Done    bool        `json:"done"`
}
