package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperror "chat-agent-service/internal/error"
)

// OllamaClient handles communication with a local Ollama instance
type OllamaClient struct {
	chatURL    string
	maxTokens  int
	httpClient *http.Client
}

// NewOllamaClient creates a new Ollama client. chatURL points at the
// chat endpoint, e.g. http://localhost:11434/api/chat. maxTokens caps
// generation length via the num_predict option (0 disables the cap).
func NewOllamaClient(chatURL string, maxTokens int) *OllamaClient {
	return &OllamaClient{
		chatURL:   chatURL,
		maxTokens: maxTokens,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// Chat performs a non-streaming chat completion against Ollama
func (c *OllamaClient) Chat(ctx context.Context, model string, messages []ChatMessage, tools []Tool) (*ChatMessage, error) {
	resp, err := c.doRequest(ctx, ChatRequest{
		Model:    model,
		Messages: messages,
		Stream:   false,
		Tools:    tools,
		Options:  c.options(),
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, apperror.NewLLMError("failed to decode Ollama response", err)
	}

	return &chatResp.Message, nil
}

// StreamChat streams a chat completion from Ollama. Content tokens are
// forwarded to onToken as they arrive; tool calls emitted by the model
// are accumulated and returned on the assembled final message.
func (c *OllamaClient) StreamChat(ctx context.Context, model string, messages []ChatMessage, tools []Tool, onToken func(string) error) (*ChatMessage, error) {
	resp, err := c.doRequest(ctx, ChatRequest{
		Model:    model,
		Messages: messages,
		Stream:   true,
		Tools:    tools,
		Options:  c.options(),
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var content strings.Builder
	var toolCalls []ToolCall

	// Ollama streams newline-delimited JSON objects
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var chunk ChatResponse
		if err := json.Unmarshal(line, &chunk); err != nil {
			continue
		}

		if chunk.Message.Content != "" {
			content.WriteString(chunk.Message.Content)
			if onToken != nil {
				if err := onToken(chunk.Message.Content); err != nil {
					return nil, apperror.NewInternalError("failed to deliver token", err)
				}
			}
		}

		if len(chunk.Message.ToolCalls) > 0 {
			toolCalls = append(toolCalls, chunk.Message.ToolCalls...)
		}

		if chunk.Done {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, apperror.NewLLMError("failed to read Ollama stream", err)
	}

	return &ChatMessage{
		Role:      "assistant",
		Content:   content.String(),
		ToolCalls: toolCalls,
	}, nil
}

func (c *OllamaClient) doRequest(ctx context.Context, reqBody ChatRequest) (*http.Response, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, apperror.NewInternalError("failed to marshal request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.chatURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, apperror.NewInternalError("failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.NewLLMError("failed to reach Ollama", err)
	}

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, apperror.NewLLMError(
			fmt.Sprintf("Ollama API error: status %d, body: %s", resp.StatusCode, string(bodyBytes)),
			nil,
		)
	}

	return resp, nil
}

func (c *OllamaClient) options() map[string]any {
	if c.maxTokens <= 0 {
		return nil
	}
	return map[string]any{"num_predict": c.maxTokens}
}
