package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOllamaClient_Chat(t *testing.T) {
	var gotReq ChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(ChatResponse{
			Model:   gotReq.Model,
			Message: ChatMessage{Role: "assistant", Content: "hi there"},
			Done:    true,
		})
	}))
	defer server.Close()

	client := NewOllamaClient(server.URL, 256)

	msg, err := client.Chat(context.Background(), "llama3.1", []ChatMessage{
		{Role: "user", Content: "hello"},
	}, nil)
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}

	if msg.Content != "hi there" {
		t.Errorf("Expected 'hi there', got '%s'", msg.Content)
	}
	if gotReq.Model != "llama3.1" {
		t.Errorf("Expected model 'llama3.1', got '%s'", gotReq.Model)
	}
	if gotReq.Stream {
		t.Error("Expected stream false")
	}
	if gotReq.Options["num_predict"] != float64(256) {
		t.Errorf("Expected num_predict 256, got %v", gotReq.Options["num_predict"])
	}
}

func TestOllamaClient_Chat_ToolCalls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"model":"llama3.1","message":{"role":"assistant","content":"","tool_calls":[{"function":{"name":"websearch","arguments":{"query":"golang","count":3}}}]},"done":true}`)
	}))
	defer server.Close()

	client := NewOllamaClient(server.URL, 0)

	msg, err := client.Chat(context.Background(), "llama3.1", []ChatMessage{{Role: "user", Content: "search"}}, nil)
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}

	if len(msg.ToolCalls) != 1 {
		t.Fatalf("Expected 1 tool call, got %d", len(msg.ToolCalls))
	}
	call := msg.ToolCalls[0].Function
	if call.Name != "websearch" {
		t.Errorf("Expected 'websearch', got '%s'", call.Name)
	}
	if call.Arguments["query"] != "golang" {
		t.Errorf("Expected query 'golang', got %v", call.Arguments["query"])
	}
	if call.Arguments["count"] != float64(3) {
		t.Errorf("Expected count 3, got %v", call.Arguments["count"])
	}
}

func TestOllamaClient_Chat_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, "model not found")
	}))
	defer server.Close()

	client := NewOllamaClient(server.URL, 0)

	if _, err := client.Chat(context.Background(), "missing", nil, nil); err == nil {
		t.Error("Chat() expected error for 500 response, got nil")
	}
}

func TestOllamaClient_StreamChat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if !req.Stream {
			t.Error("Expected stream true")
		}
		fmt.Fprintln(w, `{"model":"llama3.1","message":{"role":"assistant","content":"Hello"},"done":false}`)
		fmt.Fprintln(w, `{"model":"llama3.1","message":{"role":"assistant","content":" World"},"done":false}`)
		fmt.Fprintln(w, `{"model":"llama3.1","message":{"role":"assistant","content":""},"done":true}`)
	}))
	defer server.Close()

	client := NewOllamaClient(server.URL, 0)

	var tokens []string
	msg, err := client.StreamChat(context.Background(), "llama3.1", []ChatMessage{{Role: "user", Content: "hi"}}, nil, func(token string) error {
		tokens = append(tokens, token)
		return nil
	})
	if err != nil {
		t.Fatalf("StreamChat() error = %v", err)
	}

	if msg.Content != "Hello World" {
		t.Errorf("Expected 'Hello World', got '%s'", msg.Content)
	}
	if len(tokens) != 2 {
		t.Errorf("Expected 2 tokens, got %d", len(tokens))
	}
}

func TestOllamaClient_StreamChat_ToolCalls(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `{"model":"llama3.1","message":{"role":"assistant","content":"","tool_calls":[{"function":{"name":"websearch","arguments":{"query":"news"}}}]},"done":false}`)
		fmt.Fprintln(w, `{"model":"llama3.1","message":{"role":"assistant","content":""},"done":true}`)
	}))
	defer server.Close()

	client := NewOllamaClient(server.URL, 0)

	msg, err := client.StreamChat(context.Background(), "llama3.1", nil, nil, nil)
	if err != nil {
		t.Fatalf("StreamChat() error = %v", err)
	}
	if len(msg.ToolCalls) != 1 || msg.ToolCalls[0].Function.Name != "websearch" {
		t.Errorf("Expected websearch tool call, got %+v", msg.ToolCalls)
	}
}
