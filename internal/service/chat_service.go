package service

import (
	"context"
	"fmt"
	"time"

	apperror "chat-agent-service/internal/error"
	"chat-agent-service/internal/llm"
	"chat-agent-service/internal/tools"

	"github.com/tiktoken-go/tokenizer"
	"go.uber.org/zap"
)

// chatService handles chat business logic: it drives the model and
// resolves tool calls until the model produces a final answer
type chatService struct {
	llmClient     llm.Client
	registry      *tools.Registry
	logger        *zap.Logger
	defaultModel  string
	maxToolRounds int
	systemPrompt  string
}

// NewChatService creates a new chat service with injected dependencies.
// systemPrompt is the base system prompt; the current datetime is
// appended per request.
func NewChatService(
	llmClient llm.Client,
	registry *tools.Registry,
	logger *zap.Logger,
	defaultModel string,
	maxToolRounds int,
	systemPrompt string,
) ChatService {
	return &chatService{
		llmClient:     llmClient,
		registry:      registry,
		logger:        logger,
		defaultModel:  defaultModel,
		maxToolRounds: maxToolRounds,
		systemPrompt:  systemPrompt,
	}
}

// ------------------------------------------------------------------------------------------------------
// ProcessChat processes a chat request and returns the final answer
func (s *chatService) ProcessChat(ctx context.Context, req *ChatRequest) (string, error) {
	return s.run(ctx, req, nil)
}

// ------------------------------------------------------------------------------------------------------
// ProcessChatStream processes a chat request, forwarding content tokens
// to onToken as the model produces them
func (s *chatService) ProcessChatStream(ctx context.Context, req *ChatRequest, onToken func(string) error) (string, error) {
	return s.run(ctx, req, onToken)
}

// ------------------------------------------------------------------------------------------------------
// run is the tool-calling loop. Each round the model is called with the
// transcript and the tool specs; when the reply carries tool calls the
// first recognized tool is executed, the assistant message and a tool
// message holding the output are appended, and the model is called
// again. A reply without tool calls is the final answer.
func (s *chatService) run(ctx context.Context, req *ChatRequest, onToken func(string) error) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	model := req.Model
	if model == "" {
		model = s.defaultModel
	}

	s.logger.Info("Processing chat request", zap.String("model", model))

	messages := []llm.ChatMessage{
		{
			Role:    "system",
			Content: fmt.Sprintf("%s Current date and time: %s", s.systemPrompt, time.Now().Format(time.RFC3339)),
		},
		{
			Role:    "user",
			Content: req.Message,
		},
	}

	specs := s.registry.Specs()

	for round := 0; ; round++ {
		s.observePromptTokens(messages)

		var reply *llm.ChatMessage
		var err error
		if onToken != nil {
			reply, err = s.llmClient.StreamChat(ctx, model, messages, specs, onToken)
		} else {
			reply, err = s.llmClient.Chat(ctx, model, messages, specs)
		}
		if err != nil {
			return "", err
		}

		if len(reply.ToolCalls) == 0 {
			s.logger.Info("Final response received from the model")
			return reply.Content, nil
		}

		// Refuse another dispatch once the round budget is spent, so a
		// model stuck on tools does not burn live searches
		if round >= s.maxToolRounds {
			break
		}

		name, output, handled, err := s.registry.Dispatch(ctx, reply.ToolCalls)
		if err != nil {
			return "", err
		}
		if !handled {
			// The model asked for something we don't provide; return
			// whatever content it produced alongside the request
			return reply.Content, nil
		}

		toolCallsTotal.WithLabelValues(name).Inc()
		s.logger.Info("Tool call handled",
			zap.String("tool", name),
			zap.Int("round", round),
		)

		messages = append(messages,
			llm.ChatMessage{Role: "assistant", Content: reply.Content, ToolCalls: reply.ToolCalls},
			llm.ChatMessage{Role: "tool", Content: output},
		)
	}

	toolRoundsExceededTotal.Inc()
	return "", apperror.NewLLMError(
		fmt.Sprintf("model did not produce a final answer within %d tool rounds", s.maxToolRounds),
		nil,
	)
}

// ------------------------------------------------------------------------------------------------------
// observePromptTokens records the prompt size of the upcoming model
// call. Token accounting is best effort and never fails the request.
func (s *chatService) observePromptTokens(messages []llm.ChatMessage) {
	enc, err := tokenizer.Get(tokenizer.Cl100kBase)
	if err != nil {
		return
	}

	totalTokens := 0
	for _, msg := range messages {
		ids, _, err := enc.Encode(msg.Content)
		if err != nil {
			return
		}
		totalTokens += len(ids)

		// Overhead for role and message structure (approximate)
		totalTokens += 4
	}

	promptTokens.Observe(float64(totalTokens))
	s.logger.Debug("Prompt assembled", zap.Int("tokens", totalTokens))
}
