package tools

import (
	"context"

	"chat-agent-service/internal/llm"

	"go.uber.org/zap"
)

// Tool is a function the model may ask to invoke during a chat
type Tool interface {
	Name() string
	Spec() llm.Tool
	Invoke(ctx context.Context, args map[string]any) (string, error)
}

// Registry holds the tools offered to the model
type Registry struct {
	tools  map[string]Tool
	order  []string
	logger *zap.Logger
}

// ------------------------------------------------------------------------------------------------------
// NewRegistry creates an empty tool registry
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		tools:  make(map[string]Tool),
		logger: logger,
	}
}

// ------------------------------------------------------------------------------------------------------
func (r *Registry) Register(t Tool) {
	if _, ok := r.tools[t.Name()]; !ok {
		r.order = append(r.order, t.Name())
	}
	r.tools[t.Name()] = t
}

// ------------------------------------------------------------------------------------------------------
// Specs returns the tool definitions to advertise on each model call,
// in registration order
func (r *Registry) Specs() []llm.Tool {
	specs := make([]llm.Tool, 0, len(r.order))
	for _, name := range r.order {
		specs = append(specs, r.tools[name].Spec())
	}
	return specs
}

// ------------------------------------------------------------------------------------------------------
// Dispatch executes the first recognized tool call and returns its name
// and output. Unknown tool names are skipped; handled reports whether
// any tool ran.
func (r *Registry) Dispatch(ctx context.Context, calls []llm.ToolCall) (name string, output string, handled bool, err error) {
	for _, call := range calls {
		tool, ok := r.tools[call.Function.Name]
		if !ok {
			r.logger.Warn("Model requested unknown tool",
				zap.String("tool", call.Function.Name),
			)
			continue
		}

		r.logger.Info("Invoking tool",
			zap.String("tool", call.Function.Name),
		)

		output, err = tool.Invoke(ctx, call.Function.Arguments)
		if err != nil {
			return call.Function.Name, "", false, err
		}

		return call.Function.Name, output, true, nil
	}

	return "", "", false, nil
}
