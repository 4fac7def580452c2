package tools

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	apperror "chat-agent-service/internal/error"
	"chat-agent-service/internal/llm"
)

// PythonTool executes a python script supplied by the model and reports
// its exit code, stdout and stderr back into the conversation
type PythonTool struct {
	interpreter string
}

// ------------------------------------------------------------------------------------------------------
func NewPythonTool() *PythonTool {
	return &PythonTool{interpreter: "python3"}
}

// ------------------------------------------------------------------------------------------------------
func (t *PythonTool) Name() string {
	return "python_invoker"
}

// ------------------------------------------------------------------------------------------------------
func (t *PythonTool) Spec() llm.Tool {
	return llm.Tool{
		Type: "function",
		Function: llm.ToolFunction{
			Name:        "python_invoker",
			Description: "Executes a python script provided as a string and returns its output.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"script": map[string]any{
						"type":        "string",
						"description": "The Python script to execute.",
					},
					"args": map[string]any{
						"type":        "array",
						"description": "Optional arguments to pass to the script.",
						"items": map[string]any{
							"type": "string",
						},
					},
				},
				"required": []string{"script"},
			},
		},
	}
}

// ------------------------------------------------------------------------------------------------------
func (t *PythonTool) Invoke(ctx context.Context, args map[string]any) (string, error) {
	script, _ := args["script"].(string)
	if script == "" {
		return "", apperror.NewToolError("python_invoker called without a script", nil)
	}

	cmdArgs := []string{"-c", script}
	if rawArgs, ok := args["args"].([]any); ok {
		for _, a := range rawArgs {
			if s, ok := a.(string); ok {
				cmdArgs = append(cmdArgs, s)
			}
		}
	}

	cmd := exec.CommandContext(ctx, t.interpreter, cmdArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	exitCode := 0
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}

	if err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			return "", apperror.NewToolError("failed to execute python script", err)
		}
	}

	return fmt.Sprintf("Exit Code: %d\nStdout: %s\nStderr: %s", exitCode, stdout.String(), stderr.String()), nil
}
