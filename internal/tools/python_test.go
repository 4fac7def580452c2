package tools

import (
	"context"
	"os/exec"
	"strings"
	"testing"
)

func requirePython(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("python3"); err != nil {
		t.Skip("Skipping: python3 not found in PATH")
	}
}

func TestPythonTool_Invoke(t *testing.T) {
	requirePython(t)

	tool := NewPythonTool()

	output, err := tool.Invoke(context.Background(), map[string]any{
		"script": "print('hello from python')",
	})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}

	if !strings.Contains(output, "Exit Code: 0") {
		t.Errorf("Expected exit code 0 in output:\n%s", output)
	}
	if !strings.Contains(output, "hello from python") {
		t.Errorf("Expected stdout in output:\n%s", output)
	}
}

func TestPythonTool_Invoke_Args(t *testing.T) {
	requirePython(t)

	tool := NewPythonTool()

	output, err := tool.Invoke(context.Background(), map[string]any{
		"script": "import sys; print(sys.argv[1])",
		"args":   []any{"forwarded-arg"},
	})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if !strings.Contains(output, "forwarded-arg") {
		t.Errorf("Expected forwarded arg in output:\n%s", output)
	}
}

func TestPythonTool_Invoke_ScriptFailure(t *testing.T) {
	requirePython(t)

	tool := NewPythonTool()

	output, err := tool.Invoke(context.Background(), map[string]any{
		"script": "import sys; sys.stderr.write('boom'); sys.exit(3)",
	})
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if !strings.Contains(output, "Exit Code: 3") {
		t.Errorf("Expected exit code 3 in output:\n%s", output)
	}
	if !strings.Contains(output, "boom") {
		t.Errorf("Expected stderr in output:\n%s", output)
	}
}

func TestPythonTool_Invoke_MissingScript(t *testing.T) {
	tool := NewPythonTool()

	if _, err := tool.Invoke(context.Background(), map[string]any{}); err == nil {
		t.Error("Invoke() expected error for missing script, got nil")
	}
}
