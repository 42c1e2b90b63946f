package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/leofalp/toolreason/providers/ai"
)

// testLogger creates an slog.Logger writing to buf at debug level.
func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func okResponse(_ context.Context, _ ai.ChatRequest) (*ai.ChatResponse, error) {
	return &ai.ChatResponse{
		Model:        "test-model",
		Content:      "Answer: 42",
		FinishReason: "stop",
		Usage:        &ai.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	}, nil
}

var testRequest = ai.ChatRequest{
	Model:    "test-model",
	Messages: []ai.Message{{Role: ai.RoleUser, Content: "secret prompt"}},
}

// TestLoggingMiddleware_Levels verifies the detail emitted at each level.
func TestLoggingMiddleware_Levels(t *testing.T) {
	tests := []struct {
		level   LogLevel
		want    []string
		notWant []string
	}{
		{LogLevelMinimal, []string{"test-model", "total_tokens=15"}, []string{"finish_reason", "prompt_length", "secret prompt"}},
		{LogLevelStandard, []string{"finish_reason=stop", "prompt_length=13"}, []string{"secret prompt", "response_content"}},
		{LogLevelVerbose, []string{"secret prompt", "response_content"}, nil},
	}

	for _, tt := range tests {
		buf := &bytes.Buffer{}
		chain := NewLoggingMiddleware(testLogger(buf), tt.level).Send(okResponse)

		if _, err := chain(context.Background(), testRequest); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		for _, s := range tt.want {
			if !strings.Contains(out, s) {
				t.Errorf("level %d: expected %q in:\n%s", tt.level, s, out)
			}
		}
		for _, s := range tt.notWant {
			if strings.Contains(out, s) {
				t.Errorf("level %d: unexpected %q in:\n%s", tt.level, s, out)
			}
		}
	}
}

// TestLoggingMiddleware_Error verifies the failure record and error passthrough.
func TestLoggingMiddleware_Error(t *testing.T) {
	buf := &bytes.Buffer{}
	sentinel := errors.New("provider down")
	chain := NewLoggingMiddleware(testLogger(buf), LogLevelStandard).Send(
		func(context.Context, ai.ChatRequest) (*ai.ChatResponse, error) { return nil, sentinel },
	)

	if _, err := chain(context.Background(), testRequest); !errors.Is(err, sentinel) {
		t.Errorf("error = %v, want sentinel", err)
	}
	if !strings.Contains(buf.String(), "llm send failed") || !strings.Contains(buf.String(), "provider down") {
		t.Errorf("missing failure log:\n%s", buf.String())
	}
}

// TestLoggingMiddleware_NilLogger verifies the fallback to the default logger.
func TestLoggingMiddleware_NilLogger(t *testing.T) {
	chain := NewLoggingMiddleware(nil, LogLevelMinimal).Send(okResponse)
	if _, err := chain(context.Background(), testRequest); err != nil {
		t.Fatal(err)
	}
}

// TestParseLogLevel verifies level names.
func TestParseLogLevel(t *testing.T) {
	if ParseLogLevel("minimal") != LogLevelMinimal || ParseLogLevel("verbose") != LogLevelVerbose || ParseLogLevel("x") != LogLevelStandard {
		t.Error("unexpected ParseLogLevel mapping")
	}
}
