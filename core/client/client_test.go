package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/leofalp/toolreason/providers/ai"
	"github.com/leofalp/toolreason/providers/observability"
)

// mockProvider returns a canned response or error and records the last request.
type mockProvider struct {
	response *ai.ChatResponse
	err      error
	last     ai.ChatRequest
	calls    int
}

func (m *mockProvider) SendMessage(_ context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	m.calls++
	m.last = request
	if m.err != nil {
		return nil, m.err
	}
	if m.response != nil {
		return m.response, nil
	}
	return &ai.ChatResponse{Content: "test response", Model: request.Model}, nil
}

func (m *mockProvider) WithAPIKey(string) ai.Provider { return m }

func (m *mockProvider) WithBaseURL(string) ai.Provider { return m }

func (m *mockProvider) WithHttpClient(*http.Client) ai.Provider { return m }

// recordingObserver captures log messages and span names.
type recordingObserver struct {
	spans  []string
	errors []string
	debugs []string
	span   *recordingSpan
}

type recordingSpan struct {
	status observability.StatusCode
	errs   []error
	attrs  []observability.Attribute
	ended  bool
}

func (s *recordingSpan) End() { s.ended = true }

func (s *recordingSpan) SetAttributes(attrs ...observability.Attribute) {
	s.attrs = append(s.attrs, attrs...)
}

func (s *recordingSpan) SetStatus(code observability.StatusCode, _ string) { s.status = code }

func (s *recordingSpan) RecordError(err error) { s.errs = append(s.errs, err) }

func (s *recordingSpan) AddEvent(string, ...observability.Attribute) {}

func (o *recordingObserver) StartSpan(ctx context.Context, name string, attrs ...observability.Attribute) (context.Context, observability.Span) {
	o.spans = append(o.spans, name)
	o.span = &recordingSpan{attrs: attrs}
	return observability.ContextWithSpan(ctx, o.span), o.span
}

func (o *recordingObserver) Debug(_ context.Context, msg string, _ ...observability.Attribute) {
	o.debugs = append(o.debugs, msg)
}

func (o *recordingObserver) Info(context.Context, string, ...observability.Attribute) {}

func (o *recordingObserver) Warn(context.Context, string, ...observability.Attribute) {}

func (o *recordingObserver) Error(_ context.Context, msg string, _ ...observability.Attribute) {
	o.errors = append(o.errors, msg)
}

// TestNew_Validation verifies constructor errors.
func TestNew_Validation(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Error("expected error for nil provider")
	}
	if _, err := New(&mockProvider{}, WithMiddleware(MiddlewareConfig{})); err == nil {
		t.Error("expected error for nil Send middleware")
	}
}

// TestNew_DefaultSettings verifies the default sampling configuration.
func TestNew_DefaultSettings(t *testing.T) {
	c, err := New(&mockProvider{})
	if err != nil {
		t.Fatal(err)
	}
	want := Settings{Model: "gpt-3.5-turbo", Temperature: 0.2, MaxTokens: 500}
	if c.Settings() != want {
		t.Errorf("Settings() = %+v, want %+v", c.Settings(), want)
	}
}

// TestWithSettings verifies overrides and the fallback for empty fields.
func TestWithSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		want     Settings
	}{
		{
			name:     "model only sends temperature zero",
			settings: Settings{Model: "gpt-4o-mini"},
			want:     Settings{Model: "gpt-4o-mini", Temperature: 0, MaxTokens: DefaultMaxTokens},
		},
		{
			name:     "default temperature kept when passed",
			settings: Settings{Temperature: DefaultTemperature},
			want:     DefaultSettings(),
		},
		{
			name:     "all fields",
			settings: Settings{Model: "m", Temperature: 0.7, MaxTokens: 64},
			want:     Settings{Model: "m", Temperature: 0.7, MaxTokens: 64},
		},
		{
			name:     "non-positive max tokens keeps default",
			settings: Settings{Model: "m", Temperature: 1, MaxTokens: -5},
			want:     Settings{Model: "m", Temperature: 1, MaxTokens: DefaultMaxTokens},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockProvider{}
			c, err := New(provider, WithSettings(tt.settings))
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := c.Settings(); got != tt.want {
				t.Errorf("Settings() = %+v, want %+v", got, tt.want)
			}
			c.Complete(context.Background(), "system", "prompt")
			if got := provider.last.GenerationConfig.Temperature; got != tt.want.Temperature {
				t.Errorf("sent temperature = %v, want %v", got, tt.want.Temperature)
			}
		})
	}
}

// TestClient_Complete verifies the request shape and the returned text.
func TestClient_Complete(t *testing.T) {
	provider := &mockProvider{response: &ai.ChatResponse{Content: "Answer: 4"}}
	c, _ := New(provider)

	got := c.Complete(context.Background(), "system", "what is 2+2?")
	if got != "Answer: 4" {
		t.Errorf("Complete() = %q", got)
	}

	req := provider.last
	if req.Model != DefaultModel || req.SystemPrompt != "system" {
		t.Errorf("unexpected request: %+v", req)
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != ai.RoleUser || req.Messages[0].Content != "what is 2+2?" {
		t.Errorf("messages = %+v", req.Messages)
	}
	if req.GenerationConfig == nil || req.GenerationConfig.Temperature != 0.2 || req.GenerationConfig.MaxTokens != 500 {
		t.Errorf("generation config = %+v", req.GenerationConfig)
	}
}

// TestClient_CompleteDegradesOnError verifies a single attempt and an empty result on failure.
func TestClient_CompleteDegradesOnError(t *testing.T) {
	provider := &mockProvider{err: errors.New("401 unauthorized")}
	observer := &recordingObserver{}
	c, _ := New(provider, WithObserver(observer))

	if got := c.Complete(context.Background(), "s", "p"); got != "" {
		t.Errorf("Complete() = %q, want empty", got)
	}
	if provider.calls != 1 {
		t.Errorf("provider called %d times, want 1", provider.calls)
	}
	if len(observer.errors) != 1 {
		t.Errorf("logged %d errors, want 1", len(observer.errors))
	}
	if observer.span == nil || observer.span.status != observability.StatusError || len(observer.span.errs) != 1 {
		t.Errorf("span not marked as failed: %+v", observer.span)
	}
}

// TestClient_CompleteWithoutObserver verifies failures degrade without an observer.
func TestClient_CompleteWithoutObserver(t *testing.T) {
	c, _ := New(&mockProvider{err: errors.New("boom")})
	if got := c.Complete(context.Background(), "s", "p"); got != "" {
		t.Errorf("Complete() = %q, want empty", got)
	}
}

// TestClient_SendNilResponse verifies a provider returning nil without error.
func TestClient_SendNilResponse(t *testing.T) {
	c, _ := New(nilProvider{&mockProvider{}})
	if _, err := c.Send(context.Background(), "s", "p"); err == nil {
		t.Error("expected error for nil response")
	}
}

type nilProvider struct{ *mockProvider }

func (nilProvider) SendMessage(context.Context, ai.ChatRequest) (*ai.ChatResponse, error) {
	return nil, nil
}

// TestClient_ObservabilitySpan verifies the llm.request span on success.
func TestClient_ObservabilitySpan(t *testing.T) {
	observer := &recordingObserver{}
	provider := &mockProvider{response: &ai.ChatResponse{Content: "ok", FinishReason: "stop", Usage: &ai.Usage{TotalTokens: 7}}}
	c, _ := New(provider, WithObserver(observer))

	c.Complete(context.Background(), "s", "p")

	if len(observer.spans) != 1 || observer.spans[0] != observability.SpanLLMRequest {
		t.Fatalf("spans = %v", observer.spans)
	}
	span := observer.span
	if !span.ended || span.status != observability.StatusOK {
		t.Errorf("span ended=%v status=%v", span.ended, span.status)
	}
	found := false
	for _, a := range span.attrs {
		if a.Key == observability.AttrLLMTokensTotal && a.Value == 7 {
			found = true
		}
	}
	if !found {
		t.Errorf("missing token attribute in %+v", span.attrs)
	}
}
