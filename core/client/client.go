package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/leofalp/toolreason/providers/ai"
	"github.com/leofalp/toolreason/providers/observability"
)

// Default sampling settings: low but nonzero temperature and a bounded reply.
const (
	DefaultModel       = "gpt-3.5-turbo"
	DefaultTemperature = 0.2
	DefaultMaxTokens   = 500
)

// Settings is the fixed sampling configuration sent with every request.
type Settings struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// DefaultSettings returns gpt-3.5-turbo at temperature 0.2 with 500 max tokens.
func DefaultSettings() Settings {
	return Settings{
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
}

// Client sends prompts to a provider through a middleware chain.
// It holds no per-request state and is safe for concurrent use.
type Client struct {
	provider ai.Provider
	settings Settings
	observer observability.Provider
	send     SendFunc
}

// ClientOptions holds the configuration applied by [Option] functions.
type ClientOptions struct {
	Settings     Settings
	Observer     observability.Provider
	ProviderName string
	Middlewares  []MiddlewareConfig
}

// Option configures a Client.
type Option func(*ClientOptions)

// WithSettings replaces the sampling settings. An empty Model or a
// non-positive MaxTokens keeps its default. Temperature is always taken from
// settings, since 0 is a valid temperature; pass DefaultTemperature to keep it.
func WithSettings(settings Settings) Option {
	return func(o *ClientOptions) {
		if settings.Model != "" {
			o.Settings.Model = settings.Model
		}
		if settings.MaxTokens > 0 {
			o.Settings.MaxTokens = settings.MaxTokens
		}
		o.Settings.Temperature = settings.Temperature
	}
}

// WithObserver enables tracing and logging. Failed calls are logged at error
// level through it.
func WithObserver(observer observability.Provider) Option {
	return func(o *ClientOptions) {
		o.Observer = observer
	}
}

// WithProviderName labels spans with the provider name (default "openai").
func WithProviderName(name string) Option {
	return func(o *ClientOptions) {
		o.ProviderName = name
	}
}

// WithMiddleware appends middlewares to the chain. The first one given is the
// outermost wrapper.
func WithMiddleware(middlewares ...MiddlewareConfig) Option {
	return func(o *ClientOptions) {
		o.Middlewares = append(o.Middlewares, middlewares...)
	}
}

// New builds a Client over provider.
//
//	c, err := client.New(openai.New(),
//	    client.WithObserver(slogobs.New()),
//	    client.WithMiddleware(middleware.NewTimeoutMiddleware(30*time.Second)),
//	)
func New(provider ai.Provider, opts ...Option) (*Client, error) {
	if provider == nil {
		return nil, errors.New("client: provider is nil")
	}

	options := &ClientOptions{
		Settings:     DefaultSettings(),
		ProviderName: "openai",
	}
	for _, opt := range opts {
		opt(options)
	}

	for i, mw := range options.Middlewares {
		if mw.Send == nil {
			return nil, fmt.Errorf("client: middleware %d has a nil Send", i)
		}
	}

	middlewares := options.Middlewares
	if options.Observer != nil {
		middlewares = append([]MiddlewareConfig{NewObservabilityMiddleware(options.Observer, options.ProviderName)}, middlewares...)
	}

	return &Client{
		provider: provider,
		settings: options.Settings,
		observer: options.Observer,
		send:     buildSendChain(provider, middlewares),
	}, nil
}

// Settings returns the sampling settings in use.
func (c *Client) Settings() Settings {
	return c.settings
}

// Send makes one attempt to answer prompt under systemPrompt.
func (c *Client) Send(ctx context.Context, systemPrompt, prompt string) (*ai.ChatResponse, error) {
	request := ai.ChatRequest{
		Model:        c.settings.Model,
		SystemPrompt: systemPrompt,
		Messages:     []ai.Message{{Role: ai.RoleUser, Content: prompt}},
		GenerationConfig: &ai.GenerationConfig{
			Temperature: c.settings.Temperature,
			MaxTokens:   c.settings.MaxTokens,
		},
	}

	response, err := c.send(ctx, request)
	if err != nil {
		return nil, err
	}
	if response == nil {
		return nil, errors.New("client: provider returned no response")
	}
	return response, nil
}

// Complete returns the model's reply text, or "" if the call failed for any
// reason. Failures are logged at error level; no retry is attempted.
func (c *Client) Complete(ctx context.Context, systemPrompt, prompt string) string {
	response, err := c.Send(ctx, systemPrompt, prompt)
	if err != nil {
		if c.observer != nil {
			c.observer.Error(ctx, "Model request failed, continuing with an empty response",
				observability.Error(err),
				observability.String(observability.AttrLLMModel, c.settings.Model),
			)
		} else {
			slog.ErrorContext(ctx, "Model request failed, continuing with an empty response",
				"error", err.Error(), "model", c.settings.Model)
		}
		return ""
	}
	return response.Content
}
