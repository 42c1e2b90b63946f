package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/leofalp/toolreason/core/client"
	"github.com/leofalp/toolreason/core/client/middleware"
	"github.com/leofalp/toolreason/internal/config"
	"github.com/leofalp/toolreason/internal/console"
	"github.com/leofalp/toolreason/patterns/cot"
	"github.com/leofalp/toolreason/providers/ai"
	"github.com/leofalp/toolreason/providers/ai/openai"
	"github.com/leofalp/toolreason/providers/observability/slogobs"
	"github.com/leofalp/toolreason/providers/tool/builtin"
)

type app struct {
	config  *config.Config
	pattern *cot.Pattern
	console *console.Console
}

// newApp wires config, logging, the model client, the orchestrator and the
// console for one command invocation.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	observer := slogobs.New(
		slogobs.WithLevel(slogobs.ParseLogLevel(cfg.LogLevel)),
		slogobs.WithFormat(slogobs.ParseFormat(cfg.LogFormat)),
		slogobs.WithOutput(cmd.ErrOrStderr()),
	)

	var provider ai.Provider = openai.New()
	if cfg.APIKey != "" {
		provider = provider.WithAPIKey(cfg.APIKey)
	}
	provider = provider.WithBaseURL(cfg.BaseURL)

	var middlewares []client.MiddlewareConfig
	if mode := strings.ToLower(strings.TrimSpace(cfg.RequestLogging)); mode != "off" {
		middlewares = append(middlewares, middleware.NewLoggingMiddleware(observer.Logger(), middleware.ParseLogLevel(mode)))
	}
	middlewares = append(middlewares, middleware.NewTimeoutMiddleware(cfg.Timeout))

	c, err := client.New(provider,
		client.WithSettings(cfg.ClientSettings()),
		client.WithObserver(observer),
		client.WithMiddleware(middlewares...),
	)
	if err != nil {
		return nil, err
	}

	pattern, err := cot.New(c, builtin.Catalog(), cot.WithObserver(observer))
	if err != nil {
		return nil, err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	return &app{
		config:  cfg,
		pattern: pattern,
		console: console.New(pattern,
			console.WithInput(cmd.InOrStdin()),
			console.WithOutput(cmd.OutOrStdout()),
			console.WithJSON(asJSON),
		),
	}, nil
}
