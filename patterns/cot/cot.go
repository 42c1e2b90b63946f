package cot

import (
	"context"
	"errors"
	"log/slog"

	"github.com/leofalp/toolreason/core/parse"
	"github.com/leofalp/toolreason/core/prompt"
	"github.com/leofalp/toolreason/internal/utils"
	"github.com/leofalp/toolreason/providers/observability"
	"github.com/leofalp/toolreason/providers/observability/slogobs"
	"github.com/leofalp/toolreason/providers/tool"
)

// Outcome values recorded on the query span.
const (
	OutcomeAnswered     = "answered"
	OutcomeToolApplied  = "tool_applied"
	OutcomeToolFailed   = "tool_failed"
	OutcomeParseFailed  = "invocation_unparsable"
	OutcomeEmptyReply   = "empty_reply"
	OutcomeToolNotFound = "tool_not_found"
)

// Completer sends one prompt to a model and returns the reply text, or "" on
// failure. [client.Client] implements it.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, prompt string) string
}

// Result is the outcome of one query.
type Result struct {
	Query     string `json:"query"`
	Reasoning string `json:"reasoning"`
	ToolUsage string `json:"tool_usage"`
	Answer    string `json:"answer"`
}

// Pattern runs the single-pass reason, act, answer flow. It holds no
// per-query state and is safe for concurrent use.
type Pattern struct {
	completer    Completer
	catalog      *tool.Catalog
	observer     observability.Provider
	systemPrompt string
}

type options struct {
	observer     observability.Provider
	systemPrompt string
}

// Option configures a Pattern.
type Option func(*options)

// WithObserver sets the tracer and logger. The default logs through
// slog.Default().
func WithObserver(observer observability.Provider) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// WithSystemPrompt replaces the system message sent with every request.
func WithSystemPrompt(systemPrompt string) Option {
	return func(o *options) {
		o.systemPrompt = systemPrompt
	}
}

// New builds a Pattern.
//
//	p, err := cot.New(c, builtin.Catalog())
//	result := p.Execute(ctx, "What is the average of 10, 20 and 30?")
func New(completer Completer, catalog *tool.Catalog, opts ...Option) (*Pattern, error) {
	if completer == nil {
		return nil, errors.New("cot: completer is nil")
	}
	if catalog == nil {
		return nil, errors.New("cot: catalog is nil")
	}

	o := &options{systemPrompt: prompt.SystemPrompt}
	for _, opt := range opts {
		opt(o)
	}
	if o.observer == nil {
		o.observer = slogobs.New(slogobs.WithLogger(slog.Default()))
	}

	return &Pattern{
		completer:    completer,
		catalog:      catalog,
		observer:     o.observer,
		systemPrompt: o.systemPrompt,
	}, nil
}

// Catalog returns the tools offered to the model.
func (p *Pattern) Catalog() *tool.Catalog {
	return p.catalog
}

// Execute answers query. It always returns a Result: an unreachable model
// yields empty sections, and a tool call that cannot be parsed, names an
// unknown tool or fails leaves the answer as the model wrote it. Only a
// successful tool call changes the answer, by appending " (Tool result: X)"
// where X is the JSON-encoded tool output.
func (p *Pattern) Execute(ctx context.Context, query string) Result {
	ctx, span := p.observer.StartSpan(ctx, observability.SpanQuery,
		observability.String(observability.AttrQuery, query),
	)
	defer span.End()

	userPrompt := prompt.Build(query, p.catalog.Entries())
	span.SetAttributes(observability.Int(observability.AttrPromptLength, len(userPrompt)))

	raw := p.completer.Complete(ctx, p.systemPrompt, userPrompt)
	span.SetAttributes(observability.Int(observability.AttrResponseLength, len(raw)))

	sections := parse.ExtractSections(raw)
	result := Result{
		Query:     query,
		Reasoning: sections.Reasoning,
		ToolUsage: sections.ToolUsage,
		Answer:    sections.Answer,
	}

	if raw == "" {
		p.finish(span, OutcomeEmptyReply)
		return result
	}

	invocation, err := parse.ExtractInvocation(raw)
	if err != nil {
		p.observer.Warn(ctx, "Ignoring unparsable tool call", observability.Error(err))
		span.RecordError(err)
		p.finish(span, OutcomeParseFailed)
		return result
	}
	if invocation == nil {
		p.finish(span, OutcomeAnswered)
		return result
	}

	span.SetAttributes(observability.String(observability.AttrToolName, invocation.Name))

	t, err := p.catalog.Get(invocation.Name)
	if err != nil {
		p.observer.Warn(ctx, "Model asked for an unknown tool",
			observability.String(observability.AttrToolName, invocation.Name),
			observability.Error(err),
		)
		p.finish(span, OutcomeToolNotFound)
		return result
	}

	output, err := t.Call(ctx, invocation.Args)
	if err != nil {
		p.observer.Warn(ctx, "Tool call failed, answer left unchanged",
			observability.String(observability.AttrToolName, invocation.Name),
			observability.String(observability.AttrToolInput, utils.TruncateStringDefault(invocation.Text)),
			observability.Error(err),
		)
		p.finish(span, OutcomeToolFailed)
		return result
	}

	p.observer.Debug(ctx, "Tool call succeeded",
		observability.String(observability.AttrToolName, invocation.Name),
		observability.String(observability.AttrToolOutput, utils.TruncateStringDefault(output)),
	)
	result.Answer = AppendToolResult(result.Answer, output)
	p.finish(span, OutcomeToolApplied)
	return result
}

func (p *Pattern) finish(span observability.Span, outcome string) {
	span.SetAttributes(observability.String(observability.AttrQueryOutcome, outcome))
	span.SetStatus(observability.StatusOK, outcome)
}

// AppendToolResult appends the tool output to answer in the fixed
// " (Tool result: X)" form.
func AppendToolResult(answer, output string) string {
	return answer + " (Tool result: " + output + ")"
}
