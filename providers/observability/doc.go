// Package observability defines the tracing and structured-logging facade used
// across toolreason, together with the semantic-convention keys for
// attributes, span names and event names.
//
// [Provider] composes [Tracer] and [Logger] into a single injectable
// dependency. An active [Span] travels on a [context.Context] via
// [ContextWithSpan] and is retrieved with [SpanFromContext], so leaf code such
// as tool execution and the HTTP helper can annotate the span of the query
// that triggered it. The slog-backed implementation lives in slogobs.
package observability
