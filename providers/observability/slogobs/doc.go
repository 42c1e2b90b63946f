// Package slogobs implements observability.Provider on top of log/slog.
//
// Spans are not exported anywhere; their start, events, errors and end are
// written as structured log records tagged with a span id, which is enough to
// follow one query through prompt rendering, the model call and the tool call.
// The [Handler] renders records in compact, pretty or json format.
package slogobs
