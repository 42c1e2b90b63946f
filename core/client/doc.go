// Package client is the single I/O boundary between the reasoning pattern and
// a model provider.
//
// A [Client] sends one system prompt and one user prompt with fixed sampling
// [Settings] through a chain of middlewares (observability, timeout, logging)
// down to an [ai.Provider]. [Client.Complete] never fails: any provider error
// is logged and turned into an empty reply, because downstream parsing is
// defined to degrade gracefully on empty text. [Client.Send] exposes the
// error for callers that want it.
package client
