// Package ai defines the provider-agnostic request and response types for
// chat-style language model endpoints, and the [Provider] interface that
// concrete providers such as openai implement.
package ai
