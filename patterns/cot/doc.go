// Package cot answers a natural-language query with one chain-of-thought
// model call and at most one local tool invocation.
//
// [New] wraps a completer (usually a [client.Client]) and a tool catalog.
// [Pattern.Execute] builds the prompt, asks the model once, extracts the
// Reasoning / Tool Usage / Answer sections and, when the reply contains a
// TOOL: name(args) call naming a catalog tool, runs that tool and appends its
// output to the answer. Failures along the way degrade the result instead of
// returning an error.
package cot
