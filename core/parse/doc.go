// Package parse recovers structure from free-form model output.
//
// A reply is expected to follow the Reasoning: / Tool Usage: / Answer: layout
// and may contain a tool call written as TOOL: name(args). Models do not always
// comply, so extraction is best-effort: [ExtractSections] falls back to
// documented defaults instead of failing, and [ExtractInvocation] reports "no
// invocation" when nothing usable is found.
//
// Tool arguments are read with a restricted literal grammar (numbers, quoted
// strings and numeric lists). Nothing in model text is ever evaluated.
//
// [ParseStringAs] converts a string into any Go type, repairing malformed JSON
// with jsonrepair before giving up.
package parse
