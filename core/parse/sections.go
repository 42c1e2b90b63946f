package parse

import "strings"

// Section labels, matched case-sensitively.
const (
	LabelReasoning = "Reasoning:"
	LabelToolUsage = "Tool Usage:"
	LabelAnswer    = "Answer:"
)

// NoToolUsage is reported when a reply has no usable Tool Usage section.
const NoToolUsage = "None"

var labels = []string{LabelReasoning, LabelToolUsage, LabelAnswer}

// Sections holds the three labelled parts of a model reply.
type Sections struct {
	Reasoning string
	ToolUsage string
	Answer    string
}

// ExtractSections splits raw into its labelled sections. Each section starts
// after the first occurrence of its label and runs to the nearest following
// label of any kind, or to the end of the text, so labels may appear in any
// order. A missing section yields "" (NoToolUsage for Tool Usage), as does a
// Tool Usage section with nothing in it.
func ExtractSections(raw string) Sections {
	sections := Sections{
		Reasoning: section(raw, LabelReasoning),
		ToolUsage: section(raw, LabelToolUsage),
		Answer:    section(raw, LabelAnswer),
	}
	if sections.ToolUsage == "" {
		sections.ToolUsage = NoToolUsage
	}
	return sections
}

func section(raw, label string) string {
	idx := strings.Index(raw, label)
	if idx < 0 {
		return ""
	}
	body := raw[idx+len(label):]

	end := len(body)
	for _, next := range labels {
		if i := strings.Index(body, next); i >= 0 && i < end {
			end = i
		}
	}
	return strings.TrimSpace(body[:end])
}
