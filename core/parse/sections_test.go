package parse

import "testing"

// TestExtractSections verifies label-to-label extraction and the documented defaults.
func TestExtractSections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Sections
	}{
		{
			name: "all labels in order",
			raw: "Reasoning: The mean of 10 and 20 is their sum halved.\n" +
				"Tool Usage: TOOL: calculate_average([10, 20])\n" +
				"Answer: The average is 15.",
			want: Sections{
				Reasoning: "The mean of 10 and 20 is their sum halved.",
				ToolUsage: "TOOL: calculate_average([10, 20])",
				Answer:    "The average is 15.",
			},
		},
		{
			name: "no labels",
			raw:  "I am not sure what you mean.",
			want: Sections{Reasoning: "", ToolUsage: NoToolUsage, Answer: ""},
		},
		{
			name: "empty input",
			raw:  "",
			want: Sections{Reasoning: "", ToolUsage: NoToolUsage, Answer: ""},
		},
		{
			name: "multi-line reasoning",
			raw:  "Reasoning:\n1. First step.\n2. Second step.\n\nTool Usage: None\nAnswer: 42",
			want: Sections{Reasoning: "1. First step.\n2. Second step.", ToolUsage: "None", Answer: "42"},
		},
		{
			name: "labels out of order",
			raw:  "Answer: yes\nReasoning: because\nTool Usage: None",
			want: Sections{Reasoning: "because", ToolUsage: "None", Answer: "yes"},
		},
		{
			name: "missing tool usage",
			raw:  "Reasoning: simple\nAnswer: 4",
			want: Sections{Reasoning: "simple", ToolUsage: NoToolUsage, Answer: "4"},
		},
		{
			name: "empty tool usage",
			raw:  "Reasoning: r\nTool Usage:\nAnswer: a",
			want: Sections{Reasoning: "r", ToolUsage: NoToolUsage, Answer: "a"},
		},
		{
			name: "only answer",
			raw:  "Answer:   spaced out   ",
			want: Sections{Reasoning: "", ToolUsage: NoToolUsage, Answer: "spaced out"},
		},
		{
			name: "labels are case-sensitive",
			raw:  "reasoning: lower\nANSWER: upper",
			want: Sections{Reasoning: "", ToolUsage: NoToolUsage, Answer: ""},
		},
		{
			name: "first occurrence of a label wins",
			raw:  "Answer: first\nAnswer: second",
			want: Sections{Reasoning: "", ToolUsage: NoToolUsage, Answer: "first"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractSections(tt.raw); got != tt.want {
				t.Errorf("ExtractSections() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestExtractSections_Idempotent verifies identical input gives identical output.
func TestExtractSections_Idempotent(t *testing.T) {
	raw := "Reasoning: x\nTool Usage: TOOL: count_words('a b')\nAnswer: 2"
	first := ExtractSections(raw)
	for i := 0; i < 3; i++ {
		if got := ExtractSections(raw); got != first {
			t.Fatalf("run %d: %+v != %+v", i, got, first)
		}
	}
}
