package prompt

import (
	"strings"

	"github.com/leofalp/toolreason/providers/tool"
)

// SystemPrompt is the system message sent with every request.
const SystemPrompt = "You are a helpful assistant that solves problems step by step."

// ToolCallExample is the sample invocation shown to the model.
const ToolCallExample = "TOOL: calculate_average([10, 20])"

// Build renders the user prompt for query. Tools are listed in the order of
// entries. The query is embedded as-is between double quotes.
func Build(query string, entries []tool.Entry) string {
	var b strings.Builder

	b.WriteString("You are an AI assistant that helps solve problems by thinking step by step.\n")
	b.WriteString("You have access to the following tools:\n\n")
	if len(entries) == 0 {
		b.WriteString("(no tools available)\n")
	}
	for _, e := range entries {
		b.WriteString("- ")
		b.WriteString(e.Name)
		b.WriteString("(")
		b.WriteString(e.Parameters)
		b.WriteString(")")
		if e.Description != "" {
			b.WriteString(": ")
			b.WriteString(e.Description)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nFor the query: \"")
	b.WriteString(query)
	b.WriteString("\"\n\n")

	b.WriteString("1. Think through the problem step by step\n")
	b.WriteString("2. Determine if you need to use any tools\n")
	b.WriteString("3. If you need to use a tool, specify which tool and what parameters to use in this format:\n")
	b.WriteString("   TOOL: <tool_name>(<parameters>)\n")
	b.WriteString("   For example: " + ToolCallExample + "\n")
	b.WriteString("4. Provide your final answer\n\n")

	b.WriteString("Your response should be structured as follows:\n")
	b.WriteString("Reasoning: <your step-by-step reasoning>\n")
	b.WriteString("Tool Usage: <tool name and parameters if needed, otherwise 'None'>\n")
	b.WriteString("Answer: <your final answer>\n")

	return b.String()
}
