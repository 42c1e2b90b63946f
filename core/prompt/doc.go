// Package prompt renders the chain-of-thought prompt sent to the model.
//
// [Build] lists the available tools, embeds the user's query and asks the
// model to answer in the Reasoning: / Tool Usage: / Answer: layout, writing a
// tool call as TOOL: name(args). The output depends only on its inputs.
package prompt
