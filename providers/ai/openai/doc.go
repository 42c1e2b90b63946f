// Package openai implements [ai.Provider] over the chat completions endpoint
// of OpenAI and OpenAI-compatible servers.
//
// [New] reads OPENAI_API_KEY and OPENAI_API_BASE_URL from the environment;
// [OpenAIProvider.WithAPIKey] and [OpenAIProvider.WithBaseURL] override them.
package openai
