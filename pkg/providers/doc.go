// Package providers groups the concrete LLM provider adapters.
//
// It is organized into sub-packages:
//   - [github.com/joboneact/mentor/pkg/providers/openai] — OpenAI Chat Completions adapter
//   - [github.com/joboneact/mentor/pkg/providers/anthropic] — Anthropic Messages adapter
//
// Each adapter owns one vendor's wire format, auth convention, and endpoint,
// and implements the modeladapter.Completer contract. This package itself
// contains no code.
package providers
