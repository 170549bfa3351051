// Package assistant provides a task-oriented facade over a chat completion provider.
//
// An Assistant is bound to one provider at construction and exposes three
// convenience operations — Explain, DebugCode, GenerateCode — that build a
// task-specific prompt and delegate it as a single completion call. It holds
// no conversation state and adds no failure modes of its own.
package assistant

import (
	"context"
	"fmt"

	"github.com/joboneact/mentor/pkg/chats/message"
	"github.com/joboneact/mentor/pkg/modeladapter"
	"github.com/joboneact/mentor/pkg/providers/anthropic"
	"github.com/joboneact/mentor/pkg/providers/openai"
)

// Kind identifies the prompt-shaping convention of the bound provider.
type Kind string

const (
	KindOpenAI    Kind = "openai"
	KindAnthropic Kind = "anthropic"
)

// Assistant builds task-specific prompts and sends them through a single
// completion provider chosen at construction. It is immutable after creation
// and safe for concurrent use.
type Assistant struct {
	completer modeladapter.Completer
	kind      Kind
}

// New creates an Assistant over the given provider. The kind controls prompt
// shaping: OpenAI-style providers receive a system+user exchange, while
// Anthropic-style providers receive a single user message with the
// instruction prefixed. Unknown kinds shape like OpenAI.
func New(kind Kind, c modeladapter.Completer) *Assistant {
	return &Assistant{completer: c, kind: kind}
}

// NewOpenAI creates an Assistant bound to the production OpenAI API.
func NewOpenAI(apiKey string) *Assistant {
	return New(KindOpenAI, openai.New("", apiKey, ""))
}

// NewAnthropic creates an Assistant bound to the production Anthropic API.
func NewAnthropic(apiKey string) *Assistant {
	return New(KindAnthropic, anthropic.New("", apiKey, ""))
}

// Explain asks for a clear explanation of a programming concept.
func (a *Assistant) Explain(ctx context.Context, topic string) (string, error) {
	instruction := "You are an expert programmer who explains concepts clearly with practical examples."
	prompt := fmt.Sprintf("Explain this programming concept clearly and concisely with examples: %s", topic)

	return a.complete(ctx, instruction, prompt)
}

// DebugCode asks for an explanation of a failure and a corrected version of
// the code.
func (a *Assistant) DebugCode(ctx context.Context, code, errText string) (string, error) {
	instruction := "You are an expert who helps debug code. Provide clear explanations and corrected code."
	prompt := fmt.Sprintf(
		"Help debug this code. Code:\n```\n%s\n```\nError: %s\n\nPlease explain the issue and provide a fix.",
		code, errText,
	)

	return a.complete(ctx, instruction, prompt)
}

// GenerateCode asks for clean, idiomatic code matching a description.
func (a *Assistant) GenerateCode(ctx context.Context, description string) (string, error) {
	instruction := "You are an expert who writes clean, idiomatic code. Always include proper error handling and comments."
	prompt := fmt.Sprintf(
		"Generate code for the following requirement: %s\n\nPlease provide clean, idiomatic code with comments.",
		description,
	)

	return a.complete(ctx, instruction, prompt)
}

// complete shapes the instruction and prompt for the provider kind and issues
// one completion call. Failures from the provider pass through untranslated.
func (a *Assistant) complete(ctx context.Context, instruction, prompt string) (string, error) {
	var msgs []message.Message

	// Anthropic-style providers do not take a separate system turn here; the
	// instruction rides in front of the user prompt instead.
	switch a.kind {
	case KindAnthropic:
		msgs = []message.Message{message.User(instruction + " " + prompt)}
	default:
		msgs = []message.Message{message.System(instruction), message.User(prompt)}
	}

	reply, err := a.completer.Complete(ctx, msgs, "")
	if err != nil {
		return "", err
	}

	return reply.Content, nil
}
