// Package openai provides a Completer implementation for the OpenAI Chat Completions API.
package openai

import (
	"context"
	"fmt"

	"github.com/joboneact/mentor/pkg/chats/message"
	"github.com/joboneact/mentor/pkg/modeladapter"
)

const completionsPath = "/v1/chat/completions"

const (
	// DefaultBaseURL is the production OpenAI API endpoint.
	DefaultBaseURL = "https://api.openai.com"
	// DefaultModel is used when neither the adapter nor the call names a model.
	DefaultModel = "gpt-3.5-turbo"
)

var _ modeladapter.Completer = (*Adapter)(nil)

// Adapter implements modeladapter.Completer for the OpenAI Chat Completions API.
type Adapter struct {
	modeladapter.ModelAdapter
}

// New creates an Adapter configured for the OpenAI API. An empty baseURL falls
// back to DefaultBaseURL; an empty model falls back to DefaultModel per call.
func New(baseURL, apiKey, model string) *Adapter {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	a := &Adapter{}
	a.BaseURL = baseURL
	a.Auth = modeladapter.Auth{Key: apiKey}
	a.Name = model

	return a
}

// Complete sends a conversation to the OpenAI Chat Completions API and returns
// the assistant's reply taken from the first choice.
func (a *Adapter) Complete(ctx context.Context, msgs []message.Message, model string) (message.Message, error) {
	req := a.buildRequest(msgs, model)

	var resp apiResponse
	if err := a.PostJSON(ctx, completionsPath, req, &resp); err != nil {
		return message.Message{}, fmt.Errorf("openai: %w", err)
	}

	if len(resp.Choices) == 0 {
		return message.Message{}, fmt.Errorf("openai: %w", &modeladapter.ParseError{Msg: "response contained no choices"})
	}

	return message.Assistant(resp.Choices[0].Message.Content), nil
}

// --- request types ---

type apiRequest struct {
	Model       string       `json:"model"`
	Messages    []apiMessage `json:"messages"`
	MaxTokens   int          `json:"max_tokens,omitempty"`
	Temperature *float64     `json:"temperature,omitempty"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// --- response types ---

type apiResponse struct {
	Choices []apiChoice `json:"choices"`
}

type apiChoice struct {
	Message      apiMessage `json:"message"`
	FinishReason string     `json:"finish_reason"`
}

// --- conversion helpers ---

func (a *Adapter) buildRequest(msgs []message.Message, model string) apiRequest {
	req := apiRequest{
		Model:     a.ResolveModel(model, DefaultModel),
		Messages:  make([]apiMessage, len(msgs)),
		MaxTokens: a.MaxTokens,
	}

	if a.Temperature != 0 {
		temp := a.Temperature
		req.Temperature = &temp
	}

	for i, m := range msgs {
		req.Messages[i] = apiMessage{Role: m.Role.String(), Content: m.Content}
	}

	return req
}
