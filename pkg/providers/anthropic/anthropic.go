// Package anthropic provides a Completer implementation for the Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"

	"github.com/joboneact/mentor/pkg/chats/message"
	"github.com/joboneact/mentor/pkg/modeladapter"
)

const (
	messagesPath = "/v1/messages"
	apiVersion   = "2023-06-01"
)

const (
	// DefaultBaseURL is the production Anthropic API endpoint.
	DefaultBaseURL = "https://api.anthropic.com"
	// DefaultModel is used when neither the adapter nor the call names a model.
	DefaultModel = "claude-3-sonnet-20240229"
	// defaultMaxTokens fills the required max_tokens wire field when the
	// adapter has no explicit limit configured.
	defaultMaxTokens = 500
)

var _ modeladapter.Completer = (*Adapter)(nil)

// Adapter implements modeladapter.Completer for the Anthropic Messages API.
type Adapter struct {
	modeladapter.ModelAdapter
}

// New creates an Adapter configured for the Anthropic API. An empty baseURL
// falls back to DefaultBaseURL; an empty model falls back to DefaultModel per
// call. Auth uses the x-api-key header plus the anthropic-version header,
// not a Bearer scheme.
func New(baseURL, apiKey, model string) *Adapter {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	a := &Adapter{}
	a.BaseURL = baseURL
	a.Auth = modeladapter.Auth{Key: apiKey, Header: "x-api-key"}
	a.Name = model
	a.Headers = map[string]string{
		"anthropic-version": apiVersion,
	}

	return a
}

// Complete sends a conversation to the Anthropic Messages API and returns the
// assistant's reply taken from the first content block whose type is "text".
// A response with no text block is a failure, even if other blocks exist; a
// text block holding an empty string is a valid empty reply.
func (a *Adapter) Complete(ctx context.Context, msgs []message.Message, model string) (message.Message, error) {
	req := a.buildRequest(msgs, model)

	var resp apiResponse
	if err := a.PostJSON(ctx, messagesPath, req, &resp); err != nil {
		return message.Message{}, fmt.Errorf("anthropic: %w", err)
	}

	for _, block := range resp.Content {
		if block.Type == "text" {
			return message.Assistant(block.Text), nil
		}
	}

	return message.Message{}, fmt.Errorf("anthropic: %w", &modeladapter.ParseError{Msg: "response contained no text content"})
}

// --- request types ---

type apiRequest struct {
	Model       string       `json:"model"`
	MaxTokens   int          `json:"max_tokens"`
	Messages    []apiMessage `json:"messages"`
	Temperature *float64     `json:"temperature,omitempty"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// --- response types ---

type apiResponse struct {
	Content []apiContent `json:"content"`
}

type apiContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// --- conversion helpers ---

func (a *Adapter) buildRequest(msgs []message.Message, model string) apiRequest {
	// max_tokens is required at the wire level, so the optional setting must
	// resolve to a concrete value here.
	maxTokens := a.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	req := apiRequest{
		Model:     a.ResolveModel(model, DefaultModel),
		MaxTokens: maxTokens,
		Messages:  make([]apiMessage, len(msgs)),
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
