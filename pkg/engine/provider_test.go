package engine_test

import (
	"context"
	"testing"

	"github.com/joboneact/mentor/pkg/chats/message"
	"github.com/joboneact/mentor/pkg/engine"
	"github.com/joboneact/mentor/pkg/modeladapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_BuildsAssistantForKnownKinds(t *testing.T) {
	for _, kind := range []string{"openai", "anthropic"} {
		cfg := engine.Config{Kind: kind, APIKey: "k", MaxTokens: 500, Temperature: 0.7}

		a, err := engine.New(cfg)
		require.NoError(t, err, "kind %s", kind)
		assert.NotNil(t, a)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := engine.New(engine.Config{})

	var cfgErr *modeladapter.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "kind", cfgErr.Field)
}

func TestNew_UnknownKind(t *testing.T) {
	cfg := engine.Config{Kind: "carrier-pigeon", APIKey: "k"}

	_, err := engine.New(cfg)

	var cfgErr *modeladapter.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "kind", cfgErr.Field)
	assert.Contains(t, cfgErr.Msg, "carrier-pigeon")
}

type stubCompleter struct{}

func (stubCompleter) Complete(_ context.Context, _ []message.Message, _ string) (message.Message, error) {
	return message.Assistant("stub"), nil
}

func TestRegisterProvider_CustomKind(t *testing.T) {
	engine.RegisterProvider("stub", func(_ engine.Config) (modeladapter.Completer, error) {
		return stubCompleter{}, nil
	})

	a, err := engine.New(engine.Config{Kind: "stub", APIKey: "k"})
	require.NoError(t, err)

	reply, err := a.Explain(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "stub", reply)
}
