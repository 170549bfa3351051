package engine

import (
	"fmt"
	"sync"

	"github.com/joboneact/mentor/pkg/assistant"
	"github.com/joboneact/mentor/pkg/modeladapter"
	"github.com/joboneact/mentor/pkg/providers/anthropic"
	"github.com/joboneact/mentor/pkg/providers/openai"
)

// ProviderFactory creates a Completer from a Config.
type ProviderFactory func(cfg Config) (modeladapter.Completer, error)

var (
	factoryMu   sync.RWMutex
	factories   = map[string]ProviderFactory{}
	defaultsReg sync.Once
)

func ensureDefaults() {
	defaultsReg.Do(func() {
		factories["openai"] = newOpenAI
		factories["anthropic"] = newAnthropic
	})
}

// RegisterProvider registers a custom provider factory under the given kind.
// It can be called before New to extend the engine with additional providers.
func RegisterProvider(kind string, factory ProviderFactory) {
	ensureDefaults()

	factoryMu.Lock()
	defer factoryMu.Unlock()

	factories[kind] = factory
}

// getFactory returns the factory for the given kind.
func getFactory(kind string) (ProviderFactory, bool) {
	ensureDefaults()

	factoryMu.RLock()
	defer factoryMu.RUnlock()

	f, ok := factories[kind]
	return f, ok
}

func newOpenAI(cfg Config) (modeladapter.Completer, error) {
	a := openai.New(cfg.BaseURL, cfg.APIKey, cfg.Model)
	a.MaxTokens = cfg.MaxTokens
	a.Temperature = cfg.Temperature

	return a, nil
}

func newAnthropic(cfg Config) (modeladapter.Completer, error) {
	a := anthropic.New(cfg.BaseURL, cfg.APIKey, cfg.Model)
	a.MaxTokens = cfg.MaxTokens
	a.Temperature = cfg.Temperature

	return a, nil
}

// New validates cfg, builds the provider for its kind, and returns an
// Assistant bound to it.
func New(cfg Config) (*assistant.Assistant, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	factory, ok := getFactory(cfg.Kind)
	if !ok {
		return nil, &modeladapter.ConfigError{Field: "kind", Msg: fmt.Sprintf("unknown provider kind %q", cfg.Kind)}
	}

	c, err := factory(cfg)
	if err != nil {
		return nil, err
	}

	return assistant.New(assistant.Kind(cfg.Kind), c), nil
}
