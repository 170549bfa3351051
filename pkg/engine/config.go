package engine

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joboneact/mentor/pkg/modeladapter"
	"gopkg.in/yaml.v3"
)

// Defaults applied when the environment or config file leaves a value unset.
const (
	DefaultMaxTokens   = 500
	DefaultTemperature = 0.7
)

// Config describes the single provider the assistant talks to.
type Config struct {
	Kind        string  `yaml:"kind"`
	BaseURL     string  `yaml:"base_url"`
	APIKey      string  `yaml:"api_key"` //nolint:gosec // configuration field, not a hardcoded secret
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// FromEnv builds a Config from environment variables. OPENAI_API_KEY selects
// the openai provider; otherwise ANTHROPIC_API_KEY selects anthropic.
// DEFAULT_AI_MODEL, MAX_TOKENS, and TEMPERATURE override the defaults;
// unparsable numeric values fall back silently.
func FromEnv() Config {
	cfg := Config{
		Model:       os.Getenv("DEFAULT_AI_MODEL"),
		MaxTokens:   intEnv("MAX_TOKENS", DefaultMaxTokens),
		Temperature: floatEnv("TEMPERATURE", DefaultTemperature),
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.Kind = "openai"
		cfg.APIKey = key
		return cfg
	}

	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		cfg.Kind = "anthropic"
		cfg.APIKey = key
	}

	return cfg
}

// LoadConfig reads a YAML file and returns a Config. Environment variables
// referenced as ${VAR} or $VAR in the YAML are expanded before parsing, so
// API keys can be kept in the environment (e.g. loaded from a .env file)
// rather than committed in the config.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("engine: load config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	cfg := Config{
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
	}
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("engine: parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is complete and in range. The
// adapters themselves stay permissive; range checks live only here.
func (c Config) Validate() error {
	if c.Kind == "" {
		return &modeladapter.ConfigError{Field: "kind", Msg: "no provider configured; set OPENAI_API_KEY or ANTHROPIC_API_KEY"}
	}
	if c.APIKey == "" {
		return &modeladapter.ConfigError{Field: "api_key", Msg: "api key is required"}
	}
	if c.Temperature < 0 || c.Temperature > 1 {
		return &modeladapter.ConfigError{Field: "temperature", Msg: "must be between 0.0 and 1.0"}
	}
	if c.MaxTokens < 0 {
		return &modeladapter.ConfigError{Field: "max_tokens", Msg: "must not be negative"}
	}
	return nil
}

func intEnv(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func floatEnv(name string, fallback float64) float64 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
