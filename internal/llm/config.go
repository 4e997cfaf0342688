package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the model used to grade answers.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini" or "mock".
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout bounds a single grading request including its retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
	// BaseURL, when set, points the client at any OpenAI-compatible
	// endpoint (local inference servers included).
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// RetryConfig shapes the backoff applied to transient provider failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig favors the cheapest model of each provider; grading
// verdicts are short and do not need a frontier model.
func DefaultConfig() Config {
	return Config{
		Provider: "anthropic",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

func getenv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// ConfigFromEnv layers AIQUEST_* environment variables over the
// defaults. Unset variables leave the default in place.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	getenv(&cfg.Provider, "AIQUEST_LLM_PROVIDER")
	getenv(&cfg.Anthropic.APIKey, "AIQUEST_ANTHROPIC_API_KEY")
	getenv(&cfg.Anthropic.Model, "AIQUEST_ANTHROPIC_MODEL")
	getenv(&cfg.OpenAI.APIKey, "AIQUEST_OPENAI_API_KEY")
	getenv(&cfg.OpenAI.Model, "AIQUEST_OPENAI_MODEL")
	getenv(&cfg.OpenAI.BaseURL, "AIQUEST_OPENAI_BASE_URL")
	getenv(&cfg.Gemini.APIKey, "AIQUEST_GEMINI_API_KEY")
	getenv(&cfg.Gemini.Model, "AIQUEST_GEMINI_MODEL")

	return cfg
}

// DiscoverConfig checks the providers' conventional key variables and
// returns a Config for the first one set, in Gemini, OpenAI, Anthropic
// order. The second return is false when no key is present.
func DiscoverConfig() (Config, bool) {
	candidates := []struct {
		env      string
		provider string
		key      func(c *Config) *string
	}{
		{"GEMINI_API_KEY", "gemini", func(c *Config) *string { return &c.Gemini.APIKey }},
		{"OPENAI_API_KEY", "openai", func(c *Config) *string { return &c.OpenAI.APIKey }},
		{"ANTHROPIC_API_KEY", "anthropic", func(c *Config) *string { return &c.Anthropic.APIKey }},
	}

	for _, p := range candidates {
		k := os.Getenv(p.env)
		if k == "" {
			continue
		}
		cfg := DefaultConfig()
		cfg.Provider = p.provider
		*p.key(&cfg) = k
		return cfg, true
	}
	return Config{}, false
}

// Validate rejects configs whose selected provider is missing its key.
func (c Config) Validate() error {
	keys := map[string]struct {
		envVar string
		value  string
	}{
		"anthropic": {"AIQUEST_ANTHROPIC_API_KEY", c.Anthropic.APIKey},
		"openai":    {"AIQUEST_OPENAI_API_KEY", c.OpenAI.APIKey},
		"gemini":    {"AIQUEST_GEMINI_API_KEY", c.Gemini.APIKey},
	}

	if c.Provider == "mock" {
		return nil
	}
	need, ok := keys[c.Provider]
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if need.value == "" {
		return fmt.Errorf("%s is required for the %s provider", need.envVar, c.Provider)
	}
	return nil
}
