package ai

import (
	"errors"

	"github.com/cradlekit/cradle/internal/profile"
)

// Config represents AI configuration.
type Config struct {
	Enabled bool

	LLM LLMConfig
}

// LLMConfig represents LLM configuration. All providers are reached
// through their OpenAI-compatible chat completion endpoints.
type LLMConfig struct {
	Provider    string  // gemini, openai, ollama
	Model       string  // gemini-2.0-flash
	APIKey      string
	BaseURL     string
	MaxTokens   int     // default: 1024
	Temperature float32 // default: 0
}

// NewConfigFromProfile creates AI config from profile.
func NewConfigFromProfile(p *profile.Profile) *Config {
	cfg := &Config{
		Enabled: p.IsAIEnabled(),
	}

	if !cfg.Enabled {
		return cfg
	}

	cfg.LLM = LLMConfig{
		Provider:  p.AIProvider,
		Model:     p.AIModel,
		MaxTokens: 1024,
		// Structured extraction wants deterministic output.
		Temperature: 0,
	}

	switch p.AIProvider {
	case "gemini":
		cfg.LLM.APIKey = p.AIAPIKey
		cfg.LLM.BaseURL = p.AIBaseURL
	case "openai":
		cfg.LLM.APIKey = p.AIOpenAIAPIKey
		cfg.LLM.BaseURL = p.AIOpenAIBaseURL
	case "ollama":
		cfg.LLM.BaseURL = p.AIOllamaBaseURL
	}

	return cfg
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}

	if c.LLM.Provider == "" {
		return errors.New("LLM provider is required")
	}
	if c.LLM.Provider != "ollama" && c.LLM.APIKey == "" {
		return errors.New("LLM API key is required")
	}
	if c.LLM.Model == "" {
		return errors.New("LLM model is required")
	}

	return nil
}
