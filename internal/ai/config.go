package ai

import (
	"os"
	"strconv"
)

// Config holds all configuration for the completion client.
type Config struct {
	Endpoint    string
	Model       string
	APIKey      string
	TimeoutMs   int
	Temperature float64
	MaxTokens   int
	LogCalls    bool
}

// DefaultConfig returns a Config with sensible defaults for an
// OpenAI-compatible chat completions endpoint.
func DefaultConfig() Config {
	return Config{
		Endpoint:    "https://api.openai.com",
		Model:       "gpt-4o-mini",
		TimeoutMs:   60000,
		Temperature: 0,
		MaxTokens:   2048,
		LogCalls:    false,
	}
}

// LoadConfig reads completion client configuration from environment
// variables, falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("INKSTONE_AI_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("INKSTONE_AI_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("INKSTONE_AI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("INKSTONE_AI_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("INKSTONE_AI_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			cfg.Temperature = f
		}
	}
	if v := os.Getenv("INKSTONE_AI_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("INKSTONE_AI_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
