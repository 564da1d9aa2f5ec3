// Package llm dispatches prompts to the Gemini generateContent endpoint.
package llm

import (
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the Gemini REST API root
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	// DefaultModel is the model used when none is configured
	DefaultModel = "gemini-2.0-flash"
	// DefaultTimeout bounds free-text calls
	DefaultTimeout = 30 * time.Second
	// DefaultStructuredTimeout bounds schema-constrained CV calls
	DefaultStructuredTimeout = 45 * time.Second
)

// Config holds everything the dispatcher needs. The API key is injected
// here once; the client never reads the environment.
type Config struct {
	APIKey            string
	BaseURL           string
	Model             string
	Timeout           time.Duration
	StructuredTimeout time.Duration
}

// DefaultConfig returns the default Gemini configuration without a key
func DefaultConfig() *Config {
	return &Config{
		BaseURL:           DefaultBaseURL,
		Model:             DefaultModel,
		Timeout:           DefaultTimeout,
		StructuredTimeout: DefaultStructuredTimeout,
	}
}

// WithAPIKey returns a copy of the config carrying the given key
func (c *Config) WithAPIKey(apiKey string) *Config {
	newConfig := *c
	newConfig.APIKey = apiKey
	return &newConfig
}

// WithModel returns a copy of the config using the given model
func (c *Config) WithModel(model string) *Config {
	newConfig := *c
	newConfig.Model = model
	return &newConfig
}

// endpoint returns the generateContent URL for the configured model
func (c *Config) endpoint() string {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	model := c.Model
	if model == "" {
		model = DefaultModel
	}
	return strings.TrimRight(base, "/") + "/models/" + model + ":generateContent"
}
