// Package config provides configuration loading and validation for the relay.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/cv-relay/internal/llm"
)

// DefaultAllowedOrigins are the local frontend dev servers
var DefaultAllowedOrigins = []string{"http://localhost:5173", "http://localhost:3000"}

// Config represents the relay configuration. Values come from the
// environment, then an optional JSON file, then built-in defaults.
type Config struct {
	// Upstream
	APIKey            string   `json:"api_key,omitempty"`            // Gemini API key
	Model             string   `json:"model,omitempty"`              // Gemini model name
	BaseURL           string   `json:"base_url,omitempty"`           // Gemini REST API root
	GenerateTimeout   Duration `json:"generate_timeout,omitempty"`   // Free-text and seed call budget
	StructuredTimeout Duration `json:"structured_timeout,omitempty"` // Extract and improve call budget

	// HTTP
	Port           int      `json:"port,omitempty"`            // Port to listen on
	AllowedOrigins []string `json:"allowed_origins,omitempty"` // CORS allow-list

	// Logging
	LogLevel  string `json:"log_level,omitempty"`  // zerolog level name
	LogPretty bool   `json:"log_pretty,omitempty"` // Human-readable console output
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Model:             llm.DefaultModel,
		BaseURL:           llm.DefaultBaseURL,
		GenerateTimeout:   Duration(llm.DefaultTimeout),
		StructuredTimeout: Duration(llm.DefaultStructuredTimeout),
		Port:              8080,
		AllowedOrigins:    append([]string(nil), DefaultAllowedOrigins...),
		LogLevel:          "info",
	}
}

// FromEnv reads the configuration from environment variables.
// Unset variables leave their fields zero.
func FromEnv() Config {
	return Config{
		APIKey:            getEnvString("GEMINI_API_KEY", ""),
		Model:             getEnvString("GEMINI_MODEL", ""),
		BaseURL:           getEnvString("GEMINI_BASE_URL", ""),
		GenerateTimeout:   Duration(getEnvDuration("GENERATE_TIMEOUT", 0)),
		StructuredTimeout: Duration(getEnvDuration("STRUCTURED_TIMEOUT", 0)),
		Port:              getEnvInt("PORT", 0),
		AllowedOrigins:    parseList(getEnvString("CORS_ALLOWED_ORIGINS", "")),
		LogLevel:          getEnvString("LOG_LEVEL", ""),
		LogPretty:         getEnvBool("LOG_PRETTY", false),
	}
}

// Load builds the effective configuration: environment first, then the
// JSON file at path (if any), then defaults.
func Load(path string) (*Config, error) {
	cfg := FromEnv()

	if path != "" {
		file, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = cfg.MergeWithDefaults(*file)
	}

	cfg = cfg.MergeWithDefaults(Defaults())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// A missing API key is allowed; requests report it individually.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535, got %d", c.Port)
	}
	if c.GenerateTimeout < 0 {
		return fmt.Errorf("config error: 'generate_timeout' must be non-negative")
	}
	if c.StructuredTimeout < 0 {
		return fmt.Errorf("config error: 'structured_timeout' must be non-negative")
	}
	if c.LogLevel != "" {
		if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("config error: invalid 'log_level' %q", c.LogLevel)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.GenerateTimeout == 0 {
		result.GenerateTimeout = defaults.GenerateTimeout
	}
	if result.StructuredTimeout == 0 {
		result.StructuredTimeout = defaults.StructuredTimeout
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if len(result.AllowedOrigins) == 0 {
		result.AllowedOrigins = defaults.AllowedOrigins
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Bool fields: true wins from either side
	result.LogPretty = result.LogPretty || defaults.LogPretty

	return result
}

// LLM returns the dispatcher configuration, carrying the injected API key.
// Empty fields keep the dispatcher defaults.
func (c *Config) LLM() *llm.Config {
	cfg := llm.DefaultConfig().WithAPIKey(c.APIKey)
	if c.Model != "" {
		cfg = cfg.WithModel(c.Model)
	}
	if c.BaseURL != "" {
		cfg.BaseURL = c.BaseURL
	}
	if c.GenerateTimeout > 0 {
		cfg.Timeout = time.Duration(c.GenerateTimeout)
	}
	if c.StructuredTimeout > 0 {
		cfg.StructuredTimeout = time.Duration(c.StructuredTimeout)
	}
	return cfg
}
