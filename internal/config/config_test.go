package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-relay/internal/llm"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_BASE_URL", "GENERATE_TIMEOUT",
		"STRUCTURED_TIMEOUT", "PORT", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL", "LOG_PRETTY",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"model": "gemini-1.5-pro",
		"port": 9000,
		"generate_timeout": "10s",
		"structured_timeout": 20,
		"allowed_origins": ["https://cv.example.com"],
		"log_pretty": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-1.5-pro", cfg.Model)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, Duration(10*time.Second), cfg.GenerateTimeout)
	assert.Equal(t, Duration(20*time.Second), cfg.StructuredTimeout)
	assert.Equal(t, []string{"https://cv.example.com"}, cfg.AllowedOrigins)
	assert.True(t, cfg.LogPretty)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{"port": `)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	path := writeConfig(t, `{"generate_timeout": "soon"}`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("PORT", "7070")
	t.Setenv("STRUCTURED_TIMEOUT", "1m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("LOG_PRETTY", "true")

	cfg := FromEnv()
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, Duration(time.Minute), cfg.StructuredTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.True(t, cfg.LogPretty)
	assert.Empty(t, cfg.Model)
	assert.Zero(t, cfg.GenerateTimeout)
}

func TestFromEnv_IgnoresUnparseableValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "eighty")
	t.Setenv("GENERATE_TIMEOUT", "later")

	cfg := FromEnv()
	assert.Zero(t, cfg.Port)
	assert.Zero(t, cfg.GenerateTimeout)
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `{"model": "file-model", "port": 9000, "log_level": "debug"}`)
	t.Setenv("GEMINI_MODEL", "env-model")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-model", cfg.Model)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, Defaults().BaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultAllowedOrigins, cfg.AllowedOrigins)
}

func TestLoad_DefaultsOnly(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), *cfg)
	assert.Empty(t, cfg.APIKey)
}

func TestLoad_InvalidLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "loud")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "port zero", mutate: func(c *Config) { c.Port = 0 }, wantErr: "port"},
		{name: "port too large", mutate: func(c *Config) { c.Port = 70000 }, wantErr: "port"},
		{name: "negative timeout", mutate: func(c *Config) { c.GenerateTimeout = Duration(-time.Second) }, wantErr: "generate_timeout"},
		{name: "negative structured timeout", mutate: func(c *Config) { c.StructuredTimeout = Duration(-time.Second) }, wantErr: "structured_timeout"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "chatty" }, wantErr: "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_MergeWithDefaults(t *testing.T) {
	cfg := Config{Model: "custom", Port: 1234}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "custom", merged.Model)
	assert.Equal(t, 1234, merged.Port)
	assert.Equal(t, Defaults().GenerateTimeout, merged.GenerateTimeout)
	assert.Equal(t, "info", merged.LogLevel)
	// original untouched
	assert.Empty(t, cfg.BaseURL)
}

func TestConfig_LLM(t *testing.T) {
	cfg := Defaults()
	cfg.APIKey = "k"
	cfg.GenerateTimeout = Duration(5 * time.Second)

	llmCfg := cfg.LLM()
	assert.Equal(t, "k", llmCfg.APIKey)
	assert.Equal(t, cfg.Model, llmCfg.Model)
	assert.Equal(t, 5*time.Second, llmCfg.Timeout)
	assert.Equal(t, time.Duration(cfg.StructuredTimeout), llmCfg.StructuredTimeout)
}

func TestConfig_LLM_ZeroValuesKeepDefaults(t *testing.T) {
	cfg := Config{APIKey: "k", Model: "gemini-1.5-pro"}

	llmCfg := cfg.LLM()
	assert.Equal(t, "k", llmCfg.APIKey)
	assert.Equal(t, "gemini-1.5-pro", llmCfg.Model)
	assert.Equal(t, llm.DefaultBaseURL, llmCfg.BaseURL)
	assert.Equal(t, llm.DefaultTimeout, llmCfg.Timeout)
	assert.Equal(t, llm.DefaultStructuredTimeout, llmCfg.StructuredTimeout)

	assert.Equal(t, llm.DefaultModel, (&Config{}).LLM().Model)
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(45 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"45s"`, string(data))
}
