package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Request is a single generation call
type Request struct {
	// System is the system instruction
	System string
	// Prompt is the user turn
	Prompt string
	// Schema, when set, constrains the output to JSON of this shape
	Schema map[string]any
	// Timeout overrides the configured per-call timeout
	Timeout time.Duration
}

// Response holds the extracted model output
type Response struct {
	// Text is the first candidate's first text part
	Text string
	// JSON is Text decoded, set only for schema-constrained calls
	JSON any
}

// Dispatcher performs one blocking generation call per request
type Dispatcher interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

// GeminiClient implements Dispatcher over the Gemini REST API
type GeminiClient struct {
	config     *Config
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option customizes a GeminiClient
type Option func(*GeminiClient)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *GeminiClient) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for per-call diagnostics
func WithLogger(logger zerolog.Logger) Option {
	return func(c *GeminiClient) {
		c.logger = logger
	}
}

// NewGeminiClient creates a new Gemini client. A missing API key is not
// an error here; every call reports it instead.
func NewGeminiClient(config *Config, opts ...Option) *GeminiClient {
	if config == nil {
		config = DefaultConfig()
	}
	c := &GeminiClient{
		config:     config,
		httpClient: &http.Client{},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the configured model name
func (c *GeminiClient) Model() string {
	return c.config.Model
}

// Generate sends one request to the model and extracts its output.
// No retries are attempted.
func (c *GeminiClient) Generate(ctx context.Context, req Request) (*Response, error) {
	if c.config.APIKey == "" {
		return nil, &ConfigurationError{Message: "GEMINI_API_KEY not set"}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout(req))
	defer cancel()

	payload, err := json.Marshal(newGenerateRequest(req.System, req.Prompt, req.Schema))
	if err != nil {
		return nil, &TransportError{Message: "failed to encode request", Cause: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{Message: "failed to build request", Cause: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.config.APIKey)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Message: "failed to call model endpoint", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Message: "failed to read response", Cause: err}
	}

	c.logger.Debug().
		Str("model", c.config.Model).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Bool("structured", req.Schema != nil).
		Msg("model call finished")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &TransportError{Message: "failed to decode response envelope", Cause: err}
	}

	text := envelope.FirstText()
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyResponseError{}
	}

	out := &Response{Text: text}
	if req.Schema == nil {
		return out, nil
	}

	cleaned := CleanJSONBlock(text)
	if err := json.Unmarshal([]byte(cleaned), &out.JSON); err != nil {
		return nil, &MalformedOutputError{Text: text, Cause: err}
	}
	return out, nil
}

func (c *GeminiClient) timeout(req Request) time.Duration {
	if req.Timeout > 0 {
		return req.Timeout
	}
	if req.Schema != nil && c.config.StructuredTimeout > 0 {
		return c.config.StructuredTimeout
	}
	if c.config.Timeout > 0 {
		return c.config.Timeout
	}
	return DefaultTimeout
}
