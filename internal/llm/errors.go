package llm

import "fmt"

// ConfigurationError reports a missing or unusable credential.
// It is detected before any network I/O.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// UpstreamError carries a non-2xx response from the model endpoint
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Body)
}

// EmptyResponseError indicates the response held no extractable text
type EmptyResponseError struct{}

func (e *EmptyResponseError) Error() string {
	return "Empty AI response"
}

// MalformedOutputError indicates a schema-constrained call did not yield JSON
type MalformedOutputError struct {
	Text  string
	Cause error
}

func (e *MalformedOutputError) Error() string {
	return "Model returned non-JSON output"
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Cause
}

// TransportError represents a failure to reach the endpoint or read its reply
type TransportError struct {
	Message string
	Cause   error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transport error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("transport error: %s", e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}
