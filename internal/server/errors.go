package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cv-relay/internal/llm"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// validationError converts a request Validate() failure into an ErrValidation
// naming the first offending field.
func validationError(err error) *ErrValidation {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return &ErrValidation{Field: fe.Field(), Message: "is required"}
		}
		return &ErrValidation{Field: fe.Field(), Message: fmt.Sprintf("failed the '%s' check", fe.Tag())}
	}
	return &ErrValidation{Message: err.Error()}
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validation *ErrValidation
		configErr  *llm.ConfigurationError
		upstream   *llm.UpstreamError
		empty      *llm.EmptyResponseError
		malformed  *llm.MalformedOutputError
		transport  *llm.TransportError
	)

	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &configErr):
		return http.StatusInternalServerError
	case errors.As(err, &upstream):
		if upstream.StatusCode < 400 || upstream.StatusCode > 599 {
			return http.StatusBadGateway
		}
		return upstream.StatusCode
	case errors.As(err, &empty), errors.As(err, &malformed), errors.As(err, &transport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorMessage returns the client-facing message for an error. Upstream
// bodies are forwarded verbatim; configuration errors name the missing setting.
func ErrorMessage(err error) string {
	var (
		configErr *llm.ConfigurationError
		upstream  *llm.UpstreamError
	)

	switch {
	case err == nil:
		return "internal error"
	case errors.As(err, &configErr):
		return configErr.Message
	case errors.As(err, &upstream):
		return upstream.Body
	default:
		return err.Error()
	}
}
