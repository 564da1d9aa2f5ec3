package types

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate reports failing fields by their JSON names
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// GenerateRequest is the body of POST /api/generate
type GenerateRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// GenerateResponse is the response of POST /api/generate
type GenerateResponse struct {
	Output string `json:"output"`
}

// SeedRequest is the body of POST /api/seed-cv
type SeedRequest struct {
	Name  string `json:"name" validate:"required"`
	Title string `json:"title,omitempty"`
	Bio   string `json:"bio,omitempty"`
}

// ExtractRequest is the body of POST /api/extract-cv
type ExtractRequest struct {
	FreeText string `json:"free_text" validate:"required"`
}

// ImproveRequest is the body of POST /api/improve-cv
type ImproveRequest struct {
	CurrentCV map[string]any `json:"current_cv" validate:"required"`
	JobText   string         `json:"job_text,omitempty"`
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the SeedRequest using the validator.
func (r *SeedRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the ExtractRequest using the validator.
func (r *ExtractRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the ImproveRequest using the validator.
func (r *ImproveRequest) Validate() error {
	return validate.Struct(r)
}
