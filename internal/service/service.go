// Package service implements the CV use cases on top of the model dispatcher
// and the normalizer.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/cv-relay/internal/llm"
	"github.com/jonathan/cv-relay/internal/normalize"
	"github.com/jonathan/cv-relay/internal/prompts"
	"github.com/jonathan/cv-relay/internal/schemas"
	"github.com/jonathan/cv-relay/internal/types"
)

const promptFile = "cv.json"

// Timeouts bounds each kind of model call. Zero values defer to the
// dispatcher's configured defaults.
type Timeouts struct {
	// Generate applies to free-text and seed calls
	Generate time.Duration
	// Structured applies to full-CV extract and improve calls
	Structured time.Duration
}

// DefaultTimeouts matches the upstream call budgets
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Generate:   llm.DefaultTimeout,
		Structured: llm.DefaultStructuredTimeout,
	}
}

// Service runs one model call per operation. It holds no per-request state.
type Service struct {
	dispatcher llm.Dispatcher
	timeouts   Timeouts
	logger     zerolog.Logger
}

// New creates a Service
func New(dispatcher llm.Dispatcher, timeouts Timeouts, logger zerolog.Logger) *Service {
	return &Service{
		dispatcher: dispatcher,
		timeouts:   timeouts,
		logger:     logger,
	}
}

// Generate passes a prompt through to the model without a schema
func (s *Service) Generate(ctx context.Context, req types.GenerateRequest) (*types.GenerateResponse, error) {
	resp, err := s.call(ctx, "generate", llm.Request{
		Prompt:  req.Prompt,
		Timeout: s.timeouts.Generate,
	})
	if err != nil {
		return nil, err
	}
	return &types.GenerateResponse{Output: resp.Text}, nil
}

// SeedCV drafts a summary and skill list for a new CV
func (s *Service) SeedCV(ctx context.Context, req types.SeedRequest) (*types.CV, error) {
	user, err := prompts.Render(promptFile, "seed-user", map[string]string{
		"Name":  req.Name,
		"Title": req.Title,
		"Bio":   strings.TrimSpace(req.Bio),
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.call(ctx, "seed-cv", llm.Request{
		System:  prompts.MustGet(promptFile, "seed-system"),
		Prompt:  user,
		Schema:  schemas.Seed(),
		Timeout: s.timeouts.Generate,
	})
	if err != nil {
		return nil, err
	}

	cv := normalize.Seed(req.Name, req.Title, resp.JSON)
	return &cv, nil
}

// ExtractCV turns free text into a normalized CV
func (s *Service) ExtractCV(ctx context.Context, req types.ExtractRequest) (*types.CV, error) {
	user, err := prompts.Render(promptFile, "extract-user", map[string]string{
		"FreeText": req.FreeText,
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.call(ctx, "extract-cv", llm.Request{
		System:  prompts.MustGet(promptFile, "extract-system"),
		Prompt:  user,
		Schema:  schemas.CV(),
		Timeout: s.timeouts.Structured,
	})
	if err != nil {
		return nil, err
	}

	cv := normalize.CV(resp.JSON)
	return &cv, nil
}

// ImproveCV asks the model to edit an existing CV, optionally tailored to a job
func (s *Service) ImproveCV(ctx context.Context, req types.ImproveRequest) (*types.CV, error) {
	current, err := json.Marshal(req.CurrentCV)
	if err != nil {
		return nil, fmt.Errorf("failed to encode current CV: %w", err)
	}

	user, err := prompts.Render(promptFile, "improve-user", map[string]string{
		"CurrentCV": string(current),
		"JobText":   req.JobText,
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.call(ctx, "improve-cv", llm.Request{
		System:  prompts.MustGet(promptFile, "improve-system"),
		Prompt:  user,
		Schema:  schemas.CV(),
		Timeout: s.timeouts.Structured,
	})
	if err != nil {
		return nil, err
	}

	cv := normalize.CV(resp.JSON)
	return &cv, nil
}

func (s *Service) call(ctx context.Context, op string, req llm.Request) (*llm.Response, error) {
	start := time.Now()
	resp, err := s.dispatcher.Generate(ctx, req)
	event := s.logger.Info()
	if err != nil {
		event = s.logger.Warn().Err(err)
	}
	event.Str("op", op).Dur("elapsed", time.Since(start)).Msg("model call")
	return resp, err
}
