package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/jonathan/cv-relay/internal/types"
)

// validatable is implemented by every request body type
type validatable interface {
	Validate() error
}

// decode reads a JSON body into dst and validates it
func decode(w http.ResponseWriter, r *http.Request, dst validatable) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return &ErrValidation{Message: "Invalid request body: " + err.Error()}
	}
	if err := dst.Validate(); err != nil {
		return validationError(err)
	}
	return nil
}

// handleError maps err to its status and writes {"error": msg}
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)

	logger := zerolog.Ctx(r.Context())
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).Int("status", status).Str("path", r.URL.Path).Msg("request failed")

	s.errorResponse(w, status, ErrorMessage(err))
}

// handleGenerate passes a free-text prompt through to the model
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateRequest
	if err := decode(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	resp, err := s.service.Generate(r.Context(), req)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleSeedCV drafts a starter CV from a name, title and bio
func (s *Server) handleSeedCV(w http.ResponseWriter, r *http.Request) {
	var req types.SeedRequest
	if err := decode(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	cv, err := s.service.SeedCV(r.Context(), req)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, cv)
}

// handleExtractCV structures free-form resume text into a CV
func (s *Server) handleExtractCV(w http.ResponseWriter, r *http.Request) {
	var req types.ExtractRequest
	if err := decode(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	cv, err := s.service.ExtractCV(r.Context(), req)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, cv)
}

// handleImproveCV rewrites an existing CV, optionally for a job description
func (s *Server) handleImproveCV(w http.ResponseWriter, r *http.Request) {
	var req types.ImproveRequest
	if err := decode(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	cv, err := s.service.ImproveCV(r.Context(), req)
	if err != nil {
		s.handleError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, cv)
}
