package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"housingready/pkg/types"

	"github.com/sirupsen/logrus"
)

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func (s *Service) renderJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

func (s *Service) renderError(w http.ResponseWriter, status int, message string) {
	s.renderJSON(w, status, errorResponse{Error: message})
}

// handleError logs err with the request and writes the status its kind maps
// to. Validation messages are safe to echo back; everything else gets the
// handler's fixed message.
func (s *Service) handleError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := statusFor(err)

	entry := s.logger.WithError(err).WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"status": status,
	})

	switch status {
	case http.StatusBadRequest:
		entry.Info("rejected request")
		s.renderError(w, status, validationMessage(err))
		return
	case http.StatusNotFound:
		entry.Info("resource not found")
		s.renderError(w, status, notFoundMessage(err))
		return
	case http.StatusConflict:
		entry.Warn("constraint violation")
		s.renderError(w, status, conflictMessage(err))
		return
	}

	entry.Error(message)
	s.internalServerError(w, message)
}

func (s *Service) internalServerError(w http.ResponseWriter, message string) {
	s.renderError(w, http.StatusInternalServerError, message)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, types.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrConstraintViolation):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func validationMessage(err error) string {
	return strings.TrimPrefix(err.Error(), types.ErrValidation.Error()+": ")
}

func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, types.ErrClientNotFound):
		return "Client not found"
	case errors.Is(err, types.ErrDocumentNotFound):
		return "Document not found"
	}
	return "Not found"
}

func conflictMessage(err error) string {
	if errors.Is(err, types.ErrDuplicateClarityID) {
		return "Clarity ID already in use"
	}
	return "Conflicting record"
}

func (s *Service) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.renderError(w, http.StatusNotFound, "Not found")
}

func (s *Service) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.renderError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
