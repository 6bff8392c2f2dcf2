package service

import (
	"encoding/json"
	"net/http"
)

// Error codes carried in the error envelope.
const (
	codeBadRequest       = "bad_request"
	codeSplitFailed      = "split_failed"
	codeInternalMismatch = "internal_mismatch"
	codeOCRFailed        = "ocr_failed"
	codeOCRUnavailable   = "ocr_unavailable"
)

// APIError is the error payload inside the envelope.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorEnvelope wraps every non-2xx response body.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("Failed to encode response", "error", err)
	}
}

func (s *Service) writeError(w http.ResponseWriter, status int, code, message string) {
	s.writeJSON(w, status, ErrorEnvelope{Error: APIError{Code: code, Message: message}})
}
