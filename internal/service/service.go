// Package service implements the HTTP handlers for the Split-It API.
package service

import (
	"log/slog"
	"net/http"

	"github.com/s2112257hs/split-it/internal/metrics"
	"github.com/s2112257hs/split-it/internal/ocr"
)

// Service holds the dependencies shared by all API handlers.
type Service struct {
	logger         *slog.Logger
	extractor      ocr.TextExtractor
	metrics        *metrics.Metrics
	maxUploadBytes int64
}

// New creates a Service. extractor may be nil when OCR is not configured;
// the OCR endpoint then answers 503 instead of failing at startup.
func New(logger *slog.Logger, extractor ocr.TextExtractor, m *metrics.Metrics, maxUploadBytes int64) *Service {
	return &Service{
		logger:         logger,
		extractor:      extractor,
		metrics:        m,
		maxUploadBytes: maxUploadBytes,
	}
}

// Register mounts the API routes on mux.
func (s *Service) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/ocr", s.handleOCR)
	mux.HandleFunc("POST /api/calculate", s.handleCalculate)
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
