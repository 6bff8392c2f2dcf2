package service

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/s2112257hs/split-it/internal/models"
	"github.com/s2112257hs/split-it/internal/receipt"
)

// handleOCR accepts a multipart form with a file field "image", runs text
// extraction on it and returns the parsed line items. The raw OCR text is
// never exposed to the client.
func (s *Service) handleOCR(w http.ResponseWriter, r *http.Request) {
	if s.maxUploadBytes > 0 && r.ContentLength > s.maxUploadBytes {
		s.writeError(w, http.StatusBadRequest, codeBadRequest,
			fmt.Sprintf("Uploaded file exceeds the %d byte limit.", s.maxUploadBytes))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	file, header, err := r.FormFile("image")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, http.StatusBadRequest, codeBadRequest,
				fmt.Sprintf("Uploaded file exceeds the %d byte limit.", s.maxUploadBytes))
			return
		}
		s.writeError(w, http.StatusBadRequest, codeBadRequest, "Missing file field 'image'.")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		s.writeError(w, http.StatusBadRequest, codeBadRequest, "No file provided in 'image'.")
		return
	}

	image, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, codeBadRequest, "Failed to read uploaded file.")
		return
	}
	if len(image) == 0 {
		s.writeError(w, http.StatusBadRequest, codeBadRequest, "Uploaded file is empty.")
		return
	}

	if s.extractor == nil {
		s.metrics.OCRRequest("unavailable")
		s.writeError(w, http.StatusServiceUnavailable, codeOCRUnavailable, "OCR is not configured.")
		return
	}

	text, err := s.extractor.ExtractText(r.Context(), image)
	if err != nil {
		s.logger.Error("OCR extraction failed", "error", err, "image_bytes", len(image))
		s.metrics.OCRRequest("failed")
		s.writeError(w, http.StatusInternalServerError, codeOCRFailed, "OCR failed.")
		return
	}
	s.metrics.OCRRequest("ok")

	parsed := receipt.ExtractFromText(text)
	s.metrics.ReceiptParsed(len(parsed))

	items := make([]models.Item, len(parsed))
	for i, it := range parsed {
		items[i] = models.Item{
			ID:          fmt.Sprintf("i%d", i),
			Description: it.Description,
			PriceCents:  it.PriceCents,
		}
	}

	s.writeJSON(w, http.StatusOK, models.OCRResponse{Items: items, Currency: "USD"})
}
