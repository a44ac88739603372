package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/gla-tools/internal/domain"
	"github.com/osse101/gla-tools/internal/logger"
	"github.com/osse101/gla-tools/internal/metrics"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err under opName and maps it to a client response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		metrics.ValidationFailures.WithLabelValues(FailureKindInternal).Inc()
		log.Error(opName, "error", err)
	} else {
		metrics.ValidationFailures.WithLabelValues(FailureKindDomain).Inc()
		log.Warn(opName, "error", err)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act on. Anything unrecognised is a 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidRange):
		return http.StatusBadRequest, ErrMsgInvalidRangeError
	case errors.Is(err, domain.ErrParse):
		return http.StatusBadRequest, ErrMsgNotANumberError
	case errors.Is(err, domain.ErrUnknownSlot):
		return http.StatusBadRequest, ErrMsgUnknownSlotError
	case errors.Is(err, domain.ErrUnknownTier):
		return http.StatusBadRequest, ErrMsgUnknownTierError
	case errors.Is(err, domain.ErrUnknownCrystalType):
		return http.StatusBadRequest, ErrMsgUnknownCrystalError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
