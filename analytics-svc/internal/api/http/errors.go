package httpapi

import (
	"errors"
	"net/http"

	"savory-delights/analytics-svc/internal/domain"

	"github.com/rs/zerolog/log"
)

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, reason := http.StatusInternalServerError, "internal_error"
	message := "internal server error"

	switch {
	case errors.Is(err, domain.ErrInvalidDate):
		status, reason, message = http.StatusBadRequest, "invalid_date", err.Error()
	case errors.Is(err, domain.ErrInvalidLimit):
		status, reason, message = http.StatusBadRequest, "invalid_limit", err.Error()
	case errors.Is(err, domain.ErrValidation):
		status, reason, message = http.StatusBadRequest, "validation_error", err.Error()
	case errors.Is(err, domain.ErrStoreUnavailable):
		status, reason, message = http.StatusServiceUnavailable, "store_unavailable", "service temporarily unavailable, retry later"
		log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("store unavailable")
	default:
		log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
	}

	writeJSON(w, status, errorResponse{Error: message, Reason: reason})
}
