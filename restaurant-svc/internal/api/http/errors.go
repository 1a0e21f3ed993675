package httpapi

import (
	"errors"
	"net/http"

	"savory-delights/restaurant-svc/internal/domain"

	"github.com/rs/zerolog/log"
)

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSlotUnavailable), errors.Is(err, domain.ErrCapacityExceeded), errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	message := err.Error()

	switch status {
	case http.StatusInternalServerError:
		log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
		message = "internal server error"
	case http.StatusServiceUnavailable:
		log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("store unavailable")
		message = "service temporarily unavailable, retry later"
	}

	writeJSON(w, status, errorResponse{Error: message, Reason: domain.Reason(err)})
}
