package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	calendarService "github.com/KirkDiggler/claytrack/internal/services/calendar"
	fixtureService "github.com/KirkDiggler/claytrack/internal/services/fixture"
	sessionService "github.com/KirkDiggler/claytrack/internal/services/session"
)

// errorResponse is the uniform error shape for every endpoint
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// messageResponse is the shape for plain acknowledgements
type messageResponse struct {
	Message string `json:"message"`
}

// writeJSON sends a JSON response with the given status code
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent at this point; log and move on
		h.logger.Error().Err(err).Msg("failed to encode response")
	}
}

// writeError maps service errors onto HTTP status codes: validation errors
// are 400, unknown identifiers are 404, anything else is a store or
// internal failure and reported as 500 without leaking detail.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case isNotFound(err):
		h.writeJSON(w, http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case isValidation(err):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
	default:
		h.logger.Error().Err(err).Msg("request failed")
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "internal_error",
			Message: "an internal error occurred",
		})
	}
}

// badRequest reports a malformed request body or parameter
func (h *Handler) badRequest(w http.ResponseWriter, message string) {
	h.writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:   "validation_error",
		Message: message,
	})
}

func isNotFound(err error) bool {
	return errors.Is(err, sessionService.ErrSessionNotFound) ||
		errors.Is(err, fixtureService.ErrFixtureNotFound)
}

func isValidation(err error) bool {
	validation := []error{
		sessionService.ErrMissingField,
		sessionService.ErrInvalidDate,
		sessionService.ErrInvalidDiscipline,
		sessionService.ErrInvalidWeather,
		sessionService.ErrEmptyUpdate,
		sessionService.ErrNilInput,
		fixtureService.ErrMissingField,
		fixtureService.ErrInvalidDate,
		fixtureService.ErrInvalidDiscipline,
		fixtureService.ErrEmptyUpdate,
		fixtureService.ErrNilInput,
		calendarService.ErrMissingDateRange,
		calendarService.ErrInvalidDate,
		calendarService.ErrNilInput,
	}
	for _, target := range validation {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
