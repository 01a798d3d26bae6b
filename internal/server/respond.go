package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"gametracker/internal/repository"
	"gametracker/internal/service"
	"gametracker/internal/stats"

	"github.com/rs/zerolog"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type fieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type errorResponse struct {
	Error         string       `json:"error"`
	Fields        []fieldError `json:"fields,omitempty"`
	RemainingDays int          `json:"remaining_days,omitempty"`
}

// writeError maps the domain error taxonomy onto HTTP statuses.
// Validation problems come back field by field so the client can
// highlight the offending input; an active cooldown reports the wait.
func writeError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	var (
		validationErrs stats.ValidationErrors
		cooldownErr    *stats.CooldownActiveError
		storageErr     *repository.StorageError
	)

	switch {
	case errors.As(err, &validationErrs):
		fields := make([]fieldError, len(validationErrs))
		for i, ve := range validationErrs {
			fields[i] = fieldError{Field: ve.Field, Reason: ve.Reason}
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})

	case errors.As(err, &cooldownErr):
		writeJSON(w, http.StatusConflict, errorResponse{
			Error:         cooldownErr.Error(),
			RemainingDays: cooldownErr.RemainingDays,
		})

	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})

	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: service.ErrInvalidCredentials.Error()})

	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrTaskCompletedToday),
		errors.Is(err, service.ErrMissionCompletedThisWeek):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})

	case errors.As(err, &storageErr):
		logger.Error().Err(err).Msg("storage failure")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "temporary storage failure, please retry"})

	default:
		logger.Error().Err(err).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	return dec.Decode(v)
}
