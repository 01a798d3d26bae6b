package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gametracker/internal/repository"
	"gametracker/internal/service"
	"gametracker/internal/stats"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteErrorValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	err := stats.ValidationErrors{
		{Field: "headshot_percent", Reason: "must be a number"},
		{Field: "matches_played", Reason: "is required"},
	}

	writeError(rec, zerolog.Nop(), err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeErrorBody(t, rec)
	require.Len(t, body.Fields, 2)
	assert.Equal(t, "headshot_percent", body.Fields[0].Field)
	assert.Equal(t, "must be a number", body.Fields[0].Reason)
}

func TestWriteErrorCooldown(t *testing.T) {
	rec := httptest.NewRecorder()

	writeError(rec, zerolog.Nop(), &stats.CooldownActiveError{RemainingDays: 4})

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, 4, body.RemainingDays)
	assert.Equal(t, "cooldown active: come back in 4 days", body.Error)
}

func TestWriteErrorStatuses(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", repository.ErrNotFound, http.StatusNotFound},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"email taken", service.ErrEmailTaken, http.StatusConflict},
		{"task done today", service.ErrTaskCompletedToday, http.StatusConflict},
		{"mission done this week", service.ErrMissionCompletedThisWeek, http.StatusConflict},
		{"storage failure", &repository.StorageError{Op: "insert", Err: errors.New("disk full")}, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			writeError(rec, zerolog.Nop(), tc.err)

			assert.Equal(t, tc.want, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestWriteErrorStorageDetailHidden(t *testing.T) {
	rec := httptest.NewRecorder()

	writeError(rec, zerolog.Nop(), &repository.StorageError{Op: "insert stat log", Err: errors.New("database is locked")})

	body := decodeErrorBody(t, rec)
	assert.NotContains(t, body.Error, "locked")
	assert.Contains(t, body.Error, "retry")
}
