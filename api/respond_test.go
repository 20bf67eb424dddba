package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/errs"
)

func TestWriteErrorApiErr(t *testing.T) {
	r := NewResponder(zerolog.Nop())
	rec := httptest.NewRecorder()

	r.WriteError(rec, errs.NewMissingRequiredFieldError("title"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "title", body["field"])
	assert.Contains(t, body["details"], "title")
}

func TestWriteErrorWrappedApiErrKeepsStatus(t *testing.T) {
	r := NewResponder(zerolog.Nop())
	rec := httptest.NewRecorder()

	// Database errors carrying a "not found" cause map to 404.
	r.WriteError(rec, wrapDatabaseError("find", "project", errors.New("record not found")))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWriteErrorUnexpectedErrorIs500(t *testing.T) {
	r := NewResponder(zerolog.Nop())
	rec := httptest.NewRecorder()

	r.WriteError(rec, errors.New("something exploded"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	// Internal details are not leaked to clients.
	assert.NotContains(t, rec.Body.String(), "exploded")
}

func TestWriteJSON(t *testing.T) {
	r := NewResponder(zerolog.Nop())
	rec := httptest.NewRecorder()

	r.WriteJSON(rec, map[string]int{"likes": 7})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"likes":7}`, rec.Body.String())
}
