package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(NewUnauthorizedError("invalid password")))
	assert.False(t, IsUnauthorized(NewBadRequestError("nope")))
	assert.False(t, IsUnauthorized(errors.New("unauthorized")))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFound("project")))
	// Database errors carrying a not-found cause classify the same way.
	assert.True(t, IsNotFound(NewDatabaseError("find", "project", errors.New("record not found"))))
	assert.False(t, IsNotFound(NewDatabaseError("find", "project", errors.New("connection refused"))))
}

func TestNewDatabaseErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		cause      error
		wantStatus int
	}{
		{"duplicate key", errors.New(`duplicate key value violates unique constraint "projects_pkey"`), http.StatusConflict},
		{"foreign key", errors.New("insert or update violates foreign key constraint"), http.StatusBadRequest},
		{"not found", errors.New("record not found"), http.StatusNotFound},
		{"connection", errors.New("connection refused"), http.StatusServiceUnavailable},
		{"anything else", errors.New("syntax error"), http.StatusInternalServerError},
		{"nil cause", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := NewDatabaseError("find", "project", tt.cause)
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
		})
	}
}

func TestNewAlreadyExistsSentinel(t *testing.T) {
	err := NewAlreadyExists("certificate")
	assert.Equal(t, http.StatusConflict, err.StatusCode)
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.ErrorIs(t, NewDatabaseError("create", "certificate", errors.New("duplicate key")), ErrAlreadyExists)
}
