package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "not found",
			err:      NotFound("contact %s not found", "abc"),
			wantCode: http.StatusNotFound,
			wantMsg:  "contact abc not found",
		},
		{
			name:     "conflict",
			err:      Conflict("email already in use"),
			wantCode: http.StatusConflict,
			wantMsg:  "email already in use",
		},
		{
			name:     "bad request",
			err:      BadRequest("due date must be a future date"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "due date must be a future date",
		},
		{
			name:     "internal",
			err:      Internal("failed to list contacts"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "failed to list contacts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestStatusCode(t *testing.T) {
	t.Run("taxonomy error", func(t *testing.T) {
		assert.Equal(t, http.StatusConflict, StatusCode(Conflict("duplicate")))
	})

	t.Run("wrapped taxonomy error", func(t *testing.T) {
		err := fmt.Errorf("saving contact: %w", NotFound("contact missing"))
		assert.Equal(t, http.StatusNotFound, StatusCode(err))
	})

	t.Run("non-taxonomy error defaults to 500", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
	})
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("gone")))
	assert.False(t, IsNotFound(Conflict("dup")))
	assert.False(t, IsNotFound(errors.New("boom")))
}
