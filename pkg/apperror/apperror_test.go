package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewNotFound("project", "abc"), http.StatusNotFound},
		{"invalid input", NewInvalidInput("missing title", nil), http.StatusBadRequest},
		{"unauthorized", NewUnauthorized("bad password", nil), http.StatusUnauthorized},
		{"permission denied", NewPermissionDenied("admin only"), http.StatusForbidden},
		{"upload failure", NewUpload("provider down", errors.New("timeout")), http.StatusBadGateway},
		{"internal", NewInternal("db gone", nil), http.StatusInternalServerError},
		{"unknown error", errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToHTTPStatus(tt.err))
		})
	}
}

func TestUnwrapSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("get bio: %w", NewNotFound("bio", "singleton"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, http.StatusNotFound, ToHTTPStatus(err))
}

func TestErrorIncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewInternal("saving contact", cause)

	assert.Contains(t, err.Error(), "connection refused")
	assert.Contains(t, err.Error(), "saving contact")
}
