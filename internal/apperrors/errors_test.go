package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation sentinel", fmt.Errorf("bad input: %w", ErrValidation), http.StatusBadRequest},
		{"not found helper", NewNotFoundError("currency XYZ not found"), http.StatusNotFound},
		{"limit reached", fmt.Errorf("compare: %w", ErrLimitReached), http.StatusConflict},
		{"duplicate", ErrDuplicate, http.StatusConflict},
		{"upstream helper", NewUpstreamError("stripe", errors.New("boom")), http.StatusBadGateway},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("service: %w", NewValidationError("unknown currency"))
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "unknown currency")

	upstream := NewUpstreamError("paypal", errors.New("timeout"))
	assert.ErrorIs(t, upstream, ErrUpstream)
	assert.Equal(t, "paypal request failed: timeout", upstream.Message)
}
