package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(NewTemporaryError("down")))
	assert.True(t, IsRetryable(NewTimeoutError("slow")))
	assert.True(t, IsRetryable(fmt.Errorf("wrapped: %w", ErrTemporaryFailure)))

	assert.False(t, IsRetryable(NewCircuitOpenError("open")))
	assert.False(t, IsRetryable(NewDownstreamError("payment", http.StatusConflict)))
	assert.False(t, IsRetryable(errors.New("boom")))
}

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NewTimeoutError("slow"), http.StatusGatewayTimeout},
		{NewDownstreamError("production", http.StatusCreated), http.StatusBadGateway},
		{fmt.Errorf("order 1: %w", ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("field: %w", ErrInvalidInput), http.StatusBadRequest},
		{ErrConflict, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, StatusCode(c.err), c.err.Error())
	}
}

func TestAppErrorMessage(t *testing.T) {
	err := NewDownstreamError("whatsapp", http.StatusUnauthorized)

	assert.Equal(t, "whatsapp service returned status 401", err.Error())
	assert.ErrorIs(t, err, ErrDownstream)
	assert.Equal(t, "timeout", NewAppError(ErrTimeout, "", 0, true).Error())
}
