package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/vaidashi/fastfood-api/pkg/errors"
)

func TestBreakerOpensAfterThreshold(t *testing.T) {
	b := New(Config{Name: "payment", FailureThreshold: 2, ResetTimeout: time.Minute})

	b.Failure()
	assert.Equal(t, StateClosed, b.State())

	b.Failure()
	assert.Equal(t, StateOpen, b.State())
	assert.False(t, b.Allow())
}

func TestBreakerHalfOpensAfterTimeout(t *testing.T) {
	b := New(Config{Name: "payment", FailureThreshold: 1, ResetTimeout: time.Second, HalfOpenMaxCalls: 1})

	current := time.Now()
	b.now = func() time.Time { return current }

	b.Failure()
	assert.False(t, b.Allow())

	current = current.Add(2 * time.Second)

	assert.True(t, b.Allow())
	assert.Equal(t, StateHalfOpen, b.State())
	assert.False(t, b.Allow(), "only one trial call in half-open")

	b.Success()
	assert.Equal(t, StateClosed, b.State())
}

func TestBreakerReset(t *testing.T) {
	b := New(Config{FailureThreshold: 1})
	b.Failure()
	b.Reset()

	assert.Equal(t, StateClosed, b.State())
	assert.True(t, b.Allow())
}

func TestExecuteShortCircuits(t *testing.T) {
	b := New(Config{Name: "production", FailureThreshold: 1, ResetTimeout: time.Minute})

	err := b.Execute(context.Background(), func(context.Context) error {
		return apperrors.NewTemporaryError("down")
	})
	assert.Error(t, err)

	called := false
	err = b.Execute(context.Background(), func(context.Context) error {
		called = true
		return nil
	})

	assert.False(t, called)
	assert.ErrorIs(t, err, apperrors.ErrCircuitOpen)
}

func TestExecuteIgnoresNonRetryableErrors(t *testing.T) {
	b := New(Config{FailureThreshold: 1})

	_ = b.Execute(context.Background(), func(context.Context) error {
		return errors.New("bad request")
	})

	assert.Equal(t, StateClosed, b.State())
}
