package retry

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/vaidashi/fastfood-api/pkg/errors"
	"github.com/vaidashi/fastfood-api/pkg/logger"
)

// Func is an operation that may be attempted more than once
type Func func(ctx context.Context) error

// Policy controls how an operation is retried
type Policy struct {
	MaxAttempts int
	Backoff     BackoffStrategy
	Logger      logger.Logger

	// ShouldRetry decides whether an error deserves another attempt.
	// Defaults to errors.IsRetryable.
	ShouldRetry func(error) bool
}

// Do runs fn until it succeeds, returns a non-retryable error, the
// attempts run out or ctx is cancelled
func Do(ctx context.Context, p *Policy, fn Func) error {
	attempts := p.MaxAttempts

	if attempts < 1 {
		attempts = 1
	}

	shouldRetry := p.ShouldRetry

	if shouldRetry == nil {
		shouldRetry = apperrors.IsRetryable
	}

	log := p.Logger

	if log == nil {
		log = logger.NewNop()
	}

	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("retry cancelled: %w", err)
		}

		err := fn(ctx)

		if err == nil {
			return nil
		}

		lastErr = err

		if !shouldRetry(err) {
			log.Debug("Giving up on non-retryable error", "error", err, "attempt", attempt)
			return err
		}

		if attempt == attempts {
			break
		}

		wait := p.Backoff.NextBackoff(attempt)

		log.Info("Retrying after error",
			"error", err,
			"attempt", attempt,
			"maxAttempts", attempts,
			"backoff", wait)

		timer := time.NewTimer(wait)

		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("retry cancelled during backoff: %w", ctx.Err())
		}
	}

	return fmt.Errorf("all %d attempts failed: %w", attempts, lastErr)
}
