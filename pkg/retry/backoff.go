package retry

import (
	"math"
	"math/rand"
	"time"
)

// BackoffStrategy returns how long to wait after a failed attempt
type BackoffStrategy interface {
	NextBackoff(attempt int) time.Duration
}

// ConstantBackoff waits the same interval after every attempt
type ConstantBackoff struct {
	Interval time.Duration
}

func (b ConstantBackoff) NextBackoff(int) time.Duration {
	return b.Interval
}

// ExponentialBackoff grows the wait by Multiplier per attempt, adds up to
// JitterFactor of random jitter and caps the result at MaxInterval
type ExponentialBackoff struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	JitterFactor    float64
}

func (b ExponentialBackoff) NextBackoff(attempt int) time.Duration {
	wait := float64(b.InitialInterval) * math.Pow(b.Multiplier, float64(attempt-1))

	if b.JitterFactor > 0 {
		wait += rand.Float64() * b.JitterFactor * wait
	}

	if b.MaxInterval > 0 && wait > float64(b.MaxInterval) {
		wait = float64(b.MaxInterval)
	}

	return time.Duration(wait)
}

// DefaultExponentialBackoff is the backoff used by the outbound HTTP clients
func DefaultExponentialBackoff() ExponentialBackoff {
	return ExponentialBackoff{
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     2 * time.Second,
		Multiplier:      2,
		JitterFactor:    0.2,
	}
}
