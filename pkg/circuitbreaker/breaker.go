package circuitbreaker

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/vaidashi/fastfood-api/pkg/errors"
)

// State represents the state of the circuit breaker
type State int

const (
	StateClosed   State = iota // requests flow
	StateHalfOpen              // probing the downstream
	StateOpen                  // requests are short-circuited
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateHalfOpen:
		return "half-open"
	case StateOpen:
		return "open"
	}
	return "unknown"
}

// Config configures a Breaker
type Config struct {
	Name             string
	FailureThreshold int
	ResetTimeout     time.Duration
	HalfOpenMaxCalls int
}

// Breaker guards calls to a single downstream dependency
type Breaker struct {
	cfg Config
	now func() time.Time

	mu              sync.Mutex
	state           State
	failures        int
	halfOpenCalls   int
	lastStateChange time.Time
}

// New creates a closed breaker
func New(cfg Config) *Breaker {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.HalfOpenMaxCalls <= 0 {
		cfg.HalfOpenMaxCalls = 1
	}
	if cfg.ResetTimeout <= 0 {
		cfg.ResetTimeout = 30 * time.Second
	}

	return &Breaker{cfg: cfg, now: time.Now, lastStateChange: time.Now()}
}

// Name returns the dependency name the breaker guards
func (b *Breaker) Name() string {
	return b.cfg.Name
}

// Allow reports whether a call may proceed
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateOpen && b.now().Sub(b.lastStateChange) >= b.cfg.ResetTimeout {
		b.transition(StateHalfOpen)
	}

	switch b.state {
	case StateClosed:
		return true
	case StateHalfOpen:
		b.halfOpenCalls++
		return b.halfOpenCalls <= b.cfg.HalfOpenMaxCalls
	default:
		return false
	}
}

// Success records a successful call
func (b *Breaker) Success() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateHalfOpen {
		b.transition(StateClosed)
	}
	b.failures = 0
}

// Failure records a failed call
func (b *Breaker) Failure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.transition(StateOpen)
		}
	case StateHalfOpen:
		b.transition(StateOpen)
	}
}

// Reset forces the breaker back to closed
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.transition(StateClosed)
	b.failures = 0
}

// State returns the current state
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Execute runs fn when the breaker allows it and records the outcome.
// Non-retryable errors are caller mistakes and do not count as failures.
func (b *Breaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if !b.Allow() {
		return apperrors.NewCircuitOpenError(b.cfg.Name + " circuit is open")
	}

	err := fn(ctx)

	switch {
	case err == nil:
		b.Success()
	case apperrors.IsRetryable(err):
		b.Failure()
	default:
		b.Success()
	}

	return err
}

// Snapshot returns metrics about the breaker
func (b *Breaker) Snapshot() map[string]interface{} {
	b.mu.Lock()
	defer b.mu.Unlock()

	return map[string]interface{}{
		"name":              b.cfg.Name,
		"state":             b.state.String(),
		"failure_count":     b.failures,
		"failure_threshold": b.cfg.FailureThreshold,
		"half_open_calls":   b.halfOpenCalls,
		"reset_timeout":     b.cfg.ResetTimeout.String(),
		"last_state_change": b.lastStateChange,
	}
}

func (b *Breaker) transition(to State) {
	if b.state == to {
		return
	}
	b.state = to
	b.halfOpenCalls = 0
	b.lastStateChange = b.now()
}
