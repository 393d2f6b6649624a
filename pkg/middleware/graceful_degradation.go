package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/vaidashi/fastfood-api/pkg/circuitbreaker"
	"github.com/vaidashi/fastfood-api/pkg/logger"
)

// DegradationConfig configures the GracefulDegradation middleware
type DegradationConfig struct {
	FailureThreshold int
	ResetTimeout     time.Duration
	HalfOpenMaxCalls int
	// EssentialPrefixes are never rejected and never count towards the breaker
	EssentialPrefixes []string
}

// GracefulDegradation sheds non-essential traffic while the service keeps
// answering with server errors
type GracefulDegradation struct {
	breaker    *circuitbreaker.Breaker
	essentials []string
	logger     logger.Logger
}

// NewGracefulDegradation creates a new graceful degradation middleware
func NewGracefulDegradation(cfg DegradationConfig, logger logger.Logger) *GracefulDegradation {
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 10
	}
	if cfg.ResetTimeout <= 0 {
		cfg.ResetTimeout = 30 * time.Second
	}
	if cfg.HalfOpenMaxCalls <= 0 {
		cfg.HalfOpenMaxCalls = 5
	}

	return &GracefulDegradation{
		breaker: circuitbreaker.New(circuitbreaker.Config{
			Name:             "http",
			FailureThreshold: cfg.FailureThreshold,
			ResetTimeout:     cfg.ResetTimeout,
			HalfOpenMaxCalls: cfg.HalfOpenMaxCalls,
		}),
		essentials: cfg.EssentialPrefixes,
		logger:     logger,
	}
}

// Breaker returns the breaker guarding non-essential routes
func (gd *GracefulDegradation) Breaker() *circuitbreaker.Breaker {
	return gd.breaker
}

// Middleware returns a middleware function
func (gd *GracefulDegradation) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gd.isEssential(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		if !gd.breaker.Allow() {
			gd.logger.Warn("Circuit is open, request rejected",
				"path", r.URL.Path,
				"method", r.Method,
				"state", gd.breaker.State())

			w.Header().Set("Retry-After", "30")
			http.Error(w, "Service is temporarily unavailable. Please try again later.", http.StatusServiceUnavailable)
			return
		}

		sw := NewStatusWriter(w)
		next.ServeHTTP(sw, r)

		if sw.Status() >= 500 {
			gd.breaker.Failure()
		} else {
			gd.breaker.Success()
		}
	})
}

func (gd *GracefulDegradation) isEssential(path string) bool {
	for _, prefix := range gd.essentials {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
