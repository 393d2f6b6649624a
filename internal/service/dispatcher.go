package service

import (
	"context"

	"github.com/vaidashi/fastfood-api/pkg/logger"
	"github.com/vaidashi/fastfood-api/pkg/metrics"
)

// dispatcher runs best-effort side effects. A failing effect is logged
// and counted, and never fails the operation that triggered it or stops
// the effects queued after it.
type dispatcher struct {
	logger  logger.Logger
	metrics *metrics.Metrics
}

func newDispatcher(logger logger.Logger, m *metrics.Metrics) *dispatcher {
	return &dispatcher{logger: logger, metrics: m}
}

// run executes fn and reports whether it succeeded
func (d *dispatcher) run(ctx context.Context, effect string, orderID string, fn func(context.Context) error) bool {
	err := fn(ctx)

	d.metrics.SideEffect(effect, err)

	if err != nil {
		d.logger.Warn("Order side effect failed",
			"effect", effect,
			"orderID", orderID,
			"error", err)
		return false
	}

	d.logger.Debug("Order side effect delivered", "effect", effect, "orderID", orderID)
	return true
}
