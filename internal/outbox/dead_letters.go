package outbox

import (
	"context"
	"fmt"

	"github.com/vaidashi/fastfood-api/internal/models"
	apperrors "github.com/vaidashi/fastfood-api/pkg/errors"
	"github.com/vaidashi/fastfood-api/pkg/logger"
)

// DefaultListLimit bounds dead-letter listings without an explicit limit
const DefaultListLimit = 50

var ErrStatusInvalid = fmt.Errorf("dead letter status invalid: %w", apperrors.ErrInvalidInput)

// DeadLetterStore is the dead-letter table
type DeadLetterStore interface {
	List(ctx context.Context, status string, limit int) ([]*models.DeadLetterMessage, error)
	GetMessage(ctx context.Context, id int64) (*models.DeadLetterMessage, error)
	Requeue(ctx context.Context, id int64) (*models.OutboxMessage, error)
	Discard(ctx context.Context, id int64) error
}

// DeadLetterService lets operators inspect, retry and discard messages
// the relay gave up on
type DeadLetterService struct {
	store  DeadLetterStore
	logger logger.Logger
}

// NewDeadLetterService creates a new DeadLetterService
func NewDeadLetterService(store DeadLetterStore, logger logger.Logger) *DeadLetterService {
	return &DeadLetterService{store: store, logger: logger}
}

// List returns dead letters, newest first. An empty status lists all.
func (s *DeadLetterService) List(ctx context.Context, status string, limit int) ([]*models.DeadLetterMessage, error) {
	switch models.DeadLetterStatus(status) {
	case "", models.DeadLetterStatusPending, models.DeadLetterStatusRequeued, models.DeadLetterStatusDiscarded:
	default:
		return nil, fmt.Errorf("%w: %q", ErrStatusInvalid, status)
	}

	if limit <= 0 || limit > 500 {
		limit = DefaultListLimit
	}

	return s.store.List(ctx, status, limit)
}

// Get returns one dead letter
func (s *DeadLetterService) Get(ctx context.Context, id int64) (*models.DeadLetterMessage, error) {
	return s.store.GetMessage(ctx, id)
}

// Retry puts a pending dead letter back on the outbox as a new message
func (s *DeadLetterService) Retry(ctx context.Context, id int64) (*models.OutboxMessage, error) {
	msg, err := s.store.Requeue(ctx, id)

	if err != nil {
		s.logger.Warn("Failed to requeue dead letter", "error", err, "deadLetterID", id)
		return nil, err
	}

	s.logger.Info("Dead letter requeued", "deadLetterID", id, "messageID", msg.ID, "topic", msg.Topic)
	return msg, nil
}

// Discard resolves a pending dead letter without delivering it
func (s *DeadLetterService) Discard(ctx context.Context, id int64) error {
	if err := s.store.Discard(ctx, id); err != nil {
		s.logger.Warn("Failed to discard dead letter", "error", err, "deadLetterID", id)
		return err
	}

	s.logger.Info("Dead letter discarded", "deadLetterID", id)
	return nil
}
