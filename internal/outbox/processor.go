// Package outbox relays stored bus publications to Kafka and parks the
// ones that keep failing as dead letters.
package outbox

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vaidashi/fastfood-api/internal/models"
	"github.com/vaidashi/fastfood-api/pkg/logger"
	"github.com/vaidashi/fastfood-api/pkg/metrics"
)

// Relay outcomes counted on the outbox metric
const (
	outcomeRelayed      = "relayed"
	outcomeRetried      = "retried"
	outcomeDeadLettered = "dead_lettered"
)

// MessageHandler delivers one outbox message
type MessageHandler interface {
	HandleMessage(ctx context.Context, message *models.OutboxMessage) error
}

// Store is the outbox table
type Store interface {
	GetPendingMessages(ctx context.Context, limit int) ([]*models.OutboxMessage, error)
	MarkAsProcessing(ctx context.Context, id int64) error
	MarkAsCompleted(ctx context.Context, id int64) error
	MarkAsPending(ctx context.Context, id int64, errorMessage string) error
	MarkAsFailed(ctx context.Context, id int64, errorMessage string) error
}

// DeadLetterSink parks messages that ran out of attempts
type DeadLetterSink interface {
	MoveFromOutbox(ctx context.Context, msg *models.OutboxMessage, errorMessage string) (*models.DeadLetterMessage, error)
}

// ProcessorConfig holds the configuration for the Processor
type ProcessorConfig struct {
	PollingInterval time.Duration
	BatchSize       int
	MaxRetries      int
}

// Processor polls the outbox and hands each pending message to the
// handler registered for its topic
type Processor struct {
	store       Store
	deadLetters DeadLetterSink
	handlers    map[string]MessageHandler
	fallback    MessageHandler

	pollingInterval time.Duration
	batchSize       int
	maxRetries      int

	metrics *metrics.Metrics
	logger  logger.Logger

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
	mu      sync.Mutex
}

// NewProcessor creates a new Processor
func NewProcessor(
	store Store,
	deadLetters DeadLetterSink,
	config ProcessorConfig,
	m *metrics.Metrics,
	logger logger.Logger,
) *Processor {
	if config.PollingInterval <= 0 {
		config.PollingInterval = 5 * time.Second
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 10
	}
	if config.MaxRetries <= 0 {
		config.MaxRetries = 5
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Processor{
		store:           store,
		deadLetters:     deadLetters,
		handlers:        make(map[string]MessageHandler),
		pollingInterval: config.PollingInterval,
		batchSize:       config.BatchSize,
		maxRetries:      config.MaxRetries,
		metrics:         m,
		logger:          logger,
		ctx:             ctx,
		cancel:          cancel,
	}
}

// RegisterHandler registers the handler for messages on a logical topic
func (p *Processor) RegisterHandler(topic string, handler MessageHandler) {
	p.handlers[topic] = handler
}

// SetFallback sets the handler used for topics without their own
func (p *Processor) SetFallback(handler MessageHandler) {
	p.fallback = handler
}

// Start starts polling in the background
func (p *Processor) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return
	}

	p.running = true
	p.wg.Add(1)

	go func() {
		defer p.wg.Done()
		p.poll()
	}()

	p.logger.Info("Outbox processor started",
		"pollingInterval", p.pollingInterval,
		"batchSize", p.batchSize,
		"maxRetries", p.maxRetries)
}

// Stop stops polling and waits for the current batch
func (p *Processor) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}

	p.cancel()
	p.wg.Wait()
	p.running = false

	p.logger.Info("Outbox processor stopped")
}

func (p *Processor) poll() {
	ticker := time.NewTicker(p.pollingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			if _, err := p.ProcessBatch(p.ctx); err != nil {
				p.logger.Error("Failed to process outbox batch", "error", err)
			}
		}
	}
}

// ProcessBatch relays one batch of pending messages and returns how many
// were delivered. A failing message never stops the rest of the batch.
func (p *Processor) ProcessBatch(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, p.pollingInterval)
	defer cancel()

	messages, err := p.store.GetPendingMessages(ctx, p.batchSize)

	if err != nil {
		return 0, fmt.Errorf("failed to get pending messages: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	p.logger.Debug("Processing batch of outbox messages", "count", len(messages))

	delivered := 0

	for _, msg := range messages {
		if err := p.processMessage(ctx, msg); err != nil {
			p.logger.Warn("Failed to relay outbox message",
				"error", err,
				"messageID", msg.ID,
				"topic", msg.Topic,
				"kind", msg.Kind)
			continue
		}
		delivered++
	}

	return delivered, nil
}

func (p *Processor) processMessage(ctx context.Context, msg *models.OutboxMessage) error {
	if err := p.store.MarkAsProcessing(ctx, msg.ID); err != nil {
		return fmt.Errorf("failed to mark message as processing: %w", err)
	}
	msg.ProcessingAttempts++

	handler, ok := p.handlers[msg.Topic]

	if !ok {
		handler = p.fallback
	}

	if handler == nil {
		return p.deadLetter(ctx, msg, fmt.Sprintf("no handler registered for topic %s", msg.Topic))
	}

	if err := handler.HandleMessage(ctx, msg); err != nil {
		if msg.ProcessingAttempts >= p.maxRetries {
			return p.deadLetter(ctx, msg, fmt.Sprintf("max retries reached: %v", err))
		}

		if markErr := p.store.MarkAsPending(ctx, msg.ID, err.Error()); markErr != nil {
			p.logger.Error("Failed to return message to pending", "error", markErr, "messageID", msg.ID)
		}

		p.metrics.OutboxResult(outcomeRetried)
		return fmt.Errorf("attempt %d: %w", msg.ProcessingAttempts, err)
	}

	if err := p.store.MarkAsCompleted(ctx, msg.ID); err != nil {
		return fmt.Errorf("failed to mark message as completed: %w", err)
	}

	p.metrics.OutboxResult(outcomeRelayed)
	p.logger.Debug("Outbox message relayed", "messageID", msg.ID, "topic", msg.Topic)
	return nil
}

// deadLetter parks msg. When the dead-letter store is unavailable the
// message is at least marked failed so it is not picked up again.
func (p *Processor) deadLetter(ctx context.Context, msg *models.OutboxMessage, reason string) error {
	dl, err := p.deadLetters.MoveFromOutbox(ctx, msg, reason)

	if err != nil {
		p.logger.Error("Failed to move message to dead letters", "error", err, "messageID", msg.ID)

		if markErr := p.store.MarkAsFailed(ctx, msg.ID, reason); markErr != nil {
			p.logger.Error("Failed to mark message as failed", "error", markErr, "messageID", msg.ID)
		}
		return fmt.Errorf("%s: %w", reason, err)
	}

	p.metrics.OutboxResult(outcomeDeadLettered)
	p.logger.Warn("Outbox message moved to dead letters",
		"messageID", msg.ID,
		"deadLetterID", dl.ID,
		"attempts", msg.ProcessingAttempts,
		"reason", reason)

	return fmt.Errorf("dead lettered: %s", reason)
}
