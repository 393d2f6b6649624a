// Package messaging carries events between the order service and the
// payment, production and notification consumers.
package messaging

import (
	"context"
	"fmt"
	"sync"

	"github.com/vaidashi/fastfood-api/internal/events"
	"github.com/vaidashi/fastfood-api/internal/models"
	"github.com/vaidashi/fastfood-api/pkg/logger"
)

// EventHeader names the record header that carries the event kind
const EventHeader = "event"

// Topics maps logical topics onto broker topics. Unmapped topics pass
// through unchanged.
type Topics map[string]string

// Resolve returns the broker topic for a logical one
func (t Topics) Resolve(logical string) string {
	if physical, ok := t[logical]; ok && physical != "" {
		return physical
	}
	return logical
}

// Sender publishes raw records
type Sender interface {
	SendMessage(ctx context.Context, topic, key string, value []byte, headers map[string]string) error
}

// KafkaBus publishes events straight to the broker
type KafkaBus struct {
	sender Sender
	topics Topics
	logger logger.Logger
}

func NewKafkaBus(sender Sender, topics Topics, logger logger.Logger) *KafkaBus {
	return &KafkaBus{sender: sender, topics: topics, logger: logger}
}

func (b *KafkaBus) Publish(ctx context.Context, topic string, msg events.Message) error {
	payload, err := msg.Encode()

	if err != nil {
		return fmt.Errorf("encode %s: %w", msg.Event, err)
	}

	return b.sender.SendMessage(ctx, b.topics.Resolve(topic), msg.Key(), payload, map[string]string{
		EventHeader: string(msg.Event),
	})
}

// OutboxStore stores messages for later relay
type OutboxStore interface {
	Create(ctx context.Context, message *models.OutboxMessage) error
}

// OutboxBus writes events to the outbox table. The outbox processor
// relays them to the broker.
type OutboxBus struct {
	store  OutboxStore
	logger logger.Logger
}

func NewOutboxBus(store OutboxStore, logger logger.Logger) *OutboxBus {
	return &OutboxBus{store: store, logger: logger}
}

func (b *OutboxBus) Publish(ctx context.Context, topic string, msg events.Message) error {
	payload, err := msg.Encode()

	if err != nil {
		return fmt.Errorf("encode %s: %w", msg.Event, err)
	}

	out := models.NewOutboxMessage(topic, msg.Key(), string(msg.Event), payload)

	if err := b.store.Create(ctx, out); err != nil {
		return fmt.Errorf("enqueue %s: %w", msg.Event, err)
	}

	b.logger.Debug("Event stored in outbox", "event", msg.Event, "topic", topic, "messageID", out.ID)
	return nil
}

// Handler consumes one event
type Handler func(ctx context.Context, msg events.Message) error

// LocalBus delivers events in process. It stands in for the broker when
// Kafka is disabled. Events on a topic without subscribers are dropped.
type LocalBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   logger.Logger
}

func NewLocalBus(logger logger.Logger) *LocalBus {
	return &LocalBus{handlers: make(map[string][]Handler), logger: logger}
}

// Subscribe registers h for topic
func (b *LocalBus) Subscribe(topic string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], h)
}

// Publish runs every subscriber of topic in order and returns the first error
func (b *LocalBus) Publish(ctx context.Context, topic string, msg events.Message) error {
	b.mu.RLock()
	handlers := b.handlers[topic]
	b.mu.RUnlock()

	if len(handlers) == 0 {
		b.logger.Debug("No local subscriber, event dropped", "event", msg.Event, "topic", topic)
		return nil
	}

	for _, h := range handlers {
		if err := h(ctx, msg); err != nil {
			return fmt.Errorf("deliver %s on %s: %w", msg.Event, topic, err)
		}
	}

	return nil
}
