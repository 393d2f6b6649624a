package outbox

import (
	"context"
	"fmt"

	"github.com/vaidashi/fastfood-api/internal/messaging"
	"github.com/vaidashi/fastfood-api/internal/models"
	"github.com/vaidashi/fastfood-api/pkg/logger"
)

// KafkaHandler publishes outbox messages to the broker topic mapped from
// their logical topic
type KafkaHandler struct {
	sender messaging.Sender
	topics messaging.Topics
	logger logger.Logger
}

// NewKafkaHandler creates a new KafkaHandler
func NewKafkaHandler(sender messaging.Sender, topics messaging.Topics, logger logger.Logger) *KafkaHandler {
	return &KafkaHandler{
		sender: sender,
		topics: topics,
		logger: logger,
	}
}

// HandleMessage publishes the stored payload unchanged
func (h *KafkaHandler) HandleMessage(ctx context.Context, message *models.OutboxMessage) error {
	topic := h.topics.Resolve(message.Topic)

	err := h.sender.SendMessage(ctx, topic, message.MessageKey, message.Payload, map[string]string{
		messaging.EventHeader: message.Kind,
	})

	if err != nil {
		return fmt.Errorf("failed to publish message %d to %s: %w", message.ID, topic, err)
	}

	h.logger.Debug("Published outbox message",
		"topic", topic,
		"messageID", message.ID,
		"key", message.MessageKey,
		"kind", message.Kind)

	return nil
}
