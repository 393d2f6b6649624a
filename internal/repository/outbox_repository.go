package repository

import (
	"context"

	"github.com/vaidashi/fastfood-api/internal/database"
	"github.com/vaidashi/fastfood-api/internal/models"
	"github.com/vaidashi/fastfood-api/pkg/logger"
)

const outboxColumns = `id, topic, message_key, kind, payload, created_at, processed_at,
	processing_attempts, last_error, status`

// OutboxRepository handles database operations for outbox messages
type OutboxRepository struct {
	db     *database.Database
	logger logger.Logger
}

// NewOutboxRepository creates a new OutboxRepository
func NewOutboxRepository(db *database.Database, logger logger.Logger) *OutboxRepository {
	return &OutboxRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new outbox message and sets its id
func (r *OutboxRepository) Create(ctx context.Context, message *models.OutboxMessage) error {
	query := `
		INSERT INTO outbox_messages (topic, message_key, kind, payload, created_at, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.DB.QueryRowContext(ctx, query,
		message.Topic,
		message.MessageKey,
		message.Kind,
		message.Payload,
		message.CreatedAt,
		message.Status,
	).Scan(&message.ID)

	if err != nil {
		r.logger.Error("Failed to create outbox message", "error", err, "topic", message.Topic)
		return classify(err)
	}

	return nil
}

// GetPendingMessages returns up to limit pending messages, oldest first
func (r *OutboxRepository) GetPendingMessages(ctx context.Context, limit int) ([]*models.OutboxMessage, error) {
	query := `
		SELECT ` + outboxColumns + `
		FROM outbox_messages
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2`

	messages := []*models.OutboxMessage{}

	if err := r.db.DB.SelectContext(ctx, &messages, query, models.OutboxStatusPending, limit); err != nil {
		r.logger.Error("Failed to get pending outbox messages", "error", err)
		return nil, classify(err)
	}

	return messages, nil
}

// MarkAsProcessing claims a message and counts the attempt
func (r *OutboxRepository) MarkAsProcessing(ctx context.Context, id int64) error {
	query := `
		UPDATE outbox_messages
		SET status = $1, processing_attempts = processing_attempts + 1
		WHERE id = $2`

	if _, err := r.db.DB.ExecContext(ctx, query, models.OutboxStatusProcessing, id); err != nil {
		r.logger.Error("Failed to mark outbox message as processing", "error", err, "messageID", id)
		return classify(err)
	}

	return nil
}

// MarkAsCompleted records a successful relay
func (r *OutboxRepository) MarkAsCompleted(ctx context.Context, id int64) error {
	query := `
		UPDATE outbox_messages
		SET status = $1, processed_at = $2
		WHERE id = $3`

	if _, err := r.db.DB.ExecContext(ctx, query, models.OutboxStatusCompleted, models.GetCurrentTime(), id); err != nil {
		r.logger.Error("Failed to mark outbox message as completed", "error", err, "messageID", id)
		return classify(err)
	}

	return nil
}

// MarkAsPending returns a message to the queue after a failed attempt
func (r *OutboxRepository) MarkAsPending(ctx context.Context, id int64, errorMessage string) error {
	query := `
		UPDATE outbox_messages
		SET status = $1, last_error = $2
		WHERE id = $3`

	if _, err := r.db.DB.ExecContext(ctx, query, models.OutboxStatusPending, errorMessage, id); err != nil {
		return classify(err)
	}

	return nil
}

// MarkAsFailed records the final error of a message that will not be retried
func (r *OutboxRepository) MarkAsFailed(ctx context.Context, id int64, errorMessage string) error {
	query := `
		UPDATE outbox_messages
		SET status = $1, last_error = $2
		WHERE id = $3`

	if _, err := r.db.DB.ExecContext(ctx, query, models.OutboxStatusFailed, errorMessage, id); err != nil {
		r.logger.Error("Failed to mark outbox message as failed", "error", err, "messageID", id)
		return classify(err)
	}

	return nil
}

// GetMessage retrieves an outbox message by ID
func (r *OutboxRepository) GetMessage(ctx context.Context, id int64) (*models.OutboxMessage, error) {
	var message models.OutboxMessage

	if err := r.db.DB.GetContext(ctx, &message, `SELECT `+outboxColumns+` FROM outbox_messages WHERE id = $1`, id); err != nil {
		return nil, classify(err)
	}

	return &message, nil
}
