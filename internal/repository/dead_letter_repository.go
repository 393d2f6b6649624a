package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/vaidashi/fastfood-api/internal/database"
	"github.com/vaidashi/fastfood-api/internal/models"
	"github.com/vaidashi/fastfood-api/pkg/logger"
)

const deadLetterColumns = `id, original_message_id, topic, message_key, kind, payload,
	error_message, attempts, status, created_at, resolved_at`

// DeadLetterRepository handles database operations for dead letter messages
type DeadLetterRepository struct {
	db     *database.Database
	logger logger.Logger
}

// NewDeadLetterRepository creates a new DeadLetterRepository
func NewDeadLetterRepository(db *database.Database, logger logger.Logger) *DeadLetterRepository {
	return &DeadLetterRepository{
		db:     db,
		logger: logger,
	}
}

// MoveFromOutbox stores the dead letter and marks the outbox message failed
// in one transaction
func (r *DeadLetterRepository) MoveFromOutbox(ctx context.Context, msg *models.OutboxMessage, errorMessage string) (*models.DeadLetterMessage, error) {
	dl := models.NewDeadLetterMessage(msg, errorMessage)

	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		query := `
			INSERT INTO dead_letter_messages (
				original_message_id, topic, message_key, kind, payload,
				error_message, attempts, status, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id`

		err := tx.QueryRowContext(ctx, query,
			dl.OriginalMessageID,
			dl.Topic,
			dl.MessageKey,
			dl.Kind,
			dl.Payload,
			dl.ErrorMessage,
			dl.Attempts,
			dl.Status,
			dl.CreatedAt,
		).Scan(&dl.ID)

		if err != nil {
			return classify(err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE outbox_messages SET status = $1, last_error = $2 WHERE id = $3`,
			models.OutboxStatusFailed, errorMessage, msg.ID)

		if err != nil {
			return classify(err)
		}

		return nil
	})

	if err != nil {
		r.logger.Error("Failed to move message to dead letters", "error", err, "messageID", msg.ID)
		return nil, err
	}

	return dl, nil
}

// List returns dead letters in status, oldest first. An empty status
// lists every dead letter.
func (r *DeadLetterRepository) List(ctx context.Context, status string, limit int) ([]*models.DeadLetterMessage, error) {
	messages := []*models.DeadLetterMessage{}

	query := `SELECT ` + deadLetterColumns + ` FROM dead_letter_messages
		WHERE ($1::text = '' OR status = $1)
		ORDER BY created_at ASC
		LIMIT $2`

	if err := r.db.DB.SelectContext(ctx, &messages, query, status, limit); err != nil {
		r.logger.Error("Failed to list dead letter messages", "error", err)
		return nil, classify(err)
	}

	return messages, nil
}

// GetMessage retrieves a dead letter by ID
func (r *DeadLetterRepository) GetMessage(ctx context.Context, id int64) (*models.DeadLetterMessage, error) {
	var message models.DeadLetterMessage

	if err := r.db.DB.GetContext(ctx, &message, `SELECT `+deadLetterColumns+` FROM dead_letter_messages WHERE id = $1`, id); err != nil {
		return nil, classify(err)
	}

	return &message, nil
}

// Requeue re-enqueues a pending dead letter as a fresh outbox message and
// marks it requeued
func (r *DeadLetterRepository) Requeue(ctx context.Context, id int64) (*models.OutboxMessage, error) {
	var out *models.OutboxMessage

	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		var dl models.DeadLetterMessage

		query := `SELECT ` + deadLetterColumns + ` FROM dead_letter_messages WHERE id = $1 AND status = $2 FOR UPDATE`

		if err := tx.GetContext(ctx, &dl, query, id, string(models.DeadLetterStatusPending)); err != nil {
			return classify(err)
		}

		out = dl.Requeue()

		err := tx.QueryRowContext(ctx,
			`INSERT INTO outbox_messages (topic, message_key, kind, payload, created_at, status)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			out.Topic, out.MessageKey, out.Kind, out.Payload, out.CreatedAt, out.Status,
		).Scan(&out.ID)

		if err != nil {
			return classify(err)
		}

		return r.resolve(ctx, tx, id, models.DeadLetterStatusRequeued)
	})

	if err != nil {
		return nil, err
	}

	return out, nil
}

// Discard marks a pending dead letter as permanently dropped
func (r *DeadLetterRepository) Discard(ctx context.Context, id int64) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		return r.resolve(ctx, tx, id, models.DeadLetterStatusDiscarded)
	})
}

func (r *DeadLetterRepository) resolve(ctx context.Context, tx *sqlx.Tx, id int64, status models.DeadLetterStatus) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE dead_letter_messages SET status = $1, resolved_at = $2 WHERE id = $3 AND status = $4`,
		string(status), models.GetCurrentTime(), id, string(models.DeadLetterStatusPending))

	if err != nil {
		return classify(err)
	}

	return expectRows(res)
}
