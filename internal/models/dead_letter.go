package models

import (
	"time"
)

// DeadLetterStatus represents the status of a dead letter message
type DeadLetterStatus string

const (
	DeadLetterStatusPending   DeadLetterStatus = "pending"
	DeadLetterStatusRequeued  DeadLetterStatus = "requeued"
	DeadLetterStatusDiscarded DeadLetterStatus = "discarded"
)

// DeadLetterMessage is an outbox message that ran out of relay attempts
type DeadLetterMessage struct {
	ID                int64      `db:"id" json:"id"`
	OriginalMessageID int64      `db:"original_message_id" json:"originalMessageId"`
	Topic             string     `db:"topic" json:"topic"`
	MessageKey        string     `db:"message_key" json:"key"`
	Kind              string     `db:"kind" json:"kind"`
	Payload           []byte     `db:"payload" json:"payload"`
	ErrorMessage      string     `db:"error_message" json:"errorMessage"`
	Attempts          int        `db:"attempts" json:"attempts"`
	Status            string     `db:"status" json:"status"`
	CreatedAt         time.Time  `db:"created_at" json:"createdAt"`
	ResolvedAt        *time.Time `db:"resolved_at" json:"resolvedAt,omitempty"`
}

// NewDeadLetterMessage creates a pending dead letter from an outbox message
func NewDeadLetterMessage(msg *OutboxMessage, errorMsg string) *DeadLetterMessage {
	return &DeadLetterMessage{
		OriginalMessageID: msg.ID,
		Topic:             msg.Topic,
		MessageKey:        msg.MessageKey,
		Kind:              msg.Kind,
		Payload:           msg.Payload,
		ErrorMessage:      errorMsg,
		Attempts:          msg.ProcessingAttempts,
		Status:            string(DeadLetterStatusPending),
		CreatedAt:         GetCurrentTime(),
	}
}

// Requeue builds a fresh outbox message carrying the dead letter's payload
func (d *DeadLetterMessage) Requeue() *OutboxMessage {
	return NewOutboxMessage(d.Topic, d.MessageKey, d.Kind, d.Payload)
}
