package models

import (
	"time"
)

// OutboxStatus represents the status of an outbox message
type OutboxStatus string

const (
	OutboxStatusPending    OutboxStatus = "pending"
	OutboxStatusProcessing OutboxStatus = "processing"
	OutboxStatusCompleted  OutboxStatus = "completed"
	OutboxStatusFailed     OutboxStatus = "failed"
)

// OutboxMessage is a bus publication waiting to be relayed to Kafka
type OutboxMessage struct {
	ID                 int64        `db:"id" json:"id"`
	Topic              string       `db:"topic" json:"topic"`
	MessageKey         string       `db:"message_key" json:"key"`
	Kind               string       `db:"kind" json:"kind"`
	Payload            []byte       `db:"payload" json:"payload"`
	CreatedAt          time.Time    `db:"created_at" json:"createdAt"`
	ProcessedAt        *time.Time   `db:"processed_at" json:"processedAt,omitempty"`
	ProcessingAttempts int          `db:"processing_attempts" json:"processingAttempts"`
	LastError          *string      `db:"last_error" json:"lastError,omitempty"`
	Status             OutboxStatus `db:"status" json:"status"`
}

// NewOutboxMessage creates a pending outbox message
func NewOutboxMessage(topic, key, kind string, payload []byte) *OutboxMessage {
	return &OutboxMessage{
		Topic:      topic,
		MessageKey: key,
		Kind:       kind,
		Payload:    payload,
		CreatedAt:  GetCurrentTime(),
		Status:     OutboxStatusPending,
	}
}
