package models

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewObjectIDIsPlatformWidth(t *testing.T) {
	id := NewObjectID()

	assert.Len(t, id, IDLength)
	assert.True(t, IsObjectID(id))
}

func TestIsObjectID(t *testing.T) {
	assert.False(t, IsObjectID(""))
	assert.False(t, IsObjectID("abc"))
	assert.False(t, IsObjectID(strings.Repeat("z", IDLength)), "not hex")
	assert.True(t, IsObjectID("65a1f0c2b3d4e5f601234567"))
}

func TestGenerateIDPrefix(t *testing.T) {
	id := GenerateID("evt")

	assert.True(t, strings.HasPrefix(id, "evt-"))
	assert.Len(t, id, len("evt-")+8)
}

func TestOrderItemSubtotal(t *testing.T) {
	item := NewOrderItem(NewObjectID(), NewObjectID(), decimal.RequireFromString("10.50"), 3, "")

	assert.True(t, decimal.RequireFromString("31.50").Equal(item.Subtotal()))
}

func TestDeadLetterRequeueKeepsRouting(t *testing.T) {
	msg := NewOutboxMessage("orders", "key-1", "sendNotify", []byte(`{}`))
	msg.ProcessingAttempts = 5

	dl := NewDeadLetterMessage(msg, "broker down")
	again := dl.Requeue()

	assert.Equal(t, 5, dl.Attempts)
	assert.Equal(t, "orders", again.Topic)
	assert.Equal(t, "key-1", again.MessageKey)
	assert.Equal(t, OutboxStatusPending, again.Status)
	assert.Zero(t, again.ProcessingAttempts)
}
