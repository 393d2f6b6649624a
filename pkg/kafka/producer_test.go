package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaidashi/fastfood-api/pkg/logger"
)

func TestSendMessageAttachesKeyAndHeaders(t *testing.T) {
	mock := mocks.NewSyncProducer(t, mocks.NewTestConfig())

	mock.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if string(val) != `{"kind":"sendNotify"}` {
			return errors.New("unexpected payload " + string(val))
		}
		return nil
	})

	p := NewProducerFrom(mock, logger.NewNop())

	err := p.SendMessage(context.Background(), "orders", "order-1", []byte(`{"kind":"sendNotify"}`), map[string]string{"kind": "sendNotify"})
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestSendMessageWrapsProducerError(t *testing.T) {
	mock := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	mock.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := NewProducerFrom(mock, logger.NewNop())

	err := p.SendMessage(context.Background(), "orders", "", []byte("x"), nil)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}

func TestSendMessageRejectsCancelledContext(t *testing.T) {
	mock := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	p := NewProducerFrom(mock, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, p.SendMessage(ctx, "orders", "", []byte("x"), nil), context.Canceled)
	require.NoError(t, p.Close())
}
