package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaidashi/fastfood-api/internal/database"
	"github.com/vaidashi/fastfood-api/internal/models"
	apperrors "github.com/vaidashi/fastfood-api/pkg/errors"
	"github.com/vaidashi/fastfood-api/pkg/logger"
)

const (
	orderID    = "64b7f0c2a1b2c3d4e5f60718"
	customerID = "507f1f77bcf86cd799439011"
)

func newMockDB(t *testing.T) (*database.Database, sqlmock.Sqlmock) {
	t.Helper()

	raw, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		raw.Close()
	})

	return database.NewFromDB(sqlx.NewDb(raw, "postgres"), logger.NewNop()), mock
}

var orderRowColumns = []string{
	"id", "protocol", "customer_id", "quantity", "amount", "status", "payment",
	"payment_reference", "production_reference", "order_description", "created_at", "updated_at",
}

func TestOrderPersistReturnsStoredRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db, logger.NewNop())
	now := time.Now().UTC()

	mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs(sqlmock.AnyArg(), customerID, 2, decimal.NewFromInt(20), "RECEIVE", "NONE", "Order", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(orderRowColumns).
			AddRow(orderID, int64(7), customerID, 2, "20.00", "RECEIVE", "NONE", "", "", "Order", now, now))

	got, err := repo.Persist(context.Background(), models.NewOrder{
		CustomerID:  customerID,
		Quantity:    2,
		Amount:      decimal.NewFromInt(20),
		Status:      "RECEIVE",
		Payment:     "NONE",
		Description: "Order",
	})

	require.NoError(t, err)
	assert.Equal(t, orderID, got.ID)
	assert.Equal(t, int64(7), got.Protocol)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(20)))
}

func TestOrderFindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db, logger.NewNop())

	mock.ExpectQuery(`FROM orders WHERE id = \$1`).
		WithArgs(orderID).
		WillReturnRows(sqlmock.NewRows(orderRowColumns))

	_, err := repo.FindByID(context.Background(), orderID)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOrderFindByStatusExpandsList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db, logger.NewNop())
	now := time.Now().UTC()

	mock.ExpectQuery(`WHERE status IN \(\$1, \$2\)`).
		WithArgs("DONE", "RECEIVE").
		WillReturnRows(sqlmock.NewRows(orderRowColumns).
			AddRow(orderID, int64(1), "", 1, "5", "DONE", "APPROVED", "", "", "", now, now))

	got, err := repo.FindByStatus(context.Background(), "DONE", "RECEIVE")

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestOrderUpdateMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db, logger.NewNop())

	mock.ExpectQuery(`UPDATE orders`).WillReturnRows(sqlmock.NewRows(orderRowColumns))

	_, err := repo.Update(context.Background(), models.OrderUpdate{ID: orderID, Status: "DONE", Payment: "APPROVED"})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOrderRemoveMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db, logger.NewNop())

	mock.ExpectExec(`DELETE FROM orders`).WithArgs(orderID).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Remove(context.Background(), orderID)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIsValidID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db, logger.NewNop())

	ok, err := repo.IsValidID(context.Background(), "not-an-id")
	require.NoError(t, err)
	assert.False(t, ok)

	mock.ExpectQuery(`SELECT EXISTS`).WithArgs(customerID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err = repo.IsValidID(context.Background(), customerID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDatabaseErrorsAreWrapped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db, logger.NewNop())

	mock.ExpectQuery(`FROM orders ORDER BY created_at DESC`).WillReturnError(errors.New("connection refused"))

	_, err := repo.FindAll(context.Background())

	assert.ErrorIs(t, err, ErrDatabase)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPersistBatchIsTransactional(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderItemRepository(db, logger.NewNop())

	items := []*models.OrderItem{
		models.NewOrderItem(orderID, "65a000000000000000000001", decimal.NewFromInt(8), 2, ""),
		models.NewOrderItem(orderID, "65a000000000000000000002", decimal.NewFromInt(4), 1, ""),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO order_items`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO order_items`).WillReturnError(errors.New("duplicate key"))
	mock.ExpectRollback()

	err := repo.PersistBatch(context.Background(), items)

	assert.ErrorIs(t, err, ErrDatabase)
}

func TestPersistBatchCommits(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderItemRepository(db, logger.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO order_items`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.PersistBatch(context.Background(), []*models.OrderItem{
		models.NewOrderItem(orderID, "65a000000000000000000001", decimal.NewFromInt(8), 1, "extra cheese"),
	})

	assert.NoError(t, err)
}

func TestRemoveByOrderIDCountsRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderItemRepository(db, logger.NewNop())

	mock.ExpectExec(`DELETE FROM order_items WHERE order_id = \$1`).
		WithArgs(orderID).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.RemoveByOrderID(context.Background(), orderID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestCustomerFindByCPFNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCustomerRepository(db, logger.NewNop())

	mock.ExpectQuery(`FROM customers WHERE cpf = \$1`).
		WithArgs("52998224725").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByCPF(context.Background(), "52998224725")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOutboxCreateSetsID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOutboxRepository(db, logger.NewNop())

	msg := models.NewOutboxMessage("orders", orderID, "sendNotify", []byte(`{"event":"sendNotify"}`))

	mock.ExpectQuery(`INSERT INTO outbox_messages`).
		WithArgs("orders", orderID, "sendNotify", msg.Payload, sqlmock.AnyArg(), models.OutboxStatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	require.NoError(t, repo.Create(context.Background(), msg))
	assert.Equal(t, int64(11), msg.ID)
}

var deadLetterRowColumns = []string{
	"id", "original_message_id", "topic", "message_key", "kind", "payload",
	"error_message", "attempts", "status", "created_at", "resolved_at",
}

func TestDeadLetterRequeue(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeadLetterRepository(db, logger.NewNop())
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM dead_letter_messages WHERE id = \$1 AND status = \$2 FOR UPDATE`).
		WithArgs(int64(3), "pending").
		WillReturnRows(sqlmock.NewRows(deadLetterRowColumns).
			AddRow(int64(3), int64(11), "payments", orderID, "rejectPayment", []byte(`{}`), "broker down", 5, "pending", now, nil))
	mock.ExpectQuery(`INSERT INTO outbox_messages`).
		WithArgs("payments", orderID, "rejectPayment", []byte(`{}`), sqlmock.AnyArg(), models.OutboxStatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))
	mock.ExpectExec(`UPDATE dead_letter_messages SET status = \$1`).
		WithArgs("requeued", sqlmock.AnyArg(), int64(3), "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	out, err := repo.Requeue(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, int64(12), out.ID)
	assert.Equal(t, "payments", out.Topic)
}

func TestDeadLetterDiscardAlreadyResolved(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeadLetterRepository(db, logger.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE dead_letter_messages SET status = \$1`).
		WithArgs("discarded", sqlmock.AnyArg(), int64(3), "pending").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Discard(context.Background(), 3)

	assert.ErrorIs(t, err, ErrNotFound)
}
