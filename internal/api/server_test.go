package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vaidashi/fastfood-api/internal/domain/order"
	"github.com/vaidashi/fastfood-api/internal/models"
	"github.com/vaidashi/fastfood-api/internal/service"
	"github.com/vaidashi/fastfood-api/pkg/circuitbreaker"
	apperrors "github.com/vaidashi/fastfood-api/pkg/errors"
	"github.com/vaidashi/fastfood-api/pkg/logger"
)

type mockOrders struct{ mock.Mock }

func (m *mockOrders) PlaceOrder(ctx context.Context, customerID string, lines []service.ItemInput) (*service.OrderDetails, error) {
	args := m.Called(ctx, customerID, lines)
	d, _ := args.Get(0).(*service.OrderDetails)
	return d, args.Error(1)
}

func (m *mockOrders) OrderDetails(ctx context.Context, id string) (*service.OrderDetails, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*service.OrderDetails)
	return d, args.Error(1)
}

func (m *mockOrders) AllOrders(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	o, _ := args.Get(0).([]*order.Order)
	return o, args.Error(1)
}

func (m *mockOrders) OrdersByStatus(ctx context.Context, status string) ([]*service.OrderDetails, error) {
	args := m.Called(ctx, status)
	d, _ := args.Get(0).([]*service.OrderDetails)
	return d, args.Error(1)
}

func (m *mockOrders) OpenOrders(ctx context.Context) ([]*service.OrderDetails, error) {
	args := m.Called(ctx)
	d, _ := args.Get(0).([]*service.OrderDetails)
	return d, args.Error(1)
}

func (m *mockOrders) ChangeOrder(ctx context.Context, id string, in service.ChangeOrderInput) (*order.Order, error) {
	args := m.Called(ctx, id, in)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *mockOrders) ChangePayment(ctx context.Context, id, payment string) (*order.Order, error) {
	args := m.Called(ctx, id, payment)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *mockOrders) RemoveOrder(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockCustomers struct{ mock.Mock }

func (m *mockCustomers) GetAll(ctx context.Context) ([]*models.Customer, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]*models.Customer)
	return c, args.Error(1)
}

func (m *mockCustomers) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*models.Customer)
	return c, args.Error(1)
}

func (m *mockCustomers) GetByCPF(ctx context.Context, cpf string) (*models.Customer, error) {
	args := m.Called(ctx, cpf)
	c, _ := args.Get(0).(*models.Customer)
	return c, args.Error(1)
}

func (m *mockCustomers) Create(ctx context.Context, in service.CustomerInput) (*models.Customer, error) {
	args := m.Called(ctx, in)
	c, _ := args.Get(0).(*models.Customer)
	return c, args.Error(1)
}

func (m *mockCustomers) Update(ctx context.Context, id string, in service.CustomerInput) (*models.Customer, error) {
	args := m.Called(ctx, id, in)
	c, _ := args.Get(0).(*models.Customer)
	return c, args.Error(1)
}

func (m *mockCustomers) Remove(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockDeadLetters struct{ mock.Mock }

func (m *mockDeadLetters) List(ctx context.Context, status string, limit int) ([]*models.DeadLetterMessage, error) {
	args := m.Called(ctx, status, limit)
	d, _ := args.Get(0).([]*models.DeadLetterMessage)
	return d, args.Error(1)
}

func (m *mockDeadLetters) Get(ctx context.Context, id int64) (*models.DeadLetterMessage, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*models.DeadLetterMessage)
	return d, args.Error(1)
}

func (m *mockDeadLetters) Retry(ctx context.Context, id int64) (*models.OutboxMessage, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*models.OutboxMessage)
	return o, args.Error(1)
}

func (m *mockDeadLetters) Discard(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func sampleOrder(t *testing.T, status order.Status, payment order.Payment) *order.Order {
	t.Helper()

	o, err := order.Restore(order.Attributes{
		ID:        "64b7f0c2a1b2c3d4e5f60718",
		Protocol:  42,
		Quantity:  2,
		Amount:    decimal.NewFromInt(20),
		Status:    status,
		Payment:   payment,
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return o
}

func do(t *testing.T, s *Server, method, path, body string) (*httptest.ResponseRecorder, ApiResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))

	var resp ApiResponse
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}

	return rec, resp
}

func TestHealthReportsDatabase(t *testing.T) {
	s := NewServer(Services{}, pingerFunc(func(context.Context) error { return nil }), Options{}, nil, logger.NewNop())

	rec, resp := do(t, s, http.MethodGet, "/api/v1/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "up", resp.Data.(map[string]interface{})["database"])

	down := NewServer(Services{}, pingerFunc(func(context.Context) error { return errors.New("refused") }), Options{}, nil, logger.NewNop())

	rec, resp = do(t, down, http.MethodGet, "/api/v1/health", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.False(t, resp.Success)
}

func TestCreateOrderPassesLines(t *testing.T) {
	orders := &mockOrders{}
	lines := []service.ItemInput{{ProductID: "65a000000000000000000001", Quantity: 2, Obs: "no onion"}}
	orders.On("PlaceOrder", mock.Anything, "507f1f77bcf86cd799439011", lines).
		Return(&service.OrderDetails{Order: sampleOrder(t, order.StatusReceive, order.PaymentNone)}, nil)

	s := NewServer(Services{Orders: orders}, nil, Options{}, nil, logger.NewNop())

	rec, resp := do(t, s, http.MethodPost, "/api/v1/orders",
		`{"customerId":"507f1f77bcf86cd799439011","items":[{"productId":"65a000000000000000000001","quantity":2,"obs":"no onion"}]}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, float64(42), data["order"].(map[string]interface{})["protocol"])
	orders.AssertExpectations(t)
}

func TestCreateOrderMapsValidationErrors(t *testing.T) {
	orders := &mockOrders{}
	orders.On("PlaceOrder", mock.Anything, "short", mock.Anything).Return(nil, service.ErrCustomerIDInvalid)

	s := NewServer(Services{Orders: orders}, nil, Options{}, nil, logger.NewNop())

	rec, resp := do(t, s, http.MethodPost, "/api/v1/orders", `{"customerId":"short","items":[]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "customerId invalid", resp.Error)
}

func TestMalformedBodyIsRejected(t *testing.T) {
	s := NewServer(Services{Orders: &mockOrders{}}, nil, Options{}, nil, logger.NewNop())

	rec, resp := do(t, s, http.MethodPost, "/api/v1/orders", `{`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request payload", resp.Error)
}

func TestOpenOrdersRouteWinsOverID(t *testing.T) {
	orders := &mockOrders{}
	orders.On("OpenOrders", mock.Anything).Return([]*service.OrderDetails{}, nil)

	s := NewServer(Services{Orders: orders}, nil, Options{}, nil, logger.NewNop())

	rec, _ := do(t, s, http.MethodGet, "/api/v1/orders/open", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	orders.AssertExpectations(t)
	orders.AssertNotCalled(t, "OrderDetails", mock.Anything, mock.Anything)
}

func TestOrdersByStatusRejectsUnknown(t *testing.T) {
	orders := &mockOrders{}
	orders.On("OrdersByStatus", mock.Anything, "PAID").Return(nil, order.ErrStatusInvalid)

	s := NewServer(Services{Orders: orders}, nil, Options{}, nil, logger.NewNop())

	rec, resp := do(t, s, http.MethodGet, "/api/v1/orders/status/PAID", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "status invalid", resp.Error)
}

func TestUpdateOrderForwardsChange(t *testing.T) {
	orders := &mockOrders{}
	orders.On("ChangeOrder", mock.Anything, "64b7f0c2a1b2c3d4e5f60718", service.ChangeOrderInput{Status: "IN_PROGRESS"}).
		Return(sampleOrder(t, order.StatusInProgress, order.PaymentApproved), nil)

	s := NewServer(Services{Orders: orders}, nil, Options{}, nil, logger.NewNop())

	rec, resp := do(t, s, http.MethodPut, "/api/v1/orders/64b7f0c2a1b2c3d4e5f60718", `{"status":"IN_PROGRESS"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "IN_PROGRESS", resp.Data.(map[string]interface{})["status"])
}

func TestUpdatePaymentIncompatiblePair(t *testing.T) {
	orders := &mockOrders{}
	orders.On("ChangePayment", mock.Anything, "o1", "DENIED").Return(nil, order.ErrPaymentWithStatusInvalid)

	s := NewServer(Services{Orders: orders}, nil, Options{}, nil, logger.NewNop())

	rec, resp := do(t, s, http.MethodPut, "/api/v1/orders/o1/payment", `{"payment":"DENIED"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "payment which status invalid", resp.Error)
}

func TestUpdateFinalizedOrderIsBadRequest(t *testing.T) {
	orders := &mockOrders{}
	orders.On("ChangeOrder", mock.Anything, "o1", service.ChangeOrderInput{Status: "RECEIVE"}).
		Return(nil, fmt.Errorf("%w: o1 is DONE/APPROVED", order.ErrOrderFinalized))

	s := NewServer(Services{Orders: orders}, nil, Options{}, nil, logger.NewNop())

	rec, resp := do(t, s, http.MethodPut, "/api/v1/orders/o1", `{"status":"RECEIVE"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp.Error, "order already finalized")
}

func TestDeleteUnknownOrder(t *testing.T) {
	orders := &mockOrders{}
	orders.On("RemoveOrder", mock.Anything, "o1").
		Return(fmt.Errorf("%w: %w", service.ErrIDInexistent, apperrors.ErrNotFound))

	s := NewServer(Services{Orders: orders}, nil, Options{}, nil, logger.NewNop())

	rec, _ := do(t, s, http.MethodDelete, "/api/v1/orders/o1", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPersistenceErrorHidesDetails(t *testing.T) {
	orders := &mockOrders{}
	orders.On("AllOrders", mock.Anything).
		Return(nil, fmt.Errorf("%w: %w", service.ErrFailureInsert, errors.New("pq: password authentication failed")))

	s := NewServer(Services{Orders: orders}, nil, Options{}, nil, logger.NewNop())

	rec, resp := do(t, s, http.MethodGet, "/api/v1/orders", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "failure insert", resp.Error)
}

func TestDuplicateCustomerConflicts(t *testing.T) {
	customers := &mockCustomers{}
	customers.On("Create", mock.Anything, service.CustomerInput{Name: "Ana", CPF: "52998224725"}).
		Return(nil, service.ErrCPFAlreadyRegistered)

	s := NewServer(Services{Customers: customers}, nil, Options{}, nil, logger.NewNop())

	rec, resp := do(t, s, http.MethodPost, "/api/v1/customers", `{"name":"Ana","cpf":"52998224725"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "cpf already registered", resp.Error)
}

func TestCustomerByCPF(t *testing.T) {
	customers := &mockCustomers{}
	customers.On("GetByCPF", mock.Anything, "52998224725").Return(&models.Customer{ID: "c1", Name: "Ana"}, nil)

	s := NewServer(Services{Customers: customers}, nil, Options{}, nil, logger.NewNop())

	rec, resp := do(t, s, http.MethodGet, "/api/v1/customers/cpf/52998224725", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ana", resp.Data.(map[string]interface{})["name"])
}

func TestDeadLetterRoutesNeedOutbox(t *testing.T) {
	s := NewServer(Services{}, nil, Options{}, nil, logger.NewNop())

	rec, _ := do(t, s, http.MethodGet, "/api/v1/admin/dead-letters", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeadLetterRetryAndDiscard(t *testing.T) {
	dl := &mockDeadLetters{}
	dl.On("List", mock.Anything, "pending", 5).Return([]*models.DeadLetterMessage{{ID: 1}}, nil)
	dl.On("Retry", mock.Anything, int64(1)).Return(&models.OutboxMessage{ID: 77}, nil)
	dl.On("Discard", mock.Anything, int64(2)).Return(fmt.Errorf("record not found: %w", apperrors.ErrNotFound))

	s := NewServer(Services{DeadLetters: dl}, nil, Options{}, nil, logger.NewNop())

	rec, resp := do(t, s, http.MethodGet, "/api/v1/admin/dead-letters?status=pending&limit=5", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, resp.Data, 1)

	rec, resp = do(t, s, http.MethodPost, "/api/v1/admin/dead-letters/1/retry", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(77), resp.Data.(map[string]interface{})["outboxMessageId"])

	rec, _ = do(t, s, http.MethodPost, "/api/v1/admin/dead-letters/2/discard", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, s, http.MethodPost, "/api/v1/admin/dead-letters/abc/retry", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	dl.AssertExpectations(t)
}

func TestBreakersListAndReset(t *testing.T) {
	payment := circuitbreaker.New(circuitbreaker.Config{Name: "payment", FailureThreshold: 1, ResetTimeout: time.Minute})
	payment.Failure()
	require.Equal(t, circuitbreaker.StateOpen, payment.State())

	s := NewServer(Services{}, nil, Options{Breakers: []*circuitbreaker.Breaker{payment}}, nil, logger.NewNop())

	rec, resp := do(t, s, http.MethodGet, "/api/v1/admin/breakers", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, resp.Data, 2)

	rec, _ = do(t, s, http.MethodPost, "/api/v1/admin/breakers/payment/reset", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, circuitbreaker.StateClosed, payment.State())

	rec, _ = do(t, s, http.MethodPost, "/api/v1/admin/breakers/kitchen/reset", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSwaggerAndMetricsAreServed(t *testing.T) {
	s := NewServer(Services{}, nil, Options{SwaggerJSON: func() (string, error) { return `{"swagger":"2.0"}`, nil }}, nil, logger.NewNop())

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger.json", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"swagger":"2.0"}`, rec.Body.String())

	do(t, s, http.MethodGet, "/api/v1/health", "")

	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fastfood_api_http_requests_total")
}
