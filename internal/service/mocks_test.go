package service

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/vaidashi/fastfood-api/internal/events"
	"github.com/vaidashi/fastfood-api/internal/models"
)

type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) FindAll(ctx context.Context) ([]*models.Order, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*models.Order)
	return rows, args.Error(1)
}

func (m *mockOrderRepo) FindByStatus(ctx context.Context, statuses ...string) ([]*models.Order, error) {
	args := m.Called(ctx, statuses)
	rows, _ := args.Get(0).([]*models.Order)
	return rows, args.Error(1)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id string) (*models.Order, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*models.Order)
	return row, args.Error(1)
}

func (m *mockOrderRepo) IsValidID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockOrderRepo) Persist(ctx context.Context, in models.NewOrder) (*models.Order, error) {
	args := m.Called(ctx, in)
	if fn, ok := args.Get(0).(func(models.NewOrder) *models.Order); ok {
		return fn(in), args.Error(1)
	}
	row, _ := args.Get(0).(*models.Order)
	return row, args.Error(1)
}

func (m *mockOrderRepo) Update(ctx context.Context, in models.OrderUpdate) (*models.Order, error) {
	args := m.Called(ctx, in)
	if fn, ok := args.Get(0).(func(models.OrderUpdate) *models.Order); ok {
		return fn(in), args.Error(1)
	}
	row, _ := args.Get(0).(*models.Order)
	return row, args.Error(1)
}

func (m *mockOrderRepo) Remove(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) FindAll(ctx context.Context) ([]*models.OrderItem, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*models.OrderItem)
	return rows, args.Error(1)
}

func (m *mockItemRepo) FindByOrderID(ctx context.Context, orderID string) ([]*models.OrderItem, error) {
	args := m.Called(ctx, orderID)
	rows, _ := args.Get(0).([]*models.OrderItem)
	return rows, args.Error(1)
}

func (m *mockItemRepo) FindByID(ctx context.Context, id string) (*models.OrderItem, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*models.OrderItem)
	return row, args.Error(1)
}

func (m *mockItemRepo) PersistBatch(ctx context.Context, items []*models.OrderItem) error {
	return m.Called(ctx, items).Error(0)
}

func (m *mockItemRepo) Update(ctx context.Context, item *models.OrderItem) (*models.OrderItem, error) {
	args := m.Called(ctx, item)
	row, _ := args.Get(0).(*models.OrderItem)
	return row, args.Error(1)
}

func (m *mockItemRepo) Remove(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockItemRepo) RemoveByOrderID(ctx context.Context, orderID string) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

type mockCustomerRepo struct{ mock.Mock }

func (m *mockCustomerRepo) FindAll(ctx context.Context) ([]*models.Customer, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*models.Customer)
	return rows, args.Error(1)
}

func (m *mockCustomerRepo) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*models.Customer)
	return row, args.Error(1)
}

func (m *mockCustomerRepo) FindByCPF(ctx context.Context, cpf string) (*models.Customer, error) {
	args := m.Called(ctx, cpf)
	row, _ := args.Get(0).(*models.Customer)
	return row, args.Error(1)
}

func (m *mockCustomerRepo) Persist(ctx context.Context, c *models.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCustomerRepo) Update(ctx context.Context, c *models.Customer) (*models.Customer, error) {
	args := m.Called(ctx, c)
	row, _ := args.Get(0).(*models.Customer)
	return row, args.Error(1)
}

func (m *mockCustomerRepo) Remove(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) FindAll(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]*models.Product)
	return rows, args.Error(1)
}

func (m *mockProductRepo) FindByCategory(ctx context.Context, category string) ([]*models.Product, error) {
	args := m.Called(ctx, category)
	rows, _ := args.Get(0).([]*models.Product)
	return rows, args.Error(1)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*models.Product)
	return row, args.Error(1)
}

func (m *mockProductRepo) Persist(ctx context.Context, p *models.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductRepo) Update(ctx context.Context, p *models.Product) (*models.Product, error) {
	args := m.Called(ctx, p)
	row, _ := args.Get(0).(*models.Product)
	return row, args.Error(1)
}

func (m *mockProductRepo) Remove(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockImageRepo struct{ mock.Mock }

func (m *mockImageRepo) FindByProductID(ctx context.Context, productID string) ([]*models.ProductImage, error) {
	args := m.Called(ctx, productID)
	rows, _ := args.Get(0).([]*models.ProductImage)
	return rows, args.Error(1)
}

func (m *mockImageRepo) FindByID(ctx context.Context, id string) (*models.ProductImage, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*models.ProductImage)
	return row, args.Error(1)
}

func (m *mockImageRepo) Persist(ctx context.Context, img *models.ProductImage) error {
	return m.Called(ctx, img).Error(0)
}

func (m *mockImageRepo) Update(ctx context.Context, img *models.ProductImage) (*models.ProductImage, error) {
	args := m.Called(ctx, img)
	row, _ := args.Get(0).(*models.ProductImage)
	return row, args.Error(1)
}

func (m *mockImageRepo) Remove(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockPayments struct{ mock.Mock }

func (m *mockPayments) RequestPayment(ctx context.Context, req PaymentRequest) error {
	return m.Called(ctx, req).Error(0)
}

type mockProduction struct{ mock.Mock }

func (m *mockProduction) RequestProduction(ctx context.Context, req ProductionRequest) error {
	return m.Called(ctx, req).Error(0)
}

// recordingBus keeps every published message. err, when set, is returned
// from every Publish after recording.
type recordingBus struct {
	mu   sync.Mutex
	sent []published
	err  error
}

type published struct {
	topic string
	msg   events.Message
}

func (b *recordingBus) Publish(_ context.Context, topic string, msg events.Message) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, published{topic: topic, msg: msg})
	return b.err
}

func (b *recordingBus) kinds() []events.Kind {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]events.Kind, len(b.sent))
	for i, p := range b.sent {
		out[i] = p.msg.Event
	}
	return out
}

func (b *recordingBus) notices() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []string
	for _, p := range b.sent {
		if p.msg.Event == events.KindSendNotify {
			out = append(out, p.msg.Message)
		}
	}
	return out
}
