package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vaidashi/fastfood-api/internal/events"
	"github.com/vaidashi/fastfood-api/internal/models"
)

// OrderRepository persists orders
type OrderRepository interface {
	FindAll(ctx context.Context) ([]*models.Order, error)
	FindByStatus(ctx context.Context, statuses ...string) ([]*models.Order, error)
	FindByID(ctx context.Context, id string) (*models.Order, error)
	// IsValidID reports whether id is well formed and names an existing customer
	IsValidID(ctx context.Context, id string) (bool, error)
	Persist(ctx context.Context, in models.NewOrder) (*models.Order, error)
	Update(ctx context.Context, in models.OrderUpdate) (*models.Order, error)
	Remove(ctx context.Context, id string) error
}

// OrderItemRepository persists order lines
type OrderItemRepository interface {
	FindAll(ctx context.Context) ([]*models.OrderItem, error)
	FindByOrderID(ctx context.Context, orderID string) ([]*models.OrderItem, error)
	FindByID(ctx context.Context, id string) (*models.OrderItem, error)
	PersistBatch(ctx context.Context, items []*models.OrderItem) error
	Update(ctx context.Context, item *models.OrderItem) (*models.OrderItem, error)
	Remove(ctx context.Context, id string) error
	RemoveByOrderID(ctx context.Context, orderID string) (int64, error)
}

type CustomerRepository interface {
	FindAll(ctx context.Context) ([]*models.Customer, error)
	FindByID(ctx context.Context, id string) (*models.Customer, error)
	FindByCPF(ctx context.Context, cpf string) (*models.Customer, error)
	Persist(ctx context.Context, c *models.Customer) error
	Update(ctx context.Context, c *models.Customer) (*models.Customer, error)
	Remove(ctx context.Context, id string) error
}

type ProductRepository interface {
	FindAll(ctx context.Context) ([]*models.Product, error)
	FindByCategory(ctx context.Context, category string) ([]*models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Persist(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) (*models.Product, error)
	Remove(ctx context.Context, id string) error
}

type ProductImageRepository interface {
	FindByProductID(ctx context.Context, productID string) ([]*models.ProductImage, error)
	FindByID(ctx context.Context, id string) (*models.ProductImage, error)
	Persist(ctx context.Context, img *models.ProductImage) error
	Update(ctx context.Context, img *models.ProductImage) (*models.ProductImage, error)
	Remove(ctx context.Context, id string) error
}

// CustomerLookup resolves customer references
type CustomerLookup interface {
	FindByID(ctx context.Context, id string) (*models.Customer, error)
}

// ProductLookup resolves product references
type ProductLookup interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
}

// PaymentRequest asks for an order to be charged
type PaymentRequest struct {
	OrderID  string
	Broker   string
	Quantity int
	Amount   decimal.Decimal
}

// ProductionRequest asks for an order to be prepared
type ProductionRequest struct {
	OrderID     string
	Protocol    int64
	Description string
}

// PaymentGateway requests payment processing for an order
type PaymentGateway interface {
	RequestPayment(ctx context.Context, req PaymentRequest) error
}

// ProductionGateway requests production scheduling for an order
type ProductionGateway interface {
	RequestProduction(ctx context.Context, req ProductionRequest) error
}

// MessageBus publishes messages to a logical topic
type MessageBus interface {
	Publish(ctx context.Context, topic string, msg events.Message) error
}
