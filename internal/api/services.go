package api

import (
	"context"

	"github.com/vaidashi/fastfood-api/internal/domain/order"
	"github.com/vaidashi/fastfood-api/internal/models"
	"github.com/vaidashi/fastfood-api/internal/service"
)

// Orders is the order use-case surface the routes call
type Orders interface {
	PlaceOrder(ctx context.Context, customerID string, lines []service.ItemInput) (*service.OrderDetails, error)
	OrderDetails(ctx context.Context, id string) (*service.OrderDetails, error)
	AllOrders(ctx context.Context) ([]*order.Order, error)
	OrdersByStatus(ctx context.Context, status string) ([]*service.OrderDetails, error)
	OpenOrders(ctx context.Context) ([]*service.OrderDetails, error)
	ChangeOrder(ctx context.Context, id string, in service.ChangeOrderInput) (*order.Order, error)
	ChangePayment(ctx context.Context, id, payment string) (*order.Order, error)
	RemoveOrder(ctx context.Context, id string) error
}

type Customers interface {
	GetAll(ctx context.Context) ([]*models.Customer, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	GetByCPF(ctx context.Context, cpf string) (*models.Customer, error)
	Create(ctx context.Context, in service.CustomerInput) (*models.Customer, error)
	Update(ctx context.Context, id string, in service.CustomerInput) (*models.Customer, error)
	Remove(ctx context.Context, id string) error
}

type Products interface {
	GetAll(ctx context.Context) ([]*models.Product, error)
	GetByCategory(ctx context.Context, category string) ([]*models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, in service.ProductInput) (*models.Product, error)
	Update(ctx context.Context, id string, in service.ProductInput) (*models.Product, error)
	Remove(ctx context.Context, id string) error

	Images(ctx context.Context, productID string) ([]*models.ProductImage, error)
	Image(ctx context.Context, productID, imageID string) (*models.ProductImage, error)
	AddImage(ctx context.Context, productID string, in service.ImageInput) (*models.ProductImage, error)
	UpdateImage(ctx context.Context, productID, imageID string, in service.ImageInput) (*models.ProductImage, error)
	RemoveImage(ctx context.Context, productID, imageID string) error
}

type OrderItems interface {
	GetAll(ctx context.Context) ([]*models.OrderItem, error)
	GetByOrderID(ctx context.Context, orderID string) ([]*models.OrderItem, error)
	GetByID(ctx context.Context, id string) (*models.OrderItem, error)
	Create(ctx context.Context, in service.OrderItemInput) (*models.OrderItem, error)
	Update(ctx context.Context, id string, in service.OrderItemInput) (*models.OrderItem, error)
	Remove(ctx context.Context, id string) error
}

// DeadLetters is the operator surface over parked outbox messages
type DeadLetters interface {
	List(ctx context.Context, status string, limit int) ([]*models.DeadLetterMessage, error)
	Get(ctx context.Context, id int64) (*models.DeadLetterMessage, error)
	Retry(ctx context.Context, id int64) (*models.OutboxMessage, error)
	Discard(ctx context.Context, id int64) error
}

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}
