package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vaidashi/fastfood-api/internal/models"
	apperrors "github.com/vaidashi/fastfood-api/pkg/errors"
	"github.com/vaidashi/fastfood-api/pkg/logger"
)

// OrderItemInput holds the fields of a single order line
type OrderItemInput struct {
	OrderID   string           `json:"orderId"`
	ProductID string           `json:"productId"`
	Price     *decimal.Decimal `json:"price"`
	Quantity  int              `json:"quantity"`
	Obs       string           `json:"obs"`
}

// OrderItemService manages order lines outside order placement
type OrderItemService struct {
	items    OrderItemRepository
	orders   OrderRepository
	products ProductLookup
	logger   logger.Logger
}

// NewOrderItemService creates a new OrderItemService
func NewOrderItemService(items OrderItemRepository, orders OrderRepository, products ProductLookup, logger logger.Logger) *OrderItemService {
	return &OrderItemService{items: items, orders: orders, products: products, logger: logger}
}

func (s *OrderItemService) GetAll(ctx context.Context) ([]*models.OrderItem, error) {
	return s.items.FindAll(ctx)
}

func (s *OrderItemService) GetByOrderID(ctx context.Context, orderID string) ([]*models.OrderItem, error) {
	if !models.IsObjectID(orderID) {
		return nil, ErrOrderIDInvalid
	}
	return s.items.FindByOrderID(ctx, orderID)
}

func (s *OrderItemService) GetByID(ctx context.Context, id string) (*models.OrderItem, error) {
	item, err := s.items.FindByID(ctx, id)

	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrIDInexistent, err)
	}

	return item, err
}

// Create adds a line to an existing order. The price defaults to the
// product's current price.
func (s *OrderItemService) Create(ctx context.Context, in OrderItemInput) (*models.OrderItem, error) {
	if !models.IsObjectID(in.OrderID) {
		return nil, ErrOrderIDInvalid
	}

	if _, err := s.orders.FindByID(ctx, in.OrderID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrOrderIDInvalid
		}
		return nil, err
	}

	if !models.IsObjectID(in.ProductID) {
		return nil, ErrProductIDInvalid
	}

	p, err := s.products.FindByID(ctx, in.ProductID)

	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrProductIDInvalid
		}
		return nil, err
	}

	if in.Quantity <= 0 {
		return nil, ErrQuantityInvalid
	}

	price := p.Price
	if in.Price != nil {
		price = *in.Price
	}

	item := models.NewOrderItem(in.OrderID, in.ProductID, price, in.Quantity, in.Obs)

	if err := s.items.PersistBatch(ctx, []*models.OrderItem{item}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailureInsert, err)
	}

	if err := s.refreshTotals(ctx, in.OrderID); err != nil {
		return nil, err
	}

	return item, nil
}

// Update changes a line's price, quantity and note
func (s *OrderItemService) Update(ctx context.Context, id string, in OrderItemInput) (*models.OrderItem, error) {
	current, err := s.GetByID(ctx, id)

	if err != nil {
		return nil, err
	}

	if in.Quantity <= 0 {
		return nil, ErrQuantityInvalid
	}

	if in.Price != nil {
		current.Price = *in.Price
	}
	current.Quantity = in.Quantity
	current.Obs = in.Obs

	updated, err := s.items.Update(ctx, current)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailureUpdate, err)
	}

	if err := s.refreshTotals(ctx, updated.OrderID); err != nil {
		return nil, err
	}

	return updated, nil
}

// Remove deletes a line and recomputes its order's totals
func (s *OrderItemService) Remove(ctx context.Context, id string) error {
	item, err := s.GetByID(ctx, id)

	if err != nil {
		return err
	}

	if err := s.items.Remove(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", ErrIDInexistent, err)
	}

	return s.refreshTotals(ctx, item.OrderID)
}

// refreshTotals stores the order's quantity and amount as the sums over
// its current lines. Status, payment and description are left as stored,
// and no side effects fire.
func (s *OrderItemService) refreshTotals(ctx context.Context, orderID string) error {
	lines, err := s.items.FindByOrderID(ctx, orderID)

	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailureUpdate, err)
	}

	row, err := s.orders.FindByID(ctx, orderID)

	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailureUpdate, err)
	}

	quantity := 0
	amount := decimal.Zero

	for _, l := range lines {
		quantity += l.Quantity
		amount = amount.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	if row.Quantity == quantity && row.Amount.Equal(amount) {
		return nil
	}

	_, err = s.orders.Update(ctx, models.OrderUpdate{
		ID:                  row.ID,
		CustomerID:          row.CustomerID,
		Quantity:            quantity,
		Amount:              amount,
		Status:              row.Status,
		Payment:             row.Payment,
		PaymentReference:    row.PaymentReference,
		ProductionReference: row.ProductionReference,
		Description:         row.Description,
	})

	if err != nil {
		s.logger.Error("Failed to refresh order totals", "error", err, "orderID", orderID)
		return fmt.Errorf("%w: %w", ErrFailureUpdate, err)
	}

	s.logger.Debug("Order totals refreshed", "orderID", orderID, "quantity", quantity, "amount", amount.String())
	return nil
}

// RemoveByOrderID removes every line of an order
func (s *OrderItemService) RemoveByOrderID(ctx context.Context, orderID string) (int64, error) {
	n, err := s.items.RemoveByOrderID(ctx, orderID)

	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrIDInexistent, err)
	}

	return n, nil
}
