package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/vaidashi/fastfood-api/internal/domain/order"
	"github.com/vaidashi/fastfood-api/internal/models"
	apperrors "github.com/vaidashi/fastfood-api/pkg/errors"
	"github.com/vaidashi/fastfood-api/pkg/logger"
)

// fetchLimit bounds concurrent item and product lookups per request
const fetchLimit = 8

// ItemInput is one requested order line
type ItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Obs       string `json:"obs"`
}

// ChangeOrderInput carries the fields a caller wants to change. Empty
// fields keep the order's current value.
type ChangeOrderInput struct {
	CustomerID          string
	Status              string
	Payment             string
	PaymentReference    string
	ProductionReference string
}

// OrderDetails is an order together with its lines
type OrderDetails struct {
	Order *order.Order        `json:"order"`
	Items []*models.OrderItem `json:"items"`
}

// OrderManager composes orders with their items, customers and products
type OrderManager struct {
	orders    *OrderService
	items     OrderItemRepository
	customers CustomerLookup
	products  ProductLookup
	logger    logger.Logger
}

// NewOrderManager creates a new OrderManager
func NewOrderManager(
	orders *OrderService,
	items OrderItemRepository,
	customers CustomerLookup,
	products ProductLookup,
	logger logger.Logger,
) *OrderManager {
	return &OrderManager{
		orders:    orders,
		items:     items,
		customers: customers,
		products:  products,
		logger:    logger,
	}
}

// PlaceOrder validates the requested lines and customer, creates the order
// with the products' current prices and stores its lines
func (m *OrderManager) PlaceOrder(ctx context.Context, customerID string, lines []ItemInput) (*OrderDetails, error) {
	if len(lines) == 0 {
		return nil, ErrOrderItemsInvalid
	}

	products := make(map[string]*models.Product, len(lines))
	quantity := 0
	amount := decimal.Zero

	var desc strings.Builder
	desc.WriteString("Order\n\n")

	for _, line := range lines {
		if line.ProductID == "" {
			return nil, ErrProductIDInvalid
		}
		if line.Quantity <= 0 {
			return nil, ErrQuantityInvalid
		}

		p, ok := products[line.ProductID]

		if !ok {
			var err error
			p, err = m.products.FindByID(ctx, line.ProductID)

			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return nil, fmt.Errorf("%w: %s", ErrProductInexistent, line.ProductID)
				}
				return nil, err
			}

			products[line.ProductID] = p
		}

		subtotal := p.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		fmt.Fprintf(&desc, "%dx $ %s: %s  $ %s\n", line.Quantity, p.Price.StringFixed(2), p.Name, subtotal.StringFixed(2))

		quantity += line.Quantity
		amount = amount.Add(subtotal)
	}

	fmt.Fprintf(&desc, "\n%d items: Total $ %s", quantity, amount.StringFixed(2))

	if customerID != "" {
		if len(customerID) != order.IDLength {
			return nil, ErrCustomerIDInvalid
		}

		if _, err := m.customers.FindByID(ctx, customerID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, ErrCustomerInexistent
			}
			return nil, err
		}
	}

	created, err := m.orders.Create(ctx, CreateOrderInput{
		CustomerID:  customerID,
		Quantity:    quantity,
		Amount:      amount,
		Status:      order.StatusReceive,
		Payment:     order.PaymentNone,
		Description: desc.String(),
	})

	if err != nil {
		return nil, err
	}

	items := make([]*models.OrderItem, 0, len(lines))

	for _, line := range lines {
		p := products[line.ProductID]
		item := models.NewOrderItem(created.ID(), line.ProductID, p.Price, line.Quantity, line.Obs)
		item.Product = p
		items = append(items, item)
	}

	if err := m.items.PersistBatch(ctx, items); err != nil {
		m.logger.Error("Failed to persist order items, removing order", "error", err, "orderID", created.ID())

		if rmErr := m.orders.Remove(ctx, created.ID()); rmErr != nil {
			m.logger.Error("Failed to remove order without items", "error", rmErr, "orderID", created.ID())
		}

		return nil, fmt.Errorf("%w: %w", ErrFailureInsert, err)
	}

	return &OrderDetails{Order: created, Items: items}, nil
}

// OrderDetails returns an order with its lines and their products
func (m *OrderManager) OrderDetails(ctx context.Context, id string) (*OrderDetails, error) {
	o, err := m.orders.GetByID(ctx, id)

	if err != nil {
		return nil, err
	}

	details := []*OrderDetails{{Order: o}}

	if err := m.attachItems(ctx, details, true); err != nil {
		return nil, err
	}

	return details[0], nil
}

// AllOrders returns every order without its lines
func (m *OrderManager) AllOrders(ctx context.Context) ([]*order.Order, error) {
	return m.orders.GetAll(ctx)
}

// OrdersByStatus returns the orders in a status with their lines
func (m *OrderManager) OrdersByStatus(ctx context.Context, status string) ([]*OrderDetails, error) {
	st, ok := order.ParseStatus(status)

	if !ok {
		return nil, order.ErrStatusInvalid
	}

	orders, err := m.orders.GetByStatus(ctx, st)

	if err != nil {
		return nil, err
	}

	details := wrap(orders)

	if err := m.attachItems(ctx, details, false); err != nil {
		return nil, err
	}

	return details, nil
}

// OpenOrders returns the kitchen queue: DONE first, then IN_PROGRESS,
// then RECEIVE, oldest first within a status
func (m *OrderManager) OpenOrders(ctx context.Context) ([]*OrderDetails, error) {
	orders, err := m.orders.GetByStatus(ctx, order.OpenStatuses()...)

	if err != nil {
		return nil, err
	}

	details := wrap(orders)

	if err := m.attachItems(ctx, details, true); err != nil {
		return nil, err
	}

	SortQueue(details)

	return details, nil
}

// SortQueue orders details by queue rank, then creation time. Equal keys
// keep their input order.
func SortQueue(details []*OrderDetails) {
	sort.SliceStable(details, func(i, j int) bool {
		a, b := details[i].Order, details[j].Order
		ra, rb := order.QueueRank(a.Status()), order.QueueRank(b.Status())

		if ra != rb {
			return ra < rb
		}

		return a.CreatedAt().Before(b.CreatedAt())
	})
}

// ChangeOrder applies a status, payment or reference change to an order
func (m *OrderManager) ChangeOrder(ctx context.Context, id string, in ChangeOrderInput) (*order.Order, error) {
	current, err := m.orders.GetByID(ctx, id)

	if err != nil {
		return nil, err
	}

	if order.IsTerminal(current.Status(), current.Payment()) {
		m.logger.Warn("Change refused on finalized order", "orderID", id, "status", current.Status(), "payment", current.Payment())
		return nil, fmt.Errorf("%w: %s is %s/%s", order.ErrOrderFinalized, id, current.Status(), current.Payment())
	}

	next := UpdateOrderInput{
		ID:                  current.ID(),
		CustomerID:          firstNonEmpty(in.CustomerID, current.CustomerID()),
		Quantity:            current.Quantity(),
		Amount:              current.Amount(),
		Status:              order.Status(firstNonEmpty(in.Status, string(current.Status()))),
		Payment:             order.Payment(firstNonEmpty(in.Payment, string(current.Payment()))),
		PaymentReference:    firstNonEmpty(in.PaymentReference, current.PaymentReference()),
		ProductionReference: firstNonEmpty(in.ProductionReference, current.ProductionReference()),
		Description:         current.Description(),
	}

	return m.orders.Update(ctx, next)
}

// ChangePayment applies a payment change to an order
func (m *OrderManager) ChangePayment(ctx context.Context, id, payment string) (*order.Order, error) {
	if payment == "" {
		return nil, order.ErrPaymentInvalid
	}

	return m.ChangeOrder(ctx, id, ChangeOrderInput{Payment: payment})
}

// RemoveOrder deletes an order's lines and then the order. The order
// stays when its lines cannot be removed.
func (m *OrderManager) RemoveOrder(ctx context.Context, id string) error {
	removed, err := m.items.RemoveByOrderID(ctx, id)

	if err != nil {
		m.logger.Error("Failed to remove order items", "error", err, "orderID", id)
		return fmt.Errorf("%w: %w", ErrFailureRemove, err)
	}

	if err := m.orders.Remove(ctx, id); err != nil {
		return err
	}

	m.logger.Info("Order and items removed", "orderID", id, "items", removed)
	return nil
}

// attachItems loads the lines of every order concurrently and, when
// withProducts is set, each line's product
func (m *OrderManager) attachItems(ctx context.Context, details []*OrderDetails, withProducts bool) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchLimit)

	for _, d := range details {
		d := d

		g.Go(func() error {
			items, err := m.items.FindByOrderID(ctx, d.Order.ID())

			if err != nil {
				return fmt.Errorf("items of order %s: %w", d.Order.ID(), err)
			}

			if withProducts {
				for _, item := range items {
					p, err := m.products.FindByID(ctx, item.ProductID)

					switch {
					case err == nil:
						item.Product = p
					case errors.Is(err, apperrors.ErrNotFound):
						// product removed after the order was placed
					default:
						return fmt.Errorf("product %s: %w", item.ProductID, err)
					}
				}
			}

			d.Items = items
			return nil
		})
	}

	return g.Wait()
}

func wrap(orders []*order.Order) []*OrderDetails {
	out := make([]*OrderDetails, len(orders))

	for i, o := range orders {
		out[i] = &OrderDetails{Order: o, Items: []*models.OrderItem{}}
	}

	return out
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
