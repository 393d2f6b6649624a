package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vaidashi/fastfood-api/internal/domain/order"
	"github.com/vaidashi/fastfood-api/internal/events"
	"github.com/vaidashi/fastfood-api/internal/models"
	apperrors "github.com/vaidashi/fastfood-api/pkg/errors"
	"github.com/vaidashi/fastfood-api/pkg/logger"
	"github.com/vaidashi/fastfood-api/pkg/metrics"
)

// Customer notification texts
const (
	msgAwaitingPayment = "Order placed: awaiting payment"
	msgPaymentApproved = "Order %d: payment approved"
	msgPaymentRejected = "Order %d: payment rejected"
	msgFailure         = "Order %d: a failure occurred"
	msgInPreparation   = "Order %d: in preparation"
	msgReady           = "Order %d: ready, please collect"
	msgDelivered       = "Order %d: delivered"
)

// CreateOrderInput holds the fields of a new order
type CreateOrderInput struct {
	CustomerID  string
	Quantity    int
	Amount      decimal.Decimal
	Status      order.Status
	Payment     order.Payment
	Description string
}

// UpdateOrderInput holds every mutable field of an order
type UpdateOrderInput struct {
	ID                  string
	CustomerID          string
	Quantity            int
	Amount              decimal.Decimal
	Status              order.Status
	Payment             order.Payment
	PaymentReference    string
	ProductionReference string
	Description         string
}

// OrderServiceConfig holds the order service settings
type OrderServiceConfig struct {
	PaymentBroker string
}

// OrderService runs the order lifecycle: it validates and stores
// transitions and fans them out to payment, production and notifications
type OrderService struct {
	orders     OrderRepository
	payments   PaymentGateway
	production ProductionGateway
	bus        MessageBus
	effects    *dispatcher
	broker     string
	logger     logger.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orders OrderRepository,
	payments PaymentGateway,
	production ProductionGateway,
	bus MessageBus,
	cfg OrderServiceConfig,
	m *metrics.Metrics,
	logger logger.Logger,
) *OrderService {
	broker := cfg.PaymentBroker

	if broker == "" {
		broker = "fake"
	}

	return &OrderService{
		orders:     orders,
		payments:   payments,
		production: production,
		bus:        bus,
		effects:    newDispatcher(logger, m),
		broker:     broker,
		logger:     logger,
	}
}

// GetAll returns every order
func (s *OrderService) GetAll(ctx context.Context) ([]*order.Order, error) {
	rows, err := s.orders.FindAll(ctx)

	if err != nil {
		return nil, err
	}

	return restoreAll(rows)
}

// GetByStatus returns the orders in any of the given statuses
func (s *OrderService) GetByStatus(ctx context.Context, statuses ...order.Status) ([]*order.Order, error) {
	raw := make([]string, len(statuses))

	for i, st := range statuses {
		raw[i] = string(st)
	}

	rows, err := s.orders.FindByStatus(ctx, raw...)

	if err != nil {
		return nil, err
	}

	return restoreAll(rows)
}

// GetByID returns one order
func (s *OrderService) GetByID(ctx context.Context, id string) (*order.Order, error) {
	row, err := s.orders.FindByID(ctx, id)

	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrIDInexistent, err)
		}
		return nil, err
	}

	return order.FromModel(row)
}

// Create validates and stores a new order, then requests its payment
// and tells the customer it is awaiting payment
func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (*order.Order, error) {
	if in.CustomerID != "" {
		if len(in.CustomerID) != order.IDLength {
			return nil, ErrCustomerIDInvalid
		}

		ok, err := s.orders.IsValidID(ctx, in.CustomerID)

		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCustomerIDInvalid, err)
		}
		if !ok {
			return nil, ErrCustomerIDInvalid
		}
	}

	if _, err := order.New(order.Attributes{
		CustomerID:  in.CustomerID,
		Quantity:    in.Quantity,
		Amount:      in.Amount,
		Status:      in.Status,
		Payment:     in.Payment,
		Description: in.Description,
	}); err != nil {
		return nil, err
	}

	row, err := s.orders.Persist(ctx, models.NewOrder{
		CustomerID:  in.CustomerID,
		Quantity:    in.Quantity,
		Amount:      in.Amount,
		Status:      string(in.Status),
		Payment:     string(in.Payment),
		Description: in.Description,
	})

	if err != nil {
		s.logger.Error("Failed to persist order", "error", err, "customerID", in.CustomerID)
		return nil, fmt.Errorf("%w: %w", ErrFailureInsert, err)
	}

	created, err := order.FromModel(row)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailureInsert, err)
	}

	s.logger.Info("Order created", "orderID", created.ID(), "protocol", created.Protocol())

	s.effects.run(ctx, "payment.request", created.ID(), func(ctx context.Context) error {
		return s.payments.RequestPayment(ctx, PaymentRequest{
			OrderID:  created.ID(),
			Broker:   s.broker,
			Quantity: created.Quantity(),
			Amount:   created.Amount(),
		})
	})

	s.notify(ctx, created, msgAwaitingPayment)

	return created, nil
}

// Update normalises the requested (status, payment) pair, stores the
// order and fires the notifications the new state calls for
func (s *OrderService) Update(ctx context.Context, in UpdateOrderInput) (*order.Order, error) {
	requested := in.Payment
	status, payment := order.Normalize(in.Status, in.Payment)

	if err := order.ValidateTransition(status, payment); err != nil {
		return nil, err
	}

	row, err := s.orders.Update(ctx, models.OrderUpdate{
		ID:                  in.ID,
		CustomerID:          in.CustomerID,
		Quantity:            in.Quantity,
		Amount:              in.Amount,
		Status:              string(status),
		Payment:             string(payment),
		PaymentReference:    in.PaymentReference,
		ProductionReference: in.ProductionReference,
		Description:         in.Description,
	})

	if err != nil {
		s.logger.Error("Failed to update order", "error", err, "orderID", in.ID)
		return nil, fmt.Errorf("%w: %w", ErrFailureUpdate, err)
	}

	updated, err := order.FromModel(row)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailureUpdate, err)
	}

	s.logger.Info("Order updated",
		"orderID", updated.ID(),
		"status", status,
		"payment", payment)

	s.fanOut(ctx, updated, requested)

	return updated, nil
}

// fanOut fires the side effects of a stored transition. Each effect is
// independent of the others.
func (s *OrderService) fanOut(ctx context.Context, o *order.Order, requested order.Payment) {
	protocol := o.Protocol()

	switch {
	case o.Status() == order.StatusReceive && o.Payment() == order.PaymentApproved && o.ProductionReference() == "":
		s.notify(ctx, o, fmt.Sprintf(msgPaymentApproved, protocol))

		s.effects.run(ctx, "production.request", o.ID(), func(ctx context.Context) error {
			return s.production.RequestProduction(ctx, ProductionRequest{
				OrderID:     o.ID(),
				Protocol:    protocol,
				Description: o.Description(),
			})
		})

	case o.Status() == order.StatusFail:
		text := fmt.Sprintf(msgFailure, protocol)
		if requested == order.PaymentDenied {
			text = fmt.Sprintf(msgPaymentRejected, protocol)
		}
		s.notify(ctx, o, text)

		s.effects.run(ctx, "payment.reject", o.ID(), func(ctx context.Context) error {
			return s.bus.Publish(ctx, events.TopicPayments, events.RejectPayment(o.ID()))
		})
	}

	if o.Payment() == order.PaymentDenied || o.Payment() == order.PaymentCanceled {
		s.notify(ctx, o, fmt.Sprintf(msgPaymentRejected, protocol))
	}

	switch o.Status() {
	case order.StatusInProgress:
		s.notify(ctx, o, fmt.Sprintf(msgInPreparation, protocol))
	case order.StatusFinish:
		s.notify(ctx, o, fmt.Sprintf(msgReady, protocol))
	case order.StatusDone:
		s.notify(ctx, o, fmt.Sprintf(msgDelivered, protocol))
	}
}

func (s *OrderService) notify(ctx context.Context, o *order.Order, text string) {
	s.effects.run(ctx, "customer.notify", o.ID(), func(ctx context.Context) error {
		return s.bus.Publish(ctx, events.TopicOrders, events.Notify(o.CustomerID(), text))
	})
}

// Remove deletes an order. Callers remove its items first.
func (s *OrderService) Remove(ctx context.Context, id string) error {
	if err := s.orders.Remove(ctx, id); err != nil {
		s.logger.Warn("Failed to remove order", "error", err, "orderID", id)
		return fmt.Errorf("%w: %w", ErrIDInexistent, err)
	}

	s.logger.Info("Order removed", "orderID", id)
	return nil
}

func restoreAll(rows []*models.Order) ([]*order.Order, error) {
	out := make([]*order.Order, 0, len(rows))

	for _, row := range rows {
		o, err := order.FromModel(row)

		if err != nil {
			return nil, fmt.Errorf("order %s: %w", row.ID, err)
		}

		out = append(out, o)
	}

	return out, nil
}
