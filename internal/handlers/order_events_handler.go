package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shopify/sarama"

	"github.com/vaidashi/fastfood-api/internal/domain/order"
	"github.com/vaidashi/fastfood-api/internal/events"
	"github.com/vaidashi/fastfood-api/internal/models"
	"github.com/vaidashi/fastfood-api/internal/service"
	apperrors "github.com/vaidashi/fastfood-api/pkg/errors"
	"github.com/vaidashi/fastfood-api/pkg/logger"
)

// OrderChanger applies state changes reported by payment and production
type OrderChanger interface {
	ChangeOrder(ctx context.Context, id string, in service.ChangeOrderInput) (*order.Order, error)
}

// CustomerFinder resolves the customer a notification is for
type CustomerFinder interface {
	FindByID(ctx context.Context, id string) (*models.Customer, error)
}

// TextSender delivers a text message to a phone number
type TextSender interface {
	SendText(ctx context.Context, number, text string) error
}

type handlerFunc func(ctx context.Context, msg events.Message) error

// OrderEventsHandler handles events on the orders topic
type OrderEventsHandler struct {
	orders    OrderChanger
	customers CustomerFinder
	texts     TextSender
	logger    logger.Logger
	routes    map[events.Kind]handlerFunc
}

// NewOrderEventsHandler creates a new OrderEventsHandler. texts may be nil,
// in which case notifications are logged and dropped.
func NewOrderEventsHandler(orders OrderChanger, customers CustomerFinder, texts TextSender, logger logger.Logger) *OrderEventsHandler {
	h := &OrderEventsHandler{
		orders:    orders,
		customers: customers,
		texts:     texts,
		logger:    logger,
	}

	h.routes = map[events.Kind]handlerFunc{
		events.KindSendNotify:    h.sendNotify,
		events.KindRejectOrder:   h.rejectOrder,
		events.KindAcceptedOrder: h.acceptedOrder,
		events.KindStatusOrder:   h.statusOrder,
	}

	return h
}

// HandleMessage decodes a Kafka record and handles it. Malformed records
// are logged and acknowledged since redelivery cannot fix them.
func (h *OrderEventsHandler) HandleMessage(ctx context.Context, msg *sarama.ConsumerMessage) error {
	event, err := events.Decode(msg.Value)

	if err != nil {
		h.logger.Error("Dropping malformed order event",
			"error", err,
			"partition", msg.Partition,
			"offset", msg.Offset)
		return nil
	}

	return h.Handle(ctx, event)
}

// Handle dispatches one decoded event by kind
func (h *OrderEventsHandler) Handle(ctx context.Context, msg events.Message) error {
	route, ok := h.routes[msg.Event]

	if !ok {
		h.logger.Warn("Unknown order event", "event", msg.Event, "eventID", msg.EventID)
		return nil
	}

	h.logger.Info("Handling order event",
		"event", msg.Event,
		"eventID", msg.EventID,
		"orderID", msg.OrderID)

	return route(ctx, msg)
}

func (h *OrderEventsHandler) sendNotify(ctx context.Context, msg events.Message) error {
	if msg.CustomerID == "" || msg.Message == "" {
		h.logger.Debug("Notification without customer or text skipped", "eventID", msg.EventID)
		return nil
	}

	c, err := h.customers.FindByID(ctx, msg.CustomerID)

	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			h.logger.Warn("Notification for unknown customer skipped", "customerID", msg.CustomerID)
			return nil
		}
		return fmt.Errorf("find customer %s: %w", msg.CustomerID, err)
	}

	if c.Phone == "" {
		h.logger.Debug("Customer has no phone, notification skipped", "customerID", c.ID)
		return nil
	}

	if h.texts == nil {
		h.logger.Info("Notification gateway disabled", "customerID", c.ID, "message", msg.Message)
		return nil
	}

	if err := h.texts.SendText(ctx, c.Phone, msg.Message); err != nil {
		return fmt.Errorf("send notification to %s: %w", c.ID, err)
	}

	return nil
}

func (h *OrderEventsHandler) rejectOrder(ctx context.Context, msg events.Message) error {
	return h.change(ctx, msg, service.ChangeOrderInput{
		Status:              string(order.StatusFail),
		Payment:             string(order.PaymentCanceled),
		PaymentReference:    msg.PaymentReference,
		ProductionReference: msg.ProductionReference,
	})
}

func (h *OrderEventsHandler) acceptedOrder(ctx context.Context, msg events.Message) error {
	return h.change(ctx, msg, service.ChangeOrderInput{
		Status:              string(order.StatusReceive),
		Payment:             msg.Status,
		PaymentReference:    msg.PaymentReference,
		ProductionReference: msg.ProductionReference,
	})
}

func (h *OrderEventsHandler) statusOrder(ctx context.Context, msg events.Message) error {
	return h.change(ctx, msg, service.ChangeOrderInput{
		Status:              msg.Status,
		ProductionReference: msg.ProductionReference,
	})
}

// change applies in to the order named by msg. Rejected changes are
// acknowledged; store failures are returned so the record is redelivered.
func (h *OrderEventsHandler) change(ctx context.Context, msg events.Message, in service.ChangeOrderInput) error {
	if msg.OrderID == "" {
		h.logger.Warn("Order event without order id", "event", msg.Event, "eventID", msg.EventID)
		return nil
	}

	_, err := h.orders.ChangeOrder(ctx, msg.OrderID, in)

	if err == nil {
		return nil
	}

	if status := service.HTTPStatus(err); status >= 400 && status < 500 {
		h.logger.Warn("Order event rejected",
			"event", msg.Event,
			"orderID", msg.OrderID,
			"error", err)
		return nil
	}

	return fmt.Errorf("apply %s to order %s: %w", msg.Event, msg.OrderID, err)
}
