package messaging

import (
	"context"

	"github.com/vaidashi/fastfood-api/internal/events"
	"github.com/vaidashi/fastfood-api/internal/service"
)

// Publisher publishes events to a logical topic
type Publisher interface {
	Publish(ctx context.Context, topic string, msg events.Message) error
}

// PaymentPublisher requests payments with createPayment events
type PaymentPublisher struct {
	bus Publisher
}

func NewPaymentPublisher(bus Publisher) *PaymentPublisher {
	return &PaymentPublisher{bus: bus}
}

func (p *PaymentPublisher) RequestPayment(ctx context.Context, req service.PaymentRequest) error {
	return p.bus.Publish(ctx, events.TopicPayments,
		events.CreatePayment(req.OrderID, req.Broker, req.Quantity, req.Amount))
}

// ProductionPublisher requests production with createProduction events
type ProductionPublisher struct {
	bus Publisher
}

func NewProductionPublisher(bus Publisher) *ProductionPublisher {
	return &ProductionPublisher{bus: bus}
}

func (p *ProductionPublisher) RequestProduction(ctx context.Context, req service.ProductionRequest) error {
	return p.bus.Publish(ctx, events.TopicProductions,
		events.CreateProduction(req.OrderID, req.Protocol, req.Description))
}
