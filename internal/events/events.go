// Package events defines the messages exchanged with the payment,
// production and notification services.
package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vaidashi/fastfood-api/internal/models"
)

// Kind identifies what a message asks its consumer to do
type Kind string

const (
	KindSendNotify       Kind = "sendNotify"
	KindCreatePayment    Kind = "createPayment"
	KindRejectPayment    Kind = "rejectPayment"
	KindCreateProduction Kind = "createProduction"
	KindRejectOrder      Kind = "rejectOrder"
	KindAcceptedOrder    Kind = "acceptedOrder"
	KindStatusOrder      Kind = "statusOrder"

	// legacyAcceptedOrder is the spelling older payment services still emit
	legacyAcceptedOrder Kind = "aceptedOrder"
)

// Logical topics. The bus maps them onto configured broker topics.
const (
	TopicOrders      = "orders"
	TopicPayments    = "payments"
	TopicProductions = "productions"
)

// ProductionWaiting is the production status sent with new production requests
const ProductionWaiting = "WAITING"

var ErrMalformed = errors.New("malformed message")

// Message is the flat envelope used on every topic. Fields irrelevant to
// a kind are left empty.
type Message struct {
	Event      Kind      `json:"event"`
	EventID    string    `json:"eventId"`
	OccurredAt time.Time `json:"occurredAt"`

	OrderID             string           `json:"orderId,omitempty"`
	CustomerID          string           `json:"customerId,omitempty"`
	Message             string           `json:"message,omitempty"`
	Mode                string           `json:"mode,omitempty"`
	Protocol            int64            `json:"protocol,omitempty"`
	OrderDescription    string           `json:"orderDescription,omitempty"`
	Quantity            int              `json:"quantity,omitempty"`
	Amount              *decimal.Decimal `json:"amount,omitempty"`
	Status              string           `json:"status,omitempty"`
	PaymentReference    string           `json:"paymentReference,omitempty"`
	ProductionReference string           `json:"productionReference,omitempty"`
}

func newMessage(kind Kind) Message {
	return Message{
		Event:      kind,
		EventID:    models.GenerateID("evt"),
		OccurredAt: models.GetCurrentTime(),
	}
}

// Notify asks the notification consumer to message a customer
func Notify(customerID, text string) Message {
	m := newMessage(KindSendNotify)
	m.CustomerID = customerID
	m.Message = text
	return m
}

// CreatePayment asks the payment service to charge an order
func CreatePayment(orderID, broker string, quantity int, amount decimal.Decimal) Message {
	m := newMessage(KindCreatePayment)
	m.OrderID = orderID
	m.Mode = broker
	m.Quantity = quantity
	m.Amount = &amount
	return m
}

// RejectPayment asks the payment service to cancel an order's payment
func RejectPayment(orderID string) Message {
	m := newMessage(KindRejectPayment)
	m.OrderID = orderID
	m.Status = "CANCELED"
	return m
}

// CreateProduction asks the kitchen to start preparing an order
func CreateProduction(orderID string, protocol int64, description string) Message {
	m := newMessage(KindCreateProduction)
	m.OrderID = orderID
	m.Protocol = protocol
	m.OrderDescription = description
	m.Status = ProductionWaiting
	return m
}

// Key is the partitioning key: the order when there is one, else the customer
func (m Message) Key() string {
	if m.OrderID != "" {
		return m.OrderID
	}
	return m.CustomerID
}

// Encode serialises the message
func (m Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Decode parses a message and canonicalises its kind
func Decode(raw []byte) (Message, error) {
	var m Message

	if err := json.Unmarshal(raw, &m); err != nil {
		return Message{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if m.Event == "" {
		return Message{}, fmt.Errorf("%w: missing event", ErrMalformed)
	}

	if m.Event == legacyAcceptedOrder {
		m.Event = KindAcceptedOrder
	}

	return m, nil
}
