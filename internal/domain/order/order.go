// Package order holds the order entity and the rules for which
// (status, payment) pairs an order may be in.
package order

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vaidashi/fastfood-api/internal/models"
)

// Status is the kitchen-side state of an order
type Status string

const (
	StatusReceive    Status = "RECEIVE"
	StatusInProgress Status = "IN_PROGRESS"
	StatusFinish     Status = "FINISH"
	StatusDone       Status = "DONE"
	StatusCanceled   Status = "CANCELED"

	// StatusFail marks an order whose payment or production broke down.
	// Only the update flow and stored records may carry it.
	StatusFail Status = "FAIL"
)

// Payment is the payment-side state of an order
type Payment string

const (
	PaymentNone     Payment = "NONE"
	PaymentWaiting  Payment = "WAITING"
	PaymentApproved Payment = "APPROVED"
	PaymentDenied   Payment = "DENIED"
	PaymentCanceled Payment = "CANCELED"
)

// IDLength is the width of an addressable order id
const IDLength = models.IDLength

var (
	ErrStatusInvalid            = errors.New("status invalid")
	ErrPaymentInvalid           = errors.New("payment invalid")
	ErrPaymentWithStatusInvalid = errors.New("payment which status invalid")
	ErrOrderFinalized           = errors.New("order already finalized")
)

var baseStatuses = map[Status]bool{
	StatusReceive:    true,
	StatusInProgress: true,
	StatusFinish:     true,
	StatusDone:       true,
	StatusCanceled:   true,
}

var payments = map[Payment]bool{
	PaymentNone:     true,
	PaymentWaiting:  true,
	PaymentApproved: true,
	PaymentDenied:   true,
	PaymentCanceled: true,
}

// ParseStatus reports whether s names a status, FAIL included
func ParseStatus(s string) (Status, bool) {
	st := Status(s)
	return st, baseStatuses[st] || st == StatusFail
}

// Attributes are the raw fields an Order is built from
type Attributes struct {
	ID                  string
	Protocol            int64
	CustomerID          string
	Quantity            int
	Amount              decimal.Decimal
	Status              Status
	Payment             Payment
	PaymentReference    string
	ProductionReference string
	Description         string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Order is an immutable, validated order
type Order struct {
	a Attributes
}

// New builds an order, failing on the first broken rule: status, then
// payment, then their compatibility
func New(a Attributes) (*Order, error) {
	o := &Order{a: a}

	if !o.StatusCheck() {
		return nil, ErrStatusInvalid
	}
	if !o.PaymentCheck() {
		return nil, ErrPaymentInvalid
	}
	if !o.StatusWithPaymentCheck() {
		return nil, ErrPaymentWithStatusInvalid
	}

	return o, nil
}

// Restore rehydrates a stored order. Stored records may legitimately be
// failed, so FAIL is accepted and the compatibility table is not applied.
func Restore(a Attributes) (*Order, error) {
	o := &Order{a: a}

	if _, ok := ParseStatus(string(a.Status)); !ok {
		return nil, ErrStatusInvalid
	}
	if !o.PaymentCheck() {
		return nil, ErrPaymentInvalid
	}

	return o, nil
}

// FromModel rehydrates a stored row
func FromModel(m *models.Order) (*Order, error) {
	return Restore(Attributes{
		ID:                  m.ID,
		Protocol:            m.Protocol,
		CustomerID:          m.CustomerID,
		Quantity:            m.Quantity,
		Amount:              m.Amount,
		Status:              Status(m.Status),
		Payment:             Payment(m.Payment),
		PaymentReference:    m.PaymentReference,
		ProductionReference: m.ProductionReference,
		Description:         m.Description,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	})
}

func (o *Order) ID() string                  { return o.a.ID }
func (o *Order) Protocol() int64             { return o.a.Protocol }
func (o *Order) CustomerID() string          { return o.a.CustomerID }
func (o *Order) Quantity() int               { return o.a.Quantity }
func (o *Order) Amount() decimal.Decimal     { return o.a.Amount }
func (o *Order) Status() Status              { return o.a.Status }
func (o *Order) Payment() Payment            { return o.a.Payment }
func (o *Order) PaymentReference() string    { return o.a.PaymentReference }
func (o *Order) ProductionReference() string { return o.a.ProductionReference }
func (o *Order) Description() string         { return o.a.Description }
func (o *Order) CreatedAt() time.Time        { return o.a.CreatedAt }
func (o *Order) UpdatedAt() time.Time        { return o.a.UpdatedAt }

// Attributes returns a copy of the order's fields
func (o *Order) Attributes() Attributes { return o.a }

// StatusCheck reports whether the status is one of the base statuses
func (o *Order) StatusCheck() bool {
	return baseStatuses[o.a.Status]
}

// PaymentCheck reports whether the payment is a known value
func (o *Order) PaymentCheck() bool {
	return payments[o.a.Payment]
}

// StatusWithPaymentCheck applies the compatibility table
func (o *Order) StatusWithPaymentCheck() bool {
	return Compatible(o.a.Status, o.a.Payment)
}

// IsValid reports whether the order carries an addressable id
func (o *Order) IsValid() bool {
	return o.a.ID != "" && len(o.a.ID) == IDLength
}

// Compatible reports whether an order may be in (s, p)
func Compatible(s Status, p Payment) bool {
	switch {
	case (p == PaymentWaiting || p == PaymentApproved || p == PaymentNone) && s == StatusReceive:
		return true
	case (p == PaymentCanceled || p == PaymentDenied) && (s == StatusCanceled || s == StatusReceive):
		return true
	case p == PaymentApproved && (s == StatusReceive || s == StatusInProgress || s == StatusFinish || s == StatusDone):
		return true
	}
	return false
}

// Normalize folds a requested (status, payment) pair into the pair that
// is actually stored. Normalize(Normalize(x)) == Normalize(x).
func Normalize(s Status, p Payment) (Status, Payment) {
	if p == PaymentDenied || p == PaymentCanceled {
		if s != StatusFail {
			s = StatusCanceled
		}
		p = PaymentCanceled
	}

	if s == StatusCanceled {
		p = PaymentCanceled
	}

	if s == StatusFail {
		p = PaymentCanceled
	}

	return s, p
}

// ValidateTransition checks a normalized pair the update flow wants to
// store. (FAIL, CANCELED) is the only legal pair involving FAIL; anything
// else must satisfy the same rules as New.
func ValidateTransition(s Status, p Payment) error {
	if s == StatusFail {
		if p != PaymentCanceled {
			return ErrPaymentWithStatusInvalid
		}
		return nil
	}

	_, err := New(Attributes{Status: s, Payment: p})
	return err
}

// IsOpen reports whether the order is still in the kitchen queue
func IsOpen(s Status) bool {
	return s == StatusDone || s == StatusInProgress || s == StatusReceive
}

// IsTerminal reports whether (s, p) is a final state. Delivered, canceled
// and failed orders accept no further changes.
func IsTerminal(s Status, p Payment) bool {
	switch {
	case s == StatusDone:
		return true
	case s == StatusCanceled && p == PaymentCanceled:
		return true
	case s == StatusFail && p == PaymentCanceled:
		return true
	}
	return false
}

// OpenStatuses lists the statuses that make up the kitchen queue
func OpenStatuses() []Status {
	return []Status{StatusDone, StatusInProgress, StatusReceive}
}

// QueueRank orders the kitchen queue: finished orders first for hand-off,
// then in progress, then newly received
func QueueRank(s Status) int {
	switch s {
	case StatusDone:
		return 1
	case StatusInProgress:
		return 2
	case StatusReceive:
		return 3
	}
	return 999
}

type orderJSON struct {
	ID                  string          `json:"id"`
	Protocol            int64           `json:"protocol"`
	CustomerID          string          `json:"customerId"`
	Quantity            int             `json:"quantity"`
	Amount              decimal.Decimal `json:"amount"`
	Status              Status          `json:"status"`
	Payment             Payment         `json:"payment"`
	PaymentReference    string          `json:"paymentReference"`
	ProductionReference string          `json:"productionReference"`
	Description         string          `json:"orderDescription"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

func (o *Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(orderJSON{
		ID:                  o.a.ID,
		Protocol:            o.a.Protocol,
		CustomerID:          o.a.CustomerID,
		Quantity:            o.a.Quantity,
		Amount:              o.a.Amount,
		Status:              o.a.Status,
		Payment:             o.a.Payment,
		PaymentReference:    o.a.PaymentReference,
		ProductionReference: o.a.ProductionReference,
		Description:         o.a.Description,
		CreatedAt:           o.a.CreatedAt,
		UpdatedAt:           o.a.UpdatedAt,
	})
}
