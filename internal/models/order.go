package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the stored form of an order
type Order struct {
	ID                  string          `db:"id" json:"id"`
	Protocol            int64           `db:"protocol" json:"protocol"`
	CustomerID          string          `db:"customer_id" json:"customerId"`
	Quantity            int             `db:"quantity" json:"quantity"`
	Amount              decimal.Decimal `db:"amount" json:"amount"`
	Status              string          `db:"status" json:"status"`
	Payment             string          `db:"payment" json:"payment"`
	PaymentReference    string          `db:"payment_reference" json:"paymentReference"`
	ProductionReference string          `db:"production_reference" json:"productionReference"`
	Description         string          `db:"order_description" json:"orderDescription"`
	CreatedAt           time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt           time.Time       `db:"updated_at" json:"updatedAt"`
}

// NewOrder carries the fields written when an order is first stored.
// The store assigns id, protocol and timestamps.
type NewOrder struct {
	CustomerID  string
	Quantity    int
	Amount      decimal.Decimal
	Status      string
	Payment     string
	Description string
}

// OrderUpdate carries every mutable field of an existing order
type OrderUpdate struct {
	ID                  string
	CustomerID          string
	Quantity            int
	Amount              decimal.Decimal
	Status              string
	Payment             string
	PaymentReference    string
	ProductionReference string
	Description         string
}
