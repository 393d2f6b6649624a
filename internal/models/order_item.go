package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is one line of an order. Price is the product price at the
// moment the order was placed.
type OrderItem struct {
	ID        string          `db:"id" json:"id"`
	OrderID   string          `db:"order_id" json:"orderId"`
	ProductID string          `db:"product_id" json:"productId"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Quantity  int             `db:"quantity" json:"quantity"`
	Obs       string          `db:"obs" json:"obs"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`

	Product *Product `db:"-" json:"product,omitempty"`
}

// NewOrderItem creates an item with a fresh id
func NewOrderItem(orderID, productID string, price decimal.Decimal, quantity int, obs string) *OrderItem {
	now := GetCurrentTime()

	return &OrderItem{
		ID:        NewObjectID(),
		OrderID:   orderID,
		ProductID: productID,
		Price:     price,
		Quantity:  quantity,
		Obs:       obs,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Subtotal is price times quantity
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
