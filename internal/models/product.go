package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Category    string          `db:"category" json:"category"`
	Description string          `db:"description" json:"description"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updatedAt"`
}

// NewProduct creates a product with a fresh id
func NewProduct(name string, price decimal.Decimal, category, description string) *Product {
	now := GetCurrentTime()

	return &Product{
		ID:          NewObjectID(),
		Name:        name,
		Price:       price,
		Category:    category,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ProductImage is an image attached to a product, stored inline as base64
type ProductImage struct {
	ID        string    `db:"id" json:"id"`
	ProductID string    `db:"product_id" json:"productId"`
	Name      string    `db:"name" json:"name"`
	Size      string    `db:"size" json:"size"`
	Type      string    `db:"type" json:"type"`
	Base64    string    `db:"base64" json:"base64"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewProductImage creates an image with a fresh id
func NewProductImage(productID, name, size, mimeType, base64 string) *ProductImage {
	now := GetCurrentTime()

	return &ProductImage{
		ID:        NewObjectID(),
		ProductID: productID,
		Name:      name,
		Size:      size,
		Type:      mimeType,
		Base64:    base64,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
