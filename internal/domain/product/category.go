package product

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Category groups products on the menu
type Category string

const (
	CategoryAccompaniment Category = "ACCOMPANIMENT"
	CategoryDessert       Category = "DESSERT"
	CategoryDrink         Category = "DRINK"
	CategorySnack         Category = "SNACK"
)

var (
	ErrNameInvalid     = errors.New("name invalid")
	ErrPriceInvalid    = errors.New("price invalid")
	ErrCategoryInvalid = errors.New("category invalid (ACCOMPANIMENT, DESSERT, DRINK, SNACK)")
)

// Categories lists every menu category
func Categories() []Category {
	return []Category{CategoryAccompaniment, CategoryDessert, CategoryDrink, CategorySnack}
}

// ValidCategory reports whether c is a menu category
func ValidCategory(c string) bool {
	for _, known := range Categories() {
		if Category(c) == known {
			return true
		}
	}
	return false
}

// Validate checks the fields required on a product
func Validate(name string, price decimal.Decimal, category string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameInvalid
	}

	if !price.IsPositive() {
		return ErrPriceInvalid
	}

	if !ValidCategory(category) {
		return ErrCategoryInvalid
	}

	return nil
}
