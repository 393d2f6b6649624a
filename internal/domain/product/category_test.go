package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidCategory(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, ValidCategory(string(c)))
	}

	assert.False(t, ValidCategory("snack"))
	assert.False(t, ValidCategory("PIZZA"))
	assert.False(t, ValidCategory(""))
}

func TestValidate(t *testing.T) {
	ten := decimal.NewFromInt(10)

	assert.NoError(t, Validate("X-Burger", ten, "SNACK"))
	assert.ErrorIs(t, Validate("", ten, "SNACK"), ErrNameInvalid)
	assert.ErrorIs(t, Validate("X-Burger", decimal.Zero, "SNACK"), ErrPriceInvalid)
	assert.ErrorIs(t, Validate("X-Burger", ten, "PIZZA"), ErrCategoryInvalid)
}
