package service

import (
	"errors"
	"net/http"

	"github.com/vaidashi/fastfood-api/internal/domain/customer"
	"github.com/vaidashi/fastfood-api/internal/domain/order"
	"github.com/vaidashi/fastfood-api/internal/domain/product"
	apperrors "github.com/vaidashi/fastfood-api/pkg/errors"
)

// Validation and reference errors. Their messages are part of the API.
var (
	ErrCustomerIDInvalid    = errors.New("customerId invalid")
	ErrCustomerInexistent   = errors.New("customer inexistent")
	ErrOrderIDInvalid       = errors.New("orderId invalid")
	ErrOrderItemsInvalid    = errors.New("order items invalid")
	ErrProductIDInvalid     = errors.New("productId invalid")
	ErrProductInexistent    = errors.New("productId inexistent")
	ErrQuantityInvalid      = errors.New("quantity invalid")
	ErrImageIDInvalid       = errors.New("id image invalid")
	ErrImageInexistent      = errors.New("product image inexistent")
	ErrImageFieldsInvalid   = errors.New("name, size, type and base64 are required")
	ErrCPFAlreadyRegistered = errors.New("cpf already registered")
)

// Persistence errors
var (
	ErrFailureInsert = errors.New("failure insert")
	ErrFailureUpdate = errors.New("failure update")
	ErrFailureRemove = errors.New("failure remove")
	ErrIDInexistent  = errors.New("id inexistent")
)

var validationErrors = []error{
	ErrCustomerIDInvalid,
	ErrCustomerInexistent,
	ErrOrderIDInvalid,
	ErrOrderItemsInvalid,
	ErrProductIDInvalid,
	ErrProductInexistent,
	ErrQuantityInvalid,
	ErrImageIDInvalid,
	ErrImageFieldsInvalid,
	order.ErrStatusInvalid,
	order.ErrPaymentInvalid,
	order.ErrPaymentWithStatusInvalid,
	order.ErrOrderFinalized,
	customer.ErrNameInvalid,
	customer.ErrCPFInvalid,
	product.ErrNameInvalid,
	product.ErrPriceInvalid,
	product.ErrCategoryInvalid,
}

// HTTPStatus maps a service error onto a response status
func HTTPStatus(err error) int {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return http.StatusBadRequest
		}
	}

	switch {
	case errors.Is(err, ErrCPFAlreadyRegistered):
		return http.StatusConflict
	case errors.Is(err, ErrIDInexistent), errors.Is(err, ErrImageInexistent), errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrFailureInsert), errors.Is(err, ErrFailureUpdate), errors.Is(err, ErrFailureRemove):
		return http.StatusInternalServerError
	}

	return apperrors.StatusCode(err)
}
