package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vaidashi/fastfood-api/internal/domain/customer"
	"github.com/vaidashi/fastfood-api/internal/domain/product"
	"github.com/vaidashi/fastfood-api/internal/models"
	apperrors "github.com/vaidashi/fastfood-api/pkg/errors"
	"github.com/vaidashi/fastfood-api/pkg/logger"
)

const testImageID = "65b000000000000000000001"

func TestCustomerCreateNormalizesCPF(t *testing.T) {
	repo := &mockCustomerRepo{}
	svc := NewCustomerService(repo, logger.NewNop())

	repo.On("FindByCPF", mock.Anything, "52998224725").Return(nil, apperrors.ErrNotFound)
	repo.On("Persist", mock.Anything, mock.MatchedBy(func(c *models.Customer) bool {
		return c.CPF == "52998224725" && models.IsObjectID(c.ID)
	})).Return(nil)

	c, err := svc.Create(context.Background(), CustomerInput{Name: "Ana", CPF: "529.982.247-25", Phone: "5511999999999"})

	require.NoError(t, err)
	assert.Equal(t, "Ana", c.Name)
	repo.AssertExpectations(t)
}

func TestCustomerCreateRejectsDuplicateCPF(t *testing.T) {
	repo := &mockCustomerRepo{}
	svc := NewCustomerService(repo, logger.NewNop())

	repo.On("FindByCPF", mock.Anything, "52998224725").Return(&models.Customer{ID: testCustomerID}, nil)

	_, err := svc.Create(context.Background(), CustomerInput{Name: "Ana", CPF: "52998224725"})

	assert.ErrorIs(t, err, ErrCPFAlreadyRegistered)
	assert.Equal(t, http.StatusConflict, HTTPStatus(err))
	repo.AssertNotCalled(t, "Persist", mock.Anything, mock.Anything)
}

func TestCustomerCreateValidates(t *testing.T) {
	svc := NewCustomerService(&mockCustomerRepo{}, logger.NewNop())

	_, err := svc.Create(context.Background(), CustomerInput{CPF: "52998224725"})
	assert.ErrorIs(t, err, customer.ErrNameInvalid)

	_, err = svc.Create(context.Background(), CustomerInput{Name: "Ana", CPF: "52998224724"})
	assert.ErrorIs(t, err, customer.ErrCPFInvalid)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestCustomerWithoutCPFSkipsLookup(t *testing.T) {
	repo := &mockCustomerRepo{}
	svc := NewCustomerService(repo, logger.NewNop())
	repo.On("Persist", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Create(context.Background(), CustomerInput{Name: "Guest"})

	require.NoError(t, err)
	repo.AssertNotCalled(t, "FindByCPF", mock.Anything, mock.Anything)
}

func TestProductCreateValidates(t *testing.T) {
	svc := NewProductService(&mockProductRepo{}, &mockImageRepo{}, logger.NewNop())

	_, err := svc.Create(context.Background(), ProductInput{Name: "Fries", Price: decimal.NewFromInt(5), Category: "SIDE"})
	assert.ErrorIs(t, err, product.ErrCategoryInvalid)

	_, err = svc.Create(context.Background(), ProductInput{Name: "Fries", Price: decimal.Zero, Category: "ACCOMPANIMENT"})
	assert.ErrorIs(t, err, product.ErrPriceInvalid)
}

func TestProductsByCategory(t *testing.T) {
	repo := &mockProductRepo{}
	svc := NewProductService(repo, &mockImageRepo{}, logger.NewNop())
	repo.On("FindByCategory", mock.Anything, "DRINK").Return([]*models.Product{{ID: colaID, Name: "Cola"}}, nil)

	got, err := svc.GetByCategory(context.Background(), "DRINK")

	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.GetByCategory(context.Background(), "drink")
	assert.ErrorIs(t, err, product.ErrCategoryInvalid)
}

func TestAddImageRequiresFields(t *testing.T) {
	svc := NewProductService(&mockProductRepo{}, &mockImageRepo{}, logger.NewNop())

	_, err := svc.AddImage(context.Background(), burgerID, ImageInput{Name: "front.png", Type: "image/png"})

	assert.ErrorIs(t, err, ErrImageFieldsInvalid)
}

func TestAddImageRequiresProduct(t *testing.T) {
	products := &mockProductRepo{}
	svc := NewProductService(products, &mockImageRepo{}, logger.NewNop())
	products.On("FindByID", mock.Anything, burgerID).Return(nil, apperrors.ErrNotFound)

	_, err := svc.AddImage(context.Background(), burgerID, ImageInput{Name: "a", Size: "10", Type: "image/png", Base64: "AA=="})

	assert.ErrorIs(t, err, ErrProductInexistent)
}

func TestUpdateImageOfAnotherProduct(t *testing.T) {
	images := &mockImageRepo{}
	svc := NewProductService(&mockProductRepo{}, images, logger.NewNop())
	images.On("FindByID", mock.Anything, testImageID).Return(&models.ProductImage{ID: testImageID, ProductID: colaID}, nil)

	_, err := svc.UpdateImage(context.Background(), burgerID, testImageID, ImageInput{Name: "a", Size: "10", Type: "image/png", Base64: "AA=="})

	assert.ErrorIs(t, err, ErrImageInexistent)
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
	images.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOrderItemCreateChecksReferences(t *testing.T) {
	orders := &mockOrderRepo{}
	products := &mockProductRepo{}
	items := &mockItemRepo{}
	svc := NewOrderItemService(items, orders, products, logger.NewNop())

	_, err := svc.Create(context.Background(), OrderItemInput{OrderID: "x", ProductID: burgerID, Quantity: 1})
	assert.ErrorIs(t, err, ErrOrderIDInvalid)

	orders.On("FindByID", mock.Anything, testOrderID).Return(&models.Order{ID: testOrderID}, nil)
	products.On("FindByID", mock.Anything, burgerID).Return(nil, apperrors.ErrNotFound)

	_, err = svc.Create(context.Background(), OrderItemInput{OrderID: testOrderID, ProductID: burgerID, Quantity: 1})
	assert.ErrorIs(t, err, ErrProductIDInvalid)
}

func TestOrderItemCreateDefaultsPrice(t *testing.T) {
	orders := &mockOrderRepo{}
	products := &mockProductRepo{}
	items := &mockItemRepo{}
	svc := NewOrderItemService(items, orders, products, logger.NewNop())

	orders.On("FindByID", mock.Anything, testOrderID).Return(&models.Order{ID: testOrderID}, nil)
	products.On("FindByID", mock.Anything, burgerID).Return(&models.Product{ID: burgerID, Price: decimal.NewFromInt(8)}, nil)
	items.On("PersistBatch", mock.Anything, mock.Anything).Return(nil)
	items.On("FindByOrderID", mock.Anything, testOrderID).
		Return([]*models.OrderItem{{OrderID: testOrderID, Price: decimal.NewFromInt(8), Quantity: 3}}, nil)
	orders.On("Update", mock.Anything, mock.MatchedBy(func(in models.OrderUpdate) bool {
		return in.Quantity == 3 && in.Amount.Equal(decimal.NewFromInt(24))
	})).Return(&models.Order{ID: testOrderID}, nil).Once()

	item, err := svc.Create(context.Background(), OrderItemInput{OrderID: testOrderID, ProductID: burgerID, Quantity: 3})

	require.NoError(t, err)
	assert.True(t, item.Price.Equal(decimal.NewFromInt(8)))
	assert.True(t, item.Subtotal().Equal(decimal.NewFromInt(24)))
	orders.AssertExpectations(t)
}

func TestOrderItemUpdateRefreshesOrderTotals(t *testing.T) {
	orders := &mockOrderRepo{}
	items := &mockItemRepo{}
	svc := NewOrderItemService(items, orders, &mockProductRepo{}, logger.NewNop())

	line := &models.OrderItem{ID: "i1", OrderID: testOrderID, Price: decimal.NewFromInt(8), Quantity: 2}
	items.On("FindByID", mock.Anything, "i1").Return(line, nil)
	items.On("Update", mock.Anything, mock.Anything).Return(&models.OrderItem{ID: "i1", OrderID: testOrderID, Price: decimal.NewFromInt(8), Quantity: 5}, nil)
	items.On("FindByOrderID", mock.Anything, testOrderID).Return([]*models.OrderItem{
		{ID: "i1", OrderID: testOrderID, Price: decimal.NewFromInt(8), Quantity: 5},
		{ID: "i2", OrderID: testOrderID, Price: decimal.NewFromInt(4), Quantity: 1},
	}, nil)
	orders.On("FindByID", mock.Anything, testOrderID).Return(&models.Order{
		ID:       testOrderID,
		Quantity: 3,
		Amount:   decimal.NewFromInt(20),
		Status:   "RECEIVE",
		Payment:  "APPROVED",
	}, nil)
	orders.On("Update", mock.Anything, mock.MatchedBy(func(in models.OrderUpdate) bool {
		return in.Quantity == 6 && in.Amount.Equal(decimal.NewFromInt(44)) &&
			in.Status == "RECEIVE" && in.Payment == "APPROVED"
	})).Return(&models.Order{ID: testOrderID}, nil).Once()

	_, err := svc.Update(context.Background(), "i1", OrderItemInput{Quantity: 5})

	require.NoError(t, err)
	orders.AssertExpectations(t)
}

func TestOrderItemRemoveRefreshesOrderTotals(t *testing.T) {
	orders := &mockOrderRepo{}
	items := &mockItemRepo{}
	svc := NewOrderItemService(items, orders, &mockProductRepo{}, logger.NewNop())

	items.On("FindByID", mock.Anything, "i2").Return(&models.OrderItem{ID: "i2", OrderID: testOrderID}, nil)
	items.On("Remove", mock.Anything, "i2").Return(nil)
	items.On("FindByOrderID", mock.Anything, testOrderID).
		Return([]*models.OrderItem{{ID: "i1", OrderID: testOrderID, Price: decimal.NewFromInt(8), Quantity: 2}}, nil)
	orders.On("FindByID", mock.Anything, testOrderID).
		Return(&models.Order{ID: testOrderID, Quantity: 3, Amount: decimal.NewFromInt(20)}, nil)
	orders.On("Update", mock.Anything, mock.MatchedBy(func(in models.OrderUpdate) bool {
		return in.Quantity == 2 && in.Amount.Equal(decimal.NewFromInt(16))
	})).Return(&models.Order{ID: testOrderID}, nil).Once()

	require.NoError(t, svc.Remove(context.Background(), "i2"))
	orders.AssertExpectations(t)
}

func TestOrderItemTotalsUnchangedSkipsOrderWrite(t *testing.T) {
	orders := &mockOrderRepo{}
	items := &mockItemRepo{}
	svc := NewOrderItemService(items, orders, &mockProductRepo{}, logger.NewNop())

	line := &models.OrderItem{ID: "i1", OrderID: testOrderID, Price: decimal.NewFromInt(8), Quantity: 2}
	items.On("FindByID", mock.Anything, "i1").Return(line, nil)
	items.On("Update", mock.Anything, mock.Anything).Return(line, nil)
	items.On("FindByOrderID", mock.Anything, testOrderID).Return([]*models.OrderItem{line}, nil)
	orders.On("FindByID", mock.Anything, testOrderID).
		Return(&models.Order{ID: testOrderID, Quantity: 2, Amount: decimal.NewFromInt(16)}, nil)

	_, err := svc.Update(context.Background(), "i1", OrderItemInput{Quantity: 2, Obs: "extra napkins"})

	require.NoError(t, err)
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOrderItemRemoveUnknown(t *testing.T) {
	items := &mockItemRepo{}
	svc := NewOrderItemService(items, &mockOrderRepo{}, &mockProductRepo{}, logger.NewNop())
	items.On("FindByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound)

	err := svc.Remove(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrIDInexistent)
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
	items.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}
