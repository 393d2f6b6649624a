package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/vaidashi/fastfood-api/internal/database"
	"github.com/vaidashi/fastfood-api/internal/models"
	"github.com/vaidashi/fastfood-api/pkg/logger"
)

const orderColumns = `id, protocol, customer_id, quantity, amount, status, payment,
	payment_reference, production_reference, order_description, created_at, updated_at`

// OrderRepository handles database operations for orders
type OrderRepository struct {
	db     *database.Database
	logger logger.Logger
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db *database.Database, logger logger.Logger) *OrderRepository {
	return &OrderRepository{
		db:     db,
		logger: logger,
	}
}

// FindAll returns every order, newest first
func (r *OrderRepository) FindAll(ctx context.Context) ([]*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`

	orders := []*models.Order{}

	if err := r.db.DB.SelectContext(ctx, &orders, query); err != nil {
		r.logger.Error("Failed to get all orders", "error", err)
		return nil, classify(err)
	}

	return orders, nil
}

// FindByStatus returns the orders in any of statuses, oldest first
func (r *OrderRepository) FindByStatus(ctx context.Context, statuses ...string) ([]*models.Order, error) {
	orders := []*models.Order{}

	if len(statuses) == 0 {
		return orders, nil
	}

	query, args, err := sqlx.In(`SELECT `+orderColumns+` FROM orders WHERE status IN (?) ORDER BY created_at ASC`, statuses)

	if err != nil {
		return nil, classify(err)
	}

	if err := r.db.DB.SelectContext(ctx, &orders, r.db.DB.Rebind(query), args...); err != nil {
		r.logger.Error("Failed to get orders by status", "error", err, "statuses", statuses)
		return nil, classify(err)
	}

	return orders, nil
}

// FindByID retrieves an order by its ID
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	var order models.Order

	if err := r.db.DB.GetContext(ctx, &order, query, id); err != nil {
		return nil, classify(err)
	}

	return &order, nil
}

// IsValidID reports whether id is well formed and names a stored customer
func (r *OrderRepository) IsValidID(ctx context.Context, id string) (bool, error) {
	if !models.IsObjectID(id) {
		return false, nil
	}

	var exists bool

	if err := r.db.DB.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)`, id); err != nil {
		r.logger.Error("Failed to check customer id", "error", err, "customerID", id)
		return false, classify(err)
	}

	return exists, nil
}

// Persist inserts a new order. The store assigns its protocol.
func (r *OrderRepository) Persist(ctx context.Context, in models.NewOrder) (*models.Order, error) {
	query := `
		INSERT INTO orders (id, customer_id, quantity, amount, status, payment, order_description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING ` + orderColumns

	var order models.Order

	err := r.db.DB.GetContext(ctx, &order, query,
		models.NewObjectID(),
		in.CustomerID,
		in.Quantity,
		in.Amount,
		in.Status,
		in.Payment,
		in.Description,
		models.GetCurrentTime(),
	)

	if err != nil {
		r.logger.Error("Failed to create order", "error", err, "customerID", in.CustomerID)
		return nil, classify(err)
	}

	return &order, nil
}

// Update overwrites the mutable fields of an order
func (r *OrderRepository) Update(ctx context.Context, in models.OrderUpdate) (*models.Order, error) {
	query := `
		UPDATE orders
		SET customer_id = $1, quantity = $2, amount = $3, status = $4, payment = $5,
			payment_reference = $6, production_reference = $7, order_description = $8, updated_at = $9
		WHERE id = $10
		RETURNING ` + orderColumns

	var order models.Order

	err := r.db.DB.GetContext(ctx, &order, query,
		in.CustomerID,
		in.Quantity,
		in.Amount,
		in.Status,
		in.Payment,
		in.PaymentReference,
		in.ProductionReference,
		in.Description,
		models.GetCurrentTime(),
		in.ID,
	)

	if err != nil {
		r.logger.Error("Failed to update order", "error", err, "orderID", in.ID)
		return nil, classify(err)
	}

	return &order, nil
}

// Remove deletes an order by its ID
func (r *OrderRepository) Remove(ctx context.Context, id string) error {
	res, err := r.db.DB.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)

	if err != nil {
		r.logger.Error("Failed to delete order", "error", err, "orderID", id)
		return classify(err)
	}

	return expectRows(res)
}
