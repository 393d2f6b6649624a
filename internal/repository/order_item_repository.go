package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/vaidashi/fastfood-api/internal/database"
	"github.com/vaidashi/fastfood-api/internal/models"
	"github.com/vaidashi/fastfood-api/pkg/logger"
)

const itemColumns = `id, order_id, product_id, price, quantity, obs, created_at, updated_at`

// OrderItemRepository handles database operations for order lines
type OrderItemRepository struct {
	db     *database.Database
	logger logger.Logger
}

func NewOrderItemRepository(db *database.Database, logger logger.Logger) *OrderItemRepository {
	return &OrderItemRepository{db: db, logger: logger}
}

func (r *OrderItemRepository) FindAll(ctx context.Context) ([]*models.OrderItem, error) {
	items := []*models.OrderItem{}

	if err := r.db.DB.SelectContext(ctx, &items, `SELECT `+itemColumns+` FROM order_items ORDER BY created_at`); err != nil {
		return nil, classify(err)
	}

	return items, nil
}

func (r *OrderItemRepository) FindByOrderID(ctx context.Context, orderID string) ([]*models.OrderItem, error) {
	items := []*models.OrderItem{}
	query := `SELECT ` + itemColumns + ` FROM order_items WHERE order_id = $1 ORDER BY created_at`

	if err := r.db.DB.SelectContext(ctx, &items, query, orderID); err != nil {
		r.logger.Error("Failed to get order items", "error", err, "orderID", orderID)
		return nil, classify(err)
	}

	return items, nil
}

func (r *OrderItemRepository) FindByID(ctx context.Context, id string) (*models.OrderItem, error) {
	var item models.OrderItem

	if err := r.db.DB.GetContext(ctx, &item, `SELECT `+itemColumns+` FROM order_items WHERE id = $1`, id); err != nil {
		return nil, classify(err)
	}

	return &item, nil
}

// PersistBatch inserts every line in one transaction
func (r *OrderItemRepository) PersistBatch(ctx context.Context, items []*models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO order_items (` + itemColumns + `)
		VALUES (:id, :order_id, :product_id, :price, :quantity, :obs, :created_at, :updated_at)`

	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, item := range items {
			if _, err := tx.NamedExecContext(ctx, query, item); err != nil {
				r.logger.Error("Failed to insert order item", "error", err, "orderID", item.OrderID)
				return classify(err)
			}
		}
		return nil
	})
}

// Update changes a line's price, quantity and note
func (r *OrderItemRepository) Update(ctx context.Context, item *models.OrderItem) (*models.OrderItem, error) {
	query := `
		UPDATE order_items SET price = $1, quantity = $2, obs = $3, updated_at = $4
		WHERE id = $5
		RETURNING ` + itemColumns

	var out models.OrderItem

	if err := r.db.DB.GetContext(ctx, &out, query, item.Price, item.Quantity, item.Obs, models.GetCurrentTime(), item.ID); err != nil {
		r.logger.Error("Failed to update order item", "error", err, "itemID", item.ID)
		return nil, classify(err)
	}

	return &out, nil
}

func (r *OrderItemRepository) Remove(ctx context.Context, id string) error {
	res, err := r.db.DB.ExecContext(ctx, `DELETE FROM order_items WHERE id = $1`, id)

	if err != nil {
		return classify(err)
	}

	return expectRows(res)
}

// RemoveByOrderID deletes every line of an order and reports how many went
func (r *OrderItemRepository) RemoveByOrderID(ctx context.Context, orderID string) (int64, error) {
	res, err := r.db.DB.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1`, orderID)

	if err != nil {
		r.logger.Error("Failed to delete order items", "error", err, "orderID", orderID)
		return 0, classify(err)
	}

	n, err := res.RowsAffected()

	if err != nil {
		return 0, classify(err)
	}

	return n, nil
}
