package repository

import (
	"context"

	"github.com/vaidashi/fastfood-api/internal/database"
	"github.com/vaidashi/fastfood-api/internal/models"
	"github.com/vaidashi/fastfood-api/pkg/logger"
)

const customerColumns = `id, name, cpf, email, phone, created_at, updated_at`

// CustomerRepository handles database operations for customers
type CustomerRepository struct {
	db     *database.Database
	logger logger.Logger
}

func NewCustomerRepository(db *database.Database, logger logger.Logger) *CustomerRepository {
	return &CustomerRepository{db: db, logger: logger}
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*models.Customer, error) {
	customers := []*models.Customer{}

	if err := r.db.DB.SelectContext(ctx, &customers, `SELECT `+customerColumns+` FROM customers ORDER BY name`); err != nil {
		return nil, classify(err)
	}

	return customers, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	var c models.Customer

	if err := r.db.DB.GetContext(ctx, &c, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id); err != nil {
		return nil, classify(err)
	}

	return &c, nil
}

// FindByCPF looks a customer up by digits-only CPF
func (r *CustomerRepository) FindByCPF(ctx context.Context, cpf string) (*models.Customer, error) {
	var c models.Customer

	if err := r.db.DB.GetContext(ctx, &c, `SELECT `+customerColumns+` FROM customers WHERE cpf = $1`, cpf); err != nil {
		return nil, classify(err)
	}

	return &c, nil
}

func (r *CustomerRepository) Persist(ctx context.Context, c *models.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES (:id, :name, :cpf, :email, :phone, :created_at, :updated_at)`

	if _, err := r.db.DB.NamedExecContext(ctx, query, c); err != nil {
		r.logger.Error("Failed to create customer", "error", err, "customerID", c.ID)
		return classify(err)
	}

	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *models.Customer) (*models.Customer, error) {
	query := `
		UPDATE customers SET name = $1, cpf = $2, email = $3, phone = $4, updated_at = $5
		WHERE id = $6
		RETURNING ` + customerColumns

	var out models.Customer

	if err := r.db.DB.GetContext(ctx, &out, query, c.Name, c.CPF, c.Email, c.Phone, models.GetCurrentTime(), c.ID); err != nil {
		r.logger.Error("Failed to update customer", "error", err, "customerID", c.ID)
		return nil, classify(err)
	}

	return &out, nil
}

func (r *CustomerRepository) Remove(ctx context.Context, id string) error {
	res, err := r.db.DB.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)

	if err != nil {
		return classify(err)
	}

	return expectRows(res)
}
