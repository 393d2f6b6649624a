package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/vaidashi/fastfood-api/internal/config"
	"github.com/vaidashi/fastfood-api/pkg/logger"
)

// Database wraps the shared connection pool
type Database struct {
	DB     *sqlx.DB
	logger logger.Logger
}

// New opens the pool and checks the connection
func New(cfg *config.Config, logger logger.Logger) (*Database, error) {
	db, err := sqlx.Connect("postgres", cfg.GetDBConnString())

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	logger.Info("Connected to database", "host", cfg.DB.Host, "database", cfg.DB.Name)

	return &Database{DB: db, logger: logger}, nil
}

// NewFromDB wraps an existing handle
func NewFromDB(db *sqlx.DB, logger logger.Logger) *Database {
	return &Database{DB: db, logger: logger}
}

// Ping checks the database connection
func (d *Database) Ping(ctx context.Context) error {
	return d.DB.PingContext(ctx)
}

func (d *Database) Close() error {
	return d.DB.Close()
}

// WithTx runs fn inside a transaction, rolling back when fn fails
func (d *Database) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := d.DB.BeginTxx(ctx, nil)

	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			d.logger.Error("Failed to roll back transaction", "error", rbErr)
		}
		return err
	}

	return tx.Commit()
}

const schema = `
CREATE TABLE IF NOT EXISTS customers (
	id CHAR(24) PRIMARY KEY,
	name VARCHAR(120) NOT NULL,
	cpf VARCHAR(11) NOT NULL DEFAULT '',
	email VARCHAR(120) NOT NULL DEFAULT '',
	phone VARCHAR(20) NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_customers_cpf ON customers(cpf) WHERE cpf <> '';

CREATE TABLE IF NOT EXISTS products (
	id CHAR(24) PRIMARY KEY,
	name VARCHAR(120) NOT NULL,
	price NUMERIC(10, 2) NOT NULL,
	category VARCHAR(20) NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);

CREATE TABLE IF NOT EXISTS product_images (
	id CHAR(24) PRIMARY KEY,
	product_id CHAR(24) NOT NULL,
	name VARCHAR(200) NOT NULL,
	size VARCHAR(20) NOT NULL,
	type VARCHAR(50) NOT NULL,
	base64 TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_product_images_product_id ON product_images(product_id);

CREATE TABLE IF NOT EXISTS orders (
	id CHAR(24) PRIMARY KEY,
	protocol BIGSERIAL UNIQUE,
	customer_id VARCHAR(24) NOT NULL DEFAULT '',
	quantity INT NOT NULL DEFAULT 0,
	amount NUMERIC(10, 2) NOT NULL DEFAULT 0,
	status VARCHAR(20) NOT NULL,
	payment VARCHAR(20) NOT NULL,
	payment_reference VARCHAR(100) NOT NULL DEFAULT '',
	production_reference VARCHAR(100) NOT NULL DEFAULT '',
	order_description TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON orders(customer_id);
CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status);

CREATE TABLE IF NOT EXISTS order_items (
	id CHAR(24) PRIMARY KEY,
	order_id CHAR(24) NOT NULL,
	product_id CHAR(24) NOT NULL,
	price NUMERIC(10, 2) NOT NULL,
	quantity INT NOT NULL,
	obs TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);

CREATE TABLE IF NOT EXISTS outbox_messages (
	id SERIAL PRIMARY KEY,
	topic VARCHAR(100) NOT NULL,
	message_key VARCHAR(100) NOT NULL DEFAULT '',
	kind VARCHAR(50) NOT NULL,
	payload JSONB NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	processed_at TIMESTAMP,
	processing_attempts INT NOT NULL DEFAULT 0,
	last_error TEXT,
	status VARCHAR(20) NOT NULL DEFAULT 'pending'
);

CREATE INDEX IF NOT EXISTS idx_outbox_status ON outbox_messages(status);

CREATE TABLE IF NOT EXISTS dead_letter_messages (
	id SERIAL PRIMARY KEY,
	original_message_id INT NOT NULL,
	topic VARCHAR(100) NOT NULL,
	message_key VARCHAR(100) NOT NULL DEFAULT '',
	kind VARCHAR(50) NOT NULL,
	payload JSONB NOT NULL,
	error_message TEXT NOT NULL DEFAULT '',
	attempts INT NOT NULL DEFAULT 0,
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	resolved_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_dead_letter_status ON dead_letter_messages(status);
`

// RunMigrations creates the tables the service needs
func (d *Database) RunMigrations() error {
	if _, err := d.DB.Exec(schema); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	d.logger.Info("Database migrations completed successfully")
	return nil
}
