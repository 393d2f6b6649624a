package repository

import (
	"context"

	"github.com/vaidashi/fastfood-api/internal/database"
	"github.com/vaidashi/fastfood-api/internal/models"
	"github.com/vaidashi/fastfood-api/pkg/logger"
)

const (
	productColumns = `id, name, price, category, description, created_at, updated_at`
	imageColumns   = `id, product_id, name, size, type, base64, created_at, updated_at`
)

// ProductRepository handles database operations for the menu
type ProductRepository struct {
	db     *database.Database
	logger logger.Logger
}

func NewProductRepository(db *database.Database, logger logger.Logger) *ProductRepository {
	return &ProductRepository{db: db, logger: logger}
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]*models.Product, error) {
	products := []*models.Product{}

	if err := r.db.DB.SelectContext(ctx, &products, `SELECT `+productColumns+` FROM products ORDER BY category, name`); err != nil {
		return nil, classify(err)
	}

	return products, nil
}

func (r *ProductRepository) FindByCategory(ctx context.Context, category string) ([]*models.Product, error) {
	products := []*models.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY name`

	if err := r.db.DB.SelectContext(ctx, &products, query, category); err != nil {
		return nil, classify(err)
	}

	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product

	if err := r.db.DB.GetContext(ctx, &p, `SELECT `+productColumns+` FROM products WHERE id = $1`, id); err != nil {
		return nil, classify(err)
	}

	return &p, nil
}

func (r *ProductRepository) Persist(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES (:id, :name, :price, :category, :description, :created_at, :updated_at)`

	if _, err := r.db.DB.NamedExecContext(ctx, query, p); err != nil {
		r.logger.Error("Failed to create product", "error", err, "productID", p.ID)
		return classify(err)
	}

	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) (*models.Product, error) {
	query := `
		UPDATE products SET name = $1, price = $2, category = $3, description = $4, updated_at = $5
		WHERE id = $6
		RETURNING ` + productColumns

	var out models.Product

	if err := r.db.DB.GetContext(ctx, &out, query, p.Name, p.Price, p.Category, p.Description, models.GetCurrentTime(), p.ID); err != nil {
		r.logger.Error("Failed to update product", "error", err, "productID", p.ID)
		return nil, classify(err)
	}

	return &out, nil
}

func (r *ProductRepository) Remove(ctx context.Context, id string) error {
	res, err := r.db.DB.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)

	if err != nil {
		return classify(err)
	}

	return expectRows(res)
}

// ProductImageRepository handles database operations for product images
type ProductImageRepository struct {
	db     *database.Database
	logger logger.Logger
}

func NewProductImageRepository(db *database.Database, logger logger.Logger) *ProductImageRepository {
	return &ProductImageRepository{db: db, logger: logger}
}

func (r *ProductImageRepository) FindByProductID(ctx context.Context, productID string) ([]*models.ProductImage, error) {
	images := []*models.ProductImage{}
	query := `SELECT ` + imageColumns + ` FROM product_images WHERE product_id = $1 ORDER BY created_at`

	if err := r.db.DB.SelectContext(ctx, &images, query, productID); err != nil {
		return nil, classify(err)
	}

	return images, nil
}

func (r *ProductImageRepository) FindByID(ctx context.Context, id string) (*models.ProductImage, error) {
	var img models.ProductImage

	if err := r.db.DB.GetContext(ctx, &img, `SELECT `+imageColumns+` FROM product_images WHERE id = $1`, id); err != nil {
		return nil, classify(err)
	}

	return &img, nil
}

func (r *ProductImageRepository) Persist(ctx context.Context, img *models.ProductImage) error {
	query := `
		INSERT INTO product_images (` + imageColumns + `)
		VALUES (:id, :product_id, :name, :size, :type, :base64, :created_at, :updated_at)`

	if _, err := r.db.DB.NamedExecContext(ctx, query, img); err != nil {
		r.logger.Error("Failed to create product image", "error", err, "productID", img.ProductID)
		return classify(err)
	}

	return nil
}

func (r *ProductImageRepository) Update(ctx context.Context, img *models.ProductImage) (*models.ProductImage, error) {
	query := `
		UPDATE product_images SET name = $1, size = $2, type = $3, base64 = $4, updated_at = $5
		WHERE id = $6
		RETURNING ` + imageColumns

	var out models.ProductImage

	if err := r.db.DB.GetContext(ctx, &out, query, img.Name, img.Size, img.Type, img.Base64, models.GetCurrentTime(), img.ID); err != nil {
		return nil, classify(err)
	}

	return &out, nil
}

func (r *ProductImageRepository) Remove(ctx context.Context, id string) error {
	res, err := r.db.DB.ExecContext(ctx, `DELETE FROM product_images WHERE id = $1`, id)

	if err != nil {
		return classify(err)
	}

	return expectRows(res)
}
