package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vaidashi/fastfood-api/internal/domain/product"
	"github.com/vaidashi/fastfood-api/internal/models"
	apperrors "github.com/vaidashi/fastfood-api/pkg/errors"
	"github.com/vaidashi/fastfood-api/pkg/logger"
)

// ProductInput holds the editable fields of a product
type ProductInput struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// ImageInput holds the fields of a product image
type ImageInput struct {
	Name   string `json:"name"`
	Size   string `json:"size"`
	Type   string `json:"type"`
	Base64 string `json:"base64"`
}

func (in ImageInput) valid() bool {
	return in.Name != "" && in.Size != "" && in.Type != "" && in.Base64 != ""
}

// ProductService handles the menu and its images
type ProductService struct {
	products ProductRepository
	images   ProductImageRepository
	logger   logger.Logger
}

// NewProductService creates a new ProductService
func NewProductService(products ProductRepository, images ProductImageRepository, logger logger.Logger) *ProductService {
	return &ProductService{products: products, images: images, logger: logger}
}

func (s *ProductService) GetAll(ctx context.Context) ([]*models.Product, error) {
	return s.products.FindAll(ctx)
}

func (s *ProductService) GetByCategory(ctx context.Context, category string) ([]*models.Product, error) {
	if !product.ValidCategory(category) {
		return nil, product.ErrCategoryInvalid
	}
	return s.products.FindByCategory(ctx, category)
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	if !models.IsObjectID(id) {
		return nil, ErrProductIDInvalid
	}

	p, err := s.products.FindByID(ctx, id)

	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrProductInexistent, id)
	}

	return p, err
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	if err := product.Validate(in.Name, in.Price, in.Category); err != nil {
		return nil, err
	}

	p := models.NewProduct(in.Name, in.Price, in.Category, in.Description)

	if err := s.products.Persist(ctx, p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailureInsert, err)
	}

	s.logger.Info("Product created", "productID", p.ID, "category", p.Category)
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id string, in ProductInput) (*models.Product, error) {
	current, err := s.GetByID(ctx, id)

	if err != nil {
		return nil, err
	}

	if err := product.Validate(in.Name, in.Price, in.Category); err != nil {
		return nil, err
	}

	current.Name = in.Name
	current.Price = in.Price
	current.Category = in.Category
	current.Description = in.Description

	updated, err := s.products.Update(ctx, current)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailureUpdate, err)
	}

	return updated, nil
}

func (s *ProductService) Remove(ctx context.Context, id string) error {
	if err := s.products.Remove(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", ErrIDInexistent, err)
	}
	return nil
}

// Images lists the images of a product
func (s *ProductService) Images(ctx context.Context, productID string) ([]*models.ProductImage, error) {
	if _, err := s.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.images.FindByProductID(ctx, productID)
}

// Image returns one image, which must belong to productID
func (s *ProductService) Image(ctx context.Context, productID, imageID string) (*models.ProductImage, error) {
	if !models.IsObjectID(productID) {
		return nil, ErrProductIDInvalid
	}
	if !models.IsObjectID(imageID) {
		return nil, ErrImageIDInvalid
	}

	img, err := s.images.FindByID(ctx, imageID)

	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrImageInexistent
		}
		return nil, err
	}

	if img.ProductID != productID {
		return nil, ErrImageInexistent
	}

	return img, nil
}

// AddImage attaches an image to an existing product
func (s *ProductService) AddImage(ctx context.Context, productID string, in ImageInput) (*models.ProductImage, error) {
	if !in.valid() {
		return nil, ErrImageFieldsInvalid
	}

	if _, err := s.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	img := models.NewProductImage(productID, in.Name, in.Size, in.Type, in.Base64)

	if err := s.images.Persist(ctx, img); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailureInsert, err)
	}

	return img, nil
}

// UpdateImage replaces the content of a product's image
func (s *ProductService) UpdateImage(ctx context.Context, productID, imageID string, in ImageInput) (*models.ProductImage, error) {
	if !in.valid() {
		return nil, ErrImageFieldsInvalid
	}

	img, err := s.Image(ctx, productID, imageID)

	if err != nil {
		return nil, err
	}

	img.Name = in.Name
	img.Size = in.Size
	img.Type = in.Type
	img.Base64 = in.Base64

	updated, err := s.images.Update(ctx, img)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailureUpdate, err)
	}

	return updated, nil
}

// RemoveImage deletes a product's image
func (s *ProductService) RemoveImage(ctx context.Context, productID, imageID string) error {
	if _, err := s.Image(ctx, productID, imageID); err != nil {
		return err
	}

	if err := s.images.Remove(ctx, imageID); err != nil {
		return fmt.Errorf("%w: %w", ErrIDInexistent, err)
	}

	return nil
}
